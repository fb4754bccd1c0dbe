package settings

import "testing"

func TestDefaultsAreValid(t *testing.T) {
	svc := NewSettingsService()
	got := svc.Get()
	if got.General.SiteName == "" {
		t.Fatal("defaults must carry a site name")
	}
	if _, err := svc.Update(got); err != nil {
		t.Fatalf("defaults must pass validation: %v", err)
	}
}

func TestUpdateReplacesState(t *testing.T) {
	svc := NewSettingsService()
	next := Defaults()
	next.General.SiteName = "Northside Courts"
	next.Pricing.CricketMorning = 1800

	if _, err := svc.Update(next); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := svc.Get()
	if got.General.SiteName != "Northside Courts" || got.Pricing.CricketMorning != 1800 {
		t.Fatalf("update not applied: %+v", got)
	}
}

func TestUpdateRejectsInvalid(t *testing.T) {
	svc := NewSettingsService()
	before := svc.Get()

	bad := Defaults()
	bad.General.SiteName = ""
	if _, err := svc.Update(bad); err == nil {
		t.Fatal("expected error for empty site name")
	}

	bad = Defaults()
	bad.Booking.MaxAdvanceBooking = 0
	if _, err := svc.Update(bad); err == nil {
		t.Fatal("expected error for zero advance booking window")
	}

	bad = Defaults()
	bad.Pricing.PickleballEvening = -1
	if _, err := svc.Update(bad); err == nil {
		t.Fatal("expected error for negative rate")
	}

	if svc.Get() != before {
		t.Fatal("failed updates must not change state")
	}
}
