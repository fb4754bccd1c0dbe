package slots

import (
	"context"
	"errors"
	"testing"

	"turfadmin/backend"
	"turfadmin/models"
	"turfadmin/utils"

	"github.com/hibiken/asynq"
)

type fakeBackend struct {
	slots       []models.Slot
	slotsErr    error
	bookings    []models.Booking
	created     []models.BlockRequest
	createErr   func(req models.BlockRequest) error
	removed     []string
	removeErr   error
	blockDates  []string
	blockDateFn func(date string) error
}

func (f *fakeBackend) Login(ctx context.Context, username, password string) (string, error) {
	return "tok", nil
}

func (f *fakeBackend) Slots(ctx context.Context, token, sport, date string) ([]models.Slot, error) {
	if f.slotsErr != nil {
		return nil, f.slotsErr
	}
	return f.slots, nil
}

func (f *fakeBackend) Bookings(ctx context.Context, token, sport, date string) ([]models.Booking, error) {
	return f.bookings, nil
}

func (f *fakeBackend) CreateBlock(ctx context.Context, token, sport string, req models.BlockRequest) error {
	if f.createErr != nil {
		if err := f.createErr(req); err != nil {
			return err
		}
	}
	f.created = append(f.created, req)
	return nil
}

func (f *fakeBackend) RemoveBlock(ctx context.Context, token, sport, blockID string) error {
	if f.removeErr != nil {
		return f.removeErr
	}
	f.removed = append(f.removed, blockID)
	return nil
}

func (f *fakeBackend) BlockDate(ctx context.Context, token, sport, date, reason string) error {
	if f.blockDateFn != nil {
		if err := f.blockDateFn(date); err != nil {
			return err
		}
	}
	f.blockDates = append(f.blockDates, date)
	return nil
}

func (f *fakeBackend) Dashboard(ctx context.Context, token string) (models.DashboardData, error) {
	return models.DashboardData{}, nil
}

type fakeQueue struct {
	enqueued []*asynq.Task
}

func (q *fakeQueue) EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	q.enqueued = append(q.enqueued, task)
	return &asynq.TaskInfo{}, nil
}

func testSession() *utils.AdminSession {
	return &utils.AdminSession{SessionID: "s1", Username: "admin", BackendToken: "tok"}
}

func TestDayScheduleReconciles(t *testing.T) {
	fb := &fakeBackend{slots: []models.Slot{
		{ID: "1", Date: "2024-07-04", StartTime: "14:00", EndTime: "15:00", IsBlocked: true, BlockReason: "Event"},
		{ID: "2", Date: "2024-07-04", StartTime: "18:00", EndTime: "19:00", IsBooked: true},
	}}
	svc := NewSlotService(fb, nil)

	day, err := svc.DaySchedule(context.Background(), testSession(), models.SportCricket, "2024-07-04")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(day.Slots) != 24 {
		t.Fatalf("expected 24 slots, got %d", len(day.Slots))
	}
	if day.PrevDay != "2024-07-03" || day.NextDay != "2024-07-05" {
		t.Fatalf("unexpected navigation keys: %s / %s", day.PrevDay, day.NextDay)
	}
	if day.Stats.Blocked != 1 || day.Stats.Booked != 1 || day.Stats.Available != 22 {
		t.Fatalf("unexpected stats: %+v", day.Stats)
	}
	if day.Slots[14].Status != models.StatusBlocked || day.Slots[14].BlockReason != "Event" {
		t.Fatalf("14:00 slot not reconciled: %+v", day.Slots[14])
	}
	if len(day.Periods) != 4 {
		t.Fatalf("expected 4 period groups, got %d", len(day.Periods))
	}
}

func TestDayScheduleRejectsUnknownSport(t *testing.T) {
	svc := NewSlotService(&fakeBackend{}, nil)
	_, err := svc.DaySchedule(context.Background(), testSession(), "tennis", "2024-07-04")
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestDayScheduleRejectsBadDate(t *testing.T) {
	svc := NewSlotService(&fakeBackend{}, nil)
	_, err := svc.DaySchedule(context.Background(), testSession(), models.SportCricket, "04/07/2024")
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestDaySchedulePropagatesBackendFault(t *testing.T) {
	fb := &fakeBackend{slotsErr: &backend.APIError{Status: 502}}
	svc := NewSlotService(fb, nil)
	_, err := svc.DaySchedule(context.Background(), testSession(), models.SportCricket, "2024-07-04")
	var apiErr *backend.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
}

func TestBlockSlotDefaultsReasonAndRefreshes(t *testing.T) {
	fb := &fakeBackend{}
	q := &fakeQueue{}
	svc := NewSlotService(fb, q)

	req := models.BlockRequest{Date: "2024-06-01", StartTime: "09:00", EndTime: "10:00"}
	day, err := svc.BlockSlot(context.Background(), testSession(), models.SportPickleball, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fb.created) != 1 {
		t.Fatalf("expected one block request, got %d", len(fb.created))
	}
	if fb.created[0].Reason != "Blocked by admin" {
		t.Fatalf("expected default reason, got %q", fb.created[0].Reason)
	}
	if len(day.Slots) != 24 {
		t.Fatalf("expected refreshed day, got %d slots", len(day.Slots))
	}
	if len(q.enqueued) != 1 {
		t.Fatalf("expected one audit task, got %d", len(q.enqueued))
	}
}

func TestBlockSlotRejectsBookedSlot(t *testing.T) {
	fb := &fakeBackend{slots: []models.Slot{
		{ID: "1", Date: "2024-06-01", StartTime: "09:00", EndTime: "10:00", IsBooked: true},
	}}
	svc := NewSlotService(fb, nil)

	req := models.BlockRequest{Date: "2024-06-01", StartTime: "09:00", EndTime: "10:00", Reason: "x"}
	_, err := svc.BlockSlot(context.Background(), testSession(), models.SportCricket, req)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(fb.created) != 0 {
		t.Fatal("no block request should reach the backend for a booked slot")
	}
}

func TestUnblockSlot(t *testing.T) {
	fb := &fakeBackend{}
	q := &fakeQueue{}
	svc := NewSlotService(fb, q)

	day, err := svc.UnblockSlot(context.Background(), testSession(), models.SportCricket, "42", "2024-06-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fb.removed) != 1 || fb.removed[0] != "42" {
		t.Fatalf("expected block 42 removed, got %v", fb.removed)
	}
	if day.Date != "2024-06-01" {
		t.Fatalf("unexpected refreshed date %s", day.Date)
	}
	if len(q.enqueued) != 1 {
		t.Fatalf("expected one audit task, got %d", len(q.enqueued))
	}
}

func TestBlockDatesValidation(t *testing.T) {
	svc := NewSlotService(&fakeBackend{}, nil)

	_, err := svc.BlockDates(context.Background(), testSession(), models.SportCricket,
		models.BulkBlockRequest{Dates: nil, Reason: "Holiday"})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError for empty dates, got %v", err)
	}

	_, err = svc.BlockDates(context.Background(), testSession(), models.SportCricket,
		models.BulkBlockRequest{Dates: []string{"2024-06-01"}, Reason: "   "})
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError for blank reason, got %v", err)
	}
}

func TestBlockDatesPrefersSingleCall(t *testing.T) {
	fb := &fakeBackend{}
	q := &fakeQueue{}
	svc := NewSlotService(fb, q)

	res, err := svc.BlockDates(context.Background(), testSession(), models.SportCricket,
		models.BulkBlockRequest{Dates: []string{"2024-06-01", "2024-06-02", "2024-06-01"}, Reason: "Holiday"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Succeeded || len(res.Dates) != 2 {
		t.Fatalf("unexpected result: %+v", res)
	}
	if len(fb.blockDates) != 2 {
		t.Fatalf("expected 2 whole-day calls, got %d", len(fb.blockDates))
	}
	if len(fb.created) != 0 {
		t.Fatal("fan-out must not run when the bulk endpoint works")
	}
	if len(q.enqueued) != 2 {
		t.Fatalf("expected 2 audit tasks, got %d", len(q.enqueued))
	}
}

func TestBlockDatesFallsBackToFanOut(t *testing.T) {
	fb := &fakeBackend{
		blockDateFn: func(date string) error { return backend.ErrBulkUnsupported },
	}
	svc := NewSlotService(fb, nil)

	res, err := svc.BlockDates(context.Background(), testSession(), models.SportCricket,
		models.BulkBlockRequest{Dates: []string{"2024-06-01"}, Reason: "Holiday"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Succeeded {
		t.Fatalf("expected success, got %+v", res)
	}
	if len(fb.created) != 24 {
		t.Fatalf("expected 24 fan-out requests, got %d", len(fb.created))
	}
}

func TestBlockDatesPartialFailureNoRollback(t *testing.T) {
	boom := &backend.APIError{Status: 500, Message: "boom"}
	fb := &fakeBackend{
		blockDateFn: func(date string) error { return backend.ErrBulkUnsupported },
		createErr: func(req models.BlockRequest) error {
			if req.StartTime == "12:00" {
				return boom
			}
			return nil
		},
	}
	svc := NewSlotService(fb, nil)

	res, err := svc.BlockDates(context.Background(), testSession(), models.SportCricket,
		models.BulkBlockRequest{Dates: []string{"2024-06-01"}, Reason: "Holiday"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Succeeded {
		t.Fatal("aggregate must fail when any sub-request fails")
	}
	if res.Dates[0].FailedHours != 1 {
		t.Fatalf("expected 1 failed hour, got %d", res.Dates[0].FailedHours)
	}
	// The other 23 hours stay applied.
	if len(fb.created) != 23 {
		t.Fatalf("expected 23 applied blocks, got %d", len(fb.created))
	}
}
