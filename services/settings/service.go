package settings

import (
	"fmt"
	"sync"

	"turfadmin/models"
)

// SettingsService manages the admin configuration form. State is held in
// memory only and resets on restart; nothing is persisted or forwarded to the
// booking backend.
type SettingsService interface {
	Get() models.FacilitySettings
	Update(next models.FacilitySettings) (models.FacilitySettings, error)
}

// DefaultSettingsService implements SettingsService with a mutex-guarded copy.
type DefaultSettingsService struct {
	mu      sync.RWMutex
	current models.FacilitySettings
}

// NewSettingsService constructs a DefaultSettingsService seeded with defaults.
func NewSettingsService() *DefaultSettingsService {
	return &DefaultSettingsService{current: Defaults()}
}

// Defaults returns the initial facility settings.
func Defaults() models.FacilitySettings {
	return models.FacilitySettings{
		General: models.GeneralSettings{
			SiteName:   "TurfBook Admin",
			Timezone:   "Asia/Kolkata",
			Language:   "English",
			DateFormat: "DD/MM/YYYY",
		},
		Notifications: models.NotificationSettings{
			EmailNotifications: true,
			PushNotifications:  true,
			BookingAlerts:      true,
			MaintenanceAlerts:  true,
		},
		Booking: models.BookingSettings{
			AllowCancellation:  true,
			CancellationWindow: 24,
			MaxAdvanceBooking:  30,
		},
		Pricing: models.PricingSettings{
			CricketMorning:    1500,
			CricketEvening:    2000,
			PickleballMorning: 800,
			PickleballEvening: 1200,
		},
	}
}

func (s *DefaultSettingsService) Get() models.FacilitySettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *DefaultSettingsService) Update(next models.FacilitySettings) (models.FacilitySettings, error) {
	if err := validate(next); err != nil {
		return models.FacilitySettings{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = next
	return s.current, nil
}

func validate(s models.FacilitySettings) error {
	if s.General.SiteName == "" {
		return fmt.Errorf("site name must not be empty")
	}
	if s.Booking.CancellationWindow < 0 {
		return fmt.Errorf("cancellation window must not be negative")
	}
	if s.Booking.MaxAdvanceBooking < 1 {
		return fmt.Errorf("max advance booking must be at least one day")
	}
	for name, rate := range map[string]float64{
		"cricket morning":    s.Pricing.CricketMorning,
		"cricket evening":    s.Pricing.CricketEvening,
		"pickleball morning": s.Pricing.PickleballMorning,
		"pickleball evening": s.Pricing.PickleballEvening,
	} {
		if rate < 0 {
			return fmt.Errorf("%s rate must not be negative", name)
		}
	}
	return nil
}
