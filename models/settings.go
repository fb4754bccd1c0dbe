package models

// FacilitySettings is the admin-editable configuration form. It is held in
// memory only; nothing here is persisted or pushed to the backend.
type FacilitySettings struct {
	General       GeneralSettings      `json:"general"`
	Notifications NotificationSettings `json:"notifications"`
	Booking       BookingSettings      `json:"booking"`
	Pricing       PricingSettings      `json:"pricing"`
}

type GeneralSettings struct {
	SiteName   string `json:"siteName"`
	Timezone   string `json:"timezone"`
	Language   string `json:"language"`
	DateFormat string `json:"dateFormat"`
}

type NotificationSettings struct {
	EmailNotifications bool `json:"emailNotifications"`
	SMSNotifications   bool `json:"smsNotifications"`
	PushNotifications  bool `json:"pushNotifications"`
	BookingAlerts      bool `json:"bookingAlerts"`
	MaintenanceAlerts  bool `json:"maintenanceAlerts"`
}

type BookingSettings struct {
	AutoConfirm       bool `json:"autoConfirm"`
	AllowCancellation bool `json:"allowCancellation"`
	CancellationWindow int `json:"cancellationWindow"` // hours
	MaxAdvanceBooking  int `json:"maxAdvanceBooking"`  // days
}

type PricingSettings struct {
	CricketMorning    float64 `json:"cricketMorning"`
	CricketEvening    float64 `json:"cricketEvening"`
	PickleballMorning float64 `json:"pickleballMorning"`
	PickleballEvening float64 `json:"pickleballEvening"`
}
