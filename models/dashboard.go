package models

// SportCount holds a per-sport pair of counters.
type SportCount struct {
	Cricket    int `json:"cricket"`
	Pickleball int `json:"pickleball"`
}

// RevenueSummary holds aggregate earnings figures.
type RevenueSummary struct {
	Today float64 `json:"today"`
	Week  float64 `json:"week"`
}

// DashboardData is the aggregate admin overview returned by the backend.
type DashboardData struct {
	TodayBookings  SportCount     `json:"todayBookings"`
	WeeklyBookings SportCount     `json:"weeklyBookings"`
	AvailableSlots SportCount     `json:"availableSlots"`
	TotalSlots     SportCount     `json:"totalSlots"`
	BlockedSlots   SportCount     `json:"blockedSlots"`
	Revenue        RevenueSummary `json:"revenue"`
	RecentBookings []Booking      `json:"recentBookings"`
	TotalUsers     int            `json:"totalUsers"`
}
