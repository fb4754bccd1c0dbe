package models

// Slot represents one hour-long bookable interval on one calendar day for one sport.
// Slots without a backend record carry a synthetic id and default state.
type Slot struct {
	ID          string `json:"id"`
	Date        string `json:"date"`       // e.g., "2025-02-25"
	StartTime   string `json:"start_time"` // "HH:MM", 24-hour
	EndTime     string `json:"end_time"`   // start + 1 hour, "23:00" wraps to "00:00"
	IsBlocked   bool   `json:"is_blocked"`
	BlockReason string `json:"block_reason,omitempty"`
	IsBooked    bool   `json:"is_booked"`
}

// SlotStatus is the derived tri-state status of a slot.
type SlotStatus string

const (
	StatusAvailable SlotStatus = "available"
	StatusBooked    SlotStatus = "booked"
	StatusBlocked   SlotStatus = "blocked"
)

// SlotView is a Slot plus its derived status, as served to the admin client.
type SlotView struct {
	Slot
	Status SlotStatus `json:"status"`
}

// SlotStats summarizes a day's slot list for the admin header cards.
type SlotStats struct {
	Total     int `json:"total"`
	Available int `json:"available"`
	Booked    int `json:"booked"`
	Blocked   int `json:"blocked"`
}

// PeriodGroup is one time-of-day bucket of a reconciled day.
type PeriodGroup struct {
	Period string     `json:"period"` // "night", "morning", "afternoon", "evening"
	Slots  []SlotView `json:"slots"`
}

// DaySchedule is the full reconciled view of one sport's day.
type DaySchedule struct {
	Sport   string        `json:"sport"`
	Date    string        `json:"date"`
	PrevDay string        `json:"prev_day"`
	NextDay string        `json:"next_day"`
	Slots   []SlotView    `json:"slots"`
	Periods []PeriodGroup `json:"periods"`
	Stats   SlotStats     `json:"stats"`
}

// Booking is a backend booking record surfaced to the admin client as-is.
type Booking struct {
	ID        string `json:"id"`
	User      string `json:"user"`
	Sport     string `json:"sport"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Status    string `json:"status"`
}
