package schedule

import (
	"fmt"

	"turfadmin/models"
)

// HoursPerDay is the number of one-hour slots in a reconciled day.
const HoursPerDay = 24

// HourLabel formats an hour-of-day as "HH:00", wrapping 24 to "00:00".
func HourLabel(hour int) string {
	return fmt.Sprintf("%02d:00", hour%HoursPerDay)
}

// SyntheticSlotID is the id given to slots that have no backend record.
func SyntheticSlotID(date, startTime string) string {
	return "empty-" + date + "-" + startTime
}

// BuildSkeleton produces the canonical 24-slot list for a day: one unblocked,
// unbooked slot per hour 00:00 through 23:00, each with a synthetic id.
func BuildSkeleton(day Day) []models.Slot {
	date := day.Key()
	slots := make([]models.Slot, 0, HoursPerDay)
	for hour := 0; hour < HoursPerDay; hour++ {
		start := HourLabel(hour)
		slots = append(slots, models.Slot{
			ID:        SyntheticSlotID(date, start),
			Date:      date,
			StartTime: start,
			EndTime:   HourLabel(hour + 1),
		})
	}
	return slots
}
