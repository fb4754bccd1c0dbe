package schedule

import (
	"strconv"

	"turfadmin/models"
)

// Period is one time-of-day display bucket.
type Period struct {
	Name      string
	FromHour  int // inclusive
	UntilHour int // inclusive
}

// Periods is the bucketing policy for the day view: four six-hour buckets
// keyed by the slot's start hour.
var Periods = []Period{
	{Name: "night", FromHour: 0, UntilHour: 5},
	{Name: "morning", FromHour: 6, UntilHour: 11},
	{Name: "afternoon", FromHour: 12, UntilHour: 17},
	{Name: "evening", FromHour: 18, UntilHour: 23},
}

// Classify derives a slot's tri-state status. Booked takes precedence over
// blocked: a record carrying both still classifies as booked, and the blocked
// fields stay visible on the slot itself.
func Classify(s models.Slot) models.SlotStatus {
	switch {
	case s.IsBooked:
		return models.StatusBooked
	case s.IsBlocked:
		return models.StatusBlocked
	default:
		return models.StatusAvailable
	}
}

// Toggleable reports whether a slot may be blocked or unblocked. Booked slots
// must not expose a block action.
func Toggleable(s models.Slot) bool {
	return Classify(s) != models.StatusBooked
}

// StartHour parses the hour component of a slot's start time. Malformed input
// yields 0, which lands in the first bucket.
func StartHour(s models.Slot) int {
	if len(s.StartTime) < 2 {
		return 0
	}
	h, err := strconv.Atoi(s.StartTime[:2])
	if err != nil || h < 0 || h >= HoursPerDay {
		return 0
	}
	return h
}

// PeriodOf returns the name of the bucket the slot's start hour falls in.
func PeriodOf(s models.Slot) string {
	h := StartHour(s)
	for _, p := range Periods {
		if h >= p.FromHour && h <= p.UntilHour {
			return p.Name
		}
	}
	return Periods[0].Name
}

// Annotate attaches the derived status to each slot.
func Annotate(slots []models.Slot) []models.SlotView {
	views := make([]models.SlotView, len(slots))
	for i, s := range slots {
		views[i] = models.SlotView{Slot: s, Status: Classify(s)}
	}
	return views
}

// GroupByPeriod splits annotated slots into the display buckets, preserving
// slot order within each bucket.
func GroupByPeriod(views []models.SlotView) []models.PeriodGroup {
	groups := make([]models.PeriodGroup, len(Periods))
	index := make(map[string]int, len(Periods))
	for i, p := range Periods {
		groups[i] = models.PeriodGroup{Period: p.Name, Slots: []models.SlotView{}}
		index[p.Name] = i
	}
	for _, v := range views {
		i := index[PeriodOf(v.Slot)]
		groups[i].Slots = append(groups[i].Slots, v)
	}
	return groups
}

// Summarize counts slots per derived status.
func Summarize(views []models.SlotView) models.SlotStats {
	stats := models.SlotStats{Total: len(views)}
	for _, v := range views {
		switch v.Status {
		case models.StatusBooked:
			stats.Booked++
		case models.StatusBlocked:
			stats.Blocked++
		default:
			stats.Available++
		}
	}
	return stats
}
