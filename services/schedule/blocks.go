package schedule

import (
	"strings"

	"turfadmin/models"
)

// DefaultBlockReason is substituted when a single block request carries no reason.
const DefaultBlockReason = "Blocked by admin"

// NewBlockRequest builds the payload for blocking one slot. A blank reason
// falls back to DefaultBlockReason. Bulk callers must reject blank reasons
// before expansion; the default applies to the single path only.
func NewBlockRequest(date, startTime, endTime, reason string) models.BlockRequest {
	if strings.TrimSpace(reason) == "" {
		reason = DefaultBlockReason
	}
	return models.BlockRequest{
		Date:      date,
		StartTime: startTime,
		EndTime:   endTime,
		Reason:    reason,
	}
}

// WholeDay expands one date into 24 block requests, one per hour, all sharing
// the given reason. Sub-requests are submitted independently by the caller;
// there is no transactional guarantee across them.
func WholeDay(day Day, reason string) []models.BlockRequest {
	date := day.Key()
	reqs := make([]models.BlockRequest, 0, HoursPerDay)
	for hour := 0; hour < HoursPerDay; hour++ {
		reqs = append(reqs, models.BlockRequest{
			Date:      date,
			StartTime: HourLabel(hour),
			EndTime:   HourLabel(hour + 1),
			Reason:    reason,
		})
	}
	return reqs
}

// UniqueDayKeys collapses duplicate dates while preserving first-seen order.
func UniqueDayKeys(dates []string) []string {
	seen := make(map[string]bool, len(dates))
	keys := make([]string, 0, len(dates))
	for _, d := range dates {
		if !seen[d] {
			seen[d] = true
			keys = append(keys, d)
		}
	}
	return keys
}

// BulkDates applies WholeDay to every unique date, grouped per date key.
func BulkDates(dates []string, reason string) (map[string][]models.BlockRequest, error) {
	grouped := make(map[string][]models.BlockRequest)
	for _, key := range UniqueDayKeys(dates) {
		day, err := ParseDay(key)
		if err != nil {
			return nil, err
		}
		grouped[key] = WholeDay(day, reason)
	}
	return grouped, nil
}
