package schedule

import "turfadmin/models"

// MergeSlots reconciles a day skeleton with the authoritative slot records
// returned by the backend. A record matching a skeleton entry's date and start
// time replaces that entry in full; hours with no record keep the skeleton
// entry. The skeleton's hour ordering is preserved regardless of record order.
//
// Duplicate records for the same start time indicate a backend data-integrity
// fault; the first one wins.
func MergeSlots(skeleton []models.Slot, records []models.Slot) []models.Slot {
	if len(records) == 0 {
		return skeleton
	}

	byStart := make(map[string]models.Slot, len(records))
	for _, r := range records {
		key := r.Date + "T" + r.StartTime
		if _, ok := byStart[key]; !ok {
			byStart[key] = r
		}
	}

	merged := make([]models.Slot, len(skeleton))
	for i, s := range skeleton {
		if r, ok := byStart[s.Date+"T"+s.StartTime]; ok {
			merged[i] = r
		} else {
			merged[i] = s
		}
	}
	return merged
}
