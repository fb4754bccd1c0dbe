package models

// BlockRequest is the payload the backend block-creation endpoint expects.
type BlockRequest struct {
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Reason    string `json:"reason"`
}

// BulkBlockRequest blocks every hour of one or more whole dates with a shared reason.
type BulkBlockRequest struct {
	Dates  []string `json:"dates" binding:"required"`
	Reason string   `json:"reason" binding:"required"`
}

// DateBlockOutcome is the result of blocking one whole date. Sub-requests are
// independent; already-applied blocks are not rolled back when others fail.
type DateBlockOutcome struct {
	Date        string `json:"date"`
	Succeeded   bool   `json:"succeeded"`
	FailedHours int    `json:"failed_hours,omitempty"`
	Error       string `json:"error,omitempty"`
}

// BulkBlockResult aggregates per-date outcomes. Succeeded is true only when
// every sub-request succeeded.
type BulkBlockResult struct {
	Succeeded bool               `json:"succeeded"`
	Dates     []DateBlockOutcome `json:"dates"`
}
