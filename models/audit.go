package models

import "time"

// Audit actions recorded for admin slot mutations.
const (
	AuditActionBlock     = "block"
	AuditActionUnblock   = "unblock"
	AuditActionBlockDate = "block_date"
)

// AuditEntry records one admin mutation against the schedule.
type AuditEntry struct {
	ID        string    `bson:"id" json:"id"`
	Actor     string    `bson:"actor" json:"actor"` // admin username
	Sport     string    `bson:"sport" json:"sport"`
	Action    string    `bson:"action" json:"action"`
	Date      string    `bson:"date" json:"date"`
	StartTime string    `bson:"start_time,omitempty" json:"start_time,omitempty"` // empty for whole-day actions
	Reason    string    `bson:"reason,omitempty" json:"reason,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
