package tasks

import (
	"encoding/json"

	"turfadmin/models"

	"github.com/hibiken/asynq"
)

const TypeAuditRecord = "audit:record"

// NewAuditTask wraps an audit entry as an asynq task. Writes happen off the
// request path; the mutation itself has already been applied by the backend.
func NewAuditTask(entry models.AuditEntry) (*asynq.Task, error) {
	b, err := json.Marshal(entry)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeAuditRecord, b), nil
}
