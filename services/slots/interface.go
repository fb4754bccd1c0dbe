package slots

import (
	"context"

	"turfadmin/backend"
	"turfadmin/models"
	"turfadmin/utils"

	"github.com/hibiken/asynq"
)

// SlotService defines the admin-facing slot management operations. Every
// mutation refreshes the whole day from the backend before returning: the
// reconciled day list is the single source of truth for the client.
type SlotService interface {
	DaySchedule(ctx context.Context, sess *utils.AdminSession, sport, date string) (*models.DaySchedule, error)
	Bookings(ctx context.Context, sess *utils.AdminSession, sport, date string) ([]models.Booking, error)
	BlockSlot(ctx context.Context, sess *utils.AdminSession, sport string, req models.BlockRequest) (*models.DaySchedule, error)
	UnblockSlot(ctx context.Context, sess *utils.AdminSession, sport, blockID, date string) (*models.DaySchedule, error)
	BlockDates(ctx context.Context, sess *utils.AdminSession, sport string, req models.BulkBlockRequest) (*models.BulkBlockResult, error)
}

// AuditQueue is the subset of the asynq client used to record admin actions.
type AuditQueue interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// DefaultSlotService implements SlotService against the booking backend.
type DefaultSlotService struct {
	Backend backend.API
	Audit   AuditQueue
}

// NewSlotService constructs a DefaultSlotService.
func NewSlotService(api backend.API, audit AuditQueue) *DefaultSlotService {
	return &DefaultSlotService{Backend: api, Audit: audit}
}
