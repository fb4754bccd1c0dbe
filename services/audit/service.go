package audit

import (
	"context"

	auditRepo "turfadmin/database/repository/audit"
	"turfadmin/models"
)

const defaultLimit = 50

// AuditService exposes the recorded admin activity.
type AuditService interface {
	Recent(ctx context.Context, limit int64) ([]models.AuditEntry, error)
	ForDate(ctx context.Context, date string) ([]models.AuditEntry, error)
}

// DefaultAuditService reads from the audit repository; writes go through the
// task queue, not through this service.
type DefaultAuditService struct {
	Repo auditRepo.AuditRepository
}

// NewAuditService constructs a DefaultAuditService.
func NewAuditService(repo auditRepo.AuditRepository) *DefaultAuditService {
	return &DefaultAuditService{Repo: repo}
}

func (s *DefaultAuditService) Recent(ctx context.Context, limit int64) ([]models.AuditEntry, error) {
	if limit <= 0 || limit > 500 {
		limit = defaultLimit
	}
	return s.Repo.ListRecent(ctx, limit)
}

func (s *DefaultAuditService) ForDate(ctx context.Context, date string) ([]models.AuditEntry, error) {
	return s.Repo.ListByDate(ctx, date)
}
