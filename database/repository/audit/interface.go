package auditRepo

import (
	"context"

	"turfadmin/database"
	"turfadmin/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// AuditRepository persists and queries admin mutation records.
type AuditRepository interface {
	Insert(ctx context.Context, entry models.AuditEntry) error
	ListRecent(ctx context.Context, limit int64) ([]models.AuditEntry, error)
	ListByDate(ctx context.Context, date string) ([]models.AuditEntry, error)
}

type mongoAuditRepo struct {
	coll *mongo.Collection
}

// NewMongoAuditRepo constructs a new MongoDB AuditRepository.
func NewMongoAuditRepo() AuditRepository {
	db := database.MongoClient.Database("turfadmin")
	return &mongoAuditRepo{
		coll: db.Collection("audit"),
	}
}
