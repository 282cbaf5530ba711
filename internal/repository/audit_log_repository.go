package repository

import (
	"context"

	"gorm.io/gorm"

	"magala-server/internal/models"
)

type AuditLogRepository interface {
	Create(ctx context.Context, entry *models.AuditLog) error
	// ListLatest returns the newest entries first, with the actor profile
	// preloaded, capped at limit rows.
	ListLatest(ctx context.Context, limit int) ([]models.AuditLog, error)
}

type auditLogRepository struct {
	db *gorm.DB
}

func NewAuditLogRepository(db *gorm.DB) AuditLogRepository {
	return &auditLogRepository{db: db}
}

func (r *auditLogRepository) Create(ctx context.Context, entry *models.AuditLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *auditLogRepository) ListLatest(ctx context.Context, limit int) ([]models.AuditLog, error) {
	var entries []models.AuditLog
	err := r.db.WithContext(ctx).
		Preload("User").
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
