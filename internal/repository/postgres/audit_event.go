package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/complyhub/complyhub-api/internal/domain"
)

type AuditEventRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewAuditEventRepository(writerDB, readerDB *gorm.DB) *AuditEventRepository {
	return &AuditEventRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *AuditEventRepository) Create(ctx context.Context, event *domain.AuditEvent) error {
	return r.writerDB.WithContext(ctx).Create(event).Error
}

func (r *AuditEventRepository) List(ctx context.Context, filter domain.AuditEventFilter) ([]domain.AuditEvent, error) {
	query := r.readerDB.WithContext(ctx).Model(&domain.AuditEvent{})

	if filter.TenantID != "" {
		query = query.Where("tenant_id = ?", filter.TenantID)
	}
	if filter.EventName != "" {
		query = query.Where("event_name = ?", filter.EventName)
	}
	if filter.Actor != "" {
		query = query.Where("actor = ?", filter.Actor)
	}
	if !filter.StartTime.IsZero() {
		query = query.Where("timestamp >= ?", filter.StartTime)
	}
	if !filter.EndTime.IsZero() {
		query = query.Where("timestamp <= ?", filter.EndTime)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit).Offset(filter.Offset)
	}

	var events []domain.AuditEvent
	if err := query.Order("timestamp desc").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *AuditEventRepository) ListBeforeDate(ctx context.Context, tenantID string, beforeDate time.Time) ([]domain.AuditEvent, error) {
	var events []domain.AuditEvent
	err := r.readerDB.WithContext(ctx).
		Where("tenant_id = ? AND timestamp < ?", tenantID, beforeDate).
		Order("timestamp asc").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (r *AuditEventRepository) DeleteBeforeDate(ctx context.Context, tenantID string, beforeDate time.Time) (int64, error) {
	result := r.writerDB.WithContext(ctx).
		Where("tenant_id = ? AND timestamp < ?", tenantID, beforeDate).
		Delete(&domain.AuditEvent{})
	return result.RowsAffected, result.Error
}
