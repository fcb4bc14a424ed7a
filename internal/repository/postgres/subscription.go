package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/complyhub/complyhub-api/internal/domain"
)

type SubscriptionRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewSubscriptionRepository(writerDB, readerDB *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *SubscriptionRepository) Create(ctx context.Context, sub *domain.Subscription) (*domain.Subscription, error) {
	if err := r.writerDB.WithContext(ctx).Create(sub).Error; err != nil {
		return nil, err
	}
	return sub, nil
}

func (r *SubscriptionRepository) GetByID(ctx context.Context, id string) (*domain.Subscription, error) {
	var sub domain.Subscription
	if err := r.readerDB.WithContext(ctx).Preload("Plan").First(&sub, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *SubscriptionRepository) GetByTenantID(ctx context.Context, tenantID string) (*domain.Subscription, error) {
	var sub domain.Subscription
	if err := r.readerDB.WithContext(ctx).Preload("Plan").First(&sub, "tenant_id = ?", tenantID).Error; err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *SubscriptionRepository) Update(ctx context.Context, sub *domain.Subscription) error {
	return r.writerDB.WithContext(ctx).Save(sub).Error
}
