package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/complyhub/complyhub-api/internal/domain"
)

type OverrideRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewOverrideRepository(writerDB, readerDB *gorm.DB) *OverrideRepository {
	return &OverrideRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *OverrideRepository) Create(ctx context.Context, req *domain.LimitOverrideRequest) error {
	return r.writerDB.WithContext(ctx).Create(req).Error
}

func (r *OverrideRepository) GetByID(ctx context.Context, id string) (*domain.LimitOverrideRequest, error) {
	var req domain.LimitOverrideRequest
	if err := r.readerDB.WithContext(ctx).First(&req, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *OverrideRepository) List(ctx context.Context, filter domain.OverrideFilter) ([]domain.LimitOverrideRequest, error) {
	query := r.readerDB.WithContext(ctx).Model(&domain.LimitOverrideRequest{})

	if filter.SubscriptionID != "" {
		query = query.Where("subscription_id = ?", filter.SubscriptionID)
	}
	if len(filter.Statuses) > 0 {
		query = query.Where("status IN ?", filter.Statuses)
	}
	if filter.ResourceType != "" {
		query = query.Where("resource_type = ?", filter.ResourceType)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit).Offset(filter.Offset)
	}

	var reqs []domain.LimitOverrideRequest
	if err := query.Order("created_at asc").Find(&reqs).Error; err != nil {
		return nil, err
	}
	return reqs, nil
}

// Transition re-reads the request under FOR UPDATE before mutating, so two
// concurrent approvals serialize and the loser sees the winner's state.
func (r *OverrideRepository) Transition(ctx context.Context, id string, mutate func(req *domain.LimitOverrideRequest) error) (*domain.LimitOverrideRequest, error) {
	var result *domain.LimitOverrideRequest

	err := r.writerDB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var req domain.LimitOverrideRequest
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&req, "id = ?", id).Error; err != nil {
			return err
		}

		if err := mutate(&req); err != nil {
			return err
		}

		req.UpdatedAt = time.Now()
		if err := tx.Save(&req).Error; err != nil {
			return err
		}

		result = &req
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Apply locks the request and its subscription in one transaction. The
// mutate callback validates the transition, updates both rows, and returns
// the audit event to append; a nil event with nil error is the idempotent
// already-applied path and persists nothing.
func (r *OverrideRepository) Apply(ctx context.Context, id string, mutate func(req *domain.LimitOverrideRequest, sub *domain.Subscription) (*domain.AuditEvent, error)) (*domain.LimitOverrideRequest, error) {
	var result *domain.LimitOverrideRequest

	err := r.writerDB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var req domain.LimitOverrideRequest
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&req, "id = ?", id).Error; err != nil {
			return err
		}

		var sub domain.Subscription
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&sub, "id = ?", req.SubscriptionID).Error; err != nil {
			return err
		}

		event, err := mutate(&req, &sub)
		if err != nil {
			return err
		}
		if event == nil {
			result = &req
			return nil
		}

		now := time.Now()
		req.UpdatedAt = now
		sub.UpdatedAt = now
		if err := tx.Save(&req).Error; err != nil {
			return err
		}
		if err := tx.Save(&sub).Error; err != nil {
			return err
		}
		if err := tx.Create(event).Error; err != nil {
			return err
		}

		result = &req
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *OverrideRepository) ExpireStale(ctx context.Context, now time.Time) ([]domain.LimitOverrideRequest, error) {
	var expired []domain.LimitOverrideRequest

	err := r.writerDB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("status IN ?", []domain.OverrideStatus{
				domain.OverridePendingFirst,
				domain.OverridePendingSecond,
				domain.OverrideApproved,
			}).
			Where("expires_at IS NOT NULL AND expires_at < ?", now).
			Find(&expired).Error; err != nil {
			return err
		}

		for i := range expired {
			expired[i].Status = domain.OverrideExpired
			expired[i].UpdatedAt = now
			if err := tx.Save(&expired[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return expired, nil
}
