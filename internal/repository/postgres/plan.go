package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/complyhub/complyhub-api/internal/domain"
)

type PlanRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewPlanRepository(writerDB, readerDB *gorm.DB) *PlanRepository {
	return &PlanRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *PlanRepository) Create(ctx context.Context, plan *domain.Plan) (*domain.Plan, error) {
	if err := r.writerDB.WithContext(ctx).Create(plan).Error; err != nil {
		return nil, err
	}
	return plan, nil
}

func (r *PlanRepository) GetByID(ctx context.Context, id string) (*domain.Plan, error) {
	var plan domain.Plan
	if err := r.readerDB.WithContext(ctx).First(&plan, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *PlanRepository) GetByName(ctx context.Context, name string) (*domain.Plan, error) {
	var plan domain.Plan
	if err := r.readerDB.WithContext(ctx).First(&plan, "name = ?", name).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *PlanRepository) List(ctx context.Context) ([]domain.Plan, error) {
	var plans []domain.Plan
	if err := r.readerDB.WithContext(ctx).Order("monthly_price_cents asc").Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}
