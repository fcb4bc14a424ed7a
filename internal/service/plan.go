package service

import (
	"context"
	"encoding/json"
	"errors"

	"gorm.io/gorm"

	"github.com/complyhub/complyhub-api/internal/api/dto"
	"github.com/complyhub/complyhub-api/internal/domain"
	"github.com/complyhub/complyhub-api/internal/repository"
)

// PlanService manages the published plan catalog. Plans are shared across
// all tenants; only operators may change them.
type PlanService struct {
	repo repository.PostgresRepository
}

func NewPlanService(repo repository.PostgresRepository) *PlanService {
	return &PlanService{repo: repo}
}

func (s *PlanService) Create(ctx context.Context, req dto.CreatePlanRequest) (dto.PlanResponse, error) {
	if _, err := s.repo.Plan().GetByName(ctx, req.Name); err == nil {
		return dto.PlanResponse{}, ErrPlanExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return dto.PlanResponse{}, err
	}

	var features json.RawMessage
	if req.Features != nil {
		encoded, err := json.Marshal(req.Features)
		if err != nil {
			return dto.PlanResponse{}, err
		}
		features = encoded
	}

	plan := &domain.Plan{
		Name:              req.Name,
		MaxSeats:          req.MaxSeats,
		MaxDocuments:      req.MaxDocuments,
		MaxFrameworks:     req.MaxFrameworks,
		MaxStorageMB:      req.MaxStorageMB,
		MonthlyPriceCents: req.MonthlyPriceCents,
		Features:          features,
	}

	created, err := s.repo.Plan().Create(ctx, plan)
	if err != nil {
		return dto.PlanResponse{}, err
	}

	return dto.FromPlan(created), nil
}

func (s *PlanService) List(ctx context.Context) ([]dto.PlanResponse, error) {
	plans, err := s.repo.Plan().List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.PlanResponse, len(plans))
	for i := range plans {
		responses[i] = dto.FromPlan(&plans[i])
	}
	return responses, nil
}

func (s *PlanService) GetByName(ctx context.Context, name string) (dto.PlanResponse, error) {
	plan, err := s.repo.Plan().GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.PlanResponse{}, ErrPlanNotFound
		}
		return dto.PlanResponse{}, err
	}
	return dto.FromPlan(plan), nil
}
