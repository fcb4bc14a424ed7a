package service

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/complyhub/complyhub-api/internal/api/dto"
	"github.com/complyhub/complyhub-api/internal/domain"
	"github.com/complyhub/complyhub-api/internal/repository"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// TenantService provisions tenants. Provisioning is the one administrative
// operation that creates the tenant record, its isolated schema, and a
// trial subscription on the default plan in a single pass. Tenants are
// never hard-deleted in normal operation.
type TenantService struct {
	repo            repository.PostgresRepository
	audit           *AuditService
	defaultPlanName string
}

func NewTenantService(repo repository.PostgresRepository, audit *AuditService, defaultPlanName string) *TenantService {
	return &TenantService{
		repo:            repo,
		audit:           audit,
		defaultPlanName: defaultPlanName,
	}
}

func (s *TenantService) Create(ctx context.Context, req dto.CreateTenantRequest) (dto.TenantResponse, error) {
	if !slugPattern.MatchString(req.Slug) {
		return dto.TenantResponse{}, ErrInvalidSlug
	}

	if _, err := s.repo.Tenant().GetBySlug(ctx, req.Slug); err == nil {
		return dto.TenantResponse{}, ErrTenantExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return dto.TenantResponse{}, err
	}

	plan, err := s.repo.Plan().GetByName(ctx, s.defaultPlanName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.TenantResponse{}, ErrPlanNotFound
		}
		return dto.TenantResponse{}, err
	}

	tenant := &domain.Tenant{
		Name:       req.Name,
		Slug:       req.Slug,
		SchemaName: "tenant_" + strings.ReplaceAll(req.Slug, "-", "_"),
		Status:     domain.TenantActive,
	}

	created, err := s.repo.Tenant().Create(ctx, tenant)
	if err != nil {
		return dto.TenantResponse{}, err
	}

	if err := s.repo.Tenant().ProvisionSchema(ctx, created.SchemaName); err != nil {
		return dto.TenantResponse{}, err
	}

	if req.Hostname != "" {
		d := &domain.TenantDomain{
			TenantID:  created.ID,
			Hostname:  req.Hostname,
			IsPrimary: true,
		}
		if err := s.repo.Tenant().AddDomain(ctx, d); err != nil {
			return dto.TenantResponse{}, err
		}
	}

	sub := &domain.Subscription{
		TenantID: created.ID,
		PlanID:   plan.ID,
		Status:   domain.SubscriptionTrialing,
	}
	if _, err := s.repo.Subscription().Create(ctx, sub); err != nil {
		return dto.TenantResponse{}, err
	}

	s.audit.Record(ctx, &domain.AuditEvent{
		ID:        uuid.NewString(),
		TenantID:  &created.ID,
		EventName: domain.EventTenantProvisioned,
		Actor:     req.Actor,
		Detail:    mustDetail(map[string]any{"slug": created.Slug, "plan": plan.Name}),
		Timestamp: time.Now(),
	})

	return dto.FromTenant(created), nil
}

func (s *TenantService) GetByID(ctx context.Context, id string) (*domain.Tenant, error) {
	tenant, err := s.repo.Tenant().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, err
	}
	return tenant, nil
}

func (s *TenantService) List(ctx context.Context) ([]dto.TenantResponse, error) {
	tenants, err := s.repo.Tenant().List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.TenantResponse, len(tenants))
	for i := range tenants {
		responses[i] = dto.FromTenant(&tenants[i])
	}
	return responses, nil
}

func mustDetail(detail map[string]any) json.RawMessage {
	data, err := json.Marshal(detail)
	if err != nil {
		return json.RawMessage(`{}`)
	}
	return data
}
