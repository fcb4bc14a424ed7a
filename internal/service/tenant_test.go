package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/complyhub/complyhub-api/internal/api/dto"
	"github.com/complyhub/complyhub-api/internal/domain"
	"github.com/complyhub/complyhub-api/internal/mocks"
	"github.com/complyhub/complyhub-api/pkg/logger"
)

type TenantServiceTestSuite struct {
	suite.Suite
	mockRepo   *mocks.Repository
	mockTenant *mocks.TenantRepository
	mockPlan   *mocks.PlanRepository
	mockSub    *mocks.SubscriptionRepository
	mockEvents *mocks.AuditEventRepository
	service    *TenantService
}

func (s *TenantServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockTenant = new(mocks.TenantRepository)
	s.mockPlan = new(mocks.PlanRepository)
	s.mockSub = new(mocks.SubscriptionRepository)
	s.mockEvents = new(mocks.AuditEventRepository)

	s.mockRepo.On("Tenant").Return(s.mockTenant)
	s.mockRepo.On("Plan").Return(s.mockPlan)
	s.mockRepo.On("Subscription").Return(s.mockSub)
	s.mockRepo.On("AuditEvent").Return(s.mockEvents)

	audit := NewAuditService(s.mockRepo, nil, nil, logger.NewLogger("development"))
	s.service = NewTenantService(s.mockRepo, audit, "trial")
}

func TestTenantService(t *testing.T) {
	suite.Run(t, new(TenantServiceTestSuite))
}

func (s *TenantServiceTestSuite) TestCreate_Success() {
	// Arrange
	ctx := context.Background()
	trial := &domain.Plan{ID: "p-trial", Name: "trial", MaxSeats: 5}
	created := &domain.Tenant{
		ID:         "t1",
		Name:       "Acme Corp",
		Slug:       "acme-corp",
		SchemaName: "tenant_acme_corp",
		Status:     domain.TenantActive,
	}

	s.mockTenant.On("GetBySlug", ctx, "acme-corp").Return(nil, gorm.ErrRecordNotFound)
	s.mockPlan.On("GetByName", ctx, "trial").Return(trial, nil)
	s.mockTenant.On("Create", ctx, mock.MatchedBy(func(t *domain.Tenant) bool {
		return t.Slug == "acme-corp" && t.SchemaName == "tenant_acme_corp" && t.Status == domain.TenantActive
	})).Return(created, nil)
	s.mockTenant.On("ProvisionSchema", ctx, "tenant_acme_corp").Return(nil)
	s.mockSub.On("Create", ctx, mock.MatchedBy(func(sub *domain.Subscription) bool {
		return sub.TenantID == "t1" && sub.PlanID == "p-trial" && sub.Status == domain.SubscriptionTrialing
	})).Return(&domain.Subscription{ID: "sub1", TenantID: "t1"}, nil)
	s.mockEvents.On("Create", ctx, mock.AnythingOfType("*domain.AuditEvent")).Return(nil)

	req := dto.CreateTenantRequest{Name: "Acme Corp", Slug: "acme-corp", Actor: "admin@complyhub.io"}

	// Act
	resp, err := s.service.Create(ctx, req)

	// Assert
	s.NoError(err)
	s.Equal("t1", resp.ID)
	s.Equal("acme-corp", resp.Slug)
	s.mockTenant.AssertExpectations(s.T())
	s.mockSub.AssertExpectations(s.T())
	s.mockEvents.AssertExpectations(s.T())
}

func (s *TenantServiceTestSuite) TestCreate_WithPrimaryDomain() {
	// Arrange
	ctx := context.Background()
	trial := &domain.Plan{ID: "p-trial", Name: "trial"}
	created := &domain.Tenant{ID: "t1", Slug: "acme", SchemaName: "tenant_acme", Status: domain.TenantActive}

	s.mockTenant.On("GetBySlug", ctx, "acme").Return(nil, gorm.ErrRecordNotFound)
	s.mockPlan.On("GetByName", ctx, "trial").Return(trial, nil)
	s.mockTenant.On("Create", ctx, mock.AnythingOfType("*domain.Tenant")).Return(created, nil)
	s.mockTenant.On("ProvisionSchema", ctx, "tenant_acme").Return(nil)
	s.mockTenant.On("AddDomain", ctx, mock.MatchedBy(func(d *domain.TenantDomain) bool {
		return d.TenantID == "t1" && d.Hostname == "compliance.acme-corp.com" && d.IsPrimary
	})).Return(nil)
	s.mockSub.On("Create", ctx, mock.AnythingOfType("*domain.Subscription")).Return(&domain.Subscription{ID: "sub1"}, nil)
	s.mockEvents.On("Create", ctx, mock.AnythingOfType("*domain.AuditEvent")).Return(nil)

	req := dto.CreateTenantRequest{Name: "Acme Corp", Slug: "acme", Hostname: "compliance.acme-corp.com"}

	// Act
	_, err := s.service.Create(ctx, req)

	// Assert
	s.NoError(err)
	s.mockTenant.AssertExpectations(s.T())
}

func (s *TenantServiceTestSuite) TestCreate_InvalidSlug() {
	// Act
	_, err := s.service.Create(context.Background(), dto.CreateTenantRequest{Name: "Acme", Slug: "Acme Corp!"})

	// Assert
	s.ErrorIs(err, ErrInvalidSlug)
	s.mockTenant.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *TenantServiceTestSuite) TestCreate_DuplicateSlug() {
	// Arrange
	ctx := context.Background()
	s.mockTenant.On("GetBySlug", ctx, "acme").Return(&domain.Tenant{ID: "t1", Slug: "acme"}, nil)

	// Act
	_, err := s.service.Create(ctx, dto.CreateTenantRequest{Name: "Acme", Slug: "acme"})

	// Assert
	s.ErrorIs(err, ErrTenantExists)
}

func (s *TenantServiceTestSuite) TestCreate_DefaultPlanMissing() {
	// Arrange
	ctx := context.Background()
	s.mockTenant.On("GetBySlug", ctx, "acme").Return(nil, gorm.ErrRecordNotFound)
	s.mockPlan.On("GetByName", ctx, "trial").Return(nil, gorm.ErrRecordNotFound)

	// Act
	_, err := s.service.Create(ctx, dto.CreateTenantRequest{Name: "Acme", Slug: "acme"})

	// Assert
	s.ErrorIs(err, ErrPlanNotFound)
	s.mockTenant.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *TenantServiceTestSuite) TestGetByID_NotFound() {
	// Arrange
	ctx := context.Background()
	s.mockTenant.On("GetByID", ctx, "ghost").Return(nil, gorm.ErrRecordNotFound)

	// Act
	_, err := s.service.GetByID(ctx, "ghost")

	// Assert
	s.ErrorIs(err, ErrTenantNotFound)
}
