package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/complyhub/complyhub-api/internal/api/dto"
	"github.com/complyhub/complyhub-api/internal/domain"
	"github.com/complyhub/complyhub-api/internal/mocks"
	"github.com/complyhub/complyhub-api/pkg/logger"
)

type OverrideServiceTestSuite struct {
	suite.Suite
	mockRepo     *mocks.Repository
	mockOverride *mocks.OverrideRepository
	mockSub      *mocks.SubscriptionRepository
	mockEvents   *mocks.AuditEventRepository
	service      *OverrideService
	sub          *domain.Subscription
}

func (s *OverrideServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockOverride = new(mocks.OverrideRepository)
	s.mockSub = new(mocks.SubscriptionRepository)
	s.mockEvents = new(mocks.AuditEventRepository)

	s.mockRepo.On("Override").Return(s.mockOverride)
	s.mockRepo.On("Subscription").Return(s.mockSub)
	s.mockRepo.On("AuditEvent").Return(s.mockEvents)

	audit := NewAuditService(s.mockRepo, nil, nil, logger.NewLogger("development"))
	s.service = NewOverrideService(s.mockRepo, audit)

	s.sub = &domain.Subscription{
		ID:       "sub1",
		TenantID: "t1",
		PlanID:   "p1",
		Status:   domain.SubscriptionActive,
		Plan: &domain.Plan{
			ID:       "p1",
			Name:     "growth",
			MaxSeats: 50,
		},
	}

	s.mockSub.On("GetByID", mock.Anything, "sub1").Return(s.sub, nil)
	s.mockEvents.On("Create", mock.Anything, mock.AnythingOfType("*domain.AuditEvent")).Return(nil)
}

func TestOverrideService(t *testing.T) {
	suite.Run(t, new(OverrideServiceTestSuite))
}

func (s *OverrideServiceTestSuite) pendingFirst() *domain.LimitOverrideRequest {
	return &domain.LimitOverrideRequest{
		ID:             "req1",
		SubscriptionID: "sub1",
		ResourceType:   domain.ResourceSeats,
		CurrentLimit:   50,
		RequestedLimit: 75,
		Justification:  "onboarding 25 auditors",
		Urgency:        domain.UrgencyNormal,
		RequestedBy:    "ops@complyhub.io",
		Status:         domain.OverridePendingFirst,
	}
}

// stubTransition wires the Transition mock to run the service's mutate
// callback against req, the way the real repository does inside its
// transaction.
func (s *OverrideServiceTestSuite) stubTransition(req *domain.LimitOverrideRequest) {
	var mutErr error
	s.mockOverride.On("Transition", mock.Anything, req.ID, mock.AnythingOfType("func(*domain.LimitOverrideRequest) error")).Return(
		func(_ context.Context, _ string, mutate func(*domain.LimitOverrideRequest) error) *domain.LimitOverrideRequest {
			mutErr = mutate(req)
			if mutErr != nil {
				return nil
			}
			return req
		},
		func(_ context.Context, _ string, _ func(*domain.LimitOverrideRequest) error) error {
			return mutErr
		},
	)
}

func (s *OverrideServiceTestSuite) stubApply(req *domain.LimitOverrideRequest) {
	var mutErr error
	s.mockOverride.On("Apply", mock.Anything, req.ID, mock.AnythingOfType("func(*domain.LimitOverrideRequest, *domain.Subscription) (*domain.AuditEvent, error)")).Return(
		func(_ context.Context, _ string, mutate func(*domain.LimitOverrideRequest, *domain.Subscription) (*domain.AuditEvent, error)) *domain.LimitOverrideRequest {
			_, mutErr = mutate(req, s.sub)
			if mutErr != nil {
				return nil
			}
			return req
		},
		func(_ context.Context, _ string, _ func(*domain.LimitOverrideRequest, *domain.Subscription) (*domain.AuditEvent, error)) error {
			return mutErr
		},
	)
}

func (s *OverrideServiceTestSuite) TestCreate_Success() {
	// Arrange
	ctx := context.Background()
	s.mockOverride.On("Create", ctx, mock.AnythingOfType("*domain.LimitOverrideRequest")).Return(nil)

	req := dto.CreateOverrideRequest{
		SubscriptionID: "sub1",
		ResourceType:   "SEATS",
		RequestedLimit: 75,
		Justification:  "onboarding 25 auditors",
		Actor:          "ops@complyhub.io",
	}

	// Act
	override, err := s.service.Create(ctx, req)

	// Assert
	s.NoError(err)
	s.Equal(domain.OverridePendingFirst, override.Status)
	s.Equal(50, override.CurrentLimit)
	s.Equal(75, override.RequestedLimit)
	s.Equal(domain.UrgencyNormal, override.Urgency)
	s.mockOverride.AssertExpectations(s.T())
	s.mockEvents.AssertExpectations(s.T())
}

func (s *OverrideServiceTestSuite) TestCreate_RequestedLimitNotAnIncrease() {
	// Arrange
	req := dto.CreateOverrideRequest{
		SubscriptionID: "sub1",
		ResourceType:   "SEATS",
		RequestedLimit: 40,
		Justification:  "shrinking, somehow",
		Actor:          "ops@complyhub.io",
	}

	// Act
	_, err := s.service.Create(context.Background(), req)

	// Assert
	s.ErrorIs(err, ErrRequestedNotIncrease)
	s.mockOverride.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *OverrideServiceTestSuite) TestCreate_TemporaryWithoutExpiry() {
	// Arrange
	req := dto.CreateOverrideRequest{
		SubscriptionID: "sub1",
		ResourceType:   "SEATS",
		RequestedLimit: 75,
		Justification:  "quarterly assessment",
		Temporary:      true,
		Actor:          "ops@complyhub.io",
	}

	// Act
	_, err := s.service.Create(context.Background(), req)

	// Assert
	s.ErrorIs(err, ErrExpiryRequired)
}

func (s *OverrideServiceTestSuite) TestCreate_UnknownResource() {
	// Arrange
	req := dto.CreateOverrideRequest{
		SubscriptionID: "sub1",
		ResourceType:   "GPUS",
		RequestedLimit: 75,
		Justification:  "why not",
		Actor:          "ops@complyhub.io",
	}

	// Act
	_, err := s.service.Create(context.Background(), req)

	// Assert
	s.ErrorIs(err, ErrUnknownResource)
}

func (s *OverrideServiceTestSuite) TestTwoPersonApproval() {
	// Arrange
	ctx := context.Background()
	req := s.pendingFirst()
	s.stubTransition(req)

	// Act: alice signs off first.
	got, err := s.service.ApproveFirst(ctx, "req1", "alice@complyhub.io", "looks sane")

	// Assert
	s.NoError(err)
	s.Equal(domain.OverridePendingSecond, got.Status)
	s.Equal("alice@complyhub.io", got.FirstApprovedBy)
	s.NotNil(got.FirstApprovedAt)

	// Act: alice cannot also sign off second.
	_, err = s.service.ApproveSecond(ctx, "req1", "alice@complyhub.io", "and again")

	// Assert
	s.ErrorIs(err, ErrSameApprover)
	s.Equal(domain.OverridePendingSecond, req.Status)

	// Act: bob completes the approval.
	got, err = s.service.ApproveSecond(ctx, "req1", "bob@complyhub.io", "agreed")

	// Assert
	s.NoError(err)
	s.Equal(domain.OverrideApproved, got.Status)
	s.Equal("bob@complyhub.io", got.SecondApprovedBy)
	s.NotNil(got.SecondApprovedAt)
}

func (s *OverrideServiceTestSuite) TestApproveFirst_AlreadyPastFirst() {
	// Arrange
	req := s.pendingFirst()
	req.Status = domain.OverridePendingSecond
	req.FirstApprovedBy = "alice@complyhub.io"
	s.stubTransition(req)

	// Act
	_, err := s.service.ApproveFirst(context.Background(), "req1", "bob@complyhub.io", "")

	// Assert
	s.ErrorIs(err, ErrNotPendingFirst)
}

func (s *OverrideServiceTestSuite) TestApproveFirst_UnresolvableTenantStillRecordsEvent() {
	// Arrange: the subscription lookup fails, so the audit event cannot
	// be scoped to a tenant. It must still be recorded, with a NULL
	// tenant rather than an empty string the uuid column would reject.
	req := s.pendingFirst()
	req.SubscriptionID = "sub-gone"
	s.stubTransition(req)
	s.mockSub.On("GetByID", mock.Anything, "sub-gone").Return(nil, gorm.ErrRecordNotFound)

	// Act
	_, err := s.service.ApproveFirst(context.Background(), "req1", "alice@complyhub.io", "")

	// Assert
	s.NoError(err)
	s.mockEvents.AssertCalled(s.T(), "Create", mock.Anything, mock.MatchedBy(func(event *domain.AuditEvent) bool {
		return event.TenantID == nil && event.EventName == domain.EventOverrideFirstApproved
	}))
}

func (s *OverrideServiceTestSuite) TestApproveSecond_NotPendingSecond() {
	// Arrange
	req := s.pendingFirst()
	s.stubTransition(req)

	// Act
	_, err := s.service.ApproveSecond(context.Background(), "req1", "bob@complyhub.io", "")

	// Assert
	s.ErrorIs(err, ErrNotPendingSecond)
}

func (s *OverrideServiceTestSuite) TestApprove_NotFound() {
	// Arrange
	s.mockOverride.On("Transition", mock.Anything, "ghost", mock.AnythingOfType("func(*domain.LimitOverrideRequest) error")).
		Return(nil, gorm.ErrRecordNotFound)

	// Act
	_, err := s.service.ApproveFirst(context.Background(), "ghost", "alice@complyhub.io", "")

	// Assert
	s.ErrorIs(err, ErrOverrideNotFound)
}

func (s *OverrideServiceTestSuite) TestReject_RequiresReason() {
	// Act
	_, err := s.service.Reject(context.Background(), "req1", "alice@complyhub.io", "")

	// Assert
	s.ErrorIs(err, ErrEmptyRejectionReason)
	s.mockOverride.AssertNotCalled(s.T(), "Transition", mock.Anything, mock.Anything, mock.Anything)
}

func (s *OverrideServiceTestSuite) TestReject_FromPendingSecond() {
	// Arrange
	req := s.pendingFirst()
	req.Status = domain.OverridePendingSecond
	req.FirstApprovedBy = "alice@complyhub.io"
	s.stubTransition(req)

	// Act
	got, err := s.service.Reject(context.Background(), "req1", "bob@complyhub.io", "limit raise not justified")

	// Assert
	s.NoError(err)
	s.Equal(domain.OverrideRejected, got.Status)
	s.Equal("bob@complyhub.io", got.RejectedBy)
	s.Equal("limit raise not justified", got.RejectionReason)
}

func (s *OverrideServiceTestSuite) TestReject_TerminalRequest() {
	// Arrange
	req := s.pendingFirst()
	req.Status = domain.OverrideApplied
	s.stubTransition(req)

	// Act
	_, err := s.service.Reject(context.Background(), "req1", "bob@complyhub.io", "too late")

	// Assert
	s.ErrorIs(err, ErrAlreadyTerminal)
}

func (s *OverrideServiceTestSuite) TestApply_Success() {
	// Arrange
	req := s.pendingFirst()
	req.Status = domain.OverrideApproved
	req.FirstApprovedBy = "alice@complyhub.io"
	req.SecondApprovedBy = "bob@complyhub.io"
	s.stubApply(req)

	// Act
	got, err := s.service.Apply(context.Background(), "req1", "carol@complyhub.io")

	// Assert
	s.NoError(err)
	s.Equal(domain.OverrideApplied, got.Status)
	s.Equal("carol@complyhub.io", got.AppliedBy)
	s.NotNil(got.AppliedAt)
	s.Require().NotNil(s.sub.CustomMaxSeats)
	s.Equal(75, *s.sub.CustomMaxSeats)
}

func (s *OverrideServiceTestSuite) TestApply_SecondApplyIsIdempotent() {
	// Arrange
	applied := time.Now()
	req := s.pendingFirst()
	req.Status = domain.OverrideApplied
	req.AppliedBy = "carol@complyhub.io"
	req.AppliedAt = &applied
	s.stubApply(req)

	// Act
	got, err := s.service.Apply(context.Background(), "req1", "dave@complyhub.io")

	// Assert
	s.NoError(err)
	s.Equal(domain.OverrideApplied, got.Status)
	s.Equal("carol@complyhub.io", got.AppliedBy)
	s.Nil(s.sub.CustomMaxSeats)
}

func (s *OverrideServiceTestSuite) TestApply_NotFullyApproved() {
	// Arrange
	req := s.pendingFirst()
	req.Status = domain.OverridePendingSecond
	req.FirstApprovedBy = "alice@complyhub.io"
	s.stubApply(req)

	// Act
	_, err := s.service.Apply(context.Background(), "req1", "carol@complyhub.io")

	// Assert
	s.ErrorIs(err, ErrNotApproved)
	s.Nil(s.sub.CustomMaxSeats)
}

func (s *OverrideServiceTestSuite) TestExpireStale() {
	// Arrange
	now := time.Now()
	expired := []domain.LimitOverrideRequest{
		{ID: "req1", SubscriptionID: "sub1", Status: domain.OverrideExpired},
		{ID: "req2", SubscriptionID: "sub1", Status: domain.OverrideExpired},
	}
	s.mockOverride.On("ExpireStale", mock.Anything, now).Return(expired, nil)

	// Act
	count, err := s.service.ExpireStale(context.Background(), now)

	// Assert
	s.NoError(err)
	s.Equal(2, count)
	s.mockEvents.AssertNumberOfCalls(s.T(), "Create", 2)
}

func (s *OverrideServiceTestSuite) TestListPendingApprovals() {
	// Arrange
	pending := []domain.LimitOverrideRequest{*s.pendingFirst()}
	s.mockOverride.On("List", mock.Anything, domain.OverrideFilter{
		Statuses: []domain.OverrideStatus{domain.OverridePendingFirst, domain.OverridePendingSecond},
		Limit:    10,
		Offset:   0,
	}).Return(pending, nil)

	// Act
	got, err := s.service.ListPendingApprovals(context.Background(), 10, 0)

	// Assert
	s.NoError(err)
	s.Len(got, 1)
}
