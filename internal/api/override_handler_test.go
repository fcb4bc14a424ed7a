package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/complyhub/complyhub-api/internal/api/dto"
	"github.com/complyhub/complyhub-api/internal/domain"
	"github.com/complyhub/complyhub-api/internal/service"
)

type OverrideHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockOverrideService
	handler     *OverrideHandler
}

type MockOverrideService struct {
	mock.Mock
}

func (m *MockOverrideService) Create(ctx context.Context, req dto.CreateOverrideRequest) (*domain.LimitOverrideRequest, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LimitOverrideRequest), args.Error(1)
}

func (m *MockOverrideService) GetByID(ctx context.Context, id string) (*domain.LimitOverrideRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LimitOverrideRequest), args.Error(1)
}

func (m *MockOverrideService) ApproveFirst(ctx context.Context, id, actor, notes string) (*domain.LimitOverrideRequest, error) {
	args := m.Called(ctx, id, actor, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LimitOverrideRequest), args.Error(1)
}

func (m *MockOverrideService) ApproveSecond(ctx context.Context, id, actor, notes string) (*domain.LimitOverrideRequest, error) {
	args := m.Called(ctx, id, actor, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LimitOverrideRequest), args.Error(1)
}

func (m *MockOverrideService) Reject(ctx context.Context, id, actor, reason string) (*domain.LimitOverrideRequest, error) {
	args := m.Called(ctx, id, actor, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LimitOverrideRequest), args.Error(1)
}

func (m *MockOverrideService) Apply(ctx context.Context, id, actor string) (*domain.LimitOverrideRequest, error) {
	args := m.Called(ctx, id, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LimitOverrideRequest), args.Error(1)
}

func (m *MockOverrideService) ListPendingApprovals(ctx context.Context, limit, offset int) ([]domain.LimitOverrideRequest, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]domain.LimitOverrideRequest), args.Error(1)
}

func (m *MockOverrideService) ListApprovedPendingApplication(ctx context.Context, limit, offset int) ([]domain.LimitOverrideRequest, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]domain.LimitOverrideRequest), args.Error(1)
}

func (s *OverrideHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.mockService = new(MockOverrideService)
	s.handler = NewOverrideHandler(s.mockService)

	// Stand-in for the auth middleware.
	s.router.Use(func(c *gin.Context) {
		c.Set("claims", jwt.MapClaims{"user_id": "alice@complyhub.io"})
	})

	// Setup routes
	s.router.POST("/overrides", s.handler.CreateOverride)
	s.router.GET("/overrides/:id", s.handler.GetOverride)
	s.router.POST("/overrides/:id/approve-first", s.handler.ApproveFirst)
	s.router.POST("/overrides/:id/approve-second", s.handler.ApproveSecond)
	s.router.POST("/overrides/:id/reject", s.handler.RejectOverride)
	s.router.POST("/overrides/:id/apply", s.handler.ApplyOverride)
	s.router.GET("/overrides/pending", s.handler.ListPendingApprovals)
}

func TestOverrideHandler(t *testing.T) {
	suite.Run(t, new(OverrideHandlerTestSuite))
}

func (s *OverrideHandlerTestSuite) TestCreateOverride_Success() {
	// Arrange
	expected := &domain.LimitOverrideRequest{
		ID:             "req1",
		SubscriptionID: "sub1",
		ResourceType:   domain.ResourceSeats,
		CurrentLimit:   50,
		RequestedLimit: 75,
		Justification:  "onboarding 25 auditors",
		RequestedBy:    "alice@complyhub.io",
		Status:         domain.OverridePendingFirst,
	}

	s.mockService.On("Create", mock.Anything, mock.MatchedBy(func(req dto.CreateOverrideRequest) bool {
		return req.Actor == "alice@complyhub.io" && req.RequestedLimit == 75
	})).Return(expected, nil)

	body, _ := json.Marshal(map[string]any{
		"subscription_id": "sub1",
		"resource_type":   "SEATS",
		"requested_limit": 75,
		"justification":   "onboarding 25 auditors",
	})

	// Act
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/overrides", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	s.router.ServeHTTP(w, req)

	// Assert
	s.Equal(http.StatusCreated, w.Code)

	var resp dto.OverrideResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("req1", resp.ID)
	s.Equal("pending_first", resp.Status)
	s.mockService.AssertExpectations(s.T())
}

func (s *OverrideHandlerTestSuite) TestCreateOverride_MissingJustification() {
	// Arrange
	body, _ := json.Marshal(map[string]any{
		"subscription_id": "sub1",
		"resource_type":   "SEATS",
		"requested_limit": 75,
	})

	// Act
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/overrides", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	s.router.ServeHTTP(w, req)

	// Assert
	s.Equal(http.StatusBadRequest, w.Code)
	s.mockService.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *OverrideHandlerTestSuite) TestCreateOverride_NotAnIncrease() {
	// Arrange
	s.mockService.On("Create", mock.Anything, mock.Anything).Return(nil, service.ErrRequestedNotIncrease)

	body, _ := json.Marshal(map[string]any{
		"subscription_id": "sub1",
		"resource_type":   "SEATS",
		"requested_limit": 10,
		"justification":   "downsizing",
	})

	// Act
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/overrides", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	s.router.ServeHTTP(w, req)

	// Assert
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *OverrideHandlerTestSuite) TestApproveFirst_NoBody() {
	// Arrange
	expected := &domain.LimitOverrideRequest{
		ID:     "req1",
		Status: domain.OverridePendingSecond,
	}
	s.mockService.On("ApproveFirst", mock.Anything, "req1", "alice@complyhub.io", "").Return(expected, nil)

	// Act
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/overrides/req1/approve-first", nil)
	s.router.ServeHTTP(w, req)

	// Assert
	s.Equal(http.StatusOK, w.Code)
	s.mockService.AssertExpectations(s.T())
}

func (s *OverrideHandlerTestSuite) TestApproveFirst_WithNotes() {
	// Arrange
	expected := &domain.LimitOverrideRequest{
		ID:     "req1",
		Status: domain.OverridePendingSecond,
	}
	s.mockService.On("ApproveFirst", mock.Anything, "req1", "alice@complyhub.io", "looks sane").Return(expected, nil)

	body, _ := json.Marshal(map[string]any{"notes": "looks sane"})

	// Act
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/overrides/req1/approve-first", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	s.router.ServeHTTP(w, req)

	// Assert
	s.Equal(http.StatusOK, w.Code)
	s.mockService.AssertExpectations(s.T())
}

func (s *OverrideHandlerTestSuite) TestApproveSecond_SameApprover() {
	// Arrange
	s.mockService.On("ApproveSecond", mock.Anything, "req1", "alice@complyhub.io", "").Return(nil, service.ErrSameApprover)

	// Act
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/overrides/req1/approve-second", nil)
	s.router.ServeHTTP(w, req)

	// Assert
	s.Equal(http.StatusForbidden, w.Code)
}

func (s *OverrideHandlerTestSuite) TestApproveSecond_WrongState() {
	// Arrange
	s.mockService.On("ApproveSecond", mock.Anything, "req1", "alice@complyhub.io", "").Return(nil, service.ErrNotPendingSecond)

	// Act
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/overrides/req1/approve-second", nil)
	s.router.ServeHTTP(w, req)

	// Assert
	s.Equal(http.StatusConflict, w.Code)
}

func (s *OverrideHandlerTestSuite) TestRejectOverride_Success() {
	// Arrange
	expected := &domain.LimitOverrideRequest{
		ID:              "req1",
		Status:          domain.OverrideRejected,
		RejectionReason: "not justified",
	}
	s.mockService.On("Reject", mock.Anything, "req1", "alice@complyhub.io", "not justified").Return(expected, nil)

	body, _ := json.Marshal(map[string]any{"reason": "not justified"})

	// Act
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/overrides/req1/reject", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	s.router.ServeHTTP(w, req)

	// Assert
	s.Equal(http.StatusOK, w.Code)
	s.mockService.AssertExpectations(s.T())
}

func (s *OverrideHandlerTestSuite) TestRejectOverride_MissingReason() {
	// Act
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/overrides/req1/reject", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	s.router.ServeHTTP(w, req)

	// Assert
	s.Equal(http.StatusBadRequest, w.Code)
	s.mockService.AssertNotCalled(s.T(), "Reject", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *OverrideHandlerTestSuite) TestApplyOverride_Success() {
	// Arrange
	expected := &domain.LimitOverrideRequest{
		ID:        "req1",
		Status:    domain.OverrideApplied,
		AppliedBy: "alice@complyhub.io",
	}
	s.mockService.On("Apply", mock.Anything, "req1", "alice@complyhub.io").Return(expected, nil)

	// Act
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/overrides/req1/apply", nil)
	s.router.ServeHTTP(w, req)

	// Assert
	s.Equal(http.StatusOK, w.Code)
	s.mockService.AssertExpectations(s.T())
}

func (s *OverrideHandlerTestSuite) TestApplyOverride_NotApproved() {
	// Arrange
	s.mockService.On("Apply", mock.Anything, "req1", "alice@complyhub.io").Return(nil, service.ErrNotApproved)

	// Act
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/overrides/req1/apply", nil)
	s.router.ServeHTTP(w, req)

	// Assert
	s.Equal(http.StatusConflict, w.Code)
}

func (s *OverrideHandlerTestSuite) TestGetOverride_NotFound() {
	// Arrange
	s.mockService.On("GetByID", mock.Anything, "ghost").Return(nil, service.ErrOverrideNotFound)

	// Act
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/overrides/ghost", nil)
	s.router.ServeHTTP(w, req)

	// Assert
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *OverrideHandlerTestSuite) TestListPendingApprovals_DefaultPagination() {
	// Arrange
	pending := []domain.LimitOverrideRequest{
		{ID: "req1", Status: domain.OverridePendingFirst},
	}
	s.mockService.On("ListPendingApprovals", mock.Anything, 50, 0).Return(pending, nil)

	// Act
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/overrides/pending", nil)
	s.router.ServeHTTP(w, req)

	// Assert
	s.Equal(http.StatusOK, w.Code)

	var resp []dto.OverrideResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Len(resp, 1)
	s.mockService.AssertExpectations(s.T())
}
