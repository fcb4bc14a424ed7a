package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/complyhub/complyhub-api/internal/domain"
	"github.com/complyhub/complyhub-api/internal/mocks"
	"github.com/complyhub/complyhub-api/pkg/logger"
)

type AuditServiceTestSuite struct {
	suite.Suite
	mockRepo       *mocks.Repository
	mockEvents     *mocks.AuditEventRepository
	mockOpenSearch *mocks.OpenSearchRepository
	mockQueue      *mocks.QueueService
	mockPublisher  *mocks.EventPublisher
	service        *AuditService
}

func (s *AuditServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockEvents = new(mocks.AuditEventRepository)
	s.mockOpenSearch = new(mocks.OpenSearchRepository)
	s.mockQueue = new(mocks.QueueService)
	s.mockPublisher = new(mocks.EventPublisher)

	s.mockRepo.On("AuditEvent").Return(s.mockEvents)
	s.mockRepo.On("OpenSearch").Return(s.mockOpenSearch)

	s.service = NewAuditService(s.mockRepo, s.mockQueue, s.mockPublisher, logger.NewLogger("development"))
}

func TestAuditService(t *testing.T) {
	suite.Run(t, new(AuditServiceTestSuite))
}

func (s *AuditServiceTestSuite) event() *domain.AuditEvent {
	event := &domain.AuditEvent{
		ID:        "ev1",
		EventName: domain.EventOverrideApplied,
		Actor:     "carol@complyhub.io",
		Timestamp: time.Now(),
	}
	event.ScopeToTenant("t1")
	return event
}

func (s *AuditServiceTestSuite) TestRecord_Success() {
	// Arrange
	ctx := context.Background()
	event := s.event()

	s.mockEvents.On("Create", ctx, event).Return(nil)
	s.mockQueue.On("SendIndexMessage", ctx, event).Return(nil)
	s.mockPublisher.On("Publish", ctx, event).Return(nil)

	// Act
	s.service.Record(ctx, event)

	// Assert
	s.mockEvents.AssertExpectations(s.T())
	s.mockQueue.AssertExpectations(s.T())
	s.mockPublisher.AssertExpectations(s.T())
}

func (s *AuditServiceTestSuite) TestRecord_SetsTimestamp() {
	// Arrange
	ctx := context.Background()
	event := s.event()
	event.Timestamp = time.Time{}

	s.mockEvents.On("Create", ctx, mock.MatchedBy(func(ev *domain.AuditEvent) bool {
		return !ev.Timestamp.IsZero()
	})).Return(nil)
	s.mockQueue.On("SendIndexMessage", ctx, mock.Anything).Return(nil)
	s.mockPublisher.On("Publish", ctx, mock.Anything).Return(nil)

	// Act
	s.service.Record(ctx, event)

	// Assert
	s.mockEvents.AssertExpectations(s.T())
}

func (s *AuditServiceTestSuite) TestRecord_StoreFailureSkipsFanOut() {
	// Arrange
	ctx := context.Background()
	event := s.event()

	s.mockEvents.On("Create", ctx, event).Return(errors.New("connection refused"))

	// Act
	s.service.Record(ctx, event)

	// Assert
	s.mockQueue.AssertNotCalled(s.T(), "SendIndexMessage", ctx, event)
	s.mockPublisher.AssertNotCalled(s.T(), "Publish", ctx, event)
}

func (s *AuditServiceTestSuite) TestRecord_IndexFailureStillPublishes() {
	// Arrange
	ctx := context.Background()
	event := s.event()

	s.mockEvents.On("Create", ctx, event).Return(nil)
	s.mockQueue.On("SendIndexMessage", ctx, event).Return(errors.New("queue unavailable"))
	s.mockPublisher.On("Publish", ctx, event).Return(nil)

	// Act
	s.service.Record(ctx, event)

	// Assert
	s.mockPublisher.AssertExpectations(s.T())
}

func (s *AuditServiceTestSuite) TestSearch_WithCriteria_UsesOpenSearch() {
	// Arrange
	ctx := context.Background()
	filter := &domain.AuditEventFilter{
		TenantID:  "t1",
		EventName: domain.EventOverrideApplied,
		Page:      1,
		PageSize:  10,
	}
	expected := []domain.AuditEvent{*s.event()}

	s.mockOpenSearch.On("Search", ctx, filter).Return(expected, nil)

	// Act
	events, err := s.service.Search(ctx, filter)

	// Assert
	s.NoError(err)
	s.Equal(expected, events)
	s.mockOpenSearch.AssertExpectations(s.T())
	s.mockEvents.AssertNotCalled(s.T(), "List", ctx, mock.Anything)
}

func (s *AuditServiceTestSuite) TestSearch_PlainListing_UsesPostgres() {
	// Arrange
	ctx := context.Background()
	filter := &domain.AuditEventFilter{TenantID: "t1", Page: 2, PageSize: 20}
	expected := []domain.AuditEvent{*s.event()}

	s.mockEvents.On("List", ctx, mock.MatchedBy(func(f domain.AuditEventFilter) bool {
		return f.Limit == 20 && f.Offset == 20
	})).Return(expected, nil)

	// Act
	events, err := s.service.Search(ctx, filter)

	// Assert
	s.NoError(err)
	s.Equal(expected, events)
	s.mockOpenSearch.AssertNotCalled(s.T(), "Search", ctx, filter)
}

func (s *AuditServiceTestSuite) TestScheduleArchive() {
	// Arrange
	ctx := context.Background()
	before := time.Now().AddDate(0, -6, 0)

	s.mockQueue.On("SendArchiveMessage", ctx, "t1", before).Return(nil)

	// Act
	err := s.service.ScheduleArchive(ctx, "t1", before)

	// Assert
	s.NoError(err)
	s.mockQueue.AssertExpectations(s.T())
}
