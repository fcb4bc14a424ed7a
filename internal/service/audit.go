package service

import (
	"context"
	"time"

	"github.com/complyhub/complyhub-api/internal/domain"
	"github.com/complyhub/complyhub-api/internal/repository"
	"github.com/complyhub/complyhub-api/pkg/logger"
)

//go:generate mockery --name EventPublisher --output ../mocks
type EventPublisher interface {
	Publish(ctx context.Context, event *domain.AuditEvent) error
}

//go:generate mockery --name QueueService --output ../mocks
type QueueService interface {
	SendIndexMessage(ctx context.Context, event *domain.AuditEvent) error
	SendArchiveMessage(ctx context.Context, tenantID string, beforeDate time.Time) error
	SendCleanupMessage(ctx context.Context, tenantID string, beforeDate time.Time) error
}

// AuditService is the append-only trail of entitlement state changes.
// Events land in postgres synchronously; search indexing is asynchronous
// via the queue, and live subscribers get a best-effort fan-out. A failed
// index or fan-out never fails the write.
type AuditService struct {
	repo      repository.Repository
	queue     QueueService
	publisher EventPublisher
	logger    *logger.Logger
}

func NewAuditService(repo repository.Repository, queue QueueService, publisher EventPublisher, logger *logger.Logger) *AuditService {
	return &AuditService{
		repo:      repo,
		queue:     queue,
		publisher: publisher,
		logger:    logger,
	}
}

// Record appends one event. The postgres write is the source of truth;
// everything after it is best-effort.
func (s *AuditService) Record(ctx context.Context, event *domain.AuditEvent) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	if err := s.repo.AuditEvent().Create(ctx, event); err != nil {
		s.logger.Errorf("failed to store audit event %s: %v", event.EventName, err)
		return
	}

	if s.queue != nil {
		if err := s.queue.SendIndexMessage(ctx, event); err != nil {
			s.logger.Errorf("failed to enqueue index message for audit event %s: %v", event.ID, err)
		}
	}

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, event); err != nil {
			s.logger.Errorf("failed to publish audit event %s: %v", event.ID, err)
		}
	}
}

// Search serves operator queries. Filters that carry search criteria go to
// OpenSearch; plain listings read postgres directly.
func (s *AuditService) Search(ctx context.Context, filter *domain.AuditEventFilter) ([]domain.AuditEvent, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 10
	}
	filter.Limit = filter.PageSize
	filter.Offset = (filter.Page - 1) * filter.PageSize

	if filter.EventName != "" || filter.Actor != "" {
		return s.repo.OpenSearch().Search(ctx, filter)
	}

	return s.repo.AuditEvent().List(ctx, *filter)
}

// ScheduleArchive enqueues retention archival for one tenant's events older
// than beforeDate. The archive worker picks it up from the queue.
func (s *AuditService) ScheduleArchive(ctx context.Context, tenantID string, beforeDate time.Time) error {
	return s.queue.SendArchiveMessage(ctx, tenantID, beforeDate)
}
