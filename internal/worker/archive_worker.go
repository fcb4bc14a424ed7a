package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/complyhub/complyhub-api/internal/config"
	"github.com/complyhub/complyhub-api/internal/domain"
	"github.com/complyhub/complyhub-api/internal/repository"
	"github.com/complyhub/complyhub-api/internal/service/queue"
	"github.com/complyhub/complyhub-api/internal/storage"
	"github.com/complyhub/complyhub-api/internal/tenantctx"
	"github.com/complyhub/complyhub-api/pkg/logger"
)

// ArchiveWorker snapshots a tenant's old audit events into that tenant's
// storage container before the cleanup worker deletes the rows. Archives go
// through the storage router, so an unreachable remote degrades to the
// local fallback instead of losing the snapshot.
type ArchiveWorker struct {
	sqsService    *queue.SQSService
	repository    repository.PostgresRepository
	storageRouter *storage.Router
	logger        *logger.Logger
	workerCount   int
	pollInterval  time.Duration
	maxMessages   int32
	waitTime      int32
	shutdownChan  chan struct{}
	waitGroup     sync.WaitGroup
}

func NewArchiveWorker(
	sqsService *queue.SQSService,
	repository repository.PostgresRepository,
	storageRouter *storage.Router,
	logger *logger.Logger,
	workerCount int,
	pollInterval time.Duration,
) *ArchiveWorker {
	return &ArchiveWorker{
		sqsService:    sqsService,
		repository:    repository,
		storageRouter: storageRouter,
		logger:        logger,
		workerCount:   workerCount,
		pollInterval:  pollInterval,
		maxMessages:   10,
		waitTime:      20,
		shutdownChan:  make(chan struct{}),
	}
}

func (w *ArchiveWorker) Start() {
	w.logger.Info("Starting archive workers...")

	for i := 0; i < w.workerCount; i++ {
		w.waitGroup.Add(1)
		go w.runWorker(i)
	}
}

func (w *ArchiveWorker) Stop() {
	w.logger.Info("Stopping archive workers...")
	close(w.shutdownChan)
	w.waitGroup.Wait()
	w.logger.Info("All archive workers stopped")
}

func (w *ArchiveWorker) runWorker(workerID int) {
	defer w.waitGroup.Done()

	w.logger.Infof("Archive worker %d started", workerID)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.shutdownChan:
			w.logger.Infof("Archive worker %d shutting down", workerID)
			return
		case <-ticker.C:
			if err := w.processMessages(context.Background()); err != nil {
				w.logger.Errorf("Archive worker %d failed to process messages: %v", workerID, err)
			}
		}
	}
}

func (w *ArchiveWorker) processMessages(ctx context.Context) error {
	archiveQueueURL := config.DefaultSQSConfig().ArchiveQueueURL

	messages, err := w.sqsService.ReceiveMessages(ctx, archiveQueueURL, w.maxMessages, w.waitTime)
	if err != nil {
		return fmt.Errorf("failed to receive messages: %w", err)
	}

	for _, msg := range messages {
		if msg.Message.Type == queue.MessageTypeArchive {
			if err := w.processArchiveMessage(ctx, msg.Message); err != nil {
				w.logger.Errorf("Failed to process archive message: %v", err)
				continue
			}

			// Only delete the message if processing was successful
			if err := w.sqsService.DeleteMessage(ctx, archiveQueueURL, msg.ReceiptHandle); err != nil {
				w.logger.Errorf("Failed to delete message: %v", err)
			}
		}
	}

	return nil
}

func (w *ArchiveWorker) processArchiveMessage(ctx context.Context, msg queue.Message) error {
	w.logger.Infof("Processing archive message for tenant %s (before: %s)",
		msg.TenantID, msg.BeforeDate.Format(time.RFC3339))

	events, err := w.repository.AuditEvent().ListBeforeDate(ctx, msg.TenantID, msg.BeforeDate)
	if err != nil {
		return fmt.Errorf("failed to fetch events for archival for tenant %s: %w", msg.TenantID, err)
	}

	if len(events) == 0 {
		w.logger.Infof("No events found for archival for tenant %s before %s", msg.TenantID, msg.BeforeDate.Format(time.RFC3339))
		// Still enqueue cleanup message even if no events found
		return w.enqueueCleanupMessage(ctx, msg.TenantID, msg.BeforeDate)
	}

	w.logger.Infof("Found %d events to archive for tenant %s before %s", len(events), msg.TenantID, msg.BeforeDate.Format(time.RFC3339))

	if err := w.archiveEvents(ctx, msg.TenantID, events, msg.BeforeDate); err != nil {
		return fmt.Errorf("failed to archive events for tenant %s: %w", msg.TenantID, err)
	}

	// Enqueue cleanup message after successful archival
	return w.enqueueCleanupMessage(ctx, msg.TenantID, msg.BeforeDate)
}

func (w *ArchiveWorker) archiveEvents(ctx context.Context, tenantID string, events []domain.AuditEvent, beforeDate time.Time) error {
	// Bind the tenant so the snapshot lands in the tenant's own container.
	tenant, err := w.repository.Tenant().GetByID(ctx, tenantID)
	if err != nil {
		return fmt.Errorf("failed to resolve tenant %s: %w", tenantID, err)
	}
	ctx = tenantctx.WithTenant(ctx, tenant)

	archiveData := map[string]interface{}{
		"tenant_id":   tenantID,
		"before_date": beforeDate,
		"archived_at": time.Now(),
		"event_count": len(events),
		"events":      events,
	}

	jsonData, err := json.MarshalIndent(archiveData, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal events to JSON: %w", err)
	}

	path := fmt.Sprintf("audit-archives/audit_events_before_%s.json", beforeDate.Format("2006-01-02_15-04-05"))
	stored, err := w.storageRouter.Save(ctx, path, jsonData)
	if err != nil {
		return fmt.Errorf("failed to store archive: %w", err)
	}

	w.logger.Infof("Successfully archived %d events for tenant %s to %s", len(events), tenantID, stored)
	return nil
}

func (w *ArchiveWorker) enqueueCleanupMessage(ctx context.Context, tenantID string, beforeDate time.Time) error {
	if err := w.sqsService.SendCleanupMessage(ctx, tenantID, beforeDate); err != nil {
		return fmt.Errorf("failed to enqueue cleanup message: %w", err)
	}

	w.logger.Infof("Successfully enqueued cleanup message for tenant %s", tenantID)
	return nil
}
