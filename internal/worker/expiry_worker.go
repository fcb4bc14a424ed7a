package worker

import (
	"context"
	"sync"
	"time"

	"github.com/complyhub/complyhub-api/internal/service"
	"github.com/complyhub/complyhub-api/pkg/logger"
)

// ExpiryWorker sweeps limit override requests whose expiry passed before
// they were applied and moves them to the expired status. Applied overrides
// are never touched; unwinding an applied limit is a human decision.
type ExpiryWorker struct {
	overrides     *service.OverrideService
	logger        *logger.Logger
	sweepInterval time.Duration
	shutdownChan  chan struct{}
	waitGroup     sync.WaitGroup
}

func NewExpiryWorker(overrides *service.OverrideService, logger *logger.Logger, sweepInterval time.Duration) *ExpiryWorker {
	return &ExpiryWorker{
		overrides:     overrides,
		logger:        logger,
		sweepInterval: sweepInterval,
		shutdownChan:  make(chan struct{}),
	}
}

func (w *ExpiryWorker) Start() {
	w.logger.Info("Starting expiry worker...")
	w.waitGroup.Add(1)
	go w.run()
}

func (w *ExpiryWorker) Stop() {
	w.logger.Info("Stopping expiry worker...")
	close(w.shutdownChan)
	w.waitGroup.Wait()
	w.logger.Info("Expiry worker stopped")
}

func (w *ExpiryWorker) run() {
	defer w.waitGroup.Done()

	ticker := time.NewTicker(w.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.shutdownChan:
			return
		case <-ticker.C:
			w.sweep(context.Background())
		}
	}
}

func (w *ExpiryWorker) sweep(ctx context.Context) {
	expired, err := w.overrides.ExpireStale(ctx, time.Now())
	if err != nil {
		w.logger.Errorf("Failed to expire stale override requests: %v", err)
		return
	}
	if expired > 0 {
		w.logger.Infof("Expired %d stale override requests", expired)
	}
}
