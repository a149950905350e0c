package workers

import (
	"context"
	"time"

	"github.com/alimgiray/showcase/pkg/logger"
)

const promotionBatchSize = 100

// PendingUserPromoter converts claimed pending users into project users
type PendingUserPromoter interface {
	PromotePendingUsers(ctx context.Context, batch int) (int, error)
}

// PromotionWorker periodically links pending contributors to new accounts
type PromotionWorker struct {
	*BaseWorker
	promoter PendingUserPromoter
	interval time.Duration
}

// NewPromotionWorker creates a new promotion worker
func NewPromotionWorker(workerID string, promoter PendingUserPromoter, interval time.Duration) *PromotionWorker {
	return &PromotionWorker{
		BaseWorker: NewBaseWorker(workerID),
		promoter:   promoter,
		interval:   interval,
	}
}

// Start begins the promotion worker process
func (w *PromotionWorker) Start(ctx context.Context) error {
	w.setRunning(true)
	defer w.setRunning(false)

	log := logger.WithField("worker_id", w.WorkerID)
	log.Info("Promotion worker started")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		w.runOnce(ctx)

		select {
		case <-ctx.Done():
			log.Info("Promotion worker stopping due to context cancellation")
			return ctx.Err()
		case <-w.StopChan:
			log.Info("Promotion worker stopping")
			return nil
		case <-ticker.C:
		}
	}
}

// runOnce promotes in batches until nothing is left or an error occurs
func (w *PromotionWorker) runOnce(ctx context.Context) {
	for {
		promoted, err := w.promoter.PromotePendingUsers(ctx, promotionBatchSize)
		if err != nil {
			if ctx.Err() == nil {
				logger.WithError(err).WithField("worker_id", w.WorkerID).Warn("Promotion worker error")
			}
			return
		}
		if promoted < promotionBatchSize {
			return
		}
	}
}
