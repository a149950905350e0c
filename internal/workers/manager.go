package workers

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/alimgiray/showcase/pkg/config"
	"github.com/alimgiray/showcase/pkg/logger"
)

// WorkerManager manages the background workers
type WorkerManager struct {
	workers  []Worker
	promoter PendingUserPromoter
	cfg      config.WorkerConfig
	wg       sync.WaitGroup
	ctx      context.Context
	cancel   context.CancelFunc
}

// NewWorkerManager creates a new worker manager
func NewWorkerManager(promoter PendingUserPromoter, cfg config.WorkerConfig) *WorkerManager {
	ctx, cancel := context.WithCancel(context.Background())
	return &WorkerManager{
		workers:  make([]Worker, 0),
		promoter: promoter,
		cfg:      cfg,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// StartAll starts the configured number of workers
func (wm *WorkerManager) StartAll() error {
	if wm.cfg.PromotionWorkers <= 0 {
		logger.Infof("Promotion workers disabled")
		return nil
	}
	if wm.cfg.PromotionInterval <= 0 {
		return fmt.Errorf("invalid promotion interval %d", wm.cfg.PromotionInterval)
	}

	interval := time.Duration(wm.cfg.PromotionInterval) * time.Second
	for i := 0; i < wm.cfg.PromotionWorkers; i++ {
		worker := NewPromotionWorker(fmt.Sprintf("promotion-%d", i+1), wm.promoter, interval)
		wm.workers = append(wm.workers, worker)
		wm.startWorker(worker)
	}

	logger.Infof("Started %d total workers", len(wm.workers))
	return nil
}

// StopAll gracefully stops all workers
func (wm *WorkerManager) StopAll() error {
	logger.Infof("Stopping all workers...")

	wm.cancel()
	for _, worker := range wm.workers {
		if err := worker.Stop(); err != nil {
			logger.WithError(err).WithField("worker_id", worker.GetWorkerID()).Warn("Error stopping worker")
		}
	}
	wm.wg.Wait()

	logger.Infof("All workers stopped")
	return nil
}

func (wm *WorkerManager) startWorker(worker Worker) {
	wm.wg.Add(1)
	go func() {
		defer wm.wg.Done()
		if err := worker.Start(wm.ctx); err != nil && err != context.Canceled {
			logger.WithError(err).WithField("worker_id", worker.GetWorkerID()).Warn("Worker stopped with error")
		}
	}()
}

// GetWorkerStatus returns the status of all workers
func (wm *WorkerManager) GetWorkerStatus() map[string]bool {
	status := make(map[string]bool, len(wm.workers))
	for _, worker := range wm.workers {
		status[worker.GetWorkerID()] = worker.IsRunning()
	}
	return status
}
