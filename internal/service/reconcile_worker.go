package service

import (
	"context"
	"log"
	"time"

	"github.com/clipstream/backend/internal/repository"
)

// ReconcileWorker is a periodic background job that rewrites every
// channel's subscriber_count from the subscriptions table. The toggle
// path keeps the pair consistent transactionally; this repairs any
// drift left behind by operator surgery or a crash mid-recovery.
type ReconcileWorker struct {
	channels *repository.ChannelRepo
	interval time.Duration
	stopCh   chan struct{}
}

// NewReconcileWorker creates a worker that ticks every interval.
func NewReconcileWorker(channels *repository.ChannelRepo, interval time.Duration) *ReconcileWorker {
	return &ReconcileWorker{
		channels: channels,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the periodic reconciliation loop. It runs one tick
// immediately, then every interval.
func (w *ReconcileWorker) Start(ctx context.Context) {
	log.Printf("reconcile-worker: starting (interval=%s)", w.interval)

	w.tick(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.tick(ctx)
		case <-ctx.Done():
			log.Println("reconcile-worker: stopping (context cancelled)")
			return
		case <-w.stopCh:
			log.Println("reconcile-worker: stopping (stop signal)")
			return
		}
	}
}

// Stop signals the worker to stop.
func (w *ReconcileWorker) Stop() {
	close(w.stopCh)
}

func (w *ReconcileWorker) tick(ctx context.Context) {
	start := time.Now()
	corrected, err := w.channels.RecomputeSubscriberCounts(ctx)
	if err != nil {
		log.Printf("reconcile-worker: tick failed: %v", err)
		return
	}
	if corrected > 0 {
		log.Printf("reconcile-worker: corrected %d drifted counters in %s", corrected, time.Since(start))
	}
}
