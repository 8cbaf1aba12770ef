// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-budget-keeper/internal/logger"
)

// RefreshWorker periodically re-syncs stale cached collections.
// The worker is idle until Start is called.
type RefreshWorker struct {
	refresher StaleRefresher
	interval  time.Duration
	log       *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRefreshWorker creates a RefreshWorker that calls refresher.RefreshStale
// on a ticker. If interval is zero or negative it defaults to 5 minutes.
func NewRefreshWorker(refresher StaleRefresher, interval time.Duration, log *logger.Logger) *RefreshWorker {
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	return &RefreshWorker{
		refresher: refresher,
		interval:  interval,
		log:       log,
	}
}

// Start implements Worker. It stops any previously running job, then launches
// a background goroutine that refreshes stale collections every interval.
// The goroutine exits when ctx is cancelled or Stop is called.
func (w *RefreshWorker) Start(ctx context.Context) {
	w.Stop()

	w.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(w.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if err := w.refresher.RefreshStale(jobCtx); err != nil {
					w.log.Warn().Err(err).Msg("periodic refresh failed")
				}
			}
		}
	}()
}

// Stop implements Worker. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited. Safe to call when the job is
// not running (no-op in that case).
func (w *RefreshWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}
