// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"
)

// tickerJob calls fn every interval on a background goroutine. It backs
// the concrete workers of this package.
type tickerJob struct {
	interval time.Duration
	// runAtStart makes Run call fn once before the first tick.
	runAtStart bool
	fn         func(ctx context.Context)

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// Run stops any previous run, then starts the ticker goroutine. A
// non-positive interval disables ticking; with runAtStart set fn still runs
// once.
func (j *tickerJob) Run(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()

		if j.runAtStart {
			j.fn(jobCtx)
		}
		if j.interval <= 0 {
			return
		}

		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.fn(jobCtx)
			}
		}
	}()
}

// Stop cancels the goroutine and waits for it to exit. It is a no-op when
// the job is not running.
func (j *tickerJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
