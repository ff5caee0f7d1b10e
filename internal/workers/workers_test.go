// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anna Voronova

package workers

import (
	"context"
	"testing"
	"time"

	"github.com/avoronova/craft-stash/internal/logger"
)

func testLogger() *logger.Logger {
	return logger.Nop()
}

// mockJob is a test implementation of service.ClientRefreshJob that tracks
// how many times Start and Stop were called.
type mockJob struct {
	startCount int
	stopCount  int
	interval   time.Duration
}

func (m *mockJob) Start(_ context.Context, interval time.Duration) {
	m.startCount++
	m.interval = interval
}

func (m *mockJob) Stop() {
	m.stopCount++
}

// mockWorker tracks Run/Stop calls on the Worker interface directly.
type mockWorker struct {
	runCount  int
	stopCount int
}

func (m *mockWorker) Run(_ context.Context) { m.runCount++ }
func (m *mockWorker) Stop()                 { m.stopCount++ }

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := &Workers{workers: []Worker{w1, w2, w3}}
	ws.Run(context.Background())

	for i, w := range []*mockWorker{w1, w2, w3} {
		if w.runCount != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, w.runCount)
		}
	}
}

func TestWorkers_Stop_AllWorkersAreStopped(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}

	ws := &Workers{workers: []Worker{w1, w2}}
	ws.Run(context.Background())
	ws.Stop()

	for i, w := range []*mockWorker{w1, w2} {
		if w.stopCount != 1 {
			t.Errorf("worker[%d]: expected stopCount=1, got %d", i, w.stopCount)
		}
	}
}

func TestWorkers_Run_Nil(t *testing.T) {
	ws := &Workers{}
	// Should not panic when workers field is nil
	ws.Run(context.Background())
	ws.Stop()
}

func TestRefreshWorker_DelegatesToJob(t *testing.T) {
	job := &mockJob{}
	w := newRefreshWorker(job, 2*time.Minute, testLogger())

	w.Run(context.Background())
	w.Stop()

	if job.startCount != 1 {
		t.Errorf("expected Start to be called once, got %d", job.startCount)
	}
	if job.stopCount != 1 {
		t.Errorf("expected Stop to be called once, got %d", job.stopCount)
	}
	if job.interval != 2*time.Minute {
		t.Errorf("expected interval 2m, got %v", job.interval)
	}
}
