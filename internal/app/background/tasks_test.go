package background

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/usecase"
	"github.com/stretchr/testify/assert"
)

type countingSync struct {
	calls  atomic.Int32
	waited atomic.Bool
}

func (s *countingSync) RunDue(ctx context.Context) error {
	s.calls.Add(1)
	return errors.New("store unreachable")
}

func (s *countingSync) Wait() { s.waited.Store(true) }

type countingHealth struct{ calls atomic.Int32 }

func (h *countingHealth) Check(ctx context.Context) error {
	h.calls.Add(1)
	return nil
}

type purgingAuth struct {
	usecase.AuthUsecase
	calls atomic.Int32
}

func (a *purgingAuth) PurgeExpiredSessions(ctx context.Context) (int64, error) {
	a.calls.Add(1)
	return 2, nil
}

func TestStartAll_RunsEveryLoopUntilCancelled(t *testing.T) {
	syncer := &countingSync{}
	health := &countingHealth{}
	auth := &purgingAuth{}

	tasks := NewBackgroundTasks(syncer, auth, health, Intervals{
		SyncTick:     5 * time.Millisecond,
		SessionPurge: 5 * time.Millisecond,
		HealthCheck:  5 * time.Millisecond,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	ctx, cancel := context.WithCancel(context.Background())
	tasks.StartAll(ctx)

	assert.Eventually(t, func() bool {
		return syncer.calls.Load() >= 2 && auth.calls.Load() >= 2 && health.calls.Load() >= 3
	}, time.Second, 5*time.Millisecond)

	cancel()
	tasks.Wait()
	assert.True(t, syncer.waited.Load(), "shutdown waits for scheduled syncs")

	settled := syncer.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, settled, syncer.calls.Load())
}

func TestStartAll_ZeroIntervalDisablesLoop(t *testing.T) {
	syncer := &countingSync{}
	auth := &purgingAuth{}

	tasks := NewBackgroundTasks(syncer, auth, nil, Intervals{SessionPurge: 5 * time.Millisecond},
		slog.New(slog.NewTextHandler(io.Discard, nil)))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	tasks.StartAll(ctx)

	assert.Eventually(t, func() bool { return auth.calls.Load() >= 1 }, time.Second, 5*time.Millisecond)
	assert.Zero(t, syncer.calls.Load())
}
