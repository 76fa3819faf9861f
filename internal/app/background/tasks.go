package background

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/usecase"
)

// SyncScheduler starts due runs without waiting for them. Wait blocks until
// the started runs are done.
type SyncScheduler interface {
	RunDue(ctx context.Context) error
	Wait()
}

type HealthChecker interface {
	Check(ctx context.Context) error
}

type Intervals struct {
	SyncTick     time.Duration
	SessionPurge time.Duration
	HealthCheck  time.Duration
}

type BackgroundTasks struct {
	Sync        SyncScheduler
	AuthUsecase usecase.AuthUsecase
	Health      HealthChecker
	Intervals   Intervals
	Logger      *slog.Logger

	loops sync.WaitGroup
}

func NewBackgroundTasks(
	scheduler SyncScheduler,
	authUC usecase.AuthUsecase,
	health HealthChecker,
	intervals Intervals,
	logger *slog.Logger,
) *BackgroundTasks {
	return &BackgroundTasks{
		Sync:        scheduler,
		AuthUsecase: authUC,
		Health:      health,
		Intervals:   intervals,
		Logger:      logger,
	}
}

// StartAll launches every loop. They stop when ctx is cancelled.
func (bt *BackgroundTasks) StartAll(ctx context.Context) {
	if bt.Health != nil {
		_ = bt.Health.Check(ctx)
		bt.start(ctx, bt.Intervals.HealthCheck, bt.checkHealth)
	}
	bt.start(ctx, bt.Intervals.SyncTick, bt.runDueSyncs)
	bt.start(ctx, bt.Intervals.SessionPurge, bt.purgeSessions)
}

// Wait blocks until the loops have stopped and scheduled syncs have finished.
// Call it after cancelling the context given to StartAll.
func (bt *BackgroundTasks) Wait() {
	bt.loops.Wait()
	bt.Sync.Wait()
}

func (bt *BackgroundTasks) start(ctx context.Context, interval time.Duration, task func(context.Context)) {
	if interval <= 0 {
		return
	}
	bt.loops.Add(1)
	go func() {
		defer bt.loops.Done()
		bt.every(ctx, interval, task)
	}()
}

func (bt *BackgroundTasks) every(ctx context.Context, interval time.Duration, task func(context.Context)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			task(ctx)
		}
	}
}

func (bt *BackgroundTasks) runDueSyncs(ctx context.Context) {
	if err := bt.Sync.RunDue(ctx); err != nil {
		bt.Logger.Error("auto-sync tick failed", "error", err)
	}
}

func (bt *BackgroundTasks) purgeSessions(ctx context.Context) {
	n, err := bt.AuthUsecase.PurgeExpiredSessions(ctx)
	if err != nil {
		bt.Logger.Error("session purge failed", "error", err)
		return
	}
	if n > 0 {
		bt.Logger.Info("expired sessions purged", "count", n)
	}
}

// checkHealth errors are logged by the health handler itself.
func (bt *BackgroundTasks) checkHealth(ctx context.Context) {
	_ = bt.Health.Check(ctx)
}
