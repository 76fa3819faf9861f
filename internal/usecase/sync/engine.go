package syncusecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/domain"
	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/infrastructure/metrics"
	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/infrastructure/notifier"
)

const defaultPageSize = 100

type CallbackSender interface {
	SendAsync(callbackURL string, payload notifier.SyncCallbackPayload)
}

type Engine struct {
	Connections domain.StoreConnectionRepository
	Runs        domain.SyncRunRepository
	Fetcher     domain.OrderFetcher
	Importer    *Importer
	Guard       *RunGuard
	Events      domain.EventPublisher
	Callbacks   CallbackSender
	Metrics     *metrics.SyncMetrics
	PageSize    int
	Logger      *slog.Logger
	Now         func() time.Time

	inflight sync.WaitGroup
}

func NewEngine(
	connections domain.StoreConnectionRepository,
	runs domain.SyncRunRepository,
	fetcher domain.OrderFetcher,
	importer *Importer,
	events domain.EventPublisher,
	callbacks CallbackSender,
	syncMetrics *metrics.SyncMetrics,
	pageSize int,
	logger *slog.Logger,
) *Engine {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return &Engine{
		Connections: connections,
		Runs:        runs,
		Fetcher:     fetcher,
		Importer:    importer,
		Guard:       NewRunGuard(),
		Events:      events,
		Callbacks:   callbacks,
		Metrics:     syncMetrics,
		PageSize:    pageSize,
		Logger:      logger,
		Now:         time.Now,
	}
}

// Run pulls every page of orders for a connection. A page failure ends the
// run; the counts gathered so far are returned together with the error.
// Cancelling ctx does not stop a run that has started.
func (e *Engine) Run(ctx context.Context, connectionID string) (domain.SyncResult, error) {
	ctx = context.WithoutCancel(ctx)

	conn, err := e.Connections.GetByID(ctx, connectionID)
	if err != nil {
		return domain.SyncResult{}, err
	}
	if !conn.IsActive {
		return domain.SyncResult{}, domain.Validationf("store connection %s is inactive", conn.Name)
	}

	if !e.Guard.TryAcquire(conn.ID) {
		return domain.SyncResult{}, domain.ErrSyncInProgress
	}
	defer e.Guard.Release(conn.ID)

	run := &domain.SyncRun{
		ID:           uuid.NewString(),
		ConnectionID: conn.ID,
		StartedAt:    e.Now().UTC(),
	}
	log := e.Logger.With("connection_id", conn.ID, "run_id", run.ID)
	log.Info("sync started", "store", conn.StoreURL)

	var (
		result   domain.SyncResult
		failures []*domain.ImportFailure
		pageErr  error
	)

	for page := 1; ; page++ {
		orders, err := e.Fetcher.FetchOrders(ctx, conn, page, e.PageSize)
		if err != nil {
			pageErr = fmt.Errorf("fetch page %d: %w", page, err)
			e.Metrics.RecordPageError(conn.Platform)
			log.Error("sync page fetch failed", "page", page, "error", err)
			break
		}
		run.Pages = page
		if len(orders) == 0 {
			break
		}

		for _, order := range orders {
			outcome, err := e.Importer.Import(ctx, ImportOrderInput{
				Order:        order,
				Source:       domain.SourceWooCommerce,
				ConnectionID: conn.ID,
			})
			switch {
			case err != nil:
				result.Skipped++
				failures = append(failures, &domain.ImportFailure{
					ExternalID: order.ExternalID,
					Reason:     err.Error(),
				})
				e.Metrics.RecordSkipped(string(domain.SourceWooCommerce), "error")
				log.Warn("order import failed", "external_id", order.ExternalID, "error", err)
			case outcome == OutcomeDuplicate:
				result.Skipped++
			default:
				result.Imported++
			}
		}

		if len(orders) < e.PageSize {
			break
		}
	}

	run.Imported = result.Imported
	run.Skipped = result.Skipped
	run.FinishedAt = e.Now().UTC()
	run.State = domain.SyncRunSucceeded
	if pageErr != nil {
		run.State = domain.SyncRunFailed
		run.Error = pageErr.Error()
	}

	e.finish(ctx, conn, run, failures, log)

	if pageErr != nil {
		return result, pageErr
	}
	return result, nil
}

// finish records the outcome. Its failures are logged and never change the
// result of the run.
func (e *Engine) finish(ctx context.Context, conn *domain.StoreConnection, run *domain.SyncRun, failures []*domain.ImportFailure, log *slog.Logger) {
	if err := e.Connections.RecordSync(ctx, conn.ID, run.FinishedAt, run.Imported); err != nil {
		log.Error("failed to record sync on connection", "error", err)
	}
	if err := e.Runs.CreateRun(ctx, run, failures); err != nil {
		log.Error("failed to store sync run", "error", err)
	}
	if err := e.Events.SyncFinished(run); err != nil {
		log.Warn("failed to publish sync event", "error", err)
	}
	if conn.NotifyURL != "" && e.Callbacks != nil {
		e.Callbacks.SendAsync(conn.NotifyURL, notifier.SyncCallbackPayload{
			RunID:        run.ID,
			ConnectionID: conn.ID,
			StoreName:    conn.Name,
			State:        string(run.State),
			Imported:     run.Imported,
			Skipped:      run.Skipped,
			Error:        run.Error,
			FinishedAt:   run.FinishedAt,
		})
	}

	e.Metrics.RecordRun(conn.Platform, string(run.State), run.FinishedAt.Sub(run.StartedAt).Seconds())
	log.Info("sync finished",
		"state", run.State,
		"imported", run.Imported,
		"skipped", run.Skipped,
		"pages", run.Pages,
	)
}

// RunDue starts a run for every auto-sync connection whose interval has
// elapsed and returns without waiting for them, so a long run never delays
// another connection's schedule. Runs already in flight are skipped quietly.
func (e *Engine) RunDue(ctx context.Context) error {
	conns, err := e.Connections.ListAutoSync(ctx)
	if err != nil {
		return fmt.Errorf("list auto-sync connections: %w", err)
	}

	now := e.Now()
	for _, conn := range conns {
		if !conn.SyncDue(now) || e.Guard.IsRunning(conn.ID) {
			continue
		}
		e.inflight.Add(1)
		go func(id string) {
			defer e.inflight.Done()
			if _, err := e.Run(ctx, id); err != nil {
				if errors.Is(err, domain.ErrSyncInProgress) {
					e.Logger.Debug("sync already running, skipped", "connection_id", id)
					return
				}
				e.Logger.Error("scheduled sync failed", "connection_id", id, "error", err)
			}
		}(conn.ID)
	}
	return nil
}

// Wait blocks until every run started by RunDue has finished.
func (e *Engine) Wait() {
	e.inflight.Wait()
}

// Status summarises every connection of a platform for the status endpoint.
func (e *Engine) Status(ctx context.Context, platform string) (*domain.SyncStatus, error) {
	conns, err := e.Connections.ListByPlatform(ctx, platform)
	if err != nil {
		return nil, err
	}

	status := &domain.SyncStatus{}
	for _, conn := range conns {
		if e.Guard.IsRunning(conn.ID) {
			status.IsRunning = true
		}
		if !conn.IsActive {
			continue
		}
		status.IsActive = true
		if conn.AutoSync && (status.IntervalMinutes == 0 || conn.SyncIntervalMinutes < status.IntervalMinutes) {
			status.IntervalMinutes = conn.SyncIntervalMinutes
		}
		if conn.LastSyncAt != nil && (status.LastSyncAt == nil || conn.LastSyncAt.After(*status.LastSyncAt)) {
			last := *conn.LastSyncAt
			status.LastSyncAt = &last
			status.LastOrderCount = conn.LastOrderCount
		}
	}
	return status, nil
}

// IsRunning reports whether a run for the connection is in flight.
func (e *Engine) IsRunning(connectionID string) bool {
	return e.Guard.IsRunning(connectionID)
}
