package domain

import (
	"context"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

type SyncResult struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

type SyncRunState string

const (
	SyncRunSucceeded SyncRunState = "succeeded"
	SyncRunFailed    SyncRunState = "failed"
)

// SyncRun is the persisted record of one paginated pull.
type SyncRun struct {
	ID           string
	ConnectionID string
	State        SyncRunState
	Imported     int
	Skipped      int
	Pages        int
	Error        string
	StartedAt    time.Time
	FinishedAt   time.Time
}

// ImportFailure records why one order of a run was skipped with an error.
type ImportFailure struct {
	ID         uint
	SyncRunID  string
	ExternalID string
	Reason     string
	CreatedAt  time.Time
}

type SyncRunRepository interface {
	CreateRun(ctx context.Context, run *SyncRun, failures []*ImportFailure) error
	ListRuns(ctx context.Context, connectionID string, limit int) ([]*SyncRun, error)
	GetRun(ctx context.Context, id string) (*SyncRun, error)
	ListFailures(ctx context.Context, runID string) ([]*ImportFailure, error)
}

// SyncStatus is what the status endpoint reports for a platform.
type SyncStatus struct {
	IsActive        bool       `json:"isActive"`
	IsRunning       bool       `json:"isRunning"`
	IntervalMinutes int        `json:"intervalMinutes"`
	LastSyncAt      *time.Time `json:"lastSyncAt"`
	LastOrderCount  int        `json:"lastOrderCount"`
}

// MarketplaceOrder is one order as fetched from a store, before mapping.
type MarketplaceOrder struct {
	ExternalID   string
	Status       string
	Total        decimal.Decimal
	RefundAmount decimal.Decimal
	CreatedAt    time.Time
	Customer     CustomerInfo
	LocationName string
	HasLocation  bool
	Raw          json.RawMessage
	// Err is set when the store order could not be mapped. Such an order is
	// skipped and recorded as an import failure.
	Err error
}

// OrderFetcher fetches one page of orders for a connection.
type OrderFetcher interface {
	FetchOrders(ctx context.Context, conn *StoreConnection, page, perPage int) ([]*MarketplaceOrder, error)
}
