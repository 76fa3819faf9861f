package domain

import (
	"context"
	"time"
)

const PlatformWooCommerce = "woocommerce"

// StoreConnection holds the credentials and sync settings of one marketplace store.
type StoreConnection struct {
	ID                  string
	Platform            string
	Name                string
	StoreURL            string
	ConsumerKey         string
	ConsumerSecret      string
	IsActive            bool
	AutoSync            bool
	SyncIntervalMinutes int
	NotifyURL           string
	LastSyncAt          *time.Time
	LastOrderCount      int
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// SyncDue reports whether an auto-sync run should start at now.
func (c *StoreConnection) SyncDue(now time.Time) bool {
	if !c.IsActive || !c.AutoSync || c.SyncIntervalMinutes < 1 {
		return false
	}
	if c.LastSyncAt == nil {
		return true
	}
	return !now.Before(c.LastSyncAt.Add(time.Duration(c.SyncIntervalMinutes) * time.Minute))
}

type StoreConnectionRepository interface {
	Create(ctx context.Context, conn *StoreConnection) error
	Update(ctx context.Context, conn *StoreConnection) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*StoreConnection, error)
	List(ctx context.Context) ([]*StoreConnection, error)
	ListByPlatform(ctx context.Context, platform string) ([]*StoreConnection, error)
	ListAutoSync(ctx context.Context) ([]*StoreConnection, error)
	RecordSync(ctx context.Context, id string, at time.Time, orderCount int) error
}
