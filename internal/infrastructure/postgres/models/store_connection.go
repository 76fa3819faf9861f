package models

import "time"

type StoreConnectionModel struct {
	ID                  string `gorm:"primaryKey;type:uuid"`
	Platform            string `gorm:"not null;index"`
	Name                string `gorm:"not null"`
	StoreURL            string `gorm:"not null"`
	ConsumerKey         string `gorm:"not null"`
	ConsumerSecret      string `gorm:"not null"`
	IsActive            bool   `gorm:"not null"`
	AutoSync            bool   `gorm:"not null"`
	SyncIntervalMinutes int    `gorm:"not null"`
	NotifyURL           string
	LastSyncAt          *time.Time
	LastOrderCount      int `gorm:"not null"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (StoreConnectionModel) TableName() string {
	return "store_connections"
}

type SyncRunModel struct {
	ID           string `gorm:"primaryKey;type:uuid"`
	ConnectionID string `gorm:"type:uuid;not null;index:idx_sync_runs_connection"`
	State        string `gorm:"not null"`
	Imported     int    `gorm:"not null"`
	Skipped      int    `gorm:"not null"`
	Pages        int    `gorm:"not null"`
	Error        string
	StartedAt    time.Time `gorm:"not null;index:idx_sync_runs_connection"`
	FinishedAt   time.Time `gorm:"not null"`
}

func (SyncRunModel) TableName() string {
	return "sync_runs"
}

type ImportFailureModel struct {
	ID         uint   `gorm:"primaryKey"`
	SyncRunID  string `gorm:"type:uuid;not null;index"`
	ExternalID string
	Reason     string `gorm:"not null"`
	CreatedAt  time.Time
}

func (ImportFailureModel) TableName() string {
	return "import_failures"
}
