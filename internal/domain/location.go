package domain

import (
	"context"
	"time"
)

type Location struct {
	ID        uint
	Name      string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type LocationRepository interface {
	FindByName(ctx context.Context, name string) (*Location, error)
	GetByID(ctx context.Context, id uint) (*Location, error)
	Create(ctx context.Context, location *Location) error
	ListActive(ctx context.Context) ([]*Location, error)
	ListActiveByIDs(ctx context.Context, ids []uint) ([]*Location, error)
	// Delete removes the locations and their access grants, or fails with
	// *LocationInUseError without removing anything.
	Delete(ctx context.Context, ids []uint) error
}
