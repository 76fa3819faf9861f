package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/domain"
)

type LocationUsecase interface {
	FindByName(ctx context.Context, name string) (*domain.Location, error)
	Create(ctx context.Context, name string) (*domain.Location, error)
	ResolveOrCreate(ctx context.Context, name string) (*domain.Location, error)
	ListActive(ctx context.Context) ([]*domain.Location, error)
	ListForUser(ctx context.Context, user *domain.User) ([]*LocationWithCount, error)
	Delete(ctx context.Context, ids []uint) error
}

type LocationWithCount struct {
	*domain.Location
	OrderCount int64
}

type DefaultLocationUsecase struct {
	LocationRepo domain.LocationRepository
	OrderRepo    domain.OrderRepository
	Access       AccessUsecase
}

func NewDefaultLocationUsecase(
	locationRepo domain.LocationRepository,
	orderRepo domain.OrderRepository,
	access AccessUsecase,
) *DefaultLocationUsecase {
	return &DefaultLocationUsecase{
		LocationRepo: locationRepo,
		OrderRepo:    orderRepo,
		Access:       access,
	}
}

func (uc *DefaultLocationUsecase) FindByName(ctx context.Context, name string) (*domain.Location, error) {
	return uc.LocationRepo.FindByName(ctx, strings.TrimSpace(name))
}

func (uc *DefaultLocationUsecase) Create(ctx context.Context, name string) (*domain.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.Validationf("location name is required")
	}

	location := &domain.Location{Name: name, IsActive: true}
	if err := uc.LocationRepo.Create(ctx, location); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, fmt.Errorf("%w: location %q already exists", domain.ErrConflict, name)
		}
		return nil, err
	}
	return location, nil
}

// ResolveOrCreate returns the location with this name, creating it on first
// sight. A concurrent insert of the same name is resolved by reading the
// row that won the unique constraint.
func (uc *DefaultLocationUsecase) ResolveOrCreate(ctx context.Context, name string) (*domain.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.Validationf("location name is required")
	}

	location, err := uc.LocationRepo.FindByName(ctx, name)
	if err == nil {
		return location, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	location = &domain.Location{Name: name, IsActive: true}
	err = uc.LocationRepo.Create(ctx, location)
	if errors.Is(err, domain.ErrDuplicate) {
		return uc.LocationRepo.FindByName(ctx, name)
	}
	if err != nil {
		return nil, err
	}
	return location, nil
}

func (uc *DefaultLocationUsecase) ListActive(ctx context.Context) ([]*domain.Location, error) {
	return uc.LocationRepo.ListActive(ctx)
}

// ListForUser returns every active location for admins and only the granted
// ones for other users, each with its order count.
func (uc *DefaultLocationUsecase) ListForUser(ctx context.Context, user *domain.User) ([]*LocationWithCount, error) {
	scope, err := uc.Access.Scope(ctx, user)
	if err != nil {
		return nil, err
	}

	var locations []*domain.Location
	if scope.AllLocations {
		locations, err = uc.LocationRepo.ListActive(ctx)
	} else {
		locations, err = uc.LocationRepo.ListActiveByIDs(ctx, scope.LocationIDs)
	}
	if err != nil {
		return nil, err
	}

	ids := make([]uint, len(locations))
	for i, l := range locations {
		ids[i] = l.ID
	}
	counts, err := uc.OrderRepo.CountByLocation(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := make([]*LocationWithCount, len(locations))
	for i, l := range locations {
		result[i] = &LocationWithCount{Location: l, OrderCount: counts[l.ID]}
	}
	return result, nil
}

func (uc *DefaultLocationUsecase) Delete(ctx context.Context, ids []uint) error {
	if len(ids) == 0 {
		return domain.Validationf("no location ids given")
	}
	return uc.LocationRepo.Delete(ctx, ids)
}
