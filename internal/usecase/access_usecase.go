package usecase

import (
	"context"
	"slices"
	"strings"

	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/domain"
)

type AccessUsecase interface {
	CanViewPage(ctx context.Context, user *domain.User, pageID string) (bool, error)
	CanEditPage(ctx context.Context, user *domain.User, pageID string) (bool, error)
	Scope(ctx context.Context, user *domain.User) (domain.Scope, error)
	GetGrants(ctx context.Context, userID uint) (*domain.AccessGrants, error)
	ReplaceLocations(ctx context.Context, userID uint, locationIDs []uint) error
	ReplacePermissions(ctx context.Context, userID uint, permissions []domain.PagePermission) error
	ReplaceStatuses(ctx context.Context, userID uint, statuses []string) error
}

// KnownPages are the page ids a permission grant may name.
var KnownPages = []string{
	domain.PageDashboard,
	domain.PageProfile,
	domain.PageReports,
	domain.PageOrders,
	domain.PageLocations,
	domain.PageUpload,
	domain.PageUsers,
	domain.PageSync,
}

type DefaultAccessUsecase struct {
	AccessRepo   domain.AccessRepository
	UserRepo     domain.UserRepository
	LocationRepo domain.LocationRepository
}

func NewDefaultAccessUsecase(
	accessRepo domain.AccessRepository,
	userRepo domain.UserRepository,
	locationRepo domain.LocationRepository,
) *DefaultAccessUsecase {
	return &DefaultAccessUsecase{
		AccessRepo:   accessRepo,
		UserRepo:     userRepo,
		LocationRepo: locationRepo,
	}
}

func (uc *DefaultAccessUsecase) grantsFor(ctx context.Context, user *domain.User) (*domain.AccessGrants, error) {
	if user.IsAdmin() {
		return nil, nil
	}
	return uc.AccessRepo.GetGrants(ctx, user.ID)
}

func (uc *DefaultAccessUsecase) CanViewPage(ctx context.Context, user *domain.User, pageID string) (bool, error) {
	if user.IsAdmin() || domain.OpenPages[pageID] {
		return true, nil
	}
	grants, err := uc.grantsFor(ctx, user)
	if err != nil {
		return false, err
	}
	return domain.CanViewPage(user, grants, pageID), nil
}

func (uc *DefaultAccessUsecase) CanEditPage(ctx context.Context, user *domain.User, pageID string) (bool, error) {
	grants, err := uc.grantsFor(ctx, user)
	if err != nil {
		return false, err
	}
	return domain.CanEditPage(user, grants, pageID), nil
}

func (uc *DefaultAccessUsecase) Scope(ctx context.Context, user *domain.User) (domain.Scope, error) {
	grants, err := uc.grantsFor(ctx, user)
	if err != nil {
		return domain.Scope{}, err
	}
	return domain.ScopeFor(user, grants), nil
}

func (uc *DefaultAccessUsecase) GetGrants(ctx context.Context, userID uint) (*domain.AccessGrants, error) {
	if _, err := uc.UserRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return uc.AccessRepo.GetGrants(ctx, userID)
}

func (uc *DefaultAccessUsecase) ReplaceLocations(ctx context.Context, userID uint, locationIDs []uint) error {
	if _, err := uc.UserRepo.GetByID(ctx, userID); err != nil {
		return err
	}

	ids := slices.Clone(locationIDs)
	slices.Sort(ids)
	ids = slices.Compact(ids)
	for _, id := range ids {
		if _, err := uc.LocationRepo.GetByID(ctx, id); err != nil {
			return domain.Validationf("unknown location %d", id)
		}
	}
	return uc.AccessRepo.ReplaceLocations(ctx, userID, ids)
}

func (uc *DefaultAccessUsecase) ReplacePermissions(ctx context.Context, userID uint, permissions []domain.PagePermission) error {
	if _, err := uc.UserRepo.GetByID(ctx, userID); err != nil {
		return err
	}

	byPage := make(map[string]domain.PagePermission, len(permissions))
	for _, p := range permissions {
		if !slices.Contains(KnownPages, p.PageID) {
			return domain.Validationf("unknown page %q", p.PageID)
		}
		// edit implies view
		if p.CanEdit {
			p.CanView = true
		}
		byPage[p.PageID] = p
	}

	deduped := make([]domain.PagePermission, 0, len(byPage))
	for _, page := range KnownPages {
		if p, ok := byPage[page]; ok {
			deduped = append(deduped, p)
		}
	}
	return uc.AccessRepo.ReplacePermissions(ctx, userID, deduped)
}

func (uc *DefaultAccessUsecase) ReplaceStatuses(ctx context.Context, userID uint, statuses []string) error {
	if _, err := uc.UserRepo.GetByID(ctx, userID); err != nil {
		return err
	}

	normalized := make([]domain.OrderStatus, 0, len(statuses))
	for _, s := range statuses {
		st := domain.OrderStatus(strings.ToLower(strings.TrimSpace(s)))
		if st == "" {
			return domain.Validationf("empty status")
		}
		if !slices.Contains(normalized, st) {
			normalized = append(normalized, st)
		}
	}
	return uc.AccessRepo.ReplaceStatuses(ctx, userID, normalized)
}
