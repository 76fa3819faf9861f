package usecase

import (
	"context"
	"time"

	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/domain"
	reportdto "github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/usecase/dto/report"
)

const defaultOrdersPageSize = 50

type OrderUsecase interface {
	List(ctx context.Context, user *domain.User, query reportdto.OrdersQuery) ([]*domain.Order, int64, error)
	BulkDelete(ctx context.Context, ids []uint) (int64, error)
}

type DefaultOrderUsecase struct {
	OrderRepo domain.OrderRepository
	Access    AccessUsecase
	Location  *time.Location
}

func NewDefaultOrderUsecase(orderRepo domain.OrderRepository, access AccessUsecase, loc *time.Location) *DefaultOrderUsecase {
	if loc == nil {
		loc = time.UTC
	}
	return &DefaultOrderUsecase{OrderRepo: orderRepo, Access: access, Location: loc}
}

// List pages through orders visible to the user, newest first.
func (uc *DefaultOrderUsecase) List(ctx context.Context, user *domain.User, query reportdto.OrdersQuery) ([]*domain.Order, int64, error) {
	scope, err := uc.Access.Scope(ctx, user)
	if err != nil {
		return nil, 0, err
	}
	locationIDs, err := scopedLocations(scope, query.LocationID)
	if err != nil {
		return nil, 0, err
	}
	statuses := scope.NarrowStatuses(query.Statuses)
	if statuses != nil && len(statuses) == 0 {
		return []*domain.Order{}, 0, nil
	}

	filter := domain.OrderFilter{
		LocationIDs: locationIDs,
		Statuses:    statuses,
		Page:        max(query.Page, 1),
		Limit:       query.Limit,
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultOrdersPageSize
	}
	if query.Month != "" {
		from, err := time.ParseInLocation(monthLayout, query.Month, uc.Location)
		if err != nil {
			return nil, 0, domain.Validationf("month %q must look like YYYY-MM", query.Month)
		}
		filter.From, filter.To = from, from.AddDate(0, 1, 0)
	}

	return uc.OrderRepo.GetOrders(ctx, filter)
}

func (uc *DefaultOrderUsecase) BulkDelete(ctx context.Context, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, domain.Validationf("no order ids given")
	}
	return uc.OrderRepo.DeleteOrders(ctx, ids)
}
