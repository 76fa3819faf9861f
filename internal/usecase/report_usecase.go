package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/domain"
	reportdto "github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/usecase/dto/report"
	"github.com/shopspring/decimal"
)

const monthLayout = "2006-01"

type ReportUsecase interface {
	GetSummary(ctx context.Context, user *domain.User, query reportdto.SummaryQuery) (*domain.Summary, error)
	GetMonthlyBreakdown(ctx context.Context, user *domain.User, query reportdto.BreakdownQuery) ([]*domain.MonthGroup, error)
}

type DefaultReportUsecase struct {
	ReportRepo domain.ReportRepository
	OrderRepo  domain.OrderRepository
	Access     AccessUsecase
	Location   *time.Location
}

func NewDefaultReportUsecase(
	reportRepo domain.ReportRepository,
	orderRepo domain.OrderRepository,
	access AccessUsecase,
	loc *time.Location,
) *DefaultReportUsecase {
	if loc == nil {
		loc = time.UTC
	}
	return &DefaultReportUsecase{
		ReportRepo: reportRepo,
		OrderRepo:  orderRepo,
		Access:     access,
		Location:   loc,
	}
}

// scopedLocations narrows the caller's scope to one location when asked.
func scopedLocations(scope domain.Scope, locationID *uint) ([]uint, error) {
	if locationID == nil {
		return scope.LocationFilter(), nil
	}
	if !scope.AllowsLocation(*locationID) {
		return nil, fmt.Errorf("%w: location %d is outside your access", domain.ErrForbidden, *locationID)
	}
	return []uint{*locationID}, nil
}

func (uc *DefaultReportUsecase) parseMonth(s string) (time.Time, error) {
	t, err := time.ParseInLocation(monthLayout, s, uc.Location)
	if err != nil {
		return time.Time{}, domain.Validationf("month %q must look like YYYY-MM", s)
	}
	return t, nil
}

func (uc *DefaultReportUsecase) GetSummary(ctx context.Context, user *domain.User, query reportdto.SummaryQuery) (*domain.Summary, error) {
	scope, err := uc.Access.Scope(ctx, user)
	if err != nil {
		return nil, err
	}
	locationIDs, err := scopedLocations(scope, query.LocationID)
	if err != nil {
		return nil, err
	}
	filter := domain.SummaryFilter{
		LocationIDs: locationIDs,
		Statuses:    scope.StatusFilter(),
	}

	startMonth, endMonth := query.StartMonth, query.EndMonth
	if startMonth == "" && endMonth != "" {
		startMonth = endMonth
	}
	if endMonth == "" {
		endMonth = startMonth
	}

	var from, to time.Time
	if startMonth == "" {
		latest, err := uc.ReportRepo.LatestOrderDate(ctx, filter)
		if err != nil {
			return nil, err
		}
		if latest == nil {
			return emptySummary(), nil
		}
		l := latest.In(uc.Location)
		from = time.Date(l.Year(), l.Month(), 1, 0, 0, 0, 0, uc.Location)
		to = from.AddDate(0, 1, 0)
	} else {
		if from, err = uc.parseMonth(startMonth); err != nil {
			return nil, err
		}
		end, err := uc.parseMonth(endMonth)
		if err != nil {
			return nil, err
		}
		if end.Before(from) {
			return nil, domain.Validationf("endMonth %s is before startMonth %s", endMonth, startMonth)
		}
		to = end.AddDate(0, 1, 0)
	}

	filter.From, filter.To = from, to
	summary, err := uc.ReportRepo.Summarize(ctx, filter)
	if err != nil {
		return nil, err
	}
	summary.StartMonth = from.Format(monthLayout)
	summary.EndMonth = to.AddDate(0, -1, 0).Format(monthLayout)
	return summary, nil
}

func emptySummary() *domain.Summary {
	return &domain.Summary{
		TotalSales:    decimal.Zero,
		TotalRefunds:  decimal.Zero,
		PlatformFees:  decimal.Zero,
		ProcessorFees: decimal.Zero,
		NetDeposit:    decimal.Zero,
	}
}

// GetMonthlyBreakdown groups in-scope orders by calendar month in the report
// timezone. Each group's totals are computed from the orders it returns.
func (uc *DefaultReportUsecase) GetMonthlyBreakdown(ctx context.Context, user *domain.User, query reportdto.BreakdownQuery) ([]*domain.MonthGroup, error) {
	scope, err := uc.Access.Scope(ctx, user)
	if err != nil {
		return nil, err
	}
	locationIDs, err := scopedLocations(scope, query.LocationID)
	if err != nil {
		return nil, err
	}

	statuses := scope.NarrowStatuses(query.Statuses)
	if statuses != nil && len(statuses) == 0 {
		return []*domain.MonthGroup{}, nil
	}

	filter := domain.OrderFilter{LocationIDs: locationIDs, Statuses: statuses}
	if query.Year != nil {
		filter.From = time.Date(*query.Year, time.January, 1, 0, 0, 0, 0, uc.Location)
		filter.To = filter.From.AddDate(1, 0, 0)
	}

	orders, _, err := uc.OrderRepo.GetOrders(ctx, filter)
	if err != nil {
		return nil, err
	}
	return GroupByMonth(orders, uc.Location), nil
}

// GroupByMonth buckets orders by YYYY-MM in loc, newest month first.
func GroupByMonth(orders []*domain.Order, loc *time.Location) []*domain.MonthGroup {
	groups := make(map[string]*domain.MonthGroup)
	for _, o := range orders {
		key := o.OrderDate.In(loc).Format(monthLayout)
		g, ok := groups[key]
		if !ok {
			g = &domain.MonthGroup{
				Month:        key,
				TotalSales:   decimal.Zero,
				TotalRefunds: decimal.Zero,
				NetAmount:    decimal.Zero,
				Orders:       []*domain.Order{},
			}
			groups[key] = g
		}

		g.Orders = append(g.Orders, o)
		if o.Status == domain.StatusRefunded {
			g.TotalRefunds = g.TotalRefunds.Add(o.Amount)
			continue
		}
		g.TotalOrders++
		g.TotalSales = g.TotalSales.Add(o.Amount)
		g.NetAmount = g.NetAmount.Add(o.Fees.NetAmount)
	}

	result := make([]*domain.MonthGroup, 0, len(groups))
	for _, g := range groups {
		result = append(result, g)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Month > result[j].Month })
	return result
}
