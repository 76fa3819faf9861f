package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/domain"
	reportdto "github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/usecase/dto/report"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	may3  = time.Date(2024, 5, 3, 12, 0, 0, 0, time.UTC)
	may20 = time.Date(2024, 5, 20, 9, 30, 0, 0, time.UTC)
	jun2  = time.Date(2024, 6, 2, 8, 0, 0, 0, time.UTC)
)

func seedReportOrders(t *testing.T, f *fixture) {
	t.Helper()
	f.importOrder(t, "1001", "processing", "20.00", "Main Store", may3)
	f.importOrder(t, "1002", "refunded", "20.00", "Main Store", may20)
	f.importOrder(t, "1003", "completed", "10.01", "Harbor", may20)
	f.importOrder(t, "1004", "completed", "50.00", "Harbor", jun2)
}

func TestReportUsecase_SummaryForAdmin(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	seedReportOrders(t, f)
	admin := f.createUser(t, "root", domain.RoleAdmin)

	summary, err := f.reports.GetSummary(ctx, admin, reportdto.SummaryQuery{StartMonth: "2024-05"})
	require.NoError(t, err)

	assert.Equal(t, "2024-05", summary.StartMonth)
	assert.Equal(t, "2024-05", summary.EndMonth)
	assert.EqualValues(t, 2, summary.TotalOrders)
	assert.Equal(t, "30.01", summary.TotalSales.StringFixed(2))
	assert.Equal(t, "20.00", summary.TotalRefunds.StringFixed(2))
	assert.Equal(t, "2.10", summary.PlatformFees.StringFixed(2))
	assert.Equal(t, "1.47", summary.ProcessorFees.StringFixed(2))
	assert.Equal(t, "26.44", summary.NetDeposit.StringFixed(2))
}

func TestReportUsecase_SummaryDefaultsToLatestMonth(t *testing.T) {
	f := newFixture(t)
	seedReportOrders(t, f)
	admin := f.createUser(t, "root", domain.RoleAdmin)

	summary, err := f.reports.GetSummary(context.Background(), admin, reportdto.SummaryQuery{})
	require.NoError(t, err)
	assert.Equal(t, "2024-06", summary.StartMonth)
	assert.EqualValues(t, 1, summary.TotalOrders)
	assert.Equal(t, "50.00", summary.TotalSales.StringFixed(2))
}

func TestReportUsecase_SummaryRangeIsInclusive(t *testing.T) {
	f := newFixture(t)
	seedReportOrders(t, f)
	admin := f.createUser(t, "root", domain.RoleAdmin)

	summary, err := f.reports.GetSummary(context.Background(), admin, reportdto.SummaryQuery{
		StartMonth: "2024-05",
		EndMonth:   "2024-06",
	})
	require.NoError(t, err)
	assert.EqualValues(t, 3, summary.TotalOrders)
	assert.Equal(t, "80.01", summary.TotalSales.StringFixed(2))

	_, err = f.reports.GetSummary(context.Background(), admin, reportdto.SummaryQuery{
		StartMonth: "2024-06",
		EndMonth:   "2024-05",
	})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = f.reports.GetSummary(context.Background(), admin, reportdto.SummaryQuery{StartMonth: "May"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReportUsecase_SummaryEmptyStore(t *testing.T) {
	f := newFixture(t)
	admin := f.createUser(t, "root", domain.RoleAdmin)

	summary, err := f.reports.GetSummary(context.Background(), admin, reportdto.SummaryQuery{})
	require.NoError(t, err)
	assert.Zero(t, summary.TotalOrders)
	assert.True(t, summary.TotalSales.IsZero())
}

func TestReportUsecase_UserWithoutGrantsSeesNothing(t *testing.T) {
	f := newFixture(t)
	seedReportOrders(t, f)
	user := f.createUser(t, "clerk", domain.RoleUser)

	summary, err := f.reports.GetSummary(context.Background(), user, reportdto.SummaryQuery{StartMonth: "2024-05"})
	require.NoError(t, err)
	assert.Zero(t, summary.TotalOrders)

	groups, err := f.reports.GetMonthlyBreakdown(context.Background(), user, reportdto.BreakdownQuery{})
	require.NoError(t, err)
	assert.Empty(t, groups)
}

func TestReportUsecase_ScopedUser(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	seedReportOrders(t, f)
	user := f.createUser(t, "clerk", domain.RoleUser)
	harbor := f.location(t, "Harbor")
	main := f.location(t, "Main Store")
	require.NoError(t, f.access.ReplaceLocations(ctx, user.ID, []uint{harbor.ID}))

	summary, err := f.reports.GetSummary(ctx, user, reportdto.SummaryQuery{StartMonth: "2024-05"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, summary.TotalOrders)
	assert.Equal(t, "10.01", summary.TotalSales.StringFixed(2))

	_, err = f.reports.GetSummary(ctx, user, reportdto.SummaryQuery{LocationID: &main.ID})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	require.NoError(t, f.access.ReplaceStatuses(ctx, user.ID, []string{"Completed"}))
	groups, err := f.reports.GetMonthlyBreakdown(ctx, user, reportdto.BreakdownQuery{
		Statuses: []domain.OrderStatus{domain.StatusRefunded},
	})
	require.NoError(t, err)
	assert.Empty(t, groups)
}

// The breakdown and the summary must agree for the same month and scope.
func TestReportUsecase_BreakdownMatchesSummary(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	seedReportOrders(t, f)
	admin := f.createUser(t, "root", domain.RoleAdmin)

	year := 2024
	groups, err := f.reports.GetMonthlyBreakdown(ctx, admin, reportdto.BreakdownQuery{Year: &year})
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "2024-06", groups[0].Month)
	assert.Equal(t, "2024-05", groups[1].Month)

	may := groups[1]
	assert.Len(t, may.Orders, 3)

	summary, err := f.reports.GetSummary(ctx, admin, reportdto.SummaryQuery{StartMonth: "2024-05"})
	require.NoError(t, err)
	assert.Equal(t, summary.TotalOrders, may.TotalOrders)
	assert.Equal(t, summary.TotalSales.StringFixed(2), may.TotalSales.StringFixed(2))
	assert.Equal(t, summary.TotalRefunds.StringFixed(2), may.TotalRefunds.StringFixed(2))
	assert.Equal(t, summary.NetDeposit.StringFixed(2), may.NetAmount.StringFixed(2))

	other := 2023
	groups, err = f.reports.GetMonthlyBreakdown(ctx, admin, reportdto.BreakdownQuery{Year: &other})
	require.NoError(t, err)
	assert.Empty(t, groups)
}

func TestGroupByMonth_UsesReportTimezone(t *testing.T) {
	ny := time.FixedZone("EDT", -4*60*60)

	// 02:00 UTC on June 1st is still May 31st at UTC-4
	order := &domain.Order{
		Status:    domain.StatusCompleted,
		Amount:    decimal.NewFromInt(5),
		Fees:      domain.CalculateFees(decimal.NewFromInt(5), domain.StatusCompleted),
		OrderDate: time.Date(2024, 6, 1, 2, 0, 0, 0, time.UTC),
	}
	groups := GroupByMonth([]*domain.Order{order}, ny)
	require.Len(t, groups, 1)
	assert.Equal(t, "2024-05", groups[0].Month)

	groups = GroupByMonth([]*domain.Order{order}, time.UTC)
	assert.Equal(t, "2024-06", groups[0].Month)
}
