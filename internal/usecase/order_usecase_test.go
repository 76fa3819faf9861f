package usecase

import (
	"context"
	"testing"

	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/domain"
	reportdto "github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/usecase/dto/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderUsecase_ListScopedAndPaged(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	seedReportOrders(t, f)
	admin := f.createUser(t, "root", domain.RoleAdmin)
	user := f.createUser(t, "clerk", domain.RoleUser)
	harbor := f.location(t, "Harbor")
	require.NoError(t, f.access.ReplaceLocations(ctx, user.ID, []uint{harbor.ID}))

	orders, total, err := f.orders.List(ctx, admin, reportdto.OrdersQuery{Limit: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 4, total)
	require.Len(t, orders, 2)
	assert.Equal(t, "1004", orders[0].ExternalID)

	orders, total, err = f.orders.List(ctx, admin, reportdto.OrdersQuery{Month: "2024-05"})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, orders, 3)

	_, total, err = f.orders.List(ctx, user, reportdto.OrdersQuery{})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)

	_, _, err = f.orders.List(ctx, admin, reportdto.OrdersQuery{Month: "05/2024"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestOrderUsecase_BulkDelete(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	seedReportOrders(t, f)
	admin := f.createUser(t, "root", domain.RoleAdmin)

	orders, _, err := f.orders.List(ctx, admin, reportdto.OrdersQuery{})
	require.NoError(t, err)

	deleted, err := f.orders.BulkDelete(ctx, []uint{orders[0].ID, orders[1].ID})
	require.NoError(t, err)
	assert.EqualValues(t, 2, deleted)

	_, total, err := f.orders.List(ctx, admin, reportdto.OrdersQuery{})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)

	_, err = f.orders.BulkDelete(ctx, nil)
	assert.ErrorIs(t, err, domain.ErrValidation)
}
