package usecase

import (
	"context"
	"testing"

	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessUsecase_PagePermissions(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	admin := f.createUser(t, "root", domain.RoleAdmin)
	user := f.createUser(t, "clerk", domain.RoleUser)

	ok, err := f.access.CanViewPage(ctx, admin, domain.PageUsers)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = f.access.CanViewPage(ctx, user, domain.PageDashboard)
	require.NoError(t, err)
	assert.True(t, ok, "dashboard is open to everyone")

	ok, err = f.access.CanViewPage(ctx, user, domain.PageReports)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, f.access.ReplacePermissions(ctx, user.ID, []domain.PagePermission{
		{PageID: domain.PageReports, CanEdit: true},
		{PageID: domain.PageOrders, CanView: true},
	}))

	ok, err = f.access.CanViewPage(ctx, user, domain.PageReports)
	require.NoError(t, err)
	assert.True(t, ok, "edit implies view")

	ok, err = f.access.CanEditPage(ctx, user, domain.PageOrders)
	require.NoError(t, err)
	assert.False(t, ok)

	err = f.access.ReplacePermissions(ctx, user.ID, []domain.PagePermission{{PageID: "billing", CanView: true}})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAccessUsecase_ReplaceLocations(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	user := f.createUser(t, "clerk", domain.RoleUser)
	a, err := f.locations.Create(ctx, "A")
	require.NoError(t, err)
	b, err := f.locations.Create(ctx, "B")
	require.NoError(t, err)

	require.NoError(t, f.access.ReplaceLocations(ctx, user.ID, []uint{b.ID, a.ID, b.ID}))
	grants, err := f.access.GetGrants(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{a.ID, b.ID}, grants.LocationIDs)

	require.NoError(t, f.access.ReplaceLocations(ctx, user.ID, []uint{a.ID}))
	grants, err = f.access.GetGrants(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{a.ID}, grants.LocationIDs)

	err = f.access.ReplaceLocations(ctx, user.ID, []uint{999})
	assert.ErrorIs(t, err, domain.ErrValidation)

	err = f.access.ReplaceLocations(ctx, 4242, []uint{a.ID})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAccessUsecase_Scope(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	user := f.createUser(t, "clerk", domain.RoleUser)

	scope, err := f.access.Scope(ctx, user)
	require.NoError(t, err)
	assert.False(t, scope.AllLocations)
	assert.Empty(t, scope.LocationIDs)
	assert.True(t, scope.AllStatuses)

	require.NoError(t, f.access.ReplaceStatuses(ctx, user.ID, []string{" Completed", "completed", "on-hold"}))
	scope, err = f.access.Scope(ctx, user)
	require.NoError(t, err)
	assert.False(t, scope.AllStatuses)
	assert.ElementsMatch(t, []domain.OrderStatus{domain.StatusCompleted, domain.StatusOnHold}, scope.Statuses)
}
