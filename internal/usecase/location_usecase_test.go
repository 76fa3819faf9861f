package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationUsecase_ResolveOrCreate(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	first, err := f.locations.ResolveOrCreate(ctx, "  Main Store ")
	require.NoError(t, err)
	assert.Equal(t, "Main Store", first.Name)

	again, err := f.locations.ResolveOrCreate(ctx, "Main Store")
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)

	_, err = f.locations.ResolveOrCreate(ctx, "   ")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestLocationUsecase_ResolveOrCreateConcurrent(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	const workers = 8
	ids := make([]uint, workers)
	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			loc, err := f.locations.ResolveOrCreate(ctx, "Harbor")
			if assert.NoError(t, err) {
				ids[i] = loc.ID
			}
		}()
	}
	wg.Wait()

	for _, id := range ids {
		assert.Equal(t, ids[0], id)
	}
	all, err := f.locations.ListActive(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestLocationUsecase_CreateDuplicate(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.locations.Create(ctx, "Harbor")
	require.NoError(t, err)
	_, err = f.locations.Create(ctx, "Harbor")
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestLocationUsecase_ListForUserAndDelete(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.importOrder(t, "1", "completed", "10", "Harbor", time.Now())
	f.importOrder(t, "2", "completed", "10", "Harbor", time.Now())
	empty, err := f.locations.Create(ctx, "Empty")
	require.NoError(t, err)
	harbor := f.location(t, "Harbor")

	admin := f.createUser(t, "root", domain.RoleAdmin)
	user := f.createUser(t, "clerk", domain.RoleUser)
	require.NoError(t, f.access.ReplaceLocations(ctx, user.ID, []uint{harbor.ID}))

	all, err := f.locations.ListForUser(ctx, admin)
	require.NoError(t, err)
	require.Len(t, all, 2)

	mine, err := f.locations.ListForUser(ctx, user)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "Harbor", mine[0].Name)
	assert.EqualValues(t, 2, mine[0].OrderCount)

	err = f.locations.Delete(ctx, []uint{harbor.ID, empty.ID})
	var inUse *domain.LocationInUseError
	require.ErrorAs(t, err, &inUse)
	assert.Equal(t, []uint{harbor.ID}, inUse.IDs)
	assert.ErrorIs(t, err, domain.ErrConflict)

	require.NoError(t, f.locations.Delete(ctx, []uint{empty.ID}))
	assert.ErrorIs(t, f.locations.Delete(ctx, nil), domain.ErrValidation)
}
