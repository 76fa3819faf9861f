package usecase

import (
	"context"
	"testing"

	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/domain"
	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/infrastructure/postgres/repository"
	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/testutil"
	connectiondto "github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/usecase/dto/connection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConnectionInput() *connectiondto.ConnectionInput {
	return &connectiondto.ConnectionInput{
		Name:           "Main shop",
		StoreURL:       "https://shop.example.com/",
		ConsumerKey:    "ck_123",
		ConsumerSecret: "cs_456",
		IsActive:       true,
		AutoSync:       true,
	}
}

func TestStoreConnectionUsecase_CreateAndUpdate(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	uc := NewDefaultStoreConnectionUsecase(
		repository.NewDefaultStoreConnectionRepository(db),
		repository.NewDefaultSyncRunRepository(db),
	)

	conn, err := uc.Create(ctx, validConnectionInput())
	require.NoError(t, err)
	assert.NotEmpty(t, conn.ID)
	assert.Equal(t, domain.PlatformWooCommerce, conn.Platform)
	assert.Equal(t, "https://shop.example.com", conn.StoreURL)
	assert.Equal(t, defaultSyncIntervalMinutes, conn.SyncIntervalMinutes)

	update := validConnectionInput()
	update.ConsumerSecret = ""
	update.SyncIntervalMinutes = 15
	updated, err := uc.Update(ctx, conn.ID, update)
	require.NoError(t, err)
	assert.Equal(t, "cs_456", updated.ConsumerSecret)
	assert.Equal(t, 15, updated.SyncIntervalMinutes)

	list, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	runs, err := uc.Runs(ctx, conn.ID, 10)
	require.NoError(t, err)
	assert.Empty(t, runs)

	require.NoError(t, uc.Delete(ctx, conn.ID))
	_, err = uc.Get(ctx, conn.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStoreConnectionUsecase_Validation(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	uc := NewDefaultStoreConnectionUsecase(
		repository.NewDefaultStoreConnectionRepository(db),
		repository.NewDefaultSyncRunRepository(db),
	)

	cases := map[string]func(in *connectiondto.ConnectionInput){
		"missing name":     func(in *connectiondto.ConnectionInput) { in.Name = " " },
		"ftp url":          func(in *connectiondto.ConnectionInput) { in.StoreURL = "ftp://shop.example.com" },
		"missing key":      func(in *connectiondto.ConnectionInput) { in.ConsumerKey = "" },
		"negative minutes": func(in *connectiondto.ConnectionInput) { in.SyncIntervalMinutes = -5 },
		"bad notify url":   func(in *connectiondto.ConnectionInput) { in.NotifyURL = "not a url" },
		"other platform":   func(in *connectiondto.ConnectionInput) { in.Platform = "shopify" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			in := validConnectionInput()
			mutate(in)
			_, err := uc.Create(ctx, in)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}
