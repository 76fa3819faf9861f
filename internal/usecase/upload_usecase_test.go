package usecase

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const uploadCSV = `Order ID,Status,Total Amount,Location,Order Date,Customer Name
2001,completed,15.50,Harbor,2024-05-04 10:00:00,Ann Lee
2002,refunded,-15.50,Harbor,2024-05-05 10:00:00,Ann Lee
2003,processing,abc,Harbor,2024-05-05 10:00:00,Tom Ray
2004,,8.00,,2024-05-06,Kim Park
2001,completed,15.50,Harbor,2024-05-04 10:00:00,Ann Lee
`

func TestUploadUsecase_CSV(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	uc := NewDefaultUploadUsecase(f.importer, slog.New(slog.DiscardHandler))

	result, err := uc.Upload(ctx, "export.csv", strings.NewReader(uploadCSV))
	require.NoError(t, err)
	assert.Equal(t, 5, result.RecordsProcessed)
	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 3, result.Skipped)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "line 4")

	orders, total, err := f.orderRepo.GetOrders(ctx, domain.OrderFilter{})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)

	byID := map[string]*domain.Order{}
	for _, o := range orders {
		byID[o.ExternalID] = o
	}
	require.Contains(t, byID, "2004")
	assert.Equal(t, domain.StatusCompleted, byID["2004"].Status)
	assert.Equal(t, "Unknown Location", byID["2004"].LocationName)
	assert.Equal(t, domain.SourceUpload, byID["2001"].Source)
}

func TestUploadUsecase_RejectsUnknownFormat(t *testing.T) {
	f := newFixture(t)
	uc := NewDefaultUploadUsecase(f.importer, slog.New(slog.DiscardHandler))

	_, err := uc.Upload(context.Background(), "export.pdf", strings.NewReader("x"))
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUploadUsecase_EmptyTotalIsSkipped(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	uc := NewDefaultUploadUsecase(f.importer, slog.New(slog.DiscardHandler))

	csv := "Order ID,Status,Total Amount,Location\n" +
		"4001,completed,,Harbor\n" +
		"4002,completed,12.00,Harbor\n"

	result, err := uc.Upload(ctx, "export.csv", strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)
	assert.Equal(t, 1, result.Skipped)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "line 2")

	exists, err := f.orderRepo.ExistsByExternalID(ctx, "4001")
	require.NoError(t, err)
	assert.False(t, exists)
}
