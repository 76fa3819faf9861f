package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/domain"
	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/infrastructure/upload"
	syncusecase "github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/usecase/sync"
)

const maxReportedUploadErrors = 20

type UploadResult struct {
	RecordsProcessed int      `json:"recordsProcessed"`
	Imported         int      `json:"imported"`
	Skipped          int      `json:"skipped"`
	Errors           []string `json:"errors,omitempty"`
}

type UploadUsecase interface {
	Upload(ctx context.Context, filename string, r io.Reader) (*UploadResult, error)
}

type DefaultUploadUsecase struct {
	Importer *syncusecase.Importer
	Logger   *slog.Logger
}

func NewDefaultUploadUsecase(importer *syncusecase.Importer, logger *slog.Logger) *DefaultUploadUsecase {
	return &DefaultUploadUsecase{Importer: importer, Logger: logger}
}

// Upload imports every row of a CSV or XLSX export through the shared
// importer. Negative-total rows are refund duplicates and only counted.
func (uc *DefaultUploadUsecase) Upload(ctx context.Context, filename string, r io.Reader) (*UploadResult, error) {
	records, err := upload.Parse(filename, r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	result := &UploadResult{RecordsProcessed: len(records)}
	for _, rec := range records {
		if rec.RefundDuplicate {
			result.Skipped++
			continue
		}
		if rec.Err != nil {
			result.Skipped++
			result.addError(rec.Err.Error())
			continue
		}

		outcome, err := uc.Importer.Import(ctx, syncusecase.ImportOrderInput{
			Order:  rec.Order,
			Source: domain.SourceUpload,
		})
		switch {
		case err != nil:
			result.Skipped++
			result.addError(fmt.Sprintf("line %d: %v", rec.Line, err))
		case outcome == syncusecase.OutcomeDuplicate:
			result.Skipped++
		default:
			result.Imported++
		}
	}

	uc.Logger.Info("upload processed",
		"file", filename,
		"records", result.RecordsProcessed,
		"imported", result.Imported,
		"skipped", result.Skipped,
	)
	return result, nil
}

func (r *UploadResult) addError(msg string) {
	if len(r.Errors) < maxReportedUploadErrors {
		r.Errors = append(r.Errors, msg)
	}
}
