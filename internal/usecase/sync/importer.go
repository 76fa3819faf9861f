package syncusecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/domain"
	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/infrastructure/metrics"
)

type ImportOutcome int

const (
	OutcomeImported ImportOutcome = iota
	OutcomeDuplicate
)

type LocationResolver interface {
	ResolveOrCreate(ctx context.Context, name string) (*domain.Location, error)
}

type ImportOrderInput struct {
	Order        *domain.MarketplaceOrder
	Source       domain.OrderSource
	ConnectionID string
}

// Importer is the single write path for new orders, shared by store sync and
// file upload.
type Importer struct {
	Orders          domain.OrderRepository
	Locations       LocationResolver
	Events          domain.EventPublisher
	Metrics         *metrics.SyncMetrics
	DefaultLocation string
	Logger          *slog.Logger
	Now             func() time.Time
}

func NewImporter(
	orders domain.OrderRepository,
	locations LocationResolver,
	events domain.EventPublisher,
	syncMetrics *metrics.SyncMetrics,
	defaultLocation string,
	logger *slog.Logger,
) *Importer {
	return &Importer{
		Orders:          orders,
		Locations:       locations,
		Events:          events,
		Metrics:         syncMetrics,
		DefaultLocation: defaultLocation,
		Logger:          logger,
		Now:             time.Now,
	}
}

// Import stores one order unless its external id is already known. Errors are
// per order: the caller counts them as skipped and moves on.
func (im *Importer) Import(ctx context.Context, in ImportOrderInput) (ImportOutcome, error) {
	src := in.Order
	source := string(in.Source)

	if src.Err != nil {
		return 0, fmt.Errorf("%w: order %s: %v", domain.ErrValidation, src.ExternalID, src.Err)
	}
	if strings.TrimSpace(src.ExternalID) == "" {
		return 0, domain.Validationf("order has no external id")
	}
	if src.Total.IsNegative() {
		return 0, domain.Validationf("order %s has negative total %s", src.ExternalID, src.Total)
	}

	exists, err := im.Orders.ExistsByExternalID(ctx, src.ExternalID)
	if err != nil {
		return 0, err
	}
	if exists {
		im.Metrics.RecordSkipped(source, "duplicate")
		return OutcomeDuplicate, nil
	}

	locationName := im.DefaultLocation
	if src.HasLocation && strings.TrimSpace(src.LocationName) != "" {
		locationName = strings.TrimSpace(src.LocationName)
	}
	location, err := im.Locations.ResolveOrCreate(ctx, locationName)
	if err != nil {
		return 0, fmt.Errorf("resolve location %q: %w", locationName, err)
	}

	status := domain.OrderStatus(strings.ToLower(strings.TrimSpace(src.Status)))
	if status == "" {
		status = domain.StatusCompleted
	}
	orderDate := src.CreatedAt
	if orderDate.IsZero() {
		orderDate = im.Now()
	}

	order := &domain.Order{
		ExternalID:   src.ExternalID,
		LocationID:   location.ID,
		LocationName: location.Name,
		Status:       status,
		Amount:       src.Total,
		RefundAmount: src.RefundAmount,
		Fees:         domain.CalculateFees(src.Total, status),
		OrderDate:    orderDate.UTC(),
		Customer:     src.Customer,
		Source:       in.Source,
		ConnectionID: in.ConnectionID,
	}
	raw := &domain.RawOrder{
		ExternalID:   src.ExternalID,
		ConnectionID: in.ConnectionID,
		Payload:      src.Raw,
	}

	if err := im.Orders.CreateOrder(ctx, order, raw); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			im.Metrics.RecordSkipped(source, "duplicate")
			return OutcomeDuplicate, nil
		}
		return 0, err
	}

	im.Metrics.RecordImported(source)
	if err := im.Events.OrderImported(order); err != nil {
		im.Logger.Warn("failed to publish order event", "external_id", order.ExternalID, "error", err)
	}
	return OutcomeImported, nil
}
