package publisher

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/domain"
)

const (
	EventOrderImported = "order.imported"
	EventSyncFinished  = "sync.finished"
)

type OrderImportedEvent struct {
	Type         string    `json:"type"`
	ExternalID   string    `json:"external_id"`
	LocationID   uint      `json:"location_id"`
	Status       string    `json:"status"`
	Amount       string    `json:"amount"`
	PlatformFee  string    `json:"platform_fee"`
	ProcessorFee string    `json:"processor_fee"`
	NetAmount    string    `json:"net_amount"`
	Source       string    `json:"source"`
	ConnectionID string    `json:"connection_id,omitempty"`
	OrderDate    time.Time `json:"order_date"`
}

type SyncFinishedEvent struct {
	Type         string    `json:"type"`
	RunID        string    `json:"run_id"`
	ConnectionID string    `json:"connection_id"`
	State        string    `json:"state"`
	Imported     int       `json:"imported"`
	Skipped      int       `json:"skipped"`
	Error        string    `json:"error,omitempty"`
	FinishedAt   time.Time `json:"finished_at"`
}

// SalesEventPublisher serialises domain events onto a single topic.
type SalesEventPublisher struct {
	port  domain.PublisherPort
	topic string
}

func NewSalesEventPublisher(port domain.PublisherPort, topic string) *SalesEventPublisher {
	return &SalesEventPublisher{port: port, topic: topic}
}

func (p *SalesEventPublisher) OrderImported(order *domain.Order) error {
	return p.publish(order.ExternalID, OrderImportedEvent{
		Type:         EventOrderImported,
		ExternalID:   order.ExternalID,
		LocationID:   order.LocationID,
		Status:       string(order.Status),
		Amount:       order.Amount.String(),
		PlatformFee:  order.Fees.PlatformFee.String(),
		ProcessorFee: order.Fees.ProcessorFee.String(),
		NetAmount:    order.Fees.NetAmount.String(),
		Source:       string(order.Source),
		ConnectionID: order.ConnectionID,
		OrderDate:    order.OrderDate,
	})
}

func (p *SalesEventPublisher) SyncFinished(run *domain.SyncRun) error {
	return p.publish(run.ConnectionID, SyncFinishedEvent{
		Type:         EventSyncFinished,
		RunID:        run.ID,
		ConnectionID: run.ConnectionID,
		State:        string(run.State),
		Imported:     run.Imported,
		Skipped:      run.Skipped,
		Error:        run.Error,
		FinishedAt:   run.FinishedAt,
	})
}

func (p *SalesEventPublisher) publish(key string, event any) error {
	v, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	return p.port.Publish(p.topic, domain.Message{Key: []byte(key), Value: v})
}
