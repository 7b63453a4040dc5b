package service

import (
	"context"
	"time"

	"storehub/internal/domain/entity"
)

// Store event kinds.
const (
	EventSaleCompleted       = "sale.completed"
	EventStockLow            = "stock.low"
	EventReservationReminder = "reservation.reminder"
)

// StoreEvent represents a store-scoped event handed to downstream consumers
// (toast delivery, receipt printing, analytics).
type StoreEvent struct {
	RequestID string    `json:"request_id,omitempty"` // For distributed tracing
	Kind      string    `json:"kind"`
	StoreID   string    `json:"store_id"`
	At        time.Time `json:"at"`

	Sale        *entity.SaleSummary `json:"sale,omitempty"`
	LowStock    []entity.Product    `json:"low_stock,omitempty"`
	Reservation *entity.Reservation `json:"reservation,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishStoreEvent publishes a store event for async processing
	PublishStoreEvent(ctx context.Context, event *StoreEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
