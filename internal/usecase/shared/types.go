package shared

import (
	"encoding/json"
	"time"

	"bookstore-api/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	AggregateOrder    = "order"
	AggregateCustomer = "customer"

	EventOrderCreated       = "order.created"
	EventOrderStatusChanged = "order.status_changed"
	EventPrivateEmail       = "customer.private_email"
)

// OutboxEvent is a domain event written in the same transaction as the change it describes.
type OutboxEvent struct {
	ID            int64
	EventID       uuid.UUID
	AggregateType string
	AggregateID   int64
	EventType     string
	Payload       []byte
	CreatedAt     time.Time
}

func NewOutboxEvent(aggregateType string, aggregateID int64, eventType string, payload any, now time.Time) (OutboxEvent, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return OutboxEvent{}, errs.Wrap(err, "failed to encode outbox payload")
	}
	return OutboxEvent{
		EventID:       uuid.New(),
		AggregateType: aggregateType,
		AggregateID:   aggregateID,
		EventType:     eventType,
		Payload:       body,
		CreatedAt:     now,
	}, nil
}

type OrderCreatedPayload struct {
	OrderID    int64              `json:"order_id"`
	CustomerID int64              `json:"customer_id"`
	Total      string             `json:"total"`
	Items      []OrderCreatedItem `json:"items"`
	CreatedAt  time.Time          `json:"created_at"`
}

type OrderCreatedItem struct {
	BookID    int64  `json:"book_id"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
}

type OrderStatusChangedPayload struct {
	OrderID   int64     `json:"order_id"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	ChangedAt time.Time `json:"changed_at"`
}

type PrivateEmailPayload struct {
	CustomerID int64     `json:"customer_id"`
	Email      string    `json:"email"`
	Subject    string    `json:"subject"`
	Body       string    `json:"body"`
	SentBy     uuid.UUID `json:"sent_by"`
}
