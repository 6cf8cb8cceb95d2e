package ports

import (
	"context"
	"time"
)

// Notification is an event published to interested parties after a state
// change has been committed.
type Notification struct {
	Event            string    `json:"event"`
	TransportOrderID string    `json:"transportOrderId,omitempty"`
	OrderNumber      string    `json:"orderNumber,omitempty"`
	ReceiptNumber    string    `json:"receiptNumber,omitempty"`
	RecyclerID       string    `json:"recyclerId,omitempty"`
	Message          string    `json:"message,omitempty"`
	OccurredAt       time.Time `json:"occurredAt"`
}

// Notifier publishes notifications after a transaction commits. Publishing
// is fire-and-forget: implementations log failures but must never fail the
// business operation that already committed.
type Notifier interface {
	Publish(ctx context.Context, notification Notification)
}
