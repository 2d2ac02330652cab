package ports

import (
	"context"
	"time"

	"distribution/internal/core/domain/model/order"
	"distribution/internal/core/domain/model/product"
)

// Workflow event names, preserved verbatim from the wire protocol the
// dashboard clients already speak.
const (
	EventOrderCreated       = "order:created"
	EventOrderAssigned      = "order:assigned"
	EventOrderAccepted      = "order:accepted"
	EventOrderStatusChanged = "order:status_changed"
	EventOrderDeleted       = "order:deleted"
	EventProductUpdated     = "product:updated"
)

// Event is a workflow notification: a name and a JSON-serializable payload.
// Delivery is best-effort and at-most-once; nothing in the workflow ever
// blocks on, or fails because of, event delivery.
type Event struct {
	Name    string `json:"name"`
	Payload any    `json:"payload"`
}

// EventPublisher broadcasts workflow events to interested observers.
// The publisher is an explicit dependency of every workflow handler; tests
// and broker-less deployments use NoOpEventPublisher.
type EventPublisher interface {
	// Publish broadcasts the event. Callers treat failures as non-fatal:
	// they log and continue.
	Publish(ctx context.Context, event Event) error
}

// NoOpEventPublisher discards every event. Used in tests and when no broker
// is configured.
type NoOpEventPublisher struct{}

func (NoOpEventPublisher) Publish(_ context.Context, _ Event) error {
	return nil
}

// OrderItemPayload is the wire shape of one order line.
type OrderItemPayload struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	BatchNumber string  `json:"batchNumber,omitempty"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	LineTotal   float64 `json:"lineTotal"`
}

// OrderPayload is the wire shape of a full order, carried by every order
// event except deletion.
type OrderPayload struct {
	ID                string             `json:"id"`
	Items             []OrderItemPayload `json:"items"`
	TotalQuantity     int                `json:"totalQuantity"`
	TotalPrice        float64            `json:"totalPrice"`
	Status            string             `json:"status"`
	ClientID          string             `json:"clientId"`
	ClientName        string             `json:"clientName"`
	ClientEmail       string             `json:"clientEmail"`
	ClientContact     string             `json:"clientContact"`
	AssignedTo        *string            `json:"assignedTo"`
	AssignedStaffName string             `json:"assignedStaffName,omitempty"`
	AcceptedAt        *time.Time         `json:"acceptedAt"`
	CompletedAt       *time.Time         `json:"completedAt"`
	PaymentStatus     string             `json:"paymentStatus"`
	PaymentReference  string             `json:"paymentReference,omitempty"`
	Notes             string             `json:"notes,omitempty"`
	CreatedAt         time.Time          `json:"createdAt"`
	UpdatedAt         time.Time          `json:"updatedAt"`
}

// OrderDeletedPayload carries only the removed order's id.
type OrderDeletedPayload struct {
	ID string `json:"id"`
}

// ProductPayload is the wire shape of a stock record after mutation.
type ProductPayload struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	BatchNumber string  `json:"batchNumber,omitempty"`
	UnitPrice   float64 `json:"unitPrice"`
	Quantity    int     `json:"quantity"`
}

// NewOrderPayload maps an order aggregate to its wire shape.
func NewOrderPayload(o *order.Order) OrderPayload {
	items := make([]OrderItemPayload, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, OrderItemPayload{
			ProductID:   item.ProductID().String(),
			ProductName: item.ProductName(),
			BatchNumber: item.BatchNumber(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice(),
			LineTotal:   item.LineTotal(),
		})
	}

	var assignedTo *string
	if id := o.AssignedTo(); id != nil {
		s := id.String()
		assignedTo = &s
	}

	return OrderPayload{
		ID:                o.ID().String(),
		Items:             items,
		TotalQuantity:     o.TotalQuantity(),
		TotalPrice:        o.TotalPrice(),
		Status:            o.Status().String(),
		ClientID:          o.Client().ID().String(),
		ClientName:        o.Client().Name(),
		ClientEmail:       o.Client().Email(),
		ClientContact:     o.Client().Contact(),
		AssignedTo:        assignedTo,
		AssignedStaffName: o.AssignedStaffName(),
		AcceptedAt:        o.AcceptedAt(),
		CompletedAt:       o.CompletedAt(),
		PaymentStatus:     o.PaymentStatus().String(),
		PaymentReference:  o.PaymentReference(),
		Notes:             o.Notes(),
		CreatedAt:         o.CreatedAt(),
		UpdatedAt:         o.UpdatedAt(),
	}
}

// NewProductPayload maps a stock record to its wire shape.
func NewProductPayload(p *product.Product) ProductPayload {
	return ProductPayload{
		ID:          p.ID().String(),
		Name:        p.Name(),
		BatchNumber: p.BatchNumber(),
		UnitPrice:   p.UnitPrice(),
		Quantity:    p.Quantity(),
	}
}
