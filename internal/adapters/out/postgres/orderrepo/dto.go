// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with indexing for
// the role-scoped listings and the pending queue.
type OrderDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	ClientID          uuid.UUID `gorm:"type:uuid;index"`
	ClientName        string
	ClientEmail       string
	ClientContact     string
	Notes             string
	TotalQuantity     int
	TotalPrice        float64
	Status            int        `gorm:"index"`
	AssignedTo        *uuid.UUID `gorm:"type:uuid;index"`
	AssignedStaffName string
	AcceptedAt        *time.Time
	CompletedAt       *time.Time
	PaymentStatus     int
	PaymentReference  string
	CreatedAt         time.Time `gorm:"index"`
	UpdatedAt         time.Time

	Items []ItemDTO `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one persisted order line with its creation-time snapshot.
// Lines are immutable after the order is placed; they are only ever written
// together with their order and removed by the order's cascade delete.
type ItemDTO struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	OrderID     uuid.UUID `gorm:"type:uuid;index"`
	ProductID   uuid.UUID `gorm:"type:uuid;index"`
	ProductName string
	BatchNumber string
	Quantity    int
	UnitPrice   float64
	LineTotal   float64
}

// TableName specifies the database table name for order lines.
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var assignedTo *uuid.UUID
	if id := aggregate.AssignedTo(); id != nil {
		raw := id.Bytes()
		assignedTo = &raw
	}

	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			OrderID:     aggregate.ID().Bytes(),
			ProductID:   item.ProductID().Bytes(),
			ProductName: item.ProductName(),
			BatchNumber: item.BatchNumber(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice(),
			LineTotal:   item.LineTotal(),
		})
	}

	return OrderDTO{
		ID:                aggregate.ID().Bytes(),
		ClientID:          aggregate.Client().ID().Bytes(),
		ClientName:        aggregate.Client().Name(),
		ClientEmail:       aggregate.Client().Email(),
		ClientContact:     aggregate.Client().Contact(),
		Notes:             aggregate.Notes(),
		TotalQuantity:     aggregate.TotalQuantity(),
		TotalPrice:        aggregate.TotalPrice(),
		Status:            int(aggregate.Status()),
		AssignedTo:        assignedTo,
		AssignedStaffName: aggregate.AssignedStaffName(),
		AcceptedAt:        aggregate.AcceptedAt(),
		CompletedAt:       aggregate.CompletedAt(),
		PaymentStatus:     int(aggregate.PaymentStatus()),
		PaymentReference:  aggregate.PaymentReference(),
		CreatedAt:         aggregate.CreatedAt(),
		UpdatedAt:         aggregate.UpdatedAt(),
		Items:             items,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including line items, assignment, and
// payment state using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}

	client, err := order.NewClient(clientID, dto.ClientName, dto.ClientEmail, dto.ClientContact)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		productID, itemErr := kernel.UUIDFromBytes(itemDTO.ProductID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.RestoreItem(
			productID,
			itemDTO.ProductName,
			itemDTO.BatchNumber,
			itemDTO.Quantity,
			itemDTO.UnitPrice,
			itemDTO.LineTotal,
		)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	var assignedTo *kernel.UUID
	if dto.AssignedTo != nil {
		staffID, staffErr := kernel.UUIDFromBytes((*dto.AssignedTo)[:])
		if staffErr != nil {
			return nil, staffErr
		}
		assignedTo = &staffID
	}

	return order.RestoreOrder(
		id,
		client,
		items,
		dto.Notes,
		dto.TotalQuantity,
		dto.TotalPrice,
		order.Status(dto.Status),
		assignedTo,
		dto.AssignedStaffName,
		dto.AcceptedAt,
		dto.CompletedAt,
		order.PaymentStatus(dto.PaymentStatus),
		dto.PaymentReference,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
