package commands

import (
	"context"

	"distribution/internal/core/domain/model/order"
	"distribution/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order placement.
// Reserves stock for every requested line and persists the order atomically:
// either all lines reserve and the order exists, or nothing changes.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, directory, publisher)
//	cmd, _ := NewCreateOrderCommand(kernel.NewUUID(), client, lines, "")
//
//	placed, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, product.ErrInsufficientStock) {
//	    // no stock was deducted for any line
//	}
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	directory  ports.ClientDirectory
	publisher  ports.EventPublisher
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// Requires a UoWFactory spanning orders and stock, the client directory for
// contact snapshots, and an event publisher for post-commit notifications.
func NewCreateOrderCommandHandler(
	uowFactory UoWFactory,
	directory ports.ClientDirectory,
	publisher ports.EventPublisher,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		directory:  directory,
		publisher:  publisher,
	}
}

// Handle processes the order placement command.
// Reserves stock line by line inside a single transaction, snapshotting name,
// batch, and price from the catalog record returned by each reservation. Any
// failure rolls the whole transaction back, so reservations from earlier
// lines are never leaked. Events are published only after commit.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	contact := ""
	record, err := h.directory.FindByName(ctx, cmd.Client().Name())
	if err != nil {
		return nil, err
	}
	if record != nil {
		contact = record.Contact
	}

	client, err := order.NewClient(cmd.Client().ID(), cmd.Client().Name(), cmd.Client().Email(), contact)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	productRepo := uow.ProductRepository()
	orderRepo := uow.OrderRepository()

	lines := cmd.Lines()
	items := make([]order.Item, 0, len(lines))
	reserved := make([]ports.ProductPayload, 0, len(lines))
	for _, line := range lines {
		stock, err := productRepo.Reserve(ctx, line.ProductID, line.Quantity)
		if err != nil {
			return nil, err
		}

		item, err := order.NewItem(line.ProductID, stock.Name(), stock.BatchNumber(), line.Quantity, stock.UnitPrice())
		if err != nil {
			return nil, err
		}

		items = append(items, item)
		reserved = append(reserved, ports.NewProductPayload(stock))
	}

	placed, err := order.NewOrder(cmd.OrderID(), client, items, cmd.Notes())
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Add(ctx, placed); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	publish(ctx, h.publisher, ports.EventOrderCreated, ports.NewOrderPayload(placed))
	for _, payload := range reserved {
		publish(ctx, h.publisher, ports.EventProductUpdated, payload)
	}

	return placed, nil
}
