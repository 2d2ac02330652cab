package commands

import (
	"context"
	"errors"
	"log/slog"

	"distribution/internal/core/domain/model/order"
	"distribution/internal/core/domain/model/product"
	"distribution/internal/core/ports"
)

// SetOrderStatusCommandHandler closes orders by completing or rejecting them.
// Rejection returns the order's reserved stock to the pool within the same
// transaction; completion consumes the reservation and releases nothing.
//
// Rejecting an already-rejected order fails in the status machine before any
// stock is touched, so stock is credited back at most once per order.
type SetOrderStatusCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.EventPublisher
}

// NewSetOrderStatusCommandHandler creates a handler for closing orders.
// Requires a UoWFactory spanning orders and stock because rejection releases
// the order's reservation.
func NewSetOrderStatusCommandHandler(uowFactory UoWFactory, publisher ports.EventPublisher) SetOrderStatusCommandHandler {
	return SetOrderStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the close command.
// Applies the transition, releases stock line by line when rejecting, and
// persists the order guarded on its previous status. A release against a
// product that no longer exists is logged and skipped; it never blocks the
// rejection itself.
func (h SetOrderStatusCommandHandler) Handle(ctx context.Context, cmd SetOrderStatusCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	productRepo := uow.ProductRepository()

	closed, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	previous := closed.Status()
	switch cmd.Status() {
	case order.Completed:
		err = closed.Complete()
	case order.Rejected:
		err = closed.Reject()
	}
	if err != nil {
		return nil, err
	}

	// Reject only succeeds from statuses that still hold the reservation,
	// so every line is credited back exactly once.
	var released []ports.ProductPayload
	if cmd.Status() == order.Rejected {
		released, err = releaseItems(ctx, productRepo, closed.Items())
		if err != nil {
			return nil, err
		}
	}

	if err = orderRepo.UpdateFromStatus(ctx, closed, previous); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	publish(ctx, h.publisher, ports.EventOrderStatusChanged, ports.NewOrderPayload(closed))
	for _, payload := range released {
		publish(ctx, h.publisher, ports.EventProductUpdated, payload)
	}

	return closed, nil
}

// releaseItems returns each line's quantity to the stock pool and collects
// the updated stock records for post-commit notifications. An orphaned
// release (product deleted since the order was placed) is logged and skipped.
func releaseItems(ctx context.Context, productRepo ports.ProductRepository, items []order.Item) ([]ports.ProductPayload, error) {
	payloads := make([]ports.ProductPayload, 0, len(items))
	for _, item := range items {
		err := productRepo.Release(ctx, item.ProductID(), item.Quantity())
		if errors.Is(err, product.ErrOrphanedRelease) {
			slog.WarnContext(ctx, "released stock for missing product",
				"product", item.ProductID().String(),
				"amount", item.Quantity(),
			)
			continue
		}
		if err != nil {
			return nil, err
		}

		stock, err := productRepo.Get(ctx, item.ProductID())
		if err != nil {
			return nil, err
		}
		payloads = append(payloads, ports.NewProductPayload(stock))
	}

	return payloads, nil
}
