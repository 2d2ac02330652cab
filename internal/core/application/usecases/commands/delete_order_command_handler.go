package commands

import (
	"context"

	"distribution/internal/core/ports"
)

// DeleteOrderCommandHandler permanently removes orders.
// If the order still holds its stock reservation (pending, assigned, or
// accepted) the reservation is returned to the pool in the same transaction.
// Rejected orders already released their stock and completed orders consumed
// it, so deleting those moves no stock.
type DeleteOrderCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.EventPublisher
}

// NewDeleteOrderCommandHandler creates a handler for order deletion.
func NewDeleteOrderCommandHandler(uowFactory UoWFactory, publisher ports.EventPublisher) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the deletion command.
// Loads the order, releases its reservation when one is still held, and
// hard-deletes the order and its items atomically.
func (h DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	productRepo := uow.ProductRepository()

	deleted, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	var released []ports.ProductPayload
	if deleted.Status().HoldsReservation() {
		released, err = releaseItems(ctx, productRepo, deleted.Items())
		if err != nil {
			return err
		}
	}

	// The guard ties the delete to the status the release decision was made
	// on: if another actor moved the order meanwhile, the delete fails and
	// the rollback undoes any release performed above.
	if err = orderRepo.Delete(ctx, deleted.ID(), deleted.Status()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publish(ctx, h.publisher, ports.EventOrderDeleted, ports.OrderDeletedPayload{ID: deleted.ID().String()})
	for _, payload := range released {
		publish(ctx, h.publisher, ports.EventProductUpdated, payload)
	}

	return nil
}
