package commands

import (
	"context"

	"distribution/internal/core/domain/model/order"
	"distribution/internal/core/ports"
)

// AssignOrderCommandHandler handles assignment of pending orders to staff.
// The write is guarded on the Pending status, so two admins racing to assign
// the same order cannot both win.
type AssignOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewAssignOrderCommandHandler creates a handler for order assignment.
func NewAssignOrderCommandHandler(uowFactory OrderUoWFactory, publisher ports.EventPublisher) AssignOrderCommandHandler {
	return AssignOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the assignment command.
// Loads the order, applies the Pending -> Assigned transition, and persists it
// guarded on the previous status. A concurrent transition surfaces as
// errs.ErrVersionIsInvalid and nothing is written.
func (h AssignOrderCommandHandler) Handle(ctx context.Context, cmd AssignOrderCommand) (*order.Order, error) {
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

	assigned, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	previous := assigned.Status()
	if err = assigned.Assign(cmd.StaffID(), cmd.StaffName()); err != nil {
		return nil, err
	}

	if err = orderRepo.UpdateFromStatus(ctx, assigned, previous); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	publish(ctx, h.publisher, ports.EventOrderAssigned, ports.NewOrderPayload(assigned))

	return assigned, nil
}
