package commands

import (
	"context"

	"distribution/internal/core/domain/model/order"
	"distribution/internal/core/ports"
)

// AcceptOrderCommandHandler handles staff acceptance of assigned orders.
// Only the staff member the order was assigned to may accept it; anyone else
// gets errs.ErrForbidden from the aggregate.
type AcceptOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewAcceptOrderCommandHandler creates a handler for order acceptance.
func NewAcceptOrderCommandHandler(uowFactory OrderUoWFactory, publisher ports.EventPublisher) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the acceptance command.
// Applies the Assigned -> Accepted transition, stamping acceptedAt, and
// persists it guarded on the previous status.
func (h AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) (*order.Order, error) {
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

	accepted, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	previous := accepted.Status()
	if err = accepted.Accept(cmd.StaffID()); err != nil {
		return nil, err
	}

	if err = orderRepo.UpdateFromStatus(ctx, accepted, previous); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	publish(ctx, h.publisher, ports.EventOrderAccepted, ports.NewOrderPayload(accepted))

	return accepted, nil
}
