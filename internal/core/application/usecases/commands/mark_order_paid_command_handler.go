package commands

import (
	"context"
)

// MarkOrderPaidCommandHandler records verified payments.
// Payment state is orthogonal to fulfilment: the write bypasses the status
// machine and succeeds whatever the order's lifecycle state, including
// terminal ones, so a payment arriving after completion is never lost.
type MarkOrderPaidCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewMarkOrderPaidCommandHandler creates a handler for payment recording.
func NewMarkOrderPaidCommandHandler(uowFactory OrderUoWFactory) MarkOrderPaidCommandHandler {
	return MarkOrderPaidCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the payment recording command.
// Uses the unguarded Update because no status precondition applies.
func (h MarkOrderPaidCommandHandler) Handle(ctx context.Context, cmd MarkOrderPaidCommand) error {
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

	paid, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = paid.MarkPaid(cmd.Reference()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, paid); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
