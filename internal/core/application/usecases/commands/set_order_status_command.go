package commands

import (
	"errors"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/core/domain/model/order"
	"distribution/internal/pkg/errs"
	"distribution/internal/pkg/guard"
)

var (
	ErrSetOrderStatusCommandIsNotConstructed = errors.New(
		"SetOrderStatusCommand must be created via NewSetOrderStatusCommand constructor",
	)
	ErrTargetStatusIsInvalid = errs.NewValueIsInvalidErrorWithCause("status",
		errors.New("target status must be completed or rejected"))
)

// SetOrderStatusCommand represents an admin's request to close an order:
// either complete it or reject it. Intermediate statuses are reached through
// the dedicated assign and accept commands, never set directly.
type SetOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	status  order.Status

	guard guard.ConstructorGuard
}

// NewSetOrderStatusCommand creates a command to complete or reject an order.
// Any target other than Completed or Rejected is refused.
func NewSetOrderStatusCommand(orderID kernel.UUID, status order.Status) (SetOrderStatusCommand, error) {
	statusCommand := SetOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		statusCommand.setOrderID(orderID),
		statusCommand.setStatus(status),
	); err != nil {
		return SetOrderStatusCommand{}, err
	}

	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c SetOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetOrderStatusCommandIsNotConstructed)
}

// OrderID returns the order to close.
func (c SetOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Status returns the terminal status to apply.
func (c SetOrderStatusCommand) Status() order.Status {
	return c.status
}

func (c *SetOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SetOrderStatusCommand) setStatus(status order.Status) error {
	if status != order.Completed && status != order.Rejected {
		return ErrTargetStatusIsInvalid
	}

	c.status = status
	return nil
}
