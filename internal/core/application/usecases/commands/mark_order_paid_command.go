package commands

import (
	"errors"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/pkg/errs"
	"distribution/internal/pkg/guard"
)

var (
	ErrMarkOrderPaidCommandIsNotConstructed = errors.New(
		"MarkOrderPaidCommand must be created via NewMarkOrderPaidCommand constructor",
	)
	ErrPaymentReferenceIsRequired = errs.NewValueIsRequiredError("paymentReference")
)

// MarkOrderPaidCommand records a verified payment against an order. It is
// issued by the payment boundary after the provider's signature has been
// checked; the reference is the provider's payment identifier.
type MarkOrderPaidCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	reference string

	guard guard.ConstructorGuard
}

// NewMarkOrderPaidCommand creates a command to mark an order as paid.
func NewMarkOrderPaidCommand(orderID kernel.UUID, reference string) (MarkOrderPaidCommand, error) {
	paidCommand := MarkOrderPaidCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		paidCommand.setOrderID(orderID),
		paidCommand.setReference(reference),
	); err != nil {
		return MarkOrderPaidCommand{}, err
	}

	return paidCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkOrderPaidCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderPaidCommandIsNotConstructed)
}

// OrderID returns the paid order.
func (c MarkOrderPaidCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Reference returns the provider's payment identifier.
func (c MarkOrderPaidCommand) Reference() string {
	return c.reference
}

func (c *MarkOrderPaidCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *MarkOrderPaidCommand) setReference(reference string) error {
	if reference == "" {
		return ErrPaymentReferenceIsRequired
	}

	c.reference = reference
	return nil
}
