package commands

import (
	"errors"

	"distribution/internal/core/domain/model/actor"
	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/pkg/errs"
	"distribution/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderLinesAreRequired = errs.NewValueIsRequiredErrorWithCause("items",
		errors.New("at least one order line is required"))
	ErrLineQuantityIsInvalid = errs.NewValueIsInvalidErrorWithCause("quantity",
		errors.New("line quantity must be greater than 0"))
)

// OrderLine is one requested line of a new order: a catalog product reference
// and the number of units to reserve. Price and name snapshots are taken
// server-side from the catalog record, never from the request.
type OrderLine struct {
	ProductID kernel.UUID
	Quantity  int
}

// CreateOrderCommand represents a request to place a new order.
// Encapsulates the placing client's identity, the requested lines, and
// optional free-text notes.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, client, lines, "deliver before noon")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, directory, publisher)
//	placed, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("Order %s placed with total %.2f", placed.ID(), placed.TotalPrice())
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	client  actor.Actor
	lines   []OrderLine
	notes   string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates that the order ID and client identity are valid, that at least
// one line is present, and that every line references a valid product with a
// positive quantity.
func NewCreateOrderCommand(orderID kernel.UUID, client actor.Actor, lines []OrderLine, notes string) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setClient(client),
		orderCommand.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Client returns the placing client's identity.
func (c CreateOrderCommand) Client() actor.Actor {
	return c.client
}

// Lines returns the requested order lines.
func (c CreateOrderCommand) Lines() []OrderLine {
	lines := make([]OrderLine, len(c.lines))
	copy(lines, c.lines)
	return lines
}

// Notes returns the free-text notes attached by the client.
func (c CreateOrderCommand) Notes() string {
	return c.notes
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setClient(client actor.Actor) error {
	if err := client.Validate(); err != nil {
		return err
	}

	c.client = client
	return nil
}

func (c *CreateOrderCommand) setLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return ErrOrderLinesAreRequired
	}

	for _, line := range lines {
		if err := line.ProductID.Validate(); err != nil {
			return err
		}
		if line.Quantity < 1 {
			return ErrLineQuantityIsInvalid
		}
	}

	c.lines = make([]OrderLine, len(lines))
	copy(c.lines, lines)
	return nil
}
