package commands

import (
	"errors"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/pkg/errs"
	"distribution/internal/pkg/guard"
)

var (
	ErrAssignOrderCommandIsNotConstructed = errors.New(
		"AssignOrderCommand must be created via NewAssignOrderCommand constructor",
	)
	ErrStaffNameIsRequired = errs.NewValueIsRequiredError("staffName")
)

// AssignOrderCommand represents an admin's request to hand a pending order to
// a staff member. The staff name is snapshotted onto the order so listings
// stay readable after staff records change.
type AssignOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	staffID   kernel.UUID
	staffName string

	guard guard.ConstructorGuard
}

// NewAssignOrderCommand creates a command to assign an order to a staff member.
// Validates that both identifiers are valid and the staff name is not empty.
func NewAssignOrderCommand(orderID, staffID kernel.UUID, staffName string) (AssignOrderCommand, error) {
	assignCommand := AssignOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		assignCommand.setOrderID(orderID),
		assignCommand.setStaff(staffID, staffName),
	); err != nil {
		return AssignOrderCommand{}, err
	}

	return assignCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignOrderCommand) Validate() error {
	return c.guard.Validate(ErrAssignOrderCommandIsNotConstructed)
}

// OrderID returns the order to assign.
func (c AssignOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// StaffID returns the staff member receiving the order.
func (c AssignOrderCommand) StaffID() kernel.UUID {
	return c.staffID
}

// StaffName returns the staff member's display name.
func (c AssignOrderCommand) StaffName() string {
	return c.staffName
}

func (c *AssignOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignOrderCommand) setStaff(staffID kernel.UUID, staffName string) error {
	if err := staffID.Validate(); err != nil {
		return err
	}
	if staffName == "" {
		return ErrStaffNameIsRequired
	}

	c.staffID = staffID
	c.staffName = staffName
	return nil
}
