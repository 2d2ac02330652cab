package order

import (
	"fmt"

	"distribution/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the fulfilment workflow.
//
// State transitions:
//
//	Pending ──> Assigned ──> Accepted ──> Completed
//	   │            │            │
//	   └────────────┴────────────┴──────> Rejected
//
// Completed may also be reached directly from any non-terminal state by an
// admin. Completed and Rejected are terminal: no transition leaves them.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status: the order is placed and its stock is
	// reserved, awaiting assignment to a staff member.
	Pending

	// Assigned indicates an admin has handed the order to a staff member.
	Assigned

	// Accepted indicates the assigned staff member has taken the order on.
	Accepted

	// Completed indicates the order was fulfilled. Terminal.
	Completed

	// Rejected indicates the order was refused and its stock released. Terminal.
	Rejected
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Assigned:  "assigned",
		Accepted:  "accepted",
		Completed: "completed",
		Rejected:  "rejected",
	}
}

// StatusFromString parses a status from its wire representation.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if status != Unknown && str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the Status is one of the defined lifecycle states.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if s < Pending || s > Rejected {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, or "unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transition may leave this status.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Rejected
}

// HoldsReservation reports whether an order in this status still holds the
// stock reserved at creation time. Completed orders consumed their stock;
// rejected orders already released it.
func (s Status) HoldsReservation() bool {
	return s == Pending || s == Assigned || s == Accepted
}

// Assign transitions the status to Assigned.
//
// Valid transitions:
//   - Pending -> Assigned
func (s Status) Assign() (Status, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to assign", s),
		)
	}

	return Assigned, nil
}

// Accept transitions the status to Accepted.
//
// Valid transitions:
//   - Assigned -> Accepted
func (s Status) Accept() (Status, error) {
	if s != Assigned {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to accept", s),
		)
	}

	return Accepted, nil
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - Pending, Assigned, or Accepted -> Completed
func (s Status) Complete() (Status, error) {
	if s.IsTerminal() || s.Validate() != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to complete", s),
		)
	}

	return Completed, nil
}

// Reject transitions the status to Rejected.
//
// Valid transitions:
//   - Pending, Assigned, or Accepted -> Rejected
//
// Rejecting an already-rejected order is refused here, which is what keeps
// the stock release idempotent: the workflow releases stock only when this
// transition succeeds.
func (s Status) Reject() (Status, error) {
	if s.IsTerminal() || s.Validate() != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to reject", s),
		)
	}

	return Rejected, nil
}
