package order

import (
	"fmt"

	"distribution/internal/pkg/errs"
)

// PaymentStatus tracks whether a verified payment has been recorded against
// an order. It is deliberately not part of the fulfilment state machine:
// orders are fulfilled independent of payment state.
type PaymentStatus int

const (
	// Unpaid is the default: no verified payment recorded.
	Unpaid PaymentStatus = iota

	// Paid indicates the payment collaborator verified a payment signature
	// and recorded its reference on the order.
	Paid
)

// Validate checks that the PaymentStatus is one of the defined states.
func (p PaymentStatus) Validate() error {
	if p != Unpaid && p != Paid {
		return errs.NewValueIsInvalidErrorWithCause("paymentStatus", fmt.Errorf("%d is not a valid payment status", p))
	}
	return nil
}

// String returns the wire name of the payment status.
func (p PaymentStatus) String() string {
	switch p {
	case Paid:
		return "paid"
	case Unpaid:
		return "unpaid"
	default:
		return "unknown"
	}
}
