package order

import (
	"errors"
	"time"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder. This ensures all orders are properly
// validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the aggregate root of the fulfilment workflow. It owns its line
// items, the totals computed once at creation, the lifecycle status, and the
// assignment and payment metadata.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a client snapshot
//   - Must have at least one item
//   - totalQuantity equals the sum of item quantities, fixed at creation
//   - totalPrice equals the sum of item line totals, fixed at creation
//   - Status transitions follow the workflow state machine
//   - acceptedAt/completedAt are set exactly once, on their transitions
//
// Stock side effects (reserve at creation, release on reject/delete) are
// orchestrated by the workflow command handlers; the aggregate only governs
// which transitions are legal and who may trigger them.
type Order struct {
	id     kernel.UUID
	client Client
	items  []Item
	notes  string

	totalQuantity int
	totalPrice    float64

	status            Status
	assignedTo        *kernel.UUID
	assignedStaffName string
	acceptedAt        *time.Time
	completedAt       *time.Time

	paymentStatus    PaymentStatus
	paymentReference string

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewOrder creates a new Order in Pending status with its totals computed
// from the given items. Callers reserve stock before persisting the order;
// the aggregate itself records only the snapshot.
func NewOrder(id kernel.UUID, client Client, items []Item, notes string) (*Order, error) {
	o := &Order{
		status:        Pending,
		paymentStatus: Unpaid,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setClient(client),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	for _, item := range o.items {
		o.totalQuantity += item.Quantity()
		o.totalPrice += item.LineTotal()
	}

	o.notes = notes
	o.createdAt = time.Now().UTC()
	o.updatedAt = o.createdAt
	return o, nil
}

// RestoreOrder reconstructs an Order from persistence with its full state,
// including the totals stored at creation time.
func RestoreOrder(
	id kernel.UUID,
	client Client,
	items []Item,
	notes string,
	totalQuantity int,
	totalPrice float64,
	status Status,
	assignedTo *kernel.UUID,
	assignedStaffName string,
	acceptedAt, completedAt *time.Time,
	paymentStatus PaymentStatus,
	paymentReference string,
	createdAt, updatedAt time.Time,
) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setID(id),
		o.setClient(client),
		o.setItems(items),
		status.Validate(),
		paymentStatus.Validate(),
	); err != nil {
		return nil, err
	}

	o.notes = notes
	o.totalQuantity = totalQuantity
	o.totalPrice = totalPrice
	o.status = status
	o.assignedTo = assignedTo
	o.assignedStaffName = assignedStaffName
	o.acceptedAt = acceptedAt
	o.completedAt = completedAt
	o.paymentStatus = paymentStatus
	o.paymentReference = paymentReference
	o.createdAt = createdAt
	o.updatedAt = updatedAt
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Client returns the client snapshot taken at creation time.
func (o *Order) Client() Client {
	return o.client
}

// Items returns the order's line items. The returned slice is a copy; items
// are immutable after creation.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Notes returns the free-text notes attached by the client.
func (o *Order) Notes() string {
	return o.notes
}

// TotalQuantity returns the sum of item quantities, fixed at creation.
func (o *Order) TotalQuantity() int {
	return o.totalQuantity
}

// TotalPrice returns the sum of item line totals, fixed at creation.
func (o *Order) TotalPrice() float64 {
	return o.totalPrice
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// AssignedTo returns the assigned staff member's ID, or nil if unassigned.
func (o *Order) AssignedTo() *kernel.UUID {
	return o.assignedTo
}

// AssignedStaffName returns the assigned staff member's name snapshot.
func (o *Order) AssignedStaffName() string {
	return o.assignedStaffName
}

// AcceptedAt returns when the assigned staff accepted the order, or nil.
func (o *Order) AcceptedAt() *time.Time {
	return o.acceptedAt
}

// CompletedAt returns when the order was completed, or nil.
func (o *Order) CompletedAt() *time.Time {
	return o.completedAt
}

// PaymentStatus returns the payment state, which is orthogonal to the
// fulfilment status.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// PaymentReference returns the provider's payment reference, if paid.
func (o *Order) PaymentReference() string {
	return o.paymentReference
}

// CreatedAt returns when the order was placed.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns when the order last changed.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Assign hands a pending order to a staff member and moves it to Assigned.
//
// Business rules:
//   - The staff ID must be valid and the staff name non-empty
//   - Only Pending orders can be assigned
func (o *Order) Assign(staffID kernel.UUID, staffName string) error {
	if err := staffID.Validate(); err != nil {
		return err
	}
	if staffName == "" {
		return errs.NewValueIsRequiredError("staffName")
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.assignedTo = &staffID
	o.assignedStaffName = staffName
	o.touch()
	return nil
}

// Accept records that the assigned staff member has taken the order on.
//
// Business rules:
//   - Only Assigned orders can be accepted
//   - The accepting staff identity must equal the assignee
func (o *Order) Accept(staffID kernel.UUID) error {
	if err := staffID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}

	if o.assignedTo == nil || !o.assignedTo.IsEqual(staffID) {
		return errs.NewForbiddenErrorWithCause("staff", "accept order",
			errors.New("staff identity does not match assignee"))
	}

	now := time.Now().UTC()
	o.status = newStatus
	o.acceptedAt = &now
	o.touch()
	return nil
}

// Complete marks the order fulfilled. Terminal; reachable from any
// non-terminal status.
func (o *Order) Complete() error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	o.status = newStatus
	o.completedAt = &now
	o.touch()
	return nil
}

// Reject refuses the order. Terminal; reachable from any non-terminal status.
// Callers release the order's reserved stock when, and only when, this
// transition succeeds. Rejecting twice fails here and therefore never
// double-credits stock.
func (o *Order) Reject() error {
	newStatus, err := o.status.Reject()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// MarkPaid records a verified payment against the order. Payment state is
// orthogonal to fulfilment: this write bypasses the status machine and
// succeeds in any status, including terminal ones.
func (o *Order) MarkPaid(reference string) error {
	if reference == "" {
		return errs.NewValueIsRequiredError("paymentReference")
	}

	o.paymentStatus = Paid
	o.paymentReference = reference
	o.touch()
	return nil
}

func (o *Order) touch() {
	o.updatedAt = time.Now().UTC()
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setClient(client Client) error {
	if err := client.Validate(); err != nil {
		return err
	}
	o.client = client
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}
