// Package product models the catalog stock record mutated by the order
// workflow. The catalog itself (names, prices, divisions) is owned by a
// separate subsystem; this package owns the single invariant the workflow
// depends on: quantity never goes negative, even under concurrent
// reservations.
package product

import (
	"errors"
	"fmt"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/pkg/errs"
)

var (
	// ErrProductIsNotConstructed is returned when a Product was not created
	// through NewProduct or RestoreProduct.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

	// ErrInsufficientStock is the sentinel for reservations that exceed the
	// available quantity. Match with errors.Is; the typed
	// InsufficientStockError carries the product and shortfall.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrOrphanedRelease is the sentinel for stock releases that target a
	// product no longer in the catalog. A non-fatal anomaly: the order's own
	// status transition still proceeds.
	ErrOrphanedRelease = errors.New("orphaned stock release")
)

// InsufficientStockError reports a reservation that would drive stock
// negative. It identifies the product, the requested amount, and what was
// actually available.
type InsufficientStockError struct {
	ProductID kernel.UUID
	Requested int
	Available int
}

// NewInsufficientStockError creates an InsufficientStockError for the given
// product and amounts.
func NewInsufficientStockError(productID kernel.UUID, requested, available int) *InsufficientStockError {
	return &InsufficientStockError{ProductID: productID, Requested: requested, Available: available}
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("%s: product is: %s, requested is: %d, available is: %d",
		ErrInsufficientStock, e.ProductID, e.Requested, e.Available)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

// OrphanedReleaseError reports a release whose product no longer exists.
type OrphanedReleaseError struct {
	ProductID kernel.UUID
	Amount    int
}

// NewOrphanedReleaseError creates an OrphanedReleaseError for the given
// product and amount.
func NewOrphanedReleaseError(productID kernel.UUID, amount int) *OrphanedReleaseError {
	return &OrphanedReleaseError{ProductID: productID, Amount: amount}
}

func (e *OrphanedReleaseError) Error() string {
	return fmt.Sprintf("%s: product is: %s, amount is: %d", ErrOrphanedRelease, e.ProductID, e.Amount)
}

func (e *OrphanedReleaseError) Unwrap() error {
	return ErrOrphanedRelease
}

// Product is the stock record for a vaccine or medical product. The workflow
// mutates only the quantity; name, batch number, and price are read to
// snapshot order lines at creation time.
//
// Invariant: quantity >= 0 at all times.
type Product struct {
	id          kernel.UUID
	name        string
	batchNumber string
	unitPrice   float64
	quantity    int

	isConstructed bool
}

// NewProduct creates a validated stock record.
// Quantity must be non-negative and unit price must not be negative.
func NewProduct(id kernel.UUID, name, batchNumber string, unitPrice float64, quantity int) (*Product, error) {
	p := &Product{isConstructed: true}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setUnitPrice(unitPrice),
		p.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	p.batchNumber = batchNumber
	return p, nil
}

// RestoreProduct reconstructs a stock record from persistence.
// Persisted state is trusted to have passed creation-time validation.
func RestoreProduct(id kernel.UUID, name, batchNumber string, unitPrice float64, quantity int) (*Product, error) {
	return NewProduct(id, name, batchNumber, unitPrice, quantity)
}

// Validate ensures the Product was created through a constructor.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product's display name.
func (p *Product) Name() string {
	return p.name
}

// BatchNumber returns the production batch identifier, if any.
func (p *Product) BatchNumber() string {
	return p.batchNumber
}

// UnitPrice returns the current selling price per unit.
func (p *Product) UnitPrice() float64 {
	return p.unitPrice
}

// Quantity returns the units currently available.
func (p *Product) Quantity() int {
	return p.quantity
}

// Reserve decrements available stock by amount.
// Fails with InsufficientStockError when fewer than amount units are
// available, leaving the quantity unchanged.
func (p *Product) Reserve(amount int) error {
	if amount < 1 {
		return errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%d is not greater than 0", amount))
	}
	if p.quantity < amount {
		return NewInsufficientStockError(p.id, amount, p.quantity)
	}

	p.quantity -= amount
	return nil
}

// Release returns amount units to available stock, undoing a reservation.
func (p *Product) Release(amount int) error {
	if amount < 1 {
		return errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%d is not greater than 0", amount))
	}

	p.quantity += amount
	return nil
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setUnitPrice(unitPrice float64) error {
	if unitPrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice", fmt.Errorf("%v is negative", unitPrice))
	}
	p.unitPrice = unitPrice
	return nil
}

func (p *Product) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is negative", quantity))
	}
	p.quantity = quantity
	return nil
}
