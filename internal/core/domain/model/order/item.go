package order

import (
	"fmt"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/pkg/errs"
	"distribution/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item was not created through
// NewItem or RestoreItem.
var ErrItemIsNotConstructed = errs.NewValueIsRequiredError("Item must be created via NewItem or RestoreItem")

// Item is one line of an order: a product reference plus the snapshot taken
// at creation time. Product name, batch number, and unit price are copied
// from the catalog record when the order is placed and never refreshed, so
// historical orders stay accurate when the catalog changes. The line total
// equals quantity * unitPrice at creation and is never recomputed.
//
// Items have no identity or lifecycle outside their parent order.
type Item struct {
	productID   kernel.UUID
	productName string
	batchNumber string
	quantity    int
	unitPrice   float64
	lineTotal   float64

	guard guard.ConstructorGuard
}

// NewItem creates an order line, computing the line total from the snapshot.
// Quantity must be at least 1 and unit price must not be negative.
func NewItem(productID kernel.UUID, productName, batchNumber string, quantity int, unitPrice float64) (Item, error) {
	if err := productID.Validate(); err != nil {
		return Item{}, err
	}
	if productName == "" {
		return Item{}, errs.NewValueIsRequiredError("productName")
	}
	if quantity < 1 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	if unitPrice < 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("unitPrice", fmt.Errorf("%v is negative", unitPrice))
	}

	return Item{
		productID:   productID,
		productName: productName,
		batchNumber: batchNumber,
		quantity:    quantity,
		unitPrice:   unitPrice,
		lineTotal:   float64(quantity) * unitPrice,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// RestoreItem reconstructs an order line from persistence, keeping the stored
// line total rather than recomputing it.
func RestoreItem(productID kernel.UUID, productName, batchNumber string, quantity int, unitPrice, lineTotal float64) (Item, error) {
	item, err := NewItem(productID, productName, batchNumber, quantity, unitPrice)
	if err != nil {
		return Item{}, err
	}

	item.lineTotal = lineTotal
	return item, nil
}

// Validate ensures the Item was created through a constructor.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ProductID returns the referenced catalog product.
func (i Item) ProductID() kernel.UUID {
	return i.productID
}

// ProductName returns the product name snapshot.
func (i Item) ProductName() string {
	return i.productName
}

// BatchNumber returns the batch number snapshot, if any.
func (i Item) BatchNumber() string {
	return i.batchNumber
}

// Quantity returns the number of units ordered.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price-per-unit snapshot.
func (i Item) UnitPrice() float64 {
	return i.unitPrice
}

// LineTotal returns the line total fixed at creation time.
func (i Item) LineTotal() float64 {
	return i.lineTotal
}
