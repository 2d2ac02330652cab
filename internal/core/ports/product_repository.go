// Package ports defines the interfaces between the core workflow and its
// collaborators: persistence, the catalog/stock ledger, the client directory,
// and the notification transport. These contracts enable dependency inversion
// and testability.
package ports

import (
	"context"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/core/domain/model/product"
)

// ProductRepository is the inventory ledger: the single point of truth for
// available stock. Implementations guarantee that no operation can drive a
// product's quantity negative.
type ProductRepository interface {
	// Get retrieves a product stock record by its unique identifier.
	// Returns errs.ObjectNotFoundError when the product does not exist.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// Reserve atomically checks that at least amount units are available,
	// decrements the stock, and returns the updated record. Fails with
	// product.InsufficientStockError (no mutation) when stock is short, or
	// errs.ObjectNotFoundError when the product does not exist.
	//
	// Reserve is linearizable per product: two concurrent reservations
	// against the same product observe each other's effects, so limited
	// stock can never be oversold. The serialization is scoped to the
	// product row, not a global lock.
	Reserve(ctx context.Context, id kernel.UUID, amount int) (*product.Product, error)

	// Release atomically returns amount units to the product's stock,
	// undoing a reservation. When the product no longer exists the release
	// is reported as product.OrphanedReleaseError, a non-fatal anomaly the
	// caller logs without blocking the order's own status transition.
	Release(ctx context.Context, id kernel.UUID, amount int) error
}
