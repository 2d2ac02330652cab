package ports

import (
	"context"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate without a
	// status precondition. Used for writes that bypass the workflow state
	// machine, such as recording a verified payment.
	Update(ctx context.Context, aggregate *order.Order) error

	// UpdateFromStatus persists a workflow transition, guarded on the status
	// the aggregate held before the transition. When the guard matches no
	// row because another actor won the transition first, it fails with
	// errs.VersionIsInvalidError and writes nothing.
	UpdateFromStatus(ctx context.Context, aggregate *order.Order, previous order.Status) error

	// Get retrieves an order aggregate by its unique identifier, including
	// all line items. Returns errs.ObjectNotFoundError when absent.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete permanently removes the order and its items, guarded on the
	// status the caller read before deciding whether to release stock. When
	// the guard matches no row, because the order is gone or another actor
	// moved it to a different status, it fails with
	// errs.VersionIsInvalidError and removes nothing.
	Delete(ctx context.Context, id kernel.UUID, previous order.Status) error
}
