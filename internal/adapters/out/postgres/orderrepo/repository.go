package orderrepo

import (
	"context"
	"errors"
	"strings"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/core/domain/model/order"
	"distribution/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// uniqueViolation is the PostgreSQL error code for unique constraint violations.
const uniqueViolation = "23505"

// isUniqueViolation reports whether err is a unique constraint violation.
// The pgx driver surfaces *pgconn.PgError; the string check covers wrapped
// errors that lost the concrete type.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolation
	}
	return strings.Contains(strings.ToLower(err.Error()), "duplicate key")
}

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order and its line items to the database.
// A duplicate order id surfaces as errs.VersionIsInvalidError so the caller
// can report a conflict instead of a server failure.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isUniqueViolation(err) {
			return errs.NewVersionIsInvalidErrorWithCause("orderId", err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database without a status precondition.
// Used by writes that bypass the workflow state machine, such as recording a
// verified payment. Line items are immutable and never rewritten.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Omit(clause.Associations).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orderId", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// UpdateFromStatus persists a workflow transition, guarded on the status the
// aggregate held before the transition. The guard rides in the WHERE clause,
// so when another actor already moved the order on, zero rows match and the
// caller gets errs.VersionIsInvalidError with nothing written.
func (r *GormOrderRepository) UpdateFromStatus(ctx context.Context, aggregate *order.Order, previous order.Status) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if err := previous.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND status = ?", dto.ID, int(previous)).
		Omit(clause.Associations).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewVersionIsInvalidErrorWithCause("orderId",
			errors.New("order status changed since it was read"))
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID, including its line items.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).Preload("Items").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete permanently removes an order and its line items, guarded on the
// status the caller last read. The guard rides in the WHERE clause like
// UpdateFromStatus, so a racing transition (which may already have released
// the order's stock) makes the delete match zero rows instead of removing an
// order whose reservation accounting has moved on.
// Items are removed explicitly rather than relying on the cascade constraint
// so the behavior holds on databases migrated without it; the order row goes
// first so a failed guard removes nothing.
func (r *GormOrderRepository) Delete(ctx context.Context, id kernel.UUID, previous order.Status) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if err := previous.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&OrderDTO{}, "id = ? AND status = ?", id.Bytes(), int(previous))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewVersionIsInvalidErrorWithCause("orderId",
			errors.New("order changed or was removed since it was read"))
	}

	return r.db.WithContext(ctx).Delete(&ItemDTO{}, "order_id = ?", id.Bytes()).Error
}
