package productrepo

import (
	"context"
	"errors"
	"fmt"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/core/domain/model/product"
	"distribution/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormProductRepository implements the stock ledger using GORM.
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GORM stock ledger.
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// Add saves a new stock record. Catalog maintenance normally happens in the
// catalog subsystem; this exists for seeding and tests.
func (r *GormProductRepository) Add(ctx context.Context, p *product.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}

	dto := fromDomain(p)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a stock record by ID.
func (r *GormProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("productId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Reserve atomically deducts amount units from the product's stock.
//
// The check and the deduction are one conditional UPDATE: the row lock taken
// by the statement serializes concurrent reservations on the same product, so
// the quantity can never go negative no matter how many callers race. The
// scope of that serialization is the single product row; reservations on
// different products do not contend.
func (r *GormProductRepository) Reserve(ctx context.Context, id kernel.UUID, amount int) (*product.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if amount < 1 {
		return nil, errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%d is not greater than 0", amount))
	}

	result := r.db.WithContext(ctx).Exec(
		"UPDATE products SET quantity = quantity - ? WHERE id = ? AND quantity >= ?",
		amount, id.Bytes(), amount,
	)
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		// Either the product is missing or the stock is short; one more read
		// tells the caller which.
		current, err := r.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		return nil, product.NewInsufficientStockError(id, amount, current.Quantity())
	}

	return r.Get(ctx, id)
}

// Release atomically returns amount units to the product's stock.
// A release against a product that no longer exists is reported as
// product.OrphanedReleaseError; callers treat it as a non-fatal anomaly.
func (r *GormProductRepository) Release(ctx context.Context, id kernel.UUID, amount int) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if amount < 1 {
		return errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%d is not greater than 0", amount))
	}

	result := r.db.WithContext(ctx).Exec(
		"UPDATE products SET quantity = quantity + ? WHERE id = ?",
		amount, id.Bytes(),
	)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return product.NewOrphanedReleaseError(id, amount)
	}

	return nil
}
