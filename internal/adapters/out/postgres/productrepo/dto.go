// Package productrepo implements the stock ledger on PostgreSQL.
// Reservations and releases are single conditional UPDATE statements, so the
// quantity invariant holds under concurrency without application-level locks.
package productrepo

import (
	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// ProductDTO represents the database structure for stock records.
// The workflow mutates only the quantity column; the catalog subsystem owns
// the rest.
type ProductDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"index"`
	BatchNumber string
	UnitPrice   float64
	Quantity    int
}

// TableName specifies the database table name for stock records.
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a stock record to its database representation.
func fromDomain(p *product.Product) ProductDTO {
	return ProductDTO{
		ID:          p.ID().Bytes(),
		Name:        p.Name(),
		BatchNumber: p.BatchNumber(),
		UnitPrice:   p.UnitPrice(),
		Quantity:    p.Quantity(),
	}
}

// toDomain converts a database DTO to a stock record.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id, dto.Name, dto.BatchNumber, dto.UnitPrice, dto.Quantity)
}
