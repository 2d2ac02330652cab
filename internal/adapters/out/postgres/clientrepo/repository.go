package clientrepo

import (
	"context"
	"errors"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/core/ports"

	"gorm.io/gorm"
)

// GormClientDirectory implements the client directory using GORM.
type GormClientDirectory struct {
	db *gorm.DB
}

// NewGormClientDirectory creates a new GORM client directory.
func NewGormClientDirectory(db *gorm.DB) *GormClientDirectory {
	return &GormClientDirectory{db: db}
}

// Add inserts a directory entry. Directory maintenance normally happens in
// the CRM subsystem; this exists for seeding and tests.
func (r *GormClientDirectory) Add(ctx context.Context, id kernel.UUID, name, email, contact string) error {
	dto := ClientDTO{
		ID:      id.Bytes(),
		Name:    name,
		Email:   email,
		Contact: contact,
	}
	return r.db.WithContext(ctx).Create(&dto).Error
}

// FindByName returns the directory record with the given name, or nil when no
// such client is registered. A missing record is not an error.
func (r *GormClientDirectory) FindByName(ctx context.Context, name string) (*ports.ClientRecord, error) {
	var dto ClientDTO
	if err := r.db.WithContext(ctx).First(&dto, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toRecord(dto), nil
}
