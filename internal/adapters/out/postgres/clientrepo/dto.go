// Package clientrepo implements the read-only client directory on PostgreSQL.
// The directory is maintained by the CRM subsystem; the workflow consults it
// at order creation to snapshot the client's contact onto the order.
package clientrepo

import (
	"distribution/internal/core/ports"

	"github.com/google/uuid"
)

// ClientDTO represents the database structure for directory entries.
type ClientDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name    string    `gorm:"uniqueIndex"`
	Email   string
	Contact string
}

// TableName specifies the database table name for directory entries.
func (ClientDTO) TableName() string {
	return "clients"
}

// toRecord converts a database DTO to the directory record the core reads.
func toRecord(dto ClientDTO) *ports.ClientRecord {
	return &ports.ClientRecord{
		Name:    dto.Name,
		Email:   dto.Email,
		Contact: dto.Contact,
	}
}
