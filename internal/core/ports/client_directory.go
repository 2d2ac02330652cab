package ports

import "context"

// ClientRecord is the directory entry for a registered client, consulted at
// order creation to snapshot the contact onto the order.
type ClientRecord struct {
	Name    string
	Email   string
	Contact string
}

// ClientDirectory looks up registered clients by name. The directory is owned
// by the catalog/CRM subsystem; the workflow only reads from it.
type ClientDirectory interface {
	// FindByName returns the client record with the given name, or nil when
	// the directory has no such client. A missing record is not an error:
	// orders from unregistered clients are placed with a placeholder contact.
	FindByName(ctx context.Context, name string) (*ClientRecord, error)
}
