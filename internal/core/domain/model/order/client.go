package order

import (
	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/pkg/errs"
	"distribution/internal/pkg/guard"
)

// ErrClientIsNotConstructed is returned when a Client snapshot was not
// created through NewClient.
var ErrClientIsNotConstructed = errs.NewValueIsRequiredError("Client must be created via NewClient constructor")

// noContact is stored when the client directory has no contact on record.
const noContact = "—"

// Client is the snapshot of the placing client's identity taken when the
// order is created. It keeps the client id as a reference but copies name,
// email, and contact so later edits to the client record do not retroactively
// change historical orders.
type Client struct {
	id      kernel.UUID
	name    string
	email   string
	contact string

	guard guard.ConstructorGuard
}

// NewClient creates a client snapshot. Name and email identify the placing
// client; an empty contact is recorded as "—", matching what the pending
// queue displays for walk-in clients without a directory record.
func NewClient(id kernel.UUID, name, email, contact string) (Client, error) {
	if err := id.Validate(); err != nil {
		return Client{}, err
	}
	if name == "" {
		return Client{}, errs.NewValueIsRequiredError("clientName")
	}
	if email == "" {
		return Client{}, errs.NewValueIsRequiredError("clientEmail")
	}
	if contact == "" {
		contact = noContact
	}

	return Client{
		id:      id,
		name:    name,
		email:   email,
		contact: contact,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Client was created through NewClient.
func (c Client) Validate() error {
	return c.guard.Validate(ErrClientIsNotConstructed)
}

// ID returns the placing client's identifier.
func (c Client) ID() kernel.UUID {
	return c.id
}

// Name returns the client name snapshot.
func (c Client) Name() string {
	return c.name
}

// Email returns the client email snapshot.
func (c Client) Email() string {
	return c.email
}

// Contact returns the client contact snapshot.
func (c Client) Contact() string {
	return c.contact
}
