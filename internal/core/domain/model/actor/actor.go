// Package actor models the authenticated caller of a workflow operation.
// Credential verification happens upstream; by the time a command or query is
// built, the caller is already an identity of id, role, and the profile
// fields needed for order snapshots. Actor is a value object: immutable,
// constructed only through NewActor, and validated before use.
package actor

import (
	"errors"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/pkg/errs"
	"distribution/internal/pkg/guard"
)

// ErrActorIsNotConstructed is returned when an Actor was not created through
// the NewActor factory function.
var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor constructor")

// Actor is the identity attached to every core operation: who is calling and
// with which role. Name and email travel with the identity so that client
// orders can snapshot them at creation time.
type Actor struct {
	id    kernel.UUID
	role  Role
	name  string
	email string

	guard guard.ConstructorGuard
}

// NewActor creates a validated caller identity.
// The id and role are mandatory; name and email are required only for
// clients, whose orders snapshot them.
func NewActor(id kernel.UUID, role Role, name, email string) (Actor, error) {
	if err := errors.Join(
		id.Validate(),
		role.Validate(),
	); err != nil {
		return Actor{}, err
	}

	if role == Client && name == "" {
		return Actor{}, errs.NewValueIsRequiredError("name")
	}

	return Actor{
		id:    id,
		role:  role,
		name:  name,
		email: email,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Actor was created through NewActor.
func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

// ID returns the caller's unique identifier.
func (a Actor) ID() kernel.UUID {
	return a.id
}

// Role returns the caller's role.
func (a Actor) Role() Role {
	return a.role
}

// Name returns the caller's display name.
func (a Actor) Name() string {
	return a.name
}

// Email returns the caller's email address.
func (a Actor) Email() string {
	return a.email
}
