package actor

import (
	"fmt"

	"distribution/internal/pkg/errs"
)

// Role represents the authorization level of an authenticated caller.
// It is a closed enumeration: every operation in the workflow names the
// roles permitted to trigger it, and handlers match on Role exhaustively
// instead of comparing strings.
type Role int

const (
	// UnknownRole represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	UnknownRole Role = iota

	// Admin manages the order queue: assignment, completion, rejection, deletion.
	Admin

	// Staff fulfils orders assigned to them.
	Staff

	// Client places orders and sees only their own.
	Client
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole: "unknown",
		Admin:       "admin",
		Staff:       "staff",
		Client:      "client",
	}
}

// RoleFromString parses a role from its wire representation.
// Returns an error for anything other than "admin", "staff", or "client".
func RoleFromString(s string) (Role, error) {
	for role, str := range getRoleStrings() {
		if role != UnknownRole && str == s {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}

// Validate checks that the Role is one of the defined roles.
// UnknownRole (0) and out-of-range values are invalid.
func (r Role) Validate() error {
	if r != Admin && r != Staff && r != Client {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the wire name of the role, or "unknown" for invalid values.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}
