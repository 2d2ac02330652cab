// Package guard provides a defensive construction marker for value objects,
// commands, and queries. Embedding a ConstructorGuard lets a type detect
// whether it was created through its designated constructor or as a zero value,
// so validation can reject improperly built instances.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guarded object
// was not constructed and no specific error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as having been created through its
// constructor function. The zero value is "not constructed" and fails Validate.
//
// Example usage:
//
//	type Quantity struct {
//	    value int
//	    guard guard.ConstructorGuard
//	}
//
//	func NewQuantity(value int) (Quantity, error) {
//	    if value < 1 {
//	        return Quantity{}, errors.New("quantity must be at least 1")
//	    }
//	    return Quantity{value: value, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (q Quantity) Validate() error {
//	    return q.guard.Validate(errQuantityNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as
// properly constructed. Call it from the object's constructor only.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the object was built through its constructor.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
