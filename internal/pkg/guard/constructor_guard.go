package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the object was not
// constructed properly and no specific error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures value objects and entities are only created
// through their designated constructor functions. A zero-value struct fails
// validation, which prevents bypassing the invariants the constructor
// enforces.
//
// Embed a ConstructorGuard in a struct and set it with NewConstructorGuard
// inside the constructor:
//
//	type Payout struct {
//	    carrierAmount uint64
//	    platformFee   uint64
//	    guard         guard.ConstructorGuard
//	}
//
//	func (p Payout) Validate() error {
//	    return p.guard.Validate(ErrPayoutIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as
// properly constructed.
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
