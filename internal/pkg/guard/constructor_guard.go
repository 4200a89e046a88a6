// Package guard provides a defensive construction pattern for domain objects.
//
// Embedding a ConstructorGuard in a struct makes zero-value instances
// detectable: only objects built through their designated constructor carry
// a constructed guard, so Validate can reject structs that were created by
// direct initialization and may violate domain invariants.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by ConstructorGuard.Validate when the
// caller passes a nil validation error, so validation always fails with a
// meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed. Value objects and
// entities embed it as a private field; the constructor sets it via
// NewConstructorGuard, and zero-value instances fail Validate.
//
// Example usage:
//
//	var ErrGeoPointIsNotConstructed = errors.New("GeoPoint must be created via NewGeoPoint constructor")
//
//	type GeoPoint struct {
//	    lat   float64
//	    lon   float64
//	    guard guard.ConstructorGuard
//	}
//
//	func NewGeoPoint(lat, lon float64) (GeoPoint, error) {
//	    // validation ...
//	    return GeoPoint{lat: lat, lon: lon, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (p GeoPoint) Validate() error {
//	    return p.guard.Validate(ErrGeoPointIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks its holder as properly
// constructed. Call it in every constructor of a guarded domain object.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the holder was built through its constructor.
// For zero-value holders it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}

	if !g.isConstructed {
		return validationError
	}

	return nil
}
