package domain

import "errors"

// Engine error taxonomy.
//
// ErrInvalidPackage and ErrUnsupportedDestination surface to callers
// unchanged. ErrNotServed and ErrOverweight are per-carrier outcomes the
// quote engine filters silently: a carrier that cannot serve a request is a
// business state, not a fault.
var (
	ErrInvalidPackage         = errors.New("invalid package")
	ErrUnsupportedDestination = errors.New("unsupported destination")
	ErrNotServed              = errors.New("zone not served by carrier")
	ErrOverweight             = errors.New("weight exceeds carrier limit")
)
