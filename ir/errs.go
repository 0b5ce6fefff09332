package ir

import "errors"

var (
	// ErrIndex reports a required lookup whose slot is missing, out of
	// range, or holds the host-absent marker.
	ErrIndex = errors.New("not found")

	// ErrType reports a typed accessor whose coercion failed.
	ErrType = errors.New("wrong type")

	// ErrValue reports an attempt to insert an invalid value, such as a
	// non-finite number.
	ErrValue = errors.New("invalid value")
)
