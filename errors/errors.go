// Package errors holds the sentinel errors returned or raised by sorted views.
package errors

import "errors"

var (
	// ErrIndexOutOfRange is returned by bounds-checked access when the requested
	// rank is outside [0, size).
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrDetached is the panic value used when a view whose state was moved
	// elsewhere is used again.
	ErrDetached = errors.New("sorted view is detached")
)
