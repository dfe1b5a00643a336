// Package assert provides panicking invariant checks.
//
// Building with -tags assertions_disabled turns every check into a no-op.
package assert
