//go:build !assertions_disabled

package assert

import (
	"fmt"
)

// True asserts that the given value is true.
// If the assertion fails, it panics with a message.
// The optional args can be used to provide a formatted panic message:
// - If the first arg is a string, it's used as a format string with remaining args.
// - An error as the first arg is wrapped, so the panic value satisfies errors.Is.
// - Otherwise, all args are included in the panic message.
func True(value bool, args ...any) {
	if value {
		return
	}

	if len(args) == 0 {
		panic("assertion failed")
	}

	first := args[0]
	remaining := args[1:]

	switch f := first.(type) {
	case error:
		if len(remaining) == 0 {
			panic(f)
		}

		format, _ := remaining[0].(string)

		panic(fmt.Errorf("%w: "+format, append([]any{f}, remaining[1:]...)...)) //nolint:err113
	case string:
		panic(fmt.Sprintf(f, remaining...))
	default:
		panic(fmt.Sprintf("assertion failed: %v", args))
	}
}

// False asserts that the given value is false.
// The optional args are passed to True and follow the same formatting rules.
func False(value bool, args ...any) {
	True(!value, args...)
}

// Sorted asserts that s is non-decreasing under cmp. It walks the whole slice,
// so keep it off hot paths.
func Sorted[T any](s []T, cmp func(a, b T) int, args ...any) {
	for i := 1; i < len(s); i++ {
		if cmp(s[i-1], s[i]) > 0 {
			True(false, args...)
		}
	}
}
