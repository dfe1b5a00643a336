//go:build assertions_disabled

package assert

// True asserts that the given value is true.
// Assertions are compiled out by the assertions_disabled build tag.
func True(value bool, args ...any) {
	// Intentionally left blank
}

// False asserts that the given value is false.
// Assertions are compiled out by the assertions_disabled build tag.
func False(value bool, args ...any) {
	// Intentionally left blank
}

// Sorted asserts that s is non-decreasing under cmp.
// Assertions are compiled out by the assertions_disabled build tag.
func Sorted[T any](s []T, cmp func(a, b T) int, args ...any) {
	// Intentionally left blank
}
