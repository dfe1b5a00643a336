// Package zero provides the zero value of generic type parameters.
package zero

// Value returns the zero value for type T.
// Read paths use it for the element returned alongside a miss.
//
// Example:
//
//	item, ok := zero.Value[int](), false // 0, false
func Value[T any]() T {
	var zeroVal T

	return zeroVal
}
