package sortable

import (
	"github.com/amp-labs/sortedview/compare"
)

type Sortable[T any] interface {
	compare.Comparable[T]

	LessThan(other T) bool
}

// Compare is a compare.Func for any Sortable type. Equals is consulted first,
// so equal values cost a single call.
func Compare[T Sortable[T]](a, b T) int {
	switch {
	case a.Equals(b):
		return 0
	case a.LessThan(b):
		return -1
	default:
		return 1
	}
}

// Less reports whether a sorts before b.
func Less[T Sortable[T]](a, b T) bool {
	return a.LessThan(b)
}
