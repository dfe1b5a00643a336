package compare

import (
	"cmp"

	"facette.io/natsort"
)

// Func is a three-way comparator. It returns a negative number when a sorts
// before b, a positive number when a sorts after b and zero when the two are
// equivalent. It has the shape slices.SortFunc expects, so a Func can be handed
// to the standard library sort routines unchanged.
//
// A Func must describe a strict weak ordering; results for comparators that
// don't are unspecified.
type Func[T any] func(a, b T) int

// Less is a "strictly less than" predicate.
type Less[T any] func(a, b T) bool

// Natural returns the natural ascending order of an ordered type.
func Natural[T cmp.Ordered]() Func[T] {
	return cmp.Compare[T]
}

// FromLess turns a predicate into a three-way comparator. Equivalence is
// derived as !less(a, b) && !less(b, a), so each call may invoke less twice.
func FromLess[T any](less Less[T]) Func[T] {
	return func(a, b T) int {
		switch {
		case less(a, b):
			return -1
		case less(b, a):
			return 1
		default:
			return 0
		}
	}
}

// Reverse inverts the order of fn.
func Reverse[T any](fn Func[T]) Func[T] {
	return func(a, b T) int {
		return fn(b, a)
	}
}

// By orders values by a key extracted from them.
//
// Example:
//
//	byAge := compare.By(func(p Person) int { return p.Age })
func By[T any, K cmp.Ordered](key func(T) K) Func[T] {
	return func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	}
}

// Then chains comparators: later comparators only break ties left by earlier ones.
func Then[T any](fns ...Func[T]) Func[T] {
	return func(a, b T) int {
		for _, fn := range fns {
			if c := fn(a, b); c != 0 {
				return c
			}
		}

		return 0
	}
}

// NaturalString orders strings so that embedded numbers compare numerically,
// e.g. "file2" sorts before "file10".
func NaturalString(a, b string) int {
	switch {
	case a == b:
		return 0
	case natsort.Compare(a, b):
		return -1
	case natsort.Compare(b, a):
		return 1
	default:
		return 0
	}
}
