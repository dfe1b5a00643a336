package view

import (
	"fmt"
	"iter"
	"slices"

	"github.com/amp-labs/sortedview/errors"
	"github.com/amp-labs/sortedview/zero"
)

// At returns the element at rank i after repairing the view.
// It returns an error wrapping errors.ErrIndexOutOfRange if i is not in [0, Len()).
func (v *View[T]) At(i int) (T, error) {
	v.CheckResort()

	if i < 0 || i >= len(v.index) {
		return zero.Value[T](), fmt.Errorf("%w: rank %d, size %d", errors.ErrIndexOutOfRange, i, len(v.index))
	}

	return (*v.backing)[v.index[i]], nil
}

// Get returns the element at rank i without repairing the view or checking
// bounds. The caller must know the index array is current, e.g. because Begin,
// Resort or CheckResort ran after the last change to the slice.
func (v *View[T]) Get(i int) T {
	v.mustBeAttached()

	return (*v.backing)[v.index[i]]
}

// Len returns the number of elements in the view after repairing it.
func (v *View[T]) Len() int {
	v.CheckResort()

	return len(v.index)
}

// Empty reports whether the backing slice is empty.
func (v *View[T]) Empty() bool {
	return v.Len() == 0
}

// Front returns the smallest element, or false if the view is empty.
func (v *View[T]) Front() (T, bool) {
	if v.Len() == 0 {
		return zero.Value[T](), false
	}

	return v.Get(0), true
}

// Back returns the largest element, or false if the view is empty.
func (v *View[T]) Back() (T, bool) {
	n := v.Len()
	if n == 0 {
		return zero.Value[T](), false
	}

	return v.Get(n - 1), true
}

// Begin repairs the view and returns an iterator at rank 0.
func (v *View[T]) Begin() Iterator[T] {
	v.CheckResort()

	return Iterator[T]{base: *v.backing, index: v.index}
}

// End returns an iterator one past the last rank. It does not repair the view.
// End must be called after Begin: the repair Begin runs may replace the index
// array, and an End taken before it never compares equal to iterators from
// Begin. Don't change the slice until the range is consumed.
func (v *View[T]) End() Iterator[T] {
	v.mustBeAttached()

	return Iterator[T]{base: *v.backing, index: v.index, slot: len(v.index)}
}

// All returns an iterator over (rank, element) pairs in sorted order. The view
// is repaired when iteration starts.
func (v *View[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		v.CheckResort()

		s := *v.backing
		for rank, pos := range v.index {
			if !yield(rank, s[pos]) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements in sorted order.
func (v *View[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range v.All() {
			if !yield(item) {
				return
			}
		}
	}
}

// Backward returns an iterator over (rank, element) pairs from the largest
// element down to the smallest.
func (v *View[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		v.CheckResort()

		s := *v.backing
		for rank := len(v.index) - 1; rank >= 0; rank-- {
			if !yield(rank, s[v.index[rank]]) {
				return
			}
		}
	}
}

// Positions returns a copy of the repaired index array: element r is the
// position in the backing slice of the element with rank r.
func (v *View[T]) Positions() []int {
	v.CheckResort()

	return slices.Clone(v.index)
}

// Search returns the rank of the first element not less than target, and
// whether an element equal to target sits at that rank.
func (v *View[T]) Search(target T) (int, bool) {
	v.CheckResort()

	s := *v.backing

	return slices.BinarySearchFunc(v.index, target, func(pos int, t T) int {
		return v.cmp(s[pos], t)
	})
}
