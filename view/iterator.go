package view

import (
	"cmp"
)

// Iterator is a random-access cursor over a view's ranks.
//
// It holds the slice and index array as they were when Begin or End was
// called. Any change to the slice, and any repair of the view, invalidates it.
// Comparisons between iterators look at slots only, never at elements.
type Iterator[T any] struct {
	base  []T
	index []int
	slot  int
}

// Value returns the element at the iterator's slot.
func (it Iterator[T]) Value() T {
	return it.base[it.index[it.slot]]
}

// Pointer returns the address of the element at the iterator's slot.
func (it Iterator[T]) Pointer() *T {
	return &it.base[it.index[it.slot]]
}

// At returns the element n slots away from the iterator.
func (it Iterator[T]) At(n int) T {
	return it.base[it.index[it.slot+n]]
}

// Slot returns the iterator's position in the index array, which is also the
// rank of the element it points at.
func (it Iterator[T]) Slot() int {
	return it.slot
}

// Valid reports whether the iterator points at an element.
func (it Iterator[T]) Valid() bool {
	return it.slot >= 0 && it.slot < len(it.index)
}

// Next advances the iterator one slot and returns it.
func (it *Iterator[T]) Next() *Iterator[T] {
	it.slot++

	return it
}

// Prev moves the iterator back one slot and returns it.
func (it *Iterator[T]) Prev() *Iterator[T] {
	it.slot--

	return it
}

// PostNext advances the iterator and returns a copy taken before the move.
func (it *Iterator[T]) PostNext() Iterator[T] {
	prev := *it
	it.slot++

	return prev
}

// PostPrev moves the iterator back and returns a copy taken before the move.
func (it *Iterator[T]) PostPrev() Iterator[T] {
	prev := *it
	it.slot--

	return prev
}

// Add returns an iterator n slots ahead.
func (it Iterator[T]) Add(n int) Iterator[T] {
	it.slot += n

	return it
}

// Sub returns an iterator n slots back.
func (it Iterator[T]) Sub(n int) Iterator[T] {
	it.slot -= n

	return it
}

// AddAssign moves the iterator n slots ahead.
func (it *Iterator[T]) AddAssign(n int) *Iterator[T] {
	it.slot += n

	return it
}

// SubAssign moves the iterator n slots back.
func (it *Iterator[T]) SubAssign(n int) *Iterator[T] {
	it.slot -= n

	return it
}

// Distance returns the number of slots from other to it.
func (it Iterator[T]) Distance(other Iterator[T]) int {
	return it.slot - other.slot
}

// Equal reports whether both iterators point at the same slot of the same
// index array.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.slot == other.slot && firstSlot(it.index) == firstSlot(other.index)
}

// NotEqual is the negation of Equal.
func (it Iterator[T]) NotEqual(other Iterator[T]) bool {
	return !it.Equal(other)
}

// Less reports whether it points at an earlier slot than other.
func (it Iterator[T]) Less(other Iterator[T]) bool {
	return it.slot < other.slot
}

// LessEqual reports whether it points at the same or an earlier slot than other.
func (it Iterator[T]) LessEqual(other Iterator[T]) bool {
	return it.slot <= other.slot
}

// Greater reports whether it points at a later slot than other.
func (it Iterator[T]) Greater(other Iterator[T]) bool {
	return it.slot > other.slot
}

// GreaterEqual reports whether it points at the same or a later slot than other.
func (it Iterator[T]) GreaterEqual(other Iterator[T]) bool {
	return it.slot >= other.slot
}

// Compare returns -1, 0 or +1 as it is before, at or after other.
func (it Iterator[T]) Compare(other Iterator[T]) int {
	return cmp.Compare(it.slot, other.slot)
}
