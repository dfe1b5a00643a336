package view

import (
	"cmp"
	"log/slog"
	"slices"

	"github.com/amp-labs/sortedview/assert"
	"github.com/amp-labs/sortedview/compare"
	"github.com/amp-labs/sortedview/errors"
	"github.com/amp-labs/sortedview/sortable"
)

// View is a sorted projection over a slice it does not own.
//
// The zero value is not usable; create views with New, NewOrdered or
// NewSortable. The slice pointed to by backing must outlive the view.
type View[T any] struct {
	backing *[]T
	cmp     compare.Func[T]

	// index maps rank to position in *backing. It is sorted by cmp, ties broken
	// by position, whenever it is not stale.
	index []int

	// base is the address of the first slot of *backing when index was last
	// rebuilt. A different address means the slice was reallocated.
	base *T

	scratch []int

	opts    options
	stats   *counters
	metrics *viewMetrics
}

// New creates a view over *backing ordered by fn.
// The index array is built on the first read.
func New[T any](backing *[]T, fn compare.Func[T], opts ...Option) *View[T] {
	assert.True(backing != nil, "view: nil backing slice")
	assert.True(fn != nil, "view: nil comparator")

	o := newOptions(opts)

	v := &View[T]{
		backing: backing,
		cmp:     fn,
		base:    firstSlot(*backing),
		opts:    o,
		stats:   &counters{},
	}

	if o.metrics {
		v.metrics = newViewMetrics(o.name)
	}

	return v
}

// NewOrdered creates a view over *backing in natural ascending order.
func NewOrdered[T cmp.Ordered](backing *[]T, opts ...Option) *View[T] {
	return New(backing, compare.Natural[T](), opts...)
}

// NewSortable creates a view over *backing ordered by the elements' LessThan.
func NewSortable[T sortable.Sortable[T]](backing *[]T, opts ...Option) *View[T] {
	return New(backing, sortable.Compare[T], opts...)
}

// Clone returns a view with its own copy of the index array that reads the
// same backing slice. The clone starts with fresh stats.
func (v *View[T]) Clone() *View[T] {
	v.mustBeAttached()

	return &View[T]{
		backing: v.backing,
		cmp:     v.cmp,
		index:   slices.Clone(v.index),
		base:    v.base,
		opts:    v.opts,
		stats:   &counters{},
		metrics: v.metrics,
	}
}

// Move hands the view's state to a new View and detaches the receiver.
// A detached view panics with errors.ErrDetached on any further use.
func (v *View[T]) Move() *View[T] {
	v.mustBeAttached()

	moved := *v
	*v = View[T]{}

	return &moved
}

// Detached reports whether the view's state was moved away.
func (v *View[T]) Detached() bool {
	return v.backing == nil
}

// Name returns the name the view was configured with.
func (v *View[T]) Name() string {
	return v.opts.name
}

func (v *View[T]) mustBeAttached() {
	assert.True(v.backing != nil, errors.ErrDetached)
}

func (v *View[T]) logger() *slog.Logger {
	if v.opts.logger != nil {
		return v.opts.logger
	}

	return slog.Default()
}

// firstSlot returns the address of the first slot of the array backing s, or
// nil if s has no backing array.
func firstSlot[T any](s []T) *T {
	if cap(s) == 0 {
		return nil
	}

	return &s[:1][0]
}
