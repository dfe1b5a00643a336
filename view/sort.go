package view

import (
	"cmp"
	"slices"

	"github.com/amp-labs/sortedview/assert"
)

// Reasons a view's index array is considered stale.
const (
	reasonSize      = "size"
	reasonRelocated = "relocated"
	reasonUnsorted  = "unsorted"
	reasonShrunk    = "shrunk"
)

// Resort rebuilds the index array for the slice's current length and sorts it.
// Use it after any change other than appending: inserts, removals, in-place
// edits or truncation.
func (v *View[T]) Resort() {
	v.mustBeAttached()

	s := *v.backing

	v.updatePositions(s)
	slices.SortFunc(v.index, v.byPosition(s))

	v.stats.fullSorts.Inc()
	v.metrics.recordSort(sortFull, len(v.index))
}

// MergeFromBack brings the view up to date after elements were appended to the
// slice. Only the new tail is sorted; it is then merged into the sorted prefix.
//
// The prefix of the slice covered by the index array must be unchanged since
// the view was last sorted. If the slice got shorter the merge is impossible
// and a full Resort runs instead.
func (v *View[T]) MergeFromBack() {
	v.mustBeAttached()

	s := *v.backing
	sorted := len(v.index)

	if len(s) < sorted {
		v.logger().Debug("sorted view merge fell back to full sort",
			"view", v.opts.name, "reason", reasonShrunk, "size", len(s))

		v.Resort()

		return
	}

	v.updatePositions(s)

	if len(s) == sorted {
		return
	}

	assert.Sorted(v.index[:sorted], v.byValue(s), "view: merge into unsorted prefix of %q", v.opts.name)

	order := v.byPosition(s)

	slices.SortFunc(v.index[sorted:], order)
	v.merge(sorted, order)

	v.stats.merges.Inc()
	v.metrics.recordSort(sortMerge, len(s)-sorted)
}

// CheckResort repairs the index array if it is stale: when its length differs
// from the slice's, when the slice was reallocated, or when the elements are no
// longer in order. A stale index array gets a full Resort.
//
// Every checked read calls CheckResort; calling it directly forces the repair
// without reading.
func (v *View[T]) CheckResort() {
	v.mustBeAttached()

	s := *v.backing
	reason := v.staleness(s)

	v.stats.checks.Inc()
	v.metrics.recordCheck(reason != "")

	if reason == "" {
		return
	}

	v.logger().Debug("sorted view repaired", "view", v.opts.name, "reason", reason, "size", len(s))

	v.stats.repairs.Inc()
	v.Resort()
}

func (v *View[T]) staleness(s []T) string {
	switch {
	case len(v.index) != len(s):
		return reasonSize
	case v.base != firstSlot(s):
		return reasonRelocated
	case !slices.IsSortedFunc(v.index, v.byValue(s)):
		return reasonUnsorted
	default:
		return ""
	}
}

// updatePositions resizes the index array to len(s). Growth appends the new
// positions in increasing order after the existing entries. Shrinking resets the
// array to the identity of the smaller range, since old entries may point past
// the end.
func (v *View[T]) updatePositions(s []T) {
	v.base = firstSlot(s)

	have := len(v.index)

	switch {
	case len(s) > have:
		v.index = slices.Grow(v.index, len(s)-have)
		for pos := have; pos < len(s); pos++ {
			v.index = append(v.index, pos)
		}
	case len(s) < have:
		v.index = v.index[:len(s)]
		for pos := range v.index {
			v.index[pos] = pos
		}
	}
}

// merge merges the sorted runs index[:mid] and index[mid:] in place. On ties
// the entry from the first run goes first.
func (v *View[T]) merge(mid int, order func(a, b int) int) {
	if mid == 0 || mid == len(v.index) || order(v.index[mid-1], v.index[mid]) <= 0 {
		return
	}

	v.scratch = append(v.scratch[:0], v.index[:mid]...)

	left, right := v.scratch, v.index[mid:]
	out := v.index

	var i, j, k int

	// k = i+j stays below mid+j while left has entries, so writes never
	// overtake the unread part of right.
	for i < len(left) && j < len(right) {
		if order(right[j], left[i]) < 0 {
			out[k] = right[j]
			j++
		} else {
			out[k] = left[i]
			i++
		}

		k++
	}

	// Leftovers from right are already in place.
	copy(out[k:], left[i:])
}

// byValue compares positions by the elements they denote.
func (v *View[T]) byValue(s []T) func(a, b int) int {
	return func(a, b int) int {
		return v.cmp(s[a], s[b])
	}
}

// byPosition is byValue with ties broken by position.
func (v *View[T]) byPosition(s []T) func(a, b int) int {
	return func(a, b int) int {
		if c := v.cmp(s[a], s[b]); c != 0 {
			return c
		}

		return cmp.Compare(a, b)
	}
}
