// Package view provides a sorted, non-owning projection over a slice.
//
// # Overview
//
// A [View] lets callers read a slice in comparator order without copying the
// elements and without reordering the slice itself. The view keeps a private
// index array of positions into the slice. Reads go through that array, so
// rank i of the view is (*backing)[index[i]].
//
// The slice stays owned by the caller and may keep changing. The view validates
// its index array lazily: every checked read entry point ([View.At],
// [View.Begin], [View.All], ...) first runs [View.CheckResort], which rebuilds and
// re-sorts the index array when it no longer matches the slice.
//
// # Keeping the view current
//
// There are three ways to bring the index array back in line with the slice:
//
//   - Do nothing. The next checked read notices the change and runs a full sort.
//   - [View.Resort] after arbitrary edits (inserts, removals, in-place updates).
//   - [View.MergeFromBack] after appends only. It sorts just the new tail and
//     merges it into the sorted prefix in linear time, which is far cheaper than
//     a full sort when appends dominate.
//
// Example:
//
//	scores := []int{5, 3, 4, 1, 2}
//	v := view.NewOrdered(&scores)
//
//	for _, s := range v.All() {
//	    fmt.Println(s) // 1 2 3 4 5
//	}
//
//	scores = append(scores, 0)
//	v.MergeFromBack()
//	first, _ := v.Front() // 0
//
// # Ties
//
// Elements that compare equal are ranked by their position in the slice. A full
// sort and an incremental merge therefore always produce the same index array.
//
// # Unchecked access
//
// [View.Get] and [Iterator] skip validation entirely. They are only safe after a
// checked entry point ran and the slice has not changed since. Reading stale
// data through them is undefined.
//
// # Thread Safety
//
// A View is not safe for concurrent use, and the slice must not change while a
// view operation runs. Only [View.Stats] may be called from other goroutines.
package view
