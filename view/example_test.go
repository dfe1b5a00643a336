package view_test

import (
	"fmt"
	"slices"

	"github.com/amp-labs/sortedview/view"
)

// ExampleView_MergeFromBack keeps a view current while appending.
func ExampleView_MergeFromBack() {
	scores := []int{5, 3, 4, 1, 2}

	v := view.NewOrdered(&scores, view.WithMetrics(false))
	v.Resort()

	scores = append(scores, 0)
	v.MergeFromBack()

	fmt.Println(slices.Collect(v.Values()))
	fmt.Println(scores)
	// Output:
	// [0 1 2 3 4 5]
	// [5 3 4 1 2 0]
}

// ExampleView_Begin walks the view with an explicit iterator.
func ExampleView_Begin() {
	words := []string{"pear", "apple", "fig"}

	v := view.NewOrdered(&words, view.WithMetrics(false))

	for it, end := v.Begin(), v.End(); it.Less(end); it.Next() {
		fmt.Println(it.Slot(), it.Value())
	}
	// Output:
	// 0 apple
	// 1 fig
	// 2 pear
}
