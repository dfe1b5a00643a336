// Package sortable defines the Sortable interface and wrapper types for
// primitives that satisfy it.
//
// A Sortable type knows how to order itself against another value of the same
// type. Compare adapts any Sortable type into a compare.Func so it can drive a
// sorted view:
//
//	items := []sortable.Int{5, 3, 4, 1, 2}
//	v := view.NewSortable(&items)
//	for _, item := range v.All() {
//	    fmt.Println(int(item)) // 1 2 3 4 5
//	}
//
// Custom types implement Equals and LessThan:
//
//	type Job struct {
//	    Priority int
//	    Name     string
//	}
//
//	func (j Job) Equals(other Job) bool {
//	    return j.Priority == other.Priority && j.Name == other.Name
//	}
//
//	func (j Job) LessThan(other Job) bool {
//	    if j.Priority != other.Priority {
//	        return j.Priority < other.Priority
//	    }
//
//	    return j.Name < other.Name
//	}
//
// Equals must agree with LessThan: two values are equal exactly when neither
// is less than the other.
package sortable
