package view

import (
	"go.uber.org/atomic"
)

// Stats counts the work a view has done since it was created.
type Stats struct {
	// FullSorts is the number of full index rebuilds, including repairs.
	FullSorts int64
	// Merges is the number of incremental merges that sorted at least one new element.
	Merges int64
	// Repairs is the number of full sorts triggered by CheckResort finding a stale index.
	Repairs int64
	// Checks is the number of staleness checks.
	Checks int64
}

type counters struct {
	fullSorts atomic.Int64
	merges    atomic.Int64
	repairs   atomic.Int64
	checks    atomic.Int64
}

// Stats returns a snapshot of the view's counters. Unlike every other method it
// may be called while another goroutine uses the view.
func (v *View[T]) Stats() Stats {
	if v.stats == nil {
		return Stats{}
	}

	return Stats{
		FullSorts: v.stats.fullSorts.Load(),
		Merges:    v.stats.merges.Load(),
		Repairs:   v.stats.repairs.Load(),
		Checks:    v.stats.checks.Load(),
	}
}
