package view

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	sortFull  = "full"
	sortMerge = "merge"
)

var (
	// sortsTotal counts index sorts per view. kind is "full" for Resort (and
	// repairs) and "merge" for MergeFromBack.
	sortsTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "sorted_view_sorts_total",
		Help: "The total number of index sorts performed by sorted views",
	}, []string{"view", "kind"})

	// sortedElementsTotal counts the index entries passed through a sort. A
	// merge only counts the appended tail, so comparing the two kinds shows how
	// much work incremental merging saves.
	sortedElementsTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "sorted_view_sorted_elements_total",
		Help: "The total number of index entries sorted by sorted views",
	}, []string{"view", "kind"})

	checksTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "sorted_view_checks_total",
		Help: "The total number of staleness checks performed by sorted views",
	}, []string{"view", "stale"})
)

// viewMetrics holds the counters for one view name, resolved once so the read
// path doesn't pay for label lookups.
type viewMetrics struct {
	fullSorts    prometheus.Counter
	merges       prometheus.Counter
	fullElements prometheus.Counter
	mergeElems   prometheus.Counter
	staleChecks  prometheus.Counter
	freshChecks  prometheus.Counter
}

func newViewMetrics(name string) *viewMetrics {
	return &viewMetrics{
		fullSorts:    sortsTotal.WithLabelValues(name, sortFull),
		merges:       sortsTotal.WithLabelValues(name, sortMerge),
		fullElements: sortedElementsTotal.WithLabelValues(name, sortFull),
		mergeElems:   sortedElementsTotal.WithLabelValues(name, sortMerge),
		staleChecks:  checksTotal.WithLabelValues(name, strconv.FormatBool(true)),
		freshChecks:  checksTotal.WithLabelValues(name, strconv.FormatBool(false)),
	}
}

func (m *viewMetrics) recordSort(kind string, elements int) {
	if m == nil {
		return
	}

	if kind == sortMerge {
		m.merges.Inc()
		m.mergeElems.Add(float64(elements))

		return
	}

	m.fullSorts.Inc()
	m.fullElements.Add(float64(elements))
}

func (m *viewMetrics) recordCheck(stale bool) {
	if m == nil {
		return
	}

	if stale {
		m.staleChecks.Inc()
	} else {
		m.freshChecks.Inc()
	}
}
