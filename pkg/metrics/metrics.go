package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace = "storesweep"
)

// Metrics is the structure that holds all prometheus metrics
var (
	// SweepsCompletedCounter counts the number of sweeps that drained their snapshot
	SweepsCompletedCounter = newCounterVec(
		"sweeps_completed_count",
		"Number of sweeps that were successfully completed",
	)
	// SweepsFailedCounter counts the number of sweeps that aborted with an error
	SweepsFailedCounter = newCounterVec(
		"sweeps_failed_count",
		"Number of sweeps that failed due to an error",
	)
	// ItemsDeletedCounter counts the items deleted across all sweeps
	ItemsDeletedCounter = newCounterVec(
		"items_deleted_count",
		"Number of items deleted across all sweeps",
	)
	// PagesProcessedCounter counts the pages fully processed across all sweeps
	PagesProcessedCounter = newCounterVec(
		"pages_processed_count",
		"Number of pages fully processed across all sweeps",
	)
	// SweepDuration observe the duration of each sweeper.DeleteAll() call
	SweepDuration = newSummaryVec(
		"sweep_duration_seconds",
		"Duration in seconds for each sweeper.DeleteAll() call",
	)
)

func newSummaryVec(name, help string, labels ...string) *prometheus.SummaryVec {
	vec := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Namespace: namespace,
			Name:      name,
			Help:      help,
		}, labels)
	prometheus.MustRegister(vec)
	return vec
}

func newCounterVec(name, help string, labels ...string) *prometheus.CounterVec {
	vec := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      name,
			Help:      help,
		}, labels)
	prometheus.MustRegister(vec)
	return vec
}
