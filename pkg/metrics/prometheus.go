package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	WeeksLoaded  prometheus.Counter
	WeeksSaved   prometheus.Counter
	PasteTargets prometheus.Counter
	SaveDuration prometheus.Histogram
	ErrorsCount  *prometheus.CounterVec
}

// NewMetrics creates new prometheus metrics
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		WeeksLoaded: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "weeks_loaded_total",
			Help:      "The total number of week documents loaded",
		}),
		WeeksSaved: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "weeks_saved_total",
			Help:      "The total number of week documents saved",
		}),
		PasteTargets: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "paste_targets_total",
			Help:      "The total number of fan-out targets written by copy/paste",
		}),
		SaveDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "week_save_duration_seconds",
			Help:      "Time taken to persist a week document",
			Buckets:   prometheus.DefBuckets,
		}),
		ErrorsCount: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "The total number of errors",
		}, []string{"operation"}),
	}
}
