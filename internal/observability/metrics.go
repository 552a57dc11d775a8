// Package observability owns the Prometheus collectors of the planner service.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	activitiesAdded = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dayplanner",
		Subsystem: "timeline",
		Name:      "activities_added_total",
		Help:      "Activities inserted into session timelines, by category.",
	}, []string{"category"})
	durationFallbacks = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "dayplanner",
		Subsystem: "timeline",
		Name:      "duration_fallbacks_total",
		Help:      "Adds whose duration was replaced by the default.",
	})
	plannedMinutes = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "dayplanner",
		Subsystem: "timeline",
		Name:      "planned_minutes",
		Help:      "Planned minutes summed over every live session at the last monitor check.",
	})
	activeSessions = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "dayplanner",
		Subsystem: "sessions",
		Name:      "active",
		Help:      "Planning sessions currently held in memory.",
	})
	sessionsEvicted = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "dayplanner",
		Subsystem: "sessions",
		Name:      "evicted_total",
		Help:      "Sessions removed by the expiry sweeper.",
	})
)

func init() {
	prometheus.MustRegister(activitiesAdded, durationFallbacks, plannedMinutes, activeSessions, sessionsEvicted)
}

func RecordActivityAdded(category string) {
	activitiesAdded.WithLabelValues(category).Inc()
}

func RecordDurationFallback() {
	durationFallbacks.Inc()
}

func SetPlannedMinutes(minutes int) {
	plannedMinutes.Set(float64(minutes))
}

func SetActiveSessions(n int) {
	activeSessions.Set(float64(n))
}

func RecordSessionsEvicted(n int) {
	if n <= 0 {
		return
	}
	sessionsEvicted.Add(float64(n))
}
