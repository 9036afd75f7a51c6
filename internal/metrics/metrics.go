// Package metrics registers hearth's Prometheus collectors on the default
// registry. Collectors returns them for servers that keep their own.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AssistantFallbacks = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hearth",
		Subsystem: "assistant",
		Name:      "fallbacks_total",
		Help:      "Assistant calls that returned their fallback value.",
	}, []string{"operation"})

	AssistantCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hearth",
		Subsystem: "assistant",
		Name:      "calls_total",
		Help:      "Assistant calls by operation.",
	}, []string{"operation"})

	StoreSaveFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "hearth",
		Subsystem: "store",
		Name:      "save_failures_total",
		Help:      "Saves that failed and were dropped.",
	})
)

// Collectors lists every hearth collector.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{AssistantFallbacks, AssistantCalls, StoreSaveFailures}
}
