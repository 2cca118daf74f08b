package stepscaling

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	policiesBuiltCounter = promauto.NewCounter(prometheus.CounterOpts{
		Name: "stepscaler_policies_built_total",
		Help: "Step scaling policies constructed successfully",
	})
	validationFailureCounter = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "stepscaler_policy_validation_failures_total",
		Help: "Step scaling policies rejected at construction",
	}, []string{"reason"})
	laddersBuiltCounter = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "stepscaler_ladders_built_total",
		Help: "Adjustment ladders wired to an alarm and action",
	}, []string{"direction"})
)

// Collectors returns the policy metrics so they can be registered with
// another registry as well.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{policiesBuiltCounter, validationFailureCounter, laddersBuiltCounter}
}
