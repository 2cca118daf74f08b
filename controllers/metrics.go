package controllers

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.medium.engineering/stepscaler/stepscaling"
	"sigs.k8s.io/controller-runtime/pkg/metrics"
)

var (
	syncDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "stepscaler_policy_sync_duration_seconds",
		Help:    "Time spent syncing the alarms of a policy",
		Buckets: prometheus.DefBuckets,
	}, []string{"result"})
	invalidPolicies = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "stepscaler_invalid_policies",
		Help: "Policies that failed validation on their last reconcile",
	}, []string{"namespace", "policy"})
)

func init() {
	metrics.Registry.MustRegister(syncDuration, invalidPolicies)
	metrics.Registry.MustRegister(stepscaling.Collectors()...)
}
