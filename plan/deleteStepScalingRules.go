package plan

import (
	"context"

	ddog "github.com/DataDog/datadog-operator/api/datadoghq/v1alpha1"
	"github.com/go-logr/logr"
	monitoringv1 "github.com/prometheus-operator/prometheus-operator/pkg/apis/monitoring/v1"
	"sigs.k8s.io/controller-runtime/pkg/client"
)

// DeleteStepScalingRules removes every PrometheusRule and DatadogMonitor
// created for a policy. MonitorNamespace is skipped when empty.
type DeleteStepScalingRules struct {
	Policy           string
	Namespace        string
	MonitorNamespace string
}

func (p *DeleteStepScalingRules) Apply(ctx context.Context, cli client.Client, log logr.Logger) error {
	rules := &monitoringv1.PrometheusRuleList{}
	if err := cli.List(ctx, rules, policySelector(p.Policy, p.Namespace, "")); err != nil {
		log.Error(err, "Failed to list step scaling rules")
		return err
	}
	for i := range rules.Items {
		rule := &rules.Items[i]
		err := DeleteIfExists(ctx, cli, rule)
		LogSync(log, "deleted", err, rule)
		if err != nil {
			return err
		}
	}

	if p.MonitorNamespace == "" {
		return nil
	}
	monitors := &ddog.DatadogMonitorList{}
	if err := cli.List(ctx, monitors, policySelector(p.Policy, p.MonitorNamespace, p.Namespace)); err != nil {
		log.Error(err, "Failed to list step scaling monitors")
		return err
	}
	for i := range monitors.Items {
		dm := &monitors.Items[i]
		err := DeleteIfExists(ctx, cli, dm)
		LogSync(log, "deleted", err, dm)
		if err != nil {
			return err
		}
	}
	return nil
}
