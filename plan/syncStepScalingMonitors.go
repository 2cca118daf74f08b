package plan

import (
	"context"

	ddog "github.com/DataDog/datadog-operator/api/datadoghq/v1alpha1"
	"github.com/go-logr/logr"
	"sigs.k8s.io/controller-runtime/pkg/client"
)

// SyncStepScalingMonitors applies the DatadogMonitors of a policy and
// removes the ones it no longer renders. OwnerNamespace is the namespace of
// the policy.
type SyncStepScalingMonitors struct {
	Policy         string
	Namespace      string
	OwnerNamespace string
	Monitors       []ddog.DatadogMonitor
}

func (p *SyncStepScalingMonitors) Apply(ctx context.Context, cli client.Client, log logr.Logger) error {
	keep := map[string]bool{}
	for i := range p.Monitors {
		if err := CreateOrUpdate(ctx, log, cli, &p.Monitors[i]); err != nil {
			return err
		}
		keep[p.Monitors[i].Name] = true
	}

	monitors := &ddog.DatadogMonitorList{}
	if err := cli.List(ctx, monitors, policySelector(p.Policy, p.Namespace, p.OwnerNamespace)); err != nil {
		log.Error(err, "Failed to list step scaling monitors")
		return err
	}
	for i := range monitors.Items {
		dm := &monitors.Items[i]
		if keep[dm.Name] {
			continue
		}
		err := DeleteIfExists(ctx, cli, dm)
		LogSync(log, "deleted", err, dm)
		if err != nil {
			return err
		}
	}
	return nil
}
