package plan

import (
	"context"

	"github.com/go-logr/logr"
	monitoringv1 "github.com/prometheus-operator/prometheus-operator/pkg/apis/monitoring/v1"
	stepscalerv1alpha1 "go.medium.engineering/stepscaler/api/v1alpha1"
	"k8s.io/apimachinery/pkg/labels"
	"sigs.k8s.io/controller-runtime/pkg/client"
)

// SyncStepScalingRules applies the alerting rules of a policy and removes
// any other step scaling rules left behind by it. A rule without groups is
// not created.
type SyncStepScalingRules struct {
	Policy    string
	Namespace string
	Rule      *monitoringv1.PrometheusRule
}

func (p *SyncStepScalingRules) Apply(ctx context.Context, cli client.Client, log logr.Logger) error {
	keep := ""
	if p.Rule != nil && len(p.Rule.Spec.Groups) > 0 {
		if err := CreateOrUpdate(ctx, log, cli, p.Rule); err != nil {
			return err
		}
		keep = p.Rule.Name
	}

	rules := &monitoringv1.PrometheusRuleList{}
	if err := cli.List(ctx, rules, policySelector(p.Policy, p.Namespace, "")); err != nil {
		log.Error(err, "Failed to list step scaling rules")
		return err
	}
	for i := range rules.Items {
		rule := &rules.Items[i]
		if rule.Name == keep {
			continue
		}
		err := DeleteIfExists(ctx, cli, rule)
		LogSync(log, "deleted", err, rule)
		if err != nil {
			return err
		}
	}
	return nil
}

// policySelector matches the resources of a policy in namespace. Resources
// created outside of the policy's namespace are also matched on owner.
func policySelector(policy, namespace, owner string) *client.ListOptions {
	set := map[string]string{
		stepscalerv1alpha1.LabelPolicy:   policy,
		stepscalerv1alpha1.LabelRuleType: stepscalerv1alpha1.RuleTypeStepScaling,
	}
	if owner != "" {
		set[stepscalerv1alpha1.LabelOwnerNamespace] = owner
	}
	return &client.ListOptions{
		Namespace:     namespace,
		LabelSelector: labels.SelectorFromSet(set),
	}
}
