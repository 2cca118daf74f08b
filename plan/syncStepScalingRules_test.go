package plan

import (
	"context"
	"testing"

	ddog "github.com/DataDog/datadog-operator/api/datadoghq/v1alpha1"
	monitoringv1 "github.com/prometheus-operator/prometheus-operator/pkg/apis/monitoring/v1"
	testify "github.com/stretchr/testify/assert"
	ktest "go.medium.engineering/kubernetes/pkg/test"
	"go.medium.engineering/stepscaler/test"
	"sigs.k8s.io/controller-runtime/pkg/client"
)

func TestSyncStepScalingRules(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	assert := testify.New(t)
	log := test.MustNewLogger()

	stale := rule("web-old", "web", "up >= 1")
	other := rule("api", "api", "up >= 1")
	cli := fakeClient(stale, other)

	sync := &SyncStepScalingRules{
		Policy:    "web",
		Namespace: "production",
		Rule:      rule("web", "web", "up >= 5"),
	}
	assert.NoError(sync.Apply(ctx, cli, log), "Shouldn't return error.")

	actual := &monitoringv1.PrometheusRule{}
	assert.NoError(cli.Get(ctx, client.ObjectKeyFromObject(sync.Rule), actual))
	assert.Equal("up >= 5", actual.Spec.Groups[0].Rules[0].Expr.String())
	ktest.AssertNotFound(ctx, t, cli, stale)
	assert.NoError(cli.Get(ctx, client.ObjectKeyFromObject(other), &monitoringv1.PrometheusRule{}))
}

func TestSyncStepScalingRulesWithoutGroups(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	assert := testify.New(t)

	existing := rule("web", "web", "up >= 1")
	cli := fakeClient(existing)

	empty := rule("web", "web", "")
	empty.Spec.Groups = nil
	sync := &SyncStepScalingRules{Policy: "web", Namespace: "production", Rule: empty}
	assert.NoError(sync.Apply(ctx, cli, test.MustNewLogger()))
	ktest.AssertNotFound(ctx, t, cli, existing)
}

func TestSyncStepScalingMonitors(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	assert := testify.New(t)

	lower := monitor("production-web-lower", "web", "avg(last_1m):avg:up{*} <= 1")
	staging := monitor("staging-web-lower", "web", "avg(last_1m):avg:up{*} <= 1")
	staging.Labels = monitorLabels("web", "staging")
	cli := fakeClient(lower, staging)

	upper := monitor("production-web-upper", "web", "avg(last_1m):avg:up{*} >= 5")
	sync := &SyncStepScalingMonitors{
		Policy:         "web",
		Namespace:      "datadog",
		OwnerNamespace: "production",
		Monitors:       []ddog.DatadogMonitor{*upper},
	}
	assert.NoError(sync.Apply(ctx, cli, test.MustNewLogger()))

	actual := &ddog.DatadogMonitor{}
	assert.NoError(cli.Get(ctx, client.ObjectKeyFromObject(upper), actual))
	assert.Equal(upper.Spec.Query, actual.Spec.Query)
	ktest.AssertNotFound(ctx, t, cli, lower)
	assert.NoError(cli.Get(ctx, client.ObjectKeyFromObject(staging), &ddog.DatadogMonitor{}))
}

func TestDeleteStepScalingRules(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	assert := testify.New(t)

	webRule := rule("web", "web", "up >= 1")
	webMonitor := monitor("web-upper", "web", "avg(last_1m):avg:up{*} >= 1")
	apiRule := rule("api", "api", "up >= 1")
	cli := fakeClient(webRule, webMonitor, apiRule)

	deleteRules := &DeleteStepScalingRules{
		Policy:           "web",
		Namespace:        "production",
		MonitorNamespace: "datadog",
	}
	assert.NoError(deleteRules.Apply(ctx, cli, test.MustNewLogger()), "Shouldn't return error.")
	ktest.AssertNotFound(ctx, t, cli, webRule)
	ktest.AssertNotFound(ctx, t, cli, webMonitor)
	assert.NoError(cli.Get(ctx, client.ObjectKeyFromObject(apiRule), &monitoringv1.PrometheusRule{}))
}
