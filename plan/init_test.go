package plan

import (
	"time"

	ddog "github.com/DataDog/datadog-operator/api/datadoghq/v1alpha1"
	monitoringv1 "github.com/prometheus-operator/prometheus-operator/pkg/apis/monitoring/v1"
	stepscalerv1alpha1 "go.medium.engineering/stepscaler/api/v1alpha1"
	"go.medium.engineering/stepscaler/client/scheme"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/util/intstr"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/client/fake"
)

var timeout = time.Duration(10) * time.Second

func fakeClient(objs ...client.Object) client.WithWatch {
	return fake.NewClientBuilder().WithScheme(scheme.Scheme).WithObjects(objs...).Build()
}

func policyLabels(policy string) map[string]string {
	return map[string]string{
		stepscalerv1alpha1.LabelPolicy:   policy,
		stepscalerv1alpha1.LabelRuleType: stepscalerv1alpha1.RuleTypeStepScaling,
	}
}

func monitorLabels(policy, owner string) map[string]string {
	labels := policyLabels(policy)
	labels[stepscalerv1alpha1.LabelOwnerName] = policy
	labels[stepscalerv1alpha1.LabelOwnerNamespace] = owner
	return labels
}

func rule(name, policy, expr string) *monitoringv1.PrometheusRule {
	return &monitoringv1.PrometheusRule{
		ObjectMeta: metav1.ObjectMeta{
			Name:      name,
			Namespace: "production",
			Labels:    policyLabels(policy),
		},
		Spec: monitoringv1.PrometheusRuleSpec{
			Groups: []monitoringv1.RuleGroup{{
				Name:  name,
				Rules: []monitoringv1.Rule{{Alert: name, Expr: intstr.FromString(expr)}},
			}},
		},
	}
}

func monitor(name, policy, query string) *ddog.DatadogMonitor {
	return &ddog.DatadogMonitor{
		ObjectMeta: metav1.ObjectMeta{
			Name:      name,
			Namespace: "datadog",
			Labels:    monitorLabels(policy, "production"),
		},
		Spec: ddog.DatadogMonitorSpec{
			Name:  name,
			Query: query,
			Type:  ddog.DatadogMonitorTypeMetric,
		},
	}
}
