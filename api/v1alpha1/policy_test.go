package v1alpha1

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.medium.engineering/stepscaler/stepscaling"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/utils/ptr"
)

const documents = `
apiVersion: stepscaler.medium.engineering/v1alpha1
kind: StepScalingPolicy
metadata:
  name: web
  namespace: production
spec:
  target: deployment/web
  metric:
    name: container_cpu_usage
    selector:
      app: web
  cooldownSeconds: 300
  steps:
  - upper: 10
    change: -1
  - lower: 10
    upper: 50
    change: 0
  - lower: 50
    change: 3
---
---
kind: StepScalingPolicy
metadata:
  name: queue
spec:
  target: deployment/worker
  adjustmentType: ExactCapacity
  metric:
    name: queue_depth
    statistic: Maximum
  steps:
  - upper: 100
    change: 2
  - lower: 100
    change: 10
`

func TestDecodePolicies(t *testing.T) {
	policies, err := DecodePolicies(strings.NewReader(documents))
	assert.NoError(t, err)
	if !assert.Len(t, policies, 2) {
		return
	}

	web := policies[0]
	assert.Equal(t, "web", web.Name)
	assert.Equal(t, "production", web.Namespace)
	assert.Equal(t, DefaultStatistic, web.Spec.Metric.Statistic)
	assert.Equal(t, DefaultAdjustmentType, web.Spec.AdjustmentType)
	assert.Equal(t, ptr.To[int32](300), web.Spec.CooldownSeconds)
	assert.Equal(t, []ScalingStep{
		{Upper: ptr.To(10.0), Change: -1},
		{Lower: ptr.To(10.0), Upper: ptr.To(50.0), Change: 0},
		{Lower: ptr.To(50.0), Change: 3},
	}, web.Spec.Steps)

	queue := policies[1]
	assert.Equal(t, "Maximum", queue.Spec.Metric.Statistic)
	assert.Equal(t, "ExactCapacity", queue.Spec.AdjustmentType)
}

func TestDecodePoliciesRejectsOtherKinds(t *testing.T) {
	for _, tc := range []struct {
		name string
		doc  string
	}{
		{
			name: "Kind",
			doc:  "apiVersion: v1\nkind: ConfigMap\nmetadata:\n  name: nope\n",
		},
		{
			name: "GroupVersion",
			doc:  "apiVersion: stepscaler.medium.engineering/v2\nkind: StepScalingPolicy\nmetadata:\n  name: nope\n",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			policies, err := DecodePolicies(strings.NewReader(tc.doc))
			assert.Nil(t, policies)
			assert.ErrorIs(t, err, ErrUnexpectedKind)
		})
	}
}

func TestDecodePoliciesMalformed(t *testing.T) {
	_, err := DecodePolicies(strings.NewReader("kind: StepScalingPolicy\nspec:\n  steps: 5\n"))
	assert.Error(t, err)
}

func TestConfig(t *testing.T) {
	p := &StepScalingPolicy{
		ObjectMeta: metav1.ObjectMeta{Name: "web"},
		Spec: StepScalingPolicySpec{
			Target: "deployment/web",
			Metric: MetricSource{
				Name:      "requests",
				Selector:  map[string]string{"app": "web"},
				Statistic: "Average",
			},
			AdjustmentType:         "PercentChangeInCapacity",
			CooldownSeconds:        ptr.To[int32](60),
			MinAdjustmentMagnitude: ptr.To[int32](2),
			Steps: []ScalingStep{
				{Upper: ptr.To(10.0), Change: -10},
				{Lower: ptr.To(10.0), Change: 20},
			},
		},
	}

	cfg := p.Config()
	assert.Equal(t, stepscaling.PolicyConfig{
		Name: "web",
		Metric: stepscaling.Metric{
			Name:      "requests",
			Selector:  map[string]string{"app": "web"},
			Statistic: "Average",
		},
		ScalingSteps: []stepscaling.ScalingInterval{
			{Upper: ptr.To(10.0), Change: -10},
			{Lower: ptr.To(10.0), Change: 20},
		},
		AdjustmentType:         stepscaling.PercentChangeInCapacity,
		CooldownSeconds:        ptr.To[int32](60),
		MinAdjustmentMagnitude: ptr.To[int32](2),
		ScalingTarget:          "deployment/web",
	}, cfg)

	*cfg.ScalingSteps[0].Upper = 99
	*cfg.CooldownSeconds = 1
	cfg.Metric.Selector["app"] = "other"
	assert.Equal(t, 10.0, *p.Spec.Steps[0].Upper)
	assert.Equal(t, int32(60), *p.Spec.CooldownSeconds)
	assert.Equal(t, "web", p.Spec.Metric.Selector["app"])
}

func TestDeepCopy(t *testing.T) {
	p := &StepScalingPolicy{
		ObjectMeta: metav1.ObjectMeta{Name: "web", Labels: map[string]string{"a": "b"}},
		Spec: StepScalingPolicySpec{
			Steps:    []ScalingStep{{Lower: ptr.To(1.0), Change: 1}},
			Alerting: AlertingSpec{Tags: []string{"team:web"}},
		},
		Status: StepScalingPolicyStatus{
			Ladders: []LadderStatus{{Direction: "up", Threshold: "1", Steps: 1}},
		},
	}
	c := p.DeepCopy()
	assert.Equal(t, p, c)

	*c.Spec.Steps[0].Lower = 2
	c.Spec.Alerting.Tags[0] = "team:other"
	c.Labels["a"] = "c"
	c.Status.Ladders[0].Steps = 5
	assert.Equal(t, 1.0, *p.Spec.Steps[0].Lower)
	assert.Equal(t, "team:web", p.Spec.Alerting.Tags[0])
	assert.Equal(t, "b", p.Labels["a"])
	assert.Equal(t, int32(1), p.Status.Ladders[0].Steps)
}

func TestFinalizer(t *testing.T) {
	p := &StepScalingPolicy{
		ObjectMeta: metav1.ObjectMeta{Finalizers: []string{"other"}},
	}
	assert.True(t, p.IsFinalized())
	p.AddFinalizer()
	assert.False(t, p.IsFinalized())
	p.Finalize()
	assert.True(t, p.IsFinalized())
	assert.Equal(t, []string{"other"}, p.Finalizers)
	assert.False(t, p.IsDeleted())
}
