package prometheus

import (
	"testing"

	monitoringv1 "github.com/prometheus-operator/prometheus-operator/pkg/apis/monitoring/v1"
	"github.com/stretchr/testify/assert"
	stepscalerv1alpha1 "go.medium.engineering/stepscaler/api/v1alpha1"
	"go.medium.engineering/stepscaler/stepscaling"
	"go.medium.engineering/stepscaler/test"
	"k8s.io/apimachinery/pkg/util/intstr"
	"k8s.io/utils/ptr"
)

func webPolicy() stepscaling.PolicyConfig {
	return stepscaling.PolicyConfig{
		Name: "web",
		Metric: stepscaling.Metric{
			Name:      "requests",
			Selector:  map[string]string{"app": "web", "env": "production"},
			Statistic: "Average",
		},
		ScalingSteps: []stepscaling.ScalingInterval{
			{Upper: ptr.To(10.0), Change: -1},
			{Lower: ptr.To(10.0), Upper: ptr.To(50.0), Change: 0},
			{Lower: ptr.To(50.0), Change: 3},
		},
		ScalingTarget: "deployment/web",
	}
}

func TestPrometheusRule(t *testing.T) {
	assert := assert.New(t)
	factory := NewRuleFactory(map[string]string{"severity": "info"})
	_, err := stepscaling.NewPolicy(webPolicy(), factory, test.MustNewLogger())
	assert.NoError(err)

	pr, err := factory.PrometheusRule("web-stepscaling", "production", map[string]string{
		stepscalerv1alpha1.LabelPolicy: "web",
	})
	assert.NoError(err)
	assert.Equal("web-stepscaling", pr.Name)
	assert.Equal("production", pr.Namespace)
	assert.Equal(map[string]string{
		stepscalerv1alpha1.LabelPolicy:   "web",
		stepscalerv1alpha1.LabelRuleType: stepscalerv1alpha1.RuleTypeStepScaling,
	}, pr.Labels)
	if !assert.Len(pr.Spec.Groups, 2) {
		return
	}

	oneMinute := monitoringv1.Duration("1m")
	lower := pr.Spec.Groups[0]
	assert.Equal("web-lower", lower.Name)
	assert.Equal(monitoringv1.Rule{
		Alert: "web-lower",
		Expr:  intstr.FromString(`avg(avg_over_time(requests{app="web",env="production"}[1m])) <= 10`),
		For:   &oneMinute,
		Labels: map[string]string{
			"severity":                        "info",
			stepscalerv1alpha1.LabelPolicy:    "web",
			stepscalerv1alpha1.LabelDirection: "down",
			stepscalerv1alpha1.LabelRuleType:  stepscalerv1alpha1.RuleTypeStepScaling,
		},
		Annotations: map[string]string{
			SummaryAnnotation:                        "Lower threshold scaling alarm for web",
			ThresholdAnnotation:                      "10",
			stepscalerv1alpha1.AnnotationAdjustments: `[{"adjustment":-1,"lowerBound":null,"upperBound":0}]`,
			stepscalerv1alpha1.AnnotationAction:      `{"name":"web-lower","policy":"web","direction":"down","adjustmentType":"ChangeInCapacity","metricAggregationType":"Average","scalingTarget":"deployment/web"}`,
		},
	}, lower.Rules[0])

	upper := pr.Spec.Groups[1].Rules[0]
	assert.Equal("web-upper", upper.Alert)
	assert.Equal(`avg(avg_over_time(requests{app="web",env="production"}[1m])) >= 50`, upper.Expr.String())
	assert.Equal("up", upper.Labels[stepscalerv1alpha1.LabelDirection])
	assert.JSONEq(`[{"adjustment":3,"lowerBound":0,"upperBound":null}]`, upper.Annotations[stepscalerv1alpha1.AnnotationAdjustments])
}

func TestPrometheusRuleNoLadders(t *testing.T) {
	cfg := webPolicy()
	for i := range cfg.ScalingSteps {
		cfg.ScalingSteps[i].Change = 0
	}
	factory := NewRuleFactory(nil)
	_, err := stepscaling.NewPolicy(cfg, factory, test.MustNewLogger())
	assert.NoError(t, err)
	assert.Empty(t, factory.Alarms())

	pr, err := factory.PrometheusRule("web", "production", nil)
	assert.NoError(t, err)
	assert.Empty(t, pr.Spec.Groups)
}

func TestRuleExpr(t *testing.T) {
	for _, tc := range []struct {
		name       string
		metric     stepscaling.Metric
		statistic  stepscaling.Statistic
		threshold  float64
		comparison stepscaling.Comparison
		expected   string
	}{
		{
			name:       "Maximum",
			metric:     stepscaling.Metric{Name: "queue_depth"},
			statistic:  stepscaling.Maximum,
			threshold:  100,
			comparison: stepscaling.GreaterThanOrEqual,
			expected:   "max(max_over_time(queue_depth[1m])) >= 100",
		},
		{
			name:       "NegativeThreshold",
			metric:     stepscaling.Metric{Name: "lag"},
			statistic:  stepscaling.Minimum,
			threshold:  -2.5,
			comparison: stepscaling.LessThanOrEqual,
			expected:   "min(min_over_time(lag[1m])) <= -2.5",
		},
		{
			name:       "QuotedSelector",
			metric:     stepscaling.Metric{Name: "requests", Selector: map[string]string{"path": `/a"b`}},
			statistic:  stepscaling.Average,
			threshold:  1,
			comparison: stepscaling.GreaterThanOrEqual,
			expected:   `avg(avg_over_time(requests{path="/a\"b"}[1m])) >= 1`,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			factory := NewRuleFactory(nil)
			alarm := factory.NewAlarm(stepscaling.AlarmSpec{
				Name:      tc.name,
				Metric:    tc.metric,
				Statistic: tc.statistic,
				Period:    stepscaling.EvaluationPeriod,
			})
			alarm.SetThreshold(tc.threshold)
			alarm.SetComparison(tc.comparison)

			expr, err := factory.Alarms()[0].Expr()
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, expr)
		})
	}
}

func TestRuleNotWired(t *testing.T) {
	factory := NewRuleFactory(nil)
	factory.NewAlarm(stepscaling.AlarmSpec{
		Name:      "web-upper",
		Metric:    stepscaling.Metric{Name: "requests"},
		Statistic: stepscaling.Average,
		Period:    stepscaling.EvaluationPeriod,
	})
	_, err := factory.PrometheusRule("web", "production", nil)
	assert.ErrorIs(t, err, ErrAlarmNotWired)
}

func TestValueQuery(t *testing.T) {
	q, err := ValueQuery(stepscaling.Metric{Name: "requests", Statistic: "max"}, stepscaling.EvaluationPeriod)
	assert.NoError(t, err)
	assert.Equal(t, "max(max_over_time(requests[1m]))", q)
	assert.NoError(t, ValidateExpr(q))

	_, err = ValueQuery(stepscaling.Metric{Name: "requests", Statistic: "p99"}, stepscaling.EvaluationPeriod)
	assert.ErrorIs(t, err, stepscaling.ErrUnsupportedStatistic)
}
