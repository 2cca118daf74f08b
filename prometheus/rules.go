package prometheus

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	monitoringv1 "github.com/prometheus-operator/prometheus-operator/pkg/apis/monitoring/v1"
	"github.com/prometheus/common/model"
	stepscalerv1alpha1 "go.medium.engineering/stepscaler/api/v1alpha1"
	"go.medium.engineering/stepscaler/stepscaling"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/util/intstr"
)

const (
	SummaryAnnotation   = "summary"
	ThresholdAnnotation = "threshold"
)

var ErrAlarmNotWired = errors.New("alarm has no threshold or comparison")

// RuleFactory renders the alarms of a policy as prometheus alerting rules.
// Actions are kept in memory and encoded into the annotations of the rule
// that triggers them.
type RuleFactory struct {
	// Labels are added to every alert.
	Labels map[string]string
	alarms []*RuleAlarm
}

func NewRuleFactory(labels map[string]string) *RuleFactory {
	return &RuleFactory{Labels: labels}
}

func (f *RuleFactory) NewAlarm(spec stepscaling.AlarmSpec) stepscaling.AlarmSink {
	a := &RuleAlarm{spec: spec, labels: f.Labels}
	f.alarms = append(f.alarms, a)
	return a
}

func (f *RuleFactory) NewAction(spec stepscaling.ActionSpec) stepscaling.ActionSink {
	return stepscaling.NewStepAction(spec)
}

// Alarms returns the alarms built so far, in creation order.
func (f *RuleFactory) Alarms() []*RuleAlarm {
	out := make([]*RuleAlarm, len(f.alarms))
	copy(out, f.alarms)
	return out
}

// PrometheusRule assembles one rule group per alarm into a single resource.
func (f *RuleFactory) PrometheusRule(name, namespace string, labels map[string]string) (*monitoringv1.PrometheusRule, error) {
	ruleLabels := map[string]string{}
	for k, v := range labels {
		ruleLabels[k] = v
	}
	ruleLabels[stepscalerv1alpha1.LabelRuleType] = stepscalerv1alpha1.RuleTypeStepScaling

	pr := &monitoringv1.PrometheusRule{
		ObjectMeta: metav1.ObjectMeta{
			Name:      name,
			Namespace: namespace,
			Labels:    ruleLabels,
		},
	}
	for _, a := range f.alarms {
		rule, err := a.Rule()
		if err != nil {
			return nil, err
		}
		pr.Spec.Groups = append(pr.Spec.Groups, monitoringv1.RuleGroup{
			Name:  a.spec.Name,
			Rules: []monitoringv1.Rule{rule},
		})
	}
	return pr, nil
}

// RuleAlarm is an AlarmSink that becomes a single alerting rule.
type RuleAlarm struct {
	spec       stepscaling.AlarmSpec
	labels     map[string]string
	threshold  *float64
	comparison stepscaling.Comparison
	actions    []stepscaling.ActionSink
}

func (a *RuleAlarm) SetThreshold(v float64) {
	a.threshold = &v
}

func (a *RuleAlarm) SetComparison(c stepscaling.Comparison) {
	a.comparison = c
}

func (a *RuleAlarm) OnTrigger(action stepscaling.ActionSink) {
	a.actions = append(a.actions, action)
}

func (a *RuleAlarm) Spec() stepscaling.AlarmSpec {
	return a.spec
}

// Expr is the alert expression, for example
//
//	avg(avg_over_time(requests{app="web"}[1m])) >= 50
func (a *RuleAlarm) Expr() (string, error) {
	if a.threshold == nil || a.comparison == "" {
		return "", fmt.Errorf("%s: %w", a.spec.Name, ErrAlarmNotWired)
	}
	agg, err := aggregation(a.spec.Statistic)
	if err != nil {
		return "", err
	}
	window := model.Duration(a.spec.Period).String()
	expr := fmt.Sprintf("%s(%s_over_time(%s[%s])) %s %s",
		agg, agg, Selector(a.spec.Metric), window, a.comparison,
		strconv.FormatFloat(*a.threshold, 'g', -1, 64))
	if err := ValidateExpr(expr); err != nil {
		return "", fmt.Errorf("%s: %w", a.spec.Name, err)
	}
	return expr, nil
}

// Rule renders the alarm. The alert must hold for every evaluation period
// before it fires.
func (a *RuleAlarm) Rule() (monitoringv1.Rule, error) {
	expr, err := a.Expr()
	if err != nil {
		return monitoringv1.Rule{}, err
	}
	annotations, err := a.annotations()
	if err != nil {
		return monitoringv1.Rule{}, err
	}
	labels := map[string]string{}
	for k, v := range a.labels {
		labels[k] = v
	}
	labels[stepscalerv1alpha1.LabelPolicy] = a.spec.Policy
	labels[stepscalerv1alpha1.LabelDirection] = string(a.spec.Direction)
	labels[stepscalerv1alpha1.LabelRuleType] = stepscalerv1alpha1.RuleTypeStepScaling

	periods := a.spec.EvaluationPeriods
	if periods < 1 {
		periods = 1
	}
	forDuration := monitoringv1.Duration(model.Duration(a.spec.Period * time.Duration(periods)).String())
	return monitoringv1.Rule{
		Alert:       a.spec.Name,
		Expr:        intstr.FromString(expr),
		For:         &forDuration,
		Labels:      labels,
		Annotations: annotations,
	}, nil
}

func (a *RuleAlarm) annotations() (map[string]string, error) {
	annotations := map[string]string{
		SummaryAnnotation:   fmt.Sprintf("%s for %s", a.spec.Description, a.spec.Policy),
		ThresholdAnnotation: strconv.FormatFloat(*a.threshold, 'g', -1, 64),
	}
	for _, action := range a.actions {
		recorded, ok := action.(stepscaling.RecordedAction)
		if !ok {
			continue
		}
		adjustments, err := json.Marshal(recorded.Adjustments())
		if err != nil {
			return nil, err
		}
		spec, err := json.Marshal(recorded.Spec())
		if err != nil {
			return nil, err
		}
		annotations[stepscalerv1alpha1.AnnotationAdjustments] = string(adjustments)
		annotations[stepscalerv1alpha1.AnnotationAction] = string(spec)
	}
	return annotations, nil
}

// Selector renders the instant vector selector of a metric. Matchers are
// sorted by label name.
func Selector(m stepscaling.Metric) string {
	if len(m.Selector) == 0 {
		return m.Name
	}
	keys := make([]string, 0, len(m.Selector))
	for k := range m.Selector {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	matchers := make([]string, len(keys))
	for i, k := range keys {
		matchers[i] = fmt.Sprintf("%s=%s", k, strconv.Quote(m.Selector[k]))
	}
	return fmt.Sprintf("%s{%s}", m.Name, strings.Join(matchers, ","))
}

func aggregation(s stepscaling.Statistic) (string, error) {
	switch s {
	case stepscaling.Average:
		return "avg", nil
	case stepscaling.Minimum:
		return "min", nil
	case stepscaling.Maximum:
		return "max", nil
	}
	return "", fmt.Errorf("%w: %q", stepscaling.ErrUnsupportedStatistic, s)
}
