package datadog

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	ddog "github.com/DataDog/datadog-operator/api/datadoghq/v1alpha1"
	datadogV1 "github.com/DataDog/datadog-api-client-go/v2/api/datadogV1"
	stepscalerv1alpha1 "go.medium.engineering/stepscaler/api/v1alpha1"
	"go.medium.engineering/stepscaler/stepscaling"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

var ErrMonitorNotWired = errors.New("monitor has no threshold or comparison")

// MonitorFactory renders the alarms of a policy as Datadog metric monitors.
type MonitorFactory struct {
	// Tags are added to every monitor.
	Tags     []string
	monitors []*MonitorAlarm
}

func NewMonitorFactory(tags []string) *MonitorFactory {
	return &MonitorFactory{Tags: tags}
}

func (f *MonitorFactory) NewAlarm(spec stepscaling.AlarmSpec) stepscaling.AlarmSink {
	m := &MonitorAlarm{spec: spec, tags: f.Tags}
	f.monitors = append(f.monitors, m)
	return m
}

func (f *MonitorFactory) NewAction(spec stepscaling.ActionSpec) stepscaling.ActionSink {
	return stepscaling.NewStepAction(spec)
}

func (f *MonitorFactory) Monitors() []*MonitorAlarm {
	out := make([]*MonitorAlarm, len(f.monitors))
	copy(out, f.monitors)
	return out
}

// DatadogMonitors renders every alarm as a DatadogMonitor resource for the
// datadog operator.
func (f *MonitorFactory) DatadogMonitors(namespace string, labels map[string]string) (*ddog.DatadogMonitorList, error) {
	list := &ddog.DatadogMonitorList{}
	for _, m := range f.monitors {
		dm, err := m.DatadogMonitor(namespace, labels)
		if err != nil {
			return nil, err
		}
		list.Items = append(list.Items, *dm)
	}
	return list, nil
}

// MonitorAlarm is an AlarmSink that becomes a single metric monitor.
type MonitorAlarm struct {
	spec       stepscaling.AlarmSpec
	tags       []string
	threshold  *float64
	comparison stepscaling.Comparison
	actions    []stepscaling.ActionSink
}

func (m *MonitorAlarm) SetThreshold(v float64) {
	m.threshold = &v
}

func (m *MonitorAlarm) SetComparison(c stepscaling.Comparison) {
	m.comparison = c
}

func (m *MonitorAlarm) OnTrigger(action stepscaling.ActionSink) {
	m.actions = append(m.actions, action)
}

func (m *MonitorAlarm) Name() string {
	return m.spec.Name
}

// Query is the monitor query, for example
//
//	avg(last_1m):avg:requests{app:web} >= 50
func (m *MonitorAlarm) Query() (string, error) {
	if m.threshold == nil || m.comparison == "" {
		return "", fmt.Errorf("%s: %w", m.spec.Name, ErrMonitorNotWired)
	}
	agg, err := aggregation(m.spec.Statistic)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s(last_%s):%s:%s%s %s %s",
		agg, window(m.spec.Period), agg, m.spec.Metric.Name, scope(m.spec.Metric.Selector),
		m.comparison, m.thresholdString()), nil
}

func (m *MonitorAlarm) thresholdString() string {
	return strconv.FormatFloat(*m.threshold, 'g', -1, 64)
}

// Tags are sorted and include the policy and direction of the alarm.
func (m *MonitorAlarm) Tags() []string {
	tags := append([]string{}, m.tags...)
	tags = append(tags,
		fmt.Sprintf("policy:%s", m.spec.Policy),
		fmt.Sprintf("direction:%s", m.spec.Direction),
		fmt.Sprintf("ruletype:%s", stepscalerv1alpha1.RuleTypeStepScaling),
	)
	sort.Strings(tags)
	return tags
}

// Message describes the alarm and carries the ladder it triggers.
func (m *MonitorAlarm) Message() (string, error) {
	b := &strings.Builder{}
	fmt.Fprintf(b, "%s for %s", m.spec.Description, m.spec.Policy)
	for _, action := range m.actions {
		recorded, ok := action.(stepscaling.RecordedAction)
		if !ok {
			continue
		}
		adjustments, err := json.Marshal(recorded.Adjustments())
		if err != nil {
			return "", err
		}
		spec := recorded.Spec()
		fmt.Fprintf(b, "\nTarget: %s\nAdjustment type: %s\nAdjustments: %s", spec.ScalingTarget, spec.AdjustmentType, adjustments)
	}
	return b.String(), nil
}

// Monitor renders the alarm for the Datadog monitors API.
func (m *MonitorAlarm) Monitor() (*datadogV1.Monitor, error) {
	query, err := m.Query()
	if err != nil {
		return nil, err
	}
	message, err := m.Message()
	if err != nil {
		return nil, err
	}
	critical := *m.threshold

	options := datadogV1.NewMonitorOptions()
	options.SetThresholds(datadogV1.MonitorThresholds{Critical: &critical})
	options.SetNotifyNoData(false)
	options.SetRequireFullWindow(true)
	options.SetIncludeTags(true)

	monitor := datadogV1.NewMonitor(query, datadogV1.MONITORTYPE_METRIC_ALERT)
	monitor.SetName(m.spec.Name)
	monitor.SetMessage(message)
	monitor.SetTags(m.Tags())
	monitor.SetOptions(*options)
	return monitor, nil
}

// DatadogMonitor renders the alarm as a resource of the datadog operator.
func (m *MonitorAlarm) DatadogMonitor(namespace string, labels map[string]string) (*ddog.DatadogMonitor, error) {
	query, err := m.Query()
	if err != nil {
		return nil, err
	}
	message, err := m.Message()
	if err != nil {
		return nil, err
	}
	objectLabels := map[string]string{}
	for k, v := range labels {
		objectLabels[k] = v
	}
	objectLabels[stepscalerv1alpha1.LabelPolicy] = m.spec.Policy
	objectLabels[stepscalerv1alpha1.LabelDirection] = string(m.spec.Direction)
	objectLabels[stepscalerv1alpha1.LabelRuleType] = stepscalerv1alpha1.RuleTypeStepScaling

	critical := m.thresholdString()
	noData := false
	fullWindow := true
	includeTags := true

	return &ddog.DatadogMonitor{
		ObjectMeta: metav1.ObjectMeta{
			Name:      m.spec.Name,
			Namespace: namespace,
			Labels:    objectLabels,
		},
		Spec: ddog.DatadogMonitorSpec{
			Name:    m.spec.Name,
			Message: message,
			Query:   query,
			Type:    ddog.DatadogMonitorTypeMetric,
			Tags:    m.Tags(),
			Options: ddog.DatadogMonitorOptions{
				IncludeTags:       &includeTags,
				NotifyNoData:      &noData,
				RequireFullWindow: &fullWindow,
				Thresholds: &ddog.DatadogMonitorOptionsThresholds{
					Critical: &critical,
				},
			},
		},
	}, nil
}

// scope renders a selector as a Datadog tag scope, {*} when empty.
func scope(selector map[string]string) string {
	if len(selector) == 0 {
		return "{*}"
	}
	tags := make([]string, 0, len(selector))
	for k, v := range selector {
		tags = append(tags, fmt.Sprintf("%s:%s", k, v))
	}
	sort.Strings(tags)
	return fmt.Sprintf("{%s}", strings.Join(tags, ","))
}

func window(period time.Duration) string {
	if period%time.Hour == 0 {
		return fmt.Sprintf("%dh", int64(period/time.Hour))
	}
	if period%time.Minute == 0 {
		return fmt.Sprintf("%dm", int64(period/time.Minute))
	}
	return fmt.Sprintf("%ds", int64(period/time.Second))
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
