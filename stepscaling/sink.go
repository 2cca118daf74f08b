package stepscaling

import "time"

const (
	// EvaluationPeriod is the period every alarm evaluates its metric over.
	EvaluationPeriod = 60 * time.Second
	// EvaluationPeriods is the number of periods that must breach before an alarm fires.
	EvaluationPeriods = 1
)

// AlarmSink receives the configuration of one threshold alarm.
type AlarmSink interface {
	SetThreshold(v float64)
	SetComparison(c Comparison)
	OnTrigger(action ActionSink)
}

// ActionSink receives the ordered adjustments of one ladder.
type ActionSink interface {
	AddAdjustment(r AdjustmentRecord)
}

// SinkFactory creates the alarm and action pair for each ladder of a policy.
type SinkFactory interface {
	NewAlarm(spec AlarmSpec) AlarmSink
	NewAction(spec ActionSpec) ActionSink
}

// AlarmSpec describes an alarm before its threshold is known.
type AlarmSpec struct {
	Name              string
	Policy            string
	Description       string
	Direction         Direction
	Metric            Metric
	Statistic         Statistic
	Period            time.Duration
	EvaluationPeriods int
}

// ActionSpec carries the pass-through settings of a step scaling action.
type ActionSpec struct {
	Name                   string         `json:"name"`
	Policy                 string         `json:"policy"`
	Direction              Direction      `json:"direction"`
	AdjustmentType         AdjustmentType `json:"adjustmentType"`
	CooldownSeconds        *int32         `json:"cooldownSeconds,omitempty"`
	MinAdjustmentMagnitude *int32         `json:"minAdjustmentMagnitude,omitempty"`
	MetricAggregationType  Statistic      `json:"metricAggregationType"`
	ScalingTarget          string         `json:"scalingTarget"`
}

// RecordedAction is an action that can report what it was handed.
type RecordedAction interface {
	ActionSink
	Spec() ActionSpec
	Adjustments() []AdjustmentRecord
}

// StepAction is an in-memory ActionSink.
type StepAction struct {
	spec        ActionSpec
	adjustments []AdjustmentRecord
}

func NewStepAction(spec ActionSpec) *StepAction {
	return &StepAction{spec: spec}
}

func (a *StepAction) AddAdjustment(r AdjustmentRecord) {
	a.adjustments = append(a.adjustments, r)
}

func (a *StepAction) Spec() ActionSpec {
	return a.spec
}

// Adjustments returns a copy of the adjustments in the order they were added.
func (a *StepAction) Adjustments() []AdjustmentRecord {
	out := make([]AdjustmentRecord, len(a.adjustments))
	copy(out, a.adjustments)
	return out
}

// Alarm is an in-memory AlarmSink.
type Alarm struct {
	Spec       AlarmSpec
	Threshold  float64
	Comparison Comparison
	Actions    []ActionSink
}

func (a *Alarm) SetThreshold(v float64) {
	a.Threshold = v
}

func (a *Alarm) SetComparison(c Comparison) {
	a.Comparison = c
}

func (a *Alarm) OnTrigger(action ActionSink) {
	a.Actions = append(a.Actions, action)
}

// RecordingFactory builds in-memory alarms and actions.
type RecordingFactory struct{}

func (RecordingFactory) NewAlarm(spec AlarmSpec) AlarmSink {
	return &Alarm{Spec: spec}
}

func (RecordingFactory) NewAction(spec ActionSpec) ActionSink {
	return NewStepAction(spec)
}
