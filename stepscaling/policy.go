package stepscaling

import (
	"fmt"

	"github.com/go-logr/logr"
)

// Metric references the time series a policy's alarms watch.
type Metric struct {
	Name      string            `json:"name"`
	Selector  map[string]string `json:"selector,omitempty"`
	Statistic string            `json:"statistic"`
}

// PolicyConfig is everything needed to construct a Policy.
type PolicyConfig struct {
	Name                   string
	Metric                 Metric
	ScalingSteps           []ScalingInterval
	AdjustmentType         AdjustmentType
	CooldownSeconds        *int32
	MinAdjustmentMagnitude *int32
	// ScalingTarget identifies the resource whose capacity is adjusted. It is
	// handed to every action unmodified.
	ScalingTarget string
}

// Pair is an alarm and the action it triggers.
type Pair struct {
	Alarm  AlarmSink
	Action ActionSink
}

// Policy is a validated step scaling policy with zero, one or two ladders,
// each wired to an alarm and action from the SinkFactory it was built with.
type Policy struct {
	name      string
	intervals []NormalizedInterval
	lower     *Ladder
	upper     *Ladder
	lowerPair *Pair
	upperPair *Pair
}

// StepDecision is the adjustment a metric value would trigger.
type StepDecision struct {
	Direction  Direction
	Threshold  float64
	Step       int
	Adjustment AdjustmentRecord
}

// NewPolicy validates cfg and builds its ladders. Sinks are only created once
// every validation has passed, so a failed construction touches nothing.
func NewPolicy(cfg PolicyConfig, sinks SinkFactory, log logr.Logger) (*Policy, error) {
	p, err := newPolicy(cfg, sinks, log)
	if err != nil {
		validationFailureCounter.WithLabelValues(reason(err)).Inc()
		log.Error(err, "Rejected step scaling policy", "Policy", cfg.Name)
		return nil, err
	}
	policiesBuiltCounter.Inc()
	return p, nil
}

func newPolicy(cfg PolicyConfig, sinks SinkFactory, log logr.Logger) (*Policy, error) {
	if cfg.Metric.Name == "" {
		return nil, configError(ErrInvalidMetric, "metric name is required")
	}
	statistic, err := ParseStatistic(cfg.Metric.Statistic)
	if err != nil {
		return nil, err
	}
	adjustmentType, err := ParseAdjustmentType(string(cfg.AdjustmentType))
	if err != nil {
		return nil, err
	}
	if cfg.CooldownSeconds != nil && *cfg.CooldownSeconds < 0 {
		return nil, configError(ErrInvalidCooldown, "got %d", *cfg.CooldownSeconds)
	}
	if cfg.MinAdjustmentMagnitude != nil && adjustmentType != PercentChangeInCapacity {
		log.V(1).Info("minAdjustmentMagnitude only applies to PercentChangeInCapacity", "Policy", cfg.Name, "AdjustmentType", adjustmentType)
	}

	intervals, err := Normalize(cfg.ScalingSteps, adjustmentType.IsAbsolute())
	if err != nil {
		return nil, err
	}
	anchors := LocateAnchors(intervals)

	p := &Policy{name: cfg.Name, intervals: intervals}
	if anchors.Lower != nil {
		l, err := BuildLadder(intervals, *anchors.Lower, Down)
		if err != nil {
			return nil, err
		}
		p.lower = &l
	}
	if anchors.Upper != nil {
		l, err := BuildLadder(intervals, *anchors.Upper, Up)
		if err != nil {
			return nil, err
		}
		p.upper = &l
	}
	if p.lower == nil && p.upper == nil {
		log.Info("Step scaling policy has no adjustments, no alarms created", "Policy", cfg.Name)
		return p, nil
	}

	for _, l := range []*Ladder{p.lower, p.upper} {
		if l == nil {
			continue
		}
		alarm := sinks.NewAlarm(AlarmSpec{
			Name:              ladderName(cfg.Name, l.Direction),
			Policy:            cfg.Name,
			Description:       ladderDescription(l.Direction),
			Direction:         l.Direction,
			Metric:            cfg.Metric,
			Statistic:         statistic,
			Period:            EvaluationPeriod,
			EvaluationPeriods: EvaluationPeriods,
		})
		action := sinks.NewAction(ActionSpec{
			Name:                   ladderName(cfg.Name, l.Direction),
			Policy:                 cfg.Name,
			Direction:              l.Direction,
			AdjustmentType:         adjustmentType,
			CooldownSeconds:        cfg.CooldownSeconds,
			MinAdjustmentMagnitude: cfg.MinAdjustmentMagnitude,
			MetricAggregationType:  statistic,
			ScalingTarget:          cfg.ScalingTarget,
		})
		l.Wire(alarm, action)
		laddersBuiltCounter.WithLabelValues(string(l.Direction)).Inc()
		log.Info("Wired ladder", "Policy", cfg.Name, "Direction", l.Direction, "Threshold", l.Threshold, "Steps", len(l.Adjustments))

		pair := &Pair{Alarm: alarm, Action: action}
		if l.Direction == Down {
			p.lowerPair = pair
		} else {
			p.upperPair = pair
		}
	}
	return p, nil
}

func ladderName(policy string, d Direction) string {
	if d == Down {
		return fmt.Sprintf("%s-lower", policy)
	}
	return fmt.Sprintf("%s-upper", policy)
}

func ladderDescription(d Direction) string {
	if d == Down {
		return "Lower threshold scaling alarm"
	}
	return "Upper threshold scaling alarm"
}

func (p *Policy) Name() string {
	return p.name
}

// Intervals returns a copy of the normalized partition.
func (p *Policy) Intervals() []NormalizedInterval {
	out := make([]NormalizedInterval, len(p.intervals))
	copy(out, p.intervals)
	return out
}

// LowerLadder is nil when the policy never decreases capacity.
func (p *Policy) LowerLadder() *Ladder {
	return copyLadder(p.lower)
}

// UpperLadder is nil when the policy never increases capacity.
func (p *Policy) UpperLadder() *Ladder {
	return copyLadder(p.upper)
}

func (p *Policy) LowerPair() *Pair {
	return p.lowerPair
}

func (p *Policy) UpperPair() *Pair {
	return p.upperPair
}

// Evaluate reports which step a metric value would trigger. When both ladders
// share a threshold and the value sits on it, the increase wins.
func (p *Policy) Evaluate(value float64) (StepDecision, bool) {
	for _, l := range []*Ladder{p.upper, p.lower} {
		if l == nil {
			continue
		}
		if i, r, ok := l.Step(value); ok {
			return StepDecision{Direction: l.Direction, Threshold: l.Threshold, Step: i, Adjustment: r}, true
		}
	}
	return StepDecision{}, false
}

func copyLadder(l *Ladder) *Ladder {
	if l == nil {
		return nil
	}
	c := *l
	c.Adjustments = make([]AdjustmentRecord, len(l.Adjustments))
	copy(c.Adjustments, l.Adjustments)
	return &c
}
