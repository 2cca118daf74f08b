package stepscaling

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFanout(t *testing.T) {
	first, second := &factoryLog{}, &factoryLog{}
	sinks := Fanout(first, second)

	alarm := sinks.NewAlarm(AlarmSpec{Name: "web-upper", Direction: Up})
	action := sinks.NewAction(ActionSpec{Name: "web-upper", Direction: Up})
	ladder := Ladder{
		Direction:  Up,
		Threshold:  50,
		Comparison: GreaterThanOrEqual,
		Adjustments: []AdjustmentRecord{
			{Adjustment: 2, LowerBound: At(0), UpperBound: At(30)},
			{Adjustment: 4, LowerBound: At(30), UpperBound: Unbounded},
		},
	}
	ladder.Wire(alarm, action)

	for _, f := range []*factoryLog{first, second} {
		if !assert.Len(t, f.alarms, 1) || !assert.Len(t, f.actions, 1) {
			continue
		}
		a := f.alarms[0]
		assert.Equal(t, "web-upper", a.Spec.Name)
		assert.Equal(t, 50.0, a.Threshold)
		assert.Equal(t, GreaterThanOrEqual, a.Comparison)
		// each alarm triggers the action of its own factory
		assert.Equal(t, []ActionSink{f.actions[0]}, a.Actions)
		assert.Equal(t, ladder.Adjustments, f.actions[0].Adjustments())
	}
}

type factoryLog struct {
	alarms  []*Alarm
	actions []*StepAction
}

func (f *factoryLog) NewAlarm(spec AlarmSpec) AlarmSink {
	a := &Alarm{Spec: spec}
	f.alarms = append(f.alarms, a)
	return a
}

func (f *factoryLog) NewAction(spec ActionSpec) ActionSink {
	a := NewStepAction(spec)
	f.actions = append(f.actions, a)
	return a
}
