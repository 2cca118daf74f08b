package stepscaling

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

var fiveStep = []NormalizedInterval{
	step(Unbounded, At(-5), -3),
	step(At(-5), At(0), -1),
	neutral(At(0), At(5)),
	step(At(5), At(9), 1),
	step(At(9), Unbounded, 2),
}

func TestBuildLadder(t *testing.T) {
	for _, test := range []struct {
		Name      string
		Intervals []NormalizedInterval
		Anchor    int
		Direction Direction
		Expected  Ladder
	}{
		{
			Name: "SingleDown",
			Intervals: []NormalizedInterval{
				step(Unbounded, At(10), -1),
				neutral(At(10), At(50)),
				step(At(50), Unbounded, 3),
			},
			Anchor:    0,
			Direction: Down,
			Expected: Ladder{
				Direction:  Down,
				Threshold:  10,
				Comparison: LessThanOrEqual,
				Adjustments: []AdjustmentRecord{
					{Adjustment: -1, LowerBound: Unbounded, UpperBound: At(0)},
				},
			},
		},
		{
			Name: "SingleUp",
			Intervals: []NormalizedInterval{
				step(Unbounded, At(10), -1),
				neutral(At(10), At(50)),
				step(At(50), Unbounded, 3),
			},
			Anchor:    2,
			Direction: Up,
			Expected: Ladder{
				Direction:  Up,
				Threshold:  50,
				Comparison: GreaterThanOrEqual,
				Adjustments: []AdjustmentRecord{
					{Adjustment: 3, LowerBound: At(0), UpperBound: Unbounded},
				},
			},
		},
		{
			Name:      "MultiDown",
			Intervals: fiveStep,
			Anchor:    1,
			Direction: Down,
			Expected: Ladder{
				Direction:  Down,
				Threshold:  0,
				Comparison: LessThanOrEqual,
				Adjustments: []AdjustmentRecord{
					{Adjustment: -1, LowerBound: At(-5), UpperBound: At(0)},
					{Adjustment: -3, LowerBound: Unbounded, UpperBound: At(-5)},
				},
			},
		},
		{
			Name:      "MultiUp",
			Intervals: fiveStep,
			Anchor:    3,
			Direction: Up,
			Expected: Ladder{
				Direction:  Up,
				Threshold:  5,
				Comparison: GreaterThanOrEqual,
				Adjustments: []AdjustmentRecord{
					{Adjustment: 1, LowerBound: At(0), UpperBound: At(4)},
					{Adjustment: 2, LowerBound: At(4), UpperBound: Unbounded},
				},
			},
		},
		{
			Name: "BoundedOuterIntervalsStillOpen",
			Intervals: []NormalizedInterval{
				step(At(0), At(10), 1),
				step(At(10), At(100), 3),
			},
			Anchor:    0,
			Direction: Up,
			Expected: Ladder{
				Direction:  Up,
				Threshold:  0,
				Comparison: GreaterThanOrEqual,
				Adjustments: []AdjustmentRecord{
					{Adjustment: 1, LowerBound: At(0), UpperBound: At(10)},
					{Adjustment: 3, LowerBound: At(10), UpperBound: Unbounded},
				},
			},
		},
	} {
		t.Run(test.Name, func(t *testing.T) {
			actual, err := BuildLadder(test.Intervals, test.Anchor, test.Direction)
			assert.NoError(t, err)
			assert.Equal(t, test.Expected, actual)
		})
	}
}

func TestBuildLadderErrors(t *testing.T) {
	for _, test := range []struct {
		Name      string
		Intervals []NormalizedInterval
		Anchor    int
		Direction Direction
		Expected  error
	}{
		{
			Name:      "AnchorTooLow",
			Intervals: fiveStep,
			Anchor:    -1,
			Direction: Down,
			Expected:  ErrInvalidAnchor,
		},
		{
			Name:      "AnchorTooHigh",
			Intervals: fiveStep,
			Anchor:    5,
			Direction: Up,
			Expected:  ErrInvalidAnchor,
		},
		{
			Name:      "UnknownDirection",
			Intervals: fiveStep,
			Anchor:    1,
			Direction: Direction("sideways"),
			Expected:  ErrInvalidAnchor,
		},
		{
			Name:      "NoThreshold",
			Intervals: fiveStep,
			Anchor:    4,
			Direction: Down,
			Expected:  ErrAmbiguousInterval,
		},
	} {
		t.Run(test.Name, func(t *testing.T) {
			_, err := BuildLadder(test.Intervals, test.Anchor, test.Direction)
			assert.ErrorIs(t, err, test.Expected)
		})
	}
}

func TestLadderStep(t *testing.T) {
	down, err := BuildLadder(fiveStep, 1, Down)
	assert.NoError(t, err)
	up, err := BuildLadder(fiveStep, 3, Up)
	assert.NoError(t, err)

	for _, test := range []struct {
		Name       string
		Ladder     Ladder
		Value      float64
		Step       int
		Adjustment float64
		Fires      bool
	}{
		{Name: "DownAtThreshold", Ladder: down, Value: 0, Step: 0, Adjustment: -1, Fires: true},
		{Name: "DownAtInnerBoundary", Ladder: down, Value: -5, Step: 1, Adjustment: -3, Fires: true},
		{Name: "DownInsideFirstStep", Ladder: down, Value: -4.5, Step: 0, Adjustment: -1, Fires: true},
		{Name: "DownFarBelow", Ladder: down, Value: -1000, Step: 1, Adjustment: -3, Fires: true},
		{Name: "DownAbove", Ladder: down, Value: 0.5},
		{Name: "UpAtThreshold", Ladder: up, Value: 5, Step: 0, Adjustment: 1, Fires: true},
		{Name: "UpAtInnerBoundary", Ladder: up, Value: 9, Step: 1, Adjustment: 2, Fires: true},
		{Name: "UpFarAbove", Ladder: up, Value: 1e9, Step: 1, Adjustment: 2, Fires: true},
		{Name: "UpBelow", Ladder: up, Value: 4.99},
	} {
		t.Run(test.Name, func(t *testing.T) {
			i, r, ok := test.Ladder.Step(test.Value)
			assert.Equal(t, test.Fires, ok)
			if test.Fires {
				assert.Equal(t, test.Step, i)
				assert.Equal(t, test.Adjustment, r.Adjustment)
			}
		})
	}
}

type recordingAction struct {
	records []AdjustmentRecord
}

func (a *recordingAction) AddAdjustment(r AdjustmentRecord) {
	a.records = append(a.records, r)
}

func TestLadderWire(t *testing.T) {
	ladder, err := BuildLadder(fiveStep, 3, Up)
	assert.NoError(t, err)

	alarm := &Alarm{}
	action := &recordingAction{}
	ladder.Wire(alarm, action)

	assert.Equal(t, 5.0, alarm.Threshold)
	assert.Equal(t, GreaterThanOrEqual, alarm.Comparison)
	assert.Equal(t, []ActionSink{action}, alarm.Actions)
	assert.Equal(t, ladder.Adjustments, action.records)
}

func TestAdjustmentRecordJSON(t *testing.T) {
	r := AdjustmentRecord{Adjustment: -3, LowerBound: Unbounded, UpperBound: At(-5)}
	b, err := json.Marshal(r)
	assert.NoError(t, err)
	assert.JSONEq(t, `{"adjustment":-3,"lowerBound":null,"upperBound":-5}`, string(b))

	var decoded AdjustmentRecord
	assert.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, r, decoded)
	assert.Equal(t, "[unbounded, -5] -3", r.String())
}
