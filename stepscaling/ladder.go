package stepscaling

import "fmt"

// Direction selects which side of the neutral interval a ladder covers.
type Direction string

const (
	Down Direction = "down"
	Up   Direction = "up"
)

// Comparison is the alarm comparison that triggers a ladder.
type Comparison string

const (
	LessThanOrEqual    Comparison = "<="
	GreaterThanOrEqual Comparison = ">="
)

// Comparison returns the alarm comparison for the direction.
func (d Direction) Comparison() Comparison {
	if d == Down {
		return LessThanOrEqual
	}
	return GreaterThanOrEqual
}

// AdjustmentRecord is one step of a ladder. Bounds are relative to the
// ladder's threshold; the outermost step is unbounded on its far side.
type AdjustmentRecord struct {
	Adjustment float64 `json:"adjustment"`
	LowerBound Bound   `json:"lowerBound"`
	UpperBound Bound   `json:"upperBound"`
}

func (r AdjustmentRecord) String() string {
	return fmt.Sprintf("[%s, %s] %+g", r.LowerBound, r.UpperBound, r.Adjustment)
}

// Ladder is the ordered set of adjustments triggered when the metric crosses
// Threshold in Direction. Adjustments run from nearest to farthest from the
// threshold.
type Ladder struct {
	Direction   Direction          `json:"direction"`
	Threshold   float64            `json:"threshold"`
	Comparison  Comparison         `json:"comparison"`
	Adjustments []AdjustmentRecord `json:"adjustments"`
}

// BuildLadder walks outward from the anchor interval to the end of the
// sequence in the given direction, re-expressing every interval relative to
// the anchor's boundary.
func BuildLadder(intervals []NormalizedInterval, anchor int, direction Direction) (Ladder, error) {
	n := len(intervals)
	if anchor < 0 || anchor >= n {
		return Ladder{}, configError(ErrInvalidAnchor, "anchor %d outside of %d intervals", anchor, n)
	}

	var threshold Bound
	switch direction {
	case Down:
		threshold = intervals[anchor].Upper
	case Up:
		threshold = intervals[anchor].Lower
	default:
		return Ladder{}, configError(ErrInvalidAnchor, "unknown direction %q", direction)
	}
	if !threshold.Bounded {
		return Ladder{}, configError(ErrAmbiguousInterval, "%s ladder anchored at %s has no finite threshold", direction, intervals[anchor])
	}
	t := threshold.Value

	ladder := Ladder{
		Direction:  direction,
		Threshold:  t,
		Comparison: direction.Comparison(),
	}
	if direction == Down {
		ladder.Adjustments = make([]AdjustmentRecord, 0, anchor+1)
		for i := anchor; i >= 0; i-- {
			lower := intervals[i].Lower.minus(t)
			if i == 0 {
				lower = Unbounded
			}
			ladder.Adjustments = append(ladder.Adjustments, AdjustmentRecord{
				Adjustment: intervals[i].Change,
				LowerBound: lower,
				UpperBound: intervals[i].Upper.minus(t),
			})
		}
		return ladder, nil
	}

	ladder.Adjustments = make([]AdjustmentRecord, 0, n-anchor)
	for i := anchor; i < n; i++ {
		upper := intervals[i].Upper.minus(t)
		if i == n-1 {
			upper = Unbounded
		}
		ladder.Adjustments = append(ladder.Adjustments, AdjustmentRecord{
			Adjustment: intervals[i].Change,
			LowerBound: intervals[i].Lower.minus(t),
			UpperBound: upper,
		})
	}
	return ladder, nil
}

// Wire configures the alarm to trigger the action and hands the action every
// adjustment in order.
func (l Ladder) Wire(alarm AlarmSink, action ActionSink) {
	for _, r := range l.Adjustments {
		action.AddAdjustment(r)
	}
	alarm.SetThreshold(l.Threshold)
	alarm.SetComparison(l.Comparison)
	alarm.OnTrigger(action)
}

// Step returns the adjustment that applies to a metric value, if the ladder's
// alarm would fire for it. Down ladders match (lower, upper], up ladders
// match [lower, upper).
func (l Ladder) Step(value float64) (int, AdjustmentRecord, bool) {
	d := value - l.Threshold
	for i, r := range l.Adjustments {
		lower, upper := r.LowerBound.asLower(), r.UpperBound.asUpper()
		switch l.Direction {
		case Down:
			if lower < d && d <= upper {
				return i, r, true
			}
		case Up:
			if lower <= d && d < upper {
				return i, r, true
			}
		}
	}
	return -1, AdjustmentRecord{}, false
}
