package stepscaling

import (
	"fmt"
	"sort"
)

// ScalingInterval is a user-authored range of metric values mapped to a
// capacity change. Either bound may be omitted and is then inferred from the
// neighbouring intervals.
type ScalingInterval struct {
	Lower  *float64 `json:"lower,omitempty"`
	Upper  *float64 `json:"upper,omitempty"`
	Change float64  `json:"change"`
}

// NormalizedInterval is a scaling interval with both bounds resolved. Only the
// first interval of a sequence may have an unbounded Lower and only the last
// an unbounded Upper.
type NormalizedInterval struct {
	Lower  Bound
	Upper  Bound
	Change float64
	// Neutral marks the interval where no adjustment is made.
	Neutral bool
}

func (i NormalizedInterval) String() string {
	if i.Neutral {
		return fmt.Sprintf("[%s, %s] neutral", i.Lower, i.Upper)
	}
	return fmt.Sprintf("[%s, %s] %+g", i.Lower, i.Upper, i.Change)
}

// Normalize orders the raw intervals, infers missing bounds, fills gaps with
// neutral intervals and validates that the result is a gapless,
// non-overlapping partition. When absolute is false the changes must also be
// non-decreasing, with a neutral interval between decreases and increases.
// The input is never modified.
func Normalize(raw []ScalingInterval, absolute bool) ([]NormalizedInterval, error) {
	if len(raw) < 2 {
		return nil, configError(ErrTooFewIntervals, "got %d, need at least 2", len(raw))
	}

	intervals := make([]NormalizedInterval, len(raw))
	for i, r := range raw {
		if r.Lower == nil && r.Upper == nil {
			return nil, configError(ErrAmbiguousInterval, "interval %d has neither a lower nor an upper bound", i)
		}
		intervals[i] = NormalizedInterval{
			Lower:   boundFromPtr(r.Lower),
			Upper:   boundFromPtr(r.Upper),
			Change:  r.Change,
			Neutral: !absolute && r.Change == 0,
		}
	}

	sort.SliceStable(intervals, func(a, b int) bool {
		return intervalLess(intervals[a], intervals[b])
	})

	for propagateBounds(intervals) {
	}

	last := len(intervals) - 1
	for i, iv := range intervals {
		if (!iv.Lower.Bounded && i != 0) || (!iv.Upper.Bounded && i != last) {
			return nil, configError(ErrAmbiguousInterval, "could not determine the bounds of %s", iv)
		}
	}

	if err := validatePartition(intervals); err != nil {
		return nil, err
	}

	intervals = mergeNeutral(fillGaps(intervals))

	if absolute {
		if n := countNeutral(intervals); n > 1 {
			return nil, configError(ErrAmbiguousInterval, "found %d separate no-change regions, at most 1 is allowed", n)
		}
		return intervals, nil
	}

	for i := 1; i < len(intervals); i++ {
		if intervals[i].Change < intervals[i-1].Change {
			return nil, configError(ErrNonMonotonicAdjustment, "%s follows %s", intervals[i], intervals[i-1])
		}
	}
	return splitAtZero(intervals), nil
}

// intervalLess orders by whichever bound is present, lower first. Ties put
// intervals open downwards first and intervals open upwards last.
func intervalLess(a, b NormalizedInterval) bool {
	ka, kb := sortKey(a), sortKey(b)
	if ka != kb {
		return ka < kb
	}
	if a.Lower.Bounded != b.Lower.Bounded {
		return !a.Lower.Bounded
	}
	return a.Upper.asUpper() < b.Upper.asUpper()
}

func sortKey(i NormalizedInterval) float64 {
	if i.Lower.Bounded {
		return i.Lower.Value
	}
	return i.Upper.Value
}

// propagateBounds copies known bounds into neighbouring intervals that lack
// them, and reports whether anything changed.
func propagateBounds(intervals []NormalizedInterval) bool {
	changed := false
	for i := 0; i < len(intervals)-1; i++ {
		if intervals[i].Upper.Bounded && !intervals[i+1].Lower.Bounded {
			intervals[i+1].Lower = intervals[i].Upper
			changed = true
		}
	}
	for i := len(intervals) - 1; i >= 1; i-- {
		if intervals[i].Lower.Bounded && !intervals[i-1].Upper.Bounded {
			intervals[i-1].Upper = intervals[i].Lower
			changed = true
		}
	}
	return changed
}

func validatePartition(intervals []NormalizedInterval) error {
	for i, iv := range intervals {
		lower, upper := iv.Lower.asLower(), iv.Upper.asUpper()
		if lower > upper || (lower == upper && !iv.Neutral) {
			return configError(ErrOverlappingIntervals, "interval %s is empty", iv)
		}
		if i > 0 && intervals[i-1].Upper.asUpper() > lower {
			return configError(ErrOverlappingIntervals, "%s and %s overlap", intervals[i-1], iv)
		}
	}
	return nil
}

// fillGaps inserts a neutral interval wherever two neighbours do not touch.
func fillGaps(intervals []NormalizedInterval) []NormalizedInterval {
	out := make([]NormalizedInterval, 0, len(intervals))
	for i, iv := range intervals {
		if i > 0 {
			prev := intervals[i-1]
			if prev.Upper.Value < iv.Lower.Value {
				out = append(out, NormalizedInterval{Lower: prev.Upper, Upper: iv.Lower, Neutral: true})
			}
		}
		out = append(out, iv)
	}
	return out
}

func mergeNeutral(intervals []NormalizedInterval) []NormalizedInterval {
	out := make([]NormalizedInterval, 0, len(intervals))
	for _, iv := range intervals {
		if n := len(out); n > 0 && out[n-1].Neutral && iv.Neutral {
			out[n-1].Upper = iv.Upper
			continue
		}
		out = append(out, iv)
	}
	return out
}

// splitAtZero inserts a zero-width neutral interval where changes go straight
// from decreasing to increasing. Both ladders are then cut at that boundary.
func splitAtZero(intervals []NormalizedInterval) []NormalizedInterval {
	for i := 1; i < len(intervals); i++ {
		if intervals[i-1].Change < 0 && intervals[i].Change > 0 {
			pivot := intervals[i].Lower
			out := make([]NormalizedInterval, 0, len(intervals)+1)
			out = append(out, intervals[:i]...)
			out = append(out, NormalizedInterval{Lower: pivot, Upper: pivot, Neutral: true})
			return append(out, intervals[i:]...)
		}
	}
	return intervals
}

func countNeutral(intervals []NormalizedInterval) int {
	n := 0
	for _, iv := range intervals {
		if iv.Neutral {
			n++
		}
	}
	return n
}
