package stepscaling

import "strings"

// Statistic is the aggregation applied to the metric over each evaluation
// period. It doubles as the step action's metric aggregation type.
type Statistic string

const (
	Average Statistic = "Average"
	Minimum Statistic = "Minimum"
	Maximum Statistic = "Maximum"
)

// ParseStatistic accepts average, minimum and maximum in any case, and their
// short forms avg, min and max.
func ParseStatistic(s string) (Statistic, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "average", "avg":
		return Average, nil
	case "minimum", "min":
		return Minimum, nil
	case "maximum", "max":
		return Maximum, nil
	}
	return "", configError(ErrUnsupportedStatistic, "%q is not one of Average, Minimum or Maximum", s)
}

// AdjustmentType selects how the change of an interval is applied to the
// current capacity.
type AdjustmentType string

const (
	// ChangeInCapacity adds the change to the current capacity.
	ChangeInCapacity AdjustmentType = "ChangeInCapacity"
	// PercentChangeInCapacity adds the change as a percentage of current capacity.
	PercentChangeInCapacity AdjustmentType = "PercentChangeInCapacity"
	// ExactCapacity sets the capacity to the change.
	ExactCapacity AdjustmentType = "ExactCapacity"
)

// ParseAdjustmentType accepts the canonical names and the aliases delta,
// percent and absolute. The empty string means ChangeInCapacity.
func ParseAdjustmentType(s string) (AdjustmentType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "changeincapacity", "delta":
		return ChangeInCapacity, nil
	case "percentchangeincapacity", "percent":
		return PercentChangeInCapacity, nil
	case "exactcapacity", "absolute", "exact":
		return ExactCapacity, nil
	}
	return "", configError(ErrUnsupportedAdjustmentType, "%q", s)
}

// IsAbsolute is true when changes are capacity targets rather than deltas.
func (t AdjustmentType) IsAbsolute() bool {
	return t == ExactCapacity
}
