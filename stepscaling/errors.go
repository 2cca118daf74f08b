package stepscaling

import (
	"errors"
	"fmt"
)

// Configuration errors. Every failure of this package is one of these,
// returned wrapped in a *ConfigError.
var (
	ErrTooFewIntervals           = errors.New("too few intervals")
	ErrAmbiguousInterval         = errors.New("gap or ambiguous interval")
	ErrOverlappingIntervals      = errors.New("overlapping intervals")
	ErrNonMonotonicAdjustment    = errors.New("adjustments must be monotonic around zero")
	ErrUnsupportedStatistic      = errors.New("unsupported statistic")
	ErrUnsupportedAdjustmentType = errors.New("unsupported adjustment type")
	ErrInvalidAnchor             = errors.New("invalid ladder anchor")
	ErrInvalidCooldown           = errors.New("cooldown must not be negative")
	ErrInvalidMetric             = errors.New("invalid metric")
)

// ConfigError is a construction-time validation failure.
type ConfigError struct {
	Kind   error
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Reason == "" {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return e.Kind
}

func configError(kind error, format string, args ...interface{}) error {
	return &ConfigError{Kind: kind, Reason: fmt.Sprintf(format, args...)}
}

// reason is the metrics label for an error.
func reason(err error) string {
	switch {
	case errors.Is(err, ErrTooFewIntervals):
		return "too_few_intervals"
	case errors.Is(err, ErrAmbiguousInterval):
		return "ambiguous_interval"
	case errors.Is(err, ErrOverlappingIntervals):
		return "overlapping_intervals"
	case errors.Is(err, ErrNonMonotonicAdjustment):
		return "non_monotonic_adjustment"
	case errors.Is(err, ErrUnsupportedStatistic):
		return "unsupported_statistic"
	case errors.Is(err, ErrUnsupportedAdjustmentType):
		return "unsupported_adjustment_type"
	case errors.Is(err, ErrInvalidAnchor):
		return "invalid_anchor"
	case errors.Is(err, ErrInvalidCooldown):
		return "invalid_cooldown"
	case errors.Is(err, ErrInvalidMetric):
		return "invalid_metric"
	}
	return "unknown"
}
