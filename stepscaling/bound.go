package stepscaling

import (
	"encoding/json"
	"math"
	"strconv"
)

// Bound is one end of an interval. The zero value is unbounded, which means
// -inf when used as a lower bound and +inf when used as an upper bound.
type Bound struct {
	Value   float64
	Bounded bool
}

// Unbounded is the open end of an interval.
var Unbounded = Bound{}

// At returns a finite bound.
func At(v float64) Bound {
	return Bound{Value: v, Bounded: true}
}

func boundFromPtr(p *float64) Bound {
	if p == nil {
		return Unbounded
	}
	return At(*p)
}

// Ptr returns the bound value, or nil when unbounded.
func (b Bound) Ptr() *float64 {
	if !b.Bounded {
		return nil
	}
	v := b.Value
	return &v
}

func (b Bound) asLower() float64 {
	if !b.Bounded {
		return math.Inf(-1)
	}
	return b.Value
}

func (b Bound) asUpper() float64 {
	if !b.Bounded {
		return math.Inf(1)
	}
	return b.Value
}

func (b Bound) minus(t float64) Bound {
	if !b.Bounded {
		return b
	}
	return At(b.Value - t)
}

func (b Bound) String() string {
	if !b.Bounded {
		return "unbounded"
	}
	return strconv.FormatFloat(b.Value, 'g', -1, 64)
}

// MarshalJSON encodes an unbounded bound as null.
func (b Bound) MarshalJSON() ([]byte, error) {
	if !b.Bounded {
		return []byte("null"), nil
	}
	return json.Marshal(b.Value)
}

func (b *Bound) UnmarshalJSON(data []byte) error {
	var v *float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*b = boundFromPtr(v)
	return nil
}
