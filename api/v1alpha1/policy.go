package v1alpha1

import (
	"errors"
	"fmt"
	"io"

	"go.medium.engineering/stepscaler/stepscaling"
	utilyaml "k8s.io/apimachinery/pkg/util/yaml"
)

var ErrUnexpectedKind = errors.New("unexpected kind")

// SetPolicyDefaults fills in the statistic and adjustment type when omitted.
func SetPolicyDefaults(p *StepScalingPolicy) {
	if p.Spec.Metric.Statistic == "" {
		p.Spec.Metric.Statistic = DefaultStatistic
	}
	if p.Spec.AdjustmentType == "" {
		p.Spec.AdjustmentType = DefaultAdjustmentType
	}
}

// Config converts the spec into the input of stepscaling.NewPolicy. Nothing
// is validated here.
func (p *StepScalingPolicy) Config() stepscaling.PolicyConfig {
	steps := make([]stepscaling.ScalingInterval, len(p.Spec.Steps))
	for i, s := range p.Spec.Steps {
		steps[i] = stepscaling.ScalingInterval{
			Lower:  copyFloat(s.Lower),
			Upper:  copyFloat(s.Upper),
			Change: s.Change,
		}
	}
	var selector map[string]string
	if p.Spec.Metric.Selector != nil {
		selector = make(map[string]string, len(p.Spec.Metric.Selector))
		for k, v := range p.Spec.Metric.Selector {
			selector[k] = v
		}
	}
	return stepscaling.PolicyConfig{
		Name: p.Name,
		Metric: stepscaling.Metric{
			Name:      p.Spec.Metric.Name,
			Selector:  selector,
			Statistic: p.Spec.Metric.Statistic,
		},
		ScalingSteps:           steps,
		AdjustmentType:         stepscaling.AdjustmentType(p.Spec.AdjustmentType),
		CooldownSeconds:        copyInt32(p.Spec.CooldownSeconds),
		MinAdjustmentMagnitude: copyInt32(p.Spec.MinAdjustmentMagnitude),
		ScalingTarget:          p.Spec.Target,
	}
}

// DecodePolicies reads a stream of YAML or JSON documents. Empty documents are
// skipped and every other document must be a StepScalingPolicy.
func DecodePolicies(r io.Reader) ([]*StepScalingPolicy, error) {
	decoder := utilyaml.NewYAMLOrJSONDecoder(r, 4096)
	policies := []*StepScalingPolicy{}
	for i := 0; ; i++ {
		p := &StepScalingPolicy{}
		if err := decoder.Decode(p); err != nil {
			if errors.Is(err, io.EOF) {
				return policies, nil
			}
			return nil, fmt.Errorf("document %d: %w", i, err)
		}
		if p.Kind == "" && p.Name == "" {
			continue
		}
		if p.Kind != "StepScalingPolicy" {
			return nil, fmt.Errorf("document %d: %w %q", i, ErrUnexpectedKind, p.Kind)
		}
		if p.APIVersion != "" && p.APIVersion != GroupVersion.String() {
			return nil, fmt.Errorf("document %d: %w %s/%s", i, ErrUnexpectedKind, p.APIVersion, p.Kind)
		}
		SetPolicyDefaults(p)
		policies = append(policies, p)
	}
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func copyInt32(v *int32) *int32 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
