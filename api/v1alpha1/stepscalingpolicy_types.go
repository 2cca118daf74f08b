/*


Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// StepScalingPolicySpec defines the desired state of StepScalingPolicy
// +k8s:openapi-gen=true
type StepScalingPolicySpec struct {
	// Target identifies the resource whose capacity is adjusted, e.g. deployment/web.
	// It is copied onto every rendered alarm.
	Target string `json:"target"`

	Metric MetricSource `json:"metric"`

	// +kubebuilder:validation:Enum=ChangeInCapacity;PercentChangeInCapacity;ExactCapacity
	AdjustmentType string `json:"adjustmentType,omitempty"`

	// +kubebuilder:validation:Minimum=0
	CooldownSeconds *int32 `json:"cooldownSeconds,omitempty"`

	// MinAdjustmentMagnitude only applies to PercentChangeInCapacity.
	MinAdjustmentMagnitude *int32 `json:"minAdjustmentMagnitude,omitempty"`

	// +kubebuilder:validation:MinItems=2
	Steps []ScalingStep `json:"steps"`

	Alerting AlertingSpec `json:"alerting,omitempty"`
}

// MetricSource is the metric the policy's alarms evaluate.
type MetricSource struct {
	Name     string            `json:"name"`
	Selector map[string]string `json:"selector,omitempty"`
	// +kubebuilder:validation:Enum=Average;Minimum;Maximum
	Statistic string `json:"statistic,omitempty"`
}

// ScalingStep maps a range of metric values to a capacity change. A missing
// bound is inferred from the neighbouring steps, or extends to infinity for the
// first and last step.
type ScalingStep struct {
	Lower  *float64 `json:"lower,omitempty"`
	Upper  *float64 `json:"upper,omitempty"`
	Change float64  `json:"change"`
}

type AlertingSpec struct {
	// Labels are added to every alerting rule.
	Labels map[string]string `json:"labels,omitempty"`

	// Datadog also renders each alarm as a DatadogMonitor.
	Datadog bool `json:"datadog,omitempty"`

	// Tags are added to every DatadogMonitor.
	Tags []string `json:"tags,omitempty"`
}

// StepScalingPolicyStatus defines the observed state of StepScalingPolicy
type StepScalingPolicyStatus struct {
	ObservedGeneration int64              `json:"observedGeneration,omitempty"`
	Ladders            []LadderStatus     `json:"ladders,omitempty"`
	Conditions         []metav1.Condition `json:"conditions,omitempty"`

	// CurrentValue is the metric value read on the last sync, when a
	// prometheus address is configured.
	CurrentValue string `json:"currentValue,omitempty"`
	// Decision is the step CurrentValue triggers.
	Decision string `json:"decision,omitempty"`
}

type LadderStatus struct {
	Direction string `json:"direction"`
	Threshold string `json:"threshold"`
	Steps     int32  `json:"steps"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:resource:scope=Namespaced,shortName=ssp
// +kubebuilder:printcolumn:name="Target",type="string",JSONPath=".spec.target"
// +kubebuilder:printcolumn:name="Metric",type="string",JSONPath=".spec.metric.name"

// StepScalingPolicy is the Schema for the stepscalingpolicies API
type StepScalingPolicy struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   StepScalingPolicySpec   `json:"spec,omitempty"`
	Status StepScalingPolicyStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// StepScalingPolicyList contains a list of StepScalingPolicy
type StepScalingPolicyList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []StepScalingPolicy `json:"items"`
}

func init() {
	SchemeBuilder.Register(&StepScalingPolicy{}, &StepScalingPolicyList{})
}

func (p *StepScalingPolicy) IsDeleted() bool {
	return !p.ObjectMeta.DeletionTimestamp.IsZero()
}

func (p *StepScalingPolicy) IsFinalized() bool {
	for _, item := range p.ObjectMeta.Finalizers {
		if item == FinalizerStepScalingPolicy {
			return false
		}
	}
	return true
}

func (p *StepScalingPolicy) Finalize() {
	finalizers := []string{}
	for _, item := range p.ObjectMeta.Finalizers {
		if item == FinalizerStepScalingPolicy {
			continue
		}
		finalizers = append(finalizers, item)
	}
	p.ObjectMeta.Finalizers = finalizers
}

func (p *StepScalingPolicy) AddFinalizer() {
	p.ObjectMeta.Finalizers = append(p.ObjectMeta.Finalizers, FinalizerStepScalingPolicy)
}
