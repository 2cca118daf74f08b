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

package controllers

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-logr/logr"
	monitoringv1 "github.com/prometheus-operator/prometheus-operator/pkg/apis/monitoring/v1"
	stepscalerv1alpha1 "go.medium.engineering/stepscaler/api/v1alpha1"
	"go.medium.engineering/stepscaler/config"
	"go.medium.engineering/stepscaler/controllers/utils"
	"go.medium.engineering/stepscaler/datadog"
	"go.medium.engineering/stepscaler/plan"
	"go.medium.engineering/stepscaler/prometheus"
	"go.medium.engineering/stepscaler/stepscaling"
	"k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/api/meta"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/controller"
	"sigs.k8s.io/controller-runtime/pkg/controller/controllerutil"
)

// StepScalingPolicyReconciler renders StepScalingPolicies as alerting rules
// and, when enabled, DatadogMonitors.
type StepScalingPolicyReconciler struct {
	client.Client
	Log    logr.Logger
	Scheme *runtime.Scheme
	Config config.Config
	// Metrics is optional. When set, the status reports the step the
	// current metric value triggers.
	Metrics MetricReader
}

type MetricReader interface {
	CurrentValue(ctx context.Context, metric stepscaling.Metric, t time.Time) (float64, bool, error)
}

// +kubebuilder:rbac:groups=stepscaler.medium.engineering,resources=stepscalingpolicies,verbs=get;list;watch;update;patch
// +kubebuilder:rbac:groups=stepscaler.medium.engineering,resources=stepscalingpolicies/status,verbs=get;update;patch
// +kubebuilder:rbac:groups=monitoring.coreos.com,resources=prometheusrules,verbs=get;list;watch;create;update;patch;delete
// +kubebuilder:rbac:groups=datadoghq.com,resources=datadogmonitors,verbs=get;list;watch;create;update;patch;delete

func (r *StepScalingPolicyReconciler) Reconcile(ctx context.Context, req ctrl.Request) (ctrl.Result, error) {
	reqLogger := r.Log.WithValues("Request.Namespace", req.Namespace, "Request.Name", req.Name)

	instance := &stepscalerv1alpha1.StepScalingPolicy{}
	err := r.Client.Get(ctx, req.NamespacedName, instance)
	if err != nil {
		if errors.IsNotFound(err) {
			return ctrl.Result{}, nil
		}
		return ctrl.Result{}, err
	}
	stepscalerv1alpha1.SetPolicyDefaults(instance)

	applier := plan.NewClusterApplier(r.Client, reqLogger)

	if instance.IsDeleted() {
		if instance.IsFinalized() {
			return ctrl.Result{}, nil
		}
		deleteRules := &plan.DeleteStepScalingRules{
			Policy:    instance.Name,
			Namespace: instance.Namespace,
		}
		if r.Config.DatadogEnabled {
			deleteRules.MonitorNamespace = r.Config.DatadogNamespace
		}
		if err := applier.Apply(ctx, deleteRules); err != nil {
			reqLogger.Error(err, "Failed to delete step scaling rules")
			return ctrl.Result{}, err
		}
		invalidPolicies.DeleteLabelValues(instance.Namespace, instance.Name)
		instance.Finalize()
		return ctrl.Result{}, r.Client.Update(ctx, instance)
	}

	if instance.IsFinalized() {
		instance.AddFinalizer()
		return ctrl.Result{Requeue: true}, r.Client.Update(ctx, instance)
	}

	rules := prometheus.NewRuleFactory(mergeLabels(r.Config.PrometheusRuleLabels, instance.Spec.Alerting.Labels))
	monitors := datadog.NewMonitorFactory(append(append([]string{}, r.Config.DatadogTags...), instance.Spec.Alerting.Tags...))
	sinks := stepscaling.SinkFactory(rules)
	withMonitors := r.Config.DatadogEnabled && instance.Spec.Alerting.Datadog
	if withMonitors {
		sinks = stepscaling.Fanout(rules, monitors)
	}

	policy, err := stepscaling.NewPolicy(instance.Config(), sinks, reqLogger)
	if err != nil {
		// Retrying won't fix the policy, wait for the next change.
		reqLogger.Info("Invalid policy", "Error", err.Error())
		invalidPolicies.WithLabelValues(instance.Namespace, instance.Name).Set(1)
		instance.Status.ObservedGeneration = instance.Generation
		instance.Status.Ladders = nil
		r.setReady(instance, metav1.ConditionFalse, stepscalerv1alpha1.ReasonInvalidPolicy, err.Error())
		return ctrl.Result{}, r.updateStatus(ctx, reqLogger, instance)
	}

	invalidPolicies.WithLabelValues(instance.Namespace, instance.Name).Set(0)

	start := time.Now()
	plans, err := r.syncPlans(instance, rules, monitors, withMonitors)
	if err == nil {
		err = applier.Apply(ctx, plan.All(plans...))
	}
	instance.Status.ObservedGeneration = instance.Generation
	instance.Status.Ladders = ladderStatus(policy)
	if err != nil {
		syncDuration.WithLabelValues("failure").Observe(time.Since(start).Seconds())
		reqLogger.Error(err, "Failed to sync step scaling rules")
		r.setReady(instance, metav1.ConditionFalse, stepscalerv1alpha1.ReasonSyncFailed, err.Error())
		if statusErr := r.updateStatus(ctx, reqLogger, instance); statusErr != nil {
			return ctrl.Result{}, statusErr
		}
		return ctrl.Result{}, err
	}

	syncDuration.WithLabelValues("success").Observe(time.Since(start).Seconds())
	r.observe(ctx, reqLogger, instance, policy)
	r.setReady(instance, metav1.ConditionTrue, stepscalerv1alpha1.ReasonSynced, "Alarms are in sync")
	if err := r.updateStatus(ctx, reqLogger, instance); err != nil {
		return ctrl.Result{}, err
	}
	return ctrl.Result{RequeueAfter: r.Config.RequeueAfter}, nil
}

func (r *StepScalingPolicyReconciler) syncPlans(
	instance *stepscalerv1alpha1.StepScalingPolicy,
	rules *prometheus.RuleFactory,
	monitors *datadog.MonitorFactory,
	withMonitors bool,
) ([]plan.Plan, error) {
	rule, err := rules.PrometheusRule(instance.Name, instance.Namespace, map[string]string{
		stepscalerv1alpha1.LabelPolicy: instance.Name,
	})
	if err != nil {
		return nil, err
	}
	if err := controllerutil.SetControllerReference(instance, rule, r.Scheme); err != nil {
		return nil, err
	}
	plans := []plan.Plan{&plan.SyncStepScalingRules{
		Policy:    instance.Name,
		Namespace: instance.Namespace,
		Rule:      rule,
	}}

	if !r.Config.DatadogEnabled {
		return plans, nil
	}
	// Monitors live in the datadog namespace, so they are tracked by label
	// instead of owner reference.
	syncMonitors := &plan.SyncStepScalingMonitors{
		Policy:         instance.Name,
		Namespace:      r.Config.DatadogNamespace,
		OwnerNamespace: instance.Namespace,
	}
	if withMonitors {
		list, err := monitors.DatadogMonitors(r.Config.DatadogNamespace, map[string]string{
			stepscalerv1alpha1.LabelOwnerName:      instance.Name,
			stepscalerv1alpha1.LabelOwnerNamespace: instance.Namespace,
		})
		if err != nil {
			return nil, err
		}
		for i := range list.Items {
			list.Items[i].Name = MonitorName(instance.Namespace, list.Items[i].Name)
		}
		syncMonitors.Monitors = list.Items
	}
	return append(plans, syncMonitors), nil
}

func (r *StepScalingPolicyReconciler) observe(ctx context.Context, log logr.Logger, instance *stepscalerv1alpha1.StepScalingPolicy, policy *stepscaling.Policy) {
	instance.Status.CurrentValue = ""
	instance.Status.Decision = ""
	if r.Metrics == nil {
		return
	}
	value, found, err := r.Metrics.CurrentValue(ctx, instance.Config().Metric, time.Now())
	if err != nil {
		log.Error(err, "Failed to read metric value")
		return
	}
	if !found {
		return
	}
	instance.Status.CurrentValue = strconv.FormatFloat(value, 'g', -1, 64)
	decision, ok := policy.Evaluate(value)
	if !ok {
		instance.Status.Decision = "none"
		return
	}
	instance.Status.Decision = fmt.Sprintf("%s step %d: %s", decision.Direction, decision.Step, decision.Adjustment)
}

func (r *StepScalingPolicyReconciler) setReady(instance *stepscalerv1alpha1.StepScalingPolicy, status metav1.ConditionStatus, reason, message string) {
	meta.SetStatusCondition(&instance.Status.Conditions, metav1.Condition{
		Type:               stepscalerv1alpha1.ConditionReady,
		Status:             status,
		Reason:             reason,
		Message:            message,
		ObservedGeneration: instance.Generation,
	})
}

func (r *StepScalingPolicyReconciler) updateStatus(ctx context.Context, log logr.Logger, instance *stepscalerv1alpha1.StepScalingPolicy) error {
	if err := utils.UpdateStatus(ctx, r.Client, instance); err != nil {
		log.Error(err, "Failed to update StepScalingPolicy status")
		return err
	}
	return nil
}

func (r *StepScalingPolicyReconciler) SetupWithManager(mgr ctrl.Manager) error {
	builder := ctrl.NewControllerManagedBy(mgr).
		For(&stepscalerv1alpha1.StepScalingPolicy{}).
		Owns(&monitoringv1.PrometheusRule{}).
		WithOptions(controller.Options{MaxConcurrentReconciles: r.Config.ConcurrentPolicies})
	return builder.Complete(r)
}

// MonitorName is the name of the DatadogMonitor of an alarm. Policies from
// every namespace share the datadog namespace.
func MonitorName(namespace, alarm string) string {
	return fmt.Sprintf("%s-%s", namespace, alarm)
}

func ladderStatus(p *stepscaling.Policy) []stepscalerv1alpha1.LadderStatus {
	status := []stepscalerv1alpha1.LadderStatus{}
	for _, ladder := range []*stepscaling.Ladder{p.LowerLadder(), p.UpperLadder()} {
		if ladder == nil {
			continue
		}
		status = append(status, stepscalerv1alpha1.LadderStatus{
			Direction: string(ladder.Direction),
			Threshold: strconv.FormatFloat(ladder.Threshold, 'g', -1, 64),
			Steps:     int32(len(ladder.Adjustments)),
		})
	}
	return status
}

func mergeLabels(maps ...map[string]string) map[string]string {
	merged := map[string]string{}
	for _, m := range maps {
		for k, v := range m {
			merged[k] = v
		}
	}
	return merged
}
