package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	datadogV1 "github.com/DataDog/datadog-api-client-go/v2/api/datadogV1"
	monitoringv1 "github.com/prometheus-operator/prometheus-operator/pkg/apis/monitoring/v1"
	stepscalerv1alpha1 "go.medium.engineering/stepscaler/api/v1alpha1"
	"go.medium.engineering/stepscaler/client/scheme"
	"go.medium.engineering/stepscaler/controllers"
	"go.medium.engineering/stepscaler/datadog"
	"go.medium.engineering/stepscaler/plan"
	"go.medium.engineering/stepscaler/prometheus"
	"go.medium.engineering/stepscaler/stepscaling"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/yaml"
)

var errNoPolicies = errors.New("no policy files given")

type options struct {
	files            []string
	output           string
	datadogNamespace string
	datadogTTL       time.Duration
	prometheusAddr   string
	prometheusTTL    time.Duration
	ruleLabels       map[string]string
	tags             []string
}

func readPolicies(files []string) ([]*stepscalerv1alpha1.StepScalingPolicy, error) {
	if len(files) == 0 {
		return nil, errNoPolicies
	}
	policies := []*stepscalerv1alpha1.StepScalingPolicy{}
	for _, name := range files {
		var r io.ReadCloser = os.Stdin
		if name != "-" {
			f, err := os.Open(name)
			if err != nil {
				return nil, err
			}
			r = f
		}
		decoded, err := stepscalerv1alpha1.DecodePolicies(r)
		r.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		policies = append(policies, decoded...)
	}
	return policies, nil
}

// built is a policy wired to both alarm backends.
type built struct {
	source   *stepscalerv1alpha1.StepScalingPolicy
	policy   *stepscaling.Policy
	rules    *prometheus.RuleFactory
	monitors *datadog.MonitorFactory
}

func build(policies []*stepscalerv1alpha1.StepScalingPolicy, opts options) ([]built, error) {
	out := make([]built, 0, len(policies))
	for _, p := range policies {
		labels := map[string]string{}
		for k, v := range opts.ruleLabels {
			labels[k] = v
		}
		for k, v := range p.Spec.Alerting.Labels {
			labels[k] = v
		}
		b := built{
			source:   p,
			rules:    prometheus.NewRuleFactory(labels),
			monitors: datadog.NewMonitorFactory(append(append([]string{}, opts.tags...), p.Spec.Alerting.Tags...)),
		}
		policy, err := stepscaling.NewPolicy(p.Config(), stepscaling.Fanout(b.rules, b.monitors), log.WithValues("Policy", p.Name))
		if err != nil {
			return nil, fmt.Errorf("%s/%s: %w", p.Namespace, p.Name, err)
		}
		b.policy = policy
		out = append(out, b)
	}
	return out, nil
}

func (b built) prometheusRule() (*monitoringv1.PrometheusRule, error) {
	return b.rules.PrometheusRule(b.source.Name, b.source.Namespace, map[string]string{
		stepscalerv1alpha1.LabelPolicy: b.source.Name,
	})
}

func render(w io.Writer, policies []*stepscalerv1alpha1.StepScalingPolicy, opts options) error {
	all, err := build(policies, opts)
	if err != nil {
		return err
	}
	for _, b := range all {
		objects := []client.Object{}
		switch opts.output {
		case "prometheus":
			rule, err := b.prometheusRule()
			if err != nil {
				return err
			}
			objects = append(objects, rule)
		case "datadog":
			list, err := b.monitors.DatadogMonitors(opts.datadogNamespace, map[string]string{
				stepscalerv1alpha1.LabelOwnerName:      b.source.Name,
				stepscalerv1alpha1.LabelOwnerNamespace: b.source.Namespace,
			})
			if err != nil {
				return err
			}
			for i := range list.Items {
				dm := &list.Items[i]
				dm.Name = controllers.MonitorName(b.source.Namespace, dm.Name)
				objects = append(objects, dm)
			}
		default:
			return fmt.Errorf("unknown output %q", opts.output)
		}
		for _, obj := range objects {
			obj.GetObjectKind().SetGroupVersionKind(plan.MustGetKind(obj))
			out, err := yaml.Marshal(obj)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "---\n%s", out)
		}
	}
	return nil
}

func apply(ctx context.Context, policies []*stepscalerv1alpha1.StepScalingPolicy, opts options) error {
	all, err := build(policies, opts)
	if err != nil {
		return err
	}
	cli, err := client.New(ctrl.GetConfigOrDie(), client.Options{Scheme: scheme.Scheme})
	if err != nil {
		return err
	}
	plans := make([]plan.Plan, 0, len(all))
	for _, b := range all {
		rule, err := b.prometheusRule()
		if err != nil {
			return err
		}
		plans = append(plans, &plan.SyncStepScalingRules{
			Policy:    b.source.Name,
			Namespace: b.source.Namespace,
			Rule:      rule,
		})
	}
	return plan.NewClusterApplier(cli, log).Apply(ctx, plan.All(plans...))
}

func publish(ctx context.Context, policies []*stepscalerv1alpha1.StepScalingPolicy, opts options) error {
	api, err := datadog.NewMonitorAPI(opts.datadogTTL)
	if err != nil {
		return err
	}
	return publishTo(ctx, api, policies, opts)
}

type monitorPublisher interface {
	Publish(ctx context.Context, monitors ...*datadogV1.Monitor) error
}

func publishTo(ctx context.Context, api monitorPublisher, policies []*stepscalerv1alpha1.StepScalingPolicy, opts options) error {
	all, err := build(policies, opts)
	if err != nil {
		return err
	}
	monitors := []*datadogV1.Monitor{}
	for _, b := range all {
		for _, alarm := range b.monitors.Monitors() {
			m, err := alarm.Monitor()
			if err != nil {
				return err
			}
			monitors = append(monitors, m)
		}
	}
	return api.Publish(ctx, monitors...)
}

func evaluate(ctx context.Context, w io.Writer, policies []*stepscalerv1alpha1.StepScalingPolicy, opts options) error {
	reader, err := prometheus.NewMetricReader(opts.prometheusAddr, opts.prometheusTTL)
	if err != nil {
		return err
	}
	return evaluateWith(ctx, w, reader, policies, opts, time.Now())
}

type valueReader interface {
	CurrentValue(ctx context.Context, metric stepscaling.Metric, t time.Time) (float64, bool, error)
}

func evaluateWith(ctx context.Context, w io.Writer, reader valueReader, policies []*stepscalerv1alpha1.StepScalingPolicy, opts options, now time.Time) error {
	all, err := build(policies, opts)
	if err != nil {
		return err
	}
	for _, b := range all {
		name := fmt.Sprintf("%s/%s", b.source.Namespace, b.source.Name)
		value, found, err := reader.CurrentValue(ctx, b.source.Config().Metric, now)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		if !found {
			fmt.Fprintf(w, "%s\tno data\n", name)
			continue
		}
		decision, ok := b.policy.Evaluate(value)
		if !ok {
			fmt.Fprintf(w, "%s\t%g\tno change\n", name, value)
			continue
		}
		fmt.Fprintf(w, "%s\t%g\t%s step %d: %s\n", name, value, decision.Direction, decision.Step, decision.Adjustment)
	}
	return nil
}
