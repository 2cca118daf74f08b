package config

import (
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every flag when read from the environment, so
// --datadog-namespace can also be set with STEPSCALER_DATADOG_NAMESPACE.
const EnvPrefix = "STEPSCALER"

type Config struct {
	MetricsAddr          string
	EnableLeaderElection bool
	RequeueAfter         time.Duration
	ConcurrentPolicies   int

	PrometheusRuleLabels   map[string]string
	PrometheusQueryAddress string
	PrometheusQueryTTL     time.Duration

	DatadogEnabled   bool
	DatadogNamespace string
	DatadogQueryTTL  time.Duration
	DatadogTags      []string
}

// AddFlags registers every setting on fs with its default.
func AddFlags(fs *pflag.FlagSet) {
	fs.String("metrics-addr", ":8383", "The address the metric endpoint binds to.")
	fs.Bool("enable-leader-election", false,
		"Enable leader election for controller manager. "+
			"Enabling this will ensure there is only one active controller manager.")
	fs.Duration("requeue-period", time.Duration(5)*time.Minute, "Delay between resyncs of a policy")
	fs.Int("concurrent-policies", 5, "How many concurrent policies to reconcile")
	fs.StringToString("prometheus-rule-labels", map[string]string{}, "Labels added to every step scaling alert")
	fs.String("prometheus-query-address", "", "The address the metric values of policies are read from")
	fs.Duration("prometheus-query-ttl", time.Duration(10)*time.Second, "How long to cache metric values")
	fs.Bool("datadog-enabled", false, "Render policy alarms as DatadogMonitors as well")
	fs.String("datadog-namespace", "datadog", "The namespace to use when creating DatadogMonitor resources")
	fs.Duration("datadog-query-ttl", time.Duration(120)*time.Second, "How long to cache datadog monitor ids")
	fs.StringSlice("datadog-tags", []string{}, "Tags added to every datadog monitor")
}

// Load reads the settings from fs, falling back to the environment for flags
// that were not set on the command line.
func Load(fs *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return Config{}, err
	}

	return Config{
		MetricsAddr:            v.GetString("metrics-addr"),
		EnableLeaderElection:   v.GetBool("enable-leader-election"),
		RequeueAfter:           v.GetDuration("requeue-period"),
		ConcurrentPolicies:     v.GetInt("concurrent-policies"),
		PrometheusRuleLabels:   v.GetStringMapString("prometheus-rule-labels"),
		PrometheusQueryAddress: v.GetString("prometheus-query-address"),
		PrometheusQueryTTL:     v.GetDuration("prometheus-query-ttl"),
		DatadogEnabled:         v.GetBool("datadog-enabled"),
		DatadogNamespace:       v.GetString("datadog-namespace"),
		DatadogQueryTTL:        v.GetDuration("datadog-query-ttl"),
		DatadogTags:            v.GetStringSlice("datadog-tags"),
	}, nil
}
