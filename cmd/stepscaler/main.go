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

package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"
	"go.medium.engineering/stepscaler/version"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"
)

const usage = `Usage: stepscaler <command> [flags] -f policies.yaml

Commands:
  render    print the PrometheusRules or DatadogMonitors of every policy
  apply     apply the PrometheusRules of every policy to the current cluster
  publish   create or update the Datadog monitors of every policy
  evaluate  print the step every policy takes for the current metric value
  version   print the stepscaler version
`

var log = ctrl.Log.WithName("stepscaler")

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	command := os.Args[1]
	if command == "version" {
		fmt.Println(version.Version)
		return
	}

	opts := options{}
	fs := pflag.NewFlagSet(command, pflag.ExitOnError)
	fs.StringSliceVarP(&opts.files, "filename", "f", []string{}, "Policy files, - reads stdin")
	fs.StringVarP(&opts.output, "output", "o", "prometheus", "What render prints: prometheus or datadog")
	fs.StringVar(&opts.datadogNamespace, "datadog-namespace", "datadog", "Namespace of rendered DatadogMonitors")
	fs.DurationVar(&opts.datadogTTL, "datadog-query-ttl", time.Duration(120)*time.Second, "How long to cache datadog monitor ids")
	fs.StringVar(&opts.prometheusAddr, "prometheus-query-address", "", "The address metric values are read from")
	fs.DurationVar(&opts.prometheusTTL, "prometheus-query-ttl", time.Duration(10)*time.Second, "How long to cache metric values")
	fs.StringToStringVar(&opts.ruleLabels, "prometheus-rule-labels", map[string]string{}, "Labels added to every alert")
	fs.StringSliceVar(&opts.tags, "datadog-tags", []string{}, "Tags added to every monitor")

	zapOpts := zap.Options{Development: true}
	goFlags := flag.NewFlagSet(command, flag.ExitOnError)
	zapOpts.BindFlags(goFlags)
	fs.AddGoFlagSet(goFlags)
	_ = fs.Parse(os.Args[2:])

	ctrl.SetLogger(zap.New(zap.UseFlagOptions(&zapOpts), zap.WriteTo(os.Stderr)))

	policies, err := readPolicies(opts.files)
	if err != nil {
		log.Error(err, "Failed to read policies")
		os.Exit(1)
	}

	ctx := ctrl.SetupSignalHandler()
	switch command {
	case "render":
		err = render(os.Stdout, policies, opts)
	case "apply":
		err = apply(ctx, policies, opts)
	case "publish":
		err = publish(ctx, policies, opts)
	case "evaluate":
		err = evaluate(ctx, os.Stdout, policies, opts)
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		log.Error(err, "Command failed", "Command", command)
		os.Exit(1)
	}
}
