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
	"os"

	"github.com/spf13/pflag"
	"go.medium.engineering/stepscaler/client/scheme"
	"go.medium.engineering/stepscaler/config"
	"go.medium.engineering/stepscaler/controllers"
	"go.medium.engineering/stepscaler/prometheus"
	"go.medium.engineering/stepscaler/version"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"
	metricsserver "sigs.k8s.io/controller-runtime/pkg/metrics/server"
	// +kubebuilder:scaffold:imports
)

var (
	setupLog = ctrl.Log.WithName("setup")
)

func main() {
	config.AddFlags(pflag.CommandLine)
	opts := zap.Options{Development: true}
	opts.BindFlags(flag.CommandLine)
	pflag.CommandLine.AddGoFlagSet(flag.CommandLine)
	pflag.Parse()

	ctrl.SetLogger(zap.New(zap.UseFlagOptions(&opts)))

	cconfig, err := config.Load(pflag.CommandLine)
	if err != nil {
		setupLog.Error(err, "unable to load config")
		os.Exit(1)
	}
	var reader controllers.MetricReader
	if cconfig.PrometheusQueryAddress != "" {
		reader, err = prometheus.NewMetricReader(cconfig.PrometheusQueryAddress, cconfig.PrometheusQueryTTL)
		if err != nil {
			setupLog.Error(err, "unable to create prometheus api")
			os.Exit(1)
		}
	} else {
		setupLog.Info("No prometheus address defined, metric values are not read")
	}

	mgr, err := ctrl.NewManager(ctrl.GetConfigOrDie(), ctrl.Options{
		Scheme: scheme.Scheme,
		Metrics: metricsserver.Options{
			BindAddress: cconfig.MetricsAddr,
		},
		LeaderElection:   cconfig.EnableLeaderElection,
		LeaderElectionID: "5c1e0a3f.stepscaler.medium.engineering",
	})
	if err != nil {
		setupLog.Error(err, "unable to start manager")
		os.Exit(1)
	}

	if err = (&controllers.StepScalingPolicyReconciler{
		Client:  mgr.GetClient(),
		Log:     ctrl.Log.WithName("controllers").WithName("StepScalingPolicy"),
		Scheme:  mgr.GetScheme(),
		Config:  cconfig,
		Metrics: reader,
	}).SetupWithManager(mgr); err != nil {
		setupLog.Error(err, "unable to create controller", "controller", "StepScalingPolicy")
		os.Exit(1)
	}

	// +kubebuilder:scaffold:builder

	setupLog.Info("starting manager", "Version", version.Version)
	if err := mgr.Start(ctrl.SetupSignalHandler()); err != nil {
		setupLog.Error(err, "problem running manager")
		os.Exit(1)
	}
}
