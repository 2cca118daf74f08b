package scheme

import (
	ddogv1alpha1 "github.com/DataDog/datadog-operator/api/datadoghq/v1alpha1"
	monitoringv1 "github.com/prometheus-operator/prometheus-operator/pkg/apis/monitoring/v1"
	stepscalerv1alpha1 "go.medium.engineering/stepscaler/api/v1alpha1"
	"k8s.io/apimachinery/pkg/runtime"
	utilruntime "k8s.io/apimachinery/pkg/util/runtime"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"
)

// Scheme knows every kind the stepscaler reads or writes.
var Scheme = runtime.NewScheme()

var localSchemeBuilder = runtime.SchemeBuilder{
	clientgoscheme.AddToScheme,
	monitoringv1.AddToScheme,
	ddogv1alpha1.AddToScheme,
	stepscalerv1alpha1.AddToScheme,
}

// AddToScheme registers the same kinds as Scheme.
var AddToScheme = localSchemeBuilder.AddToScheme

func init() {
	utilruntime.Must(AddToScheme(Scheme))
}
