package plan

import (
	"context"
	"fmt"

	ddog "github.com/DataDog/datadog-operator/api/datadoghq/v1alpha1"
	"github.com/go-logr/logr"
	monitoringv1 "github.com/prometheus-operator/prometheus-operator/pkg/apis/monitoring/v1"
	stepscalerv1alpha1 "go.medium.engineering/stepscaler/api/v1alpha1"
	"go.medium.engineering/stepscaler/client/scheme"
	"k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/runtime/schema"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/controller/controllerutil"
)

func LogSync(log logr.Logger, op controllerutil.OperationResult, err error, resource runtime.Object) {
	kind := MustGetKind(resource).Kind
	switch obj := resource.(type) {
	case *monitoringv1.PrometheusRule:
		if err != nil {
			log.Error(err, "Sync resource", "Result", "failure", "Kind", kind, "Audit", true, "Resource", obj.Spec, "Op", op)
			return
		}
		log.Info("Sync resource", "Result", "success", "Kind", kind, "Audit", true, "Name", obj.Name, "Namespace", obj.Namespace, "Op", op)
	case *ddog.DatadogMonitor:
		if err != nil {
			log.Error(err, "Sync resource", "Result", "failure", "Kind", kind, "Audit", true, "Resource", obj.Spec, "Op", op)
			return
		}
		log.Info("Sync resource", "Result", "success", "Kind", kind, "Audit", true, "Name", obj.Name, "Namespace", obj.Namespace, "Op", op)
	default:
		if err != nil {
			log.Error(err, "Sync resource", "Result", "failure", "Kind", kind, "Audit", true, "Resource", resource, "Op", op)
			return
		}
		log.Info("Sync resource", "Result", "success", "Kind", kind, "Audit", true, "Op", op)
	}
}

// MustGetKind panics for objects that aren't registered in the stepscaler scheme.
func MustGetKind(obj runtime.Object) schema.GroupVersionKind {
	kinds, _, err := scheme.Scheme.ObjectKinds(obj)
	if err != nil {
		fmt.Printf("Failed to get kind for (%#v)\n", obj)
		panic(err)
	}
	if len(kinds) <= 0 {
		panic("Assertion failed!")
	}
	return kinds[0]
}

func CopyStringMap(src map[string]string) map[string]string {
	if src == nil {
		return nil
	}
	dst := map[string]string{}
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func isIgnored(meta metav1.ObjectMeta) bool {
	for label := range meta.Labels {
		if label == stepscalerv1alpha1.LabelIgnore {
			return true
		}
	}
	return false
}

// CreateOrUpdate safely performs a standard CreateOrUpdate for known types.
// Objects carrying the ignore label are left untouched.
func CreateOrUpdate(
	ctx context.Context,
	log logr.Logger,
	cli client.Client,
	obj runtime.Object,
) error {
	switch orig := obj.(type) {
	case *monitoringv1.PrometheusRule:
		typed := orig.DeepCopy()
		pm := &monitoringv1.PrometheusRule{
			ObjectMeta: metav1.ObjectMeta{
				Name:      typed.Name,
				Namespace: typed.Namespace,
			},
		}
		op, err := controllerutil.CreateOrUpdate(ctx, cli, pm, func() error {
			if isIgnored(pm.ObjectMeta) {
				kind := MustGetKind(pm).Kind
				log.Info("Resource is ignored", "namespace", pm.Namespace, "name", pm.Name, "kind", kind)
				return nil
			}
			pm.Spec = typed.Spec
			pm.Labels = CopyStringMap(typed.Labels)
			pm.Annotations = CopyStringMap(typed.Annotations)
			pm.OwnerReferences = typed.OwnerReferences
			return nil
		})
		LogSync(log, op, err, pm)
		if err != nil {
			return err
		}
	case *ddog.DatadogMonitor:
		typed := orig.DeepCopy()
		dm := &ddog.DatadogMonitor{
			ObjectMeta: metav1.ObjectMeta{
				Name:      typed.Name,
				Namespace: typed.Namespace,
			},
		}
		op, err := controllerutil.CreateOrUpdate(ctx, cli, dm, func() error {
			if isIgnored(dm.ObjectMeta) {
				kind := MustGetKind(dm).Kind
				log.Info("Resource is ignored", "namespace", dm.Namespace, "name", dm.Name, "kind", kind)
				return nil
			}
			dm.Spec = typed.Spec
			dm.Labels = CopyStringMap(typed.Labels)
			dm.Annotations = CopyStringMap(typed.Annotations)
			dm.OwnerReferences = typed.OwnerReferences
			return nil
		})
		LogSync(log, op, err, dm)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported type %T", obj)
	}
	return nil
}

func DeleteIfExists(ctx context.Context, cli client.Client, obj client.Object) error {
	err := cli.Delete(ctx, obj)
	if err != nil && !errors.IsNotFound(err) {
		return err
	}
	return nil
}
