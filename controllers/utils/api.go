package utils

import (
	"context"

	"sigs.k8s.io/controller-runtime/pkg/client"
)

// UpdateStatus writes the status subresource of obj.
func UpdateStatus(ctx context.Context, cli client.Client, obj client.Object) error {
	return cli.Status().Update(ctx, obj)
}
