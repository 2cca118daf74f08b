//go:build tools

package version

// force tools into go.mod
import (
	_ "go.uber.org/mock/mockgen"
	_ "sigs.k8s.io/controller-tools/cmd/controller-gen"
)
