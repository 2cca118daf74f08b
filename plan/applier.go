package plan

import (
	"context"
	"reflect"

	"github.com/go-logr/logr"
	"golang.org/x/sync/errgroup"
	"sigs.k8s.io/controller-runtime/pkg/client"
)

//go:generate mockgen -destination=mocks/mock_plan.go -package=mocks go.medium.engineering/stepscaler/plan Plan

type Applier interface {
	Apply(context.Context, Plan) error
}

type ClusterApplier struct {
	cli client.Client
	log logr.Logger
}

func NewClusterApplier(cli client.Client, log logr.Logger) Applier {
	return &ClusterApplier{cli, log}
}

func (a *ClusterApplier) Apply(ctx context.Context, plan Plan) error {
	planType := reflect.TypeOf(plan).Elem()
	return plan.Apply(ctx, a.cli, a.log.WithValues("Applier", planType.Name()))
}

// ConcurrentApplier applies the same plan through every applier at once,
// for example one per cluster.
type ConcurrentApplier struct {
	appliers []Applier
	log      logr.Logger
}

func NewConcurrentApplier(appliers []Applier, log logr.Logger) Applier {
	return &ConcurrentApplier{appliers, log}
}

func (a *ConcurrentApplier) Apply(ctx context.Context, plan Plan) error {
	g, ctx := errgroup.WithContext(ctx)

	for i := range a.appliers {
		applier := a.appliers[i]
		g.Go(func() error {
			return applier.Apply(ctx, plan)
		})
	}

	return g.Wait()
}
