package prometheus

import (
	"context"
	"fmt"
	"sync"
	"time"

	cli "github.com/prometheus/client_golang/api"
	api "github.com/prometheus/client_golang/api/prometheus/v1"
	"github.com/prometheus/common/model"
	"go.medium.engineering/stepscaler/stepscaling"
	logf "sigs.k8s.io/controller-runtime/pkg/log"
)

var (
	log = logf.Log.WithName("prometheus_metrics")
)

type PromAPI interface {
	Query(ctx context.Context, query string, ts time.Time, opts ...api.Option) (model.Value, api.Warnings, error)
}

type cachedValue struct {
	value       model.Value
	lastUpdated time.Time
}

// MetricReader reads the current aggregated value of a policy metric.
type MetricReader struct {
	api   PromAPI
	cache map[string]cachedValue
	ttl   time.Duration
	lock  *sync.RWMutex
}

type noopAPI struct{}

func (a *noopAPI) Query(_ context.Context, _ string, _ time.Time, _ ...api.Option) (model.Value, api.Warnings, error) {
	return model.Vector{}, nil, nil
}

func NewMetricReader(address string, ttl time.Duration) (*MetricReader, error) {
	log.Info("Creating API", "address", address)
	if address == "" {
		log.Info("WARNING: No prometheus address defined, metric values unavailable")
		return InjectAPI(&noopAPI{}, ttl), nil
	}
	client, err := cli.NewClient(cli.Config{Address: address})
	if err != nil {
		return nil, err
	}
	return InjectAPI(api.NewAPI(client), ttl), nil
}

func InjectAPI(a PromAPI, ttl time.Duration) *MetricReader {
	return &MetricReader{a, map[string]cachedValue{}, ttl, &sync.RWMutex{}}
}

func (r *MetricReader) checkCache(query string) (model.Value, bool) {
	r.lock.RLock()
	defer r.lock.RUnlock()
	if v, ok := r.cache[query]; ok {
		if v.lastUpdated.Add(r.ttl).After(time.Now()) {
			return v.value, true
		}
	}
	return nil, false
}

func (r *MetricReader) queryWithCache(ctx context.Context, query string, t time.Time) (model.Value, error) {
	if v, ok := r.checkCache(query); ok {
		return v, nil
	}
	val, warnings, err := r.api.Query(ctx, query, t)
	if err != nil {
		return nil, err
	}
	if len(warnings) > 0 {
		log.Info("Query returned warnings", "Query", query, "Warnings", warnings)
	}

	r.lock.Lock()
	defer r.lock.Unlock()
	r.cache[query] = cachedValue{val, time.Now()}
	return val, nil
}

// ValueQuery aggregates the metric over one evaluation period, the same way
// the alerting rules do.
func ValueQuery(metric stepscaling.Metric, period time.Duration) (string, error) {
	statistic, err := stepscaling.ParseStatistic(metric.Statistic)
	if err != nil {
		return "", err
	}
	agg, err := aggregation(statistic)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s(%s_over_time(%s[%s]))", agg, agg, Selector(metric), model.Duration(period)), nil
}

// CurrentValue returns false when the metric has no samples at t.
func (r *MetricReader) CurrentValue(ctx context.Context, metric stepscaling.Metric, t time.Time) (float64, bool, error) {
	query, err := ValueQuery(metric, stepscaling.EvaluationPeriod)
	if err != nil {
		return 0, false, err
	}
	val, err := r.queryWithCache(ctx, query, t)
	if err != nil {
		return 0, false, err
	}

	switch v := val.(type) {
	case model.Vector:
		switch len(v) {
		case 0:
			return 0, false, nil
		case 1:
			return float64(v[0].Value), true, nil
		default:
			return 0, false, fmt.Errorf("expected a single series for %s, got %d", query, len(v))
		}
	case *model.Scalar:
		return float64(v.Value), true, nil
	default:
		return 0, false, fmt.Errorf("Unexpected prom response: %+v", v)
	}
}
