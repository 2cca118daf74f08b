package datadog

import (
	"context"
	"net/http"
	"sync"
	"time"

	datadog "github.com/DataDog/datadog-api-client-go/v2/api/datadog"
	datadogV1 "github.com/DataDog/datadog-api-client-go/v2/api/datadogV1"
	logf "sigs.k8s.io/controller-runtime/pkg/log"
)

var (
	monitor_log = logf.Log.WithName("datadog_monitors")
)

type DatadogMonitorAPI interface {
	ListMonitors(ctx context.Context, o ...datadogV1.ListMonitorsOptionalParameters) ([]datadogV1.Monitor, *http.Response, error)
	CreateMonitor(ctx context.Context, body datadogV1.Monitor) (datadogV1.Monitor, *http.Response, error)
	UpdateMonitor(ctx context.Context, monitorId int64, body datadogV1.MonitorUpdateRequest) (datadogV1.Monitor, *http.Response, error)
	DeleteMonitor(ctx context.Context, monitorId int64, o ...datadogV1.DeleteMonitorOptionalParameters) (datadogV1.DeletedMonitor, *http.Response, error)
}

// DDOGMONITORAPI publishes monitors by name. Monitor ids are cached for ttl
// so repeated publishing of the same policy does not list monitors again.
type DDOGMONITORAPI struct {
	api   DatadogMonitorAPI
	cache map[string]cachedValue
	ttl   time.Duration
	lock  *sync.RWMutex
}

type cachedValue struct {
	id          int64
	lastUpdated time.Time
}

// NewMonitorAPI reads credentials from DD_API_KEY and DD_APP_KEY, and the
// site from DD_SITE.
func NewMonitorAPI(ttl time.Duration) (*DDOGMONITORAPI, error) {
	monitor_log.Info("Creating Datadog Monitor API")

	configuration := datadog.NewConfiguration()
	apiClient := datadog.NewAPIClient(configuration)

	return InjectAPI(datadogV1.NewMonitorsApi(apiClient), ttl), nil
}

func InjectAPI(a DatadogMonitorAPI, ttl time.Duration) *DDOGMONITORAPI {
	return &DDOGMONITORAPI{a, map[string]cachedValue{}, ttl, &sync.RWMutex{}}
}

func (a *DDOGMONITORAPI) checkCache(name string) (int64, bool) {
	a.lock.RLock()
	defer a.lock.RUnlock()
	if v, ok := a.cache[name]; ok {
		if v.lastUpdated.Add(a.ttl).After(time.Now()) {
			return v.id, true
		}
	}
	return 0, false
}

func (a *DDOGMONITORAPI) store(name string, id int64) {
	a.lock.Lock()
	defer a.lock.Unlock()
	a.cache[name] = cachedValue{id, time.Now()}
}

func (a *DDOGMONITORAPI) forget(name string) {
	a.lock.Lock()
	defer a.lock.Unlock()
	delete(a.cache, name)
}

// lookup returns the id of the monitor with exactly this name.
func (a *DDOGMONITORAPI) lookup(ctx context.Context, name string) (int64, bool, error) {
	if id, ok := a.checkCache(name); ok {
		return id, true, nil
	}
	params := datadogV1.NewListMonitorsOptionalParameters().WithName(name)
	monitors, r, err := a.api.ListMonitors(ctx, *params)
	if err != nil {
		monitor_log.Error(err, "Error when calling `MonitorsApi.ListMonitors`", "response", r)
		return 0, false, err
	}
	for _, m := range monitors {
		if m.GetName() == name {
			a.store(name, m.GetId())
			return m.GetId(), true, nil
		}
	}
	return 0, false, nil
}

// Publish creates every monitor, or updates it in place when a monitor with
// the same name already exists.
func (a *DDOGMONITORAPI) Publish(ctx context.Context, monitors ...*datadogV1.Monitor) error {
	ddctx := datadog.NewDefaultContext(ctx)
	for _, m := range monitors {
		name := m.GetName()
		id, found, err := a.lookup(ddctx, name)
		if err != nil {
			return err
		}
		if !found {
			created, r, err := a.api.CreateMonitor(ddctx, *m)
			if err != nil {
				monitor_log.Error(err, "Error when calling `MonitorsApi.CreateMonitor`", "Monitor", name, "response", r)
				return err
			}
			a.store(name, created.GetId())
			monitor_log.Info("Created monitor", "Monitor", name, "Id", created.GetId())
			continue
		}

		update := datadogV1.MonitorUpdateRequest{}
		update.SetName(name)
		update.SetQuery(m.GetQuery())
		update.SetMessage(m.GetMessage())
		update.SetTags(m.GetTags())
		update.SetOptions(m.GetOptions())
		if _, r, err := a.api.UpdateMonitor(ddctx, id, update); err != nil {
			monitor_log.Error(err, "Error when calling `MonitorsApi.UpdateMonitor`", "Monitor", name, "Id", id, "response", r)
			return err
		}
		monitor_log.Info("Updated monitor", "Monitor", name, "Id", id)
	}
	return nil
}

// Delete removes the named monitors. Missing monitors are ignored.
func (a *DDOGMONITORAPI) Delete(ctx context.Context, names ...string) error {
	ddctx := datadog.NewDefaultContext(ctx)
	for _, name := range names {
		id, found, err := a.lookup(ddctx, name)
		if err != nil {
			return err
		}
		if !found {
			continue
		}
		if _, r, err := a.api.DeleteMonitor(ddctx, id); err != nil {
			if r != nil && r.StatusCode == http.StatusNotFound {
				a.forget(name)
				continue
			}
			monitor_log.Error(err, "Error when calling `MonitorsApi.DeleteMonitor`", "Monitor", name, "Id", id, "response", r)
			return err
		}
		a.forget(name)
		monitor_log.Info("Deleted monitor", "Monitor", name, "Id", id)
	}
	return nil
}
