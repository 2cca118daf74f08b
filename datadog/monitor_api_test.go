package datadog

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	datadogV1 "github.com/DataDog/datadog-api-client-go/v2/api/datadogV1"
	"github.com/stretchr/testify/assert"
	"go.medium.engineering/stepscaler/datadog/mocks"
	matchers "go.medium.engineering/stepscaler/mocks"
	"go.uber.org/mock/gomock"
)

func existing(name string, id int64) datadogV1.Monitor {
	m := datadogV1.NewMonitor("avg(last_1m):avg:requests{*} >= 1", datadogV1.MONITORTYPE_METRIC_ALERT)
	m.SetName(name)
	m.SetId(id)
	return *m
}

func TestPublishCreates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := mocks.NewMockDatadogMonitorAPI(ctrl)
	api := InjectAPI(m, time.Minute)

	monitors := buildMonitors(t).Monitors()
	upper, err := monitors[1].Monitor()
	assert.NoError(t, err)

	m.
		EXPECT().
		ListMonitors(gomock.Any(), matchers.ListByName("web-upper")).
		Return([]datadogV1.Monitor{existing("web-upper-old", 1)}, nil, nil).
		Times(1)
	m.
		EXPECT().
		CreateMonitor(gomock.Any(), matchers.And(
			matchers.MonitorName("web-upper"),
			matchers.MonitorQuery("max(last_1m):max:trace.http.request.hits{env:production,service:web} >= 50"),
		)).
		Return(existing("web-upper", 7), nil, nil).
		Times(1)
	m.
		EXPECT().
		UpdateMonitor(gomock.Any(), int64(7), matchers.MonitorName("web-upper")).
		Return(existing("web-upper", 7), nil, nil).
		Times(1)

	assert.NoError(t, api.Publish(context.TODO(), upper))
	// the id is cached, so the second publish updates without listing
	assert.NoError(t, api.Publish(context.TODO(), upper))
}

func TestPublishUpdatesExisting(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := mocks.NewMockDatadogMonitorAPI(ctrl)
	api := InjectAPI(m, time.Duration(25)*time.Millisecond)

	lower, err := buildMonitors(t).Monitors()[0].Monitor()
	assert.NoError(t, err)

	m.
		EXPECT().
		ListMonitors(gomock.Any(), matchers.ListByName("web-lower")).
		Return([]datadogV1.Monitor{existing("web-lower", 3)}, nil, nil).
		Times(2)
	m.
		EXPECT().
		UpdateMonitor(gomock.Any(), int64(3), matchers.And(
			matchers.MonitorName("web-lower"),
			matchers.MonitorQuery(lower.GetQuery()),
		)).
		Return(existing("web-lower", 3), nil, nil).
		Times(2)

	assert.NoError(t, api.Publish(context.TODO(), lower))
	time.Sleep(time.Duration(25) * time.Millisecond)
	assert.NoError(t, api.Publish(context.TODO(), lower))
}

func TestPublishErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := mocks.NewMockDatadogMonitorAPI(ctrl)
	api := InjectAPI(m, time.Minute)
	lower, err := buildMonitors(t).Monitors()[0].Monitor()
	assert.NoError(t, err)

	failure := errors.New("forbidden")
	m.
		EXPECT().
		ListMonitors(gomock.Any(), gomock.Any()).
		Return(nil, &http.Response{StatusCode: http.StatusForbidden}, failure).
		Times(1)

	assert.ErrorIs(t, api.Publish(context.TODO(), lower), failure)
}

func TestDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := mocks.NewMockDatadogMonitorAPI(ctrl)
	api := InjectAPI(m, time.Minute)

	m.
		EXPECT().
		ListMonitors(gomock.Any(), matchers.ListByName("web-lower")).
		Return([]datadogV1.Monitor{existing("web-lower", 3)}, nil, nil).
		Times(1)
	m.
		EXPECT().
		ListMonitors(gomock.Any(), matchers.ListByName("web-upper")).
		Return([]datadogV1.Monitor{}, nil, nil).
		Times(1)
	m.
		EXPECT().
		ListMonitors(gomock.Any(), matchers.ListByName("web-gone")).
		Return([]datadogV1.Monitor{existing("web-gone", 9)}, nil, nil).
		Times(1)
	m.
		EXPECT().
		DeleteMonitor(gomock.Any(), int64(3)).
		Return(datadogV1.DeletedMonitor{}, nil, nil).
		Times(1)
	m.
		EXPECT().
		DeleteMonitor(gomock.Any(), int64(9)).
		Return(datadogV1.DeletedMonitor{}, &http.Response{StatusCode: http.StatusNotFound}, errors.New("not found")).
		Times(1)

	assert.NoError(t, api.Delete(context.TODO(), "web-lower", "web-upper", "web-gone"))
}
