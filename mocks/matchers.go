package mocks

import (
	"bytes"
	"fmt"

	datadogV1 "github.com/DataDog/datadog-api-client-go/v2/api/datadogV1"
	"go.medium.engineering/stepscaler/stepscaling"
	"go.uber.org/mock/gomock"
)

type callback struct {
	fn   func(x interface{}) bool
	desc string
}

func (m *callback) Matches(x interface{}) bool {
	return m.fn(x)
}

func (m *callback) String() string {
	return m.desc
}

// Callback saves you the toil of creating a struct for a matcher
func Callback(fn func(x interface{}) bool, desc string) gomock.Matcher {
	return &callback{fn, desc}
}

// MonitorName matches a datadog monitor or monitor update by name
func MonitorName(name string) gomock.Matcher {
	fn := func(x interface{}) bool {
		switch o := x.(type) {
		case datadogV1.Monitor:
			return o.GetName() == name
		case datadogV1.MonitorUpdateRequest:
			return o.GetName() == name
		default:
			return false
		}
	}
	return Callback(fn, fmt.Sprintf("matches monitor %s", name))
}

// MonitorQuery matches a datadog monitor or monitor update by query
func MonitorQuery(query string) gomock.Matcher {
	fn := func(x interface{}) bool {
		switch o := x.(type) {
		case datadogV1.Monitor:
			return o.GetQuery() == query
		case datadogV1.MonitorUpdateRequest:
			return o.GetQuery() == query
		default:
			return false
		}
	}
	return Callback(fn, fmt.Sprintf("matches query %s", query))
}

// ListByName matches ListMonitorsOptionalParameters filtering on name
func ListByName(name string) gomock.Matcher {
	fn := func(x interface{}) bool {
		switch o := x.(type) {
		case datadogV1.ListMonitorsOptionalParameters:
			return o.Name != nil && *o.Name == name
		default:
			return false
		}
	}
	return Callback(fn, fmt.Sprintf("lists monitors named %s", name))
}

// AlarmSpec matches a stepscaling.AlarmSpec by name and direction
func AlarmSpec(name string, direction stepscaling.Direction) gomock.Matcher {
	fn := func(x interface{}) bool {
		switch o := x.(type) {
		case stepscaling.AlarmSpec:
			return o.Name == name && o.Direction == direction
		default:
			return false
		}
	}
	return Callback(fn, fmt.Sprintf("matches alarm %s (%s)", name, direction))
}

// And combines matchers
func And(matchers ...gomock.Matcher) gomock.Matcher {
	fn := func(x interface{}) bool {
		for _, m := range matchers {
			if !m.Matches(x) {
				return false
			}
		}
		return true
	}
	s := bytes.NewBufferString("and(")
	first := true
	for _, m := range matchers {
		if !first {
			s.WriteString(", ")
		}
		first = false
		s.WriteString(m.String())
	}
	s.WriteString(")")
	return Callback(fn, s.String())
}
