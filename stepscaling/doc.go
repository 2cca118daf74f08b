// Package stepscaling turns a list of scaling intervals into up to two
// ladders of step adjustments, one triggered below a threshold and one above,
// and wires each ladder to an alarm and an action supplied by the caller.
package stepscaling

//go:generate mockgen -destination=mocks/mock_sink.go -package=mocks go.medium.engineering/stepscaler/stepscaling AlarmSink,ActionSink,SinkFactory
