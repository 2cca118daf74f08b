// Package prometheus renders step scaling alarms as prometheus-operator
// alerting rules and reads the current value of their metrics.
package prometheus

//go:generate mockgen -destination=mocks/mock_promapi.go -package=mocks go.medium.engineering/stepscaler/prometheus PromAPI
