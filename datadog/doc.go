// Package datadog renders step scaling alarms as Datadog metric monitors,
// either as datadog operator resources or through the monitors API.
package datadog

//go:generate mockgen -destination=mocks/mock_monitor_api.go -package=mocks go.medium.engineering/stepscaler/datadog DatadogMonitorAPI
