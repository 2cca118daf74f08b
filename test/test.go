package test

import (
	"context"
	"testing"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
)

const timeout = 10 * time.Second

func MustNewLogger() logr.Logger {
	r, err := zap.NewDevelopment()
	if err != nil {
		panic("Failed to make new logger")
	}
	return zapr.NewLogger(r)
}

// Context is cancelled when the test finishes or after ten seconds.
func Context(t testing.TB) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	t.Cleanup(cancel)
	return ctx
}
