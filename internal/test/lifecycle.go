package test

import (
	"go.uber.org/fx"
)

// LifecycleRecorder collects hooks so tests can run OnStart/OnStop by hand
// instead of spinning up a full fx app.
type LifecycleRecorder struct {
	Hooks []fx.Hook
}

// Append records the hook for manual invocation.
func (l *LifecycleRecorder) Append(h fx.Hook) {
	l.Hooks = append(l.Hooks, h)
}

// ShutdownerStub signals on Called whenever a component requests shutdown.
type ShutdownerStub struct {
	Called chan struct{}
}

// Shutdown notifies the test without blocking the caller.
func (s *ShutdownerStub) Shutdown(...fx.ShutdownOption) error {
	if s.Called != nil {
		select {
		case s.Called <- struct{}{}:
		default:
		}
	}
	return nil
}
