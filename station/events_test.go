package station

import (
	"testing"
	"time"
)

func TestEventRegistryPerFeature(t *testing.T) {
	registry := NewEventRegistry(&nopLogger{})
	var got []string
	registry.OnRequestReceived("Reset", func(feature string, payload interface{}) {
		got = append(got, feature)
	})
	registry.RequestReceived("Reset", nil)
	registry.RequestReceived("Heartbeat", nil)
	if len(got) != 1 || got[0] != "Reset" {
		t.Errorf("listener calls = %v, want [Reset]", got)
	}
}

func TestEventRegistryAnyFeature(t *testing.T) {
	registry := NewEventRegistry(&nopLogger{})
	var got []string
	registry.OnRequestReceived(AnyFeature, func(feature string, payload interface{}) {
		got = append(got, feature)
	})
	registry.RequestReceived("Reset", nil)
	registry.RequestReceived("Heartbeat", nil)
	if len(got) != 2 {
		t.Errorf("catch-all listener calls = %v, want both features", got)
	}
}

func TestEventRegistryPanicIsolation(t *testing.T) {
	registry := NewEventRegistry(&nopLogger{})
	called := false
	registry.OnResponseSent("Reset", func(feature string, payload interface{}, elapsed time.Duration) {
		panic("listener blew up")
	})
	registry.OnResponseSent("Reset", func(feature string, payload interface{}, elapsed time.Duration) {
		called = true
	})
	registry.ResponseSent("Reset", nil, time.Millisecond)
	if !called {
		t.Error("second listener must run despite the first one panicking")
	}
}

func TestEventRegistryUnregister(t *testing.T) {
	registry := NewEventRegistry(&nopLogger{})
	called := false
	registry.OnRequestSent("Reset", func(feature string, payload interface{}) {
		called = true
	})
	registry.Unregister("Reset")
	registry.RequestSent("Reset", nil)
	if called {
		t.Error("unregistered listener must not run")
	}
}
