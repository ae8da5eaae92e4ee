package monitoring

import (
	"fmt"
	"testing"
)

func TestSetLogger(t *testing.T) {
	original := Logf
	defer func() { Logf = original }()

	var got string
	SetLogger(func(format string, v ...interface{}) {
		got = fmt.Sprintf(format, v...)
	})
	Logf("extracted %d points", 12)
	if got != "extracted 12 points" {
		t.Errorf("Expected custom logger to receive message, got %q", got)
	}

	// nil installs a no-op that must not panic or reach the old logger
	got = ""
	SetLogger(nil)
	Logf("dropped")
	if got != "" {
		t.Errorf("No-op logger should not have forwarded %q", got)
	}
}

func TestSetVerbose(t *testing.T) {
	original := Logf
	defer func() { Logf = original }()

	called := false
	SetLogger(func(string, ...interface{}) { called = true })
	SetVerbose(false)
	Logf("should be discarded")
	if called {
		t.Error("SetVerbose(false) should discard messages")
	}

	SetVerbose(true)
	if Logf == nil {
		t.Error("Logf should not be nil after SetVerbose(true)")
	}
}
