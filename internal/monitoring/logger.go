// Package monitoring holds the diagnostic logger shared by the hull pipeline.
package monitoring

import "log"

// Logf is the diagnostic logger used for pipeline progress messages. It
// defaults to log.Printf; callers reroute or silence it with SetLogger.
var Logf func(format string, v ...interface{}) = log.Printf

// SetLogger replaces Logf. A nil logger discards all messages.
func SetLogger(f func(format string, v ...interface{})) {
	if f == nil {
		Logf = func(string, ...interface{}) {}
		return
	}
	Logf = f
}

// SetVerbose installs log.Printf when on and the discarding logger when off.
func SetVerbose(on bool) {
	if on {
		SetLogger(log.Printf)
		return
	}
	SetLogger(nil)
}
