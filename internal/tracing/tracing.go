// Package tracing is a thin façade over the schuko tracing machinery.
// Library code traces to the trace selected as "caseless"; clients
// configure adapters and levels through schuko.
package tracing

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to caseless .
func tracer() tracing.Trace {
	return tracing.Select("caseless")
}

// Debugf traces a debug message.
func Debugf(format string, args ...interface{}) {
	tracer().Debugf(format, args...)
}

// Infof traces an info message.
func Infof(format string, args ...interface{}) {
	tracer().Infof(format, args...)
}

// Errorf traces an error message.
func Errorf(format string, args ...interface{}) {
	tracer().Errorf(format, args...)
}

// P attaches a key/value pair to a trace message.
func P(key string, val string) tracing.Trace {
	return tracer().P(key, val)
}
