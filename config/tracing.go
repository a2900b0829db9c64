package config

import (
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
)

const levelPrefix = "tracelevel"

// SetupTracing installs tracers as configured by conf, usually the result
// of File.Configuration. Tracers selected before are discarded. The "go"
// adapter is backed by the standard library's log package.
func SetupTracing(conf schuko.Configuration) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	trace2go.Teardown()
	if err := trace2go.ConfigureRoot(conf, levelPrefix); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}

// Teardown stops all tracers installed by SetupTracing.
func Teardown() {
	trace2go.Teardown()
}
