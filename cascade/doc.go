/*
Package cascade composites style providers into one effective style.

A Cascade holds an ordered list of providers, each registered with a
priority, and optionally a parent cascade. Queries walk the providers of
the cascade and all of its ancestors in descending priority. For equal
priorities the cascade closer to the leaf is asked first, and within one
cascade the provider added last is asked first.

Providers implement any subset of the capability interfaces of this
package (StylePropertyProvider, ColorProvider, SettingsProvider,
ScaleProvider, KeyframesProvider, LookupProvider). The cascade probes
them with type assertions and itself implements all of them, so a cascade
may serve as a provider for another cascade.

Cascades are meant to be used from a single goroutine. Change
notifications are delivered synchronously through package signal.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cascade

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cascade.cascade'.
func tracer() tracing.Trace {
	return tracing.Select("cascade.cascade")
}
