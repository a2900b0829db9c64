/*
Package config reads the configuration of cascade clients from YAML files.

A configuration file looks like this:

	tracing:
	  adapter: go
	  destination: Stderr
	  levels:
	    root: Error
	    cascade.provider: Info
	scale: 1
	providers:
	  - file: theme.css
	    priority: 200
	    name: theme
	settings:
	  ctk-theme-name: Adwaita
	  ctk-cursor-blink: "true"

Relative provider files are resolved against the directory of the
configuration file. File.Configuration presents the file as a flat
schuko.Configuration, which is what SetupTracing expects. The settings
section is served to cascades by a Settings provider.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package config

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cascade.config'.
func tracer() tracing.Trace {
	return tracing.Select("cascade.config")
}
