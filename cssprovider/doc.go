/*
Package cssprovider implements a style provider backed by CSS style sheets.

# Overview

A Provider is loaded from CSS text or a file. Rule sets are compiled once:
selectors with package cascadia, values with package css. Style sheets
may contain the following extensions:

   @define-color name <color>;      named colors, referenced as @name
   @keyframes name { from {…} … }   keyframe animations
   -Owner-name: <value>;            style properties private to a widget class

Widget states are written as pseudo-classes (:hover, :active, :focus,
:checked, :disabled, :selected, :indeterminate, :backdrop) and matched
against the state flags of a matcher.

Declarations which do not parse are reported as diagnostics and skipped;
the rest of the style sheet still applies.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssprovider

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'cascade.provider'.
func tracer() tracing.Trace {
	return tracing.Select("cascade.provider")
}
