/*
Package style computes the styles of widgets and document nodes.

# Overview

A Static style holds a computed value for every registered property. It
is built from a cascade.Lookup, i.e. the declarations collected from the
providers of a cascade, against the computed style of the parent:

   lookup := cascade.NewLookup()
   c.Lookup(matcher, lookup)
   st := style.Compute(lookup, c, parentStyle)
   defer st.Release()

An Animated style wraps a static style and overlays it with running
transitions and keyframe animations. Transitions start whenever a property
listed in transition-property changes between the previous style of a
widget and its new base style.

Values which cannot be interpolated switch from start to end at half of
the animation's progress.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package style

import (
	"time"

	"github.com/npillmayer/csscascade/css"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cascade.style'.
func tracer() tracing.Trace {
	return tracing.Select("cascade.style")
}

// Style is a computed style, either static or animated.
type Style interface {
	css.Style                                          // values at the style's creation time, borrowed
	ValueAt(id css.PropertyID, now time.Time) css.Value // value at time now, a new reference
	IsStatic(now time.Time) bool                        // no animation running at time now or later?
	Release()
}
