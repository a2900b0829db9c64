/*
Package styledtree is a straightforward implementation of a styled document tree.

# Overview

Style() creates a styled tree from an HTML parse tree and a cascade of
style providers. Every element node of the HTML tree gets a styled node,
carrying the computed style of the element. Styles are computed top-down,
each against the computed style of its parent.

Style sheets embedded in a document with <style> elements may be
collected into a cascade with DocumentCascade.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package styledtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cascade.tree'.
func tracer() tracing.Trace {
	return tracing.Select("cascade.tree")
}
