/*
Package css implements computed CSS style values.

Values are immutable, reference counted nodes tagged by a kind (color,
length, number, image, shadow, array, …). Every value supports equality,
computation against a cascaded style context, printing and, where the kind
allows it, interpolation for animated transitions.

Properties are identified by a small integer, PropertyID, drawn from a
closed registry which is initialized exactly once. The registry carries
each property's default value, its inheritance and animation flags and the
rule used to transition list-valued properties.

# Reference counting

Constructors return values with a reference count of 1. Clients share a
value with Ref and give it up with Unref. Composite values own references
to their children and release them when they are dropped. Keyword and enum
values as well as the registry's default values are immortal; reference
operations on them are no-ops.

	v, err := css.ParseValue(css.PropertyBackgroundPosition, "10px, 20px")
	…
	defer css.Unref(v)

# Status

This is an early draft. The API will change without notice.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package css

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cascade.css'.
func tracer() tracing.Trace {
	return tracing.Select("cascade.css")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("css: "+msg, msgargs...)
		panic(msg)
	}
}
