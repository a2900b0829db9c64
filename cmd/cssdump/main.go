/*
Command cssdump is a debugging aid for the cascade engine.

It parses and prints property values, steps through transitions between
two values, and styles HTML documents, dumping the computed styles as a
tree:

	cssdump value color "mix(red, blue, 0.25)"
	cssdump transition margin-top 0 10px --steps 4
	cssdump style page.html --config cascade.yaml -p color -p font-size

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
