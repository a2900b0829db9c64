/*
Package cssom provides an abstraction of style sheets for the cascade.

# Overview

CSSOM is the "CSS Object Model", similar to the DOM for HTML.
Style providers do not talk to a CSS parser directly. CSS handling is
de-coupled by introducing the interfaces StyleSheet and Rule, and a
concrete implementation may be found in sub-package douceuradapter.

Besides qualified rules (selectors plus declarations) a style sheet for
widgets contains at-rules:

   @define-color bg_color #f6f5f4;
   @keyframes spin { from { opacity: 0 } to { opacity: 1 } }

A Rule therefore exposes its kind, the at-rule name and prelude, and any
rules nested in its block.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom
