/*
Package style implements the styling model of the toolkit: typed property
values, rule-sets, selector matching, and the cascade which turns matching
declarations into a flat computed style.

The stylesheet language is CSS-like, but deliberately simpler than CSS:

  - rules apply top-down; a later conflicting declaration overrides an
    earlier one. Specificity is ignored.
  - all lengths are treated as pixels by layout; units are parsed and
    preserved but advisory.
  - setting `width` or `height` sets both of the corresponding `min-*`
    and `max-*` properties.
  - `border` has a uniform width and no style; `background` carries a
    color only.

Parsing of stylesheet text lives in the subordinate package cssparse.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 The cuttle authors

*/
package style

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'cuttle.style'
func tracer() tracing.Trace {
	return tracing.Select("cuttle.style")
}

// ErrShorthand flags a shorthand declaration with a value count or shape
// not covered by the expansion table. This is an authoring error: the
// stylesheet has to be fixed, there is no runtime recovery.
var ErrShorthand = errors.New("shorthand declaration has unsupported shape")
