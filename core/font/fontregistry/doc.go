/*
Package fontregistry resolves PDF font dictionaries into fonts.

A Registry classifies a font dictionary by its /Subtype and selects a font
variant: an embedded program, an external TrueType file found by the font
index, or a built-in substitute. Every font dictionary resolves to exactly
one font instance per registry; repeated calls with the same dictionary
return the identical *font.Font.

Resolution never fails because of a broken or missing font program. The
only error reported to clients is a font dictionary with an unknown
subtype (core.EPARSE).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fontregistry

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'pdffont.resolve'
func tracer() tracing.Trace {
	return tracing.Select("pdffont.resolve")
}
