/*
Package cmap reads CMap programs embedded in PDF documents.

Two kinds of CMaps matter for fonts: ToUnicode CMaps, mapping character codes
to Unicode text (bfchar, bfrange), and encoding CMaps of composite fonts,
mapping character codes to CIDs (cidchar, cidrange). Both share the same
PostScript-like syntax, and a single CMap type holds either kind of mapping.
Codespace ranges tell how to split a byte string into codes.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cmap

import (
	"github.com/npillmayer/pdffont/core"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'pdffont.font'
func tracer() tracing.Trace {
	return tracing.Select("pdffont.font")
}

func errCMapFormat(x string) error {
	return core.Error(core.EINVALID, "CMap format: %s", x)
}
