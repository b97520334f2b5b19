/*
Package variant implements the concrete font variants a font dictionary
may resolve to.

Every constructor takes a font dictionary together with its normalized
descriptor and returns a ready-to-use *font.Font or an error. Constructors
do not fall back on their own; deciding what to do with a failed
construction is up to the caller (see package fontregistry). The only
constructor which never fails is Builtin.

Variants differ in how they construct a single glyph:

▪︎ TrueType and CIDFontType2 fonts look up glyphs in an sfnt font program,
either embedded or loaded from an external file.

▪︎ Type1 and Type1C (CFF) fonts map glyph names or codes to charstrings.

▪︎ Type3 fonts map glyph names to character procedures.

▪︎ Type0 fonts delegate to their descendant CID font.

▪︎ The built-in variant substitutes one of the Go fonts, choosing regular,
bold, italic or monospace faces from the descriptor.

Glyph outlines are handed on as opaque values: sfnt.Segments for sfnt-based
variants, ProgramGlyph (program and glyph index) for Type1 and CFF, and
Type3Proc for Type3 fonts.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package variant

import (
	"github.com/npillmayer/pdffont/core"
	"github.com/npillmayer/pdffont/core/font"
	"github.com/npillmayer/pdffont/core/font/cmap"
	"github.com/npillmayer/pdffont/core/pdfobj"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'pdffont.font'
func tracer() tracing.Trace {
	return tracing.Select("pdffont.font")
}

// errNoProgram is returned by constructors which need an embedded font
// program which the descriptor does not have.
func errNoProgram(what string, desc *font.Descriptor) error {
	return core.Error(core.EMISSING, "font %s has no embedded %s program", desc.BaseFont, what)
}

// toUnicode reads the /ToUnicode CMap of a font dictionary, if present.
// A malformed CMap is traced and ignored.
func toUnicode(fontDict *pdfobj.Dict) font.UnicodeMap {
	s, ok := fontDict.Stream("ToUnicode")
	if !ok {
		return nil
	}
	cm, err := cmap.Parse(s.Bytes())
	if err != nil {
		tracer().Debugf("ignoring ToUnicode CMap: %v", err)
		return nil
	}
	return cm
}

// newFont creates a font and attaches the unicode map of the font
// dictionary.
func newFont(v font.Variant, desc *font.Descriptor, builder font.GlyphBuilder) *font.Font {
	f := font.New(v, desc.BaseFont, desc, builder)
	if umap := toUnicode(desc.Font); umap != nil {
		f.SetUnicodeMap(umap)
	}
	return f
}

// runeFromUnicodeMap returns the first rune the unicode map assigns to code.
func runeFromUnicodeMap(umap font.UnicodeMap, code font.Code) (rune, bool) {
	if umap == nil {
		return 0, false
	}
	s, ok := umap.Lookup(code)
	if !ok || s == "" {
		return 0, false
	}
	for _, r := range s {
		return r, true
	}
	return 0, false
}
