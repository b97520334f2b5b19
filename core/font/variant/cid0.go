package variant

import (
	"github.com/benoitkugler/textlayout/fonts"
	type1c "github.com/benoitkugler/textlayout/fonts/type1C"
	"github.com/npillmayer/pdffont/core/font"
	"github.com/npillmayer/pdffont/core/font/encoding"
)

// CIDFontType0 creates a CID-keyed font. If the descriptor has a CFF
// program, CIDs are taken as glyph indices into it. Otherwise glyphs are
// substituted from a Go font, following the font's ToUnicode CMap; the
// font fails only if its CFF program is broken.
//
// CIDFontType2 fonts without an embedded TrueType program are resolved by
// this variant, too.
func CIDFontType0(desc *font.Descriptor) (*font.Font, error) {
	b := &cid0Builder{widths: cidFontWidths(desc.Font)}
	if desc.FontFile3 != nil {
		prog, err := parseCFF(desc)
		if err != nil {
			return nil, err
		}
		b.prog = prog
	} else {
		tracer().Debugf("CID font %s has no CFF program, substituting", desc.BaseFont)
		b.face = builtinFace(faceKeyFor(desc))
	}
	f := newFont(font.CIDType0, desc, b)
	b.unicode = f.UnicodeMap()
	return f, nil
}

type cid0Builder struct {
	prog    *type1c.Font // nil if not embedded
	face    *face        // substitute if prog is nil
	widths  cidWidths
	unicode font.UnicodeMap
}

// ConstructGlyph interprets code as a CID.
func (b *cid0Builder) ConstructGlyph(code font.Code, name string) *font.Glyph {
	if b.prog == nil {
		g := fromUnicode(b.face, b.unicode, code)
		if !g.IsUndefined() {
			g.Advance = b.widths.width(code)
		}
		return g
	}
	if code == 0 || int(code) >= b.prog.NumGlyphs() {
		return font.Undefined(code)
	}
	gid := fonts.GID(code)
	g := &font.Glyph{
		Code:    code,
		Name:    b.prog.GlyphName(gid),
		Index:   int(gid),
		Outline: ProgramGlyph{Program: b.prog, GID: gid},
		Advance: b.widths.width(code),
	}
	g.Rune, _ = runeFromUnicodeMap(b.unicode, code)
	if g.Rune == 0 {
		g.Rune, _ = encoding.RuneForName(g.Name)
	}
	return g
}
