package variant

import (
	"github.com/npillmayer/pdffont/core"
	"github.com/npillmayer/pdffont/core/font"
	"github.com/npillmayer/pdffont/core/pdfobj"
)

// ResolveFunc resolves a font dictionary into a font. Type0 fonts use it to
// resolve their descendant font, so that descendants are shared through
// the same registry as every other font.
type ResolveFunc func(fontDict *pdfobj.Dict) (*font.Font, error)

// Type0 creates a composite font. Glyphs are taken from the first entry
// of /DescendantFonts; the encoding of the Type0 font maps codes to CIDs
// before they reach the descendant. /ToUnicode of the Type0 font becomes
// its unicode map.
func Type0(desc *font.Descriptor, resolve ResolveFunc) (*font.Font, error) {
	descendants, ok := desc.Font.Array("DescendantFonts")
	if !ok || len(descendants) == 0 {
		return nil, core.Error(core.EMISSING, "Type0 font %s has no descendant font", desc.BaseFont)
	}
	dd, ok := pdfobj.DictOf(descendants[0])
	if !ok {
		return nil, core.Error(core.EINVALID, "Type0 font %s: descendant is not a dictionary", desc.BaseFont)
	}
	if dd == desc.Font {
		return nil, core.Error(core.EINVALID, "Type0 font %s is its own descendant", desc.BaseFont)
	}
	descendant, err := resolve(dd)
	if err != nil {
		return nil, core.WrapError(err, core.Code(err),
			"descendant of Type0 font %s", desc.BaseFont)
	}
	b := &type0Builder{descendant: descendant}
	f := newFont(font.Type0Composite, desc, b)
	b.unicode = f.UnicodeMap()
	if b.unicode == nil {
		b.unicode = descendant.UnicodeMap()
	}
	return f, nil
}

type type0Builder struct {
	descendant *font.Font
	unicode    font.UnicodeMap
}

// Descendant returns the descendant font of a Type0 font, or nil if f is not
// a Type0 font.
func Descendant(f *font.Font) *font.Font {
	if b, ok := f.Builder().(*type0Builder); ok {
		return b.descendant
	}
	return nil
}

// ConstructGlyph delegates to the descendant font, which shares its glyph
// with us. If the descendant cannot render a code, a glyph is substituted
// from a Go font via the unicode map.
func (b *type0Builder) ConstructGlyph(code font.Code, name string) *font.Glyph {
	g := b.descendant.CachedGlyph(code, name)
	if g.IsUndefined() {
		if b.unicode != nil {
			return fromUnicode(builtinFace(faceKeyFor(b.descendant.Descriptor())), b.unicode, code)
		}
		return font.Undefined(code)
	}
	if g.Rune == 0 {
		if r, ok := runeFromUnicodeMap(b.unicode, code); ok {
			cp := *g
			cp.Rune = r
			return &cp
		}
	}
	return g
}
