package variant

import (
	"sync"

	"github.com/npillmayer/pdffont/core/font"
	"github.com/npillmayer/pdffont/core/font/encoding"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
)

// faceKey selects one of the Go fonts.
type faceKey struct {
	mono, bold, italic bool
}

var goFonts = map[faceKey][]byte{
	{false, false, false}: goregular.TTF,
	{false, true, false}:  gobold.TTF,
	{false, false, true}:  goitalic.TTF,
	{false, true, true}:   gobolditalic.TTF,
	{true, false, false}:  gomono.TTF,
	{true, true, false}:   gomonobold.TTF,
	{true, false, true}:   gomonoitalic.TTF,
	{true, true, true}:    gomonobolditalic.TTF,
}

var builtinFaces struct {
	sync.Mutex
	faces map[faceKey]*face
}

// builtinFace returns a parsed Go font. Faces are parsed once and shared
// between all built-in fonts.
func builtinFace(key faceKey) *face {
	builtinFaces.Lock()
	defer builtinFaces.Unlock()
	if fc, ok := builtinFaces.faces[key]; ok {
		return fc
	}
	if builtinFaces.faces == nil {
		builtinFaces.faces = make(map[faceKey]*face)
	}
	fc, err := parseFace(goFonts[key])
	if err != nil { // Go fonts are well-formed
		panic(err)
	}
	builtinFaces.faces[key] = fc
	return fc
}

// faceKeyFor chooses a Go font from the flags and the style of a descriptor.
func faceKeyFor(desc *font.Descriptor) faceKey {
	return faceKey{
		mono:   desc.IsFixedPitch(),
		bold:   desc.Flags.Has(font.ForceBold) || font.IsBold(desc.Weight),
		italic: desc.Flags.Has(font.Italic) || desc.Style != xfont.StyleNormal,
	}
}

// Builtin creates the synthetic substitute font for a descriptor. It uses
// one of the Go fonts and never fails.
//
// Codes are mapped to glyph names by the font dictionary's /Encoding,
// defaulting to the built-in encoding of the standard font named by
// BaseFont, and names are mapped to Unicode.
func Builtin(desc *font.Descriptor) *font.Font {
	if desc == nil {
		desc = font.NormalizeDescriptor(nil)
	}
	key := faceKeyFor(desc)
	tracer().Debugf("built-in substitute for font '%s': mono=%v bold=%v italic=%v",
		desc.BaseFont, key.mono, key.bold, key.italic)
	b := &builtinBuilder{
		face:   builtinFace(key),
		names:  encoding.SimpleFor(desc.Font, encoding.ForStandardFont(desc.BaseFont)),
		widths: simpleWidths(desc),
	}
	f := newFont(font.Builtin, desc, b)
	b.unicode = f.UnicodeMap()
	return f
}

type builtinBuilder struct {
	face    *face
	names   *encoding.Simple
	widths  widths
	unicode font.UnicodeMap
}

// ConstructGlyph maps name or code to a rune and looks it up in the Go font.
func (b *builtinBuilder) ConstructGlyph(code font.Code, name string) *font.Glyph {
	r, ok := rune(0), false
	if name != "" {
		r, ok = encoding.RuneForName(name)
	}
	if !ok && code < 256 {
		if n := b.names.GlyphName(byte(code)); n != "" {
			name = n
			r, ok = encoding.RuneForName(n)
		}
	}
	if !ok {
		r, ok = runeFromUnicodeMap(b.unicode, code)
	}
	if !ok {
		return font.Undefined(code)
	}
	gid, found := b.face.indexForRune(r)
	if !found {
		return font.Undefined(code)
	}
	g := b.face.glyph(code, gid)
	g.Rune = r
	if name != "" {
		g.Name = name
	}
	return b.widths.apply(g)
}

// fromUnicode creates a glyph for a code from a Go font, using a unicode
// map to find the character. Composite fonts without a usable program use
// it for substitution.
func fromUnicode(fc *face, umap font.UnicodeMap, code font.Code) *font.Glyph {
	r, ok := runeFromUnicodeMap(umap, code)
	if !ok {
		return font.Undefined(code)
	}
	gid, found := fc.indexForRune(r)
	if !found {
		return font.Undefined(code)
	}
	g := fc.glyph(code, gid)
	g.Rune = r
	return g
}
