package font

import "fmt"

// Code is a character code as used in a PDF text string. Simple fonts use
// single-byte codes, composite fonts use codes of up to two bytes.
type Code uint16

// Glyph is the unit of rendering produced by a font for a character code.
// Font handling does not interpret a glyph's outline; it is handed over to
// the rendering pipeline as is.
type Glyph struct {
	Code    Code
	Name    string      // PostScript glyph name, if known
	Index   int         // glyph index (or CID) inside the font program, -1 if not applicable
	Rune    rune        // Unicode value, 0 if unknown
	Advance float64     // advance width in glyph space (1/1000 em), 0 if unknown
	Outline interface{} // variant specific outline data, may be nil
	undef   bool
}

// Undefined returns the marker glyph for a code which a font cannot
// render. It is a valid glyph, without an outline.
func Undefined(code Code) *Glyph {
	return &Glyph{Code: code, Name: ".notdef", Index: -1, undef: true}
}

// IsUndefined is true for glyphs created by Undefined.
func (g *Glyph) IsUndefined() bool {
	return g == nil || g.undef
}

func (g *Glyph) String() string {
	if g.IsUndefined() {
		return fmt.Sprintf("<undef %#04x>", g.Code)
	}
	if g.Name != "" {
		return fmt.Sprintf("<%#04x /%s #%d>", g.Code, g.Name, g.Index)
	}
	return fmt.Sprintf("<%#04x #%d>", g.Code, g.Index)
}

// GlyphBuilder is implemented by each font variant. ConstructGlyph must
// always return a usable glyph: it should prefer the glyph name if it is
// given and known, fall back to the code, and return Undefined(code) if
// neither leads to a glyph.
type GlyphBuilder interface {
	ConstructGlyph(code Code, name string) *Glyph
}

// GlyphBuilderFunc adapts a function to a GlyphBuilder.
type GlyphBuilderFunc func(code Code, name string) *Glyph

// ConstructGlyph calls f(code, name).
func (f GlyphBuilderFunc) ConstructGlyph(code Code, name string) *Glyph {
	return f(code, name)
}
