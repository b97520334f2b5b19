package variant

import (
	"github.com/npillmayer/pdffont/core"
	"github.com/npillmayer/pdffont/core/font"
	"github.com/npillmayer/pdffont/core/font/encoding"
	"github.com/npillmayer/pdffont/core/pdfobj"
)

// Type3Proc is the outline of a Type3 glyph: a character procedure to be
// run by the rendering pipeline, together with the resources it refers to
// and the matrix mapping glyph space to text space.
type Type3Proc struct {
	Proc       *pdfobj.Stream
	Resources  *pdfobj.Dict
	FontMatrix [6]float64
}

// Type3 creates a font whose glyphs are defined by character procedures
// (/CharProcs). The font's own /Resources take precedence over the
// resource context of the caller.
func Type3(desc *font.Descriptor, resources *pdfobj.Dict) (*font.Font, error) {
	procs, ok := desc.Font.Dict("CharProcs")
	if !ok {
		return nil, core.Error(core.EMISSING, "Type3 font %s has no /CharProcs", desc.BaseFont)
	}
	b := &type3Builder{
		procs:      procs,
		resources:  resources,
		fontMatrix: [6]float64{0.001, 0, 0, 0.001, 0, 0},
		names:      encoding.SimpleFor(desc.Font, encoding.Standard()),
		widths:     simpleWidths(desc),
	}
	if res, ok := desc.Font.Dict("Resources"); ok {
		b.resources = res
	}
	if m, ok := desc.Font.Array("FontMatrix"); ok && len(m) == 6 {
		for i, v := range m {
			b.fontMatrix[i], _ = pdfobj.NumberOf(v)
		}
	}
	if b.resources == nil {
		tracer().Debugf("Type3 font %s without resources", desc.BaseFont)
	}
	return newFont(font.Type3Procedural, desc, b), nil
}

type type3Builder struct {
	procs      *pdfobj.Dict
	resources  *pdfobj.Dict
	fontMatrix [6]float64
	names      *encoding.Simple
	widths     widths
}

// ConstructGlyph finds the character procedure for a glyph name, or for
// the name the encoding assigns to code. Widths of Type3 fonts are given
// in glyph space and are scaled to 1/1000 em.
func (b *type3Builder) ConstructGlyph(code font.Code, name string) *font.Glyph {
	proc, ok := b.procs.Stream(pdfobj.Name(name))
	if !ok && code < 256 {
		name = b.names.GlyphName(byte(code))
		proc, ok = b.procs.Stream(pdfobj.Name(name))
	}
	if !ok || name == "" {
		return font.Undefined(code)
	}
	g := &font.Glyph{
		Code:  code,
		Name:  name,
		Index: -1,
		Outline: Type3Proc{
			Proc:       proc,
			Resources:  b.resources,
			FontMatrix: b.fontMatrix,
		},
	}
	g.Rune, _ = encoding.RuneForName(name)
	if w, ok := b.widths.width(code); ok {
		g.Advance = w * b.fontMatrix[0] * 1000
	}
	return g
}
