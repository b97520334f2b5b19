package variant

import (
	"os"

	"github.com/npillmayer/pdffont/core"
	"github.com/npillmayer/pdffont/core/font"
	"github.com/npillmayer/pdffont/core/font/encoding"
	"github.com/npillmayer/pdffont/core/pdfobj"
	"golang.org/x/image/font/sfnt"
)

// TrueType creates a font from an embedded TrueType program (FontFile2).
func TrueType(desc *font.Descriptor) (*font.Font, error) {
	if desc.FontFile2 == nil {
		return nil, errNoProgram("TrueType", desc)
	}
	fc, err := parseFace(desc.FontFile2.Bytes())
	if err != nil {
		return nil, err
	}
	return newTrueType(font.TrueTypeEmbedded, desc, fc), nil
}

// TrueTypeExternal creates a font from a TrueType file, substituting a
// font which is not embedded into the document.
func TrueTypeExternal(desc *font.Descriptor, path string) (*font.Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot read font file %s", path)
	}
	fc, err := parseFace(data)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "font file %s", path)
	}
	tracer().Debugf("font '%s' substituted by %s (%s)", desc.BaseFont, path, fc.name())
	return newTrueType(font.TrueTypeExternal, desc, fc), nil
}

func newTrueType(v font.Variant, desc *font.Descriptor, fc *face) *font.Font {
	b := &trueTypeBuilder{
		face:     fc,
		symbolic: desc.IsSymbolic(),
		widths:   simpleWidths(desc),
	}
	if _, hasEnc := desc.Font.Get("Encoding"); hasEnc || !b.symbolic {
		b.names = encoding.SimpleFor(desc.Font, encoding.Standard())
	}
	return newFont(v, desc, b)
}

type trueTypeBuilder struct {
	face     *face
	symbolic bool
	names    *encoding.Simple // nil for symbolic fonts without /Encoding
	widths   widths
}

// ConstructGlyph looks up a glyph by name first. Without a name, symbolic
// fonts use the code directly, other fonts map the code to a glyph name
// and then to Unicode.
func (b *trueTypeBuilder) ConstructGlyph(code font.Code, name string) *font.Glyph {
	if name != "" {
		if gid, ok := b.face.indexForName(name); ok {
			return b.make(code, gid, name)
		}
	}
	if b.names != nil && code < 256 {
		if n := b.names.GlyphName(byte(code)); n != "" {
			if gid, ok := b.face.indexForName(n); ok {
				return b.make(code, gid, n)
			}
		}
	}
	if gid, ok := b.face.indexForSymbol(code); ok {
		return b.make(code, gid, "")
	}
	return font.Undefined(code)
}

func (b *trueTypeBuilder) make(code font.Code, gid sfnt.GlyphIndex, name string) *font.Glyph {
	g := b.face.glyph(code, gid)
	if name != "" {
		g.Name = name
		g.Rune, _ = encoding.RuneForName(name)
	}
	return b.widths.apply(g)
}

// --- CIDFontType2 ----------------------------------------------------------

// CIDFontType2 creates a CID-keyed font from an embedded TrueType program.
// /CIDToGIDMap maps CIDs to glyph indices; it is either /Identity (the
// default) or a stream of big-endian 16-bit glyph indices, indexed by CID.
func CIDFontType2(desc *font.Descriptor) (*font.Font, error) {
	if desc.FontFile2 == nil {
		return nil, errNoProgram("TrueType", desc)
	}
	fc, err := parseFace(desc.FontFile2.Bytes())
	if err != nil {
		return nil, err
	}
	b := &cid2Builder{face: fc, widths: cidFontWidths(desc.Font)}
	if obj, ok := desc.Font.Get("CIDToGIDMap"); ok {
		if s, ok := pdfobj.StreamOf(obj); ok {
			b.cidToGID = s.Bytes()
		} else if name, _ := pdfobj.NameOf(obj); name != "Identity" {
			return nil, core.Error(core.EINVALID, "invalid CIDToGIDMap %v", obj)
		}
	}
	f := newFont(font.CIDType2, desc, b)
	b.unicode = f.UnicodeMap()
	return f, nil
}

type cid2Builder struct {
	face     *face
	cidToGID []byte // nil for Identity
	widths   cidWidths
	unicode  font.UnicodeMap
}

// ConstructGlyph interprets code as a CID.
func (b *cid2Builder) ConstructGlyph(code font.Code, name string) *font.Glyph {
	gid := int(code)
	if b.cidToGID != nil {
		i := 2 * int(code)
		if i+1 >= len(b.cidToGID) {
			return font.Undefined(code)
		}
		gid = int(b.cidToGID[i])<<8 | int(b.cidToGID[i+1])
	}
	if gid == 0 || !b.face.validIndex(gid) {
		return font.Undefined(code)
	}
	g := b.face.glyph(code, sfnt.GlyphIndex(gid))
	g.Advance = b.widths.width(code)
	g.Rune, _ = runeFromUnicodeMap(b.unicode, code)
	return g
}
