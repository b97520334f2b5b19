package encoding

import (
	"github.com/benoitkugler/textlayout/fonts/simpleencodings"
	"github.com/npillmayer/pdffont/core"
	"github.com/npillmayer/pdffont/core/font"
	"github.com/npillmayer/pdffont/core/font/cmap"
	"github.com/npillmayer/pdffont/core/pdfobj"
)

// Simple is a single-byte encoding: every code maps to a glyph name.
type Simple struct {
	base        string
	names       [256]string
	differences int
}

// NewSimple creates a simple encoding from a base encoding name. An unknown
// or empty base name yields StandardEncoding.
func NewSimple(base string) *Simple {
	names, ok := baseTable(base)
	if !ok {
		base = StandardEncoding
		names, _ = baseTable(base)
	}
	return &Simple{base: base, names: names}
}

// Standard returns a fresh StandardEncoding.
func Standard() *Simple {
	return NewSimple(StandardEncoding)
}

// BuiltIn is the base name of encodings taken from a font program.
const BuiltIn = "BuiltIn"

// FromNames creates a simple encoding from the built-in encoding of a font
// program. Empty names are undefined. A nil table or the standard table
// yield StandardEncoding.
func FromNames(names *simpleencodings.Encoding) *Simple {
	if names == nil || names == &simpleencodings.AdobeStandard {
		return Standard()
	}
	return &Simple{base: BuiltIn, names: *names}
}

// BaseName returns the name of the base encoding.
func (s *Simple) BaseName() string {
	return s.base
}

// Differences returns the number of codes overridden by a /Differences array.
func (s *Simple) Differences() int {
	return s.differences
}

// GlyphName returns the glyph name for a code, or "" if the code is
// undefined in this encoding.
func (s *Simple) GlyphName(code byte) string {
	if n := s.names[code]; n != notdef && n != "" {
		return n
	}
	return ""
}

// Rune returns the Unicode value of the glyph for code, if known.
func (s *Simple) Rune(code byte) (rune, bool) {
	if n := s.GlyphName(code); n != "" {
		return RuneForName(n)
	}
	return 0, false
}

// Code returns the first code mapping to a glyph name.
func (s *Simple) Code(name string) (byte, bool) {
	for c, n := range s.names {
		if n == name {
			return byte(c), true
		}
	}
	return 0, false
}

// ApplyDifferences overrides codes from a /Differences array:
// a number sets the current code, each following name is assigned to the
// current code, which is incremented.
func (s *Simple) ApplyDifferences(diffs pdfobj.Array) {
	code := -1
	for _, d := range diffs {
		if n, ok := pdfobj.IntOf(d); ok {
			code = n
			continue
		}
		name, ok := d.(pdfobj.Name)
		if !ok || code < 0 {
			continue
		}
		if code < 256 {
			s.names[code] = string(name)
			s.differences++
		}
		code++
	}
}

// IsOneByteIdentity is false for simple encodings.
func (s *Simple) IsOneByteIdentity() bool {
	return false
}

// Glyphs looks up a glyph for each code unit of text, masked to a byte,
// with the glyph name this encoding assigns to it.
func (s *Simple) Glyphs(f *font.Font, text string) []*font.Glyph {
	units := font.CodeUnits(text)
	glyphs := make([]*font.Glyph, 0, len(units))
	for _, u := range units {
		c := byte(u & 0xff)
		glyphs = append(glyphs, f.CachedGlyph(font.Code(c), s.GlyphName(c)))
	}
	return glyphs
}

// --- Composite encodings ---------------------------------------------------

// Identity is the Identity-H or Identity-V CMap: two-byte codes, CID = code.
type Identity struct {
	Vertical bool
}

// IsOneByteIdentity is false for Identity-H/V.
func (id Identity) IsOneByteIdentity() bool {
	return false
}

// Glyphs combines pairs of code units into 16-bit codes. A trailing
// single byte is used as is.
func (id Identity) Glyphs(f *font.Font, text string) []*font.Glyph {
	units := font.CodeUnits(text)
	glyphs := make([]*font.Glyph, 0, len(units)/2+1)
	for i := 0; i < len(units); i += 2 {
		code := font.Code(units[i] & 0xff)
		if i+1 < len(units) {
			code = code<<8 | font.Code(units[i+1]&0xff)
		}
		glyphs = append(glyphs, f.CachedGlyph(code, ""))
	}
	return glyphs
}

// OneByteIdentity marks the pseudo CMap "OneByteIdentityH". Fonts bypass it
// and use single-byte codes directly.
type OneByteIdentity struct{}

// IsOneByteIdentity is true.
func (OneByteIdentity) IsOneByteIdentity() bool {
	return true
}

// Glyphs translates single-byte codes.
func (OneByteIdentity) Glyphs(f *font.Font, text string) []*font.Glyph {
	units := font.CodeUnits(text)
	glyphs := make([]*font.Glyph, 0, len(units))
	for _, u := range units {
		glyphs = append(glyphs, f.CachedGlyph(font.Code(u&0xff), ""))
	}
	return glyphs
}

// CMapEncoding is an embedded encoding CMap of a composite font.
type CMapEncoding struct {
	CMap *cmap.CMap
}

// IsOneByteIdentity is false.
func (ce CMapEncoding) IsOneByteIdentity() bool {
	return false
}

// Glyphs splits text into codes along the codespace ranges and maps each
// code to a CID. Codes without a CID mapping use CID 0.
func (ce CMapEncoding) Glyphs(f *font.Font, text string) []*font.Glyph {
	units := font.CodeUnits(text)
	b := make([]byte, len(units))
	for i, u := range units {
		b[i] = byte(u & 0xff)
	}
	var glyphs []*font.Glyph
	for len(b) > 0 {
		code, n := ce.CMap.NextCode(b)
		b = b[n:]
		cid, _ := ce.CMap.LookupCID(code)
		glyphs = append(glyphs, f.CachedGlyph(font.Code(cid), ""))
	}
	return glyphs
}

// --- Construction from font dictionaries -----------------------------------

// New creates an encoding from the /Encoding entry of a font dictionary.
// A nil entry yields a nil encoding. For Type0 fonts, names denote CMaps
// and streams are embedded CMaps; for other font types names denote base
// encodings and dictionaries carry /BaseEncoding and /Differences.
func New(subtype string, obj pdfobj.Object) (font.Encoding, error) {
	if obj == nil {
		return nil, nil
	}
	if subtype == "Type0" {
		return newComposite(obj)
	}
	if name, ok := pdfobj.NameOf(obj); ok {
		if _, ok := baseTable(name); !ok {
			return nil, core.Error(core.EUNSUPPORTED, "unsupported base encoding %q", name)
		}
		return NewSimple(name), nil
	}
	if d, ok := pdfobj.DictOf(obj); ok {
		return fromDict(d), nil
	}
	return nil, core.Error(core.EINVALID, "invalid /Encoding entry of type %T", obj)
}

func newComposite(obj pdfobj.Object) (font.Encoding, error) {
	if s, ok := pdfobj.StreamOf(obj); ok {
		cm, err := cmap.Parse(s.Bytes())
		if err != nil {
			return nil, core.WrapError(err, core.EINVALID, "embedded CMap")
		}
		return CMapEncoding{CMap: cm}, nil
	}
	name, ok := pdfobj.NameOf(obj)
	if !ok {
		return nil, core.Error(core.EINVALID, "invalid CMap entry of type %T", obj)
	}
	switch name {
	case "Identity-H":
		return Identity{}, nil
	case "Identity-V":
		return Identity{Vertical: true}, nil
	case "OneByteIdentityH":
		return OneByteIdentity{}, nil
	}
	return nil, core.Error(core.EUNSUPPORTED, "unknown CMap %q", name)
}

func fromDict(d *pdfobj.Dict) *Simple {
	base, _ := d.Name("BaseEncoding")
	s := NewSimple(base)
	if diffs, ok := d.Array("Differences"); ok {
		s.ApplyDifferences(diffs)
	}
	return s
}

// SimpleFor returns the simple encoding described by a font dictionary's
// /Encoding entry, or fallback if there is none or it is not a simple
// encoding. Font variants use it to map codes to glyph names.
func SimpleFor(fontDict *pdfobj.Dict, fallback *Simple) *Simple {
	obj, ok := fontDict.Get("Encoding")
	if !ok {
		return fallback
	}
	if name, ok := pdfobj.NameOf(obj); ok {
		if _, ok := baseTable(name); ok {
			return NewSimple(name)
		}
		return fallback
	}
	if d, ok := pdfobj.DictOf(obj); ok {
		if _, hasBase := d.Get("BaseEncoding"); !hasBase && fallback != nil {
			s := *fallback
			if diffs, ok := d.Array("Differences"); ok {
				s.ApplyDifferences(diffs)
			}
			return &s
		}
		return fromDict(d)
	}
	return fallback
}
