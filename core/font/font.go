package font

import (
	"hash/fnv"
	"strings"
	"unicode/utf8"
)

// Encoding translates text into glyphs for a font. Implementations live
// in package encoding.
type Encoding interface {
	// IsOneByteIdentity marks an encoding which should be bypassed in favour
	// of plain single-byte codes.
	IsOneByteIdentity() bool
	// Glyphs translates text, resolving each code through f.CachedGlyph.
	Glyphs(f *Font, text string) []*Glyph
}

// UnicodeMap maps character codes to Unicode text, e.g. from a ToUnicode CMap.
type UnicodeMap interface {
	Lookup(code Code) (string, bool)
}

// Font is a resolved font: one concrete font variant, ready to produce
// glyphs for text.
//
// Fonts are equal if their base font names are equal. This does not
// distinguish between different embedded programs sharing a PostScript name.
//
// Subtype and encoding are set by the resolver right after construction,
// before the font is published; afterwards a font is safe for concurrent use.
type Font struct {
	subtype  string
	baseFont string
	variant  Variant
	desc     *Descriptor
	builder  GlyphBuilder
	encoding Encoding
	unicode  UnicodeMap
	cache    glyphCache
}

// New creates a font of a given variant. builder constructs single glyphs
// for the font.
func New(variant Variant, baseFont string, desc *Descriptor, builder GlyphBuilder) *Font {
	if desc == nil {
		desc = &Descriptor{BaseFont: baseFont, HasBaseFont: baseFont != "", Synthesized: true}
	}
	return &Font{
		subtype:  desc.SubtypeName,
		baseFont: baseFont,
		variant:  variant,
		desc:     desc,
		builder:  builder,
	}
}

// Subtype returns the subtype name the font has been resolved for.
func (f *Font) Subtype() string {
	return f.subtype
}

// SetSubtype stamps the subtype name.
func (f *Font) SetSubtype(subtype string) {
	f.subtype = subtype
}

// BaseFont returns the font's base font name.
func (f *Font) BaseFont() string {
	return f.baseFont
}

// Variant returns the tag of the font implementation.
func (f *Font) Variant() Variant {
	return f.variant
}

// Descriptor returns the descriptor the font has been constructed from.
func (f *Font) Descriptor() *Descriptor {
	return f.desc
}

// Builder returns the variant specific glyph builder.
func (f *Font) Builder() GlyphBuilder {
	return f.builder
}

// Encoding returns the font's encoding, which may be nil.
func (f *Font) Encoding() Encoding {
	return f.encoding
}

// SetEncoding sets an encoding. nil means "no encoding".
func (f *Font) SetEncoding(enc Encoding) {
	f.encoding = enc
}

// UnicodeMap returns the font's mapping to Unicode, which may be nil.
func (f *Font) UnicodeMap() UnicodeMap {
	return f.unicode
}

// SetUnicodeMap sets a mapping from codes to Unicode text.
func (f *Font) SetUnicodeMap(umap UnicodeMap) {
	f.unicode = umap
}

// Equal compares fonts by base font name.
func (f *Font) Equal(other *Font) bool {
	if f == nil || other == nil {
		return f == other
	}
	return f.baseFont == other.baseFont
}

// Hash returns a hash value of the base font name. Equal fonts have equal
// hashes.
func (f *Font) Hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte(f.baseFont))
	return h.Sum64()
}

func (f *Font) String() string {
	return f.baseFont
}

// Glyphs translates text into a sequence of glyphs.
//
// Text is split into code units by CodeUnits: one unit per rune of valid
// UTF-8 (see TextFromBytes), one unit per byte otherwise. If the font has
// an encoding, the encoding does the translation, except for the one-byte
// identity encoding. Otherwise every code unit is masked to its low byte
// and looked up without a glyph name. The result has exactly one glyph per
// code unit then.
func (f *Font) Glyphs(text string) []*Glyph {
	if f.encoding != nil && !f.encoding.IsOneByteIdentity() {
		return f.encoding.Glyphs(f, text)
	}
	units := CodeUnits(text)
	glyphs := make([]*Glyph, 0, len(units))
	for _, u := range units {
		glyphs = append(glyphs, f.CachedGlyph(Code(u&0xff), ""))
	}
	return glyphs
}

// CachedGlyph returns the glyph for a code, constructing it on first
// request. The cache is keyed by code only: name is a hint for constructing
// the glyph and is ignored once a glyph for code is cached.
func (f *Font) CachedGlyph(code Code, name string) *Glyph {
	return f.cache.lookupOrConstruct(code, func() *Glyph {
		if f.builder == nil {
			return Undefined(code)
		}
		return f.builder.ConstructGlyph(code, name)
	})
}

// IsCached is true if a glyph for code has been constructed already.
func (f *Font) IsCached(code Code) bool {
	return f.cache.contains(code)
}

// CacheSize returns the number of glyphs cached so far.
func (f *Font) CacheSize() int {
	return f.cache.size()
}

// TextFromBytes converts the bytes of a PDF string to text with one code
// unit per byte, suitable for Font.Glyphs.
func TextFromBytes(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, c := range b {
		sb.WriteRune(rune(c))
	}
	return sb.String()
}

// CodeUnits returns the code units of a text. Valid UTF-8, as produced by
// TextFromBytes, has one unit per rune. Any other string is taken as raw
// PDF string bytes with one unit per byte; it is never decoded to U+FFFD.
func CodeUnits(text string) []rune {
	if utf8.ValidString(text) {
		return []rune(text)
	}
	units := make([]rune, len(text))
	for i := 0; i < len(text); i++ {
		units[i] = rune(text[i])
	}
	return units
}
