package font

import (
	"github.com/npillmayer/pdffont/core/pdfobj"
	xfont "golang.org/x/image/font"
)

// ProgramKind is the kind of font program embedded into a document.
type ProgramKind int8

// Embedded program kinds, as announced by a font descriptor.
const (
	NoProgram       ProgramKind = iota
	Type1Program                // FontFile
	TrueTypeProgram             // FontFile2
	CFFProgram                  // FontFile3
)

func (pk ProgramKind) String() string {
	switch pk {
	case Type1Program:
		return "Type1"
	case TrueTypeProgram:
		return "TrueType"
	case CFFProgram:
		return "CFF"
	}
	return "none"
}

// Flags are the font descriptor flags of PDF 1.7, table 123.
type Flags uint32

const (
	FixedPitch  Flags = 1 << 0
	Serif       Flags = 1 << 1
	Symbolic    Flags = 1 << 2
	Script      Flags = 1 << 3
	Nonsymbolic Flags = 1 << 5
	Italic      Flags = 1 << 6
	AllCap      Flags = 1 << 16
	SmallCap    Flags = 1 << 17
	ForceBold   Flags = 1 << 18
)

// Has is true if all flags of x are set.
func (f Flags) Has(x Flags) bool {
	return f&x == x
}

// Metrics are passed through from the font descriptor dictionary.
// Values are in glyph space (1/1000 text space units).
type Metrics struct {
	FontBBox     [4]float64
	ItalicAngle  float64
	Ascent       float64
	Descent      float64
	CapHeight    float64
	StemV        float64
	MissingWidth float64
	FontWeight   int // CSS-like, 0 if absent
}

// Descriptor is a normalized, read-only view onto a font dictionary.
// It is input for deciding which font variant to construct and is handed
// to the variant constructors.
type Descriptor struct {
	SubtypeName string  // /Subtype or /S, "" if absent
	Subtype     Subtype // classified SubtypeName
	BaseFont    string  // /BaseFont or /Name, "" if absent
	HasBaseFont bool
	FontName    string // /FontName of the descriptor dictionary
	Family      string
	Flags       Flags
	Metrics     Metrics
	Style       xfont.Style
	Weight      xfont.Weight
	FontFile    *pdfobj.Stream // Type1 program
	FontFile2   *pdfobj.Stream // TrueType program
	FontFile3   *pdfobj.Stream // CFF program; see FontFile3Subtype
	// FontFile3Subtype is the /Subtype of FontFile3: Type1C, CIDFontType0C or OpenType
	FontFile3Subtype string
	// Synthesized is set if the font dictionary had no /FontDescriptor and
	// everything has been derived from the base font name.
	Synthesized bool
	Font        *pdfobj.Dict // the font dictionary itself
	Source      *pdfobj.Dict // the font descriptor dictionary, nil if Synthesized
}

// Program reports the kind of embedded font program. If more than one
// program is present, FontFile has precedence over FontFile2 over FontFile3.
func (d *Descriptor) Program() ProgramKind {
	switch {
	case d.FontFile != nil:
		return Type1Program
	case d.FontFile2 != nil:
		return TrueTypeProgram
	case d.FontFile3 != nil:
		return CFFProgram
	}
	return NoProgram
}

// IsFixedPitch is true for monospaced fonts.
func (d *Descriptor) IsFixedPitch() bool {
	return d.Flags.Has(FixedPitch)
}

// IsSymbolic is true for fonts with glyphs outside the standard Latin set.
func (d *Descriptor) IsSymbolic() bool {
	return d.Flags.Has(Symbolic) && !d.Flags.Has(Nonsymbolic)
}

// NormalizeDescriptor extracts a descriptor from a font dictionary.
// It never fails: missing entries are left empty.
//
// If the font dictionary has no /FontDescriptor, a descriptor is
// synthesized from the base font name alone.
func NormalizeDescriptor(fontDict *pdfobj.Dict) *Descriptor {
	d := &Descriptor{Font: fontDict}
	var ok bool
	if d.SubtypeName, ok = fontDict.Name("Subtype"); !ok {
		d.SubtypeName, _ = fontDict.Name("S")
	}
	d.Subtype = SubtypeFromName(d.SubtypeName)
	if d.BaseFont, d.HasBaseFont = fontDict.Name("BaseFont"); !d.HasBaseFont {
		d.BaseFont, d.HasBaseFont = fontDict.Name("Name")
	}
	fd, ok := fontDict.Dict("FontDescriptor")
	if !ok {
		synthesize(d)
		return d
	}
	d.Source = fd
	d.FontName, _ = fd.Name("FontName")
	d.Family, _ = fd.Name("FontFamily")
	if flags, ok := fd.Int("Flags"); ok {
		d.Flags = Flags(flags)
	}
	if bbox, ok := fd.Array("FontBBox"); ok && len(bbox) == 4 {
		for i, v := range bbox {
			d.Metrics.FontBBox[i], _ = pdfobj.NumberOf(v)
		}
	}
	d.Metrics.ItalicAngle, _ = fd.Number("ItalicAngle")
	d.Metrics.Ascent, _ = fd.Number("Ascent")
	d.Metrics.Descent, _ = fd.Number("Descent")
	d.Metrics.CapHeight, _ = fd.Number("CapHeight")
	d.Metrics.StemV, _ = fd.Number("StemV")
	d.Metrics.MissingWidth, _ = fd.Number("MissingWidth")
	d.Metrics.FontWeight, _ = fd.Int("FontWeight")
	d.FontFile, _ = fd.Stream("FontFile")
	d.FontFile2, _ = fd.Stream("FontFile2")
	if d.FontFile3, ok = fd.Stream("FontFile3"); ok {
		d.FontFile3Subtype, _ = d.FontFile3.Dict.Name("Subtype")
	}
	name := d.FontName
	if name == "" {
		name = d.BaseFont
	}
	d.Style, d.Weight = GuessStyleAndWeight(name)
	if d.Flags.Has(Italic) && d.Style == xfont.StyleNormal {
		d.Style = xfont.StyleItalic
	}
	if d.Metrics.FontWeight > 0 {
		d.Weight = weightFromCSS(d.Metrics.FontWeight)
	} else if d.Flags.Has(ForceBold) && !IsBold(d.Weight) {
		d.Weight = xfont.WeightBold
	}
	return d
}

// synthesize fills a descriptor from the base font name only.
func synthesize(d *Descriptor) {
	d.Synthesized = true
	d.FontName = d.BaseFont
	d.Style, d.Weight = GuessStyleAndWeight(d.BaseFont)
	if guessFixedPitch(d.BaseFont) {
		d.Flags |= FixedPitch
	}
	if d.Style != xfont.StyleNormal {
		d.Flags |= Italic
	}
	switch StripSubsetTag(d.BaseFont) {
	case "Symbol", "ZapfDingbats":
		d.Flags |= Symbolic
	default:
		d.Flags |= Nonsymbolic
	}
	tracer().Debugf("synthesized font descriptor for '%s'", d.BaseFont)
}
