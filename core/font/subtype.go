package font

// Subtype is the font type as declared by a font dictionary's /Subtype.
type Subtype int8

// Font subtypes of PDF 1.7, section 9.
const (
	UnknownSubtype Subtype = iota
	Type0
	Type1
	MMType1
	TrueType
	Type3
	CIDFontType0
	CIDFontType2
)

var subtypeNames = [...]string{
	"Unknown", "Type0", "Type1", "MMType1", "TrueType", "Type3",
	"CIDFontType0", "CIDFontType2",
}

func (st Subtype) String() string {
	if st < 0 || int(st) >= len(subtypeNames) {
		return subtypeNames[0]
	}
	return subtypeNames[st]
}

// SubtypeFromName classifies a subtype name. Names are case sensitive;
// anything unrecognized is UnknownSubtype.
func SubtypeFromName(name string) Subtype {
	for i, n := range subtypeNames[1:] {
		if n == name {
			return Subtype(i + 1)
		}
	}
	return UnknownSubtype
}

// Variant tags the concrete implementation behind a resolved font.
type Variant int8

// Font variants. Builtin is the synthetic substitute which is always
// available.
const (
	Builtin Variant = iota
	Type0Composite
	Type1Embedded
	Type1CFF
	TrueTypeEmbedded
	TrueTypeExternal
	Type3Procedural
	CIDType0
	CIDType2
)

var variantNames = [...]string{
	"Built-in", "Type0", "Type1", "Type1C", "TrueType", "TrueType(external)",
	"Type3", "CIDFontType0", "CIDFontType2",
}

func (v Variant) String() string {
	if v < 0 || int(v) >= len(variantNames) {
		return "?"
	}
	return variantNames[v]
}
