package encoding

import (
	"strconv"
	"strings"

	"github.com/benoitkugler/textlayout/fonts/glyphsnames"
)

// RuneForName returns the Unicode value of a glyph name, following the
// Adobe Glyph List. Suffixes (".sc", ".alt") are ignored, "uniXXXX" and
// "uXXXX[XX]" names are decoded. Ligature names without a Unicode value
// ("f_f_i") yield their first component.
func RuneForName(name string) (rune, bool) {
	if name == "" || name == notdef {
		return 0, false
	}
	if dot := strings.IndexByte(name, '.'); dot > 0 {
		name = name[:dot]
	}
	if r, ok := codepointName(name); ok {
		return r, true
	}
	if r, ok := glyphsnames.GlyphToRune(name); ok {
		return r, true
	}
	if us := strings.IndexByte(name, '_'); us > 0 {
		return RuneForName(name[:us])
	}
	return 0, false
}

// codepointName decodes "uniXXXX" and "uXXXX" to "uXXXXXX" names. Hex
// digits must be upper case.
func codepointName(name string) (rune, bool) {
	var digits string
	switch {
	case strings.HasPrefix(name, "uni") && len(name) >= 7:
		digits = name[3:7]
	case strings.HasPrefix(name, "u") && len(name) >= 5 && len(name) <= 7:
		digits = name[1:]
	default:
		return 0, false
	}
	if strings.ToUpper(digits) != digits {
		return 0, false
	}
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil || v > 0x10ffff || (v >= 0xd800 && v <= 0xdfff) {
		return 0, false
	}
	return rune(v), true
}
