package encoding

import (
	"strings"

	"github.com/benoitkugler/textlayout/fonts/simpleencodings"
)

const notdef = ".notdef"

// Names of the base encodings of PDF 1.7, appendix D.
const (
	StandardEncoding = "StandardEncoding"
	WinAnsiEncoding  = "WinAnsiEncoding"
	MacRomanEncoding = "MacRomanEncoding"
	MacExpert        = "MacExpertEncoding"
)

// Built-in encodings of the symbolic standard fonts. They are not valid
// as /BaseEncoding entries.
const (
	SymbolEncoding       = "SymbolEncoding"
	ZapfDingbatsEncoding = "ZapfDingbatsEncoding"
)

// baseTable returns the glyph names of a base encoding.
func baseTable(name string) ([256]string, bool) {
	switch name {
	case StandardEncoding:
		return simpleencodings.AdobeStandard, true
	case WinAnsiEncoding:
		return simpleencodings.WinAnsi, true
	case MacRomanEncoding:
		return simpleencodings.MacRoman, true
	case MacExpert:
		return simpleencodings.MacExpert, true
	}
	return [256]string{}, false
}

// ForStandardFont returns the built-in encoding of one of the 14 standard
// fonts: the symbolic fonts Symbol and ZapfDingbats have their own, all
// others use StandardEncoding. A subset tag is ignored.
func ForStandardFont(baseFont string) *Simple {
	if i := strings.IndexByte(baseFont, '+'); i == 6 {
		baseFont = baseFont[i+1:]
	}
	switch baseFont {
	case "Symbol":
		return &Simple{base: SymbolEncoding, names: simpleencodings.Symbol}
	case "ZapfDingbats":
		return &Simple{base: ZapfDingbatsEncoding, names: simpleencodings.ZapfDingbats}
	}
	return Standard()
}
