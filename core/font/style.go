package font

import (
	"path"
	"strings"

	xfont "golang.org/x/image/font"
)

// StripSubsetTag removes a subset prefix ("ABCDEF+") from a base font name.
func StripSubsetTag(name string) string {
	if len(name) > 7 && name[6] == '+' {
		for _, c := range name[:6] {
			if c < 'A' || c > 'Z' {
				return name
			}
		}
		return name[7:]
	}
	return name
}

// GuessStyleAndWeight trys to guess a font's style and weight from a
// font name, e.g. "Helvetica-BoldOblique" or "Arial,BoldItalic".
// File names are accepted as well.
func GuessStyleAndWeight(fontname string) (xfont.Style, xfont.Weight) {
	fontname = path.Base(StripSubsetTag(fontname))
	if ext := path.Ext(fontname); ext != "" && len(ext) <= 4 {
		fontname = fontname[:len(fontname)-len(ext)]
	}
	fontname = strings.ToLower(fontname)
	style, weight := xfont.StyleNormal, xfont.WeightNormal
	if strings.Contains(fontname, "italic") {
		style = xfont.StyleItalic
	} else if strings.Contains(fontname, "oblique") || strings.Contains(fontname, "slanted") {
		style = xfont.StyleOblique
	}
	switch {
	case strings.Contains(fontname, "extralight"), strings.Contains(fontname, "xlight"):
		weight = xfont.WeightExtraLight
	case strings.Contains(fontname, "light"):
		weight = xfont.WeightLight
	case strings.Contains(fontname, "semibold"), strings.Contains(fontname, "demi"):
		weight = xfont.WeightSemiBold
	case strings.Contains(fontname, "extrabold"), strings.Contains(fontname, "xbold"):
		weight = xfont.WeightExtraBold
	case strings.Contains(fontname, "black"), strings.Contains(fontname, "heavy"):
		weight = xfont.WeightBlack
	case strings.Contains(fontname, "bold"):
		weight = xfont.WeightBold
	case strings.Contains(fontname, "medium"):
		weight = xfont.WeightMedium
	}
	return style, weight
}

// IsBold is true for weights of semi-bold and above.
func IsBold(weight xfont.Weight) bool {
	return weight >= xfont.WeightSemiBold
}

var fixedPitchFamilies = []string{"courier", "mono", "consola", "typewriter", "fixed"}

// guessFixedPitch trys to guess from a font name if a font is monospaced.
func guessFixedPitch(fontname string) bool {
	fontname = strings.ToLower(fontname)
	for _, f := range fixedPitchFamilies {
		if strings.Contains(fontname, f) {
			return true
		}
	}
	return false
}

// weightFromCSS converts a CSS font weight value (100…900) to an x/image weight.
func weightFromCSS(w int) xfont.Weight {
	if w <= 0 {
		return xfont.WeightNormal
	}
	if w < 100 {
		w = 100
	} else if w > 900 {
		w = 900
	}
	return xfont.Weight((w+50)/100 - 4)
}
