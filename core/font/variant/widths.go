package variant

import (
	"github.com/npillmayer/pdffont/core/font"
	"github.com/npillmayer/pdffont/core/pdfobj"
)

// widths are the glyph widths of a simple font, from /FirstChar and
// /Widths of the font dictionary.
type widths struct {
	first   int
	w       []float64
	missing float64
}

func simpleWidths(desc *font.Descriptor) widths {
	wd := widths{missing: desc.Metrics.MissingWidth}
	arr, ok := desc.Font.Array("Widths")
	if !ok {
		return wd
	}
	wd.first, _ = desc.Font.Int("FirstChar")
	wd.w = make([]float64, len(arr))
	for i, v := range arr {
		wd.w[i], _ = pdfobj.NumberOf(v)
	}
	return wd
}

// width returns the width of a code, if the font dictionary defines it.
func (wd widths) width(code font.Code) (float64, bool) {
	i := int(code) - wd.first
	if i >= 0 && i < len(wd.w) {
		return wd.w[i], true
	}
	if wd.missing != 0 {
		return wd.missing, true
	}
	return 0, false
}

// apply sets the advance of g from the font dictionary, if defined there.
func (wd widths) apply(g *font.Glyph) *font.Glyph {
	if g.IsUndefined() {
		return g
	}
	if w, ok := wd.width(g.Code); ok {
		g.Advance = w
	}
	return g
}

// cidWidths are the widths of a CIDFont, from /DW and /W.
//
// W holds entries of two forms: "c [w1 w2 …]" for consecutive CIDs starting
// at c, and "cfirst clast w" for a range of CIDs sharing a width.
type cidWidths struct {
	dflt float64
	w    map[int]float64
}

func cidFontWidths(fontDict *pdfobj.Dict) cidWidths {
	cw := cidWidths{dflt: 1000, w: make(map[int]float64)}
	if dw, ok := fontDict.Number("DW"); ok {
		cw.dflt = dw
	}
	arr, ok := fontDict.Array("W")
	if !ok {
		return cw
	}
	for i := 0; i+1 < len(arr); {
		first, ok := pdfobj.IntOf(arr[i])
		if !ok {
			break
		}
		if ws, ok := pdfobj.ArrayOf(arr[i+1]); ok {
			for j, v := range ws {
				cw.w[first+j], _ = pdfobj.NumberOf(v)
			}
			i += 2
			continue
		}
		if i+2 >= len(arr) {
			break
		}
		last, ok1 := pdfobj.IntOf(arr[i+1])
		w, ok2 := pdfobj.NumberOf(arr[i+2])
		if !ok1 || !ok2 || last-first > 0xffff {
			break
		}
		for c := first; c <= last; c++ {
			cw.w[c] = w
		}
		i += 3
	}
	return cw
}

func (cw cidWidths) width(cid font.Code) float64 {
	if w, ok := cw.w[int(cid)]; ok {
		return w
	}
	return cw.dflt
}
