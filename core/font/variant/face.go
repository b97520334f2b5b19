package variant

import (
	"sync"

	"github.com/npillmayer/pdffont/core"
	"github.com/npillmayer/pdffont/core/font"
	"github.com/npillmayer/pdffont/core/font/encoding"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// glyphSpace is the ppem we scale sfnt glyphs to: 1000 units per em, as
// PDF glyph space does.
var glyphSpace = fixed.I(1000)

// face wraps an sfnt font program. sfnt.Font is safe for concurrent use,
// sfnt.Buffer is not; every operation therefore uses its own buffer.
type face struct {
	sf     *sfnt.Font
	once   sync.Once
	byName map[string]sfnt.GlyphIndex // from the post table, built on demand
}

func parseFace(data []byte) (*face, error) {
	sf, err := sfnt.Parse(data)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot parse TrueType font program")
	}
	return &face{sf: sf}, nil
}

// name returns the PostScript name of the font program.
func (fc *face) name() string {
	var buf sfnt.Buffer
	n, err := fc.sf.Name(&buf, sfnt.NameIDPostScript)
	if err != nil {
		return ""
	}
	return n
}

// indexForRune looks up a rune in the font's cmap.
func (fc *face) indexForRune(r rune) (sfnt.GlyphIndex, bool) {
	var buf sfnt.Buffer
	gid, err := fc.sf.GlyphIndex(&buf, r)
	if err != nil || gid == 0 {
		return 0, false
	}
	return gid, true
}

// indexForName looks up a glyph name in the post table, then by the
// Unicode value the name stands for.
func (fc *face) indexForName(name string) (sfnt.GlyphIndex, bool) {
	fc.once.Do(func() {
		var buf sfnt.Buffer
		fc.byName = make(map[string]sfnt.GlyphIndex)
		for i := 1; i < fc.sf.NumGlyphs(); i++ {
			n, err := fc.sf.GlyphName(&buf, sfnt.GlyphIndex(i))
			if err != nil || n == "" {
				continue
			}
			if _, dup := fc.byName[n]; !dup {
				fc.byName[n] = sfnt.GlyphIndex(i)
			}
		}
	})
	if gid, ok := fc.byName[name]; ok {
		return gid, true
	}
	if r, ok := encoding.RuneForName(name); ok {
		return fc.indexForRune(r)
	}
	return 0, false
}

// indexForSymbol looks up a code of a symbolic font, which usually are
// mapped to the private use area 0xF000–0xF0FF.
func (fc *face) indexForSymbol(code font.Code) (sfnt.GlyphIndex, bool) {
	if gid, ok := fc.indexForRune(rune(0xf000 | code&0xff)); ok {
		return gid, true
	}
	return fc.indexForRune(rune(code))
}

// validIndex checks a glyph index taken from a CID to GID mapping.
func (fc *face) validIndex(gid int) bool {
	return gid >= 0 && gid < fc.sf.NumGlyphs()
}

// glyph creates a glyph for a glyph index, with name, advance and outline
// taken from the font program.
func (fc *face) glyph(code font.Code, gid sfnt.GlyphIndex) *font.Glyph {
	var buf sfnt.Buffer
	g := &font.Glyph{Code: code, Index: int(gid)}
	if n, err := fc.sf.GlyphName(&buf, gid); err == nil {
		g.Name = n
	}
	if adv, err := fc.sf.GlyphAdvance(&buf, gid, glyphSpace, xfont.HintingNone); err == nil {
		g.Advance = float64(adv) / 64
	}
	if segs, err := fc.sf.LoadGlyph(&buf, gid, glyphSpace, nil); err == nil {
		g.Outline = segs
	} else {
		tracer().Debugf("no outline for glyph %d: %v", gid, err)
	}
	return g
}
