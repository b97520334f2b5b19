package variant

import (
	"bytes"
	"fmt"

	"github.com/benoitkugler/textlayout/fonts"
	"github.com/benoitkugler/textlayout/fonts/type1"
	type1c "github.com/benoitkugler/textlayout/fonts/type1C"
	"github.com/npillmayer/pdffont/core"
	"github.com/npillmayer/pdffont/core/font"
	"github.com/npillmayer/pdffont/core/font/encoding"
)

// Program is an embedded Type 1 or CFF font program.
type Program interface {
	GlyphName(gid fonts.GID) string
	PoscriptName() string
}

// ProgramGlyph is the outline of glyphs from Type 1 and CFF programs:
// the charstring of glyph GID in Program.
type ProgramGlyph struct {
	Program Program
	GID     fonts.GID
}

// Type1 creates a font from an embedded Type 1 program (FontFile).
// It fails if the program does not define any charstrings.
func Type1(desc *font.Descriptor) (*font.Font, error) {
	if desc.FontFile == nil {
		return nil, errNoProgram("Type1", desc)
	}
	l1, _ := desc.FontFile.Dict.Int("Length1")
	l2, _ := desc.FontFile.Dict.Int("Length2")
	data := type1Segments(desc.FontFile.Bytes(), l1, l2)
	var prog *type1.Font
	err := parseProgram("Type1", desc, func() (err error) {
		prog, err = type1.Parse(bytes.NewReader(data))
		return
	})
	if err != nil {
		return nil, err
	}
	if prog.GlyphName(0) == "" {
		return nil, core.Error(core.EINVALID, "Type1 program of font %s has no charstrings", desc.BaseFont)
	}
	upem := float64(prog.Upem())
	if upem == 0 {
		upem = 1000
	}
	b := &programBuilder{
		prog:   prog,
		gids:   glyphIndex(prog, 1<<16),
		names:  encoding.SimpleFor(desc.Font, encoding.FromNames(prog.Encoding)),
		widths: simpleWidths(desc),
		advance: func(gid fonts.GID) (adv float64) {
			defer func() { // broken charstrings have no advance
				if recover() != nil {
					adv = 0
				}
			}()
			return float64(prog.HorizontalAdvance(gid)) * 1000 / upem
		},
	}
	return newFont(font.Type1Embedded, desc, b), nil
}

// type1Segments cuts the cleartext and the encrypted portion of an embedded
// Type 1 program from the trailer. Lengths which do not fit the stream are
// ignored; the parser then searches for the eexec section itself.
func type1Segments(data []byte, length1, length2 int) []byte {
	if len(data) > 0 && data[0] == 0x80 { // PFB segments
		return data
	}
	if length1 <= 0 || length1 > len(data) || length2 <= 0 || length2 > len(data)-length1 {
		if length1 != 0 || length2 != 0 {
			tracer().Debugf("ignoring Length1=%d, Length2=%d of Type1 program with %d bytes",
				length1, length2, len(data))
		}
		return data
	}
	return data[:length1+length2]
}

// parseProgram runs a font program parser. Parsers panicking on malformed
// programs yield an EINVALID error.
func parseProgram(kind string, desc *font.Descriptor, parse func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			tracer().Errorf("%s parser failed on font %s: %v", kind, desc.BaseFont, r)
			err = core.Error(core.EINVALID, "%s program of font %s is malformed: %v", kind, desc.BaseFont, r)
		}
	}()
	if err = parse(); err != nil {
		err = core.WrapError(err, core.EINVALID, "%s program of font %s", kind, desc.BaseFont)
	}
	return
}

// glyphIndex maps the glyph names of a program to glyph indices, up to the
// first unnamed glyph.
func glyphIndex(prog Program, n int) map[string]fonts.GID {
	gids := make(map[string]fonts.GID)
	for gid := 0; gid < n; gid++ {
		name := prog.GlyphName(fonts.GID(gid))
		if name == "" {
			break
		}
		if _, dup := gids[name]; !dup {
			gids[name] = fonts.GID(gid)
		}
	}
	return gids
}

// --- Type1C ----------------------------------------------------------------

// Type1C creates a font from an embedded CFF program (FontFile3 of subtype
// Type1C).
func Type1C(desc *font.Descriptor) (*font.Font, error) {
	prog, err := parseCFF(desc)
	if err != nil {
		return nil, err
	}
	if prog.GlyphName(0) == "" {
		return nil, core.Error(core.EUNSUPPORTED, "CID-keyed CFF program in simple font %s", desc.BaseFont)
	}
	b := &programBuilder{
		prog:   prog,
		gids:   glyphIndex(prog, prog.NumGlyphs()),
		names:  encoding.SimpleFor(desc.Font, encoding.FromNames(prog.Encoding)),
		widths: simpleWidths(desc),
	}
	return newFont(font.Type1CFF, desc, b), nil
}

func parseCFF(desc *font.Descriptor) (*type1c.Font, error) {
	if desc.FontFile3 == nil {
		return nil, errNoProgram("CFF", desc)
	}
	data := desc.FontFile3.Bytes()
	var prog *type1c.Font
	err := parseProgram("CFF", desc, func() (err error) {
		prog, err = type1c.Parse(bytes.NewReader(data))
		return
	})
	if err != nil {
		return nil, err
	}
	if prog.NumGlyphs() == 0 {
		return nil, core.Error(core.EINVALID, "CFF program of font %s has no glyphs", desc.BaseFont)
	}
	return prog, nil
}

// programBuilder constructs glyphs of simple fonts with a Type 1 or CFF
// program.
type programBuilder struct {
	prog    Program
	gids    map[string]fonts.GID
	names   *encoding.Simple // dictionary encoding over the built-in one
	widths  widths
	advance func(gid fonts.GID) float64 // nil if the program has no metrics
}

// ConstructGlyph finds the glyph for a glyph name, or for the name the
// encoding assigns to code.
func (b *programBuilder) ConstructGlyph(code font.Code, name string) *font.Glyph {
	gid, ok := b.lookup(name)
	if !ok && code < 256 {
		name = b.names.GlyphName(byte(code))
		gid, ok = b.lookup(name)
	}
	if !ok {
		return font.Undefined(code)
	}
	g := &font.Glyph{
		Code:    code,
		Name:    name,
		Index:   int(gid),
		Outline: ProgramGlyph{Program: b.prog, GID: gid},
	}
	g.Rune, _ = encoding.RuneForName(name)
	if b.advance != nil {
		g.Advance = b.advance(gid)
	}
	return b.widths.apply(g)
}

func (b *programBuilder) lookup(name string) (fonts.GID, bool) {
	if name == "" || name == ".notdef" {
		return 0, false
	}
	gid, ok := b.gids[name]
	return gid, ok
}

func (pg ProgramGlyph) String() string {
	return fmt.Sprintf("%s#%d", pg.Program.PoscriptName(), pg.GID)
}
