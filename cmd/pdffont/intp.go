package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/flopp/go-findfont"
	"github.com/npillmayer/pdffont/core"
	"github.com/npillmayer/pdffont/core/font"
	"github.com/npillmayer/pdffont/core/font/fontregistry"
	"github.com/npillmayer/pdffont/core/font/variant"
	"github.com/npillmayer/pdffont/core/locate/fontindex"
	"github.com/npillmayer/pdffont/core/pdfobj"
	"github.com/pterm/pterm"
)

// Intp is our interpreter object
type Intp struct {
	repl     *readline.Instance
	index    fontindex.Index
	registry *fontregistry.Registry
	font     *font.Font // current font, set by 'resolve'
}

// Op codes of commands.
const (
	QUIT int = iota
	HELP
	INDEX
	FIND
	LOCATE
	RESOLVE
	GLYPHS
)

// Command is a parsed command line.
type Command struct {
	code int
	args []string
	text string // rest of line, for GLYPHS
}

func parseCommand(line string) (*Command, error) {
	line = strings.TrimSpace(line)
	verb, rest, _ := strings.Cut(line, " ")
	cmd := &Command{args: strings.Fields(rest), text: strings.TrimLeft(rest, " ")}
	tracer().Debugf("parse command = %s %v", verb, cmd.args)
	switch strings.ToLower(verb) {
	case "quit", "exit":
		cmd.code = QUIT
	case "help", "?":
		cmd.code = HELP
	case "index":
		cmd.code = INDEX
	case "find":
		cmd.code = FIND
		if rest == "" {
			return nil, fmt.Errorf("usage: find <font name>")
		}
		cmd.args = []string{strings.TrimSpace(rest)} // names may contain spaces
	case "locate":
		cmd.code = LOCATE
		if len(cmd.args) != 1 {
			return nil, fmt.Errorf("usage: locate <font file>")
		}
	case "resolve":
		cmd.code = RESOLVE
		if len(cmd.args) < 2 || len(cmd.args) > 3 {
			return nil, fmt.Errorf("usage: resolve <subtype> <basefont> [font file]")
		}
	case "glyphs":
		cmd.code = GLYPHS
	default:
		return nil, fmt.Errorf("unknown command '%s', try 'help'", verb)
	}
	return cmd, nil
}

func (intp *Intp) execute(cmd *Command) (bool, error) {
	switch cmd.code {
	case QUIT:
		return true, nil
	case HELP:
		help()
	case INDEX:
		names := intp.index.Names()
		data := pterm.TableData{{"Name", "File"}}
		for _, name := range names {
			p, _ := intp.index.Find(name)
			data = append(data, []string{name, p})
		}
		if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
			return false, err
		}
		pterm.Printfln("%d names in font index", len(names))
		fontindex.LogFontList(intp.index)
	case FIND:
		p, ok := intp.index.Find(cmd.args[0])
		if !ok {
			pterm.Printfln("font '%s' not in index", cmd.args[0])
			break
		}
		pterm.Printfln("font '%s' = %s", cmd.args[0], p)
	case LOCATE:
		p, err := findfont.Find(cmd.args[0])
		if err != nil {
			return false, core.WrapError(err, core.EMISSING, "font file %s not found", cmd.args[0])
		}
		pterm.Printfln("font file %s = %s", cmd.args[0], p)
	case RESOLVE:
		d, err := fontDict(cmd.args)
		if err != nil {
			return false, err
		}
		f, err := intp.registry.Resolve(d, nil)
		if err != nil {
			return false, err
		}
		intp.font = f
		pterm.Printfln("resolved %s font '%s' as variant %s", f.Subtype(), f.BaseFont(), f.Variant())
		if desc := variant.Descendant(f); desc != nil {
			pterm.Printfln("descendant font '%s' is variant %s", desc.BaseFont(), desc.Variant())
		}
		intp.registry.LogFontList()
	case GLYPHS:
		if intp.font == nil {
			return false, fmt.Errorf("no current font, use 'resolve' first")
		}
		glyphs := intp.font.Glyphs(cmd.text)
		data := pterm.TableData{{"Code", "Name", "Rune", "Index", "Advance"}}
		for _, g := range glyphs {
			data = append(data, glyphRow(g))
		}
		if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
			return false, err
		}
	}
	return false, nil
}

func glyphRow(g *font.Glyph) []string {
	if g.IsUndefined() {
		return []string{fmt.Sprintf("%#04x", g.Code), "(undefined)", "", "", ""}
	}
	r := ""
	if g.Rune != 0 {
		r = fmt.Sprintf("%q", g.Rune)
	}
	return []string{
		fmt.Sprintf("%#04x", g.Code),
		g.Name,
		r,
		fmt.Sprintf("%d", g.Index),
		fmt.Sprintf("%.1f", g.Advance),
	}
}

// fontDict creates a font dictionary from the arguments of 'resolve':
// subtype, base font and an optional font program, which is embedded
// as FontFile, FontFile2 or FontFile3, depending on the subtype and the
// file's extension.
func fontDict(args []string) (*pdfobj.Dict, error) {
	d := pdfobj.NewDict().
		Set("Subtype", pdfobj.Name(args[0])).
		Set("BaseFont", pdfobj.Name(args[1]))
	if len(args) < 3 {
		return d, nil
	}
	data, err := os.ReadFile(args[2])
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "cannot read font program %s", args[2])
	}
	key := programKey(args[0], args[2])
	fd := pdfobj.NewDict().Set("FontName", pdfobj.Name(args[1]))
	sd := pdfobj.NewDict()
	if key == "FontFile3" {
		st := "Type1C"
		if args[0] == "CIDFontType0" {
			st = "CIDFontType0C"
		}
		sd.Set("Subtype", pdfobj.Name(st))
	}
	fd.Set(key, pdfobj.NewStream(sd, data))
	d.Set("FontDescriptor", fd)
	return d, nil
}

func programKey(subtype, filename string) pdfobj.Name {
	ext := strings.ToLower(filename)
	switch {
	case subtype == "TrueType" || subtype == "CIDFontType2":
		return "FontFile2"
	case subtype == "CIDFontType0" || strings.HasSuffix(ext, ".cff"):
		return "FontFile3"
	}
	return "FontFile"
}

func help() {
	pterm.Info.Println("Commands")
	pterm.Println(`
	index                              list the external font index
	find <name>                        look up a font name in the index
	locate <file>                      search a font file in the system font directories
	resolve <subtype> <basefont> [file]  resolve a font dictionary; file is embedded
	glyphs <text>                      translate text with the current font
	help                               this text
	quit                               leave the CLI
	`)
}
