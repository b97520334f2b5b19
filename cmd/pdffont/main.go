/*
Command pdffont is an interactive tool to inspect font resolution.

It resolves synthetic font dictionaries, optionally with an embedded font
program read from a file, and shows the glyphs a text translates to.
It also lists the external font index.

Usage:

   pdffont [-trace Debug|Info|Error] [-adapter go|logrus] [-path dirs] [-system] [-noexternal]

Commands are read from the console; see 'help'.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/pdffont/core/font/fontregistry"
	"github.com/npillmayer/pdffont/core/locate/fontindex"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/logrusadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'pdffont.cli'
func tracer() tracing.Trace {
	return tracing.Select("pdffont.cli")
}

func main() {
	initDisplay()

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	adapter := flag.String("adapter", "go", "Trace adapter [go|logrus]")
	searchPath := flag.String("path", "", "Font search path, overrides platform default")
	system := flag.Bool("system", false, "Index system fonts, too")
	noExternal := flag.Bool("noexternal", false, "Do not use external TrueType fonts")
	flag.Parse()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	tracing.RegisterTraceAdapter("logrus", logrusadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":          *adapter,
		"trace.pdffont.cli":        *tlevel,
		"trace.pdffont.resolve":    *tlevel,
		"trace.pdffont.fontindex":  *tlevel,
		"trace.pdffont.font":       *tlevel,
		fontindex.FontSearchPath:   *searchPath,
		fontindex.FontSearchSystem: *system,
		fontindex.AvoidExternalTTF: *noExternal,
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	pterm.Info.Println("Welcome to the PDF font CLI") // colored welcome message
	tracer().Infof("Trace level is %s", *tlevel)
	//
	// set up REPL
	repl, err := readline.New("pdffont > ")
	if err != nil {
		tracer().Errorf("%v", err)
		os.Exit(3)
	}
	ix := fontindex.New(conf)
	intp := &Intp{
		repl:     repl,
		index:    ix,
		registry: fontregistry.NewRegistry(ix),
	}
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.REPL()                             // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		cmd, err := parseCommand(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		quit, err := intp.execute(cmd)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}
