package fontindex

import (
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/flopp/go-findfont"
	"github.com/npillmayer/pdffont/core"
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/font/sfnt"
)

// Configuration keys read by New.
const (
	AvoidExternalTTF = "avoid-external-ttf"
	FontSearchPath   = "font-search-path"
	FontSearchSystem = "font-search-system"
)

// Index maps font names to font file paths.
type Index interface {
	Find(name string) (path string, ok bool)
	Len() int
	Names() []string
}

// declaredNames are the entries of a TrueType name table which are
// entered into the index.
var declaredNames = []sfnt.NameID{
	sfnt.NameIDFull,
	sfnt.NameIDPostScript,
	sfnt.NameIDFamily,
	sfnt.NameIDUniqueIdentifier,
	sfnt.NameIDCompatibleFull,
	sfnt.NameIDTypographicFamily,
}

// env is the part of the process environment the search path depends on.
type env struct {
	goos        string
	getenv      func(string) string
	home        func() (string, error)
	systemFonts func() []string
}

func processEnv() env {
	return env{
		goos:        runtime.GOOS,
		getenv:      os.Getenv,
		home:        os.UserHomeDir,
		systemFonts: findfont.List,
	}
}

// ScanIndex is an index built by scanning directories for TrueType files.
// It is populated on first use; afterwards it is read-only and safe for
// concurrent use.
type ScanIndex struct {
	conf  schuko.Configuration
	env   env
	once  sync.Once
	names *treemap.Map // name → path, sorted by name
}

// New creates an index from conf. Scanning is deferred until the first
// call to one of the index' methods.
func New(conf schuko.Configuration) *ScanIndex {
	return &ScanIndex{
		conf:  conf,
		env:   processEnv(),
		names: treemap.NewWithStringComparator(),
	}
}

// Find looks up a font name. Names must match exactly.
func (ix *ScanIndex) Find(name string) (string, bool) {
	ix.once.Do(ix.scan)
	p, ok := ix.names.Get(name)
	if !ok {
		return "", false
	}
	return p.(string), true
}

// Len returns the number of names in the index.
func (ix *ScanIndex) Len() int {
	ix.once.Do(ix.scan)
	return ix.names.Size()
}

// Names returns all names of the index in ascending order.
func (ix *ScanIndex) Names() []string {
	ix.once.Do(ix.scan)
	names := make([]string, 0, ix.names.Size())
	ix.names.Each(func(k, _ interface{}) {
		names = append(names, k.(string))
	})
	return names
}

// SearchPath returns the directories which are (or would be) scanned.
func (ix *ScanIndex) SearchPath() []string {
	return searchPath(ix.conf, ix.env)
}

func searchPath(conf schuko.Configuration, e env) []string {
	if p := conf.GetString(FontSearchPath); p != "" {
		return filepath.SplitList(p)
	}
	switch e.goos {
	case "windows":
		windir := e.getenv("WINDIR")
		if windir == "" {
			windir = "C:/WINDOWS"
		}
		return []string{windir + "/Fonts/"}
	case "darwin":
		dirs := []string{
			"/Library/Fonts",
			"/Network/Library/Fonts",
			"/System/Library/Fonts",
			"/System Folder/Fonts",
		}
		if home, err := e.home(); err == nil && home != "" {
			dirs = append([]string{filepath.Join(home, "Library", "Fonts")}, dirs...)
		}
		return dirs
	}
	return nil
}

func (ix *ScanIndex) scan() {
	if ix.conf.GetBool(AvoidExternalTTF) {
		tracer().Infof("external TrueType fonts disabled, font index stays empty")
		return
	}
	var files []string
	for _, dir := range searchPath(ix.conf, ix.env) {
		files = append(files, fontFiles(dir)...)
	}
	if ix.conf.GetBool(FontSearchSystem) && ix.env.systemFonts != nil {
		for _, f := range ix.env.systemFonts() {
			if isTTF(f) {
				files = append(files, f)
			}
		}
	}
	for _, f := range files {
		if err := ix.add(f); err != nil {
			tracer().Errorf("%v", err)
		}
	}
	tracer().Infof("font index holds %d names from %d files", ix.names.Size(), len(files))
}

// fontFiles lists the TrueType files of a directory in lexical order.
// Symbolic links are followed. Directories which cannot be read are
// skipped silently.
func fontFiles(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		tracer().Debugf("font directory %s skipped: %v", dir, err)
		return nil
	}
	var files []string
	for _, e := range entries {
		if !isTTF(e.Name()) {
			continue
		}
		path := filepath.Join(dir, e.Name())
		if fi, err := os.Stat(path); err != nil || !fi.Mode().IsRegular() {
			continue
		}
		files = append(files, path)
	}
	sort.Strings(files)
	return files
}

func isTTF(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".ttf")
}

func (ix *ScanIndex) add(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return core.WrapError(err, core.EINVALID, "cannot read font file %s", path)
	}
	f, err := sfnt.Parse(data)
	if err != nil {
		return core.WrapError(err, core.EINVALID, "cannot parse font file %s", path)
	}
	var b sfnt.Buffer
	for _, id := range declaredNames {
		name, err := f.Name(&b, id)
		if err != nil || name == "" {
			continue
		}
		if _, exists := ix.names.Get(name); !exists {
			ix.names.Put(name, path)
		}
	}
	return nil
}

// LogFontList is a helper function to dump the names of an index to the
// trace (level Info).
func LogFontList(ix Index) {
	level := tracer().GetTraceLevel()
	tracer().SetTraceLevel(tracing.LevelInfo)
	tracer().Infof("--- font index ----------------------------")
	for _, name := range ix.Names() {
		p, _ := ix.Find(name)
		tracer().Infof("%-40s %s", name, p)
	}
	tracer().Infof("-------------------------------------------")
	tracer().SetTraceLevel(level)
}

// --- Global index ----------------------------------------------------------

var systemIndex *ScanIndex
var systemIndexCreation sync.Once

// System returns the process-wide index, configured by the global
// configuration (gconf). It is created once and scanned on first use.
func System() Index {
	systemIndexCreation.Do(func() {
		systemIndex = New(globalConf{})
	})
	return systemIndex
}

// globalConf adapts the package-level functions of gconf to
// schuko.Configuration.
type globalConf struct{}

func (globalConf) InitDefaults() {}
func (globalConf) IsSet(key string) bool { return gconf.IsSet(key) }
func (globalConf) GetString(key string) string { return gconf.GetString(key) }
func (globalConf) GetInt(key string) int { return gconf.GetInt(key) }
func (globalConf) GetBool(key string) bool { return gconf.GetBool(key) }
func (globalConf) IsInteractive() bool { return gconf.IsInteractive() }

// --- Static index ----------------------------------------------------------

// Static is an index with fixed content.
type Static map[string]string

// Empty returns an index without entries.
func Empty() Index {
	return Static(nil)
}

// Find looks up a font name.
func (s Static) Find(name string) (string, bool) {
	p, ok := s[name]
	return p, ok
}

// Len returns the number of names.
func (s Static) Len() int {
	return len(s)
}

// Names returns the names of s in ascending order.
func (s Static) Names() []string {
	names := make([]string, 0, len(s))
	for n := range s {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
