package fontregistry

import (
	"sort"
	"sync"
	"sync/atomic"

	"github.com/npillmayer/pdffont/core"
	"github.com/npillmayer/pdffont/core/font"
	"github.com/npillmayer/pdffont/core/locate/fontindex"
	"github.com/npillmayer/pdffont/core/pdfobj"
	"github.com/npillmayer/schuko/tracing"
)

// Registry is a type for holding the fonts resolved for a document.
// Fonts are keyed by the identity of their font dictionary (see
// pdfobj.Dict.Identity), not by name.
//
// A registry is safe for concurrent use. For each font dictionary, at most
// one resolution is in progress at any time; concurrent callers for the
// same dictionary wait for it and receive its result.
type Registry struct {
	sync.RWMutex
	index fontindex.Index
	fonts map[interface{}]*entry
}

// entry is a once-cell for a single font dictionary.
type entry struct {
	once     sync.Once
	resolved atomic.Pointer[font.Font] // nil until resolved
	err      error
}

var globalFontRegistry *Registry

var globalRegistryCreation sync.Once

// GlobalRegistry is an application-wide singleton to hold resolved fonts,
// using the system font index. Clients processing more than one document
// should use a registry per document instead.
func GlobalRegistry() *Registry {
	globalRegistryCreation.Do(func() {
		globalFontRegistry = NewRegistry(fontindex.System())
	})
	return globalFontRegistry
}

// NewRegistry creates an empty registry. Fonts which are neither embedded
// nor standard fonts are looked up in index. index may be nil, which is
// the same as an empty index.
func NewRegistry(index fontindex.Index) *Registry {
	if index == nil {
		index = fontindex.Empty()
	}
	return &Registry{
		index: index,
		fonts: make(map[interface{}]*entry),
	}
}

// Resolve returns the font for a font dictionary. resources is the
// resource dictionary in effect where the font is used; it is needed
// for Type3 fonts only and may be nil otherwise.
//
// Resolve is idempotent: for the same font dictionary it returns the same
// font instance, even if the dictionary has been changed in between.
// The only error returned is core.EPARSE, for a dictionary with a missing
// or unknown subtype, short of core.EINTERNAL for a resolution which
// crashed. Errors are not memoized.
func (fr *Registry) Resolve(fontDict *pdfobj.Dict, resources *pdfobj.Dict) (*font.Font, error) {
	key := fontDict.Identity()
	fr.RLock()
	e, ok := fr.fonts[key]
	fr.RUnlock()
	if !ok {
		fr.Lock()
		if e, ok = fr.fonts[key]; !ok {
			e = &entry{}
			fr.fonts[key] = e
		}
		fr.Unlock()
	}
	e.once.Do(func() {
		defer func() {
			if r := recover(); r != nil {
				e.err = core.Error(core.EINTERNAL, "resolving font: %v", r)
			}
		}()
		f, err := fr.resolve(fontDict, resources)
		e.resolved.Store(f)
		e.err = err
	})
	if e.err != nil {
		fr.Lock()
		if fr.fonts[key] == e {
			delete(fr.fonts, key)
		}
		fr.Unlock()
		return nil, e.err
	}
	return e.resolved.Load(), nil
}

// Len returns the number of fonts in the registry.
func (fr *Registry) Len() int {
	fr.RLock()
	defer fr.RUnlock()
	n := 0
	for _, e := range fr.fonts {
		if e.resolved.Load() != nil {
			n++
		}
	}
	return n
}

// Index returns the external font index used by fr.
func (fr *Registry) Index() fontindex.Index {
	return fr.index
}

// LogFontList is a helper function to dump the list of resolved fonts in a
// registry to the trace-file (log-level Info).
func (fr *Registry) LogFontList() {
	fr.RLock()
	fonts := make([]*font.Font, 0, len(fr.fonts))
	for _, e := range fr.fonts {
		if f := e.resolved.Load(); f != nil {
			fonts = append(fonts, f)
		}
	}
	fr.RUnlock()
	sort.Slice(fonts, func(i, j int) bool {
		return fonts[i].BaseFont() < fonts[j].BaseFont()
	})
	level := tracer().GetTraceLevel()
	tracer().SetTraceLevel(tracing.LevelInfo)
	tracer().Infof("--- resolved fonts ---")
	for _, f := range fonts {
		tracer().Infof("font [%s] = %s/%s, %d glyphs cached", f.BaseFont(), f.Subtype(),
			f.Variant(), f.CacheSize())
	}
	tracer().Infof("----------------------")
	tracer().SetTraceLevel(level)
}
