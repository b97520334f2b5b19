package font

import "sync"

// glyphCache holds the glyphs of one font, keyed by character code.
//
// The cache is fully synchronized: readers share a read lock, a miss takes
// the write lock, checks again and constructs the glyph while holding it.
// Thus at most one glyph is ever constructed per code and every caller
// sees the first glyph stored. Entries are never evicted.
type glyphCache struct {
	sync.RWMutex
	glyphs map[Code]*Glyph
}

func (gc *glyphCache) lookup(code Code) (*Glyph, bool) {
	gc.RLock()
	defer gc.RUnlock()
	g, ok := gc.glyphs[code]
	return g, ok
}

// lookupOrConstruct returns the glyph stored for code or stores the result
// of construct.
func (gc *glyphCache) lookupOrConstruct(code Code, construct func() *Glyph) *Glyph {
	if g, ok := gc.lookup(code); ok {
		return g
	}
	gc.Lock()
	defer gc.Unlock()
	if g, ok := gc.glyphs[code]; ok {
		return g
	}
	if gc.glyphs == nil {
		gc.glyphs = make(map[Code]*Glyph)
	}
	g := construct()
	if g == nil {
		g = Undefined(code)
	}
	gc.glyphs[code] = g
	return g
}

func (gc *glyphCache) size() int {
	gc.RLock()
	defer gc.RUnlock()
	return len(gc.glyphs)
}

func (gc *glyphCache) contains(code Code) bool {
	_, ok := gc.lookup(code)
	return ok
}
