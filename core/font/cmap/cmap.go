package cmap

import (
	"sort"

	"github.com/npillmayer/pdffont/core/font"
	"golang.org/x/text/encoding/unicode"
)

// CMap maps character codes to Unicode text and/or to CIDs.
type CMap struct {
	Name       string
	WMode      int // 0 = horizontal, 1 = vertical
	codespaces []codespace
	bfchars    map[uint32]string
	bfranges   []bfRange
	cidchars   map[uint32]uint32
	cidranges  []cidRange
}

type codespace struct {
	lo, hi []byte
}

type bfRange struct {
	lo, hi uint32
	dst    []byte   // first destination, UTF-16BE; incremented through the range
	dsts   []string // explicit destinations, if given as an array
}

type cidRange struct {
	lo, hi uint32
	cid    uint32
}

type operand struct {
	token
	array []token
}

// Parse reads a CMap program.
func Parse(data []byte) (*CMap, error) {
	cm := &CMap{
		bfchars:  make(map[uint32]string),
		cidchars: make(map[uint32]uint32),
	}
	s := newScanner(data)
	var stack []operand
	var arr []token
	inArray := false
	for {
		tok, err := s.next()
		if err != nil {
			return nil, err
		}
		switch tok.kind {
		case tokEOF:
			cm.sortRanges()
			return cm, nil
		case tokArrayOpen:
			inArray, arr = true, nil
			continue
		case tokArrayClose:
			if !inArray {
				return nil, errCMapFormat("unbalanced ']'")
			}
			inArray = false
			stack = append(stack, operand{token: token{kind: tokArrayOpen}, array: arr})
			continue
		}
		if inArray {
			arr = append(arr, tok)
			continue
		}
		if tok.kind != tokKeyword {
			stack = append(stack, operand{token: tok})
			continue
		}
		switch tok.text {
		case "endcodespacerange":
			for i := 0; i+1 < len(stack); i += 2 {
				if stack[i].kind == tokHex && stack[i+1].kind == tokHex &&
					len(stack[i].bytes) == len(stack[i+1].bytes) && len(stack[i].bytes) > 0 {
					cm.codespaces = append(cm.codespaces, codespace{stack[i].bytes, stack[i+1].bytes})
				}
			}
		case "endbfchar":
			for i := 0; i+1 < len(stack); i += 2 {
				src, dst := stack[i], stack[i+1]
				if src.kind == tokHex && (dst.kind == tokHex || dst.kind == tokString) {
					cm.bfchars[codeValue(src.bytes)] = decodeUTF16(dst.bytes)
				}
			}
		case "endbfrange":
			for i := 0; i+2 < len(stack); i += 3 {
				lo, hi, dst := stack[i], stack[i+1], stack[i+2]
				if lo.kind != tokHex || hi.kind != tokHex {
					continue
				}
				r := bfRange{lo: codeValue(lo.bytes), hi: codeValue(hi.bytes)}
				if r.hi < r.lo {
					continue
				}
				switch dst.kind {
				case tokHex:
					r.dst = dst.bytes
				case tokArrayOpen:
					for _, t := range dst.array {
						r.dsts = append(r.dsts, decodeUTF16(t.bytes))
					}
				default:
					continue
				}
				cm.bfranges = append(cm.bfranges, r)
			}
		case "endcidchar":
			for i := 0; i+1 < len(stack); i += 2 {
				if cid, ok := stack[i+1].number(); ok && stack[i].kind == tokHex {
					cm.cidchars[codeValue(stack[i].bytes)] = uint32(cid)
				}
			}
		case "endcidrange":
			for i := 0; i+2 < len(stack); i += 3 {
				lo, hi := stack[i], stack[i+1]
				cid, ok := stack[i+2].number()
				if ok && lo.kind == tokHex && hi.kind == tokHex {
					cm.cidranges = append(cm.cidranges, cidRange{codeValue(lo.bytes), codeValue(hi.bytes), uint32(cid)})
				}
			}
		case "def":
			if len(stack) >= 2 && stack[len(stack)-2].kind == tokName {
				val := stack[len(stack)-1]
				switch stack[len(stack)-2].text {
				case "WMode":
					cm.WMode, _ = val.number()
				case "CMapName":
					if val.kind == tokName {
						cm.Name = val.text
					}
				}
			}
		case "usecmap":
			tracer().Debugf("CMap %s: usecmap not supported, ignored", cm.Name)
		}
		stack = stack[:0]
	}
}

// codeValue interprets up to 4 bytes as a big-endian number.
func codeValue(b []byte) uint32 {
	var v uint32
	for i, c := range b {
		if i == 4 {
			break
		}
		v = v<<8 | uint32(c)
	}
	return v
}

var utf16be = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)

func decodeUTF16(b []byte) string {
	if len(b)%2 == 1 { // not UTF-16, take bytes as Latin-1
		return font.TextFromBytes(b)
	}
	s, err := utf16be.NewDecoder().Bytes(b)
	if err != nil {
		return font.TextFromBytes(b)
	}
	return string(s)
}

func (cm *CMap) sortRanges() {
	sort.Slice(cm.bfranges, func(i, j int) bool { return cm.bfranges[i].lo < cm.bfranges[j].lo })
	sort.Slice(cm.cidranges, func(i, j int) bool { return cm.cidranges[i].lo < cm.cidranges[j].lo })
}

// Len returns the number of Unicode and CID mappings (ranges count as one).
func (cm *CMap) Len() int {
	return len(cm.bfchars) + len(cm.bfranges) + len(cm.cidchars) + len(cm.cidranges)
}

// HasCIDMappings is true for encoding CMaps.
func (cm *CMap) HasCIDMappings() bool {
	return len(cm.cidchars)+len(cm.cidranges) > 0
}

// Lookup returns the Unicode text for a code. It implements font.UnicodeMap.
func (cm *CMap) Lookup(code font.Code) (string, bool) {
	return cm.LookupUnicode(uint32(code))
}

// LookupUnicode returns the Unicode text for a code of up to 4 bytes.
func (cm *CMap) LookupUnicode(code uint32) (string, bool) {
	if s, ok := cm.bfchars[code]; ok {
		return s, true
	}
	for _, r := range cm.bfranges {
		if code < r.lo {
			break
		}
		if code > r.hi {
			continue
		}
		offset := code - r.lo
		if r.dsts != nil {
			if int(offset) < len(r.dsts) {
				return r.dsts[offset], true
			}
			return "", false
		}
		return decodeUTF16(increment(r.dst, offset)), true
	}
	return "", false
}

// increment adds offset to the last UTF-16 unit of dst.
func increment(dst []byte, offset uint32) []byte {
	b := make([]byte, len(dst))
	copy(b, dst)
	n := len(b)
	switch {
	case n >= 2:
		v := uint32(b[n-2])<<8 | uint32(b[n-1])
		v += offset
		b[n-2], b[n-1] = byte(v>>8), byte(v)
	case n == 1:
		b[0] += byte(offset)
	}
	return b
}

// LookupCID returns the CID for a code.
func (cm *CMap) LookupCID(code uint32) (uint32, bool) {
	if cid, ok := cm.cidchars[code]; ok {
		return cid, true
	}
	for _, r := range cm.cidranges {
		if code < r.lo {
			break
		}
		if code <= r.hi {
			return r.cid + code - r.lo, true
		}
	}
	return 0, false
}

// NextCode splits the next code off b, following the codespace ranges.
// It returns the code and the number of bytes consumed. Without codespace
// ranges, codes are two bytes wide. If no codespace range matches, the
// width of the shortest codespace is consumed.
func (cm *CMap) NextCode(b []byte) (uint32, int) {
	if len(b) == 0 {
		return 0, 0
	}
	if len(cm.codespaces) == 0 {
		n := 2
		if len(b) < n {
			n = len(b)
		}
		return codeValue(b[:n]), n
	}
	shortest := 4
	for _, cs := range cm.codespaces {
		if len(cs.lo) < shortest {
			shortest = len(cs.lo)
		}
	}
	for n := 1; n <= 4 && n <= len(b); n++ {
		for _, cs := range cm.codespaces {
			if len(cs.lo) == n && cs.contains(b[:n]) {
				return codeValue(b[:n]), n
			}
		}
	}
	if shortest > len(b) {
		shortest = len(b)
	}
	return codeValue(b[:shortest]), shortest
}

func (cs codespace) contains(b []byte) bool {
	for i, c := range b {
		if c < cs.lo[i] || c > cs.hi[i] {
			return false
		}
	}
	return true
}

var _ font.UnicodeMap = (*CMap)(nil)
