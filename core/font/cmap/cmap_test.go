package cmap

import (
	"testing"

	"github.com/npillmayer/pdffont/core/font"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const toUnicode = `/CIDInit /ProcSet findresource begin
12 dict begin
begincmap
/CIDSystemInfo << /Registry (Adobe) /Ordering (UCS) /Supplement 0 >> def
/CMapName /Adobe-Identity-UCS def
/CMapType 2 def
1 begincodespacerange
<0000> <FFFF>
endcodespacerange
3 beginbfchar
<0003> <0020>
<0011> <0066 0069> % a ligature
<0024> <D835DC9C>
endbfchar
2 beginbfrange
<0044> <0046> <0061>
<0050> <0052> [<0041> <0042> <0043>]
endbfrange
endcmap
CMapName currentdict /CMap defineresource pop
end
end`

func TestToUnicode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pdffont.font")
	defer teardown()
	//
	cm, err := Parse([]byte(toUnicode))
	require.NoError(t, err)
	assert.Equal(t, "Adobe-Identity-UCS", cm.Name)
	assert.Equal(t, 5, cm.Len())
	for code, expected := range map[font.Code]string{
		0x03: " ",
		0x11: "fi",
		0x24: "\U0001d49c",
		0x44: "a",
		0x46: "c",
		0x50: "A",
		0x52: "C",
	} {
		s, ok := cm.Lookup(code)
		assert.True(t, ok, "code %#x", code)
		assert.Equal(t, expected, s, "code %#x", code)
	}
	_, ok := cm.Lookup(0x47)
	assert.False(t, ok)
	_, ok = cm.Lookup(0x01)
	assert.False(t, ok)
	assert.False(t, cm.HasCIDMappings())
}

func TestCIDMappings(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pdffont.font")
	defer teardown()
	//
	cm, err := Parse([]byte(`
/CMapName /Test-H def /WMode 1 def
2 begincodespacerange <00> <80> <8140> <FFFC> endcodespacerange
1 begincidchar <20> 1 endcidchar
1 begincidrange <8140> <817E> 633 endcidrange`))
	require.NoError(t, err)
	assert.Equal(t, 1, cm.WMode)
	assert.True(t, cm.HasCIDMappings())
	cid, ok := cm.LookupCID(0x20)
	assert.True(t, ok)
	assert.Equal(t, uint32(1), cid)
	cid, ok = cm.LookupCID(0x8142)
	assert.True(t, ok)
	assert.Equal(t, uint32(635), cid)
	//
	code, n := cm.NextCode([]byte{0x41, 0x81, 0x40})
	assert.Equal(t, uint32(0x41), code)
	assert.Equal(t, 1, n)
	code, n = cm.NextCode([]byte{0x81, 0x40})
	assert.Equal(t, uint32(0x8140), code)
	assert.Equal(t, 2, n)
}

func TestNextCodeWithoutCodespace(t *testing.T) {
	cm, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, cm.Len())
	code, n := cm.NextCode([]byte{0x01, 0x02, 0x03})
	assert.Equal(t, uint32(0x0102), code)
	assert.Equal(t, 2, n)
	code, n = cm.NextCode([]byte{0x03})
	assert.Equal(t, uint32(0x03), code)
	assert.Equal(t, 1, n)
}

func TestMalformedCMap(t *testing.T) {
	_, err := Parse([]byte("1 beginbfchar <0041 endbfchar"))
	assert.Error(t, err)
	_, err = Parse([]byte("]"))
	assert.Error(t, err)
}
