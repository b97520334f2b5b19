package encoding

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/pdffont/core"
	"github.com/npillmayer/pdffont/core/font"
	"github.com/npillmayer/pdffont/core/pdfobj"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func namesOf(s *Simple, codes ...byte) []string {
	names := make([]string, len(codes))
	for i, c := range codes {
		names[i] = s.GlyphName(c)
	}
	return names
}

func TestBaseEncodings(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pdffont.font")
	defer teardown()
	//
	std := Standard()
	if diff := cmp.Diff(
		[]string{"space", "A", "quoteright", "quoteleft", "fi", "germandbls", "", ""},
		namesOf(std, 0x20, 0x41, 0x27, 0x60, 0xae, 0xfb, 0x80, 0x10)); diff != "" {
		t.Errorf("StandardEncoding mismatch (-want +got):\n%s", diff)
	}
	win := NewSimple(WinAnsiEncoding)
	if diff := cmp.Diff(
		[]string{"quotesingle", "grave", "Euro", "bullet", "space", "hyphen", "eacute", "ydieresis", "bullet", ""},
		namesOf(win, 0x27, 0x60, 0x80, 0x95, 0xa0, 0xad, 0xe9, 0xff, 0x81, 0x10)); diff != "" {
		t.Errorf("WinAnsiEncoding mismatch (-want +got):\n%s", diff)
	}
	mac := NewSimple(MacRomanEncoding)
	if diff := cmp.Diff(
		[]string{"Adieresis", "eacute", "currency", "fi", "space"},
		namesOf(mac, 0x80, 0x8e, 0xdb, 0xde, 0xca)); diff != "" {
		t.Errorf("MacRomanEncoding mismatch (-want +got):\n%s", diff)
	}
	expert := NewSimple(MacExpert)
	assert.Equal(t, MacExpert, expert.BaseName())
	assert.NotEqual(t, "", expert.GlyphName(0x20))
	assert.Equal(t, StandardEncoding, NewSimple("Bogus").BaseName())
	r, ok := win.Rune(0x80)
	assert.True(t, ok)
	assert.Equal(t, '€', r)
	c, ok := std.Code("fi")
	assert.True(t, ok)
	assert.Equal(t, byte(0xae), c)
}

func TestDifferences(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pdffont.font")
	defer teardown()
	//
	obj := pdfobj.NewDict().
		Set("BaseEncoding", pdfobj.Name(WinAnsiEncoding)).
		Set("Differences", pdfobj.Array{
			pdfobj.Integer(65), pdfobj.Name("Alpha"), pdfobj.Name("Beta"),
			pdfobj.Integer(255), pdfobj.Name("last"), pdfobj.Name("overflow"),
		})
	enc, err := New("Type1", obj)
	require.NoError(t, err)
	s := enc.(*Simple)
	assert.Equal(t, "Alpha", s.GlyphName(65))
	assert.Equal(t, "Beta", s.GlyphName(66))
	assert.Equal(t, "C", s.GlyphName(67))
	assert.Equal(t, "last", s.GlyphName(255))
	assert.Equal(t, 3, s.Differences())
}

func TestNewFromEntries(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pdffont.font")
	defer teardown()
	//
	enc, err := New("TrueType", nil)
	assert.NoError(t, err)
	assert.Nil(t, enc)
	enc, err = New("Type0", pdfobj.Name("Identity-H"))
	assert.NoError(t, err)
	assert.Equal(t, Identity{}, enc)
	enc, err = New("Type0", pdfobj.Name("OneByteIdentityH"))
	assert.NoError(t, err)
	assert.True(t, enc.IsOneByteIdentity())
	_, err = New("Type0", pdfobj.Name("UniJIS-UCS2-H"))
	assert.Equal(t, core.EUNSUPPORTED, core.Code(err))
	_, err = New("Type1", pdfobj.Name(SymbolEncoding))
	assert.Equal(t, core.EUNSUPPORTED, core.Code(err))
	enc, err = New("Type1", pdfobj.Name(MacExpert))
	assert.NoError(t, err)
	assert.Equal(t, MacExpert, enc.(*Simple).BaseName())
	_, err = New("Type1", pdfobj.Integer(3))
	assert.Equal(t, core.EINVALID, core.Code(err))
	enc, err = New("Type0", pdfobj.NewStream(nil, []byte(
		"1 begincodespacerange <00> <FF> endcodespacerange 1 begincidrange <00> <FF> 100 endcidrange")))
	require.NoError(t, err)
	assert.IsType(t, CMapEncoding{}, enc)
}

type nameRecorder struct{}

func (nameRecorder) ConstructGlyph(code font.Code, name string) *font.Glyph {
	return &font.Glyph{Code: code, Name: name}
}

func TestEncodingGlyphs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pdffont.font")
	defer teardown()
	//
	f := font.New(font.Builtin, "Test", nil, nameRecorder{})
	f.SetEncoding(NewSimple(WinAnsiEncoding))
	glyphs := f.Glyphs("A\u0080")
	require.Len(t, glyphs, 2)
	assert.Equal(t, "A", glyphs[0].Name)
	assert.Equal(t, "Euro", glyphs[1].Name)
	glyphs = f.Glyphs(string([]byte{0xe9, 0x41, 0xff})) // raw bytes
	require.Len(t, glyphs, 3)
	assert.Equal(t, "eacute", glyphs[0].Name)
	assert.Equal(t, "A", glyphs[1].Name)
	assert.Equal(t, "ydieresis", glyphs[2].Name)
	//
	f = font.New(font.Type0Composite, "Test", nil, nameRecorder{})
	f.SetEncoding(Identity{})
	glyphs = f.Glyphs(font.TextFromBytes([]byte{0x01, 0x02, 0x00, 0x41, 0x07}))
	require.Len(t, glyphs, 3)
	assert.Equal(t, font.Code(0x0102), glyphs[0].Code)
	assert.Equal(t, font.Code(0x0041), glyphs[1].Code)
	assert.Equal(t, font.Code(0x07), glyphs[2].Code)
	//
	enc, err := New("Type0", pdfobj.NewStream(nil, []byte(
		"1 begincodespacerange <00> <FF> endcodespacerange 1 begincidrange <40> <4F> 100 endcidrange")))
	require.NoError(t, err)
	f = font.New(font.Type0Composite, "Test", nil, nameRecorder{})
	f.SetEncoding(enc)
	glyphs = f.Glyphs("AB")
	require.Len(t, glyphs, 2)
	assert.Equal(t, font.Code(101), glyphs[0].Code)
	assert.Equal(t, font.Code(102), glyphs[1].Code)
}

func TestSimpleFor(t *testing.T) {
	fallback := Standard()
	assert.Same(t, fallback, SimpleFor(pdfobj.NewDict(), fallback))
	s := SimpleFor(pdfobj.NewDict().Set("Encoding", pdfobj.Name(WinAnsiEncoding)), fallback)
	assert.Equal(t, WinAnsiEncoding, s.BaseName())
	s = SimpleFor(pdfobj.NewDict().Set("Encoding", pdfobj.NewDict().
		Set("Differences", pdfobj.Array{pdfobj.Integer(39), pdfobj.Name("quotesingle")})), fallback)
	assert.Equal(t, "quotesingle", s.GlyphName(39))
	assert.Equal(t, "quoteright", fallback.GlyphName(39), "fallback must not be modified")
}

func TestGlyphNames(t *testing.T) {
	for name, r := range map[string]rune{
		"A": 'A', "eacute": 'é', "Euro": '€', "uni20AC": '€', "u1F600": 0x1f600,
		"a.sc": 'a', "fi": 0xfb01, "quoteright": 0x2019, "alpha": 'α',
		"f_f_x": 'f', "u0041": 'A',
	} {
		got, ok := RuneForName(name)
		assert.True(t, ok, name)
		assert.Equal(t, r, got, name)
	}
	_, ok := RuneForName(".notdef")
	assert.False(t, ok)
	_, ok = RuneForName("uacutex")
	assert.False(t, ok)
	_, ok = RuneForName("uD800")
	assert.False(t, ok, "surrogates are not characters")
}

func TestStandardFontEncodings(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pdffont.font")
	defer teardown()
	//
	sym := ForStandardFont("Symbol")
	assert.Equal(t, SymbolEncoding, sym.BaseName())
	assert.Equal(t, "alpha", sym.GlyphName('a'))
	r, ok := sym.Rune('a')
	assert.True(t, ok)
	assert.Equal(t, 'α', r)
	assert.Equal(t, ZapfDingbatsEncoding, ForStandardFont("ABCDEF+ZapfDingbats").BaseName())
	assert.Equal(t, StandardEncoding, ForStandardFont("Helvetica").BaseName())
}
