package fontindex

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
)

func fullName(t *testing.T, data []byte) string {
	f, err := sfnt.Parse(data)
	require.NoError(t, err)
	name, err := f.Name(nil, sfnt.NameIDFull)
	require.NoError(t, err)
	return name
}

func fontDir(t *testing.T, files map[string][]byte) string {
	dir := t.TempDir()
	for name, data := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0644))
	}
	return dir
}

func noEnv() env {
	return env{
		goos:        "plan9",
		getenv:      func(string) string { return "" },
		home:        func() (string, error) { return "", errors.New("no home") },
		systemFonts: func() []string { return nil },
	}
}

func newIndex(conf testconfig.Conf) *ScanIndex {
	ix := New(conf)
	ix.env = noEnv()
	return ix
}

func TestScanDirectory(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pdffont.fontindex")
	defer teardown()
	//
	dir := fontDir(t, map[string][]byte{
		"a-corrupt.ttf": []byte("this is not a font"),
		"GoBold.TTF":    gobold.TTF,
		"GoRegular.ttf": goregular.TTF,
		"readme.txt":    []byte("Go Regular"),
	})
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.ttf"), 0755))
	elsewhere := fontDir(t, map[string][]byte{"real-italic.ttf": goitalic.TTF})
	if err := os.Symlink(filepath.Join(elsewhere, "real-italic.ttf"), filepath.Join(dir, "GoItalic.ttf")); err != nil {
		t.Skipf("cannot create symbolic links: %v", err)
	}
	require.NoError(t, os.Symlink(filepath.Join(elsewhere, "gone.ttf"), filepath.Join(dir, "dangling.ttf")))
	require.NoError(t, os.Symlink(filepath.Join(dir, "sub.ttf"), filepath.Join(dir, "subdir-link.ttf")))
	ix := newIndex(testconfig.Conf{FontSearchPath: dir})
	p, ok := ix.Find(fullName(t, goregular.TTF))
	require.True(t, ok, "regular font expected in index")
	assert.Equal(t, filepath.Join(dir, "GoRegular.ttf"), p)
	p, ok = ix.Find(fullName(t, gobold.TTF))
	require.True(t, ok, "upper case extension should be accepted")
	assert.Equal(t, filepath.Join(dir, "GoBold.TTF"), p)
	p, ok = ix.Find(fullName(t, goitalic.TTF))
	require.True(t, ok, "symbolic links to font files should be followed")
	assert.Equal(t, filepath.Join(dir, "GoItalic.ttf"), p)
	_, ok = ix.Find("not a font name")
	assert.False(t, ok)
	assert.Equal(t, len(ix.Names()), ix.Len())
	assert.True(t, ix.Len() >= 2)
	for _, name := range ix.Names() {
		p, _ := ix.Find(name)
		assert.NotEqual(t, filepath.Join(dir, "a-corrupt.ttf"), p)
		assert.NotEqual(t, filepath.Join(dir, "readme.txt"), p)
		assert.NotEqual(t, filepath.Join(dir, "dangling.ttf"), p)
	}
}

func TestFirstWriterWins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pdffont.fontindex")
	defer teardown()
	//
	dir1 := fontDir(t, map[string][]byte{"b.ttf": goregular.TTF})
	dir2 := fontDir(t, map[string][]byte{"a.ttf": goregular.TTF})
	path := dir1 + string(filepath.ListSeparator) + dir2
	ix := newIndex(testconfig.Conf{FontSearchPath: path})
	p, ok := ix.Find(fullName(t, goregular.TTF))
	require.True(t, ok)
	assert.Equal(t, filepath.Join(dir1, "b.ttf"), p, "earlier directory takes precedence")
	//
	dir := fontDir(t, map[string][]byte{"b.ttf": goregular.TTF, "a.ttf": goregular.TTF})
	ix = newIndex(testconfig.Conf{FontSearchPath: dir})
	p, _ = ix.Find(fullName(t, goregular.TTF))
	assert.Equal(t, filepath.Join(dir, "a.ttf"), p, "files are scanned in lexical order")
}

func TestAvoidExternalFonts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pdffont.fontindex")
	defer teardown()
	//
	dir := fontDir(t, map[string][]byte{"GoRegular.ttf": goregular.TTF})
	ix := newIndex(testconfig.Conf{FontSearchPath: dir, AvoidExternalTTF: true})
	_, ok := ix.Find(fullName(t, goregular.TTF))
	assert.False(t, ok)
	assert.Equal(t, 0, ix.Len())
	assert.Empty(t, ix.Names())
}

func TestSystemFonts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pdffont.fontindex")
	defer teardown()
	//
	dir := fontDir(t, map[string][]byte{"GoBold.ttf": gobold.TTF, "GoBold.otf": gobold.TTF})
	e := noEnv()
	e.systemFonts = func() []string {
		return []string{filepath.Join(dir, "GoBold.otf"), filepath.Join(dir, "GoBold.ttf")}
	}
	ix := New(testconfig.Conf{FontSearchSystem: true})
	ix.env = e
	p, ok := ix.Find(fullName(t, gobold.TTF))
	require.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "GoBold.ttf"), p)
	//
	ix = New(testconfig.Conf{})
	ix.env = e
	assert.Equal(t, 0, ix.Len(), "system fonts are indexed only if configured")
}

func TestSearchPath(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pdffont.fontindex")
	defer teardown()
	//
	e := noEnv()
	e.goos = "windows"
	assert.Equal(t, []string{"C:/WINDOWS/Fonts/"}, searchPath(testconfig.Conf{}, e))
	e.getenv = func(key string) string {
		if key == "WINDIR" {
			return "D:/WIN"
		}
		return ""
	}
	assert.Equal(t, []string{"D:/WIN/Fonts/"}, searchPath(testconfig.Conf{}, e))
	//
	e.goos = "darwin"
	darwin := []string{
		"/Library/Fonts",
		"/Network/Library/Fonts",
		"/System/Library/Fonts",
		"/System Folder/Fonts",
	}
	if diff := cmp.Diff(darwin, searchPath(testconfig.Conf{}, e)); diff != "" {
		t.Errorf("darwin search path without home mismatch (-want +got):\n%s", diff)
	}
	e.home = func() (string, error) { return "/Users/tester", nil }
	withHome := append([]string{filepath.Join("/Users/tester", "Library", "Fonts")}, darwin...)
	if diff := cmp.Diff(withHome, searchPath(testconfig.Conf{}, e)); diff != "" {
		t.Errorf("darwin search path mismatch (-want +got):\n%s", diff)
	}
	//
	e.goos = "linux"
	assert.Empty(t, searchPath(testconfig.Conf{}, e))
	override := "/a" + string(filepath.ListSeparator) + "/b"
	assert.Equal(t, []string{"/a", "/b"}, searchPath(testconfig.Conf{FontSearchPath: override}, e))
}

func TestStaticIndex(t *testing.T) {
	ix := Static{"Arial": "/fonts/arial.ttf", "Times": "/fonts/times.ttf"}
	p, ok := ix.Find("Arial")
	assert.True(t, ok)
	assert.Equal(t, "/fonts/arial.ttf", p)
	_, ok = ix.Find("arial")
	assert.False(t, ok, "lookup is case sensitive")
	assert.Equal(t, []string{"Arial", "Times"}, ix.Names())
	assert.Equal(t, 0, Empty().Len())
	_, ok = Empty().Find("Arial")
	assert.False(t, ok)
}
