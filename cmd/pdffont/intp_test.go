package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/pdffont/core/font"
	"github.com/npillmayer/pdffont/core/font/fontregistry"
	"github.com/npillmayer/pdffont/core/locate/fontindex"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func TestParseCommand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pdffont.cli")
	defer teardown()
	//
	cmd, err := parseCommand("find Go Regular")
	require.NoError(t, err)
	assert.Equal(t, FIND, cmd.code)
	assert.Equal(t, []string{"Go Regular"}, cmd.args)
	cmd, err = parseCommand("glyphs  Hello World")
	require.NoError(t, err)
	assert.Equal(t, GLYPHS, cmd.code)
	assert.Equal(t, "Hello World", cmd.text)
	cmd, err = parseCommand("Resolve TrueType Arial")
	require.NoError(t, err)
	assert.Equal(t, RESOLVE, cmd.code)
	_, err = parseCommand("resolve TrueType")
	assert.Error(t, err)
	_, err = parseCommand("locate")
	assert.Error(t, err)
	_, err = parseCommand("render page 1")
	assert.Error(t, err)
	cmd, _ = parseCommand("quit")
	assert.Equal(t, QUIT, cmd.code)
}

func TestResolveCommand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pdffont.cli")
	defer teardown()
	//
	path := filepath.Join(t.TempDir(), "go.ttf")
	require.NoError(t, os.WriteFile(path, goregular.TTF, 0644))
	ix := fontindex.Static{"Arial": path}
	intp := &Intp{index: ix, registry: fontregistry.NewRegistry(ix)}
	//
	_, err := intp.execute(&Command{code: GLYPHS, text: "A"})
	assert.Error(t, err, "glyphs without a current font")
	for _, line := range []string{"resolve TrueType Arial", "resolve TrueType GoRegular " + path} {
		cmd, err := parseCommand(line)
		require.NoError(t, err)
		quit, err := intp.execute(cmd)
		require.NoError(t, err)
		assert.False(t, quit)
		require.NotNil(t, intp.font)
	}
	assert.Equal(t, font.TrueTypeEmbedded, intp.font.Variant())
	_, err = intp.execute(&Command{code: GLYPHS, text: "AB"})
	assert.NoError(t, err)
	assert.Equal(t, 2, intp.font.CacheSize())
	//
	_, err = intp.execute(&Command{code: RESOLVE, args: []string{"Type2", "X"}})
	assert.Error(t, err)
}

func TestProgramKey(t *testing.T) {
	assert.Equal(t, "FontFile2", string(programKey("TrueType", "x.ttf")))
	assert.Equal(t, "FontFile2", string(programKey("CIDFontType2", "x.bin")))
	assert.Equal(t, "FontFile3", string(programKey("CIDFontType0", "x.bin")))
	assert.Equal(t, "FontFile3", string(programKey("Type1", "x.CFF")))
	assert.Equal(t, "FontFile", string(programKey("Type1", "x.pfb")))
}
