package pdfobj

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDictAccessors(t *testing.T) {
	sub := NewDict().Set("Flags", Integer(32))
	d := NewDict().
		Set("Type", Name("Font")).
		Set("BaseFont", String("Helvetica")).
		Set("FontDescriptor", sub).
		Set("Widths", Array{Integer(500), Real(250.5)}).
		Set("FontFile2", NewStream(NewDict().Set("Length1", Integer(3)), []byte{1, 2, 3}))
	//
	n, ok := d.Name("Type")
	assert.True(t, ok)
	assert.Equal(t, "Font", n)
	n, ok = d.Name("BaseFont")
	assert.True(t, ok, "strings should be accepted as names")
	assert.Equal(t, "Helvetica", n)
	fd, ok := d.Dict("FontDescriptor")
	assert.True(t, ok)
	flags, _ := fd.Int("Flags")
	assert.Equal(t, 32, flags)
	w, _ := d.Array("Widths")
	x, ok := NumberOf(w[1])
	assert.True(t, ok)
	assert.Equal(t, 250.5, x)
	s, ok := d.Stream("FontFile2")
	assert.True(t, ok)
	assert.Equal(t, []byte{1, 2, 3}, s.Bytes())
	l, _ := s.Dict.Int("Length1")
	assert.Equal(t, 3, l)
	_, ok = d.Name("Missing")
	assert.False(t, ok)
	assert.Equal(t, []Name{"BaseFont", "FontDescriptor", "FontFile2", "Type", "Widths"}, d.Keys())
}

func TestNilDict(t *testing.T) {
	var d *Dict
	_, ok := d.Get("X")
	assert.False(t, ok)
	assert.Equal(t, 0, d.Len())
	_, ok = d.Reference()
	assert.False(t, ok)
}

func TestIdentity(t *testing.T) {
	a, b := NewDict(), NewDict()
	assert.NotEqual(t, a.Identity(), b.Identity())
	assert.Equal(t, a.Identity(), a.Identity())
	a.SetReference(Reference{Number: 12})
	b.SetReference(Reference{Number: 12})
	assert.Equal(t, a.Identity(), b.Identity())
	assert.Equal(t, "12 0 R", Reference{Number: 12}.String())
}

func TestSetNilRemoves(t *testing.T) {
	d := NewDict().Set("A", Integer(1))
	d.Set("A", nil)
	assert.False(t, d.Has("A"))
}
