package pdfobj

import (
	"fmt"
	"sort"
)

// Object is any PDF value: Name, String, Integer, Real, Boolean, Array,
// *Dict, *Stream or nil (the null object).
type Object interface{}

// Name is a PDF name object, without the leading slash.
type Name string

// String is a PDF string object, holding raw bytes.
type String string

// Integer is a PDF integer number.
type Integer int64

// Real is a PDF real number.
type Real float64

// Boolean is a PDF boolean.
type Boolean bool

// Array is a PDF array.
type Array []Object

// Reference identifies an indirect object inside a document.
type Reference struct {
	Number     int
	Generation int
}

func (r Reference) String() string {
	return fmt.Sprintf("%d %d R", r.Number, r.Generation)
}

// --- Dictionaries ----------------------------------------------------------

// Dict is a PDF dictionary.
type Dict struct {
	ref     *Reference
	entries map[Name]Object
}

// NewDict creates an empty dictionary.
func NewDict() *Dict {
	return &Dict{entries: make(map[Name]Object)}
}

// Set puts a value under key. Setting a nil value removes key.
// Set returns d to allow chaining.
func (d *Dict) Set(key Name, value Object) *Dict {
	if d.entries == nil {
		d.entries = make(map[Name]Object)
	}
	if value == nil {
		delete(d.entries, key)
		return d
	}
	d.entries[key] = value
	return d
}

// Get returns the value for key. A nil dictionary has no entries.
func (d *Dict) Get(key Name) (Object, bool) {
	if d == nil || d.entries == nil {
		return nil, false
	}
	v, ok := d.entries[key]
	return v, ok
}

// Has is true if key is present.
func (d *Dict) Has(key Name) bool {
	_, ok := d.Get(key)
	return ok
}

// Len returns the number of entries.
func (d *Dict) Len() int {
	if d == nil {
		return 0
	}
	return len(d.entries)
}

// Keys returns the keys of d in lexical order.
func (d *Dict) Keys() []Name {
	if d == nil {
		return nil
	}
	keys := make([]Name, 0, len(d.entries))
	for k := range d.entries {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// SetReference records the indirect reference d has been loaded from.
func (d *Dict) SetReference(r Reference) *Dict {
	d.ref = &r
	return d
}

// Reference returns the indirect reference of d, if any.
func (d *Dict) Reference() (Reference, bool) {
	if d == nil || d.ref == nil {
		return Reference{}, false
	}
	return *d.ref, true
}

// Identity returns a comparable key identifying d inside its document.
// It is the indirect reference if d has one, and the pointer
// otherwise. Two distinct dictionaries never share an identity unless
// they claim the same indirect reference.
func (d *Dict) Identity() interface{} {
	if r, ok := d.Reference(); ok {
		return r
	}
	return d
}

// Name returns the value of key as a string, if it is a name or a string.
func (d *Dict) Name(key Name) (string, bool) {
	v, _ := d.Get(key)
	return NameOf(v)
}

// Dict returns the value of key as a dictionary. For a stream, the stream
// dictionary is returned.
func (d *Dict) Dict(key Name) (*Dict, bool) {
	v, _ := d.Get(key)
	return DictOf(v)
}

// Stream returns the value of key as a stream.
func (d *Dict) Stream(key Name) (*Stream, bool) {
	v, _ := d.Get(key)
	return StreamOf(v)
}

// Array returns the value of key as an array.
func (d *Dict) Array(key Name) (Array, bool) {
	v, _ := d.Get(key)
	return ArrayOf(v)
}

// Int returns the value of key as an integer.
func (d *Dict) Int(key Name) (int, bool) {
	v, _ := d.Get(key)
	return IntOf(v)
}

// Number returns the value of key as a float.
func (d *Dict) Number(key Name) (float64, bool) {
	v, _ := d.Get(key)
	return NumberOf(v)
}

// --- Streams ---------------------------------------------------------------

// Stream is a PDF stream. Data holds the decoded stream content.
type Stream struct {
	Dict *Dict
	Data []byte
}

// NewStream creates a stream from a dictionary and decoded data.
// A nil dictionary is replaced by an empty one.
func NewStream(d *Dict, data []byte) *Stream {
	if d == nil {
		d = NewDict()
	}
	return &Stream{Dict: d, Data: data}
}

// Bytes returns the decoded stream data.
func (s *Stream) Bytes() []byte {
	if s == nil {
		return nil
	}
	return s.Data
}

// --- Value accessors -------------------------------------------------------

// NameOf returns the text of a name or string object.
func NameOf(obj Object) (string, bool) {
	switch v := obj.(type) {
	case Name:
		return string(v), true
	case String:
		return string(v), true
	}
	return "", false
}

// DictOf returns obj as a dictionary.
func DictOf(obj Object) (*Dict, bool) {
	switch v := obj.(type) {
	case *Dict:
		return v, v != nil
	case *Stream:
		if v != nil && v.Dict != nil {
			return v.Dict, true
		}
	}
	return nil, false
}

// StreamOf returns obj as a stream.
func StreamOf(obj Object) (*Stream, bool) {
	if s, ok := obj.(*Stream); ok && s != nil {
		return s, true
	}
	return nil, false
}

// ArrayOf returns obj as an array.
func ArrayOf(obj Object) (Array, bool) {
	a, ok := obj.(Array)
	return a, ok
}

// IntOf returns obj as an int. Reals are truncated.
func IntOf(obj Object) (int, bool) {
	switch v := obj.(type) {
	case Integer:
		return int(v), true
	case Real:
		return int(v), true
	}
	return 0, false
}

// NumberOf returns obj as a float.
func NumberOf(obj Object) (float64, bool) {
	switch v := obj.(type) {
	case Integer:
		return float64(v), true
	case Real:
		return float64(v), true
	}
	return 0, false
}
