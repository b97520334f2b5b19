package fontregistry

import (
	"github.com/npillmayer/pdffont/core"
	"github.com/npillmayer/pdffont/core/font"
	"github.com/npillmayer/pdffont/core/font/encoding"
	"github.com/npillmayer/pdffont/core/font/variant"
	"github.com/npillmayer/pdffont/core/pdfobj"
)

// resolve selects and constructs the font variant for a font dictionary.
// Construction errors of a variant are never returned; instead the built-in
// substitute is used.
func (fr *Registry) resolve(fontDict *pdfobj.Dict, resources *pdfobj.Dict) (*font.Font, error) {
	desc := font.NormalizeDescriptor(fontDict)
	if desc.Subtype == font.UnknownSubtype {
		return nil, core.Error(core.EPARSE, "unrecognized font subtype '%s' of font %s",
			desc.SubtypeName, desc.BaseFont)
	}
	f, err := fr.construct(desc, resources)
	if err != nil {
		tracer().Debugf("font %s falls back to built-in font: %v", desc.BaseFont, err)
		f = nil
	}
	if f == nil {
		f = variant.Builtin(desc)
	}
	f.SetSubtype(desc.SubtypeName)
	f.SetEncoding(fontEncoding(desc))
	tracer().Debugf("resolved font %s as %s", desc.BaseFont, f.Variant())
	return f, nil
}

// construct creates the font variant for a descriptor. A variant
// constructor panicking on a malformed font program yields an EINTERNAL
// error, for which resolve falls back to the built-in font.
func (fr *Registry) construct(desc *font.Descriptor, resources *pdfobj.Dict) (f *font.Font, err error) {
	defer func() {
		if r := recover(); r != nil {
			tracer().Errorf("constructing font %s failed: %v", desc.BaseFont, r)
			f, err = nil, core.Error(core.EINTERNAL, "constructing font %s: %v", desc.BaseFont, r)
		}
	}()
	switch desc.Subtype {
	case font.Type0:
		f, err = variant.Type0(desc, fr.resolveDescendant)
	case font.Type1:
		f, err = fr.type1(desc)
	case font.TrueType:
		f, err = fr.trueType(desc)
	case font.Type3:
		f, err = variant.Type3(desc, resources)
	case font.CIDFontType2:
		if desc.FontFile2 != nil {
			f, err = variant.CIDFontType2(desc)
		} else {
			f, err = variant.CIDFontType0(desc)
		}
	case font.CIDFontType0:
		f, err = variant.CIDFontType0(desc)
	case font.MMType1:
		tracer().Debugf("multiple master font %s not supported", desc.BaseFont)
	}
	return f, err
}

// fontEncoding derives the encoding from a font dictionary's /Encoding.
// Encodings which cannot be constructed are treated as absent.
func fontEncoding(desc *font.Descriptor) font.Encoding {
	obj, ok := desc.Font.Get("Encoding")
	if !ok {
		return nil
	}
	enc, err := encoding.New(desc.SubtypeName, obj)
	if err != nil {
		tracer().Debugf("font %s: encoding ignored: %v", desc.BaseFont, err)
		return nil
	}
	return enc
}

// type1 prefers the Type 1 program over a CFF program. A Type 1 program
// which does not define any charstrings yields the built-in font, even if
// a CFF program is present as well.
func (fr *Registry) type1(desc *font.Descriptor) (*font.Font, error) {
	switch {
	case desc.FontFile != nil:
		return variant.Type1(desc)
	case desc.FontFile3 != nil:
		return variant.Type1C(desc)
	}
	return variant.Builtin(desc), nil
}

// trueType uses an embedded program, then an external font file with the
// same name as the base font, then the built-in font.
func (fr *Registry) trueType(desc *font.Descriptor) (*font.Font, error) {
	if desc.FontFile2 != nil {
		return variant.TrueType(desc)
	}
	if !desc.HasBaseFont {
		return variant.Builtin(desc), nil
	}
	path, ok := fr.index.Find(desc.BaseFont)
	if !ok {
		tracer().Debugf("no external font file for %s", desc.BaseFont)
		return variant.Builtin(desc), nil
	}
	return variant.TrueTypeExternal(desc, path)
}

// resolveDescendant resolves the descendant font of a Type0 font through
// the registry, sharing it with other Type0 fonts using the same descendant.
// Descendants must be CID fonts.
func (fr *Registry) resolveDescendant(fontDict *pdfobj.Dict) (*font.Font, error) {
	switch st, _ := fontDict.Name("Subtype"); st {
	case "CIDFontType0", "CIDFontType2":
		return fr.Resolve(fontDict, nil)
	default:
		return nil, core.Error(core.EINVALID, "descendant font of subtype '%s'", st)
	}
}
