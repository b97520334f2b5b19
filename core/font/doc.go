/*
Package font is for fonts referenced by PDF documents.

We stick to the following nomenclature:

* A "font dictionary" is the document's description of a font: a subtype,
a base font name, an encoding and possibly an embedded font program.

* A "descriptor" is our normalized, read-only view onto a font dictionary.
It drives the decision which concrete font implementation to construct.

* A "resolved font" (type Font) is a concrete, usable font. It is one of
several variants (Type0, Type1, TrueType, Type3, CID fonts, or a built-in
substitute). All variants share text-to-glyph translation and a glyph cache;
they differ in how a single glyph is constructed.

Go (Golang) uses the terms "font" and "face" differently, more or less
in an opposite manner. We use x/image/font/sfnt for TrueType programs.

Glyph caches are keyed by character code only. If a font is asked for the
same code with two different glyph names, the first glyph wins. Codes are
assumed to map to a single glyph within one font.

----------------------------------------------------------------------

BSD License

Copyright (c) 2017–26, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE. */
package font

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'pdffont.font'
func tracer() tracing.Trace {
	return tracing.Select("pdffont.font")
}
