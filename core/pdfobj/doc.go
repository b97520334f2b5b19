/*
Package pdfobj is a minimal object model for the values a PDF document
hands to font handling: names, strings, numbers, arrays, dictionaries
and streams.

Parsing a PDF file is not the business of this package. Clients
build objects from whatever document reader they use; indirect objects
are expected to be resolved already. A dictionary may carry the indirect
reference it was loaded from, which then serves as its identity (see
Dict.Identity).

Objects are not safe for concurrent mutation.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package pdfobj
