/*
Package fontindex finds font files installed on the local system.

The index maps font names, as declared inside TrueType files, to the path
of the declaring file. It is built once, on first use, by scanning a search
path, and never rebuilt: a directory scanned once is trusted for the rest
of the process' lifetime.

Configuration keys:

   avoid-external-ttf    (bool)   do not scan at all; the index stays empty
   font-search-path      (string) list of directories, separated by the
                                  platform's path list separator
   font-search-system    (bool)   additionally index the font files found in
                                  the system font directories (go-findfont)

Without a configured search path, Windows uses %WINDIR%/Fonts and macOS
uses the usual Library font folders, prepended by the user's font folder.
Other platforms do not have a default.

Lookups are by exact name; there is no normalization of names.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fontindex

import "github.com/npillmayer/schuko/tracing"

// tracer traces to tracing key 'pdffont.fontindex'.
func tracer() tracing.Trace {
	return tracing.Select("pdffont.fontindex")
}
