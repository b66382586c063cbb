// Package render turns configuration templates into class-keyed documents
// ready for managed-object construction.
//
// Templates are Go text/template files. The function set mirrors the filters
// the classic template library relied on:
//
//	split  — split a value on a delimiter
//	expand — expand a numeric range expression ("1-3,5" -> [1 2 3 5])
//	bool   — loose string-to-bool ("true", "yes", "1")
//	nan    — reports whether a value is usable (not the string "nan")
//
// Rendered output is decoded as YAML with scalar preservation: every scalar
// decodes to its literal string so that controller attributes keep their wire
// form ("1", "yes", "00:22:BD:F8:19:FF" all stay intact), and the string
// "nan" decodes to "" since spreadsheet-driven workflows leak NaN cells into
// templates.
package render
