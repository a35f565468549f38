// Package lexer turns raw git-config bytes into a flat sequence of lexical
// events: section headers, subsection labels, keys, values, comments and
// blank lines.
//
// Events reference the input buffer directly wherever possible (a value
// event's span covers the whole logical value, including backslash-newline
// continuations) so that the document layer can hand out zero-copy lookup
// results. Quote and escape resolution inside values is deliberately left
// to the value package; the lexer only finds the boundaries.
package lexer
