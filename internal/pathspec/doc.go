// Package pathspec parses git pathspec patterns: a path optionally
// prefixed with magic, either short form (":/!^") or long form
// (":(top,icase,exclude,literal,glob,attr:...)").
//
// This grammar is unrelated to config resolution; it is its own small DSL
// with its own error taxonomy. Parsing never touches the filesystem.
package pathspec
