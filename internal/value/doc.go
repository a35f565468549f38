// Package value implements the typed decode grammars for git-config values.
//
// A raw value selected by lookup is first normalized (quote removal, escape
// resolution, line-continuation joining) and then decoded by one of the
// per-type grammars: Boolean, Integer, Color, String and Path. Each grammar
// is an independent decode function over the normalized bytes; decode errors
// are local to a single query and never affect the document.
//
// # Borrowed vs owned values
//
// Normalization is zero-copy whenever the input bytes already satisfy the
// target shape: the result then borrows directly from the document's backing
// buffer. Values that need unquoting, unescaping or concatenation are
// materialized as owned copies. Both representations yield byte-identical
// content; Raw.IsOwned makes the distinction visible so callers can reason
// about buffer lifetimes.
//
// # Paths
//
// Paths are returned verbatim. Resolving a leading "~" or "~user" prefix is
// an explicit operation (Path.Interpolate) against a caller-supplied base
// directory; it never consults the environment or the filesystem.
package value
