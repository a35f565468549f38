// Package document builds an immutable, order-preserving view of a
// git-config file and resolves (section, subsection, key) lookups over it.
//
// Sections appear in declaration order and are never merged: a file may
// repeat "[core]" and both occurrences are kept. Lookup treats all sections
// with the same case-insensitive name and byte-exact subsection as one
// logical group, scanned most-recently-declared first, falling through to
// earlier repetitions when a later one lacks the key. Multi-value lookup
// returns every match in declaration order instead.
//
// Section and key names match under ASCII case folding while their original
// casing is retained; subsection labels match byte-exact. Entries without a
// value (bare keys) are kept distinct from entries with an empty value.
//
// The Document is safe for unlimited concurrent readers; borrowed lookup
// results alias its backing buffer and must not outlive it.
package document
