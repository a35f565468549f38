package pathspec

import "strings"

// MagicSignature is the bit set of magic keywords attached to a pattern.
type MagicSignature uint8

const (
	// Top anchors the pattern at the repository root (":/" or "top").
	Top MagicSignature = 1 << iota
	// Exclude negates the pattern (":!", ":^" or "exclude").
	Exclude
	// ICase matches case-insensitively ("icase").
	ICase
)

// Has reports whether all bits of f are set.
func (m MagicSignature) Has(f MagicSignature) bool { return m&f == f }

func (m MagicSignature) String() string {
	var parts []string
	if m.Has(Top) {
		parts = append(parts, "top")
	}
	if m.Has(Exclude) {
		parts = append(parts, "exclude")
	}
	if m.Has(ICase) {
		parts = append(parts, "icase")
	}
	return strings.Join(parts, ",")
}

// SearchMode selects how the path part matches.
type SearchMode uint8

const (
	// ShellGlob is the default fnmatch-style matching.
	ShellGlob SearchMode = iota
	// Literal disables all glob characters.
	Literal
	// PathAwareGlob makes "*" stop at slashes and "**" cross them.
	PathAwareGlob
)

func (s SearchMode) String() string {
	switch s {
	case Literal:
		return "literal"
	case PathAwareGlob:
		return "glob"
	default:
		return "shell-glob"
	}
}

// AttrState is the requested state of one attribute in an "attr:" group.
type AttrState uint8

const (
	// AttrSet requires the attribute to be set ("name").
	AttrSet AttrState = iota
	// AttrUnset requires the attribute to be unset ("-name").
	AttrUnset
	// AttrUnspecified requires the attribute to be unspecified ("!name").
	AttrUnspecified
	// AttrValue requires the attribute to hold a value ("name=value").
	AttrValue
)

// Attribute is one attribute requirement of an "attr:" group.
type Attribute struct {
	Name  string
	State AttrState
	Value string // set when State is AttrValue
}

func (a Attribute) String() string {
	switch a.State {
	case AttrUnset:
		return "-" + a.Name
	case AttrUnspecified:
		return "!" + a.Name
	case AttrValue:
		return a.Name + "=" + a.Value
	default:
		return a.Name
	}
}

// Pattern is a parsed pathspec.
type Pattern struct {
	// Path is the pattern text after any magic prefix.
	Path string
	// Signature holds the parsed magic keywords.
	Signature MagicSignature
	// Mode is the search mode, ShellGlob unless "literal" or "glob" was
	// given.
	Mode SearchMode
	// Attributes holds the requirements of the single allowed "attr:"
	// group, if any.
	Attributes []Attribute
}
