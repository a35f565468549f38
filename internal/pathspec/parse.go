package pathspec

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
)

// Parse errors. Keyword-carrying variants are typed for errors.As.
var (
	ErrEmpty             = errors.New("pathspec: empty string is not a valid pathspec")
	ErrMissingParen      = errors.New("pathspec: missing ')' at the end of pathspec magic")
	ErrEmptyAttribute    = errors.New("pathspec: attribute specification cannot be empty")
	ErrIncompatibleModes = errors.New("pathspec: 'literal' and 'glob' cannot be used together")
	ErrMultipleAttrs     = errors.New("pathspec: only one attribute specification is allowed")
)

// InvalidKeywordError reports an unknown long-form keyword.
type InvalidKeywordError struct {
	Keyword string
}

func (e *InvalidKeywordError) Error() string {
	return fmt.Sprintf("pathspec: %q is not a valid keyword", e.Keyword)
}

// UnimplementedError reports a reserved short-form magic character.
type UnimplementedError struct {
	Short byte
}

func (e *UnimplementedError) Error() string {
	return fmt.Sprintf("pathspec: unimplemented pathspec magic %q", string(e.Short))
}

// InvalidAttributeError reports a malformed attribute name.
type InvalidAttributeError struct {
	Attribute string
}

func (e *InvalidAttributeError) Error() string {
	return fmt.Sprintf("pathspec: invalid attribute %q", e.Attribute)
}

// reserved short magic characters git defines but does not implement.
const unimplementedShort = "\"#%&',-;<=>@_`~"

// Parse parses a single pathspec.
func Parse(input []byte) (Pattern, error) {
	if len(input) == 0 {
		return Pattern{}, ErrEmpty
	}

	var p Pattern
	cursor := 0
	if input[0] == ':' {
		cursor++
		sig, n, err := parseShortKeywords(input[cursor:])
		if err != nil {
			return Pattern{}, err
		}
		p.Signature |= sig
		cursor += n
		if cursor < len(input) && input[cursor] == '(' {
			cursor++
			long, n, err := parseLongKeywords(input[cursor:])
			if err != nil {
				return Pattern{}, err
			}
			p.Signature |= long.Signature
			p.Mode = long.Mode
			p.Attributes = long.Attributes
			cursor += n
		}
	}
	p.Path = string(input[cursor:])
	return p, nil
}

// parseShortKeywords consumes single-character magic after the leading ':'.
// A second ':' ends the magic; any other unrecognized character ends it
// without being consumed.
func parseShortKeywords(input []byte) (MagicSignature, int, error) {
	var sig MagicSignature
	i := 0
	for i < len(input) {
		c := input[i]
		i++
		switch {
		case c == '/':
			sig |= Top
		case c == '^' || c == '!':
			sig |= Exclude
		case c == ':':
			return sig, i, nil
		case strings.IndexByte(unimplementedShort, c) >= 0:
			return 0, 0, &UnimplementedError{Short: c}
		default:
			return sig, i - 1, nil
		}
	}
	return sig, i, nil
}

// parseLongKeywords consumes the comma-separated keyword list up to and
// including the closing ')'. A "\," escapes a comma inside a keyword.
func parseLongKeywords(input []byte) (Pattern, int, error) {
	end := bytes.IndexByte(input, ')')
	if end < 0 {
		return Pattern{}, 0, ErrMissingParen
	}

	p := Pattern{Mode: ShellGlob}
	body := input[:end]
	if len(body) == 0 {
		return p, end + 1, nil
	}

	for _, kw := range splitKeywords(body) {
		keyword := strings.ReplaceAll(string(kw), `\,`, ",")
		switch {
		case keyword == "top":
			p.Signature |= Top
		case keyword == "icase":
			p.Signature |= ICase
		case keyword == "exclude":
			p.Signature |= Exclude
		case keyword == "attr":
			// Bare "attr" carries no requirements.
		case keyword == "literal":
			if p.Mode == PathAwareGlob {
				return Pattern{}, 0, ErrIncompatibleModes
			}
			p.Mode = Literal
		case keyword == "glob":
			if p.Mode == Literal {
				return Pattern{}, 0, ErrIncompatibleModes
			}
			p.Mode = PathAwareGlob
		case strings.HasPrefix(keyword, "attr:"):
			if p.Attributes != nil {
				return Pattern{}, 0, ErrMultipleAttrs
			}
			attrs, err := parseAttributes(keyword[len("attr:"):])
			if err != nil {
				return Pattern{}, 0, err
			}
			p.Attributes = attrs
		case strings.HasPrefix(keyword, "prefix:"):
			// Accepted for compatibility, carries no semantics here.
		default:
			return Pattern{}, 0, &InvalidKeywordError{Keyword: keyword}
		}
	}
	return p, end + 1, nil
}

// splitKeywords splits on commas not preceded by a backslash.
func splitKeywords(body []byte) [][]byte {
	var out [][]byte
	last := 0
	for i := 1; i < len(body); i++ {
		if body[i] == ',' && body[i-1] != '\\' {
			out = append(out, body[last:i])
			last = i + 1
		}
	}
	return append(out, body[last:])
}

// parseAttributes parses the space-separated attribute requirements of one
// "attr:" group.
func parseAttributes(spec string) ([]Attribute, error) {
	if spec == "" {
		return nil, ErrEmptyAttribute
	}
	var out []Attribute
	for _, field := range strings.Fields(spec) {
		attr := Attribute{Name: field}
		switch field[0] {
		case '-':
			attr = Attribute{Name: field[1:], State: AttrUnset}
		case '!':
			attr = Attribute{Name: field[1:], State: AttrUnspecified}
		default:
			if name, val, ok := strings.Cut(field, "="); ok {
				attr = Attribute{Name: name, State: AttrValue, Value: val}
			}
		}
		if !validAttrName(attr.Name) {
			return nil, &InvalidAttributeError{Attribute: field}
		}
		out = append(out, attr)
	}
	if out == nil {
		return nil, ErrEmptyAttribute
	}
	return out, nil
}

// validAttrName accepts ASCII alphanumerics, '-', '_' and '.'; names must
// not be empty or start with '-'.
func validAttrName(name string) bool {
	if name == "" || name[0] == '-' {
		return false
	}
	for i := 0; i < len(name); i++ {
		switch c := name[i]; {
		case 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9':
		case c == '-' || c == '_' || c == '.':
		default:
			return false
		}
	}
	return true
}
