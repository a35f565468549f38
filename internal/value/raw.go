package value

import (
	"errors"
	"fmt"
)

// Raw holds the bytes of a config value, either borrowed from the parsed
// document's backing buffer or owned after normalization had to transform
// the input. Borrowed values must not outlive the document they came from.
type Raw struct {
	data  []byte
	owned bool
}

// Borrowed wraps bytes that reference an existing buffer.
func Borrowed(b []byte) Raw {
	return Raw{data: b}
}

// Owned wraps bytes that the value owns exclusively.
func Owned(b []byte) Raw {
	return Raw{data: b, owned: true}
}

// Bytes returns the value's content. Callers must not mutate it.
func (r Raw) Bytes() []byte {
	return r.data
}

// String returns the value's content as a string.
func (r Raw) String() string {
	return string(r.data)
}

// IsOwned reports whether the value holds its own copy rather than
// borrowing from the document buffer.
func (r Raw) IsOwned() bool {
	return r.owned
}

// ErrUnbalancedQuote is returned when a value contains an odd number of
// unescaped double quotes.
var ErrUnbalancedQuote = errors.New("value: unbalanced quote")

// BadEscapeError is returned for a backslash followed by a character that
// is not part of the escape grammar.
type BadEscapeError struct {
	Sequence string
}

func (e *BadEscapeError) Error() string {
	return fmt.Sprintf("value: invalid escape sequence %q", e.Sequence)
}

// Normalize resolves the quoting layer of a raw value: surrounding quotes
// are stripped, adjacent quoted and unquoted runs are concatenated, escape
// sequences (\\ \" \n \t \b) are resolved and backslash-newline
// continuations are removed.
//
// When the input needs none of that the result borrows the input bytes
// unchanged; otherwise an owned copy is produced. A nil input (an entry
// declared without a value) normalizes to a borrowed nil.
func Normalize(raw []byte) (Raw, error) {
	plain := true
	for _, c := range raw {
		if c == '"' || c == '\\' {
			plain = false
			break
		}
	}
	if plain {
		return Borrowed(raw), nil
	}

	out := make([]byte, 0, len(raw))
	inQuote := false
	for i := 0; i < len(raw); i++ {
		switch c := raw[i]; c {
		case '"':
			inQuote = !inQuote
		case '\\':
			i++
			if i == len(raw) {
				return Raw{}, &BadEscapeError{Sequence: `\`}
			}
			switch raw[i] {
			case '\\', '"':
				out = append(out, raw[i])
			case 'n':
				out = append(out, '\n')
			case 't':
				out = append(out, '\t')
			case 'b':
				out = append(out, '\b')
			case '\n':
				// Line continuation: the backslash and newline vanish.
			case '\r':
				if i+1 == len(raw) || raw[i+1] != '\n' {
					return Raw{}, &BadEscapeError{Sequence: string(raw[i-1 : i+1])}
				}
				i++ // CRLF continuation
			default:
				return Raw{}, &BadEscapeError{Sequence: string(raw[i-1 : i+1])}
			}
		default:
			out = append(out, c)
		}
	}
	if inQuote {
		return Raw{}, ErrUnbalancedQuote
	}
	return Owned(out), nil
}

// DecodeString normalizes a raw value. It fails only on malformed escape
// sequences or unbalanced quotes.
func DecodeString(raw []byte) (Raw, error) {
	return Normalize(raw)
}

// DecodeError reports a normalized value that does not match the grammar of
// the requested type.
type DecodeError struct {
	Type  string // "boolean", "integer" or "color"
	Input string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("value: cannot decode %q as %s", e.Input, e.Type)
}
