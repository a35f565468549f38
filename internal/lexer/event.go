package lexer

import "fmt"

// Kind classifies a lexical event.
type Kind uint8

const (
	// KindSectionHeader carries a section name. A KindSubsection event
	// follows immediately when the header has a subsection label.
	KindSectionHeader Kind = iota
	// KindSubsection carries the label of the preceding section header,
	// with quote escapes already resolved (byte-exact, case-sensitive).
	KindSubsection
	// KindKey carries an entry key. A KindValue event follows unless the
	// key was declared bare (implicitly true).
	KindKey
	// KindValue carries the raw, still-quoted value span of the preceding
	// key, including any backslash-newline continuations.
	KindValue
	// KindComment carries a comment, without the trailing newline.
	KindComment
	// KindBlank marks a line holding only whitespace.
	KindBlank
)

func (k Kind) String() string {
	switch k {
	case KindSectionHeader:
		return "section-header"
	case KindSubsection:
		return "subsection"
	case KindKey:
		return "key"
	case KindValue:
		return "value"
	case KindComment:
		return "comment"
	case KindBlank:
		return "blank"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Event is one lexical token. Bytes is a subslice of the scanned input,
// except for subsection labels containing escapes, which are materialized.
type Event struct {
	Kind  Kind
	Bytes []byte
	Line  int // 1-based line the token starts on
}

// SyntaxError reports a structurally invalid input. No partial event
// sequence is returned alongside it.
type SyntaxError struct {
	Line int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}
