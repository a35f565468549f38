package document

import (
	"errors"
	"fmt"

	"github.com/raphi011/gitcfg/internal/lexer"
)

// Entry is one key/value declaration inside a section. A bare key (no "=")
// carries no value and is implicitly true.
type Entry struct {
	// Key in its original casing. Identity is case-insensitive.
	Key string

	value    []byte
	implicit bool
}

// Implicit reports whether the entry was declared without a value.
func (e Entry) Implicit() bool { return e.implicit }

// Raw returns the entry's raw value span, still quoted and escaped, or nil
// for an implicit entry. An explicit empty value returns an empty non-nil
// slice.
func (e Entry) Raw() []byte {
	if e.implicit {
		return nil
	}
	if e.value == nil {
		return []byte{}
	}
	return e.value
}

// Section is a named group of entries, optionally qualified by a
// byte-exact subsection label.
type Section struct {
	// Name in its original casing. Identity is case-insensitive.
	Name string
	// Subsection label, exact case; empty means none.
	Subsection string
	// Entries in declaration order.
	Entries []Entry
}

func (s *Section) matches(name, subsection string) bool {
	return foldEq(s.Name, name) && s.Subsection == subsection
}

// Document is an ordered, immutable sequence of sections backed by the
// parsed byte buffer.
type Document struct {
	buf      []byte
	sections []*Section
}

// Sections returns the sections in declaration order. The slice and its
// contents must be treated as read-only.
func (d *Document) Sections() []*Section { return d.sections }

// Structural build errors.
var (
	// ErrNoSection marks an entry that appears before any section header.
	ErrNoSection = errors.New("document: entry before any section header")
	// ErrOrphanValue marks a value event with no preceding key.
	ErrOrphanValue = errors.New("document: value without a key")
	// ErrOrphanSubsection marks a subsection event with no preceding header.
	ErrOrphanSubsection = errors.New("document: subsection without a section header")
)

// Parse tokenizes and builds a document from a fully buffered config file.
func Parse(data []byte) (*Document, error) {
	events, err := lexer.Scan(data)
	if err != nil {
		return nil, err
	}
	return FromEvents(data, events)
}

// FromEvents builds a document from a pre-lexed event sequence. The buffer
// the events reference must be passed along; lookup results may borrow
// from it.
func FromEvents(data []byte, events []lexer.Event) (*Document, error) {
	d := &Document{buf: data}
	var cur *Section
	pendingKey := -1 // index into cur.Entries awaiting a value

	for _, ev := range events {
		switch ev.Kind {
		case lexer.KindSectionHeader:
			cur = &Section{Name: string(ev.Bytes)}
			d.sections = append(d.sections, cur)
			pendingKey = -1
		case lexer.KindSubsection:
			if cur == nil || len(cur.Entries) > 0 {
				return nil, fmt.Errorf("line %d: %w", ev.Line, ErrOrphanSubsection)
			}
			cur.Subsection = string(ev.Bytes)
		case lexer.KindKey:
			if cur == nil {
				return nil, fmt.Errorf("line %d: %w", ev.Line, ErrNoSection)
			}
			cur.Entries = append(cur.Entries, Entry{Key: string(ev.Bytes), implicit: true})
			pendingKey = len(cur.Entries) - 1
		case lexer.KindValue:
			if cur == nil || pendingKey < 0 {
				return nil, fmt.Errorf("line %d: %w", ev.Line, ErrOrphanValue)
			}
			cur.Entries[pendingKey].implicit = false
			cur.Entries[pendingKey].value = ev.Bytes
			pendingKey = -1
		case lexer.KindComment, lexer.KindBlank:
			// No lookup semantics.
		}
	}
	return d, nil
}
