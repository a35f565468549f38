package lexer

import "bytes"

// Scan tokenizes a full config buffer into events. The input is expected to
// be fully buffered; no partial event sequence is returned on error.
func Scan(data []byte) ([]Event, error) {
	s := &scanner{data: data, line: 1}
	s.skipBOM()
	for !s.eof() {
		if err := s.scanLine(); err != nil {
			return nil, err
		}
	}
	return s.events, nil
}

type scanner struct {
	data   []byte
	pos    int
	line   int
	events []Event
}

var bom = []byte{0xef, 0xbb, 0xbf}

func (s *scanner) skipBOM() {
	if bytes.HasPrefix(s.data, bom) {
		s.pos = len(bom)
	}
}

func (s *scanner) eof() bool { return s.pos >= len(s.data) }

func (s *scanner) peek() byte { return s.data[s.pos] }

func (s *scanner) emit(kind Kind, b []byte, line int) {
	s.events = append(s.events, Event{Kind: kind, Bytes: b, Line: line})
}

func (s *scanner) errorf(msg string) error {
	return &SyntaxError{Line: s.line, Msg: msg}
}

// scanLine consumes one physical line (more, when a value continues).
func (s *scanner) scanLine() error {
	lineStart := s.pos
	s.skipInlineSpace()

	if s.eof() || s.peek() == '\n' {
		s.emit(KindBlank, s.data[lineStart:s.pos], s.line)
		s.consumeNewline()
		return nil
	}

	switch c := s.peek(); {
	case c == '#' || c == ';':
		s.scanComment()
		s.consumeNewline()
		return nil
	case c == '[':
		if err := s.scanSectionHeader(); err != nil {
			return err
		}
		// Entries may follow the header on the same line.
		s.skipInlineSpace()
		if s.eof() || s.peek() == '\n' {
			s.consumeNewline()
			return nil
		}
		if c := s.peek(); c == '#' || c == ';' {
			s.scanComment()
			s.consumeNewline()
			return nil
		}
		return s.scanEntry()
	default:
		return s.scanEntry()
	}
}

func (s *scanner) scanComment() {
	start := s.pos
	for !s.eof() && s.peek() != '\n' {
		s.pos++
	}
	s.emit(KindComment, trimCR(s.data[start:s.pos]), s.line)
}

func (s *scanner) scanSectionHeader() error {
	headerLine := s.line
	s.pos++ // '['

	nameStart := s.pos
	for !s.eof() && isSectionNameChar(s.peek()) {
		s.pos++
	}
	name := s.data[nameStart:s.pos]
	if len(name) == 0 {
		return s.errorf("empty section name")
	}
	s.emit(KindSectionHeader, name, headerLine)

	s.skipInlineSpace()
	var sub []byte
	hasSub := false
	if !s.eof() && s.peek() == '"' {
		var err error
		sub, err = s.scanSubsection()
		if err != nil {
			return err
		}
		hasSub = true
		s.skipInlineSpace()
	}
	if s.eof() || s.peek() != ']' {
		return s.errorf("malformed section header: expected ']'")
	}
	s.pos++ // ']'
	if hasSub {
		s.emit(KindSubsection, sub, headerLine)
	}
	return nil
}

// scanSubsection reads a quoted subsection label, resolving its escapes.
// The label borrows the input unless it contains escapes.
func (s *scanner) scanSubsection() ([]byte, error) {
	s.pos++ // opening '"'
	start := s.pos
	var owned []byte
	for !s.eof() {
		switch c := s.peek(); c {
		case '"':
			raw := s.data[start:s.pos]
			s.pos++
			if owned != nil {
				return append(owned, raw...), nil
			}
			return raw, nil
		case '\n':
			return nil, s.errorf("unterminated subsection label")
		case '\\':
			// The backslash is dropped, the next byte kept verbatim.
			owned = append(owned, s.data[start:s.pos]...)
			s.pos++
			if s.eof() || s.peek() == '\n' {
				return nil, s.errorf("unterminated subsection label")
			}
			owned = append(owned, s.peek())
			s.pos++
			start = s.pos
		default:
			s.pos++
		}
	}
	return nil, s.errorf("unterminated subsection label")
}

func (s *scanner) scanEntry() error {
	keyLine := s.line
	if !isKeyStart(s.peek()) {
		return s.errorf("invalid key: must start with a letter")
	}
	keyStart := s.pos
	for !s.eof() && isKeyChar(s.peek()) {
		s.pos++
	}
	s.emit(KindKey, s.data[keyStart:s.pos], keyLine)

	s.skipInlineSpace()
	if s.eof() || s.peek() == '\n' {
		s.consumeNewline()
		return nil // bare key, implicitly true
	}
	switch c := s.peek(); c {
	case '#', ';':
		s.scanComment()
		s.consumeNewline()
		return nil // bare key with trailing comment
	case '=':
		s.pos++
		s.skipInlineSpace()
		return s.scanValue()
	default:
		return s.errorf("invalid key character")
	}
}

// scanValue reads a value span up to the end of the logical line. The span
// keeps quotes, escapes and backslash-newline continuations untouched for
// the value package to resolve.
func (s *scanner) scanValue() error {
	valueLine := s.line
	start := s.pos
	inQuote := false

scan:
	for !s.eof() {
		switch c := s.peek(); c {
		case '\n':
			if inQuote {
				return s.errorf("unterminated quote in value")
			}
			break scan
		case '\\':
			s.pos++
			if s.eof() {
				break scan // dangling escape, rejected at decode time
			}
			if s.peek() == '\n' {
				s.pos++
				s.line++
				continue
			}
			if s.peek() == '\r' && s.pos+1 < len(s.data) && s.data[s.pos+1] == '\n' {
				s.pos += 2
				s.line++
				continue
			}
			s.pos++
		case '"':
			inQuote = !inQuote
			s.pos++
		case '#', ';':
			if !inQuote {
				break scan
			}
			s.pos++
		default:
			s.pos++
		}
	}
	if inQuote {
		return s.errorf("unterminated quote in value")
	}

	value := s.data[start:s.pos]
	value = bytes.TrimRight(value, " \t\r")
	s.emit(KindValue, value, valueLine)

	if !s.eof() && (s.peek() == '#' || s.peek() == ';') {
		s.scanComment()
	}
	s.consumeNewline()
	return nil
}

func (s *scanner) skipInlineSpace() {
	for !s.eof() {
		switch s.peek() {
		case ' ', '\t', '\r':
			s.pos++
		default:
			return
		}
	}
}

func (s *scanner) consumeNewline() {
	if !s.eof() && s.peek() == '\n' {
		s.pos++
		s.line++
	}
}

func trimCR(b []byte) []byte {
	return bytes.TrimSuffix(b, []byte{'\r'})
}

func isSectionNameChar(c byte) bool {
	return isAlnum(c) || c == '-' || c == '.'
}

func isKeyStart(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func isKeyChar(c byte) bool {
	return isAlnum(c) || c == '-'
}

func isAlnum(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9'
}
