package lexer

import (
	"errors"
	"testing"
)

func TestScanBasicDocument(t *testing.T) {
	t.Parallel()

	input := "[core]\n\tbare = false\n\tlogs\n"
	events, err := Scan([]byte(input))
	if err != nil {
		t.Fatal(err)
	}

	want := []struct {
		kind Kind
		text string
	}{
		{KindSectionHeader, "core"},
		{KindKey, "bare"},
		{KindValue, "false"},
		{KindKey, "logs"},
	}
	if len(events) != len(want) {
		t.Fatalf("got %d events, want %d: %v", len(events), len(want), events)
	}
	for i, w := range want {
		if events[i].Kind != w.kind || string(events[i].Bytes) != w.text {
			t.Errorf("event %d = (%v, %q), want (%v, %q)",
				i, events[i].Kind, events[i].Bytes, w.kind, w.text)
		}
	}
}

func TestScanSubsection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain label", input: `[remote "origin"]`, want: "origin"},
		{name: "escaped quote", input: `[remote "ori\"gin"]`, want: `ori"gin`},
		{name: "escaped backslash", input: `[remote "a\\b"]`, want: `a\b`},
		{name: "case preserved", input: `[remote "Origin"]`, want: "Origin"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			events, err := Scan([]byte(tt.input))
			if err != nil {
				t.Fatal(err)
			}
			if len(events) != 2 || events[1].Kind != KindSubsection {
				t.Fatalf("expected header+subsection, got %v", events)
			}
			if got := string(events[1].Bytes); got != tt.want {
				t.Errorf("subsection = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestScanEntryOnHeaderLine(t *testing.T) {
	t.Parallel()

	events, err := Scan([]byte("[core] bool-implicit"))
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 2 || events[0].Kind != KindSectionHeader || events[1].Kind != KindKey {
		t.Fatalf("expected header+key, got %v", events)
	}
	if string(events[1].Bytes) != "bool-implicit" {
		t.Errorf("key = %q, want %q", events[1].Bytes, "bool-implicit")
	}
}

func TestScanValueSpans(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string // raw value span, quotes and escapes untouched
	}{
		{name: "trailing comment stripped", input: "[a]\nk = v ; note", want: "v"},
		{name: "comment char in quotes kept", input: "[a]\nk = \"v ; note\"", want: `"v ; note"`},
		{name: "trailing whitespace trimmed", input: "[a]\nk = v  \t\n", want: "v"},
		{name: "empty explicit value", input: "[a]\nk =\n", want: ""},
		{name: "continuation kept in span", input: "[a]\nk = one \\\n  two\n", want: "one \\\n  two"},
		{name: "quotes kept in span", input: "[a]\nk = \"hello\"\n", want: `"hello"`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			events, err := Scan([]byte(tt.input))
			if err != nil {
				t.Fatal(err)
			}
			var got *Event
			for i := range events {
				if events[i].Kind == KindValue {
					got = &events[i]
					break
				}
			}
			if got == nil {
				t.Fatalf("no value event in %v", events)
			}
			if string(got.Bytes) != tt.want {
				t.Errorf("value span = %q, want %q", got.Bytes, tt.want)
			}
		})
	}
}

func TestScanCommentsAndBlanks(t *testing.T) {
	t.Parallel()

	input := "# heading\n\n[a]\nk = v # tail\n; other\n"
	events, err := Scan([]byte(input))
	if err != nil {
		t.Fatal(err)
	}
	var comments, blanks int
	for _, e := range events {
		switch e.Kind {
		case KindComment:
			comments++
		case KindBlank:
			blanks++
		}
	}
	if comments != 3 {
		t.Errorf("comments = %d, want 3", comments)
	}
	if blanks != 1 {
		t.Errorf("blanks = %d, want 1", blanks)
	}
}

func TestScanLineNumbers(t *testing.T) {
	t.Parallel()

	input := "[a]\nk = one \\\n  two\nnext = 1\n"
	events, err := Scan([]byte(input))
	if err != nil {
		t.Fatal(err)
	}
	byKey := map[string]int{}
	for _, e := range events {
		if e.Kind == KindKey {
			byKey[string(e.Bytes)] = e.Line
		}
	}
	if byKey["k"] != 2 {
		t.Errorf("key k on line %d, want 2", byKey["k"])
	}
	// The continuation consumed line 3, so the next key sits on line 4.
	if byKey["next"] != 4 {
		t.Errorf("key next on line %d, want 4", byKey["next"])
	}
}

func TestScanErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		line  int
	}{
		{name: "missing bracket", input: "[core\nk = v", line: 1},
		{name: "empty section name", input: "[]\n", line: 1},
		{name: "unterminated subsection", input: "[remote \"origin]\n", line: 1},
		{name: "unterminated value quote", input: "[a]\nk = \"open\n", line: 2},
		{name: "key starts with digit", input: "[a]\n1key = v\n", line: 2},
		{name: "missing equals", input: "[a]\nkey value\n", line: 2},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Scan([]byte(tt.input))
			var serr *SyntaxError
			if !errors.As(err, &serr) {
				t.Fatalf("expected SyntaxError, got %v", err)
			}
			if serr.Line != tt.line {
				t.Errorf("error line = %d, want %d", serr.Line, tt.line)
			}
		})
	}
}

func TestScanSkipsBOM(t *testing.T) {
	t.Parallel()

	events, err := Scan([]byte("\xef\xbb\xbf[core]\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 1 || events[0].Kind != KindSectionHeader {
		t.Fatalf("expected a single section header, got %v", events)
	}
}
