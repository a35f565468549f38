package document

import (
	"errors"
	"testing"

	"github.com/raphi011/gitcfg/internal/lexer"
)

func TestParsePreservesOrderAndDuplicates(t *testing.T) {
	t.Parallel()

	input := "[core]\na = 1\n[remote \"origin\"]\nurl = x\n[core]\nb = 2\n"
	doc, err := Parse([]byte(input))
	if err != nil {
		t.Fatal(err)
	}

	sections := doc.Sections()
	if len(sections) != 3 {
		t.Fatalf("got %d sections, want 3 (duplicates must not merge)", len(sections))
	}
	if sections[0].Name != "core" || sections[1].Name != "remote" || sections[2].Name != "core" {
		t.Errorf("section order = %q %q %q", sections[0].Name, sections[1].Name, sections[2].Name)
	}
	if sections[1].Subsection != "origin" {
		t.Errorf("subsection = %q, want %q", sections[1].Subsection, "origin")
	}
}

func TestParseKeepsOriginalCasing(t *testing.T) {
	t.Parallel()

	doc, err := Parse([]byte("[CoRe]\nSomeKey = v\n"))
	if err != nil {
		t.Fatal(err)
	}
	s := doc.Sections()[0]
	if s.Name != "CoRe" {
		t.Errorf("stored section name = %q, want original casing", s.Name)
	}
	if s.Entries[0].Key != "SomeKey" {
		t.Errorf("stored key = %q, want original casing", s.Entries[0].Key)
	}
}

func TestParseImplicitVersusEmptyValue(t *testing.T) {
	t.Parallel()

	doc, err := Parse([]byte("[a]\nbare\nempty =\n"))
	if err != nil {
		t.Fatal(err)
	}
	entries := doc.Sections()[0].Entries
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if !entries[0].Implicit() || entries[0].Raw() != nil {
		t.Errorf("bare key: implicit=%v raw=%q, want implicit with nil raw", entries[0].Implicit(), entries[0].Raw())
	}
	if entries[1].Implicit() {
		t.Error("empty explicit value must not be implicit")
	}
	if raw := entries[1].Raw(); raw == nil || len(raw) != 0 {
		t.Errorf("empty explicit value raw = %v, want empty non-nil", raw)
	}
}

func TestParseEntryBeforeSectionFails(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte("key = value\n[a]\n"))
	if !errors.Is(err, ErrNoSection) {
		t.Fatalf("expected ErrNoSection, got %v", err)
	}
}

func TestParseStructuralErrorYieldsNoDocument(t *testing.T) {
	t.Parallel()

	doc, err := Parse([]byte("[unclosed\n"))
	if err == nil {
		t.Fatal("expected a structural error")
	}
	if doc != nil {
		t.Error("no partial document may be produced on structural errors")
	}
}

func TestFromEvents(t *testing.T) {
	t.Parallel()

	t.Run("pre-lexed stream", func(t *testing.T) {
		t.Parallel()
		data := []byte("[core]\nkey = v\n")
		events, err := lexer.Scan(data)
		if err != nil {
			t.Fatal(err)
		}
		doc, err := FromEvents(data, events)
		if err != nil {
			t.Fatal(err)
		}
		if _, ok := doc.Lookup("core", "", "key"); !ok {
			t.Error("lookup failed on document built from events")
		}
	})

	t.Run("value without key", func(t *testing.T) {
		t.Parallel()
		events := []lexer.Event{
			{Kind: lexer.KindSectionHeader, Bytes: []byte("a"), Line: 1},
			{Kind: lexer.KindValue, Bytes: []byte("v"), Line: 1},
		}
		_, err := FromEvents(nil, events)
		if !errors.Is(err, ErrOrphanValue) {
			t.Fatalf("expected ErrOrphanValue, got %v", err)
		}
	})

	t.Run("subsection without header", func(t *testing.T) {
		t.Parallel()
		events := []lexer.Event{
			{Kind: lexer.KindSubsection, Bytes: []byte("x"), Line: 1},
		}
		_, err := FromEvents(nil, events)
		if !errors.Is(err, ErrOrphanSubsection) {
			t.Fatalf("expected ErrOrphanSubsection, got %v", err)
		}
	})
}
