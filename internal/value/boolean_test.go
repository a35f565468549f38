package value

import (
	"errors"
	"testing"
)

func TestDecodeBoolean(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want Boolean
	}{
		{raw: "true", want: Boolean{Value: true}},
		{raw: "TRUE", want: Boolean{Value: true}},
		{raw: "yes", want: Boolean{Value: true}},
		{raw: "on", want: Boolean{Value: true}},
		{raw: "1", want: Boolean{Value: true}},
		{raw: "false", want: Boolean{Value: false}},
		{raw: "No", want: Boolean{Value: false}},
		{raw: "off", want: Boolean{Value: false}},
		{raw: "0", want: Boolean{Value: false}},
		{raw: "", want: Boolean{Value: false}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()
			got, err := DecodeBoolean([]byte(tt.raw))
			if err != nil {
				t.Fatalf("DecodeBoolean(%q) error: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("DecodeBoolean(%q) = %+v, want %+v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestDecodeBooleanImplicit(t *testing.T) {
	t.Parallel()

	// A key with no value at all is implicitly true, and the implicit form
	// stays distinguishable from an explicit "true".
	implicit, err := DecodeBoolean(nil)
	if err != nil {
		t.Fatal(err)
	}
	explicit, err := DecodeBoolean([]byte("true"))
	if err != nil {
		t.Fatal(err)
	}
	if !implicit.Value || !explicit.Value {
		t.Fatal("both forms must decode to true")
	}
	if !implicit.Implicit {
		t.Error("nil input should decode as implicit")
	}
	if explicit.Implicit {
		t.Error("explicit token should not decode as implicit")
	}
}

func TestDecodeBooleanUnknownToken(t *testing.T) {
	t.Parallel()

	_, err := DecodeBoolean([]byte("maybe"))
	var derr *DecodeError
	if !errors.As(err, &derr) {
		t.Fatalf("expected DecodeError, got %v", err)
	}
	if derr.Type != "boolean" {
		t.Errorf("Type = %q, want %q", derr.Type, "boolean")
	}
}

func TestDecodeBooleanWithCustomVocabulary(t *testing.T) {
	t.Parallel()

	vocab := DefaultVocabulary
	vocab.True = append(append([]string{}, vocab.True...), "ja")
	vocab.False = append(append([]string{}, vocab.False...), "nein")

	got, err := DecodeBooleanWith(vocab, []byte("JA"))
	if err != nil {
		t.Fatal(err)
	}
	if !got.Value {
		t.Error("custom true token should decode to true")
	}
	got, err = DecodeBooleanWith(vocab, []byte("nein"))
	if err != nil {
		t.Fatal(err)
	}
	if got.Value {
		t.Error("custom false token should decode to false")
	}
}
