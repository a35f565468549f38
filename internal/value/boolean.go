package value

import "bytes"

// Boolean is a decoded boolean value. A key declared without any value is
// implicitly true; Implicit distinguishes that form from an explicit
// textual token.
type Boolean struct {
	Value    bool
	Implicit bool
}

// Vocabulary lists the textual tokens accepted as true and false. Tokens
// are matched case-insensitively against the normalized value.
type Vocabulary struct {
	True  []string
	False []string
}

// DefaultVocabulary is the token set git itself accepts. The empty string
// always decodes to false regardless of vocabulary.
var DefaultVocabulary = Vocabulary{
	True:  []string{"true", "yes", "on", "1"},
	False: []string{"false", "no", "off", "0"},
}

// DecodeBoolean decodes a normalized value using DefaultVocabulary.
// A nil input marks a key that was declared without a value and decodes to
// the implicit true form.
func DecodeBoolean(raw []byte) (Boolean, error) {
	return DecodeBooleanWith(DefaultVocabulary, raw)
}

// DecodeBooleanWith decodes a normalized value against a custom vocabulary.
func DecodeBooleanWith(v Vocabulary, raw []byte) (Boolean, error) {
	if raw == nil {
		return Boolean{Value: true, Implicit: true}, nil
	}
	if len(raw) == 0 {
		return Boolean{Value: false}, nil
	}
	for _, t := range v.True {
		if foldEqBytes(raw, t) {
			return Boolean{Value: true}, nil
		}
	}
	for _, t := range v.False {
		if foldEqBytes(raw, t) {
			return Boolean{Value: false}, nil
		}
	}
	return Boolean{}, &DecodeError{Type: "boolean", Input: string(raw)}
}

// foldEqBytes compares bytes to a token under ASCII case folding.
func foldEqBytes(b []byte, token string) bool {
	if len(b) != len(token) {
		return false
	}
	return bytes.EqualFold(b, []byte(token))
}
