package value

import (
	"math"
	"strconv"
)

// Suffix is the optional single-letter scale suffix of an integer value.
// It denotes a power of 1024 and is stored unmultiplied; callers decide
// whether to apply it.
type Suffix byte

const (
	SuffixNone Suffix = 0
	SuffixKibi Suffix = 'k'
	SuffixMebi Suffix = 'm'
	SuffixGibi Suffix = 'g'
)

// Factor returns the multiplier the suffix stands for.
func (s Suffix) Factor() int64 {
	switch s {
	case SuffixKibi:
		return 1024
	case SuffixMebi:
		return 1024 * 1024
	case SuffixGibi:
		return 1024 * 1024 * 1024
	default:
		return 1
	}
}

func (s Suffix) String() string {
	if s == SuffixNone {
		return ""
	}
	return string(byte(s))
}

// Integer is a decoded integer value. Value holds the literal number; the
// suffix, if any, is kept alongside without being applied.
type Integer struct {
	Value  int64
	Suffix Suffix
}

// Scaled returns Value multiplied by the suffix factor. ok is false when
// the multiplication would overflow int64.
func (i Integer) Scaled() (v int64, ok bool) {
	f := i.Suffix.Factor()
	if i.Value > math.MaxInt64/f || i.Value < math.MinInt64/f {
		return 0, false
	}
	return i.Value * f, true
}

// DecodeInteger decodes a normalized value as an optionally signed decimal
// number with an optional k, m or g suffix (case-insensitive).
func DecodeInteger(raw []byte) (Integer, error) {
	if len(raw) == 0 {
		return Integer{}, &DecodeError{Type: "integer", Input: string(raw)}
	}
	digits := raw
	suffix := SuffixNone
	switch last := raw[len(raw)-1] | 0x20; last {
	case 'k', 'm', 'g':
		suffix = Suffix(last)
		digits = raw[:len(raw)-1]
	}
	n, err := strconv.ParseInt(string(digits), 10, 64)
	if err != nil {
		return Integer{}, &DecodeError{Type: "integer", Input: string(raw)}
	}
	return Integer{Value: n, Suffix: suffix}, nil
}
