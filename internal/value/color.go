package value

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// NameKind discriminates the three forms a color name can take.
type NameKind uint8

const (
	NameNamed NameKind = iota // one of the ANSI color words
	NameAnsi                  // a 0-255 palette index
	NameRGB                   // a #rrggbb triple
)

// Base enumerates the named colors, including the bright variants.
type Base uint8

const (
	Normal Base = iota
	Default
	Black
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	BrightBlack
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
)

var baseNames = map[string]Base{
	"normal":        Normal,
	"default":       Default,
	"black":         Black,
	"red":           Red,
	"green":         Green,
	"yellow":        Yellow,
	"blue":          Blue,
	"magenta":       Magenta,
	"cyan":          Cyan,
	"white":         White,
	"brightblack":   BrightBlack,
	"brightred":     BrightRed,
	"brightgreen":   BrightGreen,
	"brightyellow":  BrightYellow,
	"brightblue":    BrightBlue,
	"brightmagenta": BrightMagenta,
	"brightcyan":    BrightCyan,
	"brightwhite":   BrightWhite,
}

// Name is a single color token: a named color, a 256-color palette index or
// an RGB triple.
type Name struct {
	Kind  NameKind
	Base  Base  // valid when Kind is NameNamed
	Index uint8 // valid when Kind is NameAnsi
	R     uint8 // R, G, B valid when Kind is NameRGB
	G     uint8
	B     uint8
}

// NamedColor returns the Name for a named color.
func NamedColor(b Base) Name { return Name{Kind: NameNamed, Base: b} }

// AnsiColor returns the Name for a 256-color palette index.
func AnsiColor(i uint8) Name { return Name{Kind: NameAnsi, Index: i} }

// RGBColor returns the Name for an RGB triple.
func RGBColor(r, g, b uint8) Name { return Name{Kind: NameRGB, R: r, G: g, B: b} }

// String returns the canonical config token for the name.
func (n Name) String() string {
	switch n.Kind {
	case NameAnsi:
		return strconv.Itoa(int(n.Index))
	case NameRGB:
		return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
	default:
		for tok, b := range baseNames {
			if b == n.Base {
				return tok
			}
		}
		return "normal"
	}
}

// Attr enumerates the text attributes a color value can carry.
type Attr uint8

const (
	AttrReset Attr = iota
	AttrBold
	AttrDim
	AttrItalic
	AttrUnderline
	AttrBlink
	AttrReverse
	AttrStrike
)

var attrNames = map[string]Attr{
	"reset":     AttrReset,
	"bold":      AttrBold,
	"dim":       AttrDim,
	"italic":    AttrItalic,
	"ul":        AttrUnderline,
	"underline": AttrUnderline,
	"blink":     AttrBlink,
	"reverse":   AttrReverse,
	"strike":    AttrStrike,
}

// Attribute is one attribute keyword, possibly negated with a "no" or
// "no-" prefix (reset cannot be negated).
type Attribute struct {
	Attr    Attr
	Negated bool
}

func (a Attribute) String() string {
	name := "reset"
	switch a.Attr {
	case AttrBold:
		name = "bold"
	case AttrDim:
		name = "dim"
	case AttrItalic:
		name = "italic"
	case AttrUnderline:
		name = "ul"
	case AttrBlink:
		name = "blink"
	case AttrReverse:
		name = "reverse"
	case AttrStrike:
		name = "strike"
	}
	if a.Negated {
		return "no" + name
	}
	return name
}

// Color is a decoded color value: an optional foreground, an optional
// background and any number of attributes.
type Color struct {
	Foreground *Name
	Background *Name
	Attributes []Attribute
}

// DecodeColor decodes a normalized value as a color. The first color token
// is the foreground, the second the background; attribute keywords may
// appear anywhere. Any continuation lines have already been joined by
// normalization, so tokens simply split on whitespace.
func DecodeColor(raw []byte) (Color, error) {
	var c Color
	for _, tok := range bytes.Fields(raw) {
		word := strings.ToLower(string(tok))
		if attr, ok := parseAttribute(word); ok {
			c.Attributes = append(c.Attributes, attr)
			continue
		}
		name, ok := parseColorName(word)
		if !ok {
			return Color{}, &DecodeError{Type: "color", Input: string(tok)}
		}
		switch {
		case c.Foreground == nil:
			c.Foreground = &name
		case c.Background == nil:
			c.Background = &name
		default:
			return Color{}, &DecodeError{Type: "color", Input: string(tok)}
		}
	}
	return c, nil
}

func parseAttribute(word string) (Attribute, bool) {
	if a, ok := attrNames[word]; ok {
		return Attribute{Attr: a}, true
	}
	neg, found := strings.CutPrefix(word, "no")
	if !found {
		return Attribute{}, false
	}
	neg = strings.TrimPrefix(neg, "-")
	if a, ok := attrNames[neg]; ok && a != AttrReset {
		return Attribute{Attr: a, Negated: true}, true
	}
	return Attribute{}, false
}

func parseColorName(word string) (Name, bool) {
	if b, ok := baseNames[word]; ok {
		return NamedColor(b), true
	}
	if strings.HasPrefix(word, "#") && len(word) == 7 {
		v, err := strconv.ParseUint(word[1:], 16, 32)
		if err != nil {
			return Name{}, false
		}
		return RGBColor(uint8(v>>16), uint8(v>>8), uint8(v)), true
	}
	if i, err := strconv.ParseUint(word, 10, 8); err == nil {
		return AnsiColor(uint8(i)), true
	}
	return Name{}, false
}
