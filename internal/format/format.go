package format

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/colorprofile"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/raphi011/gitcfg/internal/value"
)

var (
	sectionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("62")).Bold(true)
	keyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	valueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Renderer styles terminal output. With color disabled every method
// degrades to plain text.
type Renderer struct {
	color bool
}

// NewRenderer creates a renderer for the given color mode ("auto",
// "always" or "never"). In auto mode color is enabled when stdout is a
// terminal with a usable color profile.
func NewRenderer(mode string) *Renderer {
	return &Renderer{color: colorEnabled(mode)}
}

func colorEnabled(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return false
	}
	profile := colorprofile.Detect(os.Stdout, os.Environ())
	return profile != colorprofile.NoTTY && profile != colorprofile.Ascii
}

// ColorEnabled reports whether the renderer emits styles.
func (r *Renderer) ColorEnabled() bool { return r.color }

// Key renders a dotted entry name.
func (r *Renderer) Key(section, subsection, key string) string {
	name := DisplayKey(section, subsection, key)
	if !r.color {
		return name
	}
	return keyStyle.Render(name)
}

// Entry renders one "name=value" listing line.
func (r *Renderer) Entry(section, subsection, key, val string) string {
	name := DisplayKey(section, subsection, key)
	if !r.color {
		return name + "=" + val
	}
	return keyStyle.Render(name) + mutedStyle.Render("=") + valueStyle.Render(val)
}

// SectionHeader renders a "[name "sub"]" heading with counts.
func (r *Renderer) SectionHeader(name, subsection string, entries, repetitions int) string {
	header := "[" + name
	if subsection != "" {
		header += " " + strconv.Quote(subsection)
	}
	header += "]"
	counts := fmt.Sprintf(" %d entries", entries)
	if repetitions > 1 {
		counts += fmt.Sprintf(" in %d repetitions", repetitions)
	}
	if !r.color {
		return header + counts
	}
	return sectionStyle.Render(header) + mutedStyle.Render(counts)
}

// Muted renders de-emphasized text, e.g. suggestions.
func (r *Renderer) Muted(s string) string {
	if !r.color {
		return s
	}
	return mutedStyle.Render(s)
}

// Swatch renders a sample block styled with a decoded color value, so the
// effect of e.g. "brightgreen red bold" is visible next to its text form.
// Without color the raw text is returned alone.
func (r *Renderer) Swatch(c value.Color, raw string) string {
	if !r.color {
		return raw
	}
	style := lipgloss.NewStyle()
	if fg, ok := termColor(c.Foreground); ok {
		style = style.Foreground(fg)
	}
	if bg, ok := termColor(c.Background); ok {
		style = style.Background(bg)
	}
	for _, a := range c.Attributes {
		switch a.Attr {
		case value.AttrBold:
			style = style.Bold(!a.Negated)
		case value.AttrDim:
			style = style.Faint(!a.Negated)
		case value.AttrItalic:
			style = style.Italic(!a.Negated)
		case value.AttrUnderline:
			style = style.Underline(!a.Negated)
		case value.AttrBlink:
			style = style.Blink(!a.Negated)
		case value.AttrReverse:
			style = style.Reverse(!a.Negated)
		case value.AttrStrike:
			style = style.Strikethrough(!a.Negated)
		}
	}
	return raw + " " + style.Render("sample")
}

// termColor maps a decoded color name onto a lipgloss color. "normal" and
// "default" map to no color at all.
func termColor(n *value.Name) (lipgloss.TerminalColor, bool) {
	if n == nil {
		return nil, false
	}
	switch n.Kind {
	case value.NameAnsi:
		return lipgloss.Color(strconv.Itoa(int(n.Index))), true
	case value.NameRGB:
		return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)), true
	default:
		switch {
		case n.Base == value.Normal || n.Base == value.Default:
			return nil, false
		case n.Base >= value.BrightBlack:
			return lipgloss.Color(strconv.Itoa(int(n.Base-value.BrightBlack) + 8)), true
		default:
			return lipgloss.Color(strconv.Itoa(int(n.Base - value.Black))), true
		}
	}
}

// DisplayKey joins the lookup coordinates into git's dotted notation.
func DisplayKey(section, subsection, key string) string {
	if subsection == "" {
		return section + "." + key
	}
	return section + "." + subsection + "." + key
}
