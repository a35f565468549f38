// Package format renders config entries and decoded values for terminal
// output.
//
// A Renderer decides once whether color is in play ("always", "never" or
// "auto" via tty and terminal color profile detection) and styles entry
// listings with lipgloss. Decoded color values can be rendered as a swatch
// that applies the value's own foreground, background and attributes.
package format
