package ui

import "fmt"

// Role helpers return the escape sequence of the active palette, or "" under
// the "none" theme.

func Pass() string  { return Current().Palette.Pass }
func Fail() string  { return Current().Palette.Fail }
func Warn() string  { return Current().Palette.Warn }
func Value() string { return Current().Palette.Value }
func Label() string { return Current().Palette.Label }
func Muted() string { return Current().Palette.Muted }
func Reset() string { return Current().Palette.Reset }

// Paint wraps the text form of v in color and a reset. It returns the text
// unchanged when color is empty.
func Paint(color string, v any) string {
	s := fmt.Sprint(v)
	if color == "" {
		return s
	}
	return color + s + Reset()
}
