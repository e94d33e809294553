// Copyright © 2026 Scrollterm contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: parser/cell.go
// Summary: Cell, color and attribute types for the terminal grid.
// Usage: Shared by the state machine and the line renderer.

package parser

// Attribute is a bitmask of text attributes.
type Attribute uint16

const (
	AttrBold Attribute = 1 << iota
	AttrItalic
	AttrUnderline
	AttrReverse
)

// String returns a human-readable representation of the attribute flags.
func (a Attribute) String() string {
	if a == 0 {
		return "none"
	}
	var parts []string
	if a&AttrBold != 0 {
		parts = append(parts, "bold")
	}
	if a&AttrItalic != 0 {
		parts = append(parts, "italic")
	}
	if a&AttrUnderline != 0 {
		parts = append(parts, "underline")
	}
	if a&AttrReverse != 0 {
		parts = append(parts, "reverse")
	}
	result := parts[0]
	for i := 1; i < len(parts); i++ {
		result += "|" + parts[i]
	}
	return result
}

// ColorMode defines the type of color stored.
type ColorMode int

const (
	ColorModeDefault  ColorMode = iota // terminal default, i.e. no color set
	ColorModeStandard                  // the 16 standard/bright ANSI colors (0-15)
	ColorModeRGB                       // 24-bit "true" color
)

// Color represents a color in potentially different modes. The zero value is
// the terminal default.
type Color struct {
	Mode    ColorMode
	Value   uint8 // color code for Standard mode (0-15)
	R, G, B uint8 // channel values for RGB mode
}

// StandardColor returns one of the 16 standard/bright colors.
func StandardColor(v uint8) Color {
	return Color{Mode: ColorModeStandard, Value: v}
}

// RGBColor returns a 24-bit color.
func RGBColor(r, g, b uint8) Color {
	return Color{Mode: ColorModeRGB, R: r, G: g, B: b}
}

// IsDefault reports whether the color is the terminal default.
func (c Color) IsDefault() bool { return c.Mode == ColorModeDefault }

// Style is the graphics state attached to a cell or a span of text.
// The zero value is the unstyled default. Styles are comparable.
type Style struct {
	FG   Color
	BG   Color
	Attr Attribute
}

// Cell represents a single character cell on the screen. The default cell is
// a space with no style.
type Cell struct {
	Rune  rune
	Style Style
}

func blankCell() Cell { return Cell{Rune: ' '} }
