// Copyright © 2026 Scrollterm contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: display/tcell.go
// Summary: Maps parsed colors and styles onto tcell for screen rendering.
// Usage: Scrollback views call MapStyle per span when drawing with a
// tcell.Screen.

package display

import (
	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/scrollterm/parser"
)

// MapColor converts a parsed color to tcell.
func MapColor(c parser.Color) tcell.Color {
	switch c.Mode {
	case parser.ColorModeStandard:
		return tcell.PaletteColor(int(c.Value))
	case parser.ColorModeRGB:
		return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	default:
		return tcell.ColorDefault
	}
}

// MapStyle converts a parsed span style to tcell.
func MapStyle(s parser.Style) tcell.Style {
	st := tcell.StyleDefault.
		Foreground(MapColor(s.FG)).
		Background(MapColor(s.BG))
	if s.Attr&parser.AttrBold != 0 {
		st = st.Bold(true)
	}
	if s.Attr&parser.AttrItalic != 0 {
		st = st.Italic(true)
	}
	if s.Attr&parser.AttrUnderline != 0 {
		st = st.Underline(true)
	}
	if s.Attr&parser.AttrReverse != 0 {
		st = st.Reverse(true)
	}
	return st
}

// DrawLine writes one parsed line onto a tcell screen at (x, y), advancing by
// display width so wide runes occupy two columns.
func DrawLine(s tcell.Screen, x, y int, line parser.Line) {
	col := x
	for _, span := range line.Spans {
		st := MapStyle(span.Style)
		for _, r := range span.Text {
			s.SetContent(col, y, r, nil, st)
			col += runeWidth(r)
		}
	}
}
