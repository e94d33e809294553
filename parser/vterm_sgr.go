// Copyright © 2026 Scrollterm contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: parser/vterm_sgr.go
// Summary: SGR (Select Graphic Rendition) - text attributes and colors.
// Usage: Part of the VTerm state machine.
// Notes: Extended colors (38/48) are parsed with an explicit cursor over the
// materialized parameter list; truncated sequences must leave color state
// untouched without swallowing unrelated parameters.

package parser

// handleSGR processes SGR escape sequences: text attributes (bold, italic,
// underline, reverse) and colors (standard, 256-palette, RGB).
func (v *VTerm) handleSGR(params []int) {
	if len(params) == 0 {
		params = []int{0}
	}
	for i := 0; i < len(params); i++ {
		switch p := params[i]; {
		case p == 0:
			v.style = Style{}
		case p == 1:
			v.style.Attr |= AttrBold
		case p == 3:
			v.style.Attr |= AttrItalic
		case p == 4:
			v.style.Attr |= AttrUnderline
		case p == 7:
			v.style.Attr |= AttrReverse
		case p == 22:
			v.style.Attr &^= AttrBold
		case p == 23:
			v.style.Attr &^= AttrItalic
		case p == 24:
			v.style.Attr &^= AttrUnderline
		case p == 27:
			v.style.Attr &^= AttrReverse
		case p >= 30 && p <= 37:
			v.style.FG = StandardColor(uint8(p - 30))
		case p == 38:
			if c, n, ok := extendedColor(params[i+1:]); ok {
				v.style.FG = c
				i += n
			}
		case p == 39:
			v.style.FG = Color{}
		case p >= 40 && p <= 47:
			v.style.BG = StandardColor(uint8(p - 40))
		case p == 48:
			if c, n, ok := extendedColor(params[i+1:]); ok {
				v.style.BG = c
				i += n
			}
		case p == 49:
			v.style.BG = Color{}
		}
	}
}

// extendedColor parses the tail of a 38/48 sequence: "5;index" for the
// 256-color palette or "2;r;g;b" for truecolor. It returns the resolved
// color, the number of parameters consumed, and whether the sequence was
// complete. Incomplete or unknown selectors consume nothing, so the scan
// resumes at the selector and treats the fragment as ordinary (ignored)
// codes rather than eating what follows.
func extendedColor(rest []int) (Color, int, bool) {
	if len(rest) == 0 {
		return Color{}, 0, false
	}
	switch rest[0] {
	case 5:
		if len(rest) < 2 {
			return Color{}, 0, false
		}
		return PaletteColor(uint8(rest[1])), 2, true
	case 2:
		if len(rest) < 4 {
			return Color{}, 0, false
		}
		return RGBColor(uint8(rest[1]), uint8(rest[2]), uint8(rest[3])), 4, true
	}
	return Color{}, 0, false
}
