// Copyright © 2026 Scrollterm contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: parser/colors.go
// Summary: 256-color palette index resolution.

package parser

// PaletteColor resolves an 8-bit palette index to a concrete color.
// Indices 0-15 are the standard/bright set, 16-231 form the 6x6x6 color cube
// and 232-255 are the grayscale ramp.
func PaletteColor(index uint8) Color {
	switch {
	case index < 16:
		return StandardColor(index)
	case index < 232:
		n := index - 16
		r := (n / 36) % 6 * 51
		g := (n / 6) % 6 * 51
		b := n % 6 * 51
		return RGBColor(r, g, b)
	default:
		gray := (index-232)*10 + 8
		return RGBColor(gray, gray, gray)
	}
}
