// Copyright © 2026 Scrollterm contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: display/ansi.go
// Summary: Re-encodes parsed lines back into ANSI escape sequences.
// Usage: The CLI uses EncodeLine to emit cleaned-up, restyled output to a
// plain terminal without a tcell screen.

package display

import (
	"strconv"
	"strings"

	"github.com/framegrace/scrollterm/parser"
)

// EncodeLine renders a parsed line back to a string with ANSI styling. An
// unstyled line comes back as its plain text; styled spans are wrapped in the
// minimal SGR sequences that reproduce them, with a reset after the last
// styled span.
func EncodeLine(line parser.Line) string {
	var b strings.Builder
	styled := false
	for _, span := range line.Spans {
		if span.Style == (parser.Style{}) {
			if styled {
				b.WriteString("\x1b[0m")
				styled = false
			}
			b.WriteString(span.Text)
			continue
		}
		b.WriteString("\x1b[")
		b.WriteString(strings.Join(sgrParams(span.Style), ";"))
		b.WriteByte('m')
		b.WriteString(span.Text)
		styled = true
	}
	if styled {
		b.WriteString("\x1b[0m")
	}
	return b.String()
}

// sgrParams returns the SGR parameter list for a style. Each span is encoded
// from a reset baseline, so the list always starts with 0.
func sgrParams(s parser.Style) []string {
	params := []string{"0"}
	if s.Attr&parser.AttrBold != 0 {
		params = append(params, "1")
	}
	if s.Attr&parser.AttrItalic != 0 {
		params = append(params, "3")
	}
	if s.Attr&parser.AttrUnderline != 0 {
		params = append(params, "4")
	}
	if s.Attr&parser.AttrReverse != 0 {
		params = append(params, "7")
	}
	params = append(params, colorParams(s.FG, false)...)
	params = append(params, colorParams(s.BG, true)...)
	return params
}

// colorParams encodes one color. Standard colors 0-7 use the classic 30-37 /
// 40-47 range, 8-15 the bright 90-97 / 100-107 range, and RGB colors the
// 38;2 / 48;2 truecolor form.
func colorParams(c parser.Color, background bool) []string {
	switch c.Mode {
	case parser.ColorModeStandard:
		base := 30
		if c.Value >= 8 {
			base = 90 - 8
		}
		if background {
			base += 10
		}
		return []string{strconv.Itoa(base + int(c.Value))}
	case parser.ColorModeRGB:
		lead := "38"
		if background {
			lead = "48"
		}
		return []string{lead, "2",
			strconv.Itoa(int(c.R)), strconv.Itoa(int(c.G)), strconv.Itoa(int(c.B))}
	default:
		return nil
	}
}
