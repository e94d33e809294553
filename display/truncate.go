// Copyright © 2026 Scrollterm contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: display/truncate.go
// Summary: Width-aware line measurement and truncation for narrow views.

package display

import (
	"github.com/mattn/go-runewidth"

	"github.com/framegrace/scrollterm/parser"
)

func runeWidth(r rune) int {
	w := runewidth.RuneWidth(r)
	if w < 1 {
		return 1
	}
	return w
}

// LineWidth returns the display width of a line in terminal columns. Wide
// East Asian runes count as two.
func LineWidth(line parser.Line) int {
	w := 0
	for _, span := range line.Spans {
		w += runewidth.StringWidth(span.Text)
	}
	return w
}

// Truncate cuts a line to at most width display columns, preserving span
// styling. A wide rune that would straddle the boundary is dropped.
func Truncate(line parser.Line, width int) parser.Line {
	if width <= 0 {
		return parser.Line{}
	}
	if LineWidth(line) <= width {
		return line
	}
	var out parser.Line
	remaining := width
	for _, span := range line.Spans {
		sw := runewidth.StringWidth(span.Text)
		if sw <= remaining {
			out.Spans = append(out.Spans, span)
			remaining -= sw
			continue
		}
		text := runewidth.Truncate(span.Text, remaining, "")
		if text != "" {
			out.Spans = append(out.Spans, parser.Span{Text: text, Style: span.Style})
		}
		break
	}
	return out
}
