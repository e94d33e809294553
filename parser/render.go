// Copyright © 2026 Scrollterm contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: parser/render.go
// Summary: Converts grid rows into trimmed, style-coalesced styled lines.

package parser

import "strings"

// Span is a run of text sharing one style.
type Span struct {
	Text  string
	Style Style
}

// Line is an ordered sequence of styled spans. The zero value is an empty
// line.
type Line struct {
	Spans []Span
}

// PlainLine returns an unstyled line. Empty text yields the empty line.
func PlainLine(text string) Line {
	if text == "" {
		return Line{}
	}
	return Line{Spans: []Span{{Text: text}}}
}

// Text returns the line's text with styling discarded.
func (l Line) Text() string {
	if len(l.Spans) == 1 {
		return l.Spans[0].Text
	}
	var b strings.Builder
	for _, s := range l.Spans {
		b.WriteString(s.Text)
	}
	return b.String()
}

// IsEmpty reports whether the line has no content.
func (l Line) IsEmpty() bool { return len(l.Spans) == 0 }

// renderRow converts one grid row into a line: everything after the last
// non-blank cell is dropped, and adjacent cells with an identical style are
// coalesced into a single span. An all-blank row renders as the empty line.
func renderRow(row []Cell) Line {
	last := -1
	for i, c := range row {
		if c.Rune != ' ' {
			last = i
		}
	}
	if last < 0 {
		return Line{}
	}

	var spans []Span
	var text strings.Builder
	cur := row[0].Style
	for _, c := range row[:last+1] {
		if c.Style != cur {
			spans = append(spans, Span{Text: text.String(), Style: cur})
			text.Reset()
			cur = c.Style
		}
		text.WriteRune(c.Rune)
	}
	spans = append(spans, Span{Text: text.String(), Style: cur})
	return Line{Spans: spans}
}

// renderGrid renders every row of a grid: leading all-blank rows are dropped,
// interior blank rows are preserved to keep spacing, and a final pass strips
// trailing wholly-empty lines.
func renderGrid(grid [][]Cell) []Line {
	var lines []Line
	for _, row := range grid {
		line := renderRow(row)
		if line.IsEmpty() && len(lines) == 0 {
			continue
		}
		lines = append(lines, line)
	}
	for len(lines) > 0 && lines[len(lines)-1].IsEmpty() {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// finalFrame renders a grid as plain unstyled text, used when collapsing
// animated or screen-clearing output to its last stable frame.
func finalFrame(grid [][]Cell) []Line {
	var lines []Line
	for _, row := range grid {
		text := rowText(row)
		if text == "" && len(lines) == 0 {
			continue
		}
		lines = append(lines, PlainLine(text))
	}
	for len(lines) > 0 && lines[len(lines)-1].IsEmpty() {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// rowText returns a row's characters with trailing spaces trimmed.
func rowText(row []Cell) string {
	var b strings.Builder
	for _, c := range row {
		b.WriteRune(c.Rune)
	}
	return strings.TrimRight(b.String(), " ")
}

func countNonBlankRows(grid [][]Cell) int {
	n := 0
	for _, row := range grid {
		if rowText(row) != "" {
			n++
		}
	}
	return n
}
