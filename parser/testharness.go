// Copyright © 2026 Scrollterm contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: parser/testharness.go
// Summary: Test harness for driving the state machine with raw sequences.
// Usage: Used by test files to send sequences and inspect grid state.

package parser

import "github.com/charmbracelet/x/ansi"

// TestHarness feeds raw byte sequences into a VTerm through the real
// decoder and exposes the resulting grid for assertions.
type TestHarness struct {
	vt  *VTerm
	dec *ansi.Parser
}

// NewTestHarness creates a harness with the specified terminal size.
func NewTestHarness(width, height int) *TestHarness {
	vt := NewVTerm(width, height)
	return &TestHarness{vt: vt, dec: newDecoder(vt)}
}

// SendSeq sends a string, escape sequences included, to the state machine.
func (h *TestHarness) SendSeq(seq string) {
	for i := 0; i < len(seq); i++ {
		h.dec.Advance(seq[i])
	}
}

// VTerm returns the underlying state machine.
func (h *TestHarness) VTerm() *VTerm { return h.vt }

// Cell returns the cell at the given 0-based position on the active grid.
func (h *TestHarness) Cell(row, col int) Cell {
	if row < 0 || row >= h.vt.height || col < 0 || col >= h.vt.width {
		return Cell{}
	}
	return h.vt.grid()[row][col]
}

// RowText returns the active grid row's text with trailing blanks trimmed.
func (h *TestHarness) RowText(row int) string {
	if row < 0 || row >= h.vt.height {
		return ""
	}
	return rowText(h.vt.grid()[row])
}

// Cursor returns the cursor position.
func (h *TestHarness) Cursor() (row, col int) { return h.vt.Cursor() }
