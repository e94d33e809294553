// Copyright © 2026 Scrollterm contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: parser/vterm_test.go
// Summary: Tests for cursor movement, C0 controls and screen switching.

package parser

import "testing"

// TestPrintNoWrapAtRightEdge pins the behavior that printing never wraps to
// the next row: at the last column the cursor stays put and further
// characters overwrite the same cell.
func TestPrintNoWrapAtRightEdge(t *testing.T) {
	h := NewTestHarness(5, 3)
	h.SendSeq("abcdefg")

	if got := h.RowText(0); got != "abcdg" {
		t.Errorf("row 0 = %q, want %q", got, "abcdg")
	}
	if got := h.RowText(1); got != "" {
		t.Errorf("row 1 = %q, want empty", got)
	}
	if row, col := h.Cursor(); row != 0 || col != 4 {
		t.Errorf("cursor = (%d,%d), want (0,4)", row, col)
	}
}

func TestLineFeedAndCarriageReturn(t *testing.T) {
	h := NewTestHarness(10, 3)
	h.SendSeq("ab\ncd\rC")

	if got := h.RowText(0); got != "ab" {
		t.Errorf("row 0 = %q, want %q", got, "ab")
	}
	if got := h.RowText(1); got != "Cd" {
		t.Errorf("row 1 = %q, want %q", got, "Cd")
	}
}

// TestLineFeedScrollsAtBottom verifies that a newline on the last row
// scrolls the screen up by one, blanking the vacated bottom row.
func TestLineFeedScrollsAtBottom(t *testing.T) {
	h := NewTestHarness(10, 3)
	h.SendSeq("one\ntwo\nthree\nfour")

	want := []string{"two", "three", "four"}
	for i, w := range want {
		if got := h.RowText(i); got != w {
			t.Errorf("row %d = %q, want %q", i, got, w)
		}
	}
}

func TestBackspace(t *testing.T) {
	h := NewTestHarness(10, 2)
	h.SendSeq("ab\b\b\bX")

	if got := h.RowText(0); got != "Xb" {
		t.Errorf("row 0 = %q, want %q", got, "Xb")
	}
}

// TestTabMaterializesStyledSpaces verifies that tabs fill every intervening
// cell with a space carrying the current style rather than staying literal.
func TestTabMaterializesStyledSpaces(t *testing.T) {
	h := NewTestHarness(20, 2)
	h.SendSeq("\x1b[41m\tX")

	if row, col := h.Cursor(); row != 0 || col != 9 {
		t.Errorf("cursor = (%d,%d), want (0,9)", row, col)
	}
	if got := h.Cell(0, 8).Rune; got != 'X' {
		t.Errorf("cell (0,8) = %q, want 'X'", got)
	}
	for c := 0; c < 8; c++ {
		cell := h.Cell(0, c)
		if cell.Rune != ' ' {
			t.Errorf("cell (0,%d) = %q, want space", c, cell.Rune)
		}
		if cell.Style.BG != StandardColor(1) {
			t.Errorf("cell (0,%d) background = %v, want red", c, cell.Style.BG)
		}
	}
}

// TestTabStopsEveryEightColumns checks successive tabs land on multiples of 8
// and clamp at the last column.
func TestTabStopsEveryEightColumns(t *testing.T) {
	h := NewTestHarness(20, 2)
	h.SendSeq("\t")
	if _, col := h.Cursor(); col != 8 {
		t.Errorf("after one tab col = %d, want 8", col)
	}
	h.SendSeq("\t")
	if _, col := h.Cursor(); col != 16 {
		t.Errorf("after two tabs col = %d, want 16", col)
	}
	h.SendSeq("\t")
	if _, col := h.Cursor(); col != 19 {
		t.Errorf("after three tabs col = %d, want 19 (clamped)", col)
	}
}

func TestFormFeedClearsScreen(t *testing.T) {
	h := NewTestHarness(10, 3)
	h.SendSeq("hello\x0c")

	if got := h.RowText(0); got != "" {
		t.Errorf("row 0 = %q, want empty after form feed", got)
	}
	if row, col := h.Cursor(); row != 0 || col != 0 {
		t.Errorf("cursor = (%d,%d), want (0,0)", row, col)
	}
	if !h.VTerm().ScreenCleared() {
		t.Error("screen-cleared flag not set by form feed")
	}
}

func TestRelativeCursorMovesClamp(t *testing.T) {
	tests := []struct {
		name     string
		seq      string
		row, col int
	}{
		{"up from home stays", "\x1b[5A", 0, 0},
		{"back from home stays", "\x1b[9D", 0, 0},
		{"down clamps to bottom", "\x1b[99B", 4, 0},
		{"forward clamps to last column", "\x1b[99C", 0, 9},
		{"missing param moves one", "\x1b[3;3H\x1b[A", 1, 2},
		{"zero param moves one", "\x1b[3;3H\x1b[0B", 3, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewTestHarness(10, 5)
			h.SendSeq(tt.seq)
			if row, col := h.Cursor(); row != tt.row || col != tt.col {
				t.Errorf("cursor = (%d,%d), want (%d,%d)", row, col, tt.row, tt.col)
			}
		})
	}
}

func TestAbsoluteCursorMove(t *testing.T) {
	h := NewTestHarness(10, 5)

	h.SendSeq("\x1b[3;4H")
	if row, col := h.Cursor(); row != 2 || col != 3 {
		t.Errorf("cursor = (%d,%d), want (2,3)", row, col)
	}

	// Out-of-range parameters clamp to the grid.
	h.SendSeq("\x1b[99;99f")
	if row, col := h.Cursor(); row != 4 || col != 9 {
		t.Errorf("cursor = (%d,%d), want (4,9)", row, col)
	}

	// Missing parameters home the cursor.
	h.SendSeq("\x1b[H")
	if row, col := h.Cursor(); row != 0 || col != 0 {
		t.Errorf("cursor = (%d,%d), want (0,0)", row, col)
	}
}

// TestSaveRestoreCursorSingleSlot verifies the single overwritten slot and
// that restoring consumes it.
func TestSaveRestoreCursorSingleSlot(t *testing.T) {
	h := NewTestHarness(10, 5)

	h.SendSeq("\x1b[2;2H\x1b[s")
	h.SendSeq("\x1b[4;4H\x1b[s") // overwrite
	h.SendSeq("\x1b[1;1H\x1b[u")
	if row, col := h.Cursor(); row != 3 || col != 3 {
		t.Errorf("cursor = (%d,%d), want (3,3) from second save", row, col)
	}

	// Slot consumed: a second restore is a no-op.
	h.SendSeq("\x1b[1;1H\x1b[u")
	if row, col := h.Cursor(); row != 0 || col != 0 {
		t.Errorf("cursor = (%d,%d), want (0,0) after empty restore", row, col)
	}
}

func TestSaveRestoreCursorEscVariant(t *testing.T) {
	h := NewTestHarness(10, 5)
	h.SendSeq("\x1b[3;5H\x1b7\x1b[1;1H\x1b8")
	if row, col := h.Cursor(); row != 2 || col != 4 {
		t.Errorf("cursor = (%d,%d), want (2,4)", row, col)
	}
}

// TestAlternateScreen verifies buffer switching for both historical variants
// and that the newly active grid's cursor is homed on every switch.
func TestAlternateScreen(t *testing.T) {
	for _, mode := range []string{"1049", "1047"} {
		t.Run(mode, func(t *testing.T) {
			h := NewTestHarness(20, 5)
			h.SendSeq("main text")

			h.SendSeq("\x1b[?" + mode + "h")
			if !h.VTerm().AltScreen() {
				t.Fatal("alternate screen not active")
			}
			if row, col := h.Cursor(); row != 0 || col != 0 {
				t.Errorf("cursor = (%d,%d), want home on enter", row, col)
			}
			h.SendSeq("alt text")
			if got := h.RowText(0); got != "alt text" {
				t.Errorf("alt row 0 = %q, want %q", got, "alt text")
			}

			h.SendSeq("\x1b[?" + mode + "l")
			if h.VTerm().AltScreen() {
				t.Fatal("alternate screen still active after leave")
			}
			if got := h.RowText(0); got != "main text" {
				t.Errorf("main row 0 = %q, want %q", got, "main text")
			}
			if row, col := h.Cursor(); row != 0 || col != 0 {
				t.Errorf("cursor = (%d,%d), want home on leave", row, col)
			}
		})
	}
}

func TestIndexAndReverseIndex(t *testing.T) {
	h := NewTestHarness(10, 3)

	h.SendSeq("a\x1bDb")
	if got := h.RowText(1); got != " b" {
		t.Errorf("row 1 = %q, want %q", got, " b")
	}

	// Reverse index at the top scrolls down.
	h.SendSeq("\x1b[1;1H\x1bM")
	if got := h.RowText(0); got != "" {
		t.Errorf("row 0 = %q, want blank after reverse index scroll", got)
	}
	if got := h.RowText(1); got != "a" {
		t.Errorf("row 1 = %q, want %q", got, "a")
	}
}

func TestFullResetReinitializes(t *testing.T) {
	h := NewTestHarness(10, 3)
	h.SendSeq("\x1b[31mred\x1b[?1049h\x1b[2;2H")
	h.SendSeq("\x1bc")

	vt := h.VTerm()
	if vt.AltScreen() {
		t.Error("alternate screen survived full reset")
	}
	if row, col := vt.Cursor(); row != 0 || col != 0 {
		t.Errorf("cursor = (%d,%d), want (0,0)", row, col)
	}
	if got := h.RowText(0); got != "" {
		t.Errorf("row 0 = %q, want empty", got)
	}
	h.SendSeq("x")
	if style := h.Cell(0, 0).Style; style != (Style{}) {
		t.Errorf("style after reset = %+v, want default", style)
	}
	if vt.Width() != 10 || vt.Height() != 3 {
		t.Errorf("dimensions = %dx%d, want 10x3", vt.Width(), vt.Height())
	}
}

func TestModeFlagsTracked(t *testing.T) {
	h := NewTestHarness(10, 3)
	vt := h.VTerm()

	h.SendSeq("\x1b[?25l")
	if vt.CursorVisible() {
		t.Error("cursor still visible after ?25l")
	}
	h.SendSeq("\x1b[?25h")
	if !vt.CursorVisible() {
		t.Error("cursor not visible after ?25h")
	}

	h.SendSeq("\x1b[4h")
	if !vt.InsertMode() {
		t.Error("insert mode not set")
	}
	h.SendSeq("\x1b[4l")
	if vt.InsertMode() {
		t.Error("insert mode not cleared")
	}

	h.SendSeq("\x1b[?6h")
	if !vt.OriginMode() {
		t.Error("origin mode not set")
	}

	h.SendSeq("\x1b=")
	if !vt.ApplicationKeypad() {
		t.Error("application keypad not set")
	}
	h.SendSeq("\x1b>")
	if vt.ApplicationKeypad() {
		t.Error("application keypad not cleared")
	}
}

// TestUnknownSequencesIgnored feeds unhandled and malformed sequences and
// checks nothing panics and printable flow continues.
func TestUnknownSequencesIgnored(t *testing.T) {
	h := NewTestHarness(20, 3)
	h.SendSeq("a\x1b[999Z\x1b[?12;25x\x1bNb\x1b]0;title\x07c")

	if got := h.RowText(0); got != "abc" {
		t.Errorf("row 0 = %q, want %q", got, "abc")
	}
}
