// Copyright © 2026 Scrollterm contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: parser/vterm.go
// Summary: VTerm state machine core: grids, cursor, graphics state, C0 controls.
// Usage: Driven by the escape-sequence decoder; rendered by render.go.
// Notes: Dimensions are fixed at construction. All cursor and index arithmetic
// is clamped to the grid, so malformed input can never index out of bounds.

package parser

import "log"

type cursorPos struct {
	row, col int
}

// VTerm represents the state of a virtual terminal: a main and an alternate
// screen grid, a cursor with a single saved-cursor slot, the current graphics
// state and the tracked mode flags.
type VTerm struct {
	width, height int
	main, alt     [][]Cell
	altScreen     bool

	row, col int
	saved    *cursorPos

	style Style

	tabStops []int

	scrollTop, scrollBottom int
	scrollRegionSet         bool

	autoWrap      bool
	originMode    bool
	insertMode    bool
	appKeypad     bool
	cursorVisible bool

	screenCleared bool

	logger *log.Logger
}

// NewVTerm creates a virtual terminal with the given fixed dimensions.
func NewVTerm(width, height int) *VTerm {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	v := &VTerm{width: width, height: height}
	v.init()
	return v
}

// init (re)establishes the pristine state at the current dimensions. The
// logger survives so diagnostics keep flowing after a full reset.
func (v *VTerm) init() {
	v.main = newGrid(v.width, v.height)
	v.alt = newGrid(v.width, v.height)
	v.altScreen = false
	v.row, v.col = 0, 0
	v.saved = nil
	v.style = Style{}
	v.tabStops = defaultTabStops(v.width)
	v.scrollTop, v.scrollBottom = 0, 0
	v.scrollRegionSet = false
	v.autoWrap = true
	v.originMode = false
	v.insertMode = false
	v.appKeypad = false
	v.cursorVisible = true
	v.screenCleared = false
}

func newGrid(width, height int) [][]Cell {
	grid := make([][]Cell, height)
	for i := range grid {
		grid[i] = make([]Cell, width)
		for j := range grid[i] {
			grid[i][j] = blankCell()
		}
	}
	return grid
}

func defaultTabStops(width int) []int {
	var stops []int
	for i := 0; i < width; i += 8 {
		stops = append(stops, i)
	}
	return stops
}

// grid returns the currently active screen buffer.
func (v *VTerm) grid() [][]Cell {
	if v.altScreen {
		return v.alt
	}
	return v.main
}

// snapshot returns a deep copy of the active grid.
func (v *VTerm) snapshot() [][]Cell {
	src := v.grid()
	out := make([][]Cell, len(src))
	for i, row := range src {
		out[i] = make([]Cell, len(row))
		copy(out[i], row)
	}
	return out
}

// --- Read-only accessors for diagnostics and tests ---

// Width returns the grid width in columns.
func (v *VTerm) Width() int { return v.width }

// Height returns the grid height in rows.
func (v *VTerm) Height() int { return v.height }

// Cursor returns the current cursor position.
func (v *VTerm) Cursor() (row, col int) { return v.row, v.col }

// AltScreen reports whether the alternate screen buffer is active.
func (v *VTerm) AltScreen() bool { return v.altScreen }

// AutoWrap reports the tracked auto-wrap mode flag.
func (v *VTerm) AutoWrap() bool { return v.autoWrap }

// OriginMode reports the tracked origin mode flag.
func (v *VTerm) OriginMode() bool { return v.originMode }

// InsertMode reports the tracked insert mode flag.
func (v *VTerm) InsertMode() bool { return v.insertMode }

// ApplicationKeypad reports the tracked application keypad flag.
func (v *VTerm) ApplicationKeypad() bool { return v.appKeypad }

// CursorVisible reports the tracked cursor visibility flag.
func (v *VTerm) CursorVisible() bool { return v.cursorVisible }

// ScreenCleared reports whether a full-screen clear happened since the flag
// was last rearmed.
func (v *VTerm) ScreenCleared() bool { return v.screenCleared }

// ScrollRegion returns the active scroll region as inclusive 0-based rows.
// Without an explicit region it covers the whole grid.
func (v *VTerm) ScrollRegion() (top, bottom int) { return v.regionBounds() }

// Grid returns a deep copy of the active screen buffer.
func (v *VTerm) Grid() [][]Cell { return v.snapshot() }

// --- Printing and C0 controls ---

// placeChar writes a rune at the cursor with the current graphics state.
// The column advances while auto-wrap is set and the cursor is not yet at the
// last column; at the right edge it stays put and further characters
// overwrite the same cell.
func (v *VTerm) placeChar(r rune) {
	if v.row < 0 || v.row >= v.height || v.col < 0 || v.col >= v.width {
		return
	}
	v.grid()[v.row][v.col] = Cell{Rune: r, Style: v.style}
	if v.autoWrap && v.col < v.width-1 {
		v.col++
	}
}

// execute handles a C0 control byte.
func (v *VTerm) execute(b byte) {
	switch b {
	case 0x07: // BEL
	case 0x08: // BS
		v.backspace()
	case 0x09: // HT
		v.tab()
	case 0x0A: // LF
		v.lineFeed()
	case 0x0C: // FF
		v.clearScreen()
	case 0x0D: // CR
		v.carriageReturn()
	}
}

func (v *VTerm) lineFeed() {
	v.col = 0
	if v.row >= v.height-1 {
		v.scrollUp(1)
	} else {
		v.row++
	}
}

func (v *VTerm) carriageReturn() { v.col = 0 }

func (v *VTerm) backspace() {
	if v.col > 0 {
		v.col--
	}
}

// tab advances to the next tab stop, materializing the gap as spaces in the
// current style. The loop also terminates when the column stops advancing.
func (v *VTerm) tab() {
	next := v.width
	for _, stop := range v.tabStops {
		if stop > v.col {
			next = stop
			break
		}
	}
	target := next
	if target > v.width-1 {
		target = v.width - 1
	}
	for v.col < target {
		before := v.col
		v.placeChar(' ')
		if v.col == before {
			break
		}
	}
}

// clearScreen blanks the active grid, homes the cursor and raises the
// screen-cleared flag.
func (v *VTerm) clearScreen() {
	for _, row := range v.grid() {
		for i := range row {
			row[i] = blankCell()
		}
	}
	v.row, v.col = 0, 0
	v.screenCleared = true
}

// --- Cursor movement ---

// moveCursor moves to an absolute 0-based position, clamped to the grid.
func (v *VTerm) moveCursor(row, col int) {
	if row < 0 {
		row = 0
	}
	if row > v.height-1 {
		row = v.height - 1
	}
	if col < 0 {
		col = 0
	}
	if col > v.width-1 {
		col = v.width - 1
	}
	v.row, v.col = row, col
}

func (v *VTerm) moveCursorRelative(dr, dc int) {
	v.moveCursor(v.row+dr, v.col+dc)
}

// saveCursor overwrites the single saved-cursor slot.
func (v *VTerm) saveCursor() {
	v.saved = &cursorPos{row: v.row, col: v.col}
}

// restoreCursor restores and consumes the saved-cursor slot, if any.
func (v *VTerm) restoreCursor() {
	if v.saved != nil {
		v.row, v.col = v.saved.row, v.saved.col
		v.saved = nil
	}
}

// index moves the cursor down one row, scrolling when at the bottom.
func (v *VTerm) index() {
	if v.row >= v.height-1 {
		v.scrollUp(1)
	} else {
		v.row++
	}
}

// reverseIndex moves the cursor up one row, scrolling when at the top.
func (v *VTerm) reverseIndex() {
	if v.row == 0 {
		v.scrollDown(1)
	} else {
		v.row--
	}
}

// --- Screen switching ---

// enterAltScreen activates the alternate grid and homes the cursor.
func (v *VTerm) enterAltScreen() {
	v.altScreen = true
	v.row, v.col = 0, 0
}

// exitAltScreen reactivates the main grid and homes the cursor.
func (v *VTerm) exitAltScreen() {
	v.altScreen = false
	v.row, v.col = 0, 0
}

// --- Escape dispatch ---

// handleEscape handles a non-CSI escape sequence by its final byte.
// Unrecognized sequences are ignored.
func (v *VTerm) handleEscape(final, intermediate byte) {
	if intermediate != 0 {
		// Charset designations and other intermediates are accepted as no-ops.
		return
	}
	switch final {
	case '7':
		v.saveCursor()
	case '8':
		v.restoreCursor()
	case 'c':
		v.init()
	case 'D':
		v.index()
	case 'M':
		v.reverseIndex()
	case '=':
		v.appKeypad = true
	case '>':
		v.appKeypad = false
	default:
		v.debugf("ignoring ESC %q", final)
	}
}

func (v *VTerm) debugf(format string, args ...any) {
	if v.logger != nil {
		v.logger.Printf(format, args...)
	}
}
