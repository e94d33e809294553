// Copyright © 2026 Scrollterm contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: parser/vterm_csi.go
// Summary: CSI dispatch: cursor movement, erase, scrolling and mode changes.

package parser

// handleCSI applies a CSI sequence by its final byte. Parameters arrive as a
// materialized numeric list; missing entries read as zero. Unrecognized final
// bytes are ignored.
func (v *VTerm) handleCSI(final, prefix byte, params []int) {
	get := func(i int) int {
		if i < len(params) {
			return params[i]
		}
		return 0
	}
	count := func(i int) int {
		if n := get(i); n > 1 {
			return n
		}
		return 1
	}

	switch final {
	case 'A': // cursor up
		v.moveCursorRelative(-count(0), 0)
	case 'B': // cursor down
		v.moveCursorRelative(count(0), 0)
	case 'C': // cursor forward
		v.moveCursorRelative(0, count(0))
	case 'D': // cursor back
		v.moveCursorRelative(0, -count(0))
	case 'H', 'f': // cursor position, 1-based
		v.moveCursor(count(0)-1, count(1)-1)
	case 'J':
		v.eraseInDisplay(get(0))
	case 'K':
		v.eraseInLine(get(0))
	case 'S':
		v.scrollUp(count(0))
	case 'T':
		v.scrollDown(count(0))
	case 'm':
		v.handleSGR(params)
	case 's':
		v.saveCursor()
	case 'u':
		v.restoreCursor()
	case 'r':
		v.setScrollRegion(get(0), get(1))
	case 'h':
		v.setModes(params, true)
	case 'l':
		v.setModes(params, false)
	default:
		v.debugf("ignoring CSI %q prefix=%q params=%v", final, prefix, params)
	}
}

// setModes tracks the mode flags the renderer cares about. Only the alternate
// screen materially affects output; the rest are recorded for diagnostics.
func (v *VTerm) setModes(params []int, set bool) {
	for _, p := range params {
		switch p {
		case 4:
			v.insertMode = set
		case 6:
			v.originMode = set
		case 7:
			v.autoWrap = set
		case 25:
			v.cursorVisible = set
		case 1047, 1049:
			if set {
				v.enterAltScreen()
			} else {
				v.exitAltScreen()
			}
		}
	}
}
