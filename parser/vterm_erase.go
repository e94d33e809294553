// Copyright © 2026 Scrollterm contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: parser/vterm_erase.go
// Summary: Erase-in-display and erase-in-line operations.

package parser

// eraseInDisplay handles CSI J. Mode 0 erases from the cursor to the end of
// the screen, 1 from the start of the screen to the cursor, 2 the whole
// screen (which also homes the cursor and raises the cleared flag).
// Erased cells are default-style blanks.
func (v *VTerm) eraseInDisplay(mode int) {
	g := v.grid()
	switch mode {
	case 0:
		v.eraseInLine(0)
		for r := v.row + 1; r < v.height; r++ {
			blankRow(g[r])
		}
	case 1:
		v.eraseInLine(1)
		for r := 0; r < v.row; r++ {
			blankRow(g[r])
		}
	case 2:
		v.clearScreen()
	}
}

// eraseInLine handles CSI K with the same mode semantics restricted to the
// cursor's row.
func (v *VTerm) eraseInLine(mode int) {
	if v.row < 0 || v.row >= v.height {
		return
	}
	row := v.grid()[v.row]
	switch mode {
	case 0:
		for i := v.col; i < v.width; i++ {
			row[i] = blankCell()
		}
	case 1:
		end := v.col
		if end > v.width-1 {
			end = v.width - 1
		}
		for i := 0; i <= end; i++ {
			row[i] = blankCell()
		}
	case 2:
		blankRow(row)
	}
}

func blankRow(row []Cell) {
	for i := range row {
		row[i] = blankCell()
	}
}
