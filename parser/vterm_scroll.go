// Copyright © 2026 Scrollterm contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: parser/vterm_scroll.go
// Summary: Scroll region handling and region-relative scrolling.

package parser

// regionBounds returns the rows affected by scrolling as an inclusive
// 0-based range. Without an explicit region the whole grid scrolls.
func (v *VTerm) regionBounds() (top, bottom int) {
	if v.scrollRegionSet {
		return v.scrollTop, v.scrollBottom
	}
	return 0, v.height - 1
}

// setScrollRegion handles CSI r with 1-based top/bottom parameters.
// A missing or zero bottom means the last row. Degenerate regions are
// ignored.
func (v *VTerm) setScrollRegion(top, bottom int) {
	if top < 1 {
		top = 1
	}
	if bottom < 1 || bottom > v.height {
		bottom = v.height
	}
	t, b := top-1, bottom-1
	if t >= b || t >= v.height {
		return
	}
	v.scrollTop, v.scrollBottom = t, b
	v.scrollRegionSet = true
}

// scrollUp shifts the scroll region up by n lines, blanking the vacated
// bottom line(s). Rows outside the region are untouched.
func (v *VTerm) scrollUp(n int) {
	top, bottom := v.regionBounds()
	// Beyond the region height every further shift is a no-op on blank rows.
	if limit := bottom - top + 1; n > limit {
		n = limit
	}
	g := v.grid()
	for ; n > 0; n-- {
		for r := top; r < bottom; r++ {
			copy(g[r], g[r+1])
		}
		blankRow(g[bottom])
	}
}

// scrollDown shifts the scroll region down by n lines, blanking the vacated
// top line(s).
func (v *VTerm) scrollDown(n int) {
	top, bottom := v.regionBounds()
	if limit := bottom - top + 1; n > limit {
		n = limit
	}
	g := v.grid()
	for ; n > 0; n-- {
		for r := bottom; r > top; r-- {
			copy(g[r], g[r-1])
		}
		blankRow(g[top])
	}
}
