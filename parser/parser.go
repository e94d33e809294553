// Copyright © 2026 Scrollterm contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: parser/parser.go
// Summary: Parse entry point: emulation-depth selection, animation collapsing.
// Usage: One Parser per output stream; callers serialize Parse calls and
// Reset between unrelated command executions.
// Notes: Most command output takes the cheap line-oriented path; full
// emulation only engages for screen-clearing or alternate-screen programs.

package parser

import (
	"log"
	"os"
	"strings"

	"github.com/charmbracelet/x/ansi"
	ansiparser "github.com/charmbracelet/x/ansi/parser"
	"golang.org/x/term"
)

// animationThreshold is the number of observed full-frame changes after
// which output collapses to the final frame.
const animationThreshold = 5

// fullEmulationTriggers are the sequences that force a chunk through full
// terminal emulation: full-screen clear, cursor home, and the two historical
// alternate-screen variants.
var fullEmulationTriggers = []string{
	"\x1b[2J",
	"\x1b[H",
	"\x1b[?1049h",
	"\x1b[?1047h",
	"\x1b[?1049l",
	"\x1b[?1047l",
}

// Parser renders raw command output, including ANSI/VT100 escape sequences,
// into styled lines for a scrollback view. It owns a persistent terminal
// state machine plus the frame history used for animation detection; it is
// not safe for concurrent use.
type Parser struct {
	width, height int
	vt            *VTerm
	dec           *ansi.Parser
	logger        *log.Logger

	lastFrame         [][]Cell
	screenChanges     int
	animationDetected bool
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger routes diagnostics about ignored sequences to l.
func WithLogger(l *log.Logger) Option {
	return func(p *Parser) { p.logger = l }
}

// New creates a parser with a terminal of the given dimensions.
// Non-positive dimensions fall back to 80x24.
func New(width, height int, opts ...Option) *Parser {
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}
	p := &Parser{width: width, height: height}
	for _, opt := range opts {
		opt(p)
	}
	p.vt = NewVTerm(width, height)
	p.vt.logger = p.logger
	p.dec = newDecoder(p.vt)
	p.lastFrame = p.vt.snapshot()
	return p
}

// NewWithTerminalSize creates a parser sized to the host terminal,
// defaulting to 80x24 when the size cannot be determined.
func NewWithTerminalSize(opts ...Option) *Parser {
	w, h := terminalSize()
	return New(w, h, opts...)
}

func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 && h > 0 {
		return w, h
	}
	return 80, 24
}

// newDecoder wires a VTerm into an ANSI escape-sequence decoder. OSC, DCS,
// APC, SOS and PM sequences are accepted and dropped.
func newDecoder(vt *VTerm) *ansi.Parser {
	d := ansi.NewParser()
	d.SetParamsSize(ansiparser.MaxParamsSize)
	d.SetDataSize(1024)
	d.SetHandler(ansi.Handler{
		Print:   vt.placeChar,
		Execute: vt.execute,
		HandleCsi: func(cmd ansi.Cmd, params ansi.Params) {
			vt.handleCSI(cmd.Final(), cmd.Prefix(), materializeParams(params))
		},
		HandleEsc: func(cmd ansi.Cmd) {
			vt.handleEscape(cmd.Final(), cmd.Intermediate())
		},
		HandleOsc: func(int, []byte) {},
		HandleDcs: func(ansi.Cmd, ansi.Params, []byte) {},
		HandleApc: func([]byte) {},
		HandleSos: func([]byte) {},
		HandlePm:  func([]byte) {},
	})
	return d
}

// materializeParams flattens decoder parameters into plain integers so SGR
// parsing can walk them with an explicit cursor. Missing parameters read as
// zero.
func materializeParams(params ansi.Params) []int {
	out := make([]int, len(params))
	for i, p := range params {
		out[i] = p.Param(0)
	}
	return out
}

// Parse renders one chunk of command output into styled lines.
func (p *Parser) Parse(input string) []Line {
	if p.useSimplePath(input) {
		return p.parseSimple(input)
	}
	return p.parseFull(input)
}

// Reset reinitializes the terminal state at the existing dimensions and
// clears the animation history. Callers invoke it between logically
// unrelated command executions so style and cursor state cannot leak across.
func (p *Parser) Reset() {
	p.vt.init()
	p.dec = newDecoder(p.vt)
	p.lastFrame = p.vt.snapshot()
	p.screenChanges = 0
	p.animationDetected = false
}

// State exposes the persistent terminal state machine for diagnostics.
func (p *Parser) State() *VTerm { return p.vt }

// AnimationDetected reports whether the last full-emulation parse was
// collapsed as animated output.
func (p *Parser) AnimationDetected() bool { return p.animationDetected }

// useSimplePath decides the emulation depth for a chunk: full emulation is
// reserved for chunks carrying an escape plus a screen-clearing, cursor-home
// or alternate-screen sequence.
func (p *Parser) useSimplePath(input string) bool {
	if !strings.Contains(input, "\x1b") {
		return true
	}
	for _, trigger := range fullEmulationTriggers {
		if strings.Contains(input, trigger) {
			return false
		}
	}
	return true
}

// parseSimple renders line by line. Lines with escapes, tabs or carriage
// returns replay through a throwaway single-row state machine; plain lines
// pass through verbatim.
func (p *Parser) parseSimple(input string) []Line {
	raw := splitLines(input)
	out := make([]Line, 0, len(raw))
	for _, line := range raw {
		if strings.ContainsAny(line, "\x1b\t\r") {
			out = append(out, p.renderSimpleLine(line))
		} else {
			out = append(out, PlainLine(line))
		}
	}
	return out
}

// renderSimpleLine runs one line through an ephemeral width x 1 state
// machine. Tabs are expanded to 8-column stops beforehand so they always
// materialize as spaces.
func (p *Parser) renderSimpleLine(line string) Line {
	expanded := expandTabs(line)
	vt := NewVTerm(p.width, 1)
	vt.logger = p.logger
	dec := newDecoder(vt)
	for i := 0; i < len(expanded); i++ {
		dec.Advance(expanded[i])
	}
	return renderRow(vt.grid()[0])
}

// parseFull feeds the whole chunk through the persistent state machine, then
// collapses the result.
func (p *Parser) parseFull(input string) []Line {
	p.vt.screenCleared = false
	p.animationDetected = false
	for i := 0; i < len(input); i++ {
		p.dec.Advance(input[i])
	}
	p.detectAnimation()
	return p.collapse()
}

// detectAnimation compares the active grid against the frame retained from
// the previous full-emulation parse. The change counter persists across
// parses until Reset.
func (p *Parser) detectAnimation() {
	frame := p.vt.snapshot()
	if !framesEqual(frame, p.lastFrame) {
		p.screenChanges++
	}
	if p.screenChanges > animationThreshold {
		p.animationDetected = true
	}
	p.lastFrame = frame
}

// collapse reduces the parsed screen state to output lines. Animated or
// screen-clearing output yields only the final stable frame; a full-screen
// program that exited back to an (almost) empty main screen yields a single
// empty line.
func (p *Parser) collapse() []Line {
	if p.animationDetected || p.vt.screenCleared {
		return finalFrame(p.vt.grid())
	}
	if !p.vt.altScreen && countNonBlankRows(p.vt.main) <= 1 {
		return []Line{{}}
	}
	return renderGrid(p.vt.grid())
}

// splitLines splits a chunk the way the scrollback view counts lines: a
// trailing newline does not open a final empty line, and a carriage return
// that was part of a CRLF pair is dropped. A bare trailing carriage return
// is kept so the line replays through the state machine.
func splitLines(input string) []string {
	if input == "" {
		return nil
	}
	endsNL := strings.HasSuffix(input, "\n")
	lines := strings.Split(strings.TrimSuffix(input, "\n"), "\n")
	for i := range lines {
		if i < len(lines)-1 || endsNL {
			lines[i] = strings.TrimSuffix(lines[i], "\r")
		}
	}
	return lines
}

// expandTabs rewrites tabs as spaces at 8-column stops.
func expandTabs(line string) string {
	if !strings.Contains(line, "\t") {
		return line
	}
	var b strings.Builder
	col := 0
	for _, r := range line {
		if r == '\t' {
			n := 8 - col%8
			b.WriteString(strings.Repeat(" ", n))
			col += n
		} else {
			b.WriteRune(r)
			col++
		}
	}
	return b.String()
}

func framesEqual(a, b [][]Cell) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				return false
			}
		}
	}
	return true
}
