// Copyright © 2026 Scrollterm contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/scrollterm/main.go
// Summary: Command-line front end: runs a command under a pty (or reads
// stdin) and reprints its output through the scrollback renderer.
// Usage:
//
//	scrollterm [flags] [command [args...]]
//	some-command | scrollterm [flags]
//	scrollterm -f main.go < main.go

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"

	"github.com/creack/pty"

	"github.com/framegrace/scrollterm/display"
	"github.com/framegrace/scrollterm/highlight"
	"github.com/framegrace/scrollterm/parser"
)

func main() {
	cols := flag.Int("cols", 0, "terminal width (0 = autodetect)")
	rows := flag.Int("rows", 0, "terminal height (0 = autodetect)")
	lang := flag.String("lang", "", "syntax-highlight stdin as this language")
	file := flag.String("f", "", "filename hint for language detection")
	styleName := flag.String("style", "", "chroma style for highlighting")
	logPath := flag.String("log", "", "append diagnostics to this file")
	flag.Parse()

	var popts []parser.Option
	if *logPath != "" {
		logFile, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			log.Fatalf("scrollterm: open log: %v", err)
		}
		defer logFile.Close()
		log.SetOutput(logFile)
		popts = append(popts, parser.WithLogger(log.Default()))
	}

	if err := run(*cols, *rows, *lang, *file, *styleName, flag.Args(), popts); err != nil {
		log.Fatalf("scrollterm: %v", err)
	}
}

func run(cols, rows int, lang, file, styleName string, args []string, popts []parser.Option) error {
	if len(args) > 0 {
		return runCommand(newParser(cols, rows, popts), args)
	}

	input, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}

	if lang != "" || file != "" {
		lines := highlight.Colorize(string(input), highlight.Options{
			Language: lang,
			Filename: file,
			Style:    styleName,
		})
		printLines(lines)
		return nil
	}

	printLines(newParser(cols, rows, popts).Parse(string(input)))
	return nil
}

func newParser(cols, rows int, opts []parser.Option) *parser.Parser {
	if cols > 0 || rows > 0 {
		return parser.New(cols, rows, opts...)
	}
	return parser.NewWithTerminalSize(opts...)
}

// runCommand executes args under a pty sized to the parser and streams its
// output through the renderer, a chunk's worth of lines at a time.
func runCommand(p *parser.Parser, args []string) error {
	cmd := exec.Command(args[0], args[1:]...)
	cmd.Env = append(os.Environ(), "TERM=xterm-256color")

	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{
		Rows: uint16(p.State().Height()),
		Cols: uint16(p.State().Width()),
	})
	if err != nil {
		return fmt.Errorf("start pty: %w", err)
	}
	defer ptmx.Close()

	buf := make([]byte, 4096)
	for {
		n, err := ptmx.Read(buf)
		if n > 0 {
			printLines(p.Parse(string(buf[:n])))
		}
		if err != nil {
			// A pty read returns EIO when the child exits.
			break
		}
	}
	return cmd.Wait()
}

func printLines(lines []parser.Line) {
	for _, l := range lines {
		fmt.Println(display.EncodeLine(l))
	}
}
