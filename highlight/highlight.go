// Copyright © 2026 Scrollterm contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// Package highlight colorizes plain command output as source code before it
// enters scrollback. Tokenization runs over the whole text at once so the
// lexer sees full context (package/import/func structure, heading context in
// markdown). Tokens whose color matches the style's base text color keep the
// default foreground.
package highlight

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/go-enry/go-enry/v2"

	"github.com/framegrace/scrollterm/parser"
)

const defaultStyleName = "catppuccin-mocha"

// Options selects the lexer and color style. All fields are optional:
// Language wins over Filename, and with neither set the lexer is detected
// from content.
type Options struct {
	Language string // explicit lexer name, e.g. "go"
	Filename string // used for language detection when Language is empty
	Style    string // chroma style name
}

// Colorize tokenizes text and returns one styled line per input line. Text
// that cannot be tokenized comes back as plain lines.
func Colorize(text string, opts Options) []parser.Line {
	if text == "" {
		return nil
	}
	style := styleByName(opts.Style)
	lexer := chroma.Coalesce(lexerFor(opts, text))

	tokens, err := chroma.Tokenise(lexer, nil, text)
	if err != nil {
		return plainLines(text)
	}

	baseColour := style.Get(chroma.Text).Colour

	var lines []parser.Line
	var cur parser.Line
	for _, tok := range tokens {
		if tok.Type == chroma.EOFType {
			break
		}
		st := tokenStyle(style.Get(tok.Type), baseColour)
		parts := strings.Split(tok.Value, "\n")
		for i, part := range parts {
			if i > 0 {
				lines = append(lines, cur)
				cur = parser.Line{}
			}
			if part != "" {
				cur.Spans = append(cur.Spans, parser.Span{Text: part, Style: st})
			}
		}
	}
	if len(cur.Spans) > 0 {
		lines = append(lines, cur)
	}
	return lines
}

// styleByName resolves a chroma style, falling back to the default.
func styleByName(name string) *chroma.Style {
	if name == "" {
		name = defaultStyleName
	}
	return styles.Get(name)
}

// lexerFor picks a lexer: explicit language first, then filename-based
// detection, then content analysis.
func lexerFor(opts Options, text string) chroma.Lexer {
	if opts.Language != "" {
		if l := lexers.Get(opts.Language); l != nil {
			return l
		}
	}
	if opts.Filename != "" {
		if lang := enry.GetLanguage(opts.Filename, []byte(text)); lang != "" {
			if l := lexers.Get(lang); l != nil {
				return l
			}
		}
		if l := lexers.Match(opts.Filename); l != nil {
			return l
		}
	}
	if l := lexers.Analyse(text); l != nil {
		return l
	}
	return lexers.Fallback
}

// tokenStyle maps a chroma style entry to a span style. A color equal to the
// base text color is treated as unset so the terminal default shows through.
func tokenStyle(entry chroma.StyleEntry, baseColour chroma.Colour) parser.Style {
	var s parser.Style
	if entry.Bold == chroma.Yes {
		s.Attr |= parser.AttrBold
	}
	if entry.Italic == chroma.Yes {
		s.Attr |= parser.AttrItalic
	}
	if entry.Underline == chroma.Yes {
		s.Attr |= parser.AttrUnderline
	}
	if entry.Colour.IsSet() && entry.Colour != baseColour {
		s.FG = parser.RGBColor(entry.Colour.Red(), entry.Colour.Green(), entry.Colour.Blue())
	}
	return s
}

func plainLines(text string) []parser.Line {
	raw := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	lines := make([]parser.Line, len(raw))
	for i, l := range raw {
		lines[i] = parser.PlainLine(l)
	}
	return lines
}
