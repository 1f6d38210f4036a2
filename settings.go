// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/editorconfig

package editorconfig

import (
	"strconv"
	"strings"
)

// Recognized property names.
const (
	PropIndentStyle   = "indent_style"
	PropIndentSize    = "indent_size"
	PropTabWidth      = "tab_width"
	PropEndOfLine     = "end_of_line"
	PropMaxLineLength = "max_line_length"
)

// IndentStyle is the indentation character preference.
type IndentStyle uint8

const (
	// IndentStyleUnset leaves the editor setting untouched.
	IndentStyleUnset IndentStyle = iota
	// IndentStyleTab indents with hard tabs.
	IndentStyleTab
	// IndentStyleSpace indents with spaces.
	IndentStyleSpace
)

func (s IndentStyle) String() string {
	switch s {
	case IndentStyleTab:
		return "tab"
	case IndentStyleSpace:
		return "space"
	default:
		return "unset"
	}
}

// EndOfLine is the line ending convention.
type EndOfLine uint8

const (
	// EndOfLineUnset leaves the editor setting untouched.
	EndOfLineUnset EndOfLine = iota
	// EndOfLineLF is "\n".
	EndOfLineLF
	// EndOfLineCRLF is "\r\n".
	EndOfLineCRLF
	// EndOfLineCR is "\r".
	EndOfLineCR
)

func (e EndOfLine) String() string {
	switch e {
	case EndOfLineLF:
		return "lf"
	case EndOfLineCRLF:
		return "crlf"
	case EndOfLineCR:
		return "cr"
	default:
		return "unset"
	}
}

// IndentSize is an explicit indent width or a reference to the effective tab width.
// The zero value is unset.
type IndentSize struct {
	// Width is explicit indent width, zero when not explicit.
	Width uint32
	// FromTabWidth means indent_size = tab.
	FromTabWidth bool
}

// IsSet reports whether indent size carries any value.
func (s IndentSize) IsSet() bool {
	return s.FromTabWidth || s.Width > 0
}

func (s IndentSize) String() string {
	switch {
	case s.FromTabWidth:
		return "tab"
	case s.Width > 0:
		return strconv.FormatUint(uint64(s.Width), 10)
	default:
		return "unset"
	}
}

// Settings is the typed subset of properties an editor buffer understands.
type Settings struct {
	IndentSize  IndentSize
	IndentStyle IndentStyle
	EndOfLine   EndOfLine
	// TabWidth is zero when absent.
	TabWidth uint32
	// MaxLineLength is zero when absent.
	MaxLineLength uint32
}

// DecodeSettings maps resolved properties onto Settings.
//
// Unknown or malformed values leave the corresponding field unset; decoding never fails.
func DecodeSettings(p Properties) Settings {
	var s Settings

	if v, ok := p.Get(PropIndentStyle); ok {
		switch {
		case strings.EqualFold(v, "tab"):
			s.IndentStyle = IndentStyleTab
		case strings.EqualFold(v, "space"):
			s.IndentStyle = IndentStyleSpace
		}
	}

	if v, ok := p.Get(PropIndentSize); ok {
		if strings.EqualFold(v, "tab") {
			s.IndentSize.FromTabWidth = true
		} else {
			s.IndentSize.Width = parsePositive(v)
		}
	}

	if v, ok := p.Get(PropTabWidth); ok {
		s.TabWidth = parsePositive(v)
	}

	if v, ok := p.Get(PropEndOfLine); ok {
		switch {
		case strings.EqualFold(v, "lf"):
			s.EndOfLine = EndOfLineLF
		case strings.EqualFold(v, "crlf"):
			s.EndOfLine = EndOfLineCRLF
		case strings.EqualFold(v, "cr"):
			s.EndOfLine = EndOfLineCR
		}
	}

	if v, ok := p.Get(PropMaxLineLength); ok {
		s.MaxLineLength = parsePositive(v)
	}

	return s
}

// parsePositive parses a positive base-10 uint32, returning zero for anything else.
func parsePositive(v string) uint32 {
	n, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		return 0
	}

	return uint32(n)
}
