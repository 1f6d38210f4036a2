// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/editorconfig

package editorconfig

import (
	"errors"
	"testing"
)

func TestParseString(t *testing.T) {
	t.Parallel()

	f, err := ParseString(`
root = TRUE
; comment
# comment

[*]
Indent_Style = space
indent_size: 4

  [*.md]
trim_trailing_whitespace =   false  
`, "mem")
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}

	if !f.Root {
		t.Fatalf("Root=false, want true")
	}

	if len(f.Preamble) != 1 || f.Preamble[0].Name != "root" {
		t.Fatalf("preamble=%+v", f.Preamble)
	}

	if len(f.Sections) != 2 {
		t.Fatalf("len(sections)=%d, want 2", len(f.Sections))
	}

	s0 := f.Sections[0]
	if s0.Pattern != "*" || s0.Line != 6 || len(s0.Properties) != 2 {
		t.Fatalf("section[0]=%+v", s0)
	}

	if s0.Properties[0] != (Property{Name: "indent_style", Value: "space"}) {
		t.Fatalf("section[0].prop[0]=%+v", s0.Properties[0])
	}

	if s0.Properties[1] != (Property{Name: "indent_size", Value: "4"}) {
		t.Fatalf("section[0].prop[1]=%+v", s0.Properties[1])
	}

	s1 := f.Sections[1]
	if s1.Pattern != "*.md" || s1.Properties[0].Value != "false" {
		t.Fatalf("section[1]=%+v", s1)
	}
}

func TestParseRootOnlyInPreamble(t *testing.T) {
	t.Parallel()

	f, err := ParseString("[*]\nroot = true\n", "mem")
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}

	if f.Root {
		t.Fatalf("root inside a section must not mark the file as root")
	}
}

func TestParseSkipsBOMAndCRLF(t *testing.T) {
	t.Parallel()

	f, err := ParseString("\ufeffroot = true\r\n[*.go]\r\nindent_style = tab\r\n", "mem")
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}

	if !f.Root || len(f.Sections) != 1 || f.Sections[0].Properties[0].Value != "tab" {
		t.Fatalf("unexpected file: %+v", f)
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		src  string
		want error
		line int
	}{
		{"[*.txt\n", ErrInvalidSection, 1},
		{"# c\n[]\n", ErrInvalidSection, 2},
		{"root = true\n\n[{a,b]\n", ErrInvalidPattern, 3},
		{"[*]\nnot a pair\n", ErrInvalidLine, 2},
		{"[*]\n= value\n", ErrInvalidLine, 2},
	}

	for _, tc := range cases {
		_, err := ParseString(tc.src, "bad.editorconfig")
		if !errors.Is(err, tc.want) {
			t.Fatalf("ParseString(%q) err=%v, want %v", tc.src, err, tc.want)
		}

		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Fatalf("ParseString(%q) err=%T, want *ParseError", tc.src, err)
		}

		if perr.File != "bad.editorconfig" || perr.Line != tc.line {
			t.Fatalf("ParseError=%s:%d, want bad.editorconfig:%d", perr.File, perr.Line, tc.line)
		}
	}
}
