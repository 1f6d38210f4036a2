// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/editorconfig

package editorconfig

import "testing"

func TestDecodeSettings(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		props Properties
		want  Settings
	}{
		{
			name:  "empty",
			props: Properties{},
			want:  Settings{},
		},
		{
			name: "all recognized",
			props: Properties{
				"indent_style":    "space",
				"indent_size":     "4",
				"tab_width":       "2",
				"end_of_line":     "crlf",
				"max_line_length": "120",
				"charset":         "utf-8",
			},
			want: Settings{
				IndentStyle:   IndentStyleSpace,
				IndentSize:    IndentSize{Width: 4},
				TabWidth:      2,
				EndOfLine:     EndOfLineCRLF,
				MaxLineLength: 120,
			},
		},
		{
			name:  "indent size from tab width",
			props: Properties{"indent_style": "tab", "indent_size": "tab", "end_of_line": "cr"},
			want: Settings{
				IndentStyle: IndentStyleTab,
				IndentSize:  IndentSize{FromTabWidth: true},
				EndOfLine:   EndOfLineCR,
			},
		},
		{
			name:  "keywords ignore case",
			props: Properties{"indent_style": "Tab", "indent_size": "TAB", "end_of_line": "LF"},
			want: Settings{
				IndentStyle: IndentStyleTab,
				IndentSize:  IndentSize{FromTabWidth: true},
				EndOfLine:   EndOfLineLF,
			},
		},
		{
			name: "malformed values are unset",
			props: Properties{
				"indent_style":    "tabs",
				"indent_size":     "abc",
				"tab_width":       "0",
				"end_of_line":     "native",
				"max_line_length": "off",
			},
			want: Settings{},
		},
		{
			name:  "negative and signed numbers are unset",
			props: Properties{"indent_size": "-2", "tab_width": "+4", "max_line_length": "4294967296"},
			want:  Settings{},
		},
	}

	for _, tc := range cases {
		if got := DecodeSettings(tc.props); got != tc.want {
			t.Fatalf("%s: DecodeSettings=%+v, want %+v", tc.name, got, tc.want)
		}
	}
}

func TestSettingsStrings(t *testing.T) {
	t.Parallel()

	if IndentStyleTab.String() != "tab" || IndentStyleSpace.String() != "space" || IndentStyleUnset.String() != "unset" {
		t.Fatalf("unexpected IndentStyle strings")
	}

	if EndOfLineLF.String() != "lf" || EndOfLineCRLF.String() != "crlf" || EndOfLineCR.String() != "cr" {
		t.Fatalf("unexpected EndOfLine strings")
	}

	if (IndentSize{FromTabWidth: true}).String() != "tab" || (IndentSize{Width: 3}).String() != "3" || (IndentSize{}).String() != "unset" {
		t.Fatalf("unexpected IndentSize strings")
	}

	if (IndentSize{}).IsSet() || !(IndentSize{Width: 1}).IsSet() {
		t.Fatalf("unexpected IndentSize.IsSet")
	}
}
