// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/editorconfig

package host

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/woozymasta/editorconfig"
)

func TestBufferApplyOrder(t *testing.T) {
	cases := map[string]struct {
		settings editorconfig.Settings
		want     State
	}{
		"indent size sets tab width": {
			settings: editorconfig.Settings{IndentSize: editorconfig.IndentSize{Width: 4}},
			want:     State{IndentWidth: 4, TabWidth: 4},
		},
		"tab width overrides indent size": {
			settings: editorconfig.Settings{IndentSize: editorconfig.IndentSize{Width: 4}, TabWidth: 2},
			want:     State{IndentWidth: 4, TabWidth: 2},
		},
		"indent from default tab width": {
			settings: editorconfig.Settings{IndentSize: editorconfig.IndentSize{FromTabWidth: true}},
			want:     State{IndentWidth: 8, TabWidth: 8},
		},
		"indent from explicit tab width": {
			settings: editorconfig.Settings{IndentSize: editorconfig.IndentSize{FromTabWidth: true}, TabWidth: 3},
			want:     State{IndentWidth: 3, TabWidth: 3},
		},
		"eol and edge": {
			settings: editorconfig.Settings{EndOfLine: editorconfig.EndOfLineCRLF, MaxLineLength: 80},
			want:     State{EndOfLine: editorconfig.EndOfLineCRLF, EdgeColumn: 80, TabWidth: 8},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			buf := NewBuffer("/a", 8)
			tc.settings.Apply(buf.Sink())
			assert.Equal(t, tc.want, buf.State())
		})
	}
}

func TestNewBufferDefaultTabWidth(t *testing.T) {
	assert.Equal(t, uint32(DefaultTabWidth), NewBuffer("/a", 0).TabWidth())
	assert.Equal(t, uint32(4), NewBuffer("/a", 4).TabWidth())
	assert.Equal(t, "/a", NewBuffer("/a", 0).Path())
}
