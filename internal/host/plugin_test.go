// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/editorconfig

package host

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woozymasta/editorconfig"
	"github.com/woozymasta/editorconfig/internal/logger"
)

type failure struct {
	err  error
	path string
}

type fakeReporter struct {
	failures []failure
}

func (r *fakeReporter) ReportFailure(path string, err error) {
	r.failures = append(r.failures, failure{path: path, err: err})
}

func writeConfig(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func newTestPlugin(t *testing.T, normalize bool) (*Plugin, *fakeReporter) {
	t.Helper()

	rep := &fakeReporter{}
	p, err := New(Options{Reporter: rep, NormalizeRelativePaths: normalize})
	require.NoError(t, err)
	return p, rep
}

func TestHandleAppliesSettings(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, filepath.Join(root, ".editorconfig"),
		"root = true\n[*.go]\nindent_style = tab\nindent_size = tab\nend_of_line = lf\nmax_line_length = 120\n")

	p, rep := newTestPlugin(t, false)
	buf := NewBuffer(filepath.Join(root, "main.go"), 0)

	out := p.Handle(EventDocumentOpened, buf)

	require.NoError(t, out.Err)
	assert.Empty(t, rep.failures)
	assert.Same(t, buf, out.Document)
	assert.Equal(t, State{
		IndentStyle: editorconfig.IndentStyleTab,
		EndOfLine:   editorconfig.EndOfLineLF,
		IndentWidth: 8,
		TabWidth:    8,
		EdgeColumn:  120,
	}, buf.State())
	assert.True(t, out.Settings.IndentSize.FromTabWidth)
}

func TestHandleReportsFailureOnce(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, filepath.Join(root, ".editorconfig"), "root = true\n[*\nindent_size = 2\n")

	p, rep := newTestPlugin(t, false)
	buf := NewBuffer(filepath.Join(root, "a.c"), 4)

	out := p.Handle(EventDocumentSaved, buf)

	require.Error(t, out.Err)
	assert.True(t, out.Failed())
	require.Len(t, rep.failures, 1)
	assert.Equal(t, buf.Path(), rep.failures[0].path)

	var perr *editorconfig.ParseError
	assert.True(t, errors.As(rep.failures[0].err, &perr))
	assert.Equal(t, State{TabWidth: 4}, buf.State(), "buffer must stay untouched")
}

func TestHandleSkipsRelativePath(t *testing.T) {
	p, rep := newTestPlugin(t, false)

	for _, path := range []string{"", "rel/a.txt"} {
		buf := NewBuffer(path, 0)
		out := p.Handle(EventDocumentOpened, buf)

		assert.True(t, out.Skipped, path)
		assert.False(t, out.Failed(), path)
		assert.ErrorIs(t, out.Err, editorconfig.ErrNotFullPath)
		assert.Equal(t, State{TabWidth: DefaultTabWidth}, buf.State())
	}

	assert.Empty(t, rep.failures)
}

func TestHandleNormalizesRelativePath(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, filepath.Join(root, ".editorconfig"), "root = true\n[*.txt]\nindent_size = 3\n")
	t.Chdir(root)

	p, rep := newTestPlugin(t, true)
	buf := NewBuffer("a.txt", 0)

	out := p.Handle(EventUserAction, buf)

	require.NoError(t, out.Err)
	assert.Empty(t, rep.failures)
	assert.True(t, filepath.IsAbs(out.Path))
	assert.Equal(t, uint32(3), buf.State().IndentWidth)

	empty := p.Handle(EventUserAction, NewBuffer("", 0))
	assert.True(t, empty.Skipped, "untitled buffers stay skipped")
}

func TestHandleCurrent(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, filepath.Join(root, ".editorconfig"), "root = true\n[*]\ntab_width = 2\n")

	p, _ := newTestPlugin(t, false)

	_, ok := p.HandleCurrent(NewWorkspace())
	assert.False(t, ok)

	first := NewBuffer(filepath.Join(root, "a"), 0)
	second := NewBuffer(filepath.Join(root, "b"), 0)
	out, ok := p.HandleCurrent(NewWorkspace(first, second))

	require.True(t, ok)
	require.NoError(t, out.Err)
	assert.Equal(t, uint32(2), first.State().TabWidth)
	assert.Equal(t, uint32(DefaultTabWidth), second.State().TabWidth)
}

func TestStartupIsolatesFailures(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, filepath.Join(root, ".editorconfig"), "root = true\n[*]\nindent_style = space\n")
	writeConfig(t, filepath.Join(root, "bad", ".editorconfig"), "garbage line\n")

	var logs bytes.Buffer
	rep := &fakeReporter{}
	p, err := New(Options{Reporter: rep, Logger: logger.New(&logs, "info")})
	require.NoError(t, err)

	good := NewBuffer(filepath.Join(root, "a.py"), 0)
	bad := NewBuffer(filepath.Join(root, "bad", "b.py"), 0)
	untitled := NewBuffer("", 0)
	after := NewBuffer(filepath.Join(root, "c.py"), 0)

	outcomes := p.Startup(NewWorkspace(good, bad, untitled, after))

	require.Len(t, outcomes, 4)
	assert.NoError(t, outcomes[0].Err)
	assert.True(t, outcomes[1].Failed())
	assert.ErrorIs(t, outcomes[1].Err, editorconfig.ErrInvalidLine)
	assert.True(t, outcomes[2].Skipped)
	assert.NoError(t, outcomes[3].Err)

	assert.Equal(t, editorconfig.IndentStyleSpace, good.State().IndentStyle)
	assert.Equal(t, editorconfig.IndentStyleUnset, bad.State().IndentStyle)
	assert.Equal(t, editorconfig.IndentStyleSpace, after.State().IndentStyle)

	require.Len(t, rep.failures, 1)
	assert.Contains(t, logs.String(), "startup: 4 documents, 1 failed")
}

func TestConfigChangedReappliesNestedDocuments(t *testing.T) {
	root := t.TempDir()
	sub := filepath.Join(root, "sub")
	writeConfig(t, filepath.Join(root, ".editorconfig"), "root = true\n[**]\ntab_width = 4\n")

	p, _ := newTestPlugin(t, false)
	inside := NewBuffer(filepath.Join(sub, "a.c"), 0)
	outside := NewBuffer(filepath.Join(root, "b.c"), 0)
	ws := NewWorkspace(inside, outside)
	p.Startup(ws)

	writeConfig(t, filepath.Join(sub, ".editorconfig"), "[*]\ntab_width = 6\n")
	outcomes := p.ConfigChanged(ws, filepath.Join(sub, ".editorconfig"))

	require.Len(t, outcomes, 1)
	assert.Equal(t, inside.Path(), outcomes[0].Path)
	assert.Equal(t, uint32(6), inside.State().TabWidth)
	assert.Equal(t, uint32(4), outside.State().TabWidth)
}

func TestLogReporter(t *testing.T) {
	var logs bytes.Buffer
	LogReporter{Logger: logger.New(&logs, "error")}.ReportFailure("/x/a.c", errors.New("boom"))
	assert.Contains(t, logs.String(), "editorconfig /x/a.c: boom")

	assert.NotPanics(t, func() {
		LogReporter{}.ReportFailure("/x", errors.New("boom"))
	})
}

func TestEventString(t *testing.T) {
	assert.Equal(t, "user-action", EventUserAction.String())
	assert.Equal(t, "opened", EventDocumentOpened.String())
	assert.Equal(t, "reloaded", EventDocumentReloaded.String())
	assert.Equal(t, "saved", EventDocumentSaved.String())
	assert.Equal(t, "startup", EventStartup.String())
	assert.Equal(t, "unknown", Event(99).String())
}
