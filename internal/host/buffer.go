// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/editorconfig

package host

import (
	"sync"

	"github.com/woozymasta/editorconfig"
)

// DefaultTabWidth is the tab width of a fresh buffer.
const DefaultTabWidth = 8

// State is a snapshot of buffer indentation and line settings.
type State struct {
	IndentStyle editorconfig.IndentStyle
	EndOfLine   editorconfig.EndOfLine
	// IndentWidth is zero until set.
	IndentWidth uint32
	TabWidth    uint32
	// EdgeColumn is zero until set.
	EdgeColumn uint32
}

// Buffer is an in-memory editor buffer. It is both a Document and its Sink.
// It is safe for concurrent use.
type Buffer struct {
	path  string
	state State
	mu    sync.Mutex
}

// NewBuffer creates a Buffer for path with a default tab width.
// Zero tabWidth uses DefaultTabWidth.
func NewBuffer(path string, tabWidth uint32) *Buffer {
	if tabWidth == 0 {
		tabWidth = DefaultTabWidth
	}

	return &Buffer{
		path:  path,
		state: State{TabWidth: tabWidth},
	}
}

// Path implements Document.
func (b *Buffer) Path() string {
	return b.path
}

// Sink implements Document.
func (b *Buffer) Sink() editorconfig.Sink {
	return b
}

// State returns current buffer settings.
func (b *Buffer) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// SetIndentStyle implements editorconfig.Sink.
func (b *Buffer) SetIndentStyle(style editorconfig.IndentStyle) {
	b.mu.Lock()
	b.state.IndentStyle = style
	b.mu.Unlock()
}

// SetIndentWidth implements editorconfig.Sink.
func (b *Buffer) SetIndentWidth(width uint32) {
	b.mu.Lock()
	b.state.IndentWidth = width
	b.mu.Unlock()
}

// SetTabWidth implements editorconfig.Sink.
func (b *Buffer) SetTabWidth(width uint32) {
	b.mu.Lock()
	b.state.TabWidth = width
	b.mu.Unlock()
}

// TabWidth implements editorconfig.Sink.
func (b *Buffer) TabWidth() uint32 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state.TabWidth
}

// SetEOLMode implements editorconfig.Sink.
func (b *Buffer) SetEOLMode(eol editorconfig.EndOfLine) {
	b.mu.Lock()
	b.state.EndOfLine = eol
	b.mu.Unlock()
}

// SetEdgeColumn implements editorconfig.Sink.
func (b *Buffer) SetEdgeColumn(column uint32) {
	b.mu.Lock()
	b.state.EdgeColumn = column
	b.mu.Unlock()
}
