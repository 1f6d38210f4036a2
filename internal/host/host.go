// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/editorconfig

// Package host adapts EditorConfig resolution to an editor: it reacts to
// document lifecycle events, pushes settings into buffers and reports failures.
package host

import (
	"github.com/woozymasta/editorconfig"
	"github.com/woozymasta/editorconfig/internal/logger"
)

// Event is a trigger that makes the adapter (re)apply settings.
type Event uint8

// Trigger events.
const (
	// EventUserAction is the explicit "apply to current document" command.
	EventUserAction Event = iota
	EventDocumentOpened
	EventDocumentReloaded
	EventDocumentSaved
	// EventStartup applies to every open document once.
	EventStartup
)

func (e Event) String() string {
	switch e {
	case EventUserAction:
		return "user-action"
	case EventDocumentOpened:
		return "opened"
	case EventDocumentReloaded:
		return "reloaded"
	case EventDocumentSaved:
		return "saved"
	case EventStartup:
		return "startup"
	default:
		return "unknown"
	}
}

// Document is an open editor document.
type Document interface {
	// Path returns the document file path, empty for unsaved buffers.
	Path() string
	Sink() editorconfig.Sink
}

// Host is the editor hosting the adapter.
type Host interface {
	// CurrentDocument returns the focused document, false when none.
	CurrentDocument() (Document, bool)
	OpenDocuments() []Document
}

// Reporter is the user-visible error channel.
type Reporter interface {
	ReportFailure(path string, err error)
}

// LogReporter reports failures to a logger at error level.
type LogReporter struct {
	Logger logger.Logger
}

// ReportFailure implements Reporter.
func (r LogReporter) ReportFailure(path string, err error) {
	if r.Logger == nil {
		return
	}

	r.Logger.Errorf("editorconfig %s: %v", path, err)
}

// Workspace is a static Host over a fixed document list.
// The first document is current.
type Workspace struct {
	docs []Document
}

// NewWorkspace creates a Workspace.
func NewWorkspace(docs ...Document) *Workspace {
	return &Workspace{docs: docs}
}

// CurrentDocument implements Host.
func (w *Workspace) CurrentDocument() (Document, bool) {
	if w == nil || len(w.docs) == 0 {
		return nil, false
	}

	return w.docs[0], true
}

// OpenDocuments implements Host.
func (w *Workspace) OpenDocuments() []Document {
	if w == nil {
		return nil
	}

	return w.docs
}
