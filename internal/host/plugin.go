// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/editorconfig

package host

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/woozymasta/editorconfig"
	"github.com/woozymasta/editorconfig/internal/logger"
)

// Options configures a Plugin.
type Options struct {
	// Resolver defaults to a resolver with default options.
	Resolver *editorconfig.Resolver
	// Logger defaults to a discarding logger.
	Logger logger.Logger
	// Reporter defaults to LogReporter over Logger.
	Reporter Reporter
	// NormalizeRelativePaths makes relative document paths absolute and retries
	// once instead of skipping them.
	NormalizeRelativePaths bool
}

// Outcome is the result of applying settings to one document.
type Outcome struct {
	Err error
	// Document is the document the outcome belongs to.
	Document Document
	Path     string
	Settings editorconfig.Settings
	// Skipped is set for documents without a usable full path.
	Skipped bool
}

// Failed reports whether the document failed and was reported.
func (o Outcome) Failed() bool {
	return o.Err != nil && !o.Skipped
}

// Plugin applies resolved settings to host documents.
type Plugin struct {
	resolver  *editorconfig.Resolver
	logger    logger.Logger
	reporter  Reporter
	normalize bool
}

// New creates a Plugin.
func New(opts Options) (*Plugin, error) {
	r := opts.Resolver
	if r == nil {
		var err error
		r, err = editorconfig.NewResolver(editorconfig.ResolverOptions{})
		if err != nil {
			return nil, err
		}
	}

	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}

	rep := opts.Reporter
	if rep == nil {
		rep = LogReporter{Logger: log}
	}

	return &Plugin{
		resolver:  r,
		logger:    log,
		reporter:  rep,
		normalize: opts.NormalizeRelativePaths,
	}, nil
}

// Resolver returns the resolver used by the plugin.
func (p *Plugin) Resolver() *editorconfig.Resolver {
	return p.resolver
}

// Handle applies settings to doc in response to ev.
//
// Failures are reported once and leave the document untouched.
// Documents without a full path are skipped silently.
func (p *Plugin) Handle(ev Event, doc Document) Outcome {
	path := doc.Path()
	out := Outcome{Path: path, Document: doc}

	s, err := p.resolver.Apply(path, doc.Sink())
	if errors.Is(err, editorconfig.ErrNotFullPath) && p.normalize && strings.TrimSpace(path) != "" {
		abs, absErr := filepath.Abs(path)
		if absErr == nil {
			out.Path = abs
			s, err = p.resolver.Apply(abs, doc.Sink())
		}
	}

	switch {
	case errors.Is(err, editorconfig.ErrNotFullPath):
		p.logger.Debugf("%s: skip %q: no full path", ev, path)
		out.Err = err
		out.Skipped = true
	case err != nil:
		p.reporter.ReportFailure(out.Path, err)
		out.Err = err
	default:
		p.logger.Debugf("%s: applied to %s", ev, out.Path)
		out.Settings = s
	}

	return out
}

// HandleCurrent applies settings to the current document (menu action).
// It returns false when the host has no current document.
func (p *Plugin) HandleCurrent(h Host) (Outcome, bool) {
	doc, ok := h.CurrentDocument()
	if !ok || doc == nil {
		return Outcome{}, false
	}

	return p.Handle(EventUserAction, doc), true
}

// Startup applies settings to every open document.
// One failing document never stops the others.
func (p *Plugin) Startup(h Host) []Outcome {
	docs := h.OpenDocuments()
	outcomes := make([]Outcome, 0, len(docs))
	for _, doc := range docs {
		outcomes = append(outcomes, p.Handle(EventStartup, doc))
	}

	failed := 0
	for _, o := range outcomes {
		if o.Failed() {
			failed++
		}
	}

	p.logger.Infof("startup: %d documents, %d failed", len(outcomes), failed)
	return outcomes
}

// ConfigChanged re-applies settings to open documents under the directory of
// the changed config file.
func (p *Plugin) ConfigChanged(h Host, configPath string) []Outcome {
	dir := filepath.Dir(filepath.Clean(configPath))

	var outcomes []Outcome
	for _, doc := range h.OpenDocuments() {
		if !isWithin(dir, doc.Path()) {
			continue
		}

		outcomes = append(outcomes, p.Handle(EventDocumentReloaded, doc))
	}

	p.logger.Debugf("config %s changed: %d documents reapplied", configPath, len(outcomes))
	return outcomes
}

// isWithin reports whether path is inside dir. Relative paths never are.
func isWithin(dir, path string) bool {
	if !filepath.IsAbs(path) {
		return false
	}

	rel, err := filepath.Rel(dir, filepath.Clean(path))
	if err != nil {
		return false
	}

	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
