// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/editorconfig

package cmd

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/woozymasta/editorconfig/internal/host"
	"github.com/woozymasta/editorconfig/internal/output"
)

// NewApplyCommand creates the apply subcommand
func NewApplyCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "apply <path>...",
		Short: "Apply settings to in-memory buffers and print the buffer state",
		Long: `Open an in-memory buffer for every path, apply resolved settings as on
editor startup and print the effective buffer state.

Exit code: 0 if every path applied, 1 otherwise`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return applyWithOutput(cmd, opts, args, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
}

// NewWatchCommand creates the watch subcommand
func NewWatchCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "watch <path>...",
		Short: "Apply settings and re-apply whenever a consulted .editorconfig changes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return watchWithOutput(ctx, cmd, opts, args, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
}

// session is a set of open buffers driven by the host adapter.
type session struct {
	plugin    *host.Plugin
	workspace *host.Workspace
}

func newSession(e *env, paths []string) (*session, error) {
	plugin, err := host.New(host.Options{
		Resolver:               e.resolver,
		Logger:                 e.log,
		NormalizeRelativePaths: e.cfg.NormalizeRelativePaths,
	})
	if err != nil {
		return nil, err
	}

	docs := make([]host.Document, 0, len(paths))
	for _, path := range paths {
		docs = append(docs, host.NewBuffer(path, e.cfg.DefaultTabWidth))
	}

	return &session{
		plugin:    plugin,
		workspace: host.NewWorkspace(docs...),
	}, nil
}

// entries converts outcomes into output entries and counts failures.
func (s *session) entries(outcomes []host.Outcome) ([]output.Entry, int) {
	entries := make([]output.Entry, 0, len(outcomes))
	failed := 0
	for _, o := range outcomes {
		if o.Err != nil {
			entries = append(entries, output.ErrorEntry(o.Path, o.Err))
			if o.Failed() {
				failed++
			}
			continue
		}

		st := host.State{}
		if buf, ok := o.Document.(*host.Buffer); ok {
			st = buf.State()
		}

		entries = append(entries, output.Entry{Path: o.Path, Buffer: output.NewBufferView(st)})
	}

	return entries, failed
}

func applyWithOutput(cmd *cobra.Command, opts *globalOptions, args []string, out, logOut io.Writer) error {
	e, paths, err := prepare(cmd, opts, args, out, logOut)
	if err != nil {
		return err
	}

	s, err := newSession(e, paths)
	if err != nil {
		return err
	}

	entries, failed := s.entries(s.plugin.Startup(s.workspace))
	return e.finish(out, entries, failed)
}

// watchWithOutput applies once, then re-applies on config changes until ctx is done.
// Failures after startup are reported and do not stop watching.
func watchWithOutput(ctx context.Context, cmd *cobra.Command, opts *globalOptions, args []string, out, logOut io.Writer) error {
	e, paths, err := prepare(cmd, opts, args, out, logOut)
	if err != nil {
		return err
	}

	debounce, err := e.cfg.Debounce()
	if err != nil {
		return err
	}

	s, err := newSession(e, paths)
	if err != nil {
		return err
	}

	w, err := host.NewWatcher(e.resolver.ConfigFileName(), debounce, e.log)
	if err != nil {
		return err
	}
	defer func() { _ = w.Close() }()

	for _, path := range paths {
		if err := w.Watch(path); err != nil {
			return err
		}
	}

	entries, _ := s.entries(s.plugin.Startup(s.workspace))
	if err := e.enc.Encode(out, entries); err != nil {
		return err
	}

	e.log.Infof("watching %d directories", len(w.Dirs()))

	for {
		select {
		case <-ctx.Done():
			return nil

		case change, ok := <-w.Events():
			if !ok {
				return nil
			}

			outcomes := s.plugin.ConfigChanged(s.workspace, change.Path)
			if len(outcomes) == 0 {
				continue
			}

			entries, _ := s.entries(outcomes)
			if err := e.enc.Encode(out, entries); err != nil {
				return err
			}

		case err, ok := <-w.Errors():
			if !ok {
				return nil
			}

			e.log.Warnf("watch: %v", err)
		}
	}
}
