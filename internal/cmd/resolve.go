// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/editorconfig

package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/woozymasta/editorconfig/internal/output"
)

// NewResolveCommand creates the resolve subcommand
func NewResolveCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <path>...",
		Short: "Print merged .editorconfig properties for files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return resolveWithOutput(cmd, opts, args, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
}

// NewSettingsCommand creates the settings subcommand
func NewSettingsCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "settings <path>...",
		Short: "Print editor settings decoded from .editorconfig properties",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return settingsWithOutput(cmd, opts, args, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
}

// NewFilesCommand creates the files subcommand
func NewFilesCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "files <path>...",
		Short: "List .editorconfig files consulted for files, root-most first",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return filesWithOutput(cmd, opts, args, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
}

func resolveWithOutput(cmd *cobra.Command, opts *globalOptions, args []string, out, logOut io.Writer) error {
	e, paths, err := prepare(cmd, opts, args, out, logOut)
	if err != nil {
		return err
	}

	entries := make([]output.Entry, 0, len(paths))
	failed := 0
	for _, path := range paths {
		props, err := e.resolver.Resolve(path)
		if err != nil {
			e.log.Debugf("resolve %s: %v", path, err)
			entries = append(entries, output.ErrorEntry(path, err))
			failed++
			continue
		}

		entries = append(entries, output.Entry{Path: path, Properties: props})
	}

	return e.finish(out, entries, failed)
}

func settingsWithOutput(cmd *cobra.Command, opts *globalOptions, args []string, out, logOut io.Writer) error {
	e, paths, err := prepare(cmd, opts, args, out, logOut)
	if err != nil {
		return err
	}

	entries := make([]output.Entry, 0, len(paths))
	failed := 0
	for _, path := range paths {
		s, err := e.resolver.ResolveSettings(path)
		if err != nil {
			e.log.Debugf("settings %s: %v", path, err)
			entries = append(entries, output.ErrorEntry(path, err))
			failed++
			continue
		}

		entries = append(entries, output.Entry{Path: path, Settings: output.NewSettingsView(s)})
	}

	return e.finish(out, entries, failed)
}

func filesWithOutput(cmd *cobra.Command, opts *globalOptions, args []string, out, logOut io.Writer) error {
	e, paths, err := prepare(cmd, opts, args, out, logOut)
	if err != nil {
		return err
	}

	entries := make([]output.Entry, 0, len(paths))
	failed := 0
	for _, path := range paths {
		files, err := e.resolver.Files(path)
		if err != nil {
			entries = append(entries, output.ErrorEntry(path, err))
			failed++
			continue
		}

		entries = append(entries, output.Entry{Path: path, Files: output.NewFileViews(files)})
	}

	return e.finish(out, entries, failed)
}

func prepare(cmd *cobra.Command, opts *globalOptions, args []string, out, logOut io.Writer) (*env, []string, error) {
	e, err := opts.setup(cmd, out, logOut)
	if err != nil {
		return nil, nil, err
	}

	paths, err := absPaths(args)
	if err != nil {
		return nil, nil, err
	}

	return e, paths, nil
}
