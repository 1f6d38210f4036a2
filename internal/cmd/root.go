// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/editorconfig

// Package cmd implements ecapply commands.
package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for ecapply
func NewRootCommand() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:   "ecapply",
		Short: "Resolve and apply .editorconfig settings",
		Long: `ecapply resolves per-file .editorconfig properties and applies the
indentation, tab width, end-of-line and edge column settings to editor buffers.

Config files are searched from the file's directory upward until a file
declaring root = true. Closer files and later sections win.`,
		Version:      Version,
		SilenceUsage: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "tool config file (.yaml, .yml or .toml), default from $ECAPPLY_CONFIG")
	flags.StringVarP(&opts.format, "format", "f", "", "output format: text, yaml, json or ini")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: trace, debug, info, warn or error")
	flags.Uint32Var(&opts.tabWidth, "tab-width", 0, "tab width of a fresh buffer")
	flags.BoolVar(&opts.anywhere, "anywhere", false, "match globs without '/' at any depth")

	cmd.AddCommand(NewResolveCommand(opts))
	cmd.AddCommand(NewSettingsCommand(opts))
	cmd.AddCommand(NewFilesCommand(opts))
	cmd.AddCommand(NewApplyCommand(opts))
	cmd.AddCommand(NewWatchCommand(opts))

	return cmd
}
