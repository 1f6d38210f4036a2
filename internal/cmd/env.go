// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/editorconfig

package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/woozymasta/editorconfig"
	"github.com/woozymasta/editorconfig/internal/config"
	"github.com/woozymasta/editorconfig/internal/logger"
	"github.com/woozymasta/editorconfig/internal/output"
)

var errPathsFailed = errors.New("paths failed")

// globalOptions holds persistent flag values.
type globalOptions struct {
	configPath string
	format     string
	logLevel   string
	tabWidth   uint32
	anywhere   bool
}

// env is everything a command needs after flags and config are merged.
type env struct {
	cfg      *config.Config
	log      *logger.ConsoleLogger
	resolver *editorconfig.Resolver
	enc      *output.Encoder
}

// loadConfig reads the config file and applies flags set on cmd over it.
func (o *globalOptions) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path := o.configPath
	if path == "" {
		path = config.DefaultPath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if cmd != nil {
		flags := cmd.Flags()
		if flags.Changed("format") {
			cfg.Format = o.format
		}
		if flags.Changed("log-level") {
			cfg.LogLevel = o.logLevel
		}
		if flags.Changed("tab-width") {
			cfg.DefaultTabWidth = o.tabWidth
		}
		if flags.Changed("anywhere") {
			cfg.MatchBasenamesAnywhere = o.anywhere
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// setup builds the command environment. Logs go to logOut.
func (o *globalOptions) setup(cmd *cobra.Command, out, logOut io.Writer) (*env, error) {
	cfg, err := o.loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	resolver, err := editorconfig.NewResolver(cfg.ResolverOptions())
	if err != nil {
		return nil, err
	}

	enc, err := output.NewEncoder(cfg.Format, colorOutput(out))
	if err != nil {
		return nil, err
	}

	return &env{
		cfg:      cfg,
		log:      logger.New(logOut, cfg.LogLevel),
		resolver: resolver,
		enc:      enc,
	}, nil
}

// colorOutput reports whether out is a color-capable terminal.
func colorOutput(out io.Writer) bool {
	f, ok := out.(*os.File)
	if !ok || color.NoColor {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// absPaths makes CLI arguments absolute.
func absPaths(args []string) ([]string, error) {
	paths := make([]string, 0, len(args))
	for _, arg := range args {
		abs, err := filepath.Abs(arg)
		if err != nil {
			return nil, fmt.Errorf("path %q: %w", arg, err)
		}

		paths = append(paths, abs)
	}

	return paths, nil
}

// finish writes entries and turns failures into a command error.
func (e *env) finish(out io.Writer, entries []output.Entry, failed int) error {
	if err := e.enc.Encode(out, entries); err != nil {
		return err
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d %w", failed, len(entries), errPathsFailed)
	}

	return nil
}
