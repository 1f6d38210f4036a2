// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/editorconfig

package editorconfig

import (
	"errors"
	"fmt"
)

// Sentinel errors for editorconfig operations.
var (
	// ErrNotFullPath indicates a target path that is not absolute.
	ErrNotFullPath = errors.New("path is not absolute")
	// ErrInvalidSection indicates a malformed section header.
	ErrInvalidSection = errors.New("invalid section header")
	// ErrInvalidLine indicates a line that is neither comment, section nor property.
	ErrInvalidLine = errors.New("invalid line")
	// ErrInvalidPattern indicates malformed or unsupported section glob.
	ErrInvalidPattern = errors.New("invalid pattern")
	// ErrInvalidConfigFileName indicates invalid resolver config file name.
	ErrInvalidConfigFileName = errors.New("invalid config file name")
	// ErrNilResolver indicates a nil Resolver receiver.
	ErrNilResolver = errors.New("resolver is nil")
)

// ParseError reports malformed config file syntax at a given line.
type ParseError struct {
	// File is the config file path, or a caller supplied name for in-memory input.
	File string
	// Line is 1-based line number of the offending input.
	Line int
	// Err is one of ErrInvalidSection, ErrInvalidLine or ErrInvalidPattern, possibly wrapped.
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %v", e.File, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// IOError reports an unreadable config file or directory.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
