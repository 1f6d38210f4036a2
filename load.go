// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/editorconfig

package editorconfig

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"syscall"
)

// LoadFile reads and parses one config file.
func LoadFile(path string) (*File, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}

	return ParseFile(bytes.NewReader(content), path)
}

// loadFileIfExists reads one config file, reporting found=false when it does not exist.
func loadFileIfExists(path string) (*File, bool, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		// A path component that is a regular file means the config cannot exist.
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
			return nil, false, nil
		}

		return nil, false, &IOError{Path: path, Err: err}
	}

	f, err := ParseFile(bytes.NewReader(content), path)
	if err != nil {
		return nil, false, err
	}

	return f, true, nil
}
