// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/editorconfig

package editorconfig

import (
	"fmt"
	"path/filepath"
	"strings"
)

const defaultConfigFileName = ".editorconfig"

// cleanTargetPath validates and cleans an absolute target file path.
func cleanTargetPath(raw string) (string, error) {
	if raw == "" || !filepath.IsAbs(raw) {
		return "", fmt.Errorf("%w: %q", ErrNotFullPath, raw)
	}

	return filepath.Clean(raw), nil
}

// relativeTo returns slash-separated target path relative to dir.
//
// Target must be located under dir; ok is false otherwise.
func relativeTo(dir string, target string) (string, bool) {
	rel, err := filepath.Rel(dir, target)
	if err != nil {
		return "", false
	}

	rel = filepath.ToSlash(rel)
	if rel == "." || rel == ".." || strings.HasPrefix(rel, "../") {
		return "", false
	}

	return rel, true
}

// cleanConfigFileName validates and normalizes resolver config file name.
func cleanConfigFileName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		name = defaultConfigFileName
	}

	if filepath.IsAbs(name) {
		return "", ErrInvalidConfigFileName
	}

	name = filepath.ToSlash(name)
	if strings.Contains(name, "/") || name == "." || name == ".." {
		return "", ErrInvalidConfigFileName
	}

	return name, nil
}

// asciiLower converts only ASCII A-Z to a-z and leaves all other bytes unchanged.
func asciiLower(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] >= 'A' && s[i] <= 'Z' {
			b := []byte(s)
			for j := i; j < len(b); j++ {
				if b[j] >= 'A' && b[j] <= 'Z' {
					b[j] += 'a' - 'A'
				}
			}

			return string(b)
		}
	}

	return s
}
