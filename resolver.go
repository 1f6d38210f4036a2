// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/editorconfig

package editorconfig

import (
	"path/filepath"
	"slices"
)

// Resolver loads config files along the path hierarchy and merges matching properties.
//
// A Resolver keeps no state between calls: every call re-reads the filesystem.
// It is safe for concurrent use.
type Resolver struct {
	// configFileName is per-directory config file name.
	configFileName string
	// anywhere makes slash-less globs match at any depth.
	anywhere bool
}

var defaultResolver = &Resolver{configFileName: defaultConfigFileName}

// NewResolver creates a Resolver with the given options.
func NewResolver(opts ResolverOptions) (*Resolver, error) {
	name, err := cleanConfigFileName(opts.ConfigFileName)
	if err != nil {
		return nil, err
	}

	return &Resolver{
		configFileName: name,
		anywhere:       opts.MatchBasenamesAnywhere,
	}, nil
}

// Resolve returns merged properties for an absolute file path using default options.
func Resolve(path string) (Properties, error) {
	return defaultResolver.Resolve(path)
}

// ConfigFileName returns the config file name looked up in each directory.
func (r *Resolver) ConfigFileName() string {
	if r == nil {
		return defaultConfigFileName
	}

	return r.configFileName
}

// Resolve returns merged properties for an absolute file path.
//
// Merge order:
// 1. Config files from the root-most one down to the file's own directory.
// 2. Matching sections in file order.
// Closer files and later sections win.
func (r *Resolver) Resolve(path string) (Properties, error) {
	if r == nil {
		return nil, ErrNilResolver
	}

	target, err := cleanTargetPath(path)
	if err != nil {
		return nil, err
	}

	files, err := r.files(target)
	if err != nil {
		return nil, err
	}

	sets := make([]Properties, 0, len(files))
	for _, f := range files {
		rel, ok := relativeTo(filepath.Dir(f.Path), target)
		if !ok {
			continue
		}

		sets = append(sets, f.Match(rel, r.anywhere))
	}

	return MergeProperties(sets...), nil
}

// Files returns parsed config files consulted for an absolute file path,
// ordered from the root-most one down to the file's own directory.
func (r *Resolver) Files(path string) ([]*File, error) {
	if r == nil {
		return nil, ErrNilResolver
	}

	target, err := cleanTargetPath(path)
	if err != nil {
		return nil, err
	}

	return r.files(target)
}

// files walks upward from target directory and stops after the first root file.
func (r *Resolver) files(target string) ([]*File, error) {
	var found []*File

	dir := filepath.Dir(target)
	for {
		f, ok, err := loadFileIfExists(filepath.Join(dir, r.configFileName))
		if err != nil {
			return nil, err
		}

		if ok {
			found = append(found, f)
			if f.Root {
				break
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}

		dir = parent
	}

	slices.Reverse(found)
	return found, nil
}
