// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/editorconfig

package editorconfig

import (
	"slices"
	"strings"
)

// Property is one name/value pair from a config file.
type Property struct {
	// Name is lower-cased property name.
	Name string `json:"name" yaml:"name"`
	// Value is raw property value with surrounding whitespace trimmed.
	Value string `json:"value" yaml:"value"`
}

// Section is one "[glob]" block of a config file.
type Section struct {
	// Glob is the compiled section header pattern.
	Glob *Glob `json:"-" yaml:"-"`
	// Pattern is the raw section header pattern without brackets.
	Pattern string `json:"pattern" yaml:"pattern"`
	// Properties are section pairs in file order.
	Properties []Property `json:"properties" yaml:"properties"`
	// Line is 1-based line of the section header.
	Line int `json:"line" yaml:"line"`
}

// File is one parsed config file.
type File struct {
	// Path is the config file path, or a caller supplied name for in-memory input.
	Path string `json:"path" yaml:"path"`
	// Preamble holds pairs found before the first section.
	Preamble []Property `json:"preamble,omitempty" yaml:"preamble,omitempty"`
	// Sections are sections in file order.
	Sections []Section `json:"sections" yaml:"sections"`
	// Root reports whether preamble declares "root = true".
	Root bool `json:"root" yaml:"root"`
}

// Properties is the resolved property set for one target path.
//
// Keys are lower-cased property names, values are raw trimmed strings.
type Properties map[string]string

// Get returns property value and whether it is present.
func (p Properties) Get(name string) (string, bool) {
	v, ok := p[strings.ToLower(name)]
	return v, ok
}

// Names returns property names in sorted order.
func (p Properties) Names() []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}

	slices.Sort(names)
	return names
}

// ResolverOptions configures Resolver behavior.
type ResolverOptions struct {
	// ConfigFileName is the config file looked up in each directory.
	// Empty value defaults to ".editorconfig".
	ConfigFileName string `json:"config_file_name,omitempty" yaml:"config_file_name,omitempty"`
	// MatchBasenamesAnywhere makes globs without "/" match at any depth
	// below the config file directory instead of only directly inside it.
	MatchBasenamesAnywhere bool `json:"match_basenames_anywhere,omitempty" yaml:"match_basenames_anywhere,omitempty"`
}
