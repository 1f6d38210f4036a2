// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/editorconfig

package editorconfig

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// maxLineSize bounds one config line, bufio default is 64 KiB.
const maxLineSize = 1 << 20

// ParseFile parses one config file from reader. Name is used for File.Path
// and error messages.
//
// Semantics:
// - blank lines and lines starting with "#" or ";" are ignored
// - "[glob]" opens a new section, the glob is compiled immediately
// - "name = value" (or "name: value") adds a property, names are lower-cased
// - pairs before the first section form the preamble, "root = true" marks a root file
// - anything else is a ParseError
func ParseFile(r io.Reader, name string) (*File, error) {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 4096), maxLineSize)

	f := &File{Path: name}
	var section *Section

	for lineNo := 1; s.Scan(); lineNo++ {
		line := s.Text()
		if lineNo == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}

		line = strings.TrimSpace(line)
		if line == "" || line[0] == '#' || line[0] == ';' {
			continue
		}

		if line[0] == '[' {
			next, err := parseSectionHeader(line, lineNo)
			if err != nil {
				return nil, &ParseError{File: name, Line: lineNo, Err: err}
			}

			f.Sections = append(f.Sections, *next)
			section = &f.Sections[len(f.Sections)-1]
			continue
		}

		prop, err := parseProperty(line)
		if err != nil {
			return nil, &ParseError{File: name, Line: lineNo, Err: err}
		}

		if section != nil {
			section.Properties = append(section.Properties, prop)
			continue
		}

		f.Preamble = append(f.Preamble, prop)
		if prop.Name == "root" {
			f.Root = strings.EqualFold(prop.Value, "true")
		}
	}

	if err := s.Err(); err != nil {
		return nil, &IOError{Path: name, Err: err}
	}

	return f, nil
}

// ParseString parses config file from string input.
func ParseString(src string, name string) (*File, error) {
	return ParseFile(strings.NewReader(src), name)
}

// parseSectionHeader parses one trimmed "[glob]" line.
func parseSectionHeader(line string, lineNo int) (*Section, error) {
	if len(line) < 2 || line[len(line)-1] != ']' {
		return nil, fmt.Errorf("%w: unterminated %q", ErrInvalidSection, line)
	}

	pattern := strings.TrimSpace(line[1 : len(line)-1])
	if pattern == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidSection)
	}

	glob, err := CompileGlob(pattern)
	if err != nil {
		return nil, err
	}

	return &Section{
		Glob:    glob,
		Pattern: pattern,
		Line:    lineNo,
	}, nil
}

// parseProperty parses one trimmed "name = value" line.
func parseProperty(line string) (Property, error) {
	sep := strings.IndexAny(line, "=:")
	if sep < 0 {
		return Property{}, fmt.Errorf("%w: expected name = value, got %q", ErrInvalidLine, line)
	}

	name := asciiLower(strings.TrimSpace(line[:sep]))
	if name == "" {
		return Property{}, fmt.Errorf("%w: empty property name", ErrInvalidLine)
	}

	return Property{
		Name:  name,
		Value: strings.TrimSpace(line[sep+1:]),
	}, nil
}
