// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/editorconfig

package editorconfig

// MatchingSections returns sections whose glob matches rel, in file order.
//
// Rel is a slash-separated path relative to the config file directory.
// When anywhere is set, globs without "/" may match at any depth.
func (f *File) MatchingSections(rel string, anywhere bool) []*Section {
	if f == nil {
		return nil
	}

	var out []*Section
	for i := range f.Sections {
		s := &f.Sections[i]
		matched := false
		if anywhere {
			matched = s.Glob.MatchAnywhere(rel)
		} else {
			matched = s.Glob.Match(rel)
		}

		if matched {
			out = append(out, s)
		}
	}

	return out
}

// Match returns properties of all sections matching rel.
//
// Decision policy:
// - sections are applied in file order
// - later section wins for the same property name
// - "unset" values are kept as markers and drop the property on MergeProperties
func (f *File) Match(rel string, anywhere bool) Properties {
	props := make(Properties)
	for _, s := range f.MatchingSections(rel, anywhere) {
		for _, p := range s.Properties {
			props[p.Name] = p.Value
		}
	}

	return props
}
