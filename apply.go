// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/editorconfig

package editorconfig

// Sink is an editor buffer that accepts settings.
type Sink interface {
	SetIndentStyle(style IndentStyle)
	SetIndentWidth(width uint32)
	SetTabWidth(width uint32)
	// TabWidth returns the currently effective tab width.
	TabWidth() uint32
	SetEOLMode(eol EndOfLine)
	SetEdgeColumn(column uint32)
}

// Apply pushes settings into sink.
//
// Order matters:
// 1. indent style
// 2. explicit indent size, also used as tab width
// 3. tab width, overriding step 2
// 4. indent_size = tab reads back the effective tab width
// 5. end of line
// 6. max line length as edge column
func (s Settings) Apply(sink Sink) {
	if s.IndentStyle != IndentStyleUnset {
		sink.SetIndentStyle(s.IndentStyle)
	}

	if s.IndentSize.Width > 0 {
		sink.SetIndentWidth(s.IndentSize.Width)
		sink.SetTabWidth(s.IndentSize.Width)
	}

	if s.TabWidth > 0 {
		sink.SetTabWidth(s.TabWidth)
	}

	if s.IndentSize.FromTabWidth {
		sink.SetIndentWidth(sink.TabWidth())
	}

	if s.EndOfLine != EndOfLineUnset {
		sink.SetEOLMode(s.EndOfLine)
	}

	if s.MaxLineLength > 0 {
		sink.SetEdgeColumn(s.MaxLineLength)
	}
}

// ResolveSettings resolves and decodes settings for an absolute file path.
func (r *Resolver) ResolveSettings(path string) (Settings, error) {
	props, err := r.Resolve(path)
	if err != nil {
		return Settings{}, err
	}

	return DecodeSettings(props), nil
}

// Apply resolves settings for an absolute file path and pushes them into sink.
//
// Sink is left untouched when resolution fails.
func (r *Resolver) Apply(path string, sink Sink) (Settings, error) {
	s, err := r.ResolveSettings(path)
	if err != nil {
		return Settings{}, err
	}

	s.Apply(sink)
	return s, nil
}
