// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/editorconfig

// Package output renders resolution results as text, YAML, JSON or INI.
package output

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	json "github.com/goccy/go-json"
	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"

	"github.com/woozymasta/editorconfig"
	"github.com/woozymasta/editorconfig/internal/host"
)

// Output formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
	FormatJSON = "json"
	FormatINI  = "ini"
)

// ErrUnknownFormat is returned for unsupported output formats.
var ErrUnknownFormat = errors.New("unknown output format")

// SettingsView is the printable form of editorconfig.Settings.
type SettingsView struct {
	IndentStyle   string `json:"indent_style" yaml:"indent_style"`
	IndentSize    string `json:"indent_size" yaml:"indent_size"`
	EndOfLine     string `json:"end_of_line" yaml:"end_of_line"`
	TabWidth      uint32 `json:"tab_width,omitempty" yaml:"tab_width,omitempty"`
	MaxLineLength uint32 `json:"max_line_length,omitempty" yaml:"max_line_length,omitempty"`
}

// NewSettingsView converts settings.
func NewSettingsView(s editorconfig.Settings) *SettingsView {
	return &SettingsView{
		IndentStyle:   s.IndentStyle.String(),
		IndentSize:    s.IndentSize.String(),
		EndOfLine:     s.EndOfLine.String(),
		TabWidth:      s.TabWidth,
		MaxLineLength: s.MaxLineLength,
	}
}

// BufferView is the printable form of a buffer state.
type BufferView struct {
	IndentStyle string `json:"indent_style" yaml:"indent_style"`
	EndOfLine   string `json:"end_of_line" yaml:"end_of_line"`
	IndentWidth uint32 `json:"indent_width" yaml:"indent_width"`
	TabWidth    uint32 `json:"tab_width" yaml:"tab_width"`
	EdgeColumn  uint32 `json:"edge_column" yaml:"edge_column"`
}

// NewBufferView converts a buffer state.
func NewBufferView(st host.State) *BufferView {
	return &BufferView{
		IndentStyle: st.IndentStyle.String(),
		EndOfLine:   st.EndOfLine.String(),
		IndentWidth: st.IndentWidth,
		TabWidth:    st.TabWidth,
		EdgeColumn:  st.EdgeColumn,
	}
}

// FileView describes one consulted config file.
type FileView struct {
	Path     string `json:"path" yaml:"path"`
	Sections int    `json:"sections" yaml:"sections"`
	Root     bool   `json:"root" yaml:"root"`
}

// NewFileViews converts parsed config files.
func NewFileViews(files []*editorconfig.File) []FileView {
	views := make([]FileView, 0, len(files))
	for _, f := range files {
		views = append(views, FileView{Path: f.Path, Sections: len(f.Sections), Root: f.Root})
	}

	return views
}

// Entry is the result for one target path. Only one payload is usually set.
type Entry struct {
	Path       string                  `json:"path" yaml:"path"`
	Error      string                  `json:"error,omitempty" yaml:"error,omitempty"`
	Properties editorconfig.Properties `json:"properties,omitempty" yaml:"properties,omitempty"`
	Settings   *SettingsView           `json:"settings,omitempty" yaml:"settings,omitempty"`
	Buffer     *BufferView             `json:"buffer,omitempty" yaml:"buffer,omitempty"`
	Files      []FileView              `json:"files,omitempty" yaml:"files,omitempty"`
}

// ErrorEntry creates an entry for a failed path.
func ErrorEntry(path string, err error) Entry {
	return Entry{Path: path, Error: err.Error()}
}

type pair struct {
	key   string
	value string
}

// pairs flattens entry payloads into ordered key/value pairs.
func (e Entry) pairs() []pair {
	if e.Error != "" {
		return []pair{{"error", e.Error}}
	}

	var out []pair
	for _, name := range e.Properties.Names() {
		out = append(out, pair{name, e.Properties[name]})
	}

	if s := e.Settings; s != nil {
		out = append(out,
			pair{"indent_style", s.IndentStyle},
			pair{"indent_size", s.IndentSize},
			pair{"tab_width", optionalUint(s.TabWidth)},
			pair{"end_of_line", s.EndOfLine},
			pair{"max_line_length", optionalUint(s.MaxLineLength)},
		)
	}

	if b := e.Buffer; b != nil {
		out = append(out,
			pair{"indent_style", b.IndentStyle},
			pair{"indent_width", optionalUint(b.IndentWidth)},
			pair{"tab_width", optionalUint(b.TabWidth)},
			pair{"end_of_line", b.EndOfLine},
			pair{"edge_column", optionalUint(b.EdgeColumn)},
		)
	}

	for i, f := range e.Files {
		value := f.Path
		if f.Root {
			value += " (root)"
		}

		out = append(out, pair{"file." + strconv.Itoa(i+1), value})
	}

	return out
}

func optionalUint(v uint32) string {
	if v == 0 {
		return "unset"
	}

	return strconv.FormatUint(uint64(v), 10)
}

// Encoder writes entries in one format.
type Encoder struct {
	format string
	color  bool
}

// NewEncoder creates an Encoder. Color applies to text format only.
func NewEncoder(format string, useColor bool) (*Encoder, error) {
	switch format {
	case FormatText, FormatYAML, FormatJSON, FormatINI:
	case "":
		format = FormatText
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	return &Encoder{format: format, color: useColor}, nil
}

// Encode writes entries to w.
func (e *Encoder) Encode(w io.Writer, entries []Entry) error {
	switch e.format {
	case FormatYAML:
		return encodeYAML(w, entries)
	case FormatJSON:
		return encodeJSON(w, entries)
	case FormatINI:
		return encodeINI(w, entries)
	default:
		return e.encodeText(w, entries)
	}
}

func (e *Encoder) encodeText(w io.Writer, entries []Entry) error {
	head := color.New(color.Bold)
	key := color.New(color.FgCyan)
	fail := color.New(color.FgRed)
	for _, c := range []*color.Color{head, key, fail} {
		if e.color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	for i, entry := range entries {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintln(w, head.Sprint(entry.Path)); err != nil {
			return err
		}

		for _, p := range entry.pairs() {
			k := key.Sprint(p.key)
			v := p.value
			if entry.Error != "" {
				k = fail.Sprint(p.key)
			}

			if _, err := fmt.Fprintf(w, "  %s = %s\n", k, v); err != nil {
				return err
			}
		}
	}

	return nil
}

func encodeYAML(w io.Writer, entries []Entry) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(entries); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}

	return enc.Close()
}

func encodeJSON(w io.Writer, entries []Entry) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(entries); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}

	return nil
}

// encodeINI writes one section per path, named after the path, so resolved
// properties read back as a flattened EditorConfig file.
func encodeINI(w io.Writer, entries []Entry) error {
	cfg := ini.Empty()
	for _, entry := range entries {
		sec, err := cfg.NewSection(entry.Path)
		if err != nil {
			return fmt.Errorf("ini section %q: %w", entry.Path, err)
		}

		for _, p := range entry.pairs() {
			if _, err := sec.NewKey(p.key, p.value); err != nil {
				return fmt.Errorf("ini key %q: %w", p.key, err)
			}
		}
	}

	if _, err := cfg.WriteTo(w); err != nil {
		return fmt.Errorf("encode ini: %w", err)
	}

	return nil
}
