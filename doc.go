// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/editorconfig

/*
Package editorconfig resolves per-file .editorconfig settings and applies them to editor buffers.

Basic flow:
  - resolve merged properties for an absolute path (`Resolve` / `Resolver.Resolve`)
  - decode the recognized subset into typed settings (`DecodeSettings`)
  - push settings into an editor buffer (`Settings.Apply` with a `Sink`)

`Resolver.Apply` runs the whole pipeline and leaves the sink untouched on error.

Resolution walks from the file's directory up to the filesystem root, stops after
a file declaring `root = true`, and merges matching sections so that closer files
and later sections win. Section globs are rooted at the directory of the defining
file: `*.txt` matches only files directly in it, `**.txt` matches at any depth.
Set `ResolverOptions.MatchBasenamesAnywhere` for the classic behavior where globs
without "/" match at any depth.

Nothing is cached: each call re-reads the filesystem.

Lower-level building blocks:
  - parse one file (`ParseFile` / `ParseString` / `LoadFile`)
  - compile and match one glob (`CompileGlob`)
  - merge property sets (`MergeProperties`)
*/
package editorconfig
