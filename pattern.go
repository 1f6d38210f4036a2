// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/editorconfig

package editorconfig

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// Glob is a compiled section header pattern.
//
// A Glob is always rooted at the directory of the config file defining it
// and is matched against slash-separated paths relative to that directory.
type Glob struct {
	// re matches patterns that need braces, char-classes, escapes or "**".
	re *regexp.Regexp
	// source is original pattern text.
	source string
	// exact matches patterns without glob meta.
	exact string
	// segments matches patterns with only "*" and "?" wildcards.
	segments []segmentPattern
	// hasSlash reports whether pattern contains "/", a leading one included.
	hasSlash bool
}

// segmentPattern is precompiled path segment matcher.
type segmentPattern struct {
	// text is raw segment pattern source.
	text string
	// wildcard reports whether text contains "*" or "?".
	wildcard bool
}

var numRangeRE = regexp.MustCompile(`^([+-]?[0-9]+)\.\.([+-]?[0-9]+)$`)

// CompileGlob compiles one section header pattern into the cheapest matching
// strategy that preserves EditorConfig glob semantics.
func CompileGlob(pattern string) (*Glob, error) {
	pat := strings.TrimPrefix(pattern, "/")
	if pat == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidPattern)
	}

	pairs, err := matchBraces(pat)
	if err != nil {
		return nil, fmt.Errorf("%w: %s in %q", ErrInvalidPattern, err, pattern)
	}

	g := &Glob{
		source:   pattern,
		hasSlash: strings.Contains(pattern, "/"),
	}

	if !strings.ContainsAny(pat, `*?[]{}\`) {
		g.exact = pat
		return g, nil
	}

	if !strings.ContainsAny(pat, `[]{}\`) && !strings.Contains(pat, "**") {
		g.segments = compilePathSegments(pat)
		return g, nil
	}

	c := globCompiler{pat: pat, pairs: pairs}
	c.convert(0, len(pat))

	re, err := regexp.Compile("^" + c.b.String() + "$")
	if err != nil {
		return nil, fmt.Errorf("%w: compile %q: %v", ErrInvalidPattern, pattern, err)
	}

	g.re = re
	return g, nil
}

// String returns the source pattern.
func (g *Glob) String() string {
	return g.source
}

// Match reports whether slash-separated path relative to the glob root matches.
func (g *Glob) Match(rel string) bool {
	if g == nil || rel == "" {
		return false
	}

	switch {
	case g.exact != "":
		return rel == g.exact
	case len(g.segments) > 0:
		end, ok := matchPathSegmentsAt(g.segments, rel, 0)
		return ok && end == len(rel)
	default:
		return g.matchRegexp(rel)
	}
}

// MatchAnywhere is Match, except that patterns without "/" may also match
// any trailing part of rel that starts at a segment boundary.
func (g *Glob) MatchAnywhere(rel string) bool {
	if g == nil {
		return false
	}

	if g.hasSlash {
		return g.Match(rel)
	}

	for start := 0; ; {
		if g.Match(rel[start:]) {
			return true
		}

		nextSlash := strings.IndexByte(rel[start:], '/')
		if nextSlash < 0 {
			return false
		}

		// Shift to next segment boundary and retry, emulating "**/" prefix.
		start += nextSlash + 1
	}
}

// matchRegexp matches compiled regexp.
func (g *Glob) matchRegexp(rel string) bool {
	return g.re.MatchString(rel)
}

// globCompiler converts glob source to regexp body.
type globCompiler struct {
	// pairs maps every "{" index to its matching "}" index.
	pairs  map[int]int
	pat    string
	b      strings.Builder
}

// convert appends regexp for pat[start:end].
func (c *globCompiler) convert(start, end int) {
	pat := c.pat

	for i := start; i < end; i++ {
		ch := pat[i]
		switch ch {
		case '\\':
			if i+1 < end {
				i++
				c.b.WriteString(regexp.QuoteMeta(pat[i : i+1]))
				continue
			}
			c.b.WriteString(`\\`)
		case '*':
			if i+1 < end && pat[i+1] == '*' {
				for i+1 < end && pat[i+1] == '*' {
					i++
				}

				// "**/" can match zero or more directories.
				if i+1 < end && pat[i+1] == '/' {
					c.b.WriteString(`(?:.*/)?`)
					i++
					continue
				}

				c.b.WriteString(`.*`)
				continue
			}
			c.b.WriteString(`[^/]*`)
		case '?':
			c.b.WriteString(`[^/]`)
		case '[':
			classEnd := findCharClassEnd(pat, i)
			if classEnd < 0 || classEnd >= end {
				c.b.WriteString(`\[`)
				continue
			}

			appendCharClassRegex(pat, i, classEnd, &c.b)
			i = classEnd
		case '{':
			closeIdx, ok := c.pairs[i]
			if !ok || closeIdx >= end {
				c.b.WriteString(`\{`)
				continue
			}

			c.convertBrace(i+1, closeIdx)
			i = closeIdx
		default:
			c.b.WriteString(regexp.QuoteMeta(pat[i : i+1]))
		}
	}
}

// convertBrace appends regexp for brace body pat[start:end].
func (c *globCompiler) convertBrace(start, end int) {
	body := c.pat[start:end]
	if m := numRangeRE.FindStringSubmatch(body); m != nil {
		lo, errLo := strconv.ParseInt(m[1], 10, 64)
		hi, errHi := strconv.ParseInt(m[2], 10, 64)
		if errLo == nil && errHi == nil {
			if lo > hi {
				lo, hi = hi, lo
			}

			c.b.WriteString(intRangeRegex(lo, hi))
			return
		}
	}

	commas := c.topLevelCommas(start, end)
	if len(commas) == 0 {
		// "{single}" has no alternatives and matches literally.
		c.b.WriteString(`\{`)
		c.convert(start, end)
		c.b.WriteString(`\}`)
		return
	}

	c.b.WriteString(`(?:`)
	from := start
	for _, comma := range commas {
		c.convert(from, comma)
		c.b.WriteByte('|')
		from = comma + 1
	}
	c.convert(from, end)
	c.b.WriteByte(')')
}

// topLevelCommas returns comma indexes of pat[start:end] outside nested braces.
func (c *globCompiler) topLevelCommas(start, end int) []int {
	var commas []int
	for i := start; i < end; i++ {
		switch c.pat[i] {
		case '\\':
			i++
		case '[':
			if classEnd := findCharClassEnd(c.pat, i); classEnd >= 0 && classEnd < end {
				i = classEnd
			}
		case '{':
			if closeIdx, ok := c.pairs[i]; ok && closeIdx < end {
				i = closeIdx
			}
		case ',':
			commas = append(commas, i)
		}
	}

	return commas
}

// matchBraces pairs "{" with "}" and rejects unbalanced input.
func matchBraces(pat string) (map[int]int, error) {
	var (
		pairs map[int]int
		stack []int
	)

	for i := 0; i < len(pat); i++ {
		switch pat[i] {
		case '\\':
			i++
		case '[':
			if classEnd := findCharClassEnd(pat, i); classEnd >= 0 {
				i = classEnd
			}
		case '{':
			stack = append(stack, i)
		case '}':
			if len(stack) == 0 {
				return nil, fmt.Errorf("unexpected '}' at %d", i)
			}

			if pairs == nil {
				pairs = make(map[int]int)
			}

			pairs[stack[len(stack)-1]] = i
			stack = stack[:len(stack)-1]
		}
	}

	if len(stack) > 0 {
		return nil, fmt.Errorf("unclosed '{' at %d", stack[len(stack)-1])
	}

	return pairs, nil
}

// compilePathSegments precompiles slash-separated path pattern segments.
func compilePathSegments(pattern string) []segmentPattern {
	segments := make([]segmentPattern, 0, strings.Count(pattern, "/")+1)
	start := 0

	for i := 0; i <= len(pattern); i++ {
		if i != len(pattern) && pattern[i] != '/' {
			continue
		}

		text := pattern[start:i]
		segments = append(segments, segmentPattern{
			text:     text,
			wildcard: strings.ContainsAny(text, "*?"),
		})
		start = i + 1
	}

	return segments
}

// matchSegmentPattern matches one precompiled segment pattern.
func matchSegmentPattern(pattern segmentPattern, segment string) bool {
	if !pattern.wildcard {
		return segment == pattern.text
	}

	return matchSimpleWildcard(pattern.text, segment)
}

// matchSimpleWildcard matches "*" and "?" wildcard pattern against one segment.
func matchSimpleWildcard(pattern string, input string) bool {
	pIdx := 0
	sIdx := 0
	starPattern := -1
	starInput := 0

	for sIdx < len(input) {
		if pIdx < len(pattern) && (pattern[pIdx] == '?' || pattern[pIdx] == input[sIdx]) {
			pIdx++
			sIdx++
			continue
		}

		if pIdx < len(pattern) && pattern[pIdx] == '*' {
			starPattern = pIdx
			pIdx++
			starInput = sIdx
			continue
		}

		if starPattern >= 0 {
			// Mismatch after a previous star: let '*' consume one more input byte.
			pIdx = starPattern + 1
			starInput++
			sIdx = starInput
			continue
		}

		return false
	}

	for pIdx < len(pattern) && pattern[pIdx] == '*' {
		pIdx++
	}

	return pIdx == len(pattern)
}

// matchPathSegmentsAt matches precompiled path segments starting at candidate boundary index.
func matchPathSegmentsAt(pattern []segmentPattern, candidate string, start int) (int, bool) {
	if start < 0 || start >= len(candidate) {
		return 0, false
	}

	index := start
	for seg := range pattern {
		end := index
		for end < len(candidate) && candidate[end] != '/' {
			end++
		}

		if !matchSegmentPattern(pattern[seg], candidate[index:end]) {
			return 0, false
		}

		index = end
		if seg == len(pattern)-1 {
			return index, true
		}

		if index >= len(candidate) || candidate[index] != '/' {
			return 0, false
		}

		index++
	}

	return index, true
}

// appendCharClassRegex appends glob char class pat[start:end+1] as regex class.
func appendCharClassRegex(pat string, start, end int, b *strings.Builder) {
	b.WriteByte('[')

	idx := start + 1
	if idx < end && (pat[idx] == '!' || pat[idx] == '^') {
		// Negated class still never matches a separator.
		b.WriteString("^/")
		idx++
	}

	if idx < end && pat[idx] == ']' {
		// Leading ']' is literal in both glob and regex classes.
		b.WriteString(`\]`)
		idx++
	}

	for ; idx < end; idx++ {
		switch pat[idx] {
		case '\\', '[':
			b.WriteByte('\\')
			b.WriteByte(pat[idx])
		default:
			b.WriteByte(pat[idx])
		}
	}

	b.WriteByte(']')
}

// findCharClassEnd locates closing bracket for a glob char class.
func findCharClassEnd(pat string, start int) int {
	if start < 0 || start >= len(pat) || pat[start] != '[' {
		return -1
	}

	idx := start + 1
	if idx < len(pat) && (pat[idx] == '!' || pat[idx] == '^') {
		idx++
	}

	if idx < len(pat) && pat[idx] == ']' {
		idx++
	}

	for ; idx < len(pat); idx++ {
		switch pat[idx] {
		case ']':
			return idx
		case '/':
			// Classes never span a path separator.
			return -1
		}
	}

	return -1
}

// intRangeRegex returns a regexp group matching exactly the integers in
// [lo, hi], with an optional sign and leading zeros.
func intRangeRegex(lo, hi int64) string {
	var alts []string
	if hi >= 0 {
		alts = append(alts, `\+?0*(?:`+uintRangeRegex(uint64(max(lo, 0)), uint64(hi))+`)`)
	}

	if lo < 0 {
		// Magnitudes of the negative part, computed without overflowing MinInt64.
		from := uint64(1)
		if hi < 0 {
			from = uint64(-(hi + 1)) + 1
		}

		alts = append(alts, `-0*(?:`+uintRangeRegex(from, uint64(-(lo+1))+1)+`)`)
	}

	return "(?:" + strings.Join(alts, "|") + ")"
}

// uintRangeRegex returns an alternation matching decimal numbers in [lo, hi]
// without leading zeros. Each alternative covers numbers of one length.
func uintRangeRegex(lo, hi uint64) string {
	var alts []string
	start := lo
	for _, stop := range splitUintRange(lo, hi) {
		alts = append(alts, uintSubrangeRegex(start, stop))
		start = stop + 1
	}

	return strings.Join(alts, "|")
}

// splitUintRange returns sorted upper bounds of subranges of [lo, hi] whose
// bounds have equal length and differ in one digit followed by a 0-9 run.
func splitUintRange(lo, hi uint64) []uint64 {
	stops := map[uint64]bool{hi: true}

	for nines := 1; ; nines++ {
		stop := fillNines(lo, nines)
		if stop < lo || stop >= hi {
			break
		}

		stops[stop] = true
	}

	for zeros := 1; zeros < 20; zeros++ {
		p := pow10(zeros)
		// hi+1 may overflow only for MaxUint64, never reached from int64 bounds.
		next := hi + 1
		if next-next%p == 0 {
			break
		}

		stop := next - next%p - 1
		if stop <= lo || stop > hi {
			break
		}

		stops[stop] = true
	}

	sorted := make([]uint64, 0, len(stops))
	for stop := range stops {
		sorted = append(sorted, stop)
	}

	slices.Sort(sorted)
	return sorted
}

// fillNines replaces the last n digits of v with nines.
func fillNines(v uint64, n int) uint64 {
	s := strconv.FormatUint(v, 10)
	if n >= len(s) {
		return pow10(n) - 1
	}

	out, _ := strconv.ParseUint(s[:len(s)-n]+strings.Repeat("9", n), 10, 64)
	return out
}

func pow10(n int) uint64 {
	p := uint64(1)
	for range n {
		p *= 10
	}

	return p
}

// uintSubrangeRegex renders one subrange produced by splitUintRange.
func uintSubrangeRegex(start, stop uint64) string {
	a := strconv.FormatUint(start, 10)
	z := strconv.FormatUint(stop, 10)

	var b strings.Builder
	anyDigits := 0
	for i := 0; i < len(a) && i < len(z); i++ {
		switch {
		case a[i] == z[i]:
			b.WriteByte(a[i])
		case a[i] == '0' && z[i] == '9':
			anyDigits++
		default:
			b.WriteByte('[')
			b.WriteByte(a[i])
			b.WriteByte('-')
			b.WriteByte(z[i])
			b.WriteByte(']')
		}
	}

	switch {
	case anyDigits == 1:
		b.WriteString("[0-9]")
	case anyDigits > 1:
		fmt.Fprintf(&b, "[0-9]{%d}", anyDigits)
	}

	return b.String()
}
