package langsupport

import (
	"regexp"
	"sort"
)

// ImportPattern pairs a compiled pattern with an optional post-processing
// step. The first capture group of the pattern is the raw reference text.
type ImportPattern struct {
	Regexp *regexp.Regexp

	// Expand splits or rewrites one raw match into zero or more reference
	// strings (e.g. comma-separated Python imports). Nil keeps the match
	// as-is.
	Expand func(raw string) []string
}

type patternMatch struct {
	offset  int
	ordinal int
	raw     string
	expand  func(string) []string
}

// ExtractImports runs every pattern over the source and returns the raw
// references in textual order, deduplicated by first occurrence. Textual
// order is obtained by merging all matches on their byte offsets, so the
// result is stable for identical input.
func ExtractImports(source []byte, patterns []ImportPattern) []string {
	var matches []patternMatch

	for ordinal, pattern := range patterns {
		locations := pattern.Regexp.FindAllSubmatchIndex(source, -1)
		for _, loc := range locations {
			if len(loc) < 4 || loc[2] < 0 {
				continue
			}
			matches = append(matches, patternMatch{
				offset:  loc[0],
				ordinal: ordinal,
				raw:     string(source[loc[2]:loc[3]]),
				expand:  pattern.Expand,
			})
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].offset != matches[j].offset {
			return matches[i].offset < matches[j].offset
		}
		return matches[i].ordinal < matches[j].ordinal
	})

	seen := make(map[string]bool)
	result := make([]string, 0, len(matches))
	for _, m := range matches {
		refs := []string{m.raw}
		if m.expand != nil {
			refs = m.expand(m.raw)
		}
		for _, ref := range refs {
			if ref == "" || seen[ref] {
				continue
			}
			seen[ref] = true
			result = append(result, ref)
		}
	}

	return result
}
