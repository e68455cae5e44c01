package ui

import (
	"sort"
	"strings"
)

const (
	// DefaultMaxDistance is the default maximum edit distance to consider for fuzzy matching
	DefaultMaxDistance = 3
	// DefaultMaxSuggestions is the default maximum number of suggestions to return
	DefaultMaxSuggestions = 3
)

// FuzzyMatchOptions configures fuzzy matching behavior
type FuzzyMatchOptions struct {
	MaxDistance    int  // Maximum Levenshtein distance to consider (default: 3)
	MaxSuggestions int  // Maximum number of suggestions to return (default: 3)
	CaseSensitive  bool // Whether matching is case-sensitive (default: false)
}

type suggestion struct {
	value    string
	distance int
}

// FindSimilar returns the candidates closest to target, nearest first.
// Candidates at the same distance keep their input order.
//
// Example:
//
//	FindSimilar("textDocument/hovr", methods.LSP().Methods(), nil)
//	// Returns: ["textDocument/hover"]
func FindSimilar(target string, candidates []string, opts *FuzzyMatchOptions) []string {
	o := FuzzyMatchOptions{}
	if opts != nil {
		o = *opts
	}
	if o.MaxDistance == 0 {
		o.MaxDistance = DefaultMaxDistance
	}
	if o.MaxSuggestions == 0 {
		o.MaxSuggestions = DefaultMaxSuggestions
	}

	targetCmp := target
	if !o.CaseSensitive {
		targetCmp = strings.ToLower(target)
	}

	var suggestions []suggestion
	for _, candidate := range candidates {
		candidateCmp := candidate
		if !o.CaseSensitive {
			candidateCmp = strings.ToLower(candidate)
		}

		if dist := LevenshteinDistance(targetCmp, candidateCmp); dist <= o.MaxDistance {
			suggestions = append(suggestions, suggestion{value: candidate, distance: dist})
		}
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].distance < suggestions[j].distance
	})

	result := make([]string, 0, o.MaxSuggestions)
	for i := 0; i < len(suggestions) && i < o.MaxSuggestions; i++ {
		result = append(result, suggestions[i].value)
	}
	return result
}

// LevenshteinDistance calculates the Levenshtein distance between two strings:
// the minimum number of single-rune insertions, deletions or substitutions
// that turn one into the other.
//
// Example:
//
//	LevenshteinDistance("kitten", "sitting") // Returns: 3
func LevenshteinDistance(s1, s2 string) int {
	a, b := []rune(s1), []rune(s2)
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	// two rows are enough
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min3(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}

func min3(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}

// FindBestMatch returns the single best match for a target string
// Returns an empty string if no match is found within the max distance
func FindBestMatch(target string, candidates []string, opts *FuzzyMatchOptions) string {
	matches := FindSimilar(target, candidates, opts)
	if len(matches) == 0 {
		return ""
	}
	return matches[0]
}
