// Package strings provides string manipulation utilities.
package strings

import (
	"strings"
)

// Dedupe removes exact duplicates from a slice. Values are not trimmed and empty
// strings are kept, so the result matches the same set of rows as the input.
// Order of first occurrence is preserved.
//
// Example:
//
//	Dedupe([]string{"Health", "health", "Health"})
//	// Returns: []string{"Health", "health"}
func Dedupe(values []string) []string {
	if len(values) == 0 {
		return values
	}

	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))

	for _, v := range values {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			result = append(result, v)
		}
	}

	return result
}

// DedupeFold is like Dedupe but treats values that differ only in case as duplicates.
// The first spelling seen is kept. Useful for case-insensitive filters.
//
// Example:
//
//	DedupeFold([]string{"HR", "s", "hr"})
//	// Returns: []string{"HR", "s"}
func DedupeFold(values []string) []string {
	if len(values) == 0 {
		return values
	}

	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))

	for _, v := range values {
		key := strings.ToLower(v)
		if _, ok := seen[key]; !ok {
			seen[key] = struct{}{}
			result = append(result, v)
		}
	}

	return result
}
