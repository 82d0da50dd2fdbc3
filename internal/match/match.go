// Package match resolves free-form user text against provider candidate
// lists using case-insensitive substring matching.
package match

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/mesh-intelligence/nextrip/pkg/types"
)

// fold returns the case-folded form of s. A new Caser is created per call
// because Casers carry state and must not be shared.
func fold(s string) string {
	return cases.Fold().String(s)
}

// Contains reports whether query is a case-insensitive substring of label.
func Contains(label, query string) bool {
	return strings.Contains(fold(label), fold(query))
}

// First returns the first candidate, in the given order, whose label
// contains query case-insensitively. The second result is false when no
// candidate matches.
func First(candidates []types.Candidate, query string) (types.Candidate, bool) {
	q := fold(query)
	for _, c := range candidates {
		if strings.Contains(fold(c.Label), q) {
			return c, true
		}
	}
	return types.Candidate{}, false
}
