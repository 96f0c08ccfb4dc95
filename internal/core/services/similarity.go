package services

import (
	"strings"
	"unicode"

	"github.com/noamoss/yamly-sub000/internal/core/domain"
)

// Similarity thresholds. These are behavioural contracts of the two
// pipelines, not tuning values: changing them changes which edits are
// reported as moves, renames or independent add/remove pairs.
const (
	// SectionMoveThreshold is the minimum content similarity for an
	// unmatched section pair to be reported as moved.
	SectionMoveThreshold = 0.95

	// KeyRenameThreshold is the minimum value similarity for a
	// removed/added key pair to collapse into a rename or key move.
	KeyRenameThreshold = 0.90

	// ItemMatchHighThreshold is the first-pass similarity floor for
	// array element matching.
	ItemMatchHighThreshold = 0.90

	// ItemMatchLowThreshold is the second-pass similarity floor for
	// array element matching.
	ItemMatchLowThreshold = 0.70

	// similaritySizeCutoff bounds scorer cost on huge values: above
	// this canonical-serialization size the score degrades to exact
	// equality (1.0 or 0.0).
	similaritySizeCutoff = 10 * 1024
)

// similarity returns a symmetric [0,1] token-overlap (Jaccard) score
// between two strings. Two empty token sets score 1.0; disjoint sets
// with at least one token score 0.0.
func similarity(a, b string) float64 {
	if len(a) > similaritySizeCutoff || len(b) > similaritySizeCutoff {
		if a == b {
			return 1.0
		}
		return 0.0
	}

	ta := tokenSet(a)
	tb := tokenSet(b)

	if len(ta) == 0 && len(tb) == 0 {
		return 1.0
	}

	intersection := 0
	for tok := range ta {
		if _, ok := tb[tok]; ok {
			intersection++
		}
	}

	union := len(ta) + len(tb) - intersection
	if union == 0 {
		return 1.0
	}
	return float64(intersection) / float64(union)
}

// valueSimilarity scores two generic values by the token overlap of
// their canonical serializations.
func valueSimilarity(a, b domain.Value) float64 {
	return similarity(a.Canonical(), b.Canonical())
}

// tokenSet splits a string into a set of lower-cased alphanumeric
// tokens.
func tokenSet(s string) map[string]struct{} {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		set[f] = struct{}{}
	}
	return set
}
