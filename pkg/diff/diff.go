// Package diff computes the reciprocity difference between two canonical
// identifier sets.
//
// The operation is a plain set difference: every identifier that appears in
// the following set but not in the followers set is a non-follower. Results
// are ordered ascending so repeated runs over the same inputs produce
// byte-identical output.
package diff

import (
	"slices"

	"github.com/followdiff/followdiff/pkg/export"
)

// NotFollowingBack returns the identifiers present in following but absent
// from followers, sorted in ascending lexicographic order. Inputs are
// already lowercased by normalization, so the order is case-insensitive by
// construction. Empty inputs follow standard set-difference semantics.
func NotFollowingBack(following, followers export.Set) []string {
	out := make([]string, 0, following.Len())
	for id := range following {
		if !followers.Has(id) {
			out = append(out, id)
		}
	}
	slices.Sort(out)
	return out
}
