package export

import (
	"slices"

	"golang.org/x/exp/maps"
)

// Set is a deduplicated collection of canonical identifiers.
type Set map[string]struct{}

// NewSet creates a Set containing the given identifiers.
// The identifiers are assumed to be canonical already.
func NewSet(ids ...string) Set {
	s := make(Set, len(ids))
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// Add inserts id into the set. Duplicates collapse.
func (s Set) Add(id string) {
	s[id] = struct{}{}
}

// Has reports whether id is in the set.
func (s Set) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Len returns the number of identifiers in the set.
func (s Set) Len() int {
	return len(s)
}

// Sorted returns the identifiers in ascending lexicographic order.
func (s Set) Sorted() []string {
	keys := maps.Keys(s)
	slices.Sort(keys)
	return keys
}
