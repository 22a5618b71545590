// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package resolve

import "github.com/pdiddy/casresolve/pkg/types"

// Seen is the set of identifiers already processed in a run.
type Seen map[types.Identifier]struct{}

// Add inserts id and reports whether it was new.
func (s Seen) Add(id types.Identifier) bool {
	if _, ok := s[id]; ok {
		return false
	}
	s[id] = struct{}{}
	return true
}

// Unique returns ids with repeats removed, keeping first occurrences in order.
func Unique(ids []types.Identifier) []types.Identifier {
	seen := make(Seen, len(ids))
	out := make([]types.Identifier, 0, len(ids))
	for _, id := range ids {
		if seen.Add(id) {
			out = append(out, id)
		}
	}
	return out
}
