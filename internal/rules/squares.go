// FILE: internal/rules/squares.go
package rules

import (
	"sort"
	"strings"

	"gridchess/internal/core"
)

// Squares is a destination set.
type Squares map[core.Position]struct{}

func (s Squares) Add(pos core.Position) {
	s[pos] = struct{}{}
}

func (s Squares) Has(pos core.Position) bool {
	_, ok := s[pos]
	return ok
}

func (s Squares) merge(t Squares) {
	for pos := range t {
		s[pos] = struct{}{}
	}
}

// List returns the positions sorted by coordinate text, for stable
// enumeration and readable diagnostics.
func (s Squares) List() []core.Position {
	out := make([]core.Position, 0, len(s))
	for pos := range s {
		out = append(out, pos)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Rank != out[j].Rank {
			return out[i].Rank < out[j].Rank
		}
		return out[i].File < out[j].File
	})
	return out
}

func (s Squares) String() string {
	parts := make([]string, 0, len(s))
	for _, pos := range s.List() {
		parts = append(parts, pos.String())
	}
	return strings.Join(parts, ", ")
}
