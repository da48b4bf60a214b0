// FILE: internal/rules/crosscheck_test.go
package rules

import (
	"sort"
	"testing"

	"github.com/dylhunn/dragontoothmg"
)

// Reference legal-move comparison against a bitboard generator. Positions
// are the usual perft suspects plus a few mid-game states.
func TestLegalMovesMatchReferenceGenerator(t *testing.T) {
	states := []string{
		StartingState,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
		"7k/4P3/8/8/8/8/8/4K3 w - - 0 1",
	}
	for _, state := range states {
		e := mustResume(t, state)
		var mine []string
		for _, m := range e.AllLegalMoves(e.OnMove()) {
			mine = append(mine, m.String())
		}

		ref := dragontoothmg.ParseFen(state)
		var theirs []string
		for _, m := range ref.GenerateLegalMoves() {
			theirs = append(theirs, m.String())
		}
		sort.Strings(theirs)

		if len(mine) != len(theirs) {
			t.Errorf("%s: %d moves, reference has %d\nmine:  %v\ntheirs: %v",
				state, len(mine), len(theirs), mine, theirs)
			continue
		}
		for i := range mine {
			if mine[i] != theirs[i] {
				t.Errorf("%s: move %d = %s, reference %s", state, i, mine[i], theirs[i])
			}
		}
	}
}
