// FILE: internal/rules/history.go
package rules

import (
	"fmt"
	"maps"

	"gridchess/internal/board"
	"gridchess/internal/core"
)

// snapshot captures everything a move can change. Pockets are not part of
// it: captured pieces stay captured across an undo.
type snapshot struct {
	board        *board.Board
	halfMoves    int
	occurrences  map[string]int
	enPassant    core.Position
	hasEnPassant bool
	sincePawn    int
	sinceCapture int
	rights       CastlingRights
}

func (e *Engine) pushSnapshot() {
	e.snapshots = append(e.snapshots, snapshot{
		board:        e.board.Clone(),
		halfMoves:    e.halfMoves,
		occurrences:  maps.Clone(e.occurrences),
		enPassant:    e.enPassant,
		hasEnPassant: e.hasEnPassant,
		sincePawn:    e.sincePawn,
		sinceCapture: e.sinceCapture,
		rights:       e.rights,
	})
}

// Rollback rewinds the given number of committed moves. offset 1 undoes
// the latest move.
func (e *Engine) Rollback(offset int) error {
	if offset < 1 || offset > len(e.snapshots) {
		return fmt.Errorf("cannot roll back %d of %d recorded moves", offset, len(e.snapshots))
	}
	s := e.snapshots[len(e.snapshots)-offset]
	e.board = s.board
	e.halfMoves = s.halfMoves
	e.occurrences = s.occurrences
	e.enPassant = s.enPassant
	e.hasEnPassant = s.hasEnPassant
	e.sincePawn = s.sincePawn
	e.sinceCapture = s.sinceCapture
	e.rights = s.rights
	e.snapshots = e.snapshots[:len(e.snapshots)-offset]
	e.history = e.history[:len(e.history)-offset]
	return nil
}
