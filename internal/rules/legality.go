// FILE: internal/rules/legality.go
package rules

import (
	"fmt"

	"gridchess/internal/core"
	"gridchess/internal/piece"
)

// AssertLegal checks a move against the current position without mutating
// it. It returns nil when the move could be committed, or a wrapped
// sentinel describing the first violated rule.
func (e *Engine) AssertLegal(m core.Move) error {
	pc, ok := e.board.Get(m.From)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNoPiece, m.From)
	}
	reachable := Squares{}
	reachable.merge(e.plainMoves(m.From, pc))
	reachable.merge(e.plainCaptures(m.From, pc))
	reachable.merge(e.specialMoves(m.From, pc))
	if !reachable.Has(m.To) {
		return fmt.Errorf("%w: %s on %s reaches [%s]", ErrInvalidMove, pc, m.From, reachable)
	}

	scratch := &Engine{
		board:        e.board.Clone(),
		enPassant:    e.enPassant,
		hasEnPassant: e.hasEnPassant,
		rights:       e.rights,
		halfMoves:    e.halfMoves,
	}
	moved, _ := scratch.board.Remove(m.From)
	if moved.Kind == core.Pawn && scratch.hasEnPassant && m.To == scratch.enPassant {
		victim := core.Position{File: m.To.File, Rank: m.To.Rank - e.forward(pc.Side)}
		scratch.board.Remove(victim)
	}
	scratch.board.Put(moved, m.To)
	for _, kingPos := range scratch.board.Find(piece.New(core.King, pc.Side)) {
		attacked := scratch.AttackedFieldsBySides(opponentsOf(pc.Side)...)
		if attacked.Has(kingPos) {
			attackers := Squares{}
			for pos := range scratch.WhoCanStepHere(kingPos) {
				if occupant, _ := scratch.board.Get(pos); occupant.Side != pc.Side {
					attackers.Add(pos)
				}
			}
			return fmt.Errorf("%w: king on %s attacked from [%s]", ErrCausesCheck, kingPos, attackers)
		}
	}

	promoting := pc.Kind == core.Pawn && m.To.Rank == e.promotionRank(pc.Side)
	if promoting {
		switch m.Promotion {
		case core.Queen, core.Rook, core.Bishop, core.Knight:
		default:
			return fmt.Errorf("%w: pawn reaching %s must name queen, rook, bishop or knight", ErrInvalidPromotion, m.To)
		}
	} else if m.Promotion != core.KindNone {
		return fmt.Errorf("%w: %s is not a promoting move", ErrInvalidPromotion, m)
	}
	return nil
}

// Commit validates and applies a move for the side on turn, returning the
// captured piece if any. On error the position is unchanged.
func (e *Engine) Commit(m core.Move) (*piece.Piece, error) {
	if err := e.AssertLegal(m); err != nil {
		return nil, err
	}
	pc, _ := e.board.Get(m.From)
	if pc.Side != e.OnMove() {
		return nil, fmt.Errorf("%w: %s to move", ErrWrongTurn, e.OnMove())
	}

	e.pushSnapshot()

	moved, _ := e.board.Remove(m.From)
	var taken *piece.Piece
	if displaced, captured := e.board.Put(moved, m.To); captured {
		taken = &displaced
	}

	// En-passant capture removes the pawn behind the target square; a
	// fresh two-square advance opens the window for exactly one ply.
	if moved.Kind == core.Pawn && e.hasEnPassant && m.To == e.enPassant {
		if victim, removed := e.board.Remove(core.Position{File: m.To.File, Rank: m.To.Rank - e.forward(moved.Side)}); removed {
			taken = &victim
		}
	}
	if moved.Kind == core.Pawn && abs(m.To.Rank-m.From.Rank) == 2 {
		e.enPassant = core.Position{File: m.From.File, Rank: m.From.Rank + e.forward(moved.Side)}
		e.hasEnPassant = true
	} else {
		e.hasEnPassant = false
	}

	if moved.Kind == core.Pawn {
		e.sincePawn = 0
	} else {
		e.sincePawn++
	}

	if m.Promotion != core.KindNone {
		e.board.Put(piece.New(m.Promotion, moved.Side), m.To)
	}

	// Castling: the king moved two files, bring the rook across.
	if moved.Kind == core.King && abs(m.To.File-m.From.File) == 2 {
		wing := KingSide
		if m.To.File < m.From.File {
			wing = QueenSide
		}
		if rook, ok := e.board.Remove(e.rookHome(moved.Side, wing)); ok {
			step := 1
			if wing == QueenSide {
				step = -1
			}
			e.board.Put(rook, core.Position{File: m.From.File + step, Rank: m.From.Rank})
		}
	}

	if taken != nil {
		e.sinceCapture = 0
		e.pocket[moved.Side] = append(e.pocket[moved.Side], *taken)
	} else {
		e.sinceCapture++
	}

	e.updateCastlingRights(m)
	e.history = append(e.history, m)
	e.halfMoves++
	e.occurrences[e.signature()]++
	return taken, nil
}

// updateCastlingRights shrinks rights when a king or rook leaves its home
// square, or when a rook's home square is captured onto.
func (e *Engine) updateCastlingRights(m core.Move) {
	if !e.rights.any() {
		return
	}
	for _, side := range core.Sides() {
		if m.From == e.kingHome(side) {
			e.rights.revokeSide(side)
		}
		for _, wing := range []Wing{KingSide, QueenSide} {
			home := e.rookHome(side, wing)
			if m.From == home || m.To == home {
				e.rights.revoke(side, wing)
			}
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
