// FILE: internal/rules/outcome.go
package rules

import (
	"errors"
	"sort"

	"gridchess/internal/core"
	"gridchess/internal/piece"
)

// fiftyMoveThreshold is measured in half-moves.
const fiftyMoveThreshold = 100

var promotionKinds = []core.Kind{core.Queen, core.Rook, core.Bishop, core.Knight}

// InCheck reports whether the side's king is currently attacked.
func (e *Engine) InCheck(side core.Side) bool {
	attacked := e.AttackedFieldsBySides(opponentsOf(side)...)
	for _, kingPos := range e.board.Find(piece.New(core.King, side)) {
		if attacked.Has(kingPos) {
			return true
		}
	}
	return false
}

// Outcome inspects the position and reports the winners and a reason once
// the game is over. The winners slice is nil while the game continues; a
// draw returns every side.
func (e *Engine) Outcome() ([]core.Side, string) {
	if e.insufficientMaterial() {
		return allSides(), "insufficient material"
	}
	if e.sincePawn >= fiftyMoveThreshold && e.sinceCapture >= fiftyMoveThreshold {
		return allSides(), "fifty-move rule"
	}
	for _, count := range e.occurrences {
		if count >= 3 {
			return allSides(), "threefold repetition"
		}
	}
	side := e.OnMove()
	if !e.CanMove(side) {
		if e.InCheck(side) {
			return opponentsOf(side), "checkmate"
		}
		return allSides(), "stalemate"
	}
	return nil, ""
}

// insufficientMaterial is true when at most three pieces remain and every
// non-king among them is a minor piece. Such positions cannot be won.
func (e *Engine) insufficientMaterial() bool {
	placements := e.board.Pieces()
	if len(placements) > 3 {
		return false
	}
	for _, pl := range placements {
		switch pl.Piece.Kind {
		case core.King, core.Bishop, core.Knight:
		default:
			return false
		}
	}
	return true
}

// CanMove reports whether the side has at least one legal move. A pawn
// push that only fails on the missing promotion choice still counts.
func (e *Engine) CanMove(side core.Side) bool {
	for _, pl := range e.board.Pieces() {
		if pl.Piece.Side != side {
			continue
		}
		targets := Squares{}
		targets.merge(e.plainCaptures(pl.Pos, pl.Piece))
		targets.merge(e.plainMoves(pl.Pos, pl.Piece))
		targets.merge(e.specialMoves(pl.Pos, pl.Piece))
		for _, to := range targets.List() {
			err := e.AssertLegal(core.Move{From: pl.Pos, To: to})
			if err == nil || errors.Is(err, ErrInvalidPromotion) {
				return true
			}
		}
	}
	return false
}

// AllLegalMoves enumerates every legal move for the given sides, or for
// the side on move when none are named. Promotions appear once per piece
// choice.
func (e *Engine) AllLegalMoves(sides ...core.Side) []core.Move {
	if len(sides) == 0 {
		sides = []core.Side{e.OnMove()}
	}
	var out []core.Move
	for _, pl := range e.board.Pieces() {
		wanted := false
		for _, side := range sides {
			if pl.Piece.Side == side {
				wanted = true
				break
			}
		}
		if !wanted {
			continue
		}
		targets := Squares{}
		targets.merge(e.plainMoves(pl.Pos, pl.Piece))
		targets.merge(e.plainCaptures(pl.Pos, pl.Piece))
		targets.merge(e.specialMoves(pl.Pos, pl.Piece))
		for _, to := range targets.List() {
			m := core.Move{From: pl.Pos, To: to}
			err := e.AssertLegal(m)
			switch {
			case err == nil:
				out = append(out, m)
			case errors.Is(err, ErrInvalidPromotion):
				for _, kind := range promotionKinds {
					promo := core.Move{From: pl.Pos, To: to, Promotion: kind}
					if e.AssertLegal(promo) == nil {
						out = append(out, promo)
					}
				}
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].String() < out[j].String()
	})
	return out
}

func allSides() []core.Side {
	sides := core.Sides()
	out := make([]core.Side, len(sides))
	copy(out, sides[:])
	return out
}
