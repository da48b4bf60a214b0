// FILE: internal/rules/movegen.go
package rules

import (
	"gridchess/internal/core"
	"gridchess/internal/piece"
)

type vector struct {
	dx, dy int
}

// expandVector turns a descriptor's base vector into the concrete set of
// directions it generates. Symmetric descriptors fan out into every
// rotation and reflection; one-directional descriptors (pawns) are flipped
// for Black so "forward" always points away from the side's home rank.
func expandVector(d piece.Descriptor, side core.Side) []vector {
	if !d.AllDirections {
		v := vector{dx: d.DX, dy: d.DY}
		if side == core.SideBlack {
			v.dy = -v.dy
		}
		return []vector{v}
	}
	x, y := d.DX, d.DY
	candidates := []vector{
		{x, y}, {y, x}, {y, -x}, {x, -y},
		{-x, -y}, {-y, -x}, {-y, x}, {-x, y},
	}
	seen := make(map[vector]struct{}, len(candidates))
	out := make([]vector, 0, len(candidates))
	for _, v := range candidates {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// rayLimit caps the number of steps along a direction. Unbounded
// descriptors are limited by the board diagonal.
func (e *Engine) rayLimit(d piece.Descriptor) int {
	if d.Range != piece.RangeUnbounded {
		return d.Range
	}
	limit := e.board.Files()
	if e.board.Ranks() > limit {
		limit = e.board.Ranks()
	}
	return limit
}

// PlainMoves returns the squares the piece on pos can step to without
// capturing. Rays stop at the first occupied square, friend or enemy.
func (e *Engine) PlainMoves(pos core.Position) Squares {
	pc, ok := e.board.Get(pos)
	if !ok {
		return Squares{}
	}
	return e.plainMoves(pos, pc)
}

func (e *Engine) plainMoves(pos core.Position, pc piece.Piece) Squares {
	out := Squares{}
	profile := piece.ProfileOf(pc.Kind)
	for _, d := range profile.Moves {
		for _, v := range expandVector(d, pc.Side) {
			for step := 1; step <= e.rayLimit(d); step++ {
				target := core.Position{File: pos.File + v.dx*step, Rank: pos.Rank + v.dy*step}
				if !e.board.Contains(target) {
					break
				}
				if _, occupied := e.board.Get(target); occupied {
					break
				}
				out.Add(target)
			}
		}
	}
	return out
}

// PlainCaptures returns the squares the piece on pos can capture on,
// including the en-passant target for pawns while the window is open.
func (e *Engine) PlainCaptures(pos core.Position) Squares {
	pc, ok := e.board.Get(pos)
	if !ok {
		return Squares{}
	}
	return e.plainCaptures(pos, pc)
}

func (e *Engine) plainCaptures(pos core.Position, pc piece.Piece) Squares {
	out := Squares{}
	reach := e.attackedFields(pos, pc)
	for target := range reach {
		victim, occupied := e.board.Get(target)
		if occupied && victim.Side != pc.Side {
			out.Add(target)
			continue
		}
		if pc.Kind == core.Pawn && e.hasEnPassant && target == e.enPassant {
			out.Add(target)
		}
	}
	return out
}

// attackedFields returns every square the piece covers along its capture
// descriptors. Empty squares along a ray are covered too; the ray stops at
// the first occupant, which is covered only when hostile.
func (e *Engine) attackedFields(pos core.Position, pc piece.Piece) Squares {
	out := Squares{}
	profile := piece.ProfileOf(pc.Kind)
	for _, d := range profile.Captures {
		for _, v := range expandVector(d, pc.Side) {
			pastCapture := false
			for step := 1; step <= e.rayLimit(d); step++ {
				target := core.Position{File: pos.File + v.dx*step, Rank: pos.Rank + v.dy*step}
				if !e.board.Contains(target) {
					break
				}
				occupant, occupied := e.board.Get(target)
				if !occupied {
					out.Add(target)
					continue
				}
				// A second occupant past a capture is never reachable.
				if pastCapture || occupant.Side == pc.Side {
					break
				}
				out.Add(target)
				if d.StopAfterCapture {
					break
				}
				pastCapture = true
			}
		}
	}
	return out
}

// AttackedFieldsBySides returns the union of squares covered by every
// piece of the given sides.
func (e *Engine) AttackedFieldsBySides(sides ...core.Side) Squares {
	out := Squares{}
	for _, pl := range e.board.Pieces() {
		for _, side := range sides {
			if pl.Piece.Side == side {
				out.merge(e.attackedFields(pl.Pos, pl.Piece))
				break
			}
		}
	}
	return out
}

// WhoCanStepHere maps the origin of every piece covering target to the
// piece itself, regardless of side.
func (e *Engine) WhoCanStepHere(target core.Position) map[core.Position]piece.Piece {
	out := make(map[core.Position]piece.Piece)
	for _, pl := range e.board.Pieces() {
		if e.attackedFields(pl.Pos, pl.Piece).Has(target) {
			out[pl.Pos] = pl.Piece
		}
	}
	return out
}

// SpecialMoves returns the destinations of the non-ray moves: the pawn
// double step from its home rank and castling.
func (e *Engine) SpecialMoves(pos core.Position) Squares {
	pc, ok := e.board.Get(pos)
	if !ok {
		return Squares{}
	}
	return e.specialMoves(pos, pc)
}

func (e *Engine) specialMoves(pos core.Position, pc piece.Piece) Squares {
	out := Squares{}
	switch pc.Kind {
	case core.Pawn:
		if pos.Rank != e.pawnRank(pc.Side) {
			break
		}
		dir := e.forward(pc.Side)
		one := core.Position{File: pos.File, Rank: pos.Rank + dir}
		two := core.Position{File: pos.File, Rank: pos.Rank + 2*dir}
		if !e.board.Contains(two) {
			break
		}
		_, blockedOne := e.board.Get(one)
		_, blockedTwo := e.board.Get(two)
		if !blockedOne && !blockedTwo {
			out.Add(two)
		}
	case core.King:
		home := e.kingHome(pc.Side)
		if pos != home {
			break
		}
		for _, wing := range []Wing{KingSide, QueenSide} {
			if target, ok := e.castlingTarget(pc.Side, wing); ok {
				out.Add(target)
			}
		}
	}
	return out
}

// castlingTarget reports whether the side can castle on the wing right
// now: the right is held, the rook sits on its home square, the squares
// between king and rook are clear, and neither the king's square nor any
// square it crosses or lands on is attacked.
func (e *Engine) castlingTarget(side core.Side, wing Wing) (core.Position, bool) {
	if !e.rights.Has(side, wing) {
		return core.Position{}, false
	}
	home := e.kingHome(side)
	rookPos := e.rookHome(side, wing)
	rook, ok := e.board.Get(rookPos)
	if !ok || rook.Kind != core.Rook || rook.Side != side {
		return core.Position{}, false
	}
	step := 1
	if wing == QueenSide {
		step = -1
	}
	for file := home.File + step; file != rookPos.File; file += step {
		if _, occupied := e.board.Get(core.Position{File: file, Rank: home.Rank}); occupied {
			return core.Position{}, false
		}
	}
	attacked := e.AttackedFieldsBySides(opponentsOf(side)...)
	target := core.Position{File: home.File + 2*step, Rank: home.Rank}
	for _, sq := range []core.Position{home, {File: home.File + step, Rank: home.Rank}, target} {
		if attacked.Has(sq) {
			return core.Position{}, false
		}
	}
	return target, true
}

func opponentsOf(side core.Side) []core.Side {
	out := make([]core.Side, 0, len(core.Sides())-1)
	for _, s := range core.Sides() {
		if s != side {
			out = append(out, s)
		}
	}
	return out
}
