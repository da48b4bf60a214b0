// FILE: internal/rules/engine.go
package rules

import (
	"fmt"
	"strconv"
	"strings"

	"gridchess/internal/board"
	"gridchess/internal/core"
	"gridchess/internal/piece"
)

// StartingState is the classic initial layout in state-string notation.
const StartingState = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Wing names a castling direction relative to the king's home square.
type Wing byte

const (
	KingSide  Wing = 'k'
	QueenSide Wing = 'q'
)

// CastlingRights holds the four shrink-only castling permissions. Rights
// are only ever revoked, never regrown.
type CastlingRights struct {
	whiteKing  bool
	whiteQueen bool
	blackKing  bool
	blackQueen bool
}

func allCastlingRights() CastlingRights {
	return CastlingRights{whiteKing: true, whiteQueen: true, blackKing: true, blackQueen: true}
}

func (r CastlingRights) Has(side core.Side, wing Wing) bool {
	switch {
	case side == core.SideWhite && wing == KingSide:
		return r.whiteKing
	case side == core.SideWhite && wing == QueenSide:
		return r.whiteQueen
	case side == core.SideBlack && wing == KingSide:
		return r.blackKing
	case side == core.SideBlack && wing == QueenSide:
		return r.blackQueen
	}
	return false
}

func (r *CastlingRights) revoke(side core.Side, wing Wing) {
	switch {
	case side == core.SideWhite && wing == KingSide:
		r.whiteKing = false
	case side == core.SideWhite && wing == QueenSide:
		r.whiteQueen = false
	case side == core.SideBlack && wing == KingSide:
		r.blackKing = false
	case side == core.SideBlack && wing == QueenSide:
		r.blackQueen = false
	}
}

func (r *CastlingRights) revokeSide(side core.Side) {
	r.revoke(side, KingSide)
	r.revoke(side, QueenSide)
}

func (r CastlingRights) any() bool {
	return r.whiteKing || r.whiteQueen || r.blackKing || r.blackQueen
}

// Letters returns the state-string field, "KQkq" order, "-" when empty.
func (r CastlingRights) Letters() string {
	var sb strings.Builder
	if r.whiteKing {
		sb.WriteByte('K')
	}
	if r.whiteQueen {
		sb.WriteByte('Q')
	}
	if r.blackKing {
		sb.WriteByte('k')
	}
	if r.blackQueen {
		sb.WriteByte('q')
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}

func parseCastlingRights(s string) (CastlingRights, error) {
	var r CastlingRights
	if s == "-" {
		return r, nil
	}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'K':
			r.whiteKing = true
		case 'Q':
			r.whiteQueen = true
		case 'k':
			r.blackKing = true
		case 'q':
			r.blackQueen = true
		default:
			return r, fmt.Errorf("invalid castling rights %q", s)
		}
	}
	return r, nil
}

// Engine enforces the rules for a single game. It owns the board and every
// mutable counter; all mutation happens in Commit and Rollback. Read-only
// queries are safe from multiple readers as long as no mutating call is in
// flight - callers serialize writers.
type Engine struct {
	board        *board.Board
	halfMoves    int
	history      []core.Move
	snapshots    []snapshot
	occurrences  map[string]int
	enPassant    core.Position
	hasEnPassant bool
	sincePawn    int
	sinceCapture int
	rights       CastlingRights
	pocket       map[core.Side][]piece.Piece
}

// New returns an engine holding the classic initial layout with White to
// move.
func New() *Engine {
	b := board.New()
	back := []core.Kind{core.Rook, core.Knight, core.Bishop, core.Queen, core.King, core.Bishop, core.Knight, core.Rook}
	for file, kind := range back {
		b.Put(piece.New(kind, core.SideWhite), core.Position{File: file, Rank: 0})
		b.Put(piece.New(kind, core.SideBlack), core.Position{File: file, Rank: b.Ranks() - 1})
	}
	for file := 0; file < b.Files(); file++ {
		b.Put(piece.New(core.Pawn, core.SideWhite), core.Position{File: file, Rank: 1})
		b.Put(piece.New(core.Pawn, core.SideBlack), core.Position{File: file, Rank: b.Ranks() - 2})
	}
	e := &Engine{
		board:     b,
		halfMoves: 1,
		rights:    allCastlingRights(),
	}
	e.resetTables()
	return e
}

// Resume builds an engine from an exported state string, so games can
// continue from any position.
func Resume(state string) (*Engine, error) {
	parts := strings.Fields(state)
	if len(parts) != 6 {
		return nil, fmt.Errorf("invalid state string: want 6 fields, got %d", len(parts))
	}
	b, err := board.FromPlacement(parts[0])
	if err != nil {
		return nil, err
	}
	if len(parts[1]) != 1 || (parts[1] != "w" && parts[1] != "b") {
		return nil, fmt.Errorf("invalid side to move %q", parts[1])
	}
	rights, err := parseCastlingRights(parts[2])
	if err != nil {
		return nil, err
	}
	e := &Engine{
		board:  b,
		rights: rights,
	}
	if parts[3] != "-" {
		pos, err := core.ParsePosition(parts[3])
		if err != nil {
			return nil, fmt.Errorf("invalid en-passant square %q", parts[3])
		}
		e.enPassant = pos
		e.hasEnPassant = true
	}
	clock, err := strconv.Atoi(parts[4])
	if err != nil || clock < 0 {
		return nil, fmt.Errorf("invalid half-move clock %q", parts[4])
	}
	e.sincePawn = clock
	e.sinceCapture = clock
	fullMoves, err := strconv.Atoi(parts[5])
	if err != nil || fullMoves < 1 {
		return nil, fmt.Errorf("invalid full-move number %q", parts[5])
	}
	e.halfMoves = fullMoves*2 - 1
	if core.Side(parts[1][0]) == core.SideBlack {
		e.halfMoves++
	}
	e.resetTables()
	return e, nil
}

// resetTables clears histories and seeds the repetition table with the
// current position, so the starting occurrence counts toward threefold.
func (e *Engine) resetTables() {
	e.history = nil
	e.snapshots = nil
	e.pocket = map[core.Side][]piece.Piece{
		core.SideWhite: nil,
		core.SideBlack: nil,
	}
	e.occurrences = map[string]int{e.signature(): 1}
}

// Board exposes the live board for read-only collaborators.
func (e *Engine) Board() *board.Board {
	return e.board
}

// HalfMoves returns the half-move counter; it starts at 1 and advances by
// exactly 1 per committed move.
func (e *Engine) HalfMoves() int {
	return e.halfMoves
}

// FullMoves returns the full-move number shown in the state string.
func (e *Engine) FullMoves() int {
	return (e.halfMoves + 1) / len(core.Sides())
}

// OnMove returns the side whose turn it is.
func (e *Engine) OnMove() core.Side {
	return core.Sides()[(e.halfMoves-1)%len(core.Sides())]
}

// EnPassant returns the current en-passant target, valid for one ply after
// a two-square pawn advance.
func (e *Engine) EnPassant() (core.Position, bool) {
	return e.enPassant, e.hasEnPassant
}

// CastlingAllowed reports whether a side still holds the given wing right.
func (e *Engine) CastlingAllowed(side core.Side, wing Wing) bool {
	return e.rights.Has(side, wing)
}

// History returns the committed moves in order.
func (e *Engine) History() []core.Move {
	out := make([]core.Move, len(e.history))
	copy(out, e.history)
	return out
}

// LastMove returns the most recent committed move, if any.
func (e *Engine) LastMove() (core.Move, bool) {
	if len(e.history) == 0 {
		return core.Move{}, false
	}
	return e.history[len(e.history)-1], true
}

// Pocket returns the pieces a side has captured so far.
func (e *Engine) Pocket(side core.Side) []piece.Piece {
	out := make([]piece.Piece, len(e.pocket[side]))
	copy(out, e.pocket[side])
	return out
}

// StateString exports the full game state: placement, side to move,
// castling rights, en-passant target, half-move clock and full-move number.
func (e *Engine) StateString() string {
	ep := "-"
	if e.hasEnPassant {
		ep = e.enPassant.String()
	}
	clock := e.sincePawn
	if e.sinceCapture < clock {
		clock = e.sinceCapture
	}
	return fmt.Sprintf("%s %c %s %s %d %d",
		e.board.PlacementString(), e.OnMove().Char(), e.rights.Letters(), ep, clock, e.FullMoves())
}

// signature is the repetition key. It covers placement, side to move,
// castling rights and the en-passant target: positions differing in any of
// these are distinct for threefold detection.
func (e *Engine) signature() string {
	ep := "-"
	if e.hasEnPassant {
		ep = e.enPassant.String()
	}
	return fmt.Sprintf("%s %c %s %s",
		e.board.PlacementString(), e.OnMove().Char(), e.rights.Letters(), ep)
}

// Home-square geometry, derived from board dimensions so the engine is not
// tied to an 8x8 grid.

func (e *Engine) homeRank(side core.Side) int {
	if side == core.SideWhite {
		return 0
	}
	return e.board.Ranks() - 1
}

func (e *Engine) pawnRank(side core.Side) int {
	if side == core.SideWhite {
		return 1
	}
	return e.board.Ranks() - 2
}

// promotionRank is the farthest rank from the side's home.
func (e *Engine) promotionRank(side core.Side) int {
	if side == core.SideWhite {
		return e.board.Ranks() - 1
	}
	return 0
}

func (e *Engine) forward(side core.Side) int {
	if side == core.SideWhite {
		return 1
	}
	return -1
}

func (e *Engine) kingHome(side core.Side) core.Position {
	return core.Position{File: e.board.Files() / 2, Rank: e.homeRank(side)}
}

func (e *Engine) rookHome(side core.Side, wing Wing) core.Position {
	file := 0
	if wing == KingSide {
		file = e.board.Files() - 1
	}
	return core.Position{File: file, Rank: e.homeRank(side)}
}
