// FILE: internal/board/board.go
package board

import (
	"fmt"
	"strconv"
	"strings"

	"gridchess/internal/core"
	"gridchess/internal/piece"
)

// Placement pairs an occupied square with its piece.
type Placement struct {
	Pos   core.Position
	Piece piece.Piece
}

// Board is a mutable square-to-piece mapping for a rectangular grid.
// It knows nothing about rules; the engine owns all mutation policy.
type Board struct {
	files   int
	ranks   int
	squares map[core.Position]piece.Piece
}

// New returns an empty 8x8 board.
func New() *Board {
	return NewSized(8, 8)
}

// NewSized returns an empty board with the given dimensions.
func NewSized(files, ranks int) *Board {
	return &Board{
		files:   files,
		ranks:   ranks,
		squares: make(map[core.Position]piece.Piece),
	}
}

func (b *Board) Files() int { return b.files }
func (b *Board) Ranks() int { return b.ranks }

// Contains reports whether the position lies on the board.
func (b *Board) Contains(pos core.Position) bool {
	return pos.File >= 0 && pos.File < b.files && pos.Rank >= 0 && pos.Rank < b.ranks
}

// Get returns the piece on the square, if any.
func (b *Board) Get(pos core.Position) (piece.Piece, bool) {
	pc, ok := b.squares[pos]
	return pc, ok
}

// Put places a piece and returns any piece it displaced.
func (b *Board) Put(pc piece.Piece, pos core.Position) (piece.Piece, bool) {
	prev, ok := b.squares[pos]
	b.squares[pos] = pc
	return prev, ok
}

// Remove clears a square and returns the piece that was there, if any.
func (b *Board) Remove(pos core.Position) (piece.Piece, bool) {
	pc, ok := b.squares[pos]
	if ok {
		delete(b.squares, pos)
	}
	return pc, ok
}

// Pieces enumerates every occupied square, top rank first then by file,
// matching placement-string order.
func (b *Board) Pieces() []Placement {
	out := make([]Placement, 0, len(b.squares))
	for rank := b.ranks - 1; rank >= 0; rank-- {
		for file := 0; file < b.files; file++ {
			pos := core.Position{File: file, Rank: rank}
			if pc, ok := b.squares[pos]; ok {
				out = append(out, Placement{Pos: pos, Piece: pc})
			}
		}
	}
	return out
}

// Find returns every square occupied by pieces equal to the given one.
func (b *Board) Find(pc piece.Piece) []core.Position {
	var out []core.Position
	for _, pl := range b.Pieces() {
		if pl.Piece == pc {
			out = append(out, pl.Pos)
		}
	}
	return out
}

// Clone returns an independent deep copy.
func (b *Board) Clone() *Board {
	c := NewSized(b.files, b.ranks)
	for pos, pc := range b.squares {
		c.squares[pos] = pc
	}
	return c
}

// PlacementString exports the board field of the state string: ranks from
// the top, pieces as letters, empty runs as decimal counts.
func (b *Board) PlacementString() string {
	var sb strings.Builder
	for rank := b.ranks - 1; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < b.files; file++ {
			if pc, ok := b.squares[core.Position{File: file, Rank: rank}]; ok {
				if empty > 0 {
					sb.WriteString(strconv.Itoa(empty))
					empty = 0
				}
				sb.WriteByte(pc.Code())
			} else {
				empty++
			}
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

// FromPlacement builds a board from a placement string, inferring the
// dimensions from the rank count and rank widths.
func FromPlacement(s string) (*Board, error) {
	rows := strings.Split(s, "/")
	if len(rows) < 2 {
		return nil, fmt.Errorf("invalid placement %q: want at least 2 ranks", s)
	}
	ranks := len(rows)
	b := &Board{ranks: ranks, squares: make(map[core.Position]piece.Piece)}
	for i, row := range rows {
		rank := ranks - 1 - i
		file := 0
		for j := 0; j < len(row); j++ {
			c := row[j]
			if c >= '0' && c <= '9' {
				run := 0
				for j < len(row) && row[j] >= '0' && row[j] <= '9' {
					run = run*10 + int(row[j]-'0')
					j++
				}
				j--
				file += run
				continue
			}
			pc, ok := piece.FromCode(c)
			if !ok {
				return nil, fmt.Errorf("invalid piece code %q in placement rank %d", string(c), rank+1)
			}
			b.squares[core.Position{File: file, Rank: rank}] = pc
			file++
		}
		if b.files == 0 {
			b.files = file
		} else if file != b.files {
			return nil, fmt.Errorf("invalid placement: rank %d spans %d files, want %d", rank+1, file, b.files)
		}
	}
	if b.files == 0 {
		return nil, fmt.Errorf("invalid placement %q: empty ranks", s)
	}
	return b, nil
}

// ASCII renders the board for terminals and the board endpoint.
func (b *Board) ASCII() string {
	var sb strings.Builder
	header := func() {
		sb.WriteString(" ")
		for file := 0; file < b.files; file++ {
			sb.WriteString(" " + core.FileLetters(file))
		}
		sb.WriteByte('\n')
	}
	header()
	for rank := b.ranks - 1; rank >= 0; rank-- {
		sb.WriteString(strconv.Itoa(rank + 1))
		for file := 0; file < b.files; file++ {
			if pc, ok := b.squares[core.Position{File: file, Rank: rank}]; ok {
				sb.WriteString(" " + string(pc.Code()))
			} else {
				sb.WriteString(" .")
			}
		}
		sb.WriteString(" " + strconv.Itoa(rank+1) + "\n")
	}
	header()
	return strings.TrimRight(sb.String(), "\n")
}
