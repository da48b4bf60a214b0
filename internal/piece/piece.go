// FILE: internal/piece/piece.go
package piece

import (
	"fmt"

	"gridchess/internal/core"
)

// Piece is a (kind, side) value. Two pawns of the same side compare equal:
// identity never matters for rule purposes.
type Piece struct {
	Kind core.Kind
	Side core.Side
}

func New(kind core.Kind, side core.Side) Piece {
	return Piece{Kind: kind, Side: side}
}

// Code returns the placement-string letter: uppercase for the first side,
// lowercase for the second.
func (p Piece) Code() byte {
	c := p.Kind.Letter()
	if p.Side == core.SideWhite {
		return c - ('a' - 'A')
	}
	return c
}

// FromCode maps a placement-string letter back to a piece. Uppercase
// letters belong to the first side.
func FromCode(c byte) (Piece, bool) {
	side := core.SideBlack
	if c >= 'A' && c <= 'Z' {
		side = core.SideWhite
	}
	kind, ok := core.KindFromLetter(c)
	if !ok {
		return Piece{}, false
	}
	return Piece{Kind: kind, Side: side}, true
}

func (p Piece) String() string {
	return fmt.Sprintf("%s %s", p.Side, p.Kind)
}
