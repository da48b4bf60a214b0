// FILE: internal/core/core.go
package core

// Side identifies one of the two players. Values match the side-to-move
// character of the state-string notation.
type Side byte

const (
	SideWhite Side = 'w'
	SideBlack Side = 'b'
)

// Sides returns both sides in move order: the first side moves on odd
// half-moves.
func Sides() [2]Side {
	return [2]Side{SideWhite, SideBlack}
}

func (s Side) String() string {
	switch s {
	case SideWhite:
		return "white"
	case SideBlack:
		return "black"
	default:
		return "none"
	}
}

// Char returns the one-letter state-string code for the side.
func (s Side) Char() byte {
	return byte(s)
}

func (s Side) Opposite() Side {
	if s == SideWhite {
		return SideBlack
	}
	return SideWhite
}

// Kind identifies a piece kind. Values are the lowercase one-letter codes
// used in placement strings and promotion suffixes.
type Kind byte

const (
	KindNone Kind = 0

	King   Kind = 'k'
	Queen  Kind = 'q'
	Rook   Kind = 'r'
	Bishop Kind = 'b'
	Knight Kind = 'n'
	Pawn   Kind = 'p'
)

func (k Kind) Valid() bool {
	switch k {
	case King, Queen, Rook, Bishop, Knight, Pawn:
		return true
	}
	return false
}

// Letter returns the lowercase one-letter code.
func (k Kind) Letter() byte {
	return byte(k)
}

func (k Kind) String() string {
	switch k {
	case King:
		return "king"
	case Queen:
		return "queen"
	case Rook:
		return "rook"
	case Bishop:
		return "bishop"
	case Knight:
		return "knight"
	case Pawn:
		return "pawn"
	default:
		return "none"
	}
}

// KindFromLetter maps a one-letter code (either case) to a Kind.
func KindFromLetter(c byte) (Kind, bool) {
	if c >= 'A' && c <= 'Z' {
		c += 'a' - 'A'
	}
	k := Kind(c)
	return k, k.Valid()
}
