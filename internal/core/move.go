// FILE: internal/core/move.go
package core

import (
	"fmt"
	"regexp"
)

// Move is a plain value: source, destination and an optional promotion
// kind. Two moves are equal when all three fields match.
type Move struct {
	From      Position
	To        Position
	Promotion Kind
}

var movePattern = regexp.MustCompile(`^([a-z]+[0-9]+)([a-z]+[0-9]+)([a-z]?)$`)

func (m Move) String() string {
	if m.Promotion != KindNone {
		return m.From.String() + m.To.String() + string(m.Promotion.Letter())
	}
	return m.From.String() + m.To.String()
}

// ParseMove converts move text (source + destination + optional promotion
// letter, e.g. "e2e4" or "e7e8q") to a Move.
func ParseMove(s string) (Move, error) {
	m := movePattern.FindStringSubmatch(s)
	if m == nil {
		return Move{}, fmt.Errorf("invalid move %q: want source and destination coordinates with an optional promotion letter", s)
	}
	from, err := ParsePosition(m[1])
	if err != nil {
		return Move{}, err
	}
	to, err := ParsePosition(m[2])
	if err != nil {
		return Move{}, err
	}
	mv := Move{From: from, To: to}
	if m[3] != "" {
		kind, ok := KindFromLetter(m[3][0])
		if !ok {
			return Move{}, fmt.Errorf("invalid promotion letter %q in move %q", m[3], s)
		}
		mv.Promotion = kind
	}
	return mv, nil
}
