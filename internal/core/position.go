// FILE: internal/core/position.go
package core

import (
	"fmt"
	"regexp"
	"strconv"
)

// Position is a square on the grid, zero-based in both coordinates.
// The text form is the base-26 file letters (a=0, z=25, aa=26, ...)
// followed by the 1-based rank number, e.g. "e4".
type Position struct {
	File int
	Rank int
}

var positionPattern = regexp.MustCompile(`^([a-z]+)([0-9]+)$`)

func (p Position) String() string {
	return FileLetters(p.File) + strconv.Itoa(p.Rank+1)
}

// ParsePosition converts coordinate text back to a Position.
func ParsePosition(s string) (Position, error) {
	m := positionPattern.FindStringSubmatch(s)
	if m == nil {
		return Position{}, fmt.Errorf("invalid position %q: want file letters followed by a rank number", s)
	}
	rank, err := strconv.Atoi(m[2])
	if err != nil || rank < 1 {
		return Position{}, fmt.Errorf("invalid rank in position %q", s)
	}
	return Position{File: fileValue(m[1]), Rank: rank - 1}, nil
}

// FileLetters converts a zero-based file index to its letter form.
// The encoding is bijective base-26: a=0, z=25, aa=26, az=51, ba=52.
func FileLetters(file int) string {
	if file < 0 {
		return "?"
	}
	var buf [8]byte
	i := len(buf)
	for {
		i--
		buf[i] = byte('a' + file%26)
		file = file/26 - 1
		if file < 0 {
			break
		}
	}
	return string(buf[i:])
}

func fileValue(letters string) int {
	v := 0
	for i := 0; i < len(letters); i++ {
		v = v*26 + int(letters[i]-'a') + 1
	}
	return v - 1
}
