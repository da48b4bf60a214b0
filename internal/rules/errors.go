// FILE: internal/rules/errors.go
package rules

import "errors"

// Validation failures surfaced by AssertLegal and Commit. All are
// recoverable: a rejected move leaves the engine untouched.
var (
	ErrNoPiece          = errors.New("no piece on source square")
	ErrInvalidMove      = errors.New("invalid move")
	ErrCausesCheck      = errors.New("move causes check")
	ErrInvalidPromotion = errors.New("invalid promotion")
	ErrWrongTurn        = errors.New("wrong turn")
)
