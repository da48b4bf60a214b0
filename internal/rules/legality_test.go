// FILE: internal/rules/legality_test.go
package rules

import (
	"errors"
	"testing"

	"gridchess/internal/core"
)

func move(t *testing.T, text string) core.Move {
	t.Helper()
	m, err := core.ParseMove(text)
	if err != nil {
		t.Fatalf("parse %q: %v", text, err)
	}
	return m
}

func TestAssertLegalSentinels(t *testing.T) {
	e := New()
	cases := []struct {
		move string
		want error
	}{
		{"e3e4", ErrNoPiece},
		{"e2e5", ErrInvalidMove},
		{"a1a3", ErrInvalidMove},
		{"e1e2", ErrInvalidMove},
	}
	for _, tc := range cases {
		err := e.AssertLegal(move(t, tc.move))
		if !errors.Is(err, tc.want) {
			t.Errorf("%s: err = %v, want %v", tc.move, err, tc.want)
		}
	}
}

func TestAssertLegalDoesNotMutate(t *testing.T) {
	e := New()
	before := e.StateString()
	e.AssertLegal(move(t, "e2e4"))
	e.AssertLegal(move(t, "a1a3"))
	if got := e.StateString(); got != before {
		t.Errorf("state changed to %q", got)
	}
}

func TestPinnedPieceCannotMove(t *testing.T) {
	e := mustResume(t, "4r2k/8/8/8/8/8/4Q3/4K3 w - - 0 1")
	err := e.AssertLegal(move(t, "e2d3"))
	if !errors.Is(err, ErrCausesCheck) {
		t.Errorf("err = %v, want %v", err, ErrCausesCheck)
	}
	if err := e.AssertLegal(move(t, "e2e4")); err != nil {
		t.Errorf("staying on the pin ray: %v", err)
	}
}

func TestMustResolveCheck(t *testing.T) {
	e := mustResume(t, "4r2k/8/8/8/8/8/8/R3K3 w - - 0 1")
	if !e.InCheck(core.SideWhite) {
		t.Fatal("white not in check")
	}
	if err := e.AssertLegal(move(t, "a1a2")); !errors.Is(err, ErrCausesCheck) {
		t.Errorf("ignoring check: err = %v, want %v", err, ErrCausesCheck)
	}
	if err := e.AssertLegal(move(t, "e1d2")); err != nil {
		t.Errorf("king steps off the ray: %v", err)
	}
}

func TestWrongTurn(t *testing.T) {
	e := New()
	if _, err := e.Commit(move(t, "e7e5")); !errors.Is(err, ErrWrongTurn) {
		t.Errorf("err = %v, want %v", err, ErrWrongTurn)
	}
}

func TestCommitRejectsLeaveBoardUntouched(t *testing.T) {
	e := New()
	before := e.StateString()
	if _, err := e.Commit(move(t, "e2e5")); err == nil {
		t.Fatal("want error")
	}
	if got := e.StateString(); got != before {
		t.Errorf("state changed to %q", got)
	}
}

func TestEnPassantCapture(t *testing.T) {
	e := New()
	mustCommit(t, e, "e2e4", "a7a6", "e4e5", "d7d5")
	target, open := e.EnPassant()
	if !open || target.String() != "d6" {
		t.Fatalf("en passant = %v/%v, want d6 open", target, open)
	}
	taken, err := e.Commit(move(t, "e5d6"))
	if err != nil {
		t.Fatalf("commit e5d6: %v", err)
	}
	if taken == nil || taken.Kind != core.Pawn || taken.Side != core.SideBlack {
		t.Fatalf("taken = %v, want black pawn", taken)
	}
	if _, occupied := e.Board().Get(pos(t, "d5")); occupied {
		t.Error("captured pawn still on d5")
	}
}

func TestEnPassantWindowCloses(t *testing.T) {
	e := New()
	mustCommit(t, e, "e2e4", "a7a6", "e4e5", "d7d5", "b1c3", "a6a5")
	if _, open := e.EnPassant(); open {
		t.Fatal("en passant window still open")
	}
	if err := e.AssertLegal(move(t, "e5d6")); !errors.Is(err, ErrInvalidMove) {
		t.Errorf("err = %v, want %v", err, ErrInvalidMove)
	}
}

func TestCastlingBothWings(t *testing.T) {
	e := mustResume(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	for _, text := range []string{"e1g1", "e1c1"} {
		if err := e.AssertLegal(move(t, text)); err != nil {
			t.Errorf("%s: %v", text, err)
		}
	}
}

func TestCastlingMovesRook(t *testing.T) {
	e := mustResume(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	mustCommit(t, e, "e1g1")
	if pc, ok := e.Board().Get(pos(t, "f1")); !ok || pc.Kind != core.Rook {
		t.Error("rook missing from f1 after short castling")
	}
	if _, ok := e.Board().Get(pos(t, "h1")); ok {
		t.Error("rook still on h1 after short castling")
	}
	mustCommit(t, e, "e8c8")
	if pc, ok := e.Board().Get(pos(t, "d8")); !ok || pc.Kind != core.Rook {
		t.Error("rook missing from d8 after long castling")
	}
}

func TestCastlingBlockedByAttackedTransit(t *testing.T) {
	e := mustResume(t, "r3kr2/8/8/8/8/8/8/R3K2R w KQq - 0 1")
	if err := e.AssertLegal(move(t, "e1g1")); !errors.Is(err, ErrInvalidMove) {
		t.Errorf("short castling through attacked f1: err = %v, want %v", err, ErrInvalidMove)
	}
	if err := e.AssertLegal(move(t, "e1c1")); err != nil {
		t.Errorf("long castling: %v", err)
	}
}

func TestCastlingRightsShrink(t *testing.T) {
	e := mustResume(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	mustCommit(t, e, "a1b1", "h8g8", "b1a1", "g8h8")
	if e.CastlingAllowed(core.SideWhite, QueenSide) {
		t.Error("white queen-side right survived rook shuffle")
	}
	if e.CastlingAllowed(core.SideBlack, KingSide) {
		t.Error("black king-side right survived rook shuffle")
	}
	if !e.CastlingAllowed(core.SideWhite, KingSide) || !e.CastlingAllowed(core.SideBlack, QueenSide) {
		t.Error("untouched rights lost")
	}
	if err := e.AssertLegal(move(t, "e1c1")); !errors.Is(err, ErrInvalidMove) {
		t.Errorf("revoked castling: err = %v, want %v", err, ErrInvalidMove)
	}
}

func TestKingMoveRevokesBothWings(t *testing.T) {
	e := mustResume(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	mustCommit(t, e, "e1e2", "a8a7", "e2e1")
	if e.CastlingAllowed(core.SideWhite, KingSide) || e.CastlingAllowed(core.SideWhite, QueenSide) {
		t.Error("white rights survived king trip")
	}
	if e.CastlingAllowed(core.SideBlack, QueenSide) {
		t.Error("black queen-side right survived rook move")
	}
}

func TestRookCaptureRevokesRight(t *testing.T) {
	e := mustResume(t, "r3k2r/8/8/8/4b3/8/8/R3K2R b KQkq - 0 1")
	mustCommit(t, e, "e4h1")
	if e.CastlingAllowed(core.SideWhite, KingSide) {
		t.Error("white king-side right survived rook capture")
	}
}

func TestPromotionRequiresChoice(t *testing.T) {
	e := mustResume(t, "7k/4P3/8/8/8/8/8/4K3 w - - 0 1")
	if err := e.AssertLegal(move(t, "e7e8")); !errors.Is(err, ErrInvalidPromotion) {
		t.Errorf("bare push: err = %v, want %v", err, ErrInvalidPromotion)
	}
	if err := e.AssertLegal(move(t, "e7e8k")); !errors.Is(err, ErrInvalidPromotion) {
		t.Errorf("king choice: err = %v, want %v", err, ErrInvalidPromotion)
	}
	mustCommit(t, e, "e7e8q")
	if pc, ok := e.Board().Get(pos(t, "e8")); !ok || pc.Kind != core.Queen || pc.Side != core.SideWhite {
		t.Errorf("e8 = %v/%v, want white queen", pc, ok)
	}
}

func TestPromotionChoiceOnlyOnLastRank(t *testing.T) {
	e := New()
	if err := e.AssertLegal(move(t, "e2e4q")); !errors.Is(err, ErrInvalidPromotion) {
		t.Errorf("err = %v, want %v", err, ErrInvalidPromotion)
	}
}
