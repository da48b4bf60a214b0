// FILE: internal/rules/history_test.go
package rules

import (
	"testing"

	"gridchess/internal/core"
)

func TestRollbackRestoresState(t *testing.T) {
	e := New()
	before := e.StateString()
	mustCommit(t, e, "e2e4")
	if err := e.Rollback(1); err != nil {
		t.Fatalf("rollback: %v", err)
	}
	if got := e.StateString(); got != before {
		t.Errorf("state = %q, want %q", got, before)
	}
	if len(e.History()) != 0 {
		t.Errorf("history = %v, want empty", e.History())
	}
}

func TestRollbackSeveralMoves(t *testing.T) {
	e := New()
	mustCommit(t, e, "e2e4", "e7e5")
	mid := e.StateString()
	mustCommit(t, e, "g1f3", "b8c6")
	if err := e.Rollback(2); err != nil {
		t.Fatalf("rollback: %v", err)
	}
	if got := e.StateString(); got != mid {
		t.Errorf("state = %q, want %q", got, mid)
	}
	if got := len(e.History()); got != 2 {
		t.Errorf("history length = %d, want 2", got)
	}
	if last, ok := e.LastMove(); !ok || last.String() != "e7e5" {
		t.Errorf("last move = %v/%v, want e7e5", last, ok)
	}
}

func TestRollbackRestoresCastlingRights(t *testing.T) {
	e := mustResume(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	mustCommit(t, e, "e1e2")
	if err := e.Rollback(1); err != nil {
		t.Fatalf("rollback: %v", err)
	}
	if !e.CastlingAllowed(core.SideWhite, KingSide) || !e.CastlingAllowed(core.SideWhite, QueenSide) {
		t.Error("rights not restored")
	}
}

func TestRollbackRestoresRepetitionCounts(t *testing.T) {
	e := New()
	shuffle := []string{"g1f3", "g8f6", "f3g1", "f6g8"}
	mustCommit(t, e, shuffle...)
	mustCommit(t, e, shuffle...)
	if err := e.Rollback(1); err != nil {
		t.Fatalf("rollback: %v", err)
	}
	mustCommit(t, e, "f6g8")
	if _, reason := e.Outcome(); reason != "threefold repetition" {
		t.Errorf("reason = %q, want threefold repetition", reason)
	}
}

func TestRollbackKeepsPocket(t *testing.T) {
	e := New()
	mustCommit(t, e, "e2e4", "d7d5", "e4d5")
	if err := e.Rollback(1); err != nil {
		t.Fatalf("rollback: %v", err)
	}
	if got := len(e.Pocket(core.SideWhite)); got != 1 {
		t.Errorf("pocket size = %d, want 1", got)
	}
}

func TestRollbackBounds(t *testing.T) {
	e := New()
	mustCommit(t, e, "e2e4")
	for _, offset := range []int{0, -1, 2} {
		if err := e.Rollback(offset); err == nil {
			t.Errorf("rollback %d: want error", offset)
		}
	}
}

func TestUndoneMoveCanBeReplayed(t *testing.T) {
	e := New()
	mustCommit(t, e, "e2e4", "e7e5")
	if err := e.Rollback(2); err != nil {
		t.Fatalf("rollback: %v", err)
	}
	mustCommit(t, e, "d2d4", "d7d5")
	if e.OnMove() != core.SideWhite {
		t.Errorf("on move = %s, want white", e.OnMove())
	}
}
