// FILE: internal/service/service_test.go
package service

import (
	"errors"
	"testing"

	"gridchess/internal/rules"
)

func TestCreateAndViewGame(t *testing.T) {
	svc := New(nil)
	defer svc.Close()

	id, err := svc.CreateGame("")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	view, err := svc.GetView(id)
	if err != nil {
		t.Fatalf("view: %v", err)
	}
	if view.State != rules.StartingState {
		t.Errorf("state = %q, want %q", view.State, rules.StartingState)
	}
	if view.OnMove != "white" || view.FullMoves != 1 || view.InCheck {
		t.Errorf("view = %+v", view)
	}
	if len(svc.GameIDs()) != 1 {
		t.Errorf("game ids = %v, want one entry", svc.GameIDs())
	}
}

func TestCreateGameFromState(t *testing.T) {
	svc := New(nil)
	defer svc.Close()

	state := "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 4 20"
	id, err := svc.CreateGame(state)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	view, _ := svc.GetView(id)
	if view.State != state {
		t.Errorf("state = %q, want %q", view.State, state)
	}
	if view.OnMove != "black" {
		t.Errorf("on move = %q, want black", view.OnMove)
	}
}

func TestCreateGameRejectsBadState(t *testing.T) {
	svc := New(nil)
	defer svc.Close()

	if _, err := svc.CreateGame("not a state string"); err == nil {
		t.Error("want error")
	}
}

func TestMakeMove(t *testing.T) {
	svc := New(nil)
	defer svc.Close()

	id, _ := svc.CreateGame("")
	result, err := svc.MakeMove(id, "e2e4")
	if err != nil {
		t.Fatalf("move: %v", err)
	}
	if result.Move != "e2e4" || result.Captured != "" || result.Reason != "" {
		t.Errorf("result = %+v", result)
	}
	view, _ := svc.GetView(id)
	if len(view.History) != 1 || view.History[0] != "e2e4" {
		t.Errorf("history = %v", view.History)
	}
}

func TestMakeMoveErrors(t *testing.T) {
	svc := New(nil)
	defer svc.Close()

	id, _ := svc.CreateGame("")
	if _, err := svc.MakeMove(id, "nonsense"); err == nil {
		t.Error("malformed move accepted")
	}
	if _, err := svc.MakeMove(id, "e2e5"); !errors.Is(err, rules.ErrInvalidMove) {
		t.Errorf("err = %v, want %v", err, rules.ErrInvalidMove)
	}
	if _, err := svc.MakeMove("no-such-game", "e2e4"); !errors.Is(err, ErrGameNotFound) {
		t.Errorf("err = %v, want %v", err, ErrGameNotFound)
	}
}

func TestMoveResultReportsCaptureAndCheck(t *testing.T) {
	svc := New(nil)
	defer svc.Close()

	id, _ := svc.CreateGame("")
	for _, m := range []string{"e2e4", "d7d5"} {
		if _, err := svc.MakeMove(id, m); err != nil {
			t.Fatalf("move %s: %v", m, err)
		}
	}
	result, err := svc.MakeMove(id, "e4d5")
	if err != nil {
		t.Fatalf("capture: %v", err)
	}
	if result.Captured != "black pawn" {
		t.Errorf("captured = %q, want black pawn", result.Captured)
	}
}

func TestMoveResultReportsVerdict(t *testing.T) {
	svc := New(nil)
	defer svc.Close()

	id, _ := svc.CreateGame("")
	moves := []string{"f2f3", "e7e5", "g2g4"}
	for _, m := range moves {
		if _, err := svc.MakeMove(id, m); err != nil {
			t.Fatalf("move %s: %v", m, err)
		}
	}
	result, err := svc.MakeMove(id, "d8h4")
	if err != nil {
		t.Fatalf("mating move: %v", err)
	}
	if result.Reason != "checkmate" || len(result.Winners) != 1 || result.Winners[0] != "black" {
		t.Errorf("result = %+v, want black checkmate", result)
	}
}

func TestUndoMoves(t *testing.T) {
	svc := New(nil)
	defer svc.Close()

	id, _ := svc.CreateGame("")
	svc.MakeMove(id, "e2e4")
	svc.MakeMove(id, "e7e5")
	if err := svc.UndoMoves(id, 2); err != nil {
		t.Fatalf("undo: %v", err)
	}
	view, _ := svc.GetView(id)
	if view.State != rules.StartingState {
		t.Errorf("state = %q, want starting position", view.State)
	}
	if err := svc.UndoMoves(id, 1); err == nil {
		t.Error("undo past the start accepted")
	}
}

func TestLegalMoves(t *testing.T) {
	svc := New(nil)
	defer svc.Close()

	id, _ := svc.CreateGame("")
	moves, err := svc.LegalMoves(id)
	if err != nil {
		t.Fatalf("legal moves: %v", err)
	}
	if len(moves) != 20 {
		t.Errorf("moves = %d, want 20", len(moves))
	}
}

func TestDeleteGame(t *testing.T) {
	svc := New(nil)
	defer svc.Close()

	id, _ := svc.CreateGame("")
	if err := svc.DeleteGame(id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.GetView(id); !errors.Is(err, ErrGameNotFound) {
		t.Errorf("err = %v, want %v", err, ErrGameNotFound)
	}
	if err := svc.DeleteGame(id); !errors.Is(err, ErrGameNotFound) {
		t.Errorf("double delete err = %v, want %v", err, ErrGameNotFound)
	}
}

func TestStorageHealthDisabled(t *testing.T) {
	svc := New(nil)
	defer svc.Close()

	if got := svc.StorageHealth(); got != "disabled" {
		t.Errorf("health = %q, want disabled", got)
	}
}

func TestBoardASCII(t *testing.T) {
	svc := New(nil)
	defer svc.Close()

	id, _ := svc.CreateGame("")
	art, err := svc.BoardASCII(id)
	if err != nil || art == "" {
		t.Fatalf("ascii = %q, err = %v", art, err)
	}
}
