// FILE: internal/service/view.go
package service

import (
	"strings"

	"gridchess/internal/core"
	"gridchess/internal/rules"
)

// GameView is a read-only snapshot of a game for transports.
type GameView struct {
	ID        string              `json:"game_id"`
	State     string              `json:"state"`
	OnMove    string              `json:"on_move"`
	FullMoves int                 `json:"full_moves"`
	InCheck   bool                `json:"in_check"`
	History   []string            `json:"history"`
	Pockets   map[string][]string `json:"pockets"`
	Winners   []string            `json:"winners,omitempty"`
	Reason    string              `json:"reason,omitempty"`
}

// MoveResult reports the effect of a committed move.
type MoveResult struct {
	Move     string   `json:"move"`
	Captured string   `json:"captured,omitempty"`
	State    string   `json:"state"`
	InCheck  bool     `json:"in_check"`
	Winners  []string `json:"winners,omitempty"`
	Reason   string   `json:"reason,omitempty"`
}

func newGameView(id string, engine *rules.Engine) *GameView {
	view := &GameView{
		ID:        id,
		State:     engine.StateString(),
		OnMove:    engine.OnMove().String(),
		FullMoves: engine.FullMoves(),
		InCheck:   engine.InCheck(engine.OnMove()),
		History:   []string{},
		Pockets:   make(map[string][]string),
	}
	for _, m := range engine.History() {
		view.History = append(view.History, m.String())
	}
	for _, side := range core.Sides() {
		pocket := []string{}
		for _, pc := range engine.Pocket(side) {
			pocket = append(pocket, pc.String())
		}
		view.Pockets[side.String()] = pocket
	}
	winners, reason := engine.Outcome()
	for _, side := range winners {
		view.Winners = append(view.Winners, side.String())
	}
	view.Reason = reason
	return view
}

// verdictText renders a finished game's result for persistence, e.g.
// "black wins" or "draw".
func verdictText(winners []core.Side, reason string) string {
	if reason == "" {
		return ""
	}
	if len(winners) == len(core.Sides()) {
		return "draw"
	}
	names := make([]string, len(winners))
	for i, side := range winners {
		names[i] = side.String()
	}
	return strings.Join(names, ", ") + " wins"
}
