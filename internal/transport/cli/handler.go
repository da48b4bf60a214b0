// FILE: internal/transport/cli/handler.go
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"gridchess/internal/cli"
	"gridchess/internal/service"
)

type CLIHandler struct {
	svc    *service.Service
	view   *cli.CLI
	gameID string
}

func New(svc *service.Service, view *cli.CLI) *CLIHandler {
	return &CLIHandler{
		svc:  svc,
		view: view,
	}
}

// Prompt shows whose turn it is in the active game.
func (h *CLIHandler) Prompt() string {
	if h.gameID == "" {
		return "> "
	}
	view, err := h.svc.GetView(h.gameID)
	if err != nil || view.Reason != "" {
		return "> "
	}
	return fmt.Sprintf("[%s]> ", view.OnMove)
}

// ProcessLine handles one input line; returns false to exit.
func (h *CLIHandler) ProcessLine(line string) bool {
	return h.ProcessCommand(h.view.ParseCommand(line))
}

// ProcessCommand handles user commands - returns false to exit
func (h *CLIHandler) ProcessCommand(cmd *cli.Command) bool {
	switch cmd.Type {
	case cli.CmdQuit:
		return false

	case cli.CmdNone:
		return true

	case cli.CmdNew:
		return h.startGame("")

	case cli.CmdResume:
		if len(cmd.Args) < 1 {
			h.view.ShowMessage("Usage: resume <state string>")
			return true
		}
		return h.startGame(strings.Join(cmd.Args, " "))

	case cli.CmdMove:
		h.handleMove(cmd.Args[0])
		return true

	case cli.CmdUndo:
		h.handleUndo(cmd.Args)
		return true

	case cli.CmdMoves:
		if !h.requireGame() {
			return true
		}
		moves, err := h.svc.LegalMoves(h.gameID)
		if err != nil {
			h.view.ShowError(err)
			return true
		}
		h.view.ShowMessage(strings.Join(moves, " "))
		return true

	case cli.CmdBoard:
		h.showBoard()
		return true

	case cli.CmdHistory:
		if !h.requireGame() {
			return true
		}
		if view, err := h.svc.GetView(h.gameID); err == nil {
			h.view.ShowHistory(view)
		}
		return true

	case cli.CmdState:
		if !h.requireGame() {
			return true
		}
		if view, err := h.svc.GetView(h.gameID); err == nil {
			h.view.ShowMessage(view.State)
		}
		return true

	case cli.CmdColor:
		if len(cmd.Args) < 1 {
			h.view.ShowMessage("Usage: color <off|brown|green|gray>")
			return true
		}
		if err := h.view.SetTheme(cli.ColorTheme(cmd.Args[0])); err != nil {
			h.view.ShowError(err)
		} else {
			h.showBoard()
		}
		return true

	case cli.CmdHelp:
		h.view.ShowHelp()
		return true
	}
	return true
}

func (h *CLIHandler) requireGame() bool {
	if h.gameID == "" {
		h.view.ShowMessage("No active game. Use 'new' or 'resume <state>'.")
		return false
	}
	return true
}

func (h *CLIHandler) startGame(state string) bool {
	if h.gameID != "" {
		h.svc.DeleteGame(h.gameID)
		h.gameID = ""
	}

	gameID, err := h.svc.CreateGame(state)
	if err != nil {
		h.view.ShowError(err)
		return true
	}
	h.gameID = gameID
	h.showBoard()
	if view, err := h.svc.GetView(h.gameID); err == nil {
		h.view.ShowGame(view)
		h.view.ShowVerdict(view.Winners, view.Reason)
	}
	return true
}

func (h *CLIHandler) handleMove(moveText string) {
	if !h.requireGame() {
		return
	}
	result, err := h.svc.MakeMove(h.gameID, moveText)
	if err != nil {
		h.view.ShowError(err)
		return
	}

	h.showBoard()
	if result.Captured != "" {
		h.view.ShowMessage(fmt.Sprintf("Captured %s.", result.Captured))
	}
	if result.Reason != "" {
		h.view.ShowVerdict(result.Winners, result.Reason)
		return
	}
	if view, err := h.svc.GetView(h.gameID); err == nil {
		h.view.ShowGame(view)
	}
}

func (h *CLIHandler) handleUndo(args []string) {
	if !h.requireGame() {
		return
	}
	count := 1
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			h.view.ShowMessage("Usage: undo [count]")
			return
		}
		count = n
	}
	if err := h.svc.UndoMoves(h.gameID, count); err != nil {
		h.view.ShowError(err)
		return
	}
	h.showBoard()
	if view, err := h.svc.GetView(h.gameID); err == nil {
		h.view.ShowGame(view)
	}
}

func (h *CLIHandler) showBoard() {
	if h.gameID == "" {
		return
	}
	b, err := h.svc.CurrentBoard(h.gameID)
	if err != nil {
		return
	}
	h.view.DisplayBoard(b)
}
