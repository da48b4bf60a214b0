// FILE: internal/cli/cli.go
package cli

import (
	"fmt"
	"io"
	"strings"

	"gridchess/internal/board"
	"gridchess/internal/core"
	"gridchess/internal/service"
)

type CommandType int

const (
	CmdNone CommandType = iota
	CmdNew
	CmdResume
	CmdMove
	CmdUndo
	CmdMoves
	CmdBoard
	CmdHistory
	CmdState
	CmdColor
	CmdHelp
	CmdQuit
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

type ColorTheme string

const (
	ThemeOff   ColorTheme = "off"
	ThemeBrown ColorTheme = "brown"
	ThemeGreen ColorTheme = "green"
	ThemeGray  ColorTheme = "gray"
)

type themeColors struct {
	lightBg string
	darkBg  string
	white   string
	black   string
	reset   string
}

var themes = map[ColorTheme]themeColors{
	ThemeOff: {},
	ThemeBrown: {
		lightBg: "\033[48;5;230m", // Beige
		darkBg:  "\033[48;5;94m",  // Brown
		white:   "\033[97m",
		black:   "\033[30m",
		reset:   "\033[0m",
	},
	ThemeGreen: {
		lightBg: "\033[48;5;157m", // Light green
		darkBg:  "\033[48;5;22m",  // Dark green
		white:   "\033[97m",
		black:   "\033[30m",
		reset:   "\033[0m",
	},
	ThemeGray: {
		lightBg: "\033[48;5;251m", // Light gray
		darkBg:  "\033[48;5;240m", // Dark gray
		white:   "\033[97m",
		black:   "\033[30m",
		reset:   "\033[0m",
	},
}

type CLI struct {
	output io.Writer
	theme  ColorTheme
}

func New(output io.Writer) *CLI {
	return &CLI{
		output: output,
		theme:  ThemeOff,
	}
}

// ParseCommand turns an input line into a command. Anything that is not a
// known keyword is treated as a move.
func (c *CLI) ParseCommand(input string) *Command {
	parts := strings.Fields(strings.TrimSpace(input))
	if len(parts) == 0 {
		return &Command{Type: CmdNone}
	}

	cmd := parts[0]
	args := parts[1:]

	switch cmd {
	case "new":
		return &Command{Type: CmdNew, Args: args}
	case "resume":
		return &Command{Type: CmdResume, Args: args, Raw: input}
	case "undo":
		return &Command{Type: CmdUndo, Args: args}
	case "moves":
		return &Command{Type: CmdMoves}
	case "board":
		return &Command{Type: CmdBoard}
	case "history":
		return &Command{Type: CmdHistory}
	case "state":
		return &Command{Type: CmdState}
	case "color":
		return &Command{Type: CmdColor, Args: args}
	case "help", "?":
		return &Command{Type: CmdHelp}
	case "quit", "exit":
		return &Command{Type: CmdQuit}
	default:
		return &Command{Type: CmdMove, Args: []string{cmd}}
	}
}

func (c *CLI) SetTheme(theme ColorTheme) error {
	if _, ok := themes[theme]; !ok {
		return fmt.Errorf("invalid theme: %s (use: off, brown, green, gray)", theme)
	}
	c.theme = theme
	return nil
}

func (c *CLI) ShowMessage(msg string) {
	fmt.Fprintln(c.output, msg)
}

func (c *CLI) ShowError(err error) {
	c.ShowMessage(fmt.Sprintf("Error: %v", err))
}

// DisplayBoard renders the position with the active color theme.
func (c *CLI) DisplayBoard(b *board.Board) {
	theme := themes[c.theme]
	var sb strings.Builder

	header := "  "
	for file := 0; file < b.Files(); file++ {
		header += core.FileLetters(file) + " "
	}
	sb.WriteString("\n" + header + "\n")

	for rank := b.Ranks() - 1; rank >= 0; rank-- {
		sb.WriteString(fmt.Sprintf("%d ", rank+1))
		for file := 0; file < b.Files(); file++ {
			pc, occupied := b.Get(core.Position{File: file, Rank: rank})

			if c.theme == ThemeOff {
				if !occupied {
					sb.WriteString(". ")
				} else {
					sb.WriteString(fmt.Sprintf("%c ", pc.Code()))
				}
				continue
			}

			bg := theme.darkBg
			if (rank+file)%2 == 1 {
				bg = theme.lightBg
			}
			if !occupied {
				sb.WriteString(fmt.Sprintf("%s  %s", bg, theme.reset))
			} else {
				color := theme.black
				if pc.Side == core.SideWhite {
					color = theme.white
				}
				sb.WriteString(fmt.Sprintf("%s%s%c %s", bg, color, pc.Code(), theme.reset))
			}
		}
		sb.WriteString(fmt.Sprintf(" %d\n", rank+1))
	}
	sb.WriteString(header + "\n")

	c.ShowMessage(sb.String())
}

func (c *CLI) ShowHelp() {
	help := `Commands:
  new              - Start a new game from the classic layout
  resume <state>   - Resume from a state string
  <move>           - Make a move (e.g., e2e4, g1f3, e7e8q)
  undo [count]     - Undo last move(s), default 1
  moves            - List legal moves for the side on turn
  board            - Redraw the board
  history          - Show the move history
  state            - Print the exportable state string
  color <theme>    - Set board color theme (off|brown|green|gray)
  quit/exit        - Exit the program
  help/?           - Show this help message`

	c.ShowMessage(help)
}

func (c *CLI) ShowWelcome() {
	c.ShowMessage("Commands: new, resume <state>, <move>, undo, moves, board, history, state, quit, help/?")
	c.ShowMessage("Example: 'resume 4k3/8/8/8/8/8/8/4K2R w K - 0 1' to start from a puzzle.")
	c.ShowMessage("")
}

// ShowGame prints the game summary: turn, check flag and pockets.
func (c *CLI) ShowGame(view *service.GameView) {
	line := fmt.Sprintf("Move %d, %s to play", view.FullMoves, view.OnMove)
	if view.InCheck {
		line += " (in check)"
	}
	c.ShowMessage(line)
	for side, pocket := range view.Pockets {
		if len(pocket) > 0 {
			c.ShowMessage(fmt.Sprintf("%s holds: %s", side, strings.Join(pocket, ", ")))
		}
	}
}

func (c *CLI) ShowHistory(view *service.GameView) {
	if len(view.History) == 0 {
		c.ShowMessage("No moves yet.")
		return
	}
	for i := 0; i < len(view.History); i += 2 {
		moveNum := i/2 + 1
		white := view.History[i]
		if i+1 < len(view.History) {
			c.ShowMessage(fmt.Sprintf("%d. %s | %s", moveNum, white, view.History[i+1]))
		} else {
			c.ShowMessage(fmt.Sprintf("%d. %s | ...", moveNum, white))
		}
	}
	c.ShowMessage(fmt.Sprintf("Current state: %s", view.State))
}

// ShowVerdict prints the end-of-game banner.
func (c *CLI) ShowVerdict(winners []string, reason string) {
	if reason == "" {
		return
	}
	if len(winners) > 1 {
		c.ShowMessage(fmt.Sprintf("\nGame over: draw (%s)", reason))
	} else if len(winners) == 1 {
		c.ShowMessage(fmt.Sprintf("\nGame over: %s wins (%s)", winners[0], reason))
	}
	c.ShowMessage("Start a new game with 'new' or 'resume'.")
}
