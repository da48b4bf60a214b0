// FILE: cmd/gridchess/main.go
// Package main implements the interactive terminal client.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gridchess/internal/cli"
	"gridchess/internal/service"
	clitransport "gridchess/internal/transport/cli"

	"github.com/chzyer/readline"
	"golang.org/x/term"
)

func main() {
	svc := service.New(nil)
	defer svc.Close()

	view := cli.New(os.Stdout)
	// Colored board only when stdout is a terminal
	if term.IsTerminal(int(os.Stdout.Fd())) {
		view.SetTheme(cli.ThemeBrown)
	}
	handler := clitransport.New(svc, view)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		HistoryFile:     ".gridchess_history",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		fmt.Printf("Failed to start: %v\n", err)
		os.Exit(1)
	}
	defer rl.Close()

	view.ShowWelcome()

	for {
		rl.SetPrompt(handler.Prompt())

		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !handler.ProcessLine(line) {
			break
		}
	}
}
