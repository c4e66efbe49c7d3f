package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
)

// App bundles the session-lifetime resources: the immutable catalog and
// NLP engine, the matcher/extractor built on them, and the executor.
// Everything is constructed explicitly in buildApp and passed by
// reference; there are no package-level singletons.
type App struct {
	Config     Config
	Catalog    *Catalog
	Dispatcher *Dispatcher
	History    *HistoryStore
}

// runInteractiveLoop reads one line at a time from the prompt, hands it
// to the dispatcher, and repeats until an exit phrase or EOF.
func runInteractiveLoop(app *App) error {
	fmt.Println("🧠 Welcome to Zyntax - Your NLP-powered Terminal!")
	fmt.Println("Type 'help' for supported commands, 'exit' or 'quit' to leave.")
	fmt.Println()

	rl, err := readline.NewEx(&readline.Config{
		Prompt:            "Zyntax> ",
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistoryLimit:      app.Config.HistoryLimit,
		HistorySearchFold: true,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize readline: %v", err)
	}
	defer rl.Close()

	// Replay persisted history into the line editor.
	if app.History != nil {
		if lines, err := app.History.Recent(app.Config.HistoryLimit); err == nil {
			for _, line := range lines {
				rl.SaveHistory(line)
			}
		}
	}

	// Suggestion confirmations reuse the same line editor.
	app.Dispatcher.SetConfirm(func(prompt string) bool {
		rl.SetPrompt(prompt)
		defer rl.SetPrompt("Zyntax> ")
		answer, err := rl.Readline()
		if err != nil {
			return false
		}
		answer = strings.ToLower(strings.TrimSpace(answer))
		return answer == "y" || answer == "yes"
	})

	// Ctrl+C at the prompt clears the line; SIGTERM ends the session.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		<-sigChan
		rl.Close()
	}()

	for {
		input, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			if err == io.EOF {
				break
			}
			fmt.Println("Error reading input:", err)
			continue
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if app.History != nil {
			if err := app.History.Append(input); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to record history: %v\n", err)
			}
		}

		if app.Dispatcher.Dispatch(input) == StateExiting {
			break
		}
	}

	fmt.Println("\nGoodbye! 👋")
	return nil
}
