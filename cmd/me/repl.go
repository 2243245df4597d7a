package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joshuabenuck/markup"
	"github.com/joshuabenuck/markup/shell"
	"github.com/peterh/liner"
)

// REPL reads lines, hands each to the shell, and reports failures as a
// single "Error:" line so the loop always continues. Only an
// input-stream failure terminates it.
type REPL struct {
	shell       *shell.Shell
	historyPath string
	stdout      io.Writer
	stderr      io.Writer
}

// NewREPL creates a REPL around a shell.
func NewREPL(sh *shell.Shell, historyPath string, stdout, stderr io.Writer) *REPL {
	return &REPL{
		shell:       sh,
		historyPath: historyPath,
		stdout:      stdout,
		stderr:      stderr,
	}
}

// Run drives the prompt until end-of-input or interrupt. History is
// loaded before the first prompt and flushed on normal exit.
func (r *REPL) Run(ctx context.Context) error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	if f, err := os.Open(r.historyPath); err == nil {
		_, _ = line.ReadHistory(f)
		f.Close()
	} else {
		fmt.Fprintln(r.stdout, "No previous history.")
	}

	for {
		input, err := line.Prompt(">> ")
		switch {
		case err == nil:
			if input != "" {
				line.AppendHistory(input)
			}
			if err := r.shell.Execute(ctx, input); err != nil {
				fmt.Fprintf(r.stdout, "Error: %s\n", markup.ErrorMessage(err))
			}
		case errors.Is(err, liner.ErrPromptAborted):
			fmt.Fprintln(r.stdout, "CTRL-C")
			return r.saveHistory(line)
		case errors.Is(err, io.EOF):
			fmt.Fprintln(r.stdout, "CTRL-D")
			return r.saveHistory(line)
		default:
			// Input-stream failure: terminate without persisting history.
			fmt.Fprintf(r.stderr, "Error: %v\n", err)
			return err
		}
	}
}

func (r *REPL) saveHistory(line *liner.State) error {
	f, err := os.Create(r.historyPath)
	if err != nil {
		return fmt.Errorf("failed to save history: %w", err)
	}
	defer f.Close()

	if _, err := line.WriteHistory(f); err != nil {
		return fmt.Errorf("failed to save history: %w", err)
	}
	return nil
}
