// Package repl implements the interactive Ren prompt on top of
// github.com/chzyer/readline: line history, Ctrl-C interrupt of the
// current line, Ctrl-D to exit.
package repl

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"github.com/marcin-radoszewski/ren/internal/api"
	"github.com/marcin-radoszewski/ren/internal/value"
	"github.com/marcin-radoszewski/ren/internal/verror"
)

// REPL drives the read-eval-print loop.
type REPL struct {
	interp *api.Interpreter
	rl     *readline.Instance
	out    io.Writer
}

// New creates a REPL over a fresh interpreter.
func New() (*REPL, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          ">> ",
		HistoryFile:     "",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("readline init: %w", err)
	}
	interp := api.New()
	return &REPL{interp: interp, rl: rl, out: os.Stdout}, nil
}

// Run loops until EOF (Ctrl-D) or the quit command.
func (r *REPL) Run() error {
	defer r.rl.Close()
	r.interp.Evaluator.SetOutputWriter(r.out)
	fmt.Fprintln(r.out, "Ren — type a Ren expression, or quit to exit")

	for {
		line, err := r.rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				r.interp.Evaluator.ClearHalt()
				continue
			}
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if trimmed == "quit" || trimmed == "exit" {
			return nil
		}
		r.evalLine(trimmed)
	}
}

func (r *REPL) evalLine(line string) {
	result, err := r.interp.EvalSource(line)
	if err != nil {
		var vErr *verror.Error
		if errors.As(err, &vErr) {
			fmt.Fprintln(r.out, vErr.Error())
		} else {
			fmt.Fprintln(r.out, "Error:", err)
		}
		return
	}
	if result.GetType() != value.TypeNone {
		fmt.Fprintln(r.out, "==", result.Mold())
	}
}
