package main

import (
	"fmt"
	"os"

	"github.com/marcin-radoszewski/ren/internal/api"
	"github.com/marcin-radoszewski/ren/internal/repl"
)

// runScript loads and evaluates a script file.
func runScript(path string) int {
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "ren:", err)
		return ExitAccess
	}
	interp := api.New()
	if _, err := interp.EvalSource(string(source)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitCodeFor(err)
	}
	return ExitOK
}

// runEval evaluates a one-shot expression and prints its value.
func runEval(expr string) int {
	interp := api.New()
	result, err := interp.EvalSource(expr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitCodeFor(err)
	}
	fmt.Println(result.Mold())
	return ExitOK
}

// runREPL starts the interactive prompt.
func runREPL() int {
	r, err := repl.New()
	if err != nil {
		fmt.Fprintln(os.Stderr, "ren:", err)
		return ExitError
	}
	if err := r.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "ren:", err)
		return ExitError
	}
	return ExitOK
}
