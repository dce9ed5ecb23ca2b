// Package api is the embedding surface for Ren: one call to stand up
// an interpreter, load source, and evaluate it. The CLI, the REPL and
// the contract tests all go through this package.
package api

import (
	"github.com/marcin-radoszewski/ren/internal/core"
	"github.com/marcin-radoszewski/ren/internal/eval"
	"github.com/marcin-radoszewski/ren/internal/native"
	"github.com/marcin-radoszewski/ren/internal/parse"
	"github.com/marcin-radoszewski/ren/internal/parse/dialect"
	"github.com/marcin-radoszewski/ren/internal/value"
)

// Interpreter bundles an evaluator with its registered natives.
type Interpreter struct {
	Evaluator *eval.Evaluator
}

// New creates an interpreter with the full native set registered.
func New() *Interpreter {
	ev := eval.NewEvaluator()
	native.Register(ev.RootFrame())
	return &Interpreter{Evaluator: ev}
}

// LoadString loads source text into cells without evaluating.
func (i *Interpreter) LoadString(source string) ([]core.Value, error) {
	return parse.LoadString(source)
}

// EvalSource loads and evaluates source text, returning the last
// value.
func (i *Interpreter) EvalSource(source string) (core.Value, error) {
	cells, err := parse.LoadString(source)
	if err != nil {
		return value.NoneVal(), err
	}
	return i.Evaluator.DoBlock(cells)
}

// Parse runs the parse dialect directly on an already-loaded input
// and rule block, exposing the full result (tail position, collected
// block) rather than just the match flag.
func (i *Interpreter) Parse(input core.Value, rules *value.BlockValue, options dialect.ParseOptions) (dialect.Result, error) {
	return dialect.Parse(input, rules, options, i.Evaluator)
}
