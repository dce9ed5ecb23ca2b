package contract

import (
	"github.com/marcin-radoszewski/ren/internal/api"
	"github.com/marcin-radoszewski/ren/internal/core"
)

// Evaluate runs Ren source through a fresh interpreter and returns the
// last value.
func Evaluate(source string) (core.Value, error) {
	return api.New().EvalSource(source)
}

// EvaluateIn runs source in an existing interpreter, so bindings carry
// across calls within a test.
func EvaluateIn(interp *api.Interpreter, source string) (core.Value, error) {
	return interp.EvalSource(source)
}
