// Package native implements the Go-level functions exposed to Ren
// code and their registration into the root frame.
package native

import (
	"github.com/marcin-radoszewski/ren/internal/core"
	"github.com/marcin-radoszewski/ren/internal/frame"
	"github.com/marcin-radoszewski/ren/internal/value"
)

// spec describes one native for registration.
type spec struct {
	name        string
	arity       int
	refinements []string
	infix       bool
	fn          core.NativeFunc
}

// Register binds every native plus the literal constants into the
// root frame.
func Register(root *frame.Frame) {
	root.Bind("true", value.LogicVal(true))
	root.Bind("false", value.LogicVal(false))
	root.Bind("none", value.NoneVal())

	for _, s := range allNatives() {
		fn := &value.FunctionValue{
			Name:        s.name,
			Arity:       s.arity,
			Refinements: s.refinements,
			Infix:       s.infix,
			Fn:          s.fn,
		}
		root.Bind(s.name, value.FuncVal(fn))
	}
}

func allNatives() []spec {
	var all []spec
	all = append(all, parseNatives()...)
	all = append(all, compareNatives()...)
	all = append(all, mathNatives()...)
	all = append(all, seriesNatives()...)
	all = append(all, controlNatives()...)
	return all
}
