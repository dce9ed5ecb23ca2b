package value

import "github.com/marcin-radoszewski/ren/internal/core"

// FunctionValue is a native (Go-implemented) function. The evaluator
// collects Arity positional arguments and any declared refinements
// before invoking Fn.
type FunctionValue struct {
	Name        string
	Arity       int
	Refinements []string
	Infix       bool
	Fn          core.NativeFunc
}

func NewFunctionValue(name string, arity int, fn core.NativeFunc) *FunctionValue {
	return &FunctionValue{Name: name, Arity: arity, Fn: fn}
}

func (f *FunctionValue) GetType() core.ValueType { return TypeFunction }
func (f *FunctionValue) GetPayload() any         { return f }
func (f *FunctionValue) String() string          { return "#[function! " + f.Name + "]" }
func (f *FunctionValue) Mold() string            { return f.String() }
func (f *FunctionValue) Form() string            { return f.String() }

// HasRefinement reports whether the function declares the refinement.
func (f *FunctionValue) HasRefinement(name string) bool {
	for _, r := range f.Refinements {
		if r == name {
			return true
		}
	}
	return false
}

func (f *FunctionValue) Equals(other core.Value) bool {
	of, ok := other.(*FunctionValue)
	return ok && f == of
}
