// Package core declares the interfaces shared by every layer of the Ren
// interpreter: the value cell, the series contract, and the evaluator
// surface the parse dialect is built against.
//
// Packages depend on core, never on each other's concrete types, which
// keeps the dialect engine decoupled from the evaluator implementation.
package core

import "io"

// ValueType identifies the runtime kind of a Value.
type ValueType uint8

// NativeFunc is the signature of a native (Go-implemented) function.
// refValues carries refinement values keyed by refinement name.
type NativeFunc func(args []Value, refValues map[string]Value, eval Evaluator) (Value, error)

// Value is the uniform value cell. Every datum in Ren implements it.
//
// Quote levels: values at quote level zero are live for dispatch; a
// quoted wrapper raises the level. Unquote in package value unwraps.
type Value interface {
	GetType() ValueType
	GetPayload() any
	String() string
	Mold() string
	Form() string
	Equals(other Value) bool
}

// Binding pairs a symbol with its bound value inside a frame.
type Binding struct {
	Symbol string
	Value  Value
}

// Frame is a word-to-value binding context with lexical parenting.
type Frame interface {
	Bind(symbol string, value Value)
	Get(symbol string) (Value, bool)
	Set(symbol string, value Value) bool
	HasWord(symbol string) bool
	GetParent() int
	GetAll() []Binding
}

// Evaluator is the surface the parse dialect requires from the embedder.
//
// DoStep evaluates exactly one expression starting at index in vals and
// reports the number of cells it consumed, which is what the DO rule
// needs to advance block input past an evaluated expression. DoBlock
// evaluates a whole block left to right and returns the last value.
// Both may recursively re-enter the parse engine.
type Evaluator interface {
	DoBlock(vals []Value) (Value, error)
	DoStep(vals []Value, index int) (Value, int, error)
	Lookup(symbol string) (Value, bool)
	SetWord(symbol string, val Value) error
	Halted() bool
	SetOutputWriter(writer io.Writer)
	GetOutputWriter() io.Writer
}
