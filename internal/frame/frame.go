// Package frame implements word binding contexts for the Ren
// interpreter. Frames map word symbols to values with parent links for
// lexical scoping; lookup walks the parent chain, assignment is
// local-by-default.
package frame

import (
	"github.com/marcin-radoszewski/ren/internal/core"
)

// Frame is a binding context: parallel Words/Values arrays plus a
// parent index into the evaluator's frame store (-1 for the root).
type Frame struct {
	Words  []string
	Values []core.Value
	Parent int
	Name   string
}

// NewFrame creates an empty frame.
func NewFrame(parent int) *Frame {
	return &Frame{
		Words:  []string{},
		Values: []core.Value{},
		Parent: parent,
	}
}

// NewFrameWithCapacity pre-allocates for a known binding count.
func NewFrameWithCapacity(parent, capacity int) *Frame {
	return &Frame{
		Words:  make([]string, 0, capacity),
		Values: make([]core.Value, 0, capacity),
		Parent: parent,
	}
}

// Bind adds or updates a binding in this frame (local-by-default).
func (f *Frame) Bind(symbol string, val core.Value) {
	for i, w := range f.Words {
		if w == symbol {
			f.Values[i] = val
			return
		}
	}
	f.Words = append(f.Words, symbol)
	f.Values = append(f.Values, val)
}

// Get retrieves the value bound in this frame only; no parent search.
func (f *Frame) Get(symbol string) (core.Value, bool) {
	for i, w := range f.Words {
		if w == symbol {
			return f.Values[i], true
		}
	}
	return nil, false
}

// Set updates an existing binding in this frame; false if unbound here.
func (f *Frame) Set(symbol string, val core.Value) bool {
	for i, w := range f.Words {
		if w == symbol {
			f.Values[i] = val
			return true
		}
	}
	return false
}

// HasWord reports whether the symbol is bound in this frame.
func (f *Frame) HasWord(symbol string) bool {
	for _, w := range f.Words {
		if w == symbol {
			return true
		}
	}
	return false
}

// GetParent returns the parent frame index (-1 for the root).
func (f *Frame) GetParent() int { return f.Parent }

// GetAll returns every binding in the frame.
func (f *Frame) GetAll() []core.Binding {
	out := make([]core.Binding, len(f.Words))
	for i := range f.Words {
		out[i] = core.Binding{Symbol: f.Words[i], Value: f.Values[i]}
	}
	return out
}
