// Package eval provides the evaluation engine for Ren.
//
// The evaluator is deliberately small: it is the surface the parse
// dialect is specified against (group rules, the DO rule, word
// lookup/set) plus enough expression evaluation to drive the natives
// from scripts and the REPL. Evaluation is type-dispatched, strictly
// left to right, with infix operators resolved by one-token lookahead.
package eval

import (
	"io"
	"os"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/marcin-radoszewski/ren/internal/core"
	"github.com/marcin-radoszewski/ren/internal/frame"
	"github.com/marcin-radoszewski/ren/internal/trace"
	"github.com/marcin-radoszewski/ren/internal/value"
	"github.com/marcin-radoszewski/ren/internal/verror"
)

// Evaluator is the core evaluation engine. Frames live in a store and
// are addressed by index; the active chain is a stack of indexes.
type Evaluator struct {
	frameStore []*frame.Frame
	active     []int
	halt       atomic.Bool
	out        io.Writer
	errOut     io.Writer
}

// NewEvaluator creates an engine with an empty root frame.
func NewEvaluator() *Evaluator {
	root := frame.NewFrameWithCapacity(-1, 64)
	root.Name = "(top level)"
	return &Evaluator{
		frameStore: []*frame.Frame{root},
		active:     []int{0},
		out:        os.Stdout,
		errOut:     os.Stderr,
	}
}

// RootFrame returns the global frame (native registration target).
func (e *Evaluator) RootFrame() *frame.Frame { return e.frameStore[0] }

func (e *Evaluator) currentFrame() *frame.Frame {
	return e.frameStore[e.active[len(e.active)-1]]
}

// PushFrame activates a new frame whose parent is the current frame.
func (e *Evaluator) PushFrame() *frame.Frame {
	f := frame.NewFrame(e.active[len(e.active)-1])
	idx := len(e.frameStore)
	e.frameStore = append(e.frameStore, f)
	e.active = append(e.active, idx)
	return f
}

// PopFrame deactivates the current frame.
func (e *Evaluator) PopFrame() {
	if len(e.active) > 1 {
		e.active = e.active[:len(e.active)-1]
	}
}

// Lookup resolves a symbol through the active frame chain.
func (e *Evaluator) Lookup(symbol string) (core.Value, bool) {
	idx := e.active[len(e.active)-1]
	for idx >= 0 {
		f := e.frameStore[idx]
		if v, ok := f.Get(symbol); ok {
			return v, true
		}
		idx = f.GetParent()
	}
	return nil, false
}

// SetWord binds symbol in the current frame (local-by-default), unless
// an enclosing frame already binds it, in which case that binding is
// updated.
func (e *Evaluator) SetWord(symbol string, val core.Value) error {
	idx := e.active[len(e.active)-1]
	for idx >= 0 {
		f := e.frameStore[idx]
		if f.HasWord(symbol) {
			f.Set(symbol, val)
			return nil
		}
		idx = f.GetParent()
	}
	e.currentFrame().Bind(symbol, val)
	return nil
}

// Halt raises the halt flag; the parse engine and DoBlock observe it
// between steps.
func (e *Evaluator) Halt() { e.halt.Store(true) }

// ClearHalt lowers the halt flag.
func (e *Evaluator) ClearHalt() { e.halt.Store(false) }

// Halted reports the halt flag.
func (e *Evaluator) Halted() bool { return e.halt.Load() }

func (e *Evaluator) SetOutputWriter(w io.Writer) { e.out = w }
func (e *Evaluator) GetOutputWriter() io.Writer  { return e.out }

// DoBlock evaluates cells left to right and returns the last value.
func (e *Evaluator) DoBlock(vals []core.Value) (core.Value, error) {
	var last core.Value = value.NoneVal()
	i := 0
	for i < len(vals) {
		if e.Halted() {
			return value.NoneVal(), verror.NewHaltError()
		}
		v, n, err := e.DoStep(vals, i)
		if err != nil {
			return value.NoneVal(), err
		}
		last = v
		i += n
	}
	return last, nil
}

// DoStep evaluates exactly one expression starting at index and reports
// how many cells it consumed. This is the primitive the parse dialect's
// DO rule is built on.
func (e *Evaluator) DoStep(vals []core.Value, index int) (core.Value, int, error) {
	v, n, err := e.doPrefix(vals, index)
	if err != nil {
		return value.NoneVal(), 0, err
	}
	// Infix lookahead: a word bound to an infix function continues the
	// expression with the prior result as its first argument.
	for index+n < len(vals) {
		word, ok := value.AsWord(vals[index+n])
		if !ok || vals[index+n].GetType() != value.TypeWord {
			break
		}
		bound, found := e.Lookup(word)
		if !found {
			break
		}
		fn, isFn := value.AsFunction(bound)
		if !isFn || !fn.Infix {
			break
		}
		args := []core.Value{v}
		consumed := n + 1
		for len(args) < fn.Arity {
			if index+consumed >= len(vals) {
				return value.NoneVal(), 0, verror.NewScriptError(verror.ErrIDArgCount,
					[3]string{fn.Name, strconv.Itoa(fn.Arity), strconv.Itoa(len(args))})
			}
			arg, an, err := e.doPrefix(vals, index+consumed)
			if err != nil {
				return value.NoneVal(), 0, err
			}
			args = append(args, arg)
			consumed += an
		}
		result, err := e.callNative(fn, args, map[string]core.Value{})
		if err != nil {
			return value.NoneVal(), 0, err
		}
		v = result
		n = consumed
	}
	return v, n, nil
}

// doPrefix evaluates one expression without infix continuation.
func (e *Evaluator) doPrefix(vals []core.Value, index int) (core.Value, int, error) {
	if index >= len(vals) {
		return value.NoneVal(), 0, verror.NewScriptError(verror.ErrIDInvalidOperation,
			[3]string{"expression expected", "", ""})
	}
	cur := vals[index]
	switch cur.GetType() {
	case value.TypeWord:
		sym, _ := value.AsWord(cur)
		bound, ok := e.Lookup(sym)
		if !ok {
			return value.NoneVal(), 0, verror.NewScriptError(verror.ErrIDNoValue, [3]string{sym, "", ""})
		}
		if trace.Enabled() {
			trace.Eval(sym, bound.Mold())
		}
		if fn, isFn := value.AsFunction(bound); isFn {
			return e.callFunction(fn, vals, index)
		}
		return bound, 1, nil

	case value.TypeSetWord:
		sym, _ := value.AsWord(cur)
		v, n, err := e.DoStep(vals, index+1)
		if err != nil {
			return value.NoneVal(), 0, err
		}
		if err := e.SetWord(sym, v); err != nil {
			return value.NoneVal(), 0, err
		}
		return v, n + 1, nil

	case value.TypeGetWord:
		sym, _ := value.AsWord(cur)
		bound, ok := e.Lookup(sym)
		if !ok {
			return value.NoneVal(), 0, verror.NewScriptError(verror.ErrIDNoValue, [3]string{sym, "", ""})
		}
		return bound, 1, nil

	case value.TypeLitWord:
		sym, _ := value.AsWord(cur)
		return value.WordVal(sym), 1, nil

	case value.TypeQuoted:
		return value.UnquoteOnce(cur), 1, nil

	case value.TypeGroup, value.TypeGetGroup:
		grp, _ := value.AsBlock(cur)
		v, err := e.DoBlock(grp.Cells())
		if err != nil {
			return value.NoneVal(), 0, err
		}
		return v, 1, nil

	case value.TypePath, value.TypeGetPath:
		v, err := e.evalPath(cur)
		if err != nil {
			return value.NoneVal(), 0, err
		}
		return v, 1, nil

	default:
		// Self-evaluating: literals, series, bitsets, functions.
		return cur, 1, nil
	}
}

// callFunction collects arguments (and --flag refinements between and
// after them) for a prefix call beginning at index.
func (e *Evaluator) callFunction(fn *value.FunctionValue, vals []core.Value, index int) (core.Value, int, error) {
	args := make([]core.Value, 0, fn.Arity)
	refValues := map[string]core.Value{}
	consumed := 1
	for {
		if index+consumed < len(vals) {
			if ref, ok := refinementWord(vals[index+consumed]); ok && fn.HasRefinement(ref) {
				refValues[ref] = value.LogicVal(true)
				consumed++
				continue
			}
		}
		if len(args) >= fn.Arity {
			break
		}
		if index+consumed >= len(vals) {
			return value.NoneVal(), 0, verror.NewScriptError(verror.ErrIDArgCount,
				[3]string{fn.Name, strconv.Itoa(fn.Arity), strconv.Itoa(len(args))})
		}
		arg, n, err := e.DoStep(vals, index+consumed)
		if err != nil {
			return value.NoneVal(), 0, err
		}
		args = append(args, arg)
		consumed += n
	}
	result, err := e.callNative(fn, args, refValues)
	if err != nil {
		return value.NoneVal(), 0, err
	}
	return result, consumed, nil
}

func (e *Evaluator) callNative(fn *value.FunctionValue, args []core.Value, refValues map[string]core.Value) (core.Value, error) {
	if e.Halted() {
		return value.NoneVal(), verror.NewHaltError()
	}
	return fn.Fn(args, refValues, e)
}

// evalPath resolves a path of the shape word/index/... against
// bound series. Only picking is supported; anything else is an error.
func (e *Evaluator) evalPath(v core.Value) (core.Value, error) {
	path, _ := value.AsPath(v)
	if len(path.Parts) == 0 {
		return value.NoneVal(), verror.NewScriptError(verror.ErrIDInvalidOperation, [3]string{"empty path", "", ""})
	}
	head, ok := value.AsWord(path.Parts[0])
	if !ok {
		return value.NoneVal(), verror.NewScriptError(verror.ErrIDInvalidOperation, [3]string{"path head must be a word", "", ""})
	}
	cur, found := e.Lookup(head)
	if !found {
		return value.NoneVal(), verror.NewScriptError(verror.ErrIDNoValue, [3]string{head, "", ""})
	}
	for _, part := range path.Parts[1:] {
		idx, isInt := value.AsInteger(part)
		if !isInt {
			return value.NoneVal(), verror.NewScriptError(verror.ErrIDInvalidOperation,
				[3]string{"path pick needs an integer: " + part.Mold(), "", ""})
		}
		blk, isBlk := value.AsBlock(cur)
		if !isBlk {
			return value.NoneVal(), verror.NewScriptError(verror.ErrIDTypeMismatch,
				[3]string{path.Mold(), "block!", value.TypeToString(cur.GetType())})
		}
		cells := blk.Cells()
		if idx < 1 || int(idx) > len(cells) {
			return value.NoneVal(), verror.NewScriptError(verror.ErrIDOutOfBounds,
				[3]string{strconv.Itoa(int(idx)), strconv.Itoa(len(cells)), ""})
		}
		cur = cells[idx-1]
	}
	return cur, nil
}

// refinementWord recognizes a --flag word at a call site.
func refinementWord(v core.Value) (string, bool) {
	if v.GetType() != value.TypeWord {
		return "", false
	}
	sym, _ := value.AsWord(v)
	if strings.HasPrefix(sym, "--") && len(sym) > 2 {
		return sym[2:], true
	}
	return "", false
}
