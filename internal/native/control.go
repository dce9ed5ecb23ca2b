package native

import (
	"fmt"

	"github.com/marcin-radoszewski/ren/internal/core"
	"github.com/marcin-radoszewski/ren/internal/value"
)

func controlNatives() []spec {
	return []spec{
		{name: "do", arity: 1, fn: NativeDo},
		{name: "reduce", arity: 1, fn: NativeReduce},
		{name: "if", arity: 2, fn: NativeIf},
		{name: "either", arity: 3, fn: NativeEither},
		{name: "not", arity: 1, fn: NativeNot},
		{name: "print", arity: 1, fn: NativePrint},
		{name: "probe", arity: 1, fn: NativeProbe},
		{name: "quote", arity: 1, fn: NativeQuote},
	}
}

// NativeDo evaluates a block (or returns any other value unchanged).
func NativeDo(args []core.Value, refValues map[string]core.Value, eval core.Evaluator) (core.Value, error) {
	if len(args) != 1 {
		return value.NoneVal(), arityError("do", 1, len(args))
	}
	if blk, ok := value.AsBlock(args[0]); ok && value.IsAnyBlockType(args[0].GetType()) {
		return eval.DoBlock(blk.Cells())
	}
	return args[0], nil
}

// NativeReduce evaluates each expression in a block and collects the
// results into a new block.
func NativeReduce(args []core.Value, refValues map[string]core.Value, eval core.Evaluator) (core.Value, error) {
	if len(args) != 1 {
		return value.NoneVal(), arityError("reduce", 1, len(args))
	}
	blk, ok := value.AsBlock(args[0])
	if !ok {
		return args[0], nil
	}
	cells := blk.Cells()
	var out []core.Value
	i := 0
	for i < len(cells) {
		v, n, err := eval.DoStep(cells, i)
		if err != nil {
			return value.NoneVal(), err
		}
		out = append(out, v)
		i += n
	}
	return value.BlockVal(out), nil
}

func NativeIf(args []core.Value, refValues map[string]core.Value, eval core.Evaluator) (core.Value, error) {
	if len(args) != 2 {
		return value.NoneVal(), arityError("if", 2, len(args))
	}
	if !value.IsTruthy(args[0]) {
		return value.NoneVal(), nil
	}
	return NativeDo(args[1:], refValues, eval)
}

func NativeEither(args []core.Value, refValues map[string]core.Value, eval core.Evaluator) (core.Value, error) {
	if len(args) != 3 {
		return value.NoneVal(), arityError("either", 3, len(args))
	}
	branch := args[2]
	if value.IsTruthy(args[0]) {
		branch = args[1]
	}
	return NativeDo([]core.Value{branch}, refValues, eval)
}

func NativeNot(args []core.Value, refValues map[string]core.Value, eval core.Evaluator) (core.Value, error) {
	if len(args) != 1 {
		return value.NoneVal(), arityError("not", 1, len(args))
	}
	return value.LogicVal(!value.IsTruthy(args[0])), nil
}

// NativePrint writes the formed value and a newline to the output.
func NativePrint(args []core.Value, refValues map[string]core.Value, eval core.Evaluator) (core.Value, error) {
	if len(args) != 1 {
		return value.NoneVal(), arityError("print", 1, len(args))
	}
	fmt.Fprintln(eval.GetOutputWriter(), args[0].Form())
	return value.NoneVal(), nil
}

// NativeProbe writes the molded value and returns it, for inspection
// mid-expression.
func NativeProbe(args []core.Value, refValues map[string]core.Value, eval core.Evaluator) (core.Value, error) {
	if len(args) != 1 {
		return value.NoneVal(), arityError("probe", 1, len(args))
	}
	fmt.Fprintln(eval.GetOutputWriter(), args[0].Mold())
	return args[0], nil
}

// NativeQuote raises the quote level of its argument by one.
func NativeQuote(args []core.Value, refValues map[string]core.Value, eval core.Evaluator) (core.Value, error) {
	if len(args) != 1 {
		return value.NoneVal(), arityError("quote", 1, len(args))
	}
	return value.QuotedVal(args[0], 1), nil
}
