package native

import (
	"github.com/marcin-radoszewski/ren/internal/core"
	"github.com/marcin-radoszewski/ren/internal/value"
	"github.com/marcin-radoszewski/ren/internal/verror"
)

func compareNatives() []spec {
	return []spec{
		{name: "equal?", arity: 2, fn: NativeEqual},
		{name: "not-equal?", arity: 2, fn: NativeNotEqual},
		{name: "strict-equal?", arity: 2, fn: NativeStrictEqual},
		{name: "lesser?", arity: 2, fn: NativeLesser},
		{name: "greater?", arity: 2, fn: NativeGreater},
		{name: "lesser-or-equal?", arity: 2, fn: NativeLesserOrEqual},
		{name: "greater-or-equal?", arity: 2, fn: NativeGreaterOrEqual},
		{name: "=", arity: 2, infix: true, fn: NativeEqual},
		{name: "<>", arity: 2, infix: true, fn: NativeNotEqual},
		{name: "==", arity: 2, infix: true, fn: NativeStrictEqual},
		{name: "<", arity: 2, infix: true, fn: NativeLesser},
		{name: ">", arity: 2, infix: true, fn: NativeGreater},
		{name: "<=", arity: 2, infix: true, fn: NativeLesserOrEqual},
		{name: ">=", arity: 2, infix: true, fn: NativeGreaterOrEqual},
	}
}

func compare2(name string, args []core.Value, strictness value.Strictness) (core.Value, error) {
	if len(args) != 2 {
		return value.NoneVal(), arityError(name, 2, len(args))
	}
	result, ok := value.Compare(args[0], args[1], strictness)
	if !ok {
		return value.NoneVal(), verror.NewScriptError(verror.ErrIDNotComparable,
			[3]string{value.TypeToString(args[0].GetType()), value.TypeToString(args[1].GetType()), ""})
	}
	return value.LogicVal(result), nil
}

// NativeEqual is loose equality: 1 = 1.0, case-folded text, quote
// levels ignored.
func NativeEqual(args []core.Value, refValues map[string]core.Value, eval core.Evaluator) (core.Value, error) {
	return compare2("equal?", args, value.CompareLoose)
}

func NativeNotEqual(args []core.Value, refValues map[string]core.Value, eval core.Evaluator) (core.Value, error) {
	v, err := compare2("not-equal?", args, value.CompareLoose)
	if err != nil {
		return v, err
	}
	b, _ := value.AsLogic(v)
	return value.LogicVal(!b), nil
}

// NativeStrictEqual requires identical kind, quote level and content.
func NativeStrictEqual(args []core.Value, refValues map[string]core.Value, eval core.Evaluator) (core.Value, error) {
	return compare2("strict-equal?", args, value.CompareStrict)
}

func NativeGreaterOrEqual(args []core.Value, refValues map[string]core.Value, eval core.Evaluator) (core.Value, error) {
	return compare2("greater-or-equal?", args, value.CompareGreaterEqual)
}

func NativeGreater(args []core.Value, refValues map[string]core.Value, eval core.Evaluator) (core.Value, error) {
	return compare2("greater?", args, value.CompareGreater)
}

func NativeLesser(args []core.Value, refValues map[string]core.Value, eval core.Evaluator) (core.Value, error) {
	v, err := compare2("lesser?", args, value.CompareGreaterEqual)
	if err != nil {
		return v, err
	}
	b, _ := value.AsLogic(v)
	return value.LogicVal(!b), nil
}

func NativeLesserOrEqual(args []core.Value, refValues map[string]core.Value, eval core.Evaluator) (core.Value, error) {
	v, err := compare2("lesser-or-equal?", args, value.CompareGreater)
	if err != nil {
		return v, err
	}
	b, _ := value.AsLogic(v)
	return value.LogicVal(!b), nil
}
