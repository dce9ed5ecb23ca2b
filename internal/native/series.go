package native

import (
	"github.com/marcin-radoszewski/ren/internal/core"
	"github.com/marcin-radoszewski/ren/internal/value"
)

func seriesNatives() []spec {
	return []spec{
		{name: "length?", arity: 1, fn: NativeLength},
		{name: "first", arity: 1, fn: NativeFirst},
		{name: "next", arity: 1, fn: NativeNext},
		{name: "skip", arity: 2, fn: NativeSkip},
		{name: "head", arity: 1, fn: NativeHead},
		{name: "tail", arity: 1, fn: NativeTail},
		{name: "copy", arity: 1, fn: NativeCopy},
		{name: "append", arity: 2, fn: NativeAppend},
		{name: "insert", arity: 2, fn: NativeInsert},
		{name: "remove", arity: 1, fn: NativeRemove},
		{name: "reverse", arity: 1, fn: NativeReverse},
		{name: "freeze", arity: 1, fn: NativeFreeze},
	}
}

// NativeLength returns the element count from the view position.
func NativeLength(args []core.Value, refValues map[string]core.Value, eval core.Evaluator) (core.Value, error) {
	if len(args) != 1 {
		return value.NoneVal(), arityError("length?", 1, len(args))
	}
	switch v := args[0].(type) {
	case *value.TextValue:
		return value.IntVal(int64(v.Length())), nil
	case *value.BinaryValue:
		return value.IntVal(int64(v.Length())), nil
	case *value.BlockValue:
		return value.IntVal(int64(v.Length())), nil
	}
	return value.NoneVal(), typeError("length?", "series!", args[0])
}

func NativeFirst(args []core.Value, refValues map[string]core.Value, eval core.Evaluator) (core.Value, error) {
	if len(args) != 1 {
		return value.NoneVal(), arityError("first", 1, len(args))
	}
	switch v := args[0].(type) {
	case *value.TextValue:
		if v.IsTail() {
			return value.NoneVal(), nil
		}
		return value.CharVal(v.At(v.Index)), nil
	case *value.BinaryValue:
		if v.IsTail() {
			return value.NoneVal(), nil
		}
		return value.IntVal(int64(v.At(v.Index))), nil
	case *value.BlockValue:
		if v.IsTail() {
			return value.NoneVal(), nil
		}
		return v.At(v.Index), nil
	}
	return value.NoneVal(), typeError("first", "series!", args[0])
}

func NativeNext(args []core.Value, refValues map[string]core.Value, eval core.Evaluator) (core.Value, error) {
	if len(args) != 1 {
		return value.NoneVal(), arityError("next", 1, len(args))
	}
	return skipSeries("next", args[0], 1)
}

func NativeSkip(args []core.Value, refValues map[string]core.Value, eval core.Evaluator) (core.Value, error) {
	if len(args) != 2 {
		return value.NoneVal(), arityError("skip", 2, len(args))
	}
	n, ok := value.AsInteger(args[1])
	if !ok {
		return value.NoneVal(), typeError("skip", "integer!", args[1])
	}
	return skipSeries("skip", args[0], int(n))
}

// skipSeries returns a sibling view advanced by n, saturating at head
// and tail.
func skipSeries(name string, v core.Value, n int) (core.Value, error) {
	switch s := v.(type) {
	case *value.TextValue:
		return s.Skip(n), nil
	case *value.BinaryValue:
		return s.Skip(n), nil
	case *value.BlockValue:
		return s.Skip(n), nil
	}
	return value.NoneVal(), typeError(name, "series!", v)
}

func NativeHead(args []core.Value, refValues map[string]core.Value, eval core.Evaluator) (core.Value, error) {
	if len(args) != 1 {
		return value.NoneVal(), arityError("head", 1, len(args))
	}
	switch s := args[0].(type) {
	case *value.TextValue:
		return s.TextAt(0), nil
	case *value.BinaryValue:
		return s.BinaryAt(0), nil
	case *value.BlockValue:
		return s.BlockAt(0), nil
	}
	return value.NoneVal(), typeError("head", "series!", args[0])
}

func NativeTail(args []core.Value, refValues map[string]core.Value, eval core.Evaluator) (core.Value, error) {
	if len(args) != 1 {
		return value.NoneVal(), arityError("tail", 1, len(args))
	}
	switch s := args[0].(type) {
	case *value.TextValue:
		return s.TextAt(s.FullLength()), nil
	case *value.BinaryValue:
		return s.BinaryAt(s.FullLength()), nil
	case *value.BlockValue:
		return s.BlockAt(s.FullLength()), nil
	}
	return value.NoneVal(), typeError("tail", "series!", args[0])
}

// NativeCopy copies from the view position to the tail into a fresh,
// unfrozen series.
func NativeCopy(args []core.Value, refValues map[string]core.Value, eval core.Evaluator) (core.Value, error) {
	if len(args) != 1 {
		return value.NoneVal(), arityError("copy", 1, len(args))
	}
	switch s := args[0].(type) {
	case *value.TextValue:
		return s.Copy(), nil
	case *value.BinaryValue:
		return s.Copy(), nil
	case *value.BlockValue:
		return s.Copy(), nil
	}
	return value.NoneVal(), typeError("copy", "series!", args[0])
}

func NativeAppend(args []core.Value, refValues map[string]core.Value, eval core.Evaluator) (core.Value, error) {
	if len(args) != 2 {
		return value.NoneVal(), arityError("append", 2, len(args))
	}
	switch s := args[0].(type) {
	case *value.TextValue:
		if err := mutableCheck("append", s.Series.Frozen(), s.Series.Locked()); err != nil {
			return value.NoneVal(), err
		}
		s.AppendRunes([]rune(args[1].Form()))
		return s, nil
	case *value.BinaryValue:
		if err := mutableCheck("append", s.Series.Frozen(), s.Series.Locked()); err != nil {
			return value.NoneVal(), err
		}
		s.InsertAt(s.FullLength(), []byte(args[1].Form()))
		return s, nil
	case *value.BlockValue:
		if err := mutableCheck("append", s.Series.Frozen(), s.Series.Locked()); err != nil {
			return value.NoneVal(), err
		}
		if blk, ok := value.AsBlock(args[1]); ok && args[1].GetType() == value.TypeBlock {
			s.InsertAt(s.FullLength(), blk.Cells())
		} else {
			s.Append(args[1])
		}
		return s, nil
	}
	return value.NoneVal(), typeError("append", "series!", args[0])
}

// NativeInsert splices a value before the view position and returns
// the view past the insertion.
func NativeInsert(args []core.Value, refValues map[string]core.Value, eval core.Evaluator) (core.Value, error) {
	if len(args) != 2 {
		return value.NoneVal(), arityError("insert", 2, len(args))
	}
	switch s := args[0].(type) {
	case *value.TextValue:
		if err := mutableCheck("insert", s.Series.Frozen(), s.Series.Locked()); err != nil {
			return value.NoneVal(), err
		}
		rs := []rune(args[1].Form())
		s.InsertAt(s.Index, rs)
		return s.TextAt(s.Index + len(rs)), nil
	case *value.BinaryValue:
		if err := mutableCheck("insert", s.Series.Frozen(), s.Series.Locked()); err != nil {
			return value.NoneVal(), err
		}
		bs := []byte(args[1].Form())
		s.InsertAt(s.Index, bs)
		return s.BinaryAt(s.Index + len(bs)), nil
	case *value.BlockValue:
		if err := mutableCheck("insert", s.Series.Frozen(), s.Series.Locked()); err != nil {
			return value.NoneVal(), err
		}
		var cells []core.Value
		if blk, ok := value.AsBlock(args[1]); ok && args[1].GetType() == value.TypeBlock {
			cells = blk.Cells()
		} else {
			cells = []core.Value{args[1]}
		}
		s.InsertAt(s.Index, cells)
		return s.BlockAt(s.Index + len(cells)), nil
	}
	return value.NoneVal(), typeError("insert", "series!", args[0])
}

// NativeRemove deletes one element at the view position.
func NativeRemove(args []core.Value, refValues map[string]core.Value, eval core.Evaluator) (core.Value, error) {
	if len(args) != 1 {
		return value.NoneVal(), arityError("remove", 1, len(args))
	}
	switch s := args[0].(type) {
	case *value.TextValue:
		if err := mutableCheck("remove", s.Series.Frozen(), s.Series.Locked()); err != nil {
			return value.NoneVal(), err
		}
		s.RemoveRange(s.Index, s.Index+1)
		return s, nil
	case *value.BinaryValue:
		if err := mutableCheck("remove", s.Series.Frozen(), s.Series.Locked()); err != nil {
			return value.NoneVal(), err
		}
		s.RemoveRange(s.Index, s.Index+1)
		return s, nil
	case *value.BlockValue:
		if err := mutableCheck("remove", s.Series.Frozen(), s.Series.Locked()); err != nil {
			return value.NoneVal(), err
		}
		s.RemoveRange(s.Index, s.Index+1)
		return s, nil
	}
	return value.NoneVal(), typeError("remove", "series!", args[0])
}

// NativeReverse reverses a block in place from the view position.
func NativeReverse(args []core.Value, refValues map[string]core.Value, eval core.Evaluator) (core.Value, error) {
	if len(args) != 1 {
		return value.NoneVal(), arityError("reverse", 1, len(args))
	}
	blk, ok := value.AsBlock(args[0])
	if !ok {
		return value.NoneVal(), typeError("reverse", "block!", args[0])
	}
	if err := mutableCheck("reverse", blk.Series.Frozen(), blk.Series.Locked()); err != nil {
		return value.NoneVal(), err
	}
	blk.Reverse()
	return blk, nil
}

// NativeFreeze marks a series permanently read-only.
func NativeFreeze(args []core.Value, refValues map[string]core.Value, eval core.Evaluator) (core.Value, error) {
	if len(args) != 1 {
		return value.NoneVal(), arityError("freeze", 1, len(args))
	}
	switch s := args[0].(type) {
	case *value.TextValue:
		s.Series.Freeze()
		return s, nil
	case *value.BinaryValue:
		s.Series.Freeze()
		return s, nil
	case *value.BlockValue:
		s.Series.Freeze()
		return s, nil
	}
	return value.NoneVal(), typeError("freeze", "series!", args[0])
}
