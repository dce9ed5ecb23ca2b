package native

import (
	"github.com/marcin-radoszewski/ren/internal/core"
	"github.com/marcin-radoszewski/ren/internal/parse/dialect"
	"github.com/marcin-radoszewski/ren/internal/value"
)

func parseNatives() []spec {
	return []spec{
		{name: "parse", arity: 2, refinements: []string{"case", "partial"}, fn: NativeParse},
		{name: "charset", arity: 1, fn: NativeCharset},
	}
}

// NativeParse runs the parse dialect: parse input rules [--case]
// [--partial]. Returns true/false for match/no-match; rule errors
// surface as errors.
func NativeParse(args []core.Value, refValues map[string]core.Value, eval core.Evaluator) (core.Value, error) {
	if len(args) != 2 {
		return value.NoneVal(), arityError("parse", 2, len(args))
	}
	input := args[0]

	rules, ok := value.AsBlock(args[1])
	if !ok || args[1].GetType() != value.TypeBlock {
		return value.NoneVal(), typeError("parse", "block!", args[1])
	}

	opts := dialect.DefaultOptions()
	if caseVal, has := refValues["case"]; has && value.IsTruthy(caseVal) {
		opts.CaseSensitive = true
	}
	if partialVal, has := refValues["partial"]; has && value.IsTruthy(partialVal) {
		opts.Partial = true
	}

	result, err := dialect.Parse(input, rules, opts, eval)
	if err != nil {
		return value.NoneVal(), err
	}
	return value.LogicVal(result.Matched), nil
}

// NativeCharset builds a bitset from a text, a char, or a block of
// texts, chars and #"a" - #"z" ranges.
func NativeCharset(args []core.Value, refValues map[string]core.Value, eval core.Evaluator) (core.Value, error) {
	if len(args) != 1 {
		return value.NoneVal(), arityError("charset", 1, len(args))
	}
	bs := value.NewBitsetValue()
	if err := charsetAdd(bs, args[0]); err != nil {
		return value.NoneVal(), err
	}
	return bs, nil
}

func charsetAdd(bs *value.BitsetValue, v core.Value) error {
	switch v.GetType() {
	case value.TypeText:
		tv, _ := value.AsText(v)
		for _, r := range tv.String() {
			bs.Set(r)
		}
		return nil
	case value.TypeChar:
		r, _ := value.AsChar(v)
		bs.Set(r)
		return nil
	case value.TypeBlock:
		blk, _ := value.AsBlock(v)
		cells := blk.Cells()
		for i := 0; i < len(cells); i++ {
			// Range form: #"a" - #"z"
			if i+2 < len(cells) && isDashWord(cells[i+1]) {
				lo, loOK := value.AsChar(cells[i])
				hi, hiOK := value.AsChar(cells[i+2])
				if loOK && hiOK {
					for r := lo; r <= hi; r++ {
						bs.Set(r)
					}
					i += 2
					continue
				}
			}
			if err := charsetAdd(bs, cells[i]); err != nil {
				return err
			}
		}
		return nil
	}
	return typeError("charset", "text! char! block!", v)
}

func isDashWord(v core.Value) bool {
	if v.GetType() != value.TypeWord {
		return false
	}
	sym, _ := value.AsWord(v)
	return sym == "-"
}
