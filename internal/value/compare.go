package value

import (
	"strings"

	"github.com/marcin-radoszewski/ren/internal/core"
)

// Strictness selects the comparison contract.
type Strictness int

const (
	// CompareLoose promotes integer to decimal, folds case on text and
	// word spellings, and ignores quote levels.
	CompareLoose Strictness = iota
	// CompareStrict requires identical kind, identical quote level, and
	// identical content (case-sensitive).
	CompareStrict
	// CompareGreaterEqual and CompareGreater demand orderable kinds.
	CompareGreaterEqual
	CompareGreater
)

// Compare applies the comparison contract to two values. For the two
// equality strictnesses the result is equality; for the ordering
// strictnesses it is a >= b / a > b. Ordering on kinds that have no
// order reports ok=false; equality never does.
//
// Word comparison considers spelling only; binding identity is not a
// comparison level here.
func Compare(a, b core.Value, strictness Strictness) (result bool, ok bool) {
	switch strictness {
	case CompareStrict:
		return strictEqual(a, b), true
	case CompareLoose:
		return looseEqual(a, b), true
	case CompareGreaterEqual:
		c, ok := order(a, b)
		return c >= 0, ok
	case CompareGreater:
		c, ok := order(a, b)
		return c > 0, ok
	}
	return false, false
}

// strictEqual includes the quote level and exact kind.
func strictEqual(a, b core.Value) bool {
	ia, la := Unquote(a)
	ib, lb := Unquote(b)
	if la != lb || ia.GetType() != ib.GetType() {
		return false
	}
	if at, ok := AsText(ia); ok {
		bt, _ := AsText(ib)
		return at.EqualsFold(bt, true)
	}
	if aw, ok := AsWord(ia); ok {
		bw, _ := AsWord(ib)
		return aw == bw
	}
	return ia.Equals(ib)
}

// looseEqual ignores quote level, promotes numerics, folds case.
func looseEqual(a, b core.Value) bool {
	ia, _ := Unquote(a)
	ib, _ := Unquote(b)

	if an, aok := asNumeric(ia); aok {
		if bn, bok := asNumeric(ib); bok {
			return an.Cmp(bn) == 0
		}
		return false
	}

	ta, tb := ia.GetType(), ib.GetType()
	if IsWordType(ta) && IsWordType(tb) {
		aw, _ := AsWord(ia)
		bw, _ := AsWord(ib)
		return strings.EqualFold(aw, bw)
	}
	if ta != tb {
		return false
	}
	switch ta {
	case TypeText:
		at, _ := AsText(ia)
		bt, _ := AsText(ib)
		return at.EqualsFold(bt, false)
	case TypeChar:
		ar, _ := AsChar(ia)
		br, _ := AsChar(ib)
		return foldRune(ar) == foldRune(br)
	case TypeBlock, TypeGroup, TypeGetGroup:
		at, _ := AsBlock(ia)
		bt, _ := AsBlock(ib)
		ac, bc := at.Cells(), bt.Cells()
		if len(ac) != len(bc) {
			return false
		}
		for i := range ac {
			if !looseEqual(ac[i], bc[i]) {
				return false
			}
		}
		return true
	}
	return ia.Equals(ib)
}

// order returns -1/0/1 for orderable kinds; ok=false otherwise.
func order(a, b core.Value) (int, bool) {
	ia, _ := Unquote(a)
	ib, _ := Unquote(b)

	if an, aok := asNumeric(ia); aok {
		if bn, bok := asNumeric(ib); bok {
			return an.Cmp(bn), true
		}
		return 0, false
	}

	ta, tb := ia.GetType(), ib.GetType()
	if ta != tb {
		return 0, false
	}
	switch ta {
	case TypeText:
		at, _ := AsText(ia)
		bt, _ := AsText(ib)
		return strings.Compare(at.String(), bt.String()), true
	case TypeChar:
		ar, _ := AsChar(ia)
		br, _ := AsChar(ib)
		switch {
		case ar < br:
			return -1, true
		case ar > br:
			return 1, true
		}
		return 0, true
	case TypeBinary:
		ab, _ := AsBinary(ia)
		bb, _ := AsBinary(ib)
		return strings.Compare(string(ab.Bytes()), string(bb.Bytes())), true
	}
	return 0, false
}

// asNumeric promotes integer and decimal to a common decimal form.
func asNumeric(v core.Value) (*DecimalValue, bool) {
	switch v.GetType() {
	case TypeInteger:
		i, _ := AsInteger(v)
		return NewDecimalFromInt(i), true
	case TypeDecimal:
		d, _ := AsDecimal(v)
		return d, true
	}
	return nil, false
}

func foldRune(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r - 'A' + 'a'
	}
	return r
}
