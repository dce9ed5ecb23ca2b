package value

import "testing"

func TestCompare_LoosePromotesNumerics(t *testing.T) {
	one := IntVal(1)
	oneDec, _ := DecimalVal("1.0")
	eq, ok := Compare(one, oneDec, CompareLoose)
	if !ok || !eq {
		t.Error("1 and 1.0 are not loosely equal")
	}
	eq, _ = Compare(one, oneDec, CompareStrict)
	if eq {
		t.Error("1 and 1.0 are strictly equal; kinds differ")
	}
}

func TestCompare_LooseFoldsCase(t *testing.T) {
	eq, _ := Compare(TextVal("Hello"), TextVal("hello"), CompareLoose)
	if !eq {
		t.Error("loose text compare did not fold case")
	}
	eq, _ = Compare(TextVal("Hello"), TextVal("hello"), CompareStrict)
	if eq {
		t.Error("strict text compare folded case")
	}
	eq, _ = Compare(WordVal("Foo"), WordVal("foo"), CompareLoose)
	if !eq {
		t.Error("loose word compare did not fold case")
	}
}

func TestCompare_QuoteLevels(t *testing.T) {
	plain := IntVal(5)
	quoted := QuotedVal(IntVal(5), 1)
	eq, _ := Compare(plain, quoted, CompareLoose)
	if !eq {
		t.Error("loose compare did not ignore the quote level")
	}
	eq, _ = Compare(plain, quoted, CompareStrict)
	if eq {
		t.Error("strict compare ignored the quote level")
	}
	eq, _ = Compare(QuotedVal(IntVal(5), 1), QuotedVal(IntVal(5), 1), CompareStrict)
	if !eq {
		t.Error("equal quote levels with equal payload are not strictly equal")
	}
}

func TestCompare_Ordering(t *testing.T) {
	gt, ok := Compare(IntVal(3), IntVal(2), CompareGreater)
	if !ok || !gt {
		t.Error("3 > 2 failed")
	}
	ge, ok := Compare(IntVal(2), IntVal(2), CompareGreaterEqual)
	if !ok || !ge {
		t.Error("2 >= 2 failed")
	}
	half, _ := DecimalVal("0.5")
	gt, ok = Compare(IntVal(1), half, CompareGreater)
	if !ok || !gt {
		t.Error("1 > 0.5 failed across kinds")
	}
	gt, ok = Compare(TextVal("b"), TextVal("a"), CompareGreater)
	if !ok || !gt {
		t.Error(`"b" > "a" failed`)
	}
}

func TestCompare_IncomparableKinds(t *testing.T) {
	_, ok := Compare(IntVal(1), TextVal("1"), CompareGreater)
	if ok {
		t.Error("ordering integer against text reported ok")
	}
	_, ok = Compare(BlockVal(nil), BlockVal(nil), CompareGreaterEqual)
	if ok {
		t.Error("ordering blocks reported ok")
	}
	// Equality never reports incomparable.
	if _, ok := Compare(IntVal(1), TextVal("1"), CompareLoose); !ok {
		t.Error("loose equality reported incomparable")
	}
}

func TestCompare_BlocksElementwise(t *testing.T) {
	a := BlockVal([]Cell{IntVal(1), TextVal("X")})
	b := BlockVal([]Cell{IntVal(1), TextVal("x")})
	eq, _ := Compare(a, b, CompareLoose)
	if !eq {
		t.Error("loose block compare is not element-wise case-folded")
	}
}

func TestUnquote(t *testing.T) {
	inner, lvl := Unquote(QuotedVal(WordVal("w"), 2))
	if lvl != 2 || inner.GetType() != TypeWord {
		t.Errorf("Unquote = (%s, %d), want (word, 2)", TypeToString(inner.GetType()), lvl)
	}
	// Wrapping a quoted value collapses the levels.
	q := QuotedVal(QuotedVal(WordVal("w"), 1), 1)
	if _, lvl := Unquote(q); lvl != 2 {
		t.Errorf("nested quote level = %d, want 2", lvl)
	}
	once := UnquoteOnce(q)
	if _, lvl := Unquote(once); lvl != 1 {
		t.Errorf("UnquoteOnce level = %d, want 1", lvl)
	}
}
