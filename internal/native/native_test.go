package native

import (
	"testing"

	"github.com/marcin-radoszewski/ren/internal/core"
	"github.com/marcin-radoszewski/ren/internal/frame"
	"github.com/marcin-radoszewski/ren/internal/value"
)

func TestRegister_BindsNativesAndConstants(t *testing.T) {
	root := frame.NewFrame(-1)
	Register(root)
	for _, name := range []string{"parse", "charset", "equal?", "+", "length?", "do", "print"} {
		v, ok := root.Get(name)
		if !ok {
			t.Errorf("native %q not registered", name)
			continue
		}
		if name == "parse" || name == "charset" {
			if _, isFn := value.AsFunction(v); !isFn {
				t.Errorf("%q bound to %s, want function", name, v.Mold())
			}
		}
	}
	v, ok := root.Get("true")
	if !ok || !value.IsTruthy(v) {
		t.Error("true constant missing or falsy")
	}
	if v, ok := root.Get("none"); !ok || v.GetType() != value.TypeNone {
		t.Error("none constant missing")
	}
}

func TestNativeCharset_Forms(t *testing.T) {
	// Text form: every character of the string.
	v, err := NativeCharset([]core.Value{value.TextVal("abc")}, nil, nil)
	if err != nil {
		t.Fatalf("charset text error: %v", err)
	}
	bs, _ := value.AsBitset(v)
	if !bs.Test('a') || !bs.Test('c') || bs.Test('d') {
		t.Error("charset from text has wrong members")
	}

	// Block form with a range and a lone char.
	rangeBlock := value.BlockVal([]core.Value{
		value.CharVal('0'), value.WordVal("-"), value.CharVal('9'),
		value.CharVal('x'),
	})
	v, err = NativeCharset([]core.Value{rangeBlock}, nil, nil)
	if err != nil {
		t.Fatalf("charset block error: %v", err)
	}
	bs, _ = value.AsBitset(v)
	for _, r := range "0479x" {
		if !bs.Test(r) {
			t.Errorf("charset range missing %q", r)
		}
	}
	if bs.Test('a') {
		t.Error("charset range contains 'a'")
	}

	// Wrong kind errors.
	if _, err := NativeCharset([]core.Value{value.IntVal(1)}, nil, nil); err == nil {
		t.Error("charset of integer did not error")
	}
}

func TestNativeMath_Promotion(t *testing.T) {
	v, err := NativeAdd([]core.Value{value.IntVal(2), value.IntVal(3)}, nil, nil)
	if err != nil {
		t.Fatalf("add error: %v", err)
	}
	if i, _ := value.AsInteger(v); i != 5 {
		t.Errorf("2 + 3 = %s", v.Mold())
	}

	half, _ := value.DecimalVal("0.5")
	v, err = NativeAdd([]core.Value{value.IntVal(1), half}, nil, nil)
	if err != nil {
		t.Fatalf("mixed add error: %v", err)
	}
	if _, ok := value.AsDecimal(v); !ok {
		t.Errorf("1 + 0.5 = %s, want decimal", v.Mold())
	}

	if _, err := NativeDivide([]core.Value{value.IntVal(1), value.IntVal(0)}, nil, nil); err == nil {
		t.Error("1 / 0 did not error")
	}
}

func TestNativeCompare_NotComparable(t *testing.T) {
	_, err := NativeGreater([]core.Value{value.IntVal(1), value.TextVal("x")}, nil, nil)
	if err == nil {
		t.Error("ordering across kinds did not error")
	}
}

func TestMutableCheck(t *testing.T) {
	if err := mutableCheck("append", false, false); err != nil {
		t.Errorf("mutable series rejected: %v", err)
	}
	if err := mutableCheck("append", true, false); err == nil {
		t.Error("frozen series accepted")
	}
	if err := mutableCheck("append", false, true); err == nil {
		t.Error("locked series accepted")
	}
}
