package eval_test

import (
	"strings"
	"testing"

	"github.com/marcin-radoszewski/ren/internal/api"
	"github.com/marcin-radoszewski/ren/internal/parse"
	"github.com/marcin-radoszewski/ren/internal/value"
)

func evalSource(t *testing.T, source string) (string, error) {
	t.Helper()
	interp := api.New()
	v, err := interp.EvalSource(source)
	if err != nil {
		return "", err
	}
	return v.Mold(), nil
}

func TestEval_Expressions(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{`42`, "42"},
		{`1 + 2`, "3"},
		{`1 + 2 * 3`, "9"}, // strict left-to-right, no precedence
		{`10 / 4`, "2.5"},
		{`x: 5 x + 1`, "6"},
		{`'foo`, "foo"},
		{`(1 + 1)`, "2"},
		{`[1 + 2]`, "[1 + 2]"}, // blocks are inert
		{`reduce [1 + 2 3]`, "[3 3]"},
		{`do [2 * 4]`, "8"},
		{`if true [7]`, "7"},
		{`either false [1] [2]`, "2"},
		{`not none`, "true"},
		{`equal? 1 1.0`, "true"},
		{`strict-equal? 1 1.0`, "false"},
		{`3 > 2`, "true"},
		{`length? "abc"`, "3"},
		{`first [a b]`, "a"},
		{`reverse copy [a b c]`, "[c b a]"},
		{`quote 5`, "'5"},
	}
	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			got, err := evalSource(t, tt.source)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("= %s, want %s", got, tt.want)
			}
		})
	}
}

func TestEval_DoStepConsumption(t *testing.T) {
	interp := api.New()
	cells, err := parse.LoadString(`1 + 2 "rest"`)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	v, n, err := interp.Evaluator.DoStep(cells, 0)
	if err != nil {
		t.Fatalf("DoStep error: %v", err)
	}
	if n != 3 {
		t.Errorf("consumed %d cells, want 3 (the infix chain)", n)
	}
	if i, _ := value.AsInteger(v); i != 3 {
		t.Errorf("value = %s, want 3", v.Mold())
	}

	v, n, err = interp.Evaluator.DoStep(cells, 3)
	if err != nil {
		t.Fatalf("DoStep error: %v", err)
	}
	if n != 1 {
		t.Errorf("consumed %d cells, want 1", n)
	}
	if tv, ok := value.AsText(v); !ok || tv.String() != "rest" {
		t.Errorf("value = %s, want \"rest\"", v.Mold())
	}
}

func TestEval_UnboundWord(t *testing.T) {
	_, err := evalSource(t, `definitely-unbound`)
	if err == nil {
		t.Fatal("unbound word did not error")
	}
	if !strings.Contains(err.Error(), "definitely-unbound") {
		t.Errorf("error does not name the word: %v", err)
	}
}

func TestEval_SetWordScoping(t *testing.T) {
	interp := api.New()
	if _, err := interp.EvalSource(`x: 1 x: x + 1`); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, ok := interp.Evaluator.Lookup("x")
	if !ok {
		t.Fatal("x unbound after assignment")
	}
	if i, _ := value.AsInteger(v); i != 2 {
		t.Errorf("x = %s, want 2", v.Mold())
	}
}

func TestEval_PathPick(t *testing.T) {
	interp := api.New()
	v, err := interp.EvalSource(`b: [10 20 30] b/2`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if i, _ := value.AsInteger(v); i != 20 {
		t.Errorf("b/2 = %s, want 20", v.Mold())
	}
	if _, err := interp.EvalSource(`b/9`); err == nil {
		t.Error("out-of-range pick did not error")
	}
}

func TestEval_Halt(t *testing.T) {
	interp := api.New()
	interp.Evaluator.Halt()
	if _, err := interp.EvalSource(`1 + 1`); err == nil {
		t.Fatal("halted evaluator still evaluated")
	}
	interp.Evaluator.ClearHalt()
	if _, err := interp.EvalSource(`1 + 1`); err != nil {
		t.Fatalf("ClearHalt did not recover: %v", err)
	}
}

func TestEval_DivByZero(t *testing.T) {
	if _, err := evalSource(t, `1 / 0`); err == nil {
		t.Fatal("division by zero did not error")
	}
}
