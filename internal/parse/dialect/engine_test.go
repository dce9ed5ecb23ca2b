package dialect_test

import (
	"testing"

	"github.com/marcin-radoszewski/ren/internal/api"
	"github.com/marcin-radoszewski/ren/internal/core"
	"github.com/marcin-radoszewski/ren/internal/parse"
	"github.com/marcin-radoszewski/ren/internal/parse/dialect"
	"github.com/marcin-radoszewski/ren/internal/value"
)

// load returns the single value loaded from source.
func load(t *testing.T, source string) core.Value {
	t.Helper()
	cells, err := parse.LoadString(source)
	if err != nil {
		t.Fatalf("LoadString(%q) error: %v", source, err)
	}
	if len(cells) != 1 {
		t.Fatalf("LoadString(%q) = %d values, want 1", source, len(cells))
	}
	return cells[0]
}

// run parses inputSrc against rulesSrc with the given options.
func run(t *testing.T, interp *api.Interpreter, inputSrc, rulesSrc string, opts dialect.ParseOptions) (dialect.Result, error) {
	t.Helper()
	input := load(t, inputSrc)
	rules, ok := value.AsBlock(load(t, rulesSrc))
	if !ok {
		t.Fatalf("rules %q did not load as a block", rulesSrc)
	}
	return interp.Parse(input, rules, opts)
}

func mustMatch(t *testing.T, interp *api.Interpreter, inputSrc, rulesSrc string) dialect.Result {
	t.Helper()
	result, err := run(t, interp, inputSrc, rulesSrc, dialect.DefaultOptions())
	if err != nil {
		t.Fatalf("parse %s %s error: %v", inputSrc, rulesSrc, err)
	}
	if !result.Matched {
		t.Fatalf("parse %s %s = no match, want match", inputSrc, rulesSrc)
	}
	return result
}

func mustNotMatch(t *testing.T, interp *api.Interpreter, inputSrc, rulesSrc string) {
	t.Helper()
	result, err := run(t, interp, inputSrc, rulesSrc, dialect.DefaultOptions())
	if err != nil {
		t.Fatalf("parse %s %s error: %v", inputSrc, rulesSrc, err)
	}
	if result.Matched {
		t.Fatalf("parse %s %s = match, want no match", inputSrc, rulesSrc)
	}
}

// lookupMold fetches a bound value and molds it.
func lookupMold(t *testing.T, interp *api.Interpreter, word string) string {
	t.Helper()
	v, ok := interp.Evaluator.Lookup(word)
	if !ok {
		t.Fatalf("word %q is unbound after parse", word)
	}
	return v.Mold()
}

func TestParse_TextLiterals(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		rules    string
		matched  bool
		wantTail int
	}{
		{"exact literal", `"abc"`, `["abc" end]`, true, 3},
		{"sequence of literals", `"hello world"`, `["hello" " " "world" end]`, true, 11},
		{"case folded by default", `"Hello"`, `["hello" end]`, true, 5},
		{"wrong literal", `"abc"`, `["abd" end]`, false, 0},
		{"literal longer than input", `"ab"`, `["abc" end]`, false, 0},
		{"char literal", `"abc"`, `[#"a" "bc" end]`, true, 3},
		{"tag matches raw form", `"x<i>y"`, `["x" <i> "y" end]`, true, 5},
		{"partial without end fails", `"abc"`, `["ab"]`, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			interp := api.New()
			result, err := run(t, interp, tt.input, tt.rules, dialect.DefaultOptions())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.Matched != tt.matched {
				t.Fatalf("Matched = %v, want %v", result.Matched, tt.matched)
			}
			if tt.matched && result.Tail != tt.wantTail {
				t.Errorf("Tail = %d, want %d", result.Tail, tt.wantTail)
			}
		})
	}
}

func TestParse_CaseSensitive(t *testing.T) {
	interp := api.New()
	opts := dialect.DefaultOptions()
	opts.CaseSensitive = true
	result, err := run(t, interp, `"Hello"`, `["hello" end]`, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Matched {
		t.Error("case-sensitive parse matched folded text")
	}
	result, err = run(t, interp, `"Hello"`, `["Hello" end]`, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Matched {
		t.Error("case-sensitive parse rejected exact text")
	}
}

func TestParse_Alternation(t *testing.T) {
	interp := api.New()
	mustMatch(t, interp, `"cat"`, `["dog" | "cat" end]`)
	mustMatch(t, interp, `"cat"`, `[["dog" | "cat"] end]`)
	mustMatch(t, interp, `"dog"`, `[["dog" | "cat"] end]`)
	mustNotMatch(t, interp, `"cow"`, `[["dog" | "cat"] end]`)

	// Alternatives are tried strictly left to right.
	res := mustMatch(t, interp, `"ab"`, `[["a" | "ab"] to end]`)
	if res.Tail != 2 {
		t.Errorf("Tail = %d, want 2", res.Tail)
	}
}

func TestParse_EmptyAlternative(t *testing.T) {
	interp := api.New()
	// A trailing | introduces an empty alternative that matches empty.
	mustMatch(t, interp, `"x"`, `[["y" |] "x" end]`)
}

func TestParse_BlockInput(t *testing.T) {
	interp := api.New()
	// Bare integers in rules are repeat counts, so integer cells match
	// quoted.
	mustMatch(t, interp, `[1 2 3]`, `['1 '2 '3 end]`)
	mustMatch(t, interp, `[1 "two" c]`, `[integer! text! word! end]`)
	mustMatch(t, interp, `[a b]`, `['a 'b end]`)
	mustNotMatch(t, interp, `[a b]`, `['b 'a end]`)
	mustMatch(t, interp, `[#x <t>]`, `[#x <t> end]`)
}

func TestParse_BlockLiteralRepeats(t *testing.T) {
	interp := api.New()
	// Integer rule elements are repeat counts, so literal integers in
	// block input match via quoting or datatypes.
	mustMatch(t, interp, `[1 1 1]`, `[3 integer! end]`)
	mustMatch(t, interp, `[x x]`, `[2 'x end]`)
	mustNotMatch(t, interp, `[x x x]`, `[2 'x end]`)
}

func TestParse_BinaryInput(t *testing.T) {
	interp := api.New()
	mustMatch(t, interp, `#{DEADBEEF}`, `[#{DEAD} #{BEEF} end]`)
	mustNotMatch(t, interp, `#{DEADBEEF}`, `[#{BEEF} to end]`)
	res := mustMatch(t, interp, `#{0102}`, `[skip skip end]`)
	if res.Tail != 2 {
		t.Errorf("Tail = %d, want 2", res.Tail)
	}
}

func TestParse_PartOption(t *testing.T) {
	interp := api.New()
	opts := dialect.DefaultOptions()
	opts.Part = 2
	result, err := run(t, interp, `"abcd"`, `["ab" end]`, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Matched {
		t.Error("--part 2 did not stop the input at position 2")
	}
}

func TestParse_PartialOption(t *testing.T) {
	interp := api.New()
	opts := dialect.DefaultOptions()
	opts.Partial = true
	result, err := run(t, interp, `"abcd"`, `["ab"]`, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Matched {
		t.Error("--partial rejected a prefix match")
	}
	if result.Tail != 2 {
		t.Errorf("Tail = %d, want 2", result.Tail)
	}
}

func TestParse_InvalidInput(t *testing.T) {
	interp := api.New()
	rules, _ := value.AsBlock(load(t, `["a"]`))
	_, err := interp.Parse(value.IntVal(42), rules, dialect.DefaultOptions())
	if err == nil {
		t.Fatal("parse of integer input did not error")
	}
}

func TestParse_WordRuleResolution(t *testing.T) {
	interp := api.New()
	if _, err := interp.EvalSource(`digit: charset [#"0" - #"9"]  rule: [some digit]`); err != nil {
		t.Fatalf("setup error: %v", err)
	}
	mustMatch(t, interp, `"123"`, `[rule end]`)
	mustNotMatch(t, interp, `"12x"`, `[rule end]`)
}

func TestParse_UnboundRuleWord(t *testing.T) {
	interp := api.New()
	_, err := run(t, interp, `"x"`, `[no-such-rule end]`, dialect.DefaultOptions())
	if err == nil {
		t.Fatal("unbound rule word did not error")
	}
}

func TestParse_NullRuleWord(t *testing.T) {
	interp := api.New()
	if _, err := interp.EvalSource(`nothing: none`); err != nil {
		t.Fatalf("setup error: %v", err)
	}
	_, err := run(t, interp, `"x"`, `[nothing end]`, dialect.DefaultOptions())
	if err == nil {
		t.Fatal("none-valued rule word did not error")
	}
}

func TestParse_SelfReferentialRule(t *testing.T) {
	interp := api.New()
	// nest matches balanced a..b pairs: rule refers to itself by word.
	if _, err := interp.EvalSource(`nest: ["a" opt nest "b"]`); err != nil {
		t.Fatalf("setup error: %v", err)
	}
	mustMatch(t, interp, `"ab"`, `[nest end]`)
	mustMatch(t, interp, `"aaabbb"`, `[nest end]`)
	mustNotMatch(t, interp, `"aab"`, `[nest end]`)
}

func TestParse_GetGroupInjection(t *testing.T) {
	interp := api.New()
	// true is a no-op, false fails the branch.
	mustMatch(t, interp, `"ab"`, `["a" :(true) "b" end]`)
	mustNotMatch(t, interp, `"ab"`, `["a" :(false) "b" end]`)
	// The result is re-interpreted as a rule and spliced in.
	mustMatch(t, interp, `"ab"`, `["a" :(copy "b") end]`)
}

func TestParse_GroupSideEffects(t *testing.T) {
	interp := api.New()
	if _, err := interp.EvalSource(`n: 0`); err != nil {
		t.Fatalf("setup error: %v", err)
	}
	// The group runs once per attempted alternative; effects survive
	// backtracking.
	mustMatch(t, interp, `"ab"`, `[["a" (n: n + 1) "x" | "a" (n: n + 1) "b"] end]`)
	if got := lookupMold(t, interp, "n"); got != "2" {
		t.Errorf("n = %s after parse, want 2 (group effects are not rolled back)", got)
	}
}
