package dialect_test

import (
	"fmt"
	"testing"

	"github.com/marcin-radoszewski/ren/internal/api"
	"github.com/marcin-radoszewski/ren/internal/parse/dialect"
	"github.com/marcin-radoszewski/ren/internal/value"
)

// The concrete end-to-end scenarios, engine-level.
func TestScenarios(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		rules    string
		partial  bool
		matched  bool
		wantTail int
		word     string
		wantMold string
	}{
		{name: "literal to tail", input: `"abc"`, rules: `["abc" end]`, matched: true, wantTail: 3},
		{name: "seek then literal", input: `"abcd"`, rules: `[seek 3 "cd" end]`, matched: true, wantTail: 4},
		{name: "collect two integers", input: `[1 2 3]`, rules: `[collect x [keep integer! keep integer!]]`,
			partial: true, matched: true, word: "x", wantMold: "[1 2]"},
		{name: "collect only wraps", input: `[1 2 3]`, rules: `[collect x [some [keep only integer!]]]`,
			matched: true, word: "x", wantMold: "[[1] [2] [3]]"},
		{name: "collect text spans", input: `"aaabbb"`, rules: `[collect x [keep some "a" keep some "b"]]`,
			matched: true, word: "x", wantMold: `["aaa" "bbb"]`},
		{name: "do reduces expression", input: `[1 + 2]`, rules: `[do integer! end]`, matched: true},
		{name: "reject cancels repetition", input: `"aa"`, rules: `[some "a" reject]`, matched: false},
		{name: "reject inside repetition", input: `"aabb"`, rules: `[some ["a" reject] to end]`, matched: false},
		{name: "do with into", input: `[reverse copy [a b c]]`, rules: `[do [into ['c 'b 'a]] end]`, matched: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			interp := api.New()
			opts := dialect.DefaultOptions()
			opts.Partial = tt.partial
			result, err := run(t, interp, tt.input, tt.rules, opts)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.Matched != tt.matched {
				t.Fatalf("Matched = %v, want %v", result.Matched, tt.matched)
			}
			if tt.wantTail != 0 && result.Tail != tt.wantTail {
				t.Errorf("Tail = %d, want %d", result.Tail, tt.wantTail)
			}
			if tt.word != "" {
				if got := lookupMold(t, interp, tt.word); got != tt.wantMold {
					t.Errorf("%s = %s, want %s", tt.word, got, tt.wantMold)
				}
			}
		})
	}
}

// Re-running the same parse is deterministic: no hidden state leaks
// between invocations.
func TestProperty_Deterministic(t *testing.T) {
	cases := []struct {
		input string
		rules string
	}{
		{`"aaabbbccc"`, `[some "a" some "b" some "c" end]`},
		{`[1 a "x" [2]]`, `[integer! word! text! block! end]`},
		{`"abcabc"`, `[some ["abc"] end]`},
		{`"xxyab"`, `[to "ab" thru "ab" end]`},
	}
	for _, c := range cases {
		interp := api.New()
		var first dialect.Result
		for round := 0; round < 3; round++ {
			result, err := run(t, interp, c.input, c.rules, dialect.DefaultOptions())
			if err != nil {
				t.Fatalf("parse %s %s error: %v", c.input, c.rules, err)
			}
			if round == 0 {
				first = result
				continue
			}
			if result.Matched != first.Matched || result.Tail != first.Tail {
				t.Errorf("parse %s %s round %d = (%v, %d), first = (%v, %d)",
					c.input, c.rules, round, result.Matched, result.Tail, first.Matched, first.Tail)
			}
		}
	}
}

// A rule with no mutation keywords leaves the input bit-identical,
// matched or not.
func TestProperty_InputUnchangedWithoutMutation(t *testing.T) {
	rules := []string{
		`[some "a" end]`,
		`[to "b" thru "b" end]`,
		`[any [skip] end]`,
		`[copy x 2 skip to end]`,
		`[collect c [any [keep skip]] end]`,
		`["never matches this"]`,
	}
	for _, r := range rules {
		interp := api.New()
		input := load(t, `"aabba"`)
		before := input.Mold()
		rulesBlk, _ := value.AsBlock(load(t, r))
		if _, err := interp.Parse(input, rulesBlk, dialect.DefaultOptions()); err != nil {
			t.Fatalf("parse with %s error: %v", r, err)
		}
		if after := input.Mold(); after != before {
			t.Errorf("rule %s mutated input: %s -> %s", r, before, after)
		}
	}
}

// parse(I, [R1 | R2]) matches iff parse(I, [R1]) or parse(I, [R2]).
func TestProperty_AlternationEquivalence(t *testing.T) {
	inputs := []string{`"ab"`, `"ba"`, `""`, `"abab"`}
	pairs := [][2]string{
		{`"ab" to end`, `"ba" to end`},
		{`some "a" to end`, `some "b" to end`},
		{`end`, `skip to end`},
	}
	for _, in := range inputs {
		for _, p := range pairs {
			interp := api.New()
			both, err := run(t, interp, in, fmt.Sprintf("[%s | %s]", p[0], p[1]), dialect.DefaultOptions())
			if err != nil {
				t.Fatalf("alternation parse error: %v", err)
			}
			r1, err := run(t, interp, in, fmt.Sprintf("[%s]", p[0]), dialect.DefaultOptions())
			if err != nil {
				t.Fatalf("r1 parse error: %v", err)
			}
			r2, err := run(t, interp, in, fmt.Sprintf("[%s]", p[1]), dialect.DefaultOptions())
			if err != nil {
				t.Fatalf("r2 parse error: %v", err)
			}
			want := r1.Matched || r2.Matched
			if both.Matched != want {
				t.Errorf("input %s: [%s | %s] = %v, want %v (r1=%v r2=%v)",
					in, p[0], p[1], both.Matched, want, r1.Matched, r2.Matched)
			}
		}
	}
}

// mark p R :p R2 behaves like R R2 for deterministic, non-mutating R.
func TestProperty_MarkSeekRoundTrip(t *testing.T) {
	interp := api.New()
	mustMatch(t, interp, `"abab"`, `[mark p "ab" :p "ab" "ab" end]`)
	mustMatch(t, interp, `"abab"`, `["ab" "ab" end]`)
}

// Successful parses always land the tail inside [0, len].
func TestProperty_TailInRange(t *testing.T) {
	cases := []struct {
		input string
		rules string
	}{
		{`""`, `[end]`},
		{`"abc"`, `[to end]`},
		{`[1 2]`, `[some integer! end]`},
	}
	for _, c := range cases {
		interp := api.New()
		result, err := run(t, interp, c.input, c.rules, dialect.DefaultOptions())
		if err != nil {
			t.Fatalf("parse error: %v", err)
		}
		if !result.Matched {
			t.Fatalf("parse %s %s did not match", c.input, c.rules)
		}
		if result.Tail < 0 {
			t.Errorf("Tail = %d, negative", result.Tail)
		}
		cur, _ := dialect.NewCursor(load(t, c.input))
		if result.Tail > cur.Length() {
			t.Errorf("Tail = %d, past input length %d", result.Tail, cur.Length())
		}
	}
}
