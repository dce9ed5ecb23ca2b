package contract

import (
	"testing"

	"github.com/marcin-radoszewski/ren/internal/api"
	"github.com/marcin-radoszewski/ren/internal/core"
	"github.com/marcin-radoszewski/ren/internal/value"
)

func TestParseDialect_Literals(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		expected core.Value
		wantErr  bool
	}{
		{
			name:     "simple match",
			source:   `parse "hello" ["hello"]`,
			expected: value.LogicVal(true),
		},
		{
			name:     "no match",
			source:   `parse "hello" ["world"]`,
			expected: value.LogicVal(false),
		},
		{
			name:     "sequence match",
			source:   `parse "hello world" ["hello" " " "world"]`,
			expected: value.LogicVal(true),
		},
		{
			name:     "case insensitive by default",
			source:   `parse "Hello" ["hello"]`,
			expected: value.LogicVal(true),
		},
		{
			name:     "case refinement",
			source:   `parse "Hello" ["hello"] --case`,
			expected: value.LogicVal(false),
		},
		{
			name:     "partial consumption fails",
			source:   `parse "hello!" ["hello"]`,
			expected: value.LogicVal(false),
		},
		{
			name:     "partial refinement allows it",
			source:   `parse "hello!" ["hello"] --partial`,
			expected: value.LogicVal(true),
		},
		{
			name:    "rules must be a block",
			source:  `parse "x" "x"`,
			wantErr: true,
		},
		{
			name:    "input must be a series",
			source:  `parse 42 ["x"]`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Evaluate(tt.source)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !result.Equals(tt.expected) {
				t.Errorf("= %s, want %s", result.Mold(), tt.expected.Mold())
			}
		})
	}
}

func TestParseDialect_Keywords(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		matched bool
	}{
		{"end on empty input", `parse "" [end]`, true},
		{"skip end on empty input", `parse "" [skip end]`, false},
		{"any on empty input", `parse "" [any "a"]`, true},
		{"some on empty input", `parse "" [some "a"]`, false},
		{"greedy some with giveback", `parse "aaa" [some "a" "a"]`, true},
		{"to thru", `parse "prefix: body" [thru ": " "body"]`, true},
		{"alternation", `parse "cat" [["dog" | "cat" | "cow"]]`, true},
		{"charset digits", `parse "123-456" [some digit "-" some digit]`, true},
		{"datatypes over block", `parse [1 "s" w] [integer! text! word!]`, true},
		{"into nested block", `parse [[1 2]] [into [2 integer!]]`, true},
		{"not lookahead", `parse "b" [not "a" "b"]`, true},
		{"opt missing", `parse "b" [opt "a" "b"]`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			interp := api.New()
			if _, err := EvaluateIn(interp, `digit: charset [#"0" - #"9"]`); err != nil {
				t.Fatalf("setup error: %v", err)
			}
			result, err := EvaluateIn(interp, tt.source)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			b, ok := value.AsLogic(result)
			if !ok {
				t.Fatalf("parse returned %s, want logic", result.Mold())
			}
			if b != tt.matched {
				t.Errorf("= %v, want %v", b, tt.matched)
			}
		})
	}
}

func TestParseDialect_CollectIntoVariable(t *testing.T) {
	interp := api.New()
	result, err := EvaluateIn(interp,
		`parse "aaabbb" [collect x [keep some "a" keep some "b"]]`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b, _ := value.AsLogic(result); !b {
		t.Fatal("collect parse did not match")
	}
	x, err := EvaluateIn(interp, `x`)
	if err != nil {
		t.Fatalf("x lookup error: %v", err)
	}
	if x.Mold() != `["aaa" "bbb"]` {
		t.Errorf(`x = %s, want ["aaa" "bbb"]`, x.Mold())
	}
}

func TestParseDialect_CapturesFeedEvaluation(t *testing.T) {
	interp := api.New()
	result, err := EvaluateIn(interp, `
		parse "k:42" [copy key to ":" skip copy val to end]
		val
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tv, ok := value.AsText(result)
	if !ok || tv.String() != "42" {
		t.Errorf("val = %s, want \"42\"", result.Mold())
	}
}

func TestParseDialect_ErrorsSurface(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{"unbound rule word", `parse "x" [missing-rule]`},
		{"none rule word", `nothing: none parse "x" [nothing]`},
		{"dangling repeat count", `parse "x" [3]`},
		{"into non-series", `parse [7] [into [skip]]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Evaluate(tt.source); err == nil {
				t.Error("expected error but got none")
			}
		})
	}
}
