package parse

import (
	"testing"

	"github.com/marcin-radoszewski/ren/internal/core"
	"github.com/marcin-radoszewski/ren/internal/value"
)

func loadOne(t *testing.T, source string) core.Value {
	t.Helper()
	cells, err := LoadString(source)
	if err != nil {
		t.Fatalf("LoadString(%q) error: %v", source, err)
	}
	if len(cells) != 1 {
		t.Fatalf("LoadString(%q) = %d cells, want 1", source, len(cells))
	}
	return cells[0]
}

func TestLoad_Kinds(t *testing.T) {
	tests := []struct {
		source string
		kind   core.ValueType
		mold   string
	}{
		{`42`, value.TypeInteger, "42"},
		{`-7`, value.TypeInteger, "-7"},
		{`1.5`, value.TypeDecimal, "1.5"},
		{`"hi"`, value.TypeText, `"hi"`},
		{`#"x"`, value.TypeChar, `#"x"`},
		{`#{00FF}`, value.TypeBinary, "#{00FF}"},
		{`word`, value.TypeWord, "word"},
		{`word:`, value.TypeSetWord, "word:"},
		{`:word`, value.TypeGetWord, ":word"},
		{`'word`, value.TypeLitWord, "'word"},
		{`/case`, value.TypeRefinement, "/case"},
		{`#iss`, value.TypeIssue, "#iss"},
		{`<here>`, value.TypeTag, "<here>"},
		{`_`, value.TypeBlank, "_"},
		{`[1 2]`, value.TypeBlock, "[1 2]"},
		{`(a b)`, value.TypeGroup, "(a b)"},
		{`:(a)`, value.TypeGetGroup, ":(a)"},
		{`a/b/2`, value.TypePath, "a/b/2"},
		{`a/b:`, value.TypeSetPath, "a/b:"},
		{`:a/b`, value.TypeGetPath, ":a/b"},
		{`''x`, value.TypeQuoted, "''x"},
		{`'[a]`, value.TypeQuoted, "'[a]"},
		{`integer!`, value.TypeWord, "integer!"},
		{`|`, value.TypeWord, "|"},
	}
	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			v := loadOne(t, tt.source)
			if v.GetType() != tt.kind {
				t.Errorf("kind = %s, want %s",
					value.TypeToString(v.GetType()), value.TypeToString(tt.kind))
			}
			if got := v.Mold(); got != tt.mold {
				t.Errorf("Mold = %q, want %q", got, tt.mold)
			}
		})
	}
}

func TestLoad_Nesting(t *testing.T) {
	v := loadOne(t, `[a [b (c :(d))] "s"]`)
	blk, ok := value.AsBlock(v)
	if !ok || blk.Length() != 3 {
		t.Fatalf("outer block = %s", v.Mold())
	}
	innerBlk, ok := value.AsBlock(blk.At(1))
	if !ok || innerBlk.Length() != 2 {
		t.Fatalf("inner block = %s", blk.At(1).Mold())
	}
	grp := innerBlk.At(1)
	if grp.GetType() != value.TypeGroup {
		t.Fatalf("inner group = %s", grp.Mold())
	}
}

func TestLoad_MultipleTopLevel(t *testing.T) {
	cells, err := LoadString(`x: 1 y: 2`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cells) != 4 {
		t.Fatalf("cell count = %d, want 4", len(cells))
	}
	if cells[0].GetType() != value.TypeSetWord || cells[2].GetType() != value.TypeSetWord {
		t.Error("set-words not recognized at top level")
	}
}

func TestLoad_Errors(t *testing.T) {
	for _, source := range []string{`[1 2`, `(a`, `]`, `)`, `#{ABC}`} {
		if _, err := LoadString(source); err == nil {
			t.Errorf("LoadString(%q) did not error", source)
		}
	}
}

func TestLoad_QuotedWordBecomesLitWord(t *testing.T) {
	v := loadOne(t, `'x`)
	if v.GetType() != value.TypeLitWord {
		t.Fatalf("'x loaded as %s, want lit-word", value.TypeToString(v.GetType()))
	}
	sym, _ := value.AsWord(v)
	if sym != "x" {
		t.Errorf("spelling = %q, want %q", sym, "x")
	}
}
