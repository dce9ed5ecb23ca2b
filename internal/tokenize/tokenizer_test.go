package tokenize

import "testing"

func kinds(t *testing.T, source string) []Token {
	t.Helper()
	tokens, err := NewTokenizer(source).Tokenize()
	if err != nil {
		t.Fatalf("Tokenize(%q) error: %v", source, err)
	}
	return tokens
}

func TestTokenize_Basics(t *testing.T) {
	tokens := kinds(t, `parse "abc" [some "a"]`)
	want := []TokenType{TokenLiteral, TokenString, TokenLBracket, TokenLiteral, TokenString, TokenRBracket, TokenEOF}
	if len(tokens) != len(want) {
		t.Fatalf("token count = %d, want %d", len(tokens), len(want))
	}
	for i, w := range want {
		if tokens[i].Type != w {
			t.Errorf("token %d type = %v, want %v", i, tokens[i].Type, w)
		}
	}
	if tokens[1].Value != "abc" {
		t.Errorf("string token = %q, want %q", tokens[1].Value, "abc")
	}
}

func TestTokenize_CharAndBinary(t *testing.T) {
	tokens := kinds(t, `#"a" #{DEAD BEEF} #issue`)
	if tokens[0].Type != TokenChar || tokens[0].Value != "a" {
		t.Errorf("char token = %+v", tokens[0])
	}
	if tokens[1].Type != TokenBinary || tokens[1].Value != "DEADBEEF" {
		t.Errorf("binary token = %+v (whitespace should be dropped)", tokens[1])
	}
	if tokens[2].Type != TokenLiteral || tokens[2].Value != "#issue" {
		t.Errorf("issue token = %+v", tokens[2])
	}
}

func TestTokenize_CharEscapes(t *testing.T) {
	tokens := kinds(t, `#"^/" #"^-"`)
	if tokens[0].Value != "\n" || tokens[1].Value != "\t" {
		t.Errorf("escapes = %q %q, want newline and tab", tokens[0].Value, tokens[1].Value)
	}
}

func TestTokenize_StringEscapes(t *testing.T) {
	tokens := kinds(t, `"a^/b^-c^"d"`)
	if tokens[0].Value != "a\nb\tc\"d" {
		t.Errorf("escaped string = %q", tokens[0].Value)
	}
}

func TestTokenize_TagsVsComparisons(t *testing.T) {
	tokens := kinds(t, `<tag> a < b <= c`)
	if tokens[0].Type != TokenTag || tokens[0].Value != "tag" {
		t.Errorf("tag token = %+v", tokens[0])
	}
	if tokens[2].Type != TokenLiteral || tokens[2].Value != "<" {
		t.Errorf("bare < token = %+v", tokens[2])
	}
	if tokens[4].Value != "<=" {
		t.Errorf("<= token = %+v", tokens[4])
	}
}

func TestTokenize_Quotes(t *testing.T) {
	tokens := kinds(t, `'word ''word '[a]`)
	if tokens[0].Quotes != 1 || tokens[0].Value != "word" {
		t.Errorf("quoted word = %+v", tokens[0])
	}
	if tokens[1].Quotes != 2 {
		t.Errorf("double-quoted word = %+v", tokens[1])
	}
	if tokens[2].Quotes != 1 || tokens[2].Type != TokenLBracket {
		t.Errorf("quoted block open = %+v", tokens[2])
	}
}

func TestTokenize_GetGroup(t *testing.T) {
	tokens := kinds(t, `:(x) :word`)
	if tokens[0].Type != TokenGetLParen {
		t.Errorf("get-group open = %+v", tokens[0])
	}
	if tokens[3].Type != TokenLiteral || tokens[3].Value != ":word" {
		t.Errorf("get-word literal = %+v", tokens[3])
	}
}

func TestTokenize_CommentsAndLocations(t *testing.T) {
	tokens := kinds(t, "a ; comment\nb")
	if tokens[0].Value != "a" || tokens[1].Value != "b" {
		t.Fatalf("comment not skipped: %+v", tokens[:2])
	}
	if tokens[1].Line != 2 || tokens[1].Column != 1 {
		t.Errorf("location of b = %d:%d, want 2:1", tokens[1].Line, tokens[1].Column)
	}
}

func TestTokenize_Errors(t *testing.T) {
	for _, source := range []string{`"unterminated`, `#"a`, `#{AB`, `<unclosed`, `'`} {
		if _, err := NewTokenizer(source).Tokenize(); err == nil {
			t.Errorf("Tokenize(%q) did not error", source)
		}
	}
}
