// Package parse loads Ren source text into value blocks: the tokenizer
// produces coarse tokens, the loader gives each one its value kind.
package parse

import (
	"strconv"
	"strings"

	"github.com/marcin-radoszewski/ren/internal/core"
	"github.com/marcin-radoszewski/ren/internal/tokenize"
	"github.com/marcin-radoszewski/ren/internal/value"
	"github.com/marcin-radoszewski/ren/internal/verror"
)

// Loader walks a token stream and produces cells.
type Loader struct {
	tokens []tokenize.Token
	pos    int
	source string
}

// NewLoader creates a loader over tokens.
func NewLoader(tokens []tokenize.Token, source string) *Loader {
	return &Loader{tokens: tokens, source: source}
}

// LoadString tokenizes and loads source into a block of cells.
func LoadString(source string) ([]core.Value, error) {
	tokenizer := tokenize.NewTokenizer(source)
	tokens, err := tokenizer.Tokenize()
	if err != nil {
		return nil, verror.NewSyntaxError(verror.ErrIDInvalidLiteral, [3]string{err.Error(), "", ""})
	}
	return NewLoader(tokens, source).Load()
}

// Load consumes tokens until EOF and returns the top-level cells.
func (l *Loader) Load() ([]core.Value, error) {
	var cells []core.Value
	for {
		tok := l.peek()
		if tok.Type == tokenize.TokenEOF {
			return cells, nil
		}
		if tok.Type == tokenize.TokenRBracket || tok.Type == tokenize.TokenRParen {
			return nil, verror.NewSyntaxError(verror.ErrIDUnexpectedClosing, [3]string{tok.Value, "", ""})
		}
		cell, err := l.loadValue()
		if err != nil {
			return nil, err
		}
		cells = append(cells, cell)
	}
}

func (l *Loader) peek() tokenize.Token { return l.tokens[l.pos] }

func (l *Loader) next() tokenize.Token {
	tok := l.tokens[l.pos]
	if tok.Type != tokenize.TokenEOF {
		l.pos++
	}
	return tok
}

// loadValue loads one value, applying any attached quote run.
func (l *Loader) loadValue() (core.Value, error) {
	tok := l.next()
	v, err := l.loadToken(tok)
	if err != nil {
		return nil, err
	}
	if tok.Quotes > 0 {
		// A single quote on a plain word is a lit-word; anything else
		// becomes a quoted wrapper.
		if tok.Quotes == 1 && v.GetType() == value.TypeWord {
			sym, _ := value.AsWord(v)
			return value.LitWordVal(sym), nil
		}
		return value.QuotedVal(v, tok.Quotes), nil
	}
	return v, nil
}

func (l *Loader) loadToken(tok tokenize.Token) (core.Value, error) {
	switch tok.Type {
	case tokenize.TokenString:
		return value.TextVal(tok.Value), nil
	case tokenize.TokenChar:
		return value.CharVal([]rune(tok.Value)[0]), nil
	case tokenize.TokenBinary:
		return l.loadBinary(tok)
	case tokenize.TokenTag:
		return value.TagVal(tok.Value), nil
	case tokenize.TokenLBracket:
		cells, err := l.loadUntil(tokenize.TokenRBracket, verror.ErrIDUnclosedBlock)
		if err != nil {
			return nil, err
		}
		return value.BlockVal(cells), nil
	case tokenize.TokenLParen:
		cells, err := l.loadUntil(tokenize.TokenRParen, verror.ErrIDUnclosedGroup)
		if err != nil {
			return nil, err
		}
		return value.GroupVal(cells), nil
	case tokenize.TokenGetLParen:
		cells, err := l.loadUntil(tokenize.TokenRParen, verror.ErrIDUnclosedGroup)
		if err != nil {
			return nil, err
		}
		return value.GetGroupVal(cells), nil
	case tokenize.TokenLiteral:
		return l.loadLiteral(tok)
	case tokenize.TokenEOF:
		return nil, verror.NewSyntaxError(verror.ErrIDUnexpectedEOF, [3]string{})
	}
	return nil, verror.NewSyntaxError(verror.ErrIDInvalidLiteral, [3]string{tok.Value, "", ""})
}

func (l *Loader) loadUntil(closing tokenize.TokenType, unclosedID string) ([]core.Value, error) {
	cells := []core.Value{}
	for {
		tok := l.peek()
		if tok.Type == closing {
			l.next()
			return cells, nil
		}
		if tok.Type == tokenize.TokenEOF {
			return nil, verror.NewSyntaxError(unclosedID, [3]string{})
		}
		if tok.Type == tokenize.TokenRBracket || tok.Type == tokenize.TokenRParen {
			return nil, verror.NewSyntaxError(verror.ErrIDUnexpectedClosing, [3]string{tok.Value, "", ""})
		}
		cell, err := l.loadValue()
		if err != nil {
			return nil, err
		}
		cells = append(cells, cell)
	}
}

func (l *Loader) loadBinary(tok tokenize.Token) (core.Value, error) {
	hex := tok.Value
	if len(hex)%2 != 0 {
		return nil, verror.NewSyntaxError(verror.ErrIDInvalidLiteral, [3]string{"#{" + hex + "}", "", ""})
	}
	data := make([]byte, 0, len(hex)/2)
	for i := 0; i < len(hex); i += 2 {
		b, err := strconv.ParseUint(hex[i:i+2], 16, 8)
		if err != nil {
			return nil, verror.NewSyntaxError(verror.ErrIDInvalidLiteral, [3]string{"#{" + hex + "}", "", ""})
		}
		data = append(data, byte(b))
	}
	return value.BinaryVal(data), nil
}

// loadLiteral classifies a bare lexeme: number, blank, issue, word
// variant, or path.
func (l *Loader) loadLiteral(tok tokenize.Token) (core.Value, error) {
	lex := tok.Value
	if lex == "" {
		return nil, verror.NewSyntaxError(verror.ErrIDInvalidLiteral, [3]string{lex, "", ""})
	}

	if lex == "_" {
		return value.BlankVal(), nil
	}

	if strings.HasPrefix(lex, "#") {
		return value.IssueVal(lex[1:]), nil
	}

	if v, ok := loadNumber(lex); ok {
		return v, nil
	}

	// Word variants by shape.
	getWord := strings.HasPrefix(lex, ":")
	setWord := strings.HasSuffix(lex, ":")
	body := strings.TrimPrefix(strings.TrimSuffix(lex, ":"), ":")
	if body == "" {
		return nil, verror.NewSyntaxError(verror.ErrIDInvalidLiteral, [3]string{lex, "", ""})
	}

	if strings.HasPrefix(body, "/") && len(body) > 1 && !strings.Contains(body[1:], "/") {
		return value.RefinementVal(body[1:]), nil
	}

	if strings.Contains(body, "/") && len(body) > 1 {
		return loadPath(body, getWord, setWord)
	}

	switch {
	case getWord && setWord:
		return nil, verror.NewSyntaxError(verror.ErrIDInvalidLiteral, [3]string{lex, "", ""})
	case getWord:
		return value.GetWordVal(body), nil
	case setWord:
		return value.SetWordVal(body), nil
	}
	return value.WordVal(body), nil
}

func loadNumber(lex string) (core.Value, bool) {
	if i, err := strconv.ParseInt(lex, 10, 64); err == nil {
		return value.IntVal(i), true
	}
	if !looksNumeric(lex) {
		return nil, false
	}
	if d, ok := value.DecimalVal(lex); ok {
		return d, true
	}
	return nil, false
}

func looksNumeric(lex string) bool {
	i := 0
	if lex[0] == '+' || lex[0] == '-' {
		i = 1
	}
	return i < len(lex) && lex[i] >= '0' && lex[i] <= '9'
}

func loadPath(body string, getWord, setWord bool) (core.Value, error) {
	segments := strings.Split(body, "/")
	parts := make([]core.Value, 0, len(segments))
	for _, seg := range segments {
		if seg == "" {
			return nil, verror.NewSyntaxError(verror.ErrIDInvalidLiteral, [3]string{body, "", ""})
		}
		if i, err := strconv.ParseInt(seg, 10, 64); err == nil {
			parts = append(parts, value.IntVal(i))
			continue
		}
		parts = append(parts, value.WordVal(seg))
	}
	switch {
	case getWord:
		return value.NewPathValueWithType(parts, value.TypeGetPath), nil
	case setWord:
		return value.NewPathValueWithType(parts, value.TypeSetPath), nil
	}
	return value.NewPathValue(parts), nil
}
