package value

import (
	"fmt"
	"strconv"

	"github.com/marcin-radoszewski/ren/internal/core"
)

type NoneValue struct{}

func (n *NoneValue) GetType() core.ValueType { return TypeNone }
func (n *NoneValue) GetPayload() any         { return nil }
func (n *NoneValue) String() string          { return "none" }
func (n *NoneValue) Mold() string            { return "none" }
func (n *NoneValue) Form() string            { return "none" }

func (n *NoneValue) Equals(other core.Value) bool {
	_, ok := other.(*NoneValue)
	return ok
}

type BlankValue struct{}

func (b *BlankValue) GetType() core.ValueType { return TypeBlank }
func (b *BlankValue) GetPayload() any         { return nil }
func (b *BlankValue) String() string          { return "_" }
func (b *BlankValue) Mold() string            { return "_" }
func (b *BlankValue) Form() string            { return "" }

func (b *BlankValue) Equals(other core.Value) bool {
	_, ok := other.(*BlankValue)
	return ok
}

type LogicValue struct {
	value bool
}

func (l *LogicValue) GetType() core.ValueType { return TypeLogic }
func (l *LogicValue) GetPayload() any         { return l.value }

func (l *LogicValue) String() string {
	if l.value {
		return "true"
	}
	return "false"
}

func (l *LogicValue) Mold() string { return l.String() }
func (l *LogicValue) Form() string { return l.String() }

func (l *LogicValue) Equals(other core.Value) bool {
	if ol, ok := other.(*LogicValue); ok {
		return l.value == ol.value
	}
	return false
}

type IntValue struct {
	value int64
}

func (i *IntValue) GetType() core.ValueType { return TypeInteger }
func (i *IntValue) GetPayload() any         { return i.value }
func (i *IntValue) String() string          { return strconv.FormatInt(i.value, 10) }
func (i *IntValue) Mold() string            { return i.String() }
func (i *IntValue) Form() string            { return i.String() }

func (i *IntValue) Equals(other core.Value) bool {
	if oi, ok := other.(*IntValue); ok {
		return i.value == oi.value
	}
	return false
}

// CharValue is a single Unicode scalar.
type CharValue struct {
	value rune
}

func (c *CharValue) GetType() core.ValueType { return TypeChar }
func (c *CharValue) GetPayload() any         { return c.value }
func (c *CharValue) String() string          { return string(c.value) }
func (c *CharValue) Form() string            { return string(c.value) }

func (c *CharValue) Mold() string {
	switch c.value {
	case '\n':
		return `#"^/"`
	case '\t':
		return `#"^-"`
	}
	return fmt.Sprintf("#%q", string(c.value))
}

func (c *CharValue) Equals(other core.Value) bool {
	if oc, ok := other.(*CharValue); ok {
		return c.value == oc.value
	}
	return false
}

// Rune returns the scalar payload.
func (c *CharValue) Rune() rune { return c.value }

// Word variants are separate types, each with its own symbol field; the
// variant is carried by the concrete type, the spelling compares by symbol.

type WordValue struct {
	symbol string
}

func (w *WordValue) GetType() core.ValueType { return TypeWord }
func (w *WordValue) GetPayload() any         { return w.symbol }
func (w *WordValue) String() string          { return w.symbol }
func (w *WordValue) Mold() string            { return w.symbol }
func (w *WordValue) Form() string            { return w.symbol }

func (w *WordValue) Equals(other core.Value) bool {
	if ow, ok := other.(*WordValue); ok {
		return w.symbol == ow.symbol
	}
	return false
}

type SetWordValue struct {
	symbol string
}

func (s *SetWordValue) GetType() core.ValueType { return TypeSetWord }
func (s *SetWordValue) GetPayload() any         { return s.symbol }
func (s *SetWordValue) String() string          { return s.symbol + ":" }
func (s *SetWordValue) Mold() string            { return s.String() }
func (s *SetWordValue) Form() string            { return s.String() }

func (s *SetWordValue) Equals(other core.Value) bool {
	if os, ok := other.(*SetWordValue); ok {
		return s.symbol == os.symbol
	}
	return false
}

type GetWordValue struct {
	symbol string
}

func (g *GetWordValue) GetType() core.ValueType { return TypeGetWord }
func (g *GetWordValue) GetPayload() any         { return g.symbol }
func (g *GetWordValue) String() string          { return ":" + g.symbol }
func (g *GetWordValue) Mold() string            { return g.String() }
func (g *GetWordValue) Form() string            { return g.String() }

func (g *GetWordValue) Equals(other core.Value) bool {
	if og, ok := other.(*GetWordValue); ok {
		return g.symbol == og.symbol
	}
	return false
}

type LitWordValue struct {
	symbol string
}

func (l *LitWordValue) GetType() core.ValueType { return TypeLitWord }
func (l *LitWordValue) GetPayload() any         { return l.symbol }
func (l *LitWordValue) String() string          { return "'" + l.symbol }
func (l *LitWordValue) Mold() string            { return l.String() }
func (l *LitWordValue) Form() string            { return l.symbol }

func (l *LitWordValue) Equals(other core.Value) bool {
	if ol, ok := other.(*LitWordValue); ok {
		return l.symbol == ol.symbol
	}
	return false
}

type RefinementValue struct {
	symbol string
}

func (r *RefinementValue) GetType() core.ValueType { return TypeRefinement }
func (r *RefinementValue) GetPayload() any         { return r.symbol }
func (r *RefinementValue) String() string          { return "/" + r.symbol }
func (r *RefinementValue) Mold() string            { return r.String() }
func (r *RefinementValue) Form() string            { return r.String() }

func (r *RefinementValue) Equals(other core.Value) bool {
	if or, ok := other.(*RefinementValue); ok {
		return r.symbol == or.symbol
	}
	return false
}

type IssueValue struct {
	symbol string
}

func (i *IssueValue) GetType() core.ValueType { return TypeIssue }
func (i *IssueValue) GetPayload() any         { return i.symbol }
func (i *IssueValue) String() string          { return "#" + i.symbol }
func (i *IssueValue) Mold() string            { return i.String() }
func (i *IssueValue) Form() string            { return "#" + i.symbol }

func (i *IssueValue) Equals(other core.Value) bool {
	if oi, ok := other.(*IssueValue); ok {
		return i.symbol == oi.symbol
	}
	return false
}

// TagValue is a delimited symbol, used among other things as a keyword
// sentinel in dialects (e.g. <here>).
type TagValue struct {
	text string
}

func (t *TagValue) GetType() core.ValueType { return TypeTag }
func (t *TagValue) GetPayload() any         { return t.text }
func (t *TagValue) String() string          { return "<" + t.text + ">" }
func (t *TagValue) Mold() string            { return t.String() }
func (t *TagValue) Form() string            { return t.String() }

func (t *TagValue) Equals(other core.Value) bool {
	if ot, ok := other.(*TagValue); ok {
		return t.text == ot.text
	}
	return false
}

// Text returns the undelimited tag text.
func (t *TagValue) Text() string { return t.text }

type DatatypeValue struct {
	name string
}

func (d *DatatypeValue) GetType() core.ValueType { return TypeDatatype }
func (d *DatatypeValue) GetPayload() any         { return d.name }
func (d *DatatypeValue) String() string          { return d.name }
func (d *DatatypeValue) Mold() string            { return d.name }
func (d *DatatypeValue) Form() string            { return d.name }

func (d *DatatypeValue) Equals(other core.Value) bool {
	if od, ok := other.(*DatatypeValue); ok {
		return d.name == od.name
	}
	return false
}

// Name returns the datatype spelling including the trailing "!".
func (d *DatatypeValue) Name() string { return d.name }
