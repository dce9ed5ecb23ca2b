package value

import (
	"strings"

	"github.com/marcin-radoszewski/ren/internal/core"
)

// TextValue is a positional view over a shared TextSeries. Stored as
// runes for character-level series semantics: first "hello" is the
// character 'h', multi-byte input is handled per codepoint.
type TextValue struct {
	Series *TextSeries
	Index  int
}

// NewTextValue creates a fresh series from a Go string, view at head.
func NewTextValue(s string) *TextValue {
	return &TextValue{Series: &TextSeries{Runes: []rune(s)}}
}

// TextAt returns a sibling view of the same series at idx (clamped).
func (t *TextValue) TextAt(idx int) *TextValue {
	return &TextValue{Series: t.Series, Index: ClampIndex(idx, len(t.Series.Runes))}
}

func (t *TextValue) GetType() core.ValueType { return TypeText }
func (t *TextValue) GetPayload() any         { return t }

// String returns the text from the view position to the tail.
func (t *TextValue) String() string {
	return string(t.Series.Runes[t.Index:])
}

func (t *TextValue) Mold() string {
	return `"` + t.String() + `"`
}

func (t *TextValue) Form() string { return t.String() }

func (t *TextValue) Equals(other core.Value) bool {
	ot, ok := other.(*TextValue)
	if !ok {
		return false
	}
	return t.String() == ot.String()
}

// EqualsFold compares from the view positions, optionally folding case.
func (t *TextValue) EqualsFold(other *TextValue, caseSensitive bool) bool {
	if caseSensitive {
		return t.String() == other.String()
	}
	return strings.EqualFold(t.String(), other.String())
}

// Length returns the codepoint count from the view position to tail.
func (t *TextValue) Length() int { return len(t.Series.Runes) - t.Index }

// FullLength returns the codepoint count of the whole series.
func (t *TextValue) FullLength() int { return len(t.Series.Runes) }

// At returns the rune at absolute index i. Out-of-range is a programmer
// error and panics via the slice bounds check.
func (t *TextValue) At(i int) rune { return t.Series.Runes[i] }

// IsTail reports whether the view sits one past the last rune.
func (t *TextValue) IsTail() bool { return t.Index >= len(t.Series.Runes) }

// Skip returns a view advanced by n, saturating at head and tail.
func (t *TextValue) Skip(n int) *TextValue { return t.TextAt(t.Index + n) }

// CopyRange copies runes [from, to) into a fresh series.
func (t *TextValue) CopyRange(from, to int) *TextValue {
	from = ClampIndex(from, len(t.Series.Runes))
	to = ClampIndex(to, len(t.Series.Runes))
	if to < from {
		to = from
	}
	part := make([]rune, to-from)
	copy(part, t.Series.Runes[from:to])
	return &TextValue{Series: &TextSeries{Runes: part}}
}

// Copy copies from the view position to the tail.
func (t *TextValue) Copy() *TextValue {
	return t.CopyRange(t.Index, len(t.Series.Runes))
}

// InsertAt splices runes before absolute index i. Caller has checked
// mutability.
func (t *TextValue) InsertAt(i int, rs []rune) {
	i = ClampIndex(i, len(t.Series.Runes))
	t.Series.Runes = append(t.Series.Runes[:i], append(append([]rune{}, rs...), t.Series.Runes[i:]...)...)
}

// RemoveRange deletes runes [from, to). Caller has checked mutability.
func (t *TextValue) RemoveRange(from, to int) {
	from = ClampIndex(from, len(t.Series.Runes))
	to = ClampIndex(to, len(t.Series.Runes))
	if to < from {
		to = from
	}
	t.Series.Runes = append(t.Series.Runes[:from], t.Series.Runes[to:]...)
}

// AppendRunes appends to the tail. Caller has checked mutability.
func (t *TextValue) AppendRunes(rs []rune) {
	t.Series.Runes = append(t.Series.Runes, rs...)
}
