package value

import (
	"strings"

	"github.com/marcin-radoszewski/ren/internal/core"
)

// QuotedValue wraps any value with a quote level of one or more.
// Only cells at quote level zero are live for dispatch; a quoted cell
// is literal data until unquoted.
type QuotedValue struct {
	inner core.Value
	level int
}

// NewQuotedValue wraps inner at the given level (>= 1). Wrapping an
// already-quoted value collapses into a single wrapper with the summed
// level, so the inner payload is never itself quoted.
func NewQuotedValue(inner core.Value, level int) core.Value {
	if level <= 0 {
		return inner
	}
	if q, ok := inner.(*QuotedValue); ok {
		return &QuotedValue{inner: q.inner, level: q.level + level}
	}
	return &QuotedValue{inner: inner, level: level}
}

func (q *QuotedValue) GetType() core.ValueType { return TypeQuoted }
func (q *QuotedValue) GetPayload() any         { return q.inner }

func (q *QuotedValue) String() string { return q.Mold() }

func (q *QuotedValue) Mold() string {
	return strings.Repeat("'", q.level) + q.inner.Mold()
}

func (q *QuotedValue) Form() string { return q.inner.Form() }

// Equals is strict for quoted values: same level, equal payload.
func (q *QuotedValue) Equals(other core.Value) bool {
	oq, ok := other.(*QuotedValue)
	if !ok {
		return false
	}
	return q.level == oq.level && q.inner.Equals(oq.inner)
}

// Level returns the quote level (>= 1).
func (q *QuotedValue) Level() int { return q.level }

// Inner returns the wrapped payload at level zero.
func (q *QuotedValue) Inner() core.Value { return q.inner }

// Unquote strips any quote wrapper, returning the level-zero payload
// and the quote level (zero for unquoted values). Kind tests are always
// made against the unquoted payload.
func Unquote(v core.Value) (core.Value, int) {
	if q, ok := v.(*QuotedValue); ok {
		return q.inner, q.level
	}
	return v, 0
}

// UnquoteOnce lowers the quote level by one.
func UnquoteOnce(v core.Value) core.Value {
	if q, ok := v.(*QuotedValue); ok {
		if q.level <= 1 {
			return q.inner
		}
		return &QuotedValue{inner: q.inner, level: q.level - 1}
	}
	return v
}
