package value

import (
	"fmt"
	"strings"

	"github.com/marcin-radoszewski/ren/internal/core"
)

// BinaryValue is a positional view over a shared BinSeries.
type BinaryValue struct {
	Series *BinSeries
	Index  int
}

// NewBinaryValue creates a fresh series from a byte slice, view at head.
func NewBinaryValue(data []byte) *BinaryValue {
	return &BinaryValue{Series: &BinSeries{Bytes: data}}
}

// BinaryAt returns a sibling view of the same series at idx (clamped).
func (b *BinaryValue) BinaryAt(idx int) *BinaryValue {
	return &BinaryValue{Series: b.Series, Index: ClampIndex(idx, len(b.Series.Bytes))}
}

func (b *BinaryValue) GetType() core.ValueType { return TypeBinary }
func (b *BinaryValue) GetPayload() any         { return b }

// Bytes returns the bytes from the view position to the tail.
func (b *BinaryValue) Bytes() []byte { return b.Series.Bytes[b.Index:] }

func (b *BinaryValue) String() string { return b.Mold() }

func (b *BinaryValue) Mold() string {
	var sb strings.Builder
	sb.WriteString("#{")
	for _, by := range b.Bytes() {
		fmt.Fprintf(&sb, "%02X", by)
	}
	sb.WriteString("}")
	return sb.String()
}

func (b *BinaryValue) Form() string { return b.Mold() }

func (b *BinaryValue) Equals(other core.Value) bool {
	ob, ok := other.(*BinaryValue)
	if !ok {
		return false
	}
	x, y := b.Bytes(), ob.Bytes()
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}
	return true
}

// Length returns the byte count from the view position to tail.
func (b *BinaryValue) Length() int { return len(b.Series.Bytes) - b.Index }

// FullLength returns the byte count of the whole series.
func (b *BinaryValue) FullLength() int { return len(b.Series.Bytes) }

// At returns the byte at absolute index i; out-of-range panics.
func (b *BinaryValue) At(i int) byte { return b.Series.Bytes[i] }

// IsTail reports whether the view sits one past the last byte.
func (b *BinaryValue) IsTail() bool { return b.Index >= len(b.Series.Bytes) }

// Skip returns a view advanced by n, saturating at head and tail.
func (b *BinaryValue) Skip(n int) *BinaryValue { return b.BinaryAt(b.Index + n) }

// CopyRange copies bytes [from, to) into a fresh series.
func (b *BinaryValue) CopyRange(from, to int) *BinaryValue {
	from = ClampIndex(from, len(b.Series.Bytes))
	to = ClampIndex(to, len(b.Series.Bytes))
	if to < from {
		to = from
	}
	part := make([]byte, to-from)
	copy(part, b.Series.Bytes[from:to])
	return NewBinaryValue(part)
}

// Copy copies from the view position to the tail.
func (b *BinaryValue) Copy() *BinaryValue {
	return b.CopyRange(b.Index, len(b.Series.Bytes))
}

// InsertAt splices bytes before absolute index i. Caller has checked
// mutability.
func (b *BinaryValue) InsertAt(i int, bs []byte) {
	i = ClampIndex(i, len(b.Series.Bytes))
	b.Series.Bytes = append(b.Series.Bytes[:i], append(append([]byte{}, bs...), b.Series.Bytes[i:]...)...)
}

// RemoveRange deletes bytes [from, to). Caller has checked mutability.
func (b *BinaryValue) RemoveRange(from, to int) {
	from = ClampIndex(from, len(b.Series.Bytes))
	to = ClampIndex(to, len(b.Series.Bytes))
	if to < from {
		to = from
	}
	b.Series.Bytes = append(b.Series.Bytes[:from], b.Series.Bytes[to:]...)
}
