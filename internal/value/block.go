package value

import (
	"strings"

	"github.com/marcin-radoszewski/ren/internal/core"
)

// BlockValue is a positional view over a shared BlockSeries. The same
// concrete type backs block!, group! and get-group!; typ carries the
// variant.
type BlockValue struct {
	Series *BlockSeries
	Index  int
	typ    core.ValueType
}

// NewBlockValue creates a fresh block series, view at head.
func NewBlockValue(cells []core.Value) *BlockValue {
	if cells == nil {
		cells = []core.Value{}
	}
	return &BlockValue{Series: &BlockSeries{Cells: cells}, typ: TypeBlock}
}

// NewBlockValueWithType creates a block/group/get-group series.
func NewBlockValueWithType(cells []core.Value, typ core.ValueType) *BlockValue {
	b := NewBlockValue(cells)
	b.typ = typ
	return b
}

// BlockAt returns a sibling view of the same series at idx (clamped).
func (b *BlockValue) BlockAt(idx int) *BlockValue {
	return &BlockValue{Series: b.Series, Index: ClampIndex(idx, len(b.Series.Cells)), typ: b.typ}
}

func (b *BlockValue) GetType() core.ValueType { return b.typ }
func (b *BlockValue) GetPayload() any         { return b }

// Cells returns the cells from the view position to the tail.
func (b *BlockValue) Cells() []core.Value { return b.Series.Cells[b.Index:] }

func (b *BlockValue) delimiters() (string, string) {
	switch b.typ {
	case TypeGroup:
		return "(", ")"
	case TypeGetGroup:
		return ":(", ")"
	}
	return "[", "]"
}

func (b *BlockValue) String() string { return b.Mold() }

func (b *BlockValue) Mold() string {
	open, close := b.delimiters()
	cells := b.Cells()
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = c.Mold()
	}
	return open + strings.Join(parts, " ") + close
}

func (b *BlockValue) Form() string {
	cells := b.Cells()
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = c.Form()
	}
	return strings.Join(parts, " ")
}

func (b *BlockValue) Equals(other core.Value) bool {
	ob, ok := other.(*BlockValue)
	if !ok {
		return false
	}
	x, y := b.Cells(), ob.Cells()
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if !x[i].Equals(y[i]) {
			return false
		}
	}
	return true
}

// Length returns the cell count from the view position to tail.
func (b *BlockValue) Length() int { return len(b.Series.Cells) - b.Index }

// FullLength returns the cell count of the whole series.
func (b *BlockValue) FullLength() int { return len(b.Series.Cells) }

// At returns the cell at absolute index i; out-of-range panics.
func (b *BlockValue) At(i int) core.Value { return b.Series.Cells[i] }

// IsTail reports whether the view sits one past the last cell.
func (b *BlockValue) IsTail() bool { return b.Index >= len(b.Series.Cells) }

// Skip returns a view advanced by n, saturating at head and tail.
func (b *BlockValue) Skip(n int) *BlockValue { return b.BlockAt(b.Index + n) }

// CopyRange copies cells [from, to) into a fresh block series. The
// copy is shallow: cells are shared, the spine is not.
func (b *BlockValue) CopyRange(from, to int) *BlockValue {
	from = ClampIndex(from, len(b.Series.Cells))
	to = ClampIndex(to, len(b.Series.Cells))
	if to < from {
		to = from
	}
	part := make([]core.Value, to-from)
	copy(part, b.Series.Cells[from:to])
	return NewBlockValue(part)
}

// Copy copies from the view position to the tail.
func (b *BlockValue) Copy() *BlockValue {
	return b.CopyRange(b.Index, len(b.Series.Cells))
}

// Append adds a cell at the tail. Caller has checked mutability.
func (b *BlockValue) Append(val core.Value) {
	b.Series.Cells = append(b.Series.Cells, val)
}

// InsertAt splices cells before absolute index i. Caller has checked
// mutability.
func (b *BlockValue) InsertAt(i int, vals []core.Value) {
	i = ClampIndex(i, len(b.Series.Cells))
	b.Series.Cells = append(b.Series.Cells[:i], append(append([]core.Value{}, vals...), b.Series.Cells[i:]...)...)
}

// RemoveRange deletes cells [from, to). Caller has checked mutability.
func (b *BlockValue) RemoveRange(from, to int) {
	from = ClampIndex(from, len(b.Series.Cells))
	to = ClampIndex(to, len(b.Series.Cells))
	if to < from {
		to = from
	}
	b.Series.Cells = append(b.Series.Cells[:from], b.Series.Cells[to:]...)
}

// Reverse reverses the cells from the view position to the tail in
// place. Caller has checked mutability.
func (b *BlockValue) Reverse() {
	cells := b.Series.Cells[b.Index:]
	for i, j := 0, len(cells)-1; i < j; i, j = i+1, j-1 {
		cells[i], cells[j] = cells[j], cells[i]
	}
}
