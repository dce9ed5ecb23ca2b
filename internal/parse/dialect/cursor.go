package dialect

import (
	"github.com/marcin-radoszewski/ren/internal/core"
	"github.com/marcin-radoszewski/ren/internal/value"
)

// Mode is the kind of the input sequence. Some rules are only legal in
// some modes.
type Mode uint8

const (
	ModeText Mode = iota
	ModeBinary
	ModeBlock
)

// SeriesCursor is the uniform positional interface the engine walks.
// Positions are absolute indexes into the underlying series, [0, len];
// len itself is the tail.
type SeriesCursor interface {
	Mode() Mode

	// Length is the full element count of the underlying series.
	Length() int

	// ElementAt returns the element at pos as a value: a char for
	// text, an integer for binary, the cell itself for block.
	ElementAt(pos int) core.Value

	// PositionValue returns a sibling view of the input at pos, the
	// value a set-word rule captures.
	PositionValue(pos int) core.Value

	// PositionIndex recovers the index from a position value, checking
	// it views this same series.
	PositionIndex(v core.Value) (int, bool)

	// SliceCopy copies [from, to) into a fresh series value.
	SliceCopy(from, to int) core.Value

	// Mutable reports whether remove/insert/change may run.
	Mutable() bool

	// Insert splices val before pos and reports how many elements went
	// in. A block value splices cell-wise unless only is set.
	Insert(pos int, val core.Value, only bool) int

	// RemoveRange deletes [from, to).
	RemoveRange(from, to int)
}

// TextCursor walks a text series.
type TextCursor struct {
	view *value.TextValue
}

func (tc *TextCursor) Mode() Mode   { return ModeText }
func (tc *TextCursor) Length() int  { return tc.view.FullLength() }
func (tc *TextCursor) Mutable() bool { return tc.view.Series.Mutable() }

// RuneAt returns the rune at pos; ok=false at or past the tail.
func (tc *TextCursor) RuneAt(pos int) (rune, bool) {
	if pos < 0 || pos >= tc.view.FullLength() {
		return 0, false
	}
	return tc.view.At(pos), true
}

func (tc *TextCursor) ElementAt(pos int) core.Value {
	return value.CharVal(tc.view.At(pos))
}

func (tc *TextCursor) PositionValue(pos int) core.Value {
	return tc.view.TextAt(pos)
}

func (tc *TextCursor) PositionIndex(v core.Value) (int, bool) {
	tv, ok := value.AsText(v)
	if !ok || tv.Series != tc.view.Series {
		return 0, false
	}
	return tv.Index, true
}

func (tc *TextCursor) SliceCopy(from, to int) core.Value {
	return tc.view.CopyRange(from, to)
}

func (tc *TextCursor) Insert(pos int, val core.Value, only bool) int {
	rs := []rune(formForText(val))
	tc.view.InsertAt(pos, rs)
	return len(rs)
}

func (tc *TextCursor) RemoveRange(from, to int) {
	tc.view.RemoveRange(from, to)
}

// formForText renders a value for splicing into text input.
func formForText(val core.Value) string {
	if ch, ok := value.AsChar(val); ok {
		return string(ch)
	}
	if blk, ok := value.AsBlock(val); ok {
		return blk.Form()
	}
	return val.Form()
}

// BinaryCursor walks a binary series.
type BinaryCursor struct {
	view *value.BinaryValue
}

func (bc *BinaryCursor) Mode() Mode    { return ModeBinary }
func (bc *BinaryCursor) Length() int   { return bc.view.FullLength() }
func (bc *BinaryCursor) Mutable() bool { return bc.view.Series.Mutable() }

// ByteAt returns the byte at pos; ok=false at or past the tail.
func (bc *BinaryCursor) ByteAt(pos int) (byte, bool) {
	if pos < 0 || pos >= bc.view.FullLength() {
		return 0, false
	}
	return bc.view.At(pos), true
}

func (bc *BinaryCursor) ElementAt(pos int) core.Value {
	return value.IntVal(int64(bc.view.At(pos)))
}

func (bc *BinaryCursor) PositionValue(pos int) core.Value {
	return bc.view.BinaryAt(pos)
}

func (bc *BinaryCursor) PositionIndex(v core.Value) (int, bool) {
	bv, ok := value.AsBinary(v)
	if !ok || bv.Series != bc.view.Series {
		return 0, false
	}
	return bv.Index, true
}

func (bc *BinaryCursor) SliceCopy(from, to int) core.Value {
	return bc.view.CopyRange(from, to)
}

func (bc *BinaryCursor) Insert(pos int, val core.Value, only bool) int {
	bs := bytesForBinary(val)
	bc.view.InsertAt(pos, bs)
	return len(bs)
}

func (bc *BinaryCursor) RemoveRange(from, to int) {
	bc.view.RemoveRange(from, to)
}

func bytesForBinary(val core.Value) []byte {
	if bv, ok := value.AsBinary(val); ok {
		out := make([]byte, len(bv.Bytes()))
		copy(out, bv.Bytes())
		return out
	}
	if i, ok := value.AsInteger(val); ok {
		return []byte{byte(i)}
	}
	return []byte(val.Form())
}

// BlockCursor walks a block series.
type BlockCursor struct {
	view *value.BlockValue
}

func (bk *BlockCursor) Mode() Mode    { return ModeBlock }
func (bk *BlockCursor) Length() int   { return bk.view.FullLength() }
func (bk *BlockCursor) Mutable() bool { return bk.view.Series.Mutable() }

func (bk *BlockCursor) ElementAt(pos int) core.Value {
	return bk.view.At(pos)
}

// Cells exposes the full cell array for the do keyword's evaluator
// step.
func (bk *BlockCursor) Cells() []core.Value {
	return bk.view.Series.Cells
}

func (bk *BlockCursor) PositionValue(pos int) core.Value {
	return bk.view.BlockAt(pos)
}

func (bk *BlockCursor) PositionIndex(v core.Value) (int, bool) {
	bv, ok := value.AsBlock(v)
	if !ok || bv.Series != bk.view.Series {
		return 0, false
	}
	return bv.Index, true
}

func (bk *BlockCursor) SliceCopy(from, to int) core.Value {
	return bk.view.CopyRange(from, to)
}

func (bk *BlockCursor) Insert(pos int, val core.Value, only bool) int {
	if blk, ok := value.AsBlock(val); ok && !only {
		cells := blk.Cells()
		bk.view.InsertAt(pos, cells)
		return len(cells)
	}
	bk.view.InsertAt(pos, []core.Value{val})
	return 1
}

func (bk *BlockCursor) RemoveRange(from, to int) {
	bk.view.RemoveRange(from, to)
}

// NewCursor creates the cursor for an input value; ok=false for kinds
// that are not parse input.
func NewCursor(v core.Value) (SeriesCursor, bool) {
	switch v.GetType() {
	case value.TypeText:
		tv, _ := value.AsText(v)
		return &TextCursor{view: tv}, true
	case value.TypeBinary:
		bv, _ := value.AsBinary(v)
		return &BinaryCursor{view: bv}, true
	case value.TypeBlock, value.TypeGroup:
		bv, _ := value.AsBlock(v)
		return &BlockCursor{view: bv}, true
	}
	return nil, false
}
