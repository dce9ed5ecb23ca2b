package value

import "github.com/marcin-radoszewski/ren/internal/core"

// Shared series payloads. A series value (text, binary, block) is a
// (series, index) view: the payload here is shared between every view,
// so mutation and freezing are visible through all of them. Positions
// range over [0, len]; len itself is the tail.
//
// Freezing is permanent (read-only data). Locking is temporary: the
// parse engine locks a rule block for the duration of an invocation so
// a group rule cannot mutate the rule out from under the rule cursor.

// TextSeries holds the characters shared by every TextValue view.
type TextSeries struct {
	Runes  []rune
	frozen bool
	locks  int
}

// BinSeries holds the bytes shared by every BinaryValue view.
type BinSeries struct {
	Bytes  []byte
	frozen bool
	locks  int
}

// BlockSeries holds the cells shared by every block/group view.
type BlockSeries struct {
	Cells  []Cell
	frozen bool
	locks  int
}

// Cell aliases core.Value in series storage.
type Cell = core.Value

// Freeze marks the series permanently read-only.
func (s *TextSeries) Freeze()  { s.frozen = true }
func (s *BinSeries) Freeze()   { s.frozen = true }
func (s *BlockSeries) Freeze() { s.frozen = true }

// Frozen reports whether the series is permanently read-only.
func (s *TextSeries) Frozen() bool  { return s.frozen }
func (s *BinSeries) Frozen() bool   { return s.frozen }
func (s *BlockSeries) Frozen() bool { return s.frozen }

// Lock/Unlock bracket a parse invocation over a rule block.
func (s *TextSeries) Lock()    { s.locks++ }
func (s *TextSeries) Unlock()  { s.locks-- }
func (s *BinSeries) Lock()     { s.locks++ }
func (s *BinSeries) Unlock()   { s.locks-- }
func (s *BlockSeries) Lock()   { s.locks++ }
func (s *BlockSeries) Unlock() { s.locks-- }

// Locked reports whether a parse invocation currently holds the series.
func (s *TextSeries) Locked() bool  { return s.locks > 0 }
func (s *BinSeries) Locked() bool   { return s.locks > 0 }
func (s *BlockSeries) Locked() bool { return s.locks > 0 }

// Mutable reports whether in-place mutation is currently allowed.
func (s *TextSeries) Mutable() bool  { return !s.frozen && s.locks == 0 }
func (s *BinSeries) Mutable() bool   { return !s.frozen && s.locks == 0 }
func (s *BlockSeries) Mutable() bool { return !s.frozen && s.locks == 0 }

// ClampIndex saturates idx into [0, length].
func ClampIndex(idx, length int) int {
	if idx < 0 {
		return 0
	}
	if idx > length {
		return length
	}
	return idx
}
