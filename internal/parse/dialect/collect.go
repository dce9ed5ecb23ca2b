package dialect

import (
	"github.com/marcin-radoszewski/ren/internal/core"
)

// CollectStack is the snapshot-and-rollback buffer behind collect/keep.
// Each collect rule opens a frame; keep appends to the innermost
// frame's pending list. Savepoints taken before every alternative and
// repetition iteration let backtracking discard exactly the keeps made
// on the abandoned branch.
type CollectStack struct {
	frames []collectFrame
}

type collectFrame struct {
	pending []core.Value
}

// Savepoint captures the frame count and each frame's pending length.
type Savepoint struct {
	depth   int
	lengths []int
}

// Open pushes a fresh collect frame.
func (c *CollectStack) Open() {
	c.frames = append(c.frames, collectFrame{})
}

// Close pops the innermost frame. On commit the pending cells are
// returned; otherwise they are discarded.
func (c *CollectStack) Close(commit bool) []core.Value {
	last := len(c.frames) - 1
	frame := c.frames[last]
	c.frames = c.frames[:last]
	if !commit {
		return nil
	}
	return frame.pending
}

// Keep appends cells to the innermost frame. Keeps outside any collect
// are silently dropped; the keyword is legal there, just inert.
func (c *CollectStack) Keep(vals ...core.Value) {
	if len(c.frames) == 0 {
		return
	}
	last := len(c.frames) - 1
	c.frames[last].pending = append(c.frames[last].pending, vals...)
}

// Depth returns the open frame count.
func (c *CollectStack) Depth() int { return len(c.frames) }

// Save captures the current shape of the stack.
func (c *CollectStack) Save() Savepoint {
	sp := Savepoint{depth: len(c.frames), lengths: make([]int, len(c.frames))}
	for i := range c.frames {
		sp.lengths[i] = len(c.frames[i].pending)
	}
	return sp
}

// Restore rewinds to a savepoint: frames opened since are discarded,
// pendings are truncated to their saved lengths.
func (c *CollectStack) Restore(sp Savepoint) {
	if len(c.frames) > sp.depth {
		c.frames = c.frames[:sp.depth]
	}
	for i := range c.frames {
		if i < len(sp.lengths) && len(c.frames[i].pending) > sp.lengths[i] {
			c.frames[i].pending = c.frames[i].pending[:sp.lengths[i]]
		}
	}
}
