// Package dialect implements the Ren parse dialect: a backtracking
// pattern matching and transformation DSL over text, binary and block
// input, in the Rebol parse family.
//
// Backtracking is explicit save/restore of input position and collect
// buffer length; no exceptions or goroutines in the match loop. Group
// rule side effects are NOT transactional: the engine may run a group
// and later backtrack without undoing its effects. Input mutations made
// by remove/insert/change are likewise never rolled back.
package dialect

import (
	"github.com/marcin-radoszewski/ren/internal/core"
)

// ParseOptions configures parse behavior via refinements.
type ParseOptions struct {
	CaseSensitive bool // --case: strict case matching for text
	Partial       bool // --partial: a match need not reach the tail
	Part          int  // only parse the first N elements (-1 = no limit); set by API callers, the parse native has no refinement for it
}

// DefaultOptions returns the defaults: case-insensitive, full match.
func DefaultOptions() ParseOptions {
	return ParseOptions{CaseSensitive: false, Partial: false, Part: -1}
}

// Result is the outcome of a parse invocation. NoMatch is not an
// error: Matched reports it. Collected carries the block of an
// untargeted collect, nil otherwise.
type Result struct {
	Matched   bool
	Tail      int
	Collected core.Value
}

// signal is non-local control flow raised by break/reject inside a
// rule, consumed by the innermost repetition.
type signal uint8

const (
	sigNone signal = iota
	sigBreak
	sigReject
)

// outcome is the per-construct match result. cut is raised by `then`:
// once set, a failure no longer tries later alternatives.
type outcome struct {
	matched bool
	pos     int
	signal  signal
	cut     bool
}

func matchedAt(pos int) outcome { return outcome{matched: true, pos: pos} }
func noMatch() outcome          { return outcome{} }

// State carries the per-invocation engine state shared across nested
// rule matching (and into sub-parses opened by the into keyword).
type State struct {
	options   ParseOptions
	collect   CollectStack
	sawEnd    bool
	collected core.Value
	locker    *ruleLocker
}

// NewState creates the state for one invocation.
func NewState(options ParseOptions) *State {
	return &State{options: options}
}
