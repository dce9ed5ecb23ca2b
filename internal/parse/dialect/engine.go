package dialect

import (
	"strings"

	"github.com/marcin-radoszewski/ren/internal/core"
	"github.com/marcin-radoszewski/ren/internal/trace"
	"github.com/marcin-radoszewski/ren/internal/value"
	"github.com/marcin-radoszewski/ren/internal/verror"
)

// Engine is the parse dialect rule interpreter. One engine walks one
// input; the into and do keywords open nested engines that share the
// invocation state (options, collect stack).
type Engine struct {
	cursor SeriesCursor
	state  *State
	eval   core.Evaluator

	// limit is the effective tail: series length, possibly shortened
	// by Options.Part, and tracked live across input mutations.
	limit int
}

// Parse executes the dialect over input with a rule block.
//
// The rule block (and every block nested in it) is locked for the
// duration: a group rule that tries to mutate it fails with
// parse-altered-rule. The input is mutated only by remove, insert and
// change, and those mutations are never rolled back on backtracking.
func Parse(input core.Value, rules *value.BlockValue, options ParseOptions, eval core.Evaluator) (Result, error) {
	cursor, ok := NewCursor(input)
	if !ok {
		return Result{}, verror.NewScriptError(verror.ErrIDParseInvalidInput,
			[3]string{value.TypeToString(input.GetType()), "", ""})
	}

	state := NewState(options)
	state.locker = newRuleLocker()
	state.locker.walk(rules)
	defer state.locker.unlockAll()
	engine := &Engine{
		cursor: cursor,
		state:  state,
		eval:   eval,
		limit:  cursor.Length(),
	}

	start := startIndex(input)
	if options.Part >= 0 && start+options.Part < engine.limit {
		engine.limit = start + options.Part
	}

	out, err := engine.matchBlockValue(rules, start)
	// The collect stack is torn down whatever the outcome.
	state.collect = CollectStack{}
	if err != nil {
		return Result{}, err
	}

	matched := out.matched &&
		(options.Partial || out.pos >= engine.limit || state.sawEnd)
	return Result{Matched: matched, Tail: out.pos, Collected: state.collected}, nil
}

func startIndex(input core.Value) int {
	switch v := input.(type) {
	case *value.TextValue:
		return v.Index
	case *value.BinaryValue:
		return v.Index
	case *value.BlockValue:
		return v.Index
	}
	return 0
}

// ruleLocker locks every block series reachable from rule blocks as
// the engine walks them, so a group rule cannot mutate a rule out from
// under the rule cursor. Word-bound sub-rules are locked lazily when
// first resolved. Rules may be cyclic (a rule that refers to itself);
// the visited set stops the walk.
type ruleLocker struct {
	visited map[*value.BlockSeries]bool
	locked  []*value.BlockSeries
}

func newRuleLocker() *ruleLocker {
	return &ruleLocker{visited: map[*value.BlockSeries]bool{}}
}

func (l *ruleLocker) walk(b *value.BlockValue) {
	if l.visited[b.Series] {
		return
	}
	l.visited[b.Series] = true
	b.Series.Lock()
	l.locked = append(l.locked, b.Series)
	for _, cell := range b.Series.Cells {
		inner, _ := value.Unquote(cell)
		if nested, ok := value.AsBlock(inner); ok && inner.GetType() == value.TypeBlock {
			l.walk(nested)
		}
	}
}

func (l *ruleLocker) unlockAll() {
	for _, s := range l.locked {
		s.Unlock()
	}
	l.locked = nil
}

func (e *Engine) haltCheck() error {
	if e.eval != nil && e.eval.Halted() {
		return verror.NewHaltError()
	}
	return nil
}

// matchBlockValue matches a block rule: alternatives separated by |,
// tried left to right. The input position and collect buffer are
// restored between failed alternatives; the first success commits.
func (e *Engine) matchBlockValue(blk *value.BlockValue, pos int) (outcome, error) {
	alternatives := splitAlternatives(blk.Cells())
	for _, alt := range alternatives {
		sp := e.state.collect.Save()
		out, err := e.matchSeq(alt, pos)
		if err != nil {
			return noMatch(), err
		}
		if out.matched || out.signal != sigNone {
			return out, nil
		}
		e.state.collect.Restore(sp)
		if out.cut {
			// then: failure past the cut skips the remaining
			// alternatives.
			return out, nil
		}
	}
	return noMatch(), nil
}

// splitAlternatives splits rule cells on the | separator. An empty
// alternative is kept: it matches without consuming.
func splitAlternatives(cells []core.Value) [][]core.Value {
	var result [][]core.Value
	current := []core.Value{}
	for _, cell := range cells {
		if word, ok := value.AsWord(cell); ok && cell.GetType() == value.TypeWord && word == "|" {
			result = append(result, current)
			current = []core.Value{}
			continue
		}
		current = append(current, cell)
	}
	result = append(result, current)
	return result
}

// matchSeq matches the elements of one alternative in order. Counted
// and keyword repetitions hand the rest of the alternative to
// matchRepeat so a greedy match can be retried shorter when the
// remainder fails.
func (e *Engine) matchSeq(rules []core.Value, pos int) (outcome, error) {
	cut := false
	i := 0
	for i < len(rules) {
		if err := e.haltCheck(); err != nil {
			return noMatch(), err
		}

		if sym, ok := keywordAt(rules, i); ok && sym == "then" {
			cut = true
			i++
			continue
		}

		if min, max, subI, isRepeat, err := e.repeatAt(rules, i); isRepeat || err != nil {
			if err != nil {
				return noMatch(), err
			}
			out, err := e.matchRepeat(rules, subI, min, max, pos)
			if err != nil {
				return noMatch(), err
			}
			out.cut = out.cut || cut
			return out, nil
		}

		out, ni, err := e.matchOne(rules, i, pos)
		if err != nil {
			return noMatch(), err
		}
		if trace.Enabled() {
			trace.ParseOutcome(rules[i].Mold(), pos, out.matched)
		}
		if out.signal != sigNone {
			out.cut = out.cut || cut
			return out, nil
		}
		if !out.matched {
			return outcome{pos: pos, cut: cut || out.cut}, nil
		}
		pos = out.pos
		i = ni
	}
	return outcome{matched: true, pos: pos, cut: cut}, nil
}

// repeatAt recognizes a repetition head at rules[i]: an integer count,
// an integer pair, or one of the repetition keywords. subI is the
// index of the repeated sub-rule; max < 0 means unbounded.
func (e *Engine) repeatAt(rules []core.Value, i int) (min, max, subI int, ok bool, err error) {
	elem, lvl := value.Unquote(rules[i])
	if lvl > 0 {
		return 0, 0, 0, false, nil
	}
	if n, isInt := value.AsInteger(elem); isInt {
		min, max = int(n), int(n)
		subI = i + 1
		if subI < len(rules) {
			next, nlvl := value.Unquote(rules[subI])
			if m, isInt2 := value.AsInteger(next); isInt2 && nlvl == 0 {
				max = int(m)
				subI++
			}
		}
		if subI >= len(rules) {
			return 0, 0, 0, false, verror.NewScriptError(verror.ErrIDParseInvalidRule,
				[3]string{"repeat count without a rule", "", ""})
		}
		return min, max, subI, true, nil
	}
	if sym, isKw := keywordAt(rules, i); isKw {
		switch sym {
		case "opt":
			return 0, 1, i + 1, true, nil
		case "any", "while":
			return 0, -1, i + 1, true, nil
		case "some":
			return 1, -1, i + 1, true, nil
		}
	}
	return 0, 0, 0, false, nil
}

// matchRepeat runs a greedy, backtrackable repetition of the sub-rule
// at subI, then matches the rest of the alternative against each
// iteration count from longest to shortest (never below min). A
// savepoint per iteration lets the collect buffer rewind with the
// input position.
func (e *Engine) matchRepeat(rules []core.Value, subI, min, max, pos int) (outcome, error) {
	nextI, err := e.ruleExtent(rules, subI)
	if err != nil {
		return noMatch(), err
	}
	rest := rules[nextI:]

	positions := []int{pos}
	saves := []Savepoint{e.state.collect.Save()}
	emptyMatched := false

	for max < 0 || len(positions)-1 < max {
		if err := e.haltCheck(); err != nil {
			return noMatch(), err
		}
		cur := positions[len(positions)-1]
		out, _, err := e.matchOne(rules, subI, cur)
		if err != nil {
			return noMatch(), err
		}
		if out.signal == sigReject {
			// reject fails the repetition outright: no shorter retry.
			e.state.collect.Restore(saves[0])
			return outcome{pos: pos}, nil
		}
		if out.signal == sigBreak {
			// break exits the repetition successfully at its position.
			out2, err := e.matchSeq(rest, out.pos)
			return out2, err
		}
		if !out.matched {
			break
		}
		if out.pos == cur {
			// A successful iteration that does not advance ends the
			// repetition; looping further could never terminate. An
			// empty match still repeats as often as the count needs,
			// so any minimum is considered satisfied.
			emptyMatched = true
			break
		}
		positions = append(positions, out.pos)
		saves = append(saves, e.state.collect.Save())
	}

	if emptyMatched {
		min = 0
	}
	for k := len(positions) - 1; k >= min; k-- {
		e.state.collect.Restore(saves[k])
		out, err := e.matchSeq(rest, positions[k])
		if err != nil {
			return noMatch(), err
		}
		if out.matched || out.signal != sigNone {
			return out, nil
		}
		if out.cut {
			e.state.collect.Restore(saves[0])
			return outcome{pos: pos, cut: true}, nil
		}
	}
	e.state.collect.Restore(saves[0])
	return outcome{pos: pos}, nil
}

// matchRepeatSimple is the possessive variant used when a repetition
// appears as the sub-rule of a prefix keyword (copy, not, into, ...):
// greedy, but with no surrounding remainder to retry against.
func (e *Engine) matchRepeatSimple(rules []core.Value, subI, min, max, pos int) (outcome, error) {
	count := 0
	cur := pos
	start := e.state.collect.Save()
	for max < 0 || count < max {
		if err := e.haltCheck(); err != nil {
			return noMatch(), err
		}
		out, _, err := e.matchOne(rules, subI, cur)
		if err != nil {
			return noMatch(), err
		}
		if out.signal == sigReject {
			e.state.collect.Restore(start)
			return outcome{pos: pos}, nil
		}
		if out.signal == sigBreak {
			return matchedAt(out.pos), nil
		}
		if !out.matched {
			break
		}
		advanced := out.pos != cur
		cur = out.pos
		count++
		if !advanced {
			break
		}
	}
	if count < min {
		e.state.collect.Restore(start)
		return outcome{pos: pos}, nil
	}
	return matchedAt(cur), nil
}

// keywordAt reports the keyword spelling at rules[i], if the element
// is a plain word with a reserved spelling. Keywords always win over
// user bindings at rule positions.
func keywordAt(rules []core.Value, i int) (string, bool) {
	if i >= len(rules) {
		return "", false
	}
	if rules[i].GetType() != value.TypeWord {
		return "", false
	}
	sym, _ := value.AsWord(rules[i])
	sym = strings.ToLower(sym)
	if parseKeywords[sym] {
		return sym, true
	}
	return "", false
}

var parseKeywords = map[string]bool{
	"end": true, "skip": true, "any": true, "some": true, "while": true,
	"opt": true, "not": true, "ahead": true, "and": true, "to": true,
	"thru": true, "seek": true, "mark": true, "copy": true, "set": true,
	"into": true, "collect": true, "keep": true, "break": true,
	"reject": true, "fail": true, "do": true, "remove": true,
	"insert": true, "change": true, "then": true,
}

// ruleExtent returns the index one past the rule unit starting at
// rules[i], accounting for prefix keywords and their arguments.
func (e *Engine) ruleExtent(rules []core.Value, i int) (int, error) {
	if i >= len(rules) {
		return 0, verror.NewScriptError(verror.ErrIDParseInvalidRule,
			[3]string{"rule ends where a sub-rule is required", "", ""})
	}
	elem, lvl := value.Unquote(rules[i])
	if lvl > 0 {
		return i + 1, nil
	}
	if _, isInt := value.AsInteger(elem); isInt {
		j := i + 1
		if j < len(rules) {
			next, nlvl := value.Unquote(rules[j])
			if _, isInt2 := value.AsInteger(next); isInt2 && nlvl == 0 {
				j++
			}
		}
		return e.ruleExtent(rules, j)
	}
	sym, isKw := keywordAt(rules, i)
	if !isKw {
		return i + 1, nil
	}
	switch sym {
	case "end", "skip", "break", "reject", "fail", "then":
		return i + 1, nil
	case "opt", "any", "some", "while", "not", "ahead", "and",
		"to", "thru", "into", "do", "remove":
		return e.ruleExtent(rules, i+1)
	case "seek", "mark", "insert":
		if i+1 >= len(rules) {
			return 0, verror.NewScriptError(verror.ErrIDParseInvalidRule,
				[3]string{sym + " needs an argument", "", ""})
		}
		return i + 2, nil
	case "copy", "set":
		if i+1 >= len(rules) {
			return 0, verror.NewScriptError(verror.ErrIDParseInvalidRule,
				[3]string{sym + " needs a word and a rule", "", ""})
		}
		return e.ruleExtent(rules, i+2)
	case "collect":
		j := i + 1
		if collectTargetAt(rules, j) {
			j++
		}
		return e.ruleExtent(rules, j)
	case "keep":
		j := i + 1
		if w, ok := wordSpelling(rules, j); ok && w == "only" {
			j++
		}
		return e.ruleExtent(rules, j)
	case "change":
		j, err := e.ruleExtent(rules, i+1)
		if err != nil {
			return 0, err
		}
		if j >= len(rules) {
			return 0, verror.NewScriptError(verror.ErrIDParseInvalidRule,
				[3]string{"change needs a replacement value", "", ""})
		}
		return j + 1, nil
	}
	return i + 1, nil
}

// collectTargetAt reports whether rules[j] names the collect target: a
// set-word, or a plain word that is not a keyword.
func collectTargetAt(rules []core.Value, j int) bool {
	if j >= len(rules) {
		return false
	}
	switch rules[j].GetType() {
	case value.TypeSetWord:
		return true
	case value.TypeWord:
		_, isKw := keywordAt(rules, j)
		return !isKw
	}
	return false
}

func wordSpelling(rules []core.Value, j int) (string, bool) {
	if j >= len(rules) || rules[j].GetType() != value.TypeWord {
		return "", false
	}
	sym, _ := value.AsWord(rules[j])
	return strings.ToLower(sym), true
}
