package dialect

import (
	"strings"
	"unicode/utf8"

	"github.com/marcin-radoszewski/ren/internal/core"
	"github.com/marcin-radoszewski/ren/internal/trace"
	"github.com/marcin-radoszewski/ren/internal/value"
	"github.com/marcin-radoszewski/ren/internal/verror"
)

// matchOne matches the single rule unit starting at rules[i] against
// the input at pos. It returns the outcome plus the rule index one
// past the unit, so callers can continue the sequence.
func (e *Engine) matchOne(rules []core.Value, i, pos int) (outcome, int, error) {
	ni, err := e.ruleExtent(rules, i)
	if err != nil {
		return noMatch(), 0, err
	}
	elem := rules[i]

	if trace.Enabled() {
		trace.ParseDispatch(elem.Mold(), pos)
	}

	if _, lvl := value.Unquote(elem); lvl > 0 {
		return e.matchLiteral(value.UnquoteOnce(elem), pos), ni, nil
	}

	switch elem.GetType() {
	case value.TypeWord:
		out, err := e.matchWord(rules, i, pos)
		return out, ni, err

	case value.TypeSetWord:
		// Capture the current input position into the word.
		sym, _ := value.AsWord(elem)
		if err := e.eval.SetWord(sym, e.cursor.PositionValue(pos)); err != nil {
			return noMatch(), 0, err
		}
		return matchedAt(pos), ni, nil

	case value.TypeGetWord:
		out, err := e.seekStored(elem, pos)
		return out, ni, err

	case value.TypeBlock:
		blk, _ := value.AsBlock(elem)
		out, err := e.matchBlockValue(blk, pos)
		return out, ni, err

	case value.TypeGroup:
		// Side-effectful code; consumes no input, result discarded.
		// Effects are not rolled back if the engine later backtracks.
		grp, _ := value.AsBlock(elem)
		if _, err := e.eval.DoBlock(grp.Cells()); err != nil {
			return noMatch(), 0, err
		}
		return matchedAt(pos), ni, nil

	case value.TypeGetGroup:
		grp, _ := value.AsBlock(elem)
		result, err := e.eval.DoBlock(grp.Cells())
		if err != nil {
			return noMatch(), 0, err
		}
		out, err := e.matchInjected(result, pos)
		return out, ni, err

	case value.TypeInteger:
		// Reached when a repetition count is the sub-rule of a prefix
		// keyword; no surrounding remainder, so it runs possessively.
		min, max, subI, isRepeat, err := e.repeatAt(rules, i)
		if err != nil {
			return noMatch(), 0, err
		}
		if !isRepeat {
			return noMatch(), 0, verror.NewScriptError(verror.ErrIDParseInvalidRule,
				[3]string{"integer out of context", elem.Mold(), ""})
		}
		out, err := e.matchRepeatSimple(rules, subI, min, max, pos)
		return out, ni, err

	case value.TypeBitset:
		bs, _ := value.AsBitset(elem)
		return e.matchBitset(bs, pos), ni, nil

	case value.TypeFunction, value.TypeNone:
		return noMatch(), 0, verror.NewScriptError(verror.ErrIDParseInvalidRule,
			[3]string{value.TypeToString(elem.GetType()), elem.Mold(), ""})

	default:
		return e.matchLiteral(elem, pos), ni, nil
	}
}

// matchWord dispatches a word rule element: reserved keyword first,
// datatype spelling second, user binding last.
func (e *Engine) matchWord(rules []core.Value, i, pos int) (outcome, error) {
	sym, isKw := keywordAt(rules, i)
	if isKw {
		return e.matchKeyword(sym, rules, i, pos)
	}

	raw, _ := value.AsWord(rules[i])
	if name := strings.ToLower(raw); strings.HasSuffix(name, "!") && value.KnownDatatype(name) {
		return e.matchDatatype(name, pos), nil
	}

	if e.eval == nil {
		return noMatch(), verror.NewScriptError(verror.ErrIDParseUnboundRule, [3]string{raw, "", ""})
	}
	bound, ok := e.eval.Lookup(raw)
	if !ok {
		return noMatch(), verror.NewScriptError(verror.ErrIDParseUnboundRule, [3]string{raw, "", ""})
	}
	if bound.GetType() == value.TypeNone {
		return noMatch(), verror.NewScriptError(verror.ErrIDParseNullRule, [3]string{raw, "", ""})
	}
	return e.matchInjected(bound, pos)
}

// matchKeyword handles the reserved spellings. Repetition keywords are
// handled in matchSeq when a continuation exists; arriving here means
// the possessive form.
func (e *Engine) matchKeyword(sym string, rules []core.Value, i, pos int) (outcome, error) {
	switch sym {
	case "end":
		if pos >= e.limit {
			e.state.sawEnd = true
			return matchedAt(pos), nil
		}
		return noMatch(), nil

	case "skip":
		if pos < e.limit {
			return matchedAt(pos + 1), nil
		}
		return noMatch(), nil

	case "break":
		return outcome{matched: true, pos: pos, signal: sigBreak}, nil

	case "reject":
		return outcome{pos: pos, signal: sigReject}, nil

	case "fail":
		return noMatch(), nil

	case "then":
		return outcome{matched: true, pos: pos, cut: true}, nil

	case "opt", "any", "some", "while":
		min, max, subI, _, err := e.repeatAt(rules, i)
		if err != nil {
			return noMatch(), err
		}
		return e.matchRepeatSimple(rules, subI, min, max, pos)

	case "not":
		// Succeeds iff the sub-rule fails here; never advances, never
		// keeps.
		sp := e.state.collect.Save()
		out, _, err := e.matchOne(rules, i+1, pos)
		if err != nil {
			return noMatch(), err
		}
		e.state.collect.Restore(sp)
		if out.matched {
			return noMatch(), nil
		}
		return matchedAt(pos), nil

	case "ahead", "and":
		sp := e.state.collect.Save()
		out, _, err := e.matchOne(rules, i+1, pos)
		if err != nil {
			return noMatch(), err
		}
		e.state.collect.Restore(sp)
		if out.matched {
			return matchedAt(pos), nil
		}
		return noMatch(), nil

	case "to", "thru":
		return e.scanFor(sym, rules, i, pos)

	case "seek":
		return e.seekArg(rules[i+1], pos)

	case "mark":
		w, ok := value.AsWord(rules[i+1])
		if !ok {
			return noMatch(), verror.NewScriptError(verror.ErrIDParseInvalidRule,
				[3]string{"mark needs a word", rules[i+1].Mold(), ""})
		}
		if err := e.eval.SetWord(w, e.cursor.PositionValue(pos)); err != nil {
			return noMatch(), err
		}
		return matchedAt(pos), nil

	case "copy":
		return e.matchCopy(rules, i, pos)

	case "set":
		return e.matchSet(rules, i, pos)

	case "into":
		return e.matchInto(rules, i, pos)

	case "collect":
		return e.matchCollect(rules, i, pos)

	case "keep":
		return e.matchKeep(rules, i, pos)

	case "do":
		return e.matchDo(rules, i, pos)

	case "remove":
		return e.matchRemove(rules, i, pos)

	case "insert":
		return e.matchInsert(rules, i, pos)

	case "change":
		return e.matchChange(rules, i, pos)
	}
	return noMatch(), verror.NewScriptError(verror.ErrIDParseInvalidRule, [3]string{sym, "", ""})
}

// matchInjected matches a value produced at runtime (a word binding or
// a get-group result) as a rule. Logic short-circuits: true is a
// no-op, false always fails. none always fails. Kinds that cannot act
// as a rule are an error.
func (e *Engine) matchInjected(val core.Value, pos int) (outcome, error) {
	inner, lvl := value.Unquote(val)
	if lvl > 0 {
		return e.matchLiteral(value.UnquoteOnce(val), pos), nil
	}
	switch inner.GetType() {
	case value.TypeNone:
		return noMatch(), nil
	case value.TypeLogic:
		b, _ := value.AsLogic(inner)
		if b {
			return matchedAt(pos), nil
		}
		return noMatch(), nil
	case value.TypeBlock:
		blk, _ := value.AsBlock(inner)
		e.state.locker.walk(blk)
		return e.matchBlockValue(blk, pos)
	case value.TypeWord, value.TypeSetWord, value.TypeGetWord:
		tmp := []core.Value{inner}
		ext, err := e.ruleExtent(tmp, 0)
		if err != nil || ext != 1 {
			return noMatch(), verror.NewScriptError(verror.ErrIDParseInvalidRule,
				[3]string{"injected rule needs arguments", inner.Mold(), ""})
		}
		out, _, err := e.matchOne(tmp, 0, pos)
		return out, err
	case value.TypeBitset:
		bs, _ := value.AsBitset(inner)
		return e.matchBitset(bs, pos), nil
	case value.TypeInteger, value.TypeFunction, value.TypeGroup, value.TypeGetGroup:
		return noMatch(), verror.NewScriptError(verror.ErrIDParseInvalidRule,
			[3]string{value.TypeToString(inner.GetType()), inner.Mold(), ""})
	default:
		return e.matchLiteral(inner, pos), nil
	}
}

// scanFor implements to and thru: advance until the target matches,
// landing at the match (to) or past it (thru).
func (e *Engine) scanFor(sym string, rules []core.Value, i, pos int) (outcome, error) {
	for sc := pos; sc <= e.limit; sc++ {
		if err := e.haltCheck(); err != nil {
			return noMatch(), err
		}
		sp := e.state.collect.Save()
		out, _, err := e.matchOne(rules, i+1, sc)
		if err != nil {
			return noMatch(), err
		}
		if out.matched {
			if sym == "to" {
				e.state.collect.Restore(sp)
				return matchedAt(sc), nil
			}
			return matchedAt(out.pos), nil
		}
		e.state.collect.Restore(sp)
	}
	return noMatch(), nil
}

// seekArg implements seek POS: a 1-based integer (saturating at the
// tail) or a word holding an integer or a previously captured
// position.
func (e *Engine) seekArg(arg core.Value, pos int) (outcome, error) {
	switch arg.GetType() {
	case value.TypeInteger:
		n, _ := value.AsInteger(arg)
		return matchedAt(value.ClampIndex(int(n)-1, e.limit)), nil
	case value.TypeWord, value.TypeGetWord:
		sym, _ := value.AsWord(arg)
		bound, ok := e.eval.Lookup(sym)
		if !ok {
			return noMatch(), verror.NewScriptError(verror.ErrIDParseUnboundRule, [3]string{sym, "", ""})
		}
		if n, isInt := value.AsInteger(bound); isInt {
			return matchedAt(value.ClampIndex(int(n)-1, e.limit)), nil
		}
		if idx, same := e.cursor.PositionIndex(bound); same {
			return matchedAt(idx), nil
		}
		return noMatch(), verror.NewScriptError(verror.ErrIDParseOutOfRange,
			[3]string{bound.Mold(), "not a position in this input", ""})
	}
	return noMatch(), verror.NewScriptError(verror.ErrIDParseInvalidRule,
		[3]string{"seek needs an integer or word", arg.Mold(), ""})
}

// seekStored implements the :w rule: jump to the position captured in
// w, which must lie within the current input sequence.
func (e *Engine) seekStored(elem core.Value, pos int) (outcome, error) {
	sym, _ := value.AsWord(elem)
	bound, ok := e.eval.Lookup(sym)
	if !ok {
		return noMatch(), verror.NewScriptError(verror.ErrIDParseUnboundRule, [3]string{sym, "", ""})
	}
	if idx, same := e.cursor.PositionIndex(bound); same {
		return matchedAt(idx), nil
	}
	if n, isInt := value.AsInteger(bound); isInt {
		idx := int(n) - 1
		if idx < 0 || idx > e.limit {
			return noMatch(), verror.NewScriptError(verror.ErrIDParseOutOfRange,
				[3]string{bound.Mold(), "outside the input", ""})
		}
		return matchedAt(idx), nil
	}
	return noMatch(), verror.NewScriptError(verror.ErrIDParseOutOfRange,
		[3]string{bound.Mold(), "not a position in this input", ""})
}

// matchCopy implements copy w RULE: on success w is bound to a fresh
// copy of the consumed input; on failure w is left unchanged.
func (e *Engine) matchCopy(rules []core.Value, i, pos int) (outcome, error) {
	w, ok := value.AsWord(rules[i+1])
	if !ok {
		return noMatch(), verror.NewScriptError(verror.ErrIDParseInvalidRule,
			[3]string{"copy needs a word", rules[i+1].Mold(), ""})
	}
	out, _, err := e.matchOne(rules, i+2, pos)
	if err != nil {
		return noMatch(), err
	}
	if !out.matched {
		return out, nil
	}
	if err := e.eval.SetWord(w, e.cursor.SliceCopy(pos, out.pos)); err != nil {
		return noMatch(), err
	}
	return out, nil
}

// matchSet implements set w RULE: on success w is bound to the first
// element consumed, or blank when the rule matched empty.
func (e *Engine) matchSet(rules []core.Value, i, pos int) (outcome, error) {
	w, ok := value.AsWord(rules[i+1])
	if !ok {
		return noMatch(), verror.NewScriptError(verror.ErrIDParseInvalidRule,
			[3]string{"set needs a word", rules[i+1].Mold(), ""})
	}
	out, _, err := e.matchOne(rules, i+2, pos)
	if err != nil {
		return noMatch(), err
	}
	if !out.matched {
		return out, nil
	}
	var captured core.Value = value.BlankVal()
	if out.pos > pos {
		captured = e.cursor.ElementAt(pos)
	}
	if err := e.eval.SetWord(w, captured); err != nil {
		return noMatch(), err
	}
	return out, nil
}

// matchInto recurses into the series element at the current position;
// the sub-rule must consume the nested series to its tail.
func (e *Engine) matchInto(rules []core.Value, i, pos int) (outcome, error) {
	if pos >= e.limit {
		return noMatch(), nil
	}
	elem, _ := value.Unquote(e.cursor.ElementAt(pos))
	if !value.IsSeriesType(elem.GetType()) {
		return noMatch(), verror.NewScriptError(verror.ErrIDParseIntoType,
			[3]string{value.TypeToString(elem.GetType()), "", ""})
	}
	sub, ok := NewCursor(elem)
	if !ok {
		return noMatch(), verror.NewScriptError(verror.ErrIDParseIntoType,
			[3]string{value.TypeToString(elem.GetType()), "", ""})
	}
	nested := &Engine{cursor: sub, state: e.state, eval: e.eval, limit: sub.Length()}
	sawEnd := e.state.sawEnd
	out, _, err := nested.matchOne(rules, i+1, startIndex(elem))
	e.state.sawEnd = sawEnd
	if err != nil {
		return noMatch(), err
	}
	if !out.matched || out.pos < nested.limit {
		return noMatch(), nil
	}
	return matchedAt(pos + 1), nil
}

// matchCollect opens a collect frame around the sub-rule. With a
// target word the committed block is bound on success; without one it
// becomes the invocation's collected result. On failure the frame is
// discarded and the target is untouched.
func (e *Engine) matchCollect(rules []core.Value, i, pos int) (outcome, error) {
	j := i + 1
	target := ""
	if collectTargetAt(rules, j) {
		target, _ = value.AsWord(rules[j])
		j++
	}
	e.state.collect.Open()
	out, _, err := e.matchOne(rules, j, pos)
	if err != nil {
		e.state.collect.Close(false)
		return noMatch(), err
	}
	if !out.matched {
		e.state.collect.Close(false)
		return out, nil
	}
	pending := e.state.collect.Close(true)
	collected := value.NewBlockValue(pending)
	if target != "" {
		if err := e.eval.SetWord(target, collected); err != nil {
			return noMatch(), err
		}
	} else {
		e.state.collected = collected
	}
	return out, nil
}

// matchKeep appends to the innermost collect frame. A group argument
// is evaluated and its value appended (blocks splice unless `only`);
// a rule argument is matched and the consumed input appended.
func (e *Engine) matchKeep(rules []core.Value, i, pos int) (outcome, error) {
	j := i + 1
	only := false
	if w, ok := wordSpelling(rules, j); ok && w == "only" {
		only = true
		j++
	}
	if j >= len(rules) {
		return noMatch(), verror.NewScriptError(verror.ErrIDParseInvalidRule,
			[3]string{"keep needs a rule or group", "", ""})
	}

	if t := rules[j].GetType(); t == value.TypeGroup || t == value.TypeGetGroup {
		grp, _ := value.AsBlock(rules[j])
		val, err := e.eval.DoBlock(grp.Cells())
		if err != nil {
			return noMatch(), err
		}
		e.keepValue(val, only)
		return matchedAt(pos), nil
	}

	out, _, err := e.matchOne(rules, j, pos)
	if err != nil {
		return noMatch(), err
	}
	if !out.matched {
		return out, nil
	}
	e.keepConsumed(pos, out.pos, only)
	return out, nil
}

// keepValue appends an evaluated value: none is skipped, a block
// splices unless only, anything else appends as one cell.
func (e *Engine) keepValue(val core.Value, only bool) {
	if val.GetType() == value.TypeNone {
		return
	}
	if blk, ok := value.AsBlock(val); ok && val.GetType() == value.TypeBlock && !only {
		e.state.collect.Keep(blk.Cells()...)
		return
	}
	e.state.collect.Keep(val)
}

// keepConsumed appends the input consumed by a keep rule. Block input
// keeps cell-wise; text and binary keep the matched span as one value.
// With only, the span is wrapped as a single block.
func (e *Engine) keepConsumed(from, to int, only bool) {
	if to <= from {
		return
	}
	if e.cursor.Mode() == ModeBlock {
		slice, _ := value.AsBlock(e.cursor.SliceCopy(from, to))
		if only {
			e.state.collect.Keep(slice)
			return
		}
		e.state.collect.Keep(slice.Cells()...)
		return
	}
	span := e.cursor.SliceCopy(from, to)
	if only {
		e.state.collect.Keep(value.NewBlockValue([]core.Value{span}))
		return
	}
	e.state.collect.Keep(span)
}

// matchDo evaluates one expression at the current block position and
// matches the sub-rule against the result as a one-element input.
func (e *Engine) matchDo(rules []core.Value, i, pos int) (outcome, error) {
	bc, ok := e.cursor.(*BlockCursor)
	if !ok {
		return noMatch(), verror.NewScriptError(verror.ErrIDParseInvalidRule,
			[3]string{"do is only legal on block input", "", ""})
	}
	if pos >= e.limit {
		return noMatch(), nil
	}
	val, n, err := e.eval.DoStep(bc.Cells(), pos)
	if err != nil {
		return noMatch(), err
	}
	pseudo := value.NewBlockValue([]core.Value{val})
	sub, _ := NewCursor(pseudo)
	nested := &Engine{cursor: sub, state: e.state, eval: e.eval, limit: sub.Length()}
	sawEnd := e.state.sawEnd
	out, _, err := nested.matchOne(rules, i+1, 0)
	e.state.sawEnd = sawEnd
	if err != nil {
		return noMatch(), err
	}
	if !out.matched {
		return noMatch(), nil
	}
	return matchedAt(pos + n), nil
}

// matchRemove deletes what the sub-rule matches.
func (e *Engine) matchRemove(rules []core.Value, i, pos int) (outcome, error) {
	out, _, err := e.matchOne(rules, i+1, pos)
	if err != nil {
		return noMatch(), err
	}
	if !out.matched {
		return out, nil
	}
	if out.pos > pos {
		if !e.cursor.Mutable() {
			return noMatch(), verror.NewAccessError(verror.ErrIDParseReadOnlyInput, [3]string{"remove", "", ""})
		}
		e.cursor.RemoveRange(pos, out.pos)
		e.limit -= out.pos - pos
	}
	return matchedAt(pos), nil
}

// matchInsert splices a value at the current position and advances
// past it. A group argument is evaluated first.
func (e *Engine) matchInsert(rules []core.Value, i, pos int) (outcome, error) {
	val, err := e.ruleArgValue(rules[i+1])
	if err != nil {
		return noMatch(), err
	}
	if !e.cursor.Mutable() {
		return noMatch(), verror.NewAccessError(verror.ErrIDParseReadOnlyInput, [3]string{"insert", "", ""})
	}
	n := e.cursor.Insert(pos, val, false)
	e.limit += n
	return matchedAt(pos + n), nil
}

// matchChange replaces what the sub-rule matches with a value.
func (e *Engine) matchChange(rules []core.Value, i, pos int) (outcome, error) {
	valIdx, err := e.ruleExtent(rules, i+1)
	if err != nil {
		return noMatch(), err
	}
	out, _, err := e.matchOne(rules, i+1, pos)
	if err != nil {
		return noMatch(), err
	}
	if !out.matched {
		return out, nil
	}
	val, err := e.ruleArgValue(rules[valIdx])
	if err != nil {
		return noMatch(), err
	}
	if !e.cursor.Mutable() {
		return noMatch(), verror.NewAccessError(verror.ErrIDParseReadOnlyInput, [3]string{"change", "", ""})
	}
	e.cursor.RemoveRange(pos, out.pos)
	e.limit -= out.pos - pos
	n := e.cursor.Insert(pos, val, false)
	e.limit += n
	return matchedAt(pos + n), nil
}

// ruleArgValue resolves the VALUE argument of insert/change: a group
// evaluates, a quoted value unwraps one level, anything else is taken
// literally.
func (e *Engine) ruleArgValue(arg core.Value) (core.Value, error) {
	switch arg.GetType() {
	case value.TypeGroup, value.TypeGetGroup:
		grp, _ := value.AsBlock(arg)
		return e.eval.DoBlock(grp.Cells())
	case value.TypeQuoted:
		return value.UnquoteOnce(arg), nil
	}
	return arg, nil
}

// matchDatatype matches the element at pos by its unquoted kind.
func (e *Engine) matchDatatype(name string, pos int) outcome {
	if pos >= e.limit {
		return noMatch()
	}
	elem, _ := value.Unquote(e.cursor.ElementAt(pos))
	if value.DatatypeName(elem.GetType()) == name {
		return matchedAt(pos + 1)
	}
	return noMatch()
}

// matchBitset matches one element against a character class.
func (e *Engine) matchBitset(bs *value.BitsetValue, pos int) outcome {
	if pos >= e.limit {
		return noMatch()
	}
	switch c := e.cursor.(type) {
	case *TextCursor:
		r, _ := c.RuneAt(pos)
		if bs.Test(r) {
			return matchedAt(pos + 1)
		}
	case *BinaryCursor:
		b, _ := c.ByteAt(pos)
		if bs.Test(rune(b)) {
			return matchedAt(pos + 1)
		}
	case *BlockCursor:
		if r, ok := value.AsChar(c.ElementAt(pos)); ok && bs.Test(r) {
			return matchedAt(pos + 1)
		}
	}
	return noMatch()
}

// matchLiteral matches a literal rule value at pos, per input mode.
func (e *Engine) matchLiteral(lit core.Value, pos int) outcome {
	switch e.cursor.Mode() {
	case ModeText:
		return e.matchLiteralText(lit, pos)
	case ModeBinary:
		return e.matchLiteralBinary(lit, pos)
	default:
		return e.matchLiteralBlock(lit, pos)
	}
}

func (e *Engine) matchLiteralText(lit core.Value, pos int) outcome {
	tc := e.cursor.(*TextCursor)
	caseSensitive := e.state.options.CaseSensitive

	var pattern []rune
	switch lit.GetType() {
	case value.TypeText:
		tv, _ := value.AsText(lit)
		pattern = []rune(tv.String())
	case value.TypeChar:
		r, _ := value.AsChar(lit)
		pattern = []rune{r}
	case value.TypeBinary:
		bv, _ := value.AsBinary(lit)
		pattern = []rune(string(bv.Bytes()))
		caseSensitive = true
	case value.TypeBlank:
		// Blank matches empty in text input.
		return matchedAt(pos)
	default:
		// Tags, issues, lit-words and other literals match their
		// rendered form.
		pattern = []rune(lit.Form())
	}

	if pos+len(pattern) > e.limit {
		return noMatch()
	}
	for k, want := range pattern {
		got, _ := tc.RuneAt(pos + k)
		if !runesEqual(want, got, caseSensitive) {
			return noMatch()
		}
	}
	return matchedAt(pos + len(pattern))
}

func (e *Engine) matchLiteralBinary(lit core.Value, pos int) outcome {
	bc := e.cursor.(*BinaryCursor)

	var pattern []byte
	switch lit.GetType() {
	case value.TypeBinary:
		bv, _ := value.AsBinary(lit)
		pattern = bv.Bytes()
	case value.TypeText:
		tv, _ := value.AsText(lit)
		pattern = []byte(tv.String())
	case value.TypeChar:
		r, _ := value.AsChar(lit)
		buf := make([]byte, utf8.UTFMax)
		pattern = buf[:utf8.EncodeRune(buf, r)]
	default:
		return noMatch()
	}

	if pos+len(pattern) > e.limit {
		return noMatch()
	}
	for k, want := range pattern {
		got, _ := bc.ByteAt(pos + k)
		if want != got {
			return noMatch()
		}
	}
	return matchedAt(pos + len(pattern))
}

func (e *Engine) matchLiteralBlock(lit core.Value, pos int) outcome {
	if pos >= e.limit {
		return noMatch()
	}
	// A lit-word rule matches the plain word in the input.
	if lw, ok := lit.(*value.LitWordValue); ok {
		sym, _ := value.AsWord(lw)
		lit = value.WordVal(sym)
	}
	strictness := value.CompareLoose
	if e.state.options.CaseSensitive {
		strictness = value.CompareStrict
	}
	equal, _ := value.Compare(e.cursor.ElementAt(pos), lit, strictness)
	if equal {
		return matchedAt(pos + 1)
	}
	return noMatch()
}

func runesEqual(a, b rune, caseSensitive bool) bool {
	if caseSensitive {
		return a == b
	}
	return foldRune(a) == foldRune(b)
}

func foldRune(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r - 'A' + 'a'
	}
	return r
}
