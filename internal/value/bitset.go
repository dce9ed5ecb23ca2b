package value

import (
	"fmt"
	"sort"
	"strings"

	"github.com/marcin-radoszewski/ren/internal/core"
)

// BitsetValue is a character class: a set of Unicode scalars. A bitmap
// covers Latin-1; scalars past 255 go to a map.
type BitsetValue struct {
	lowBits    [256 / 64]uint64
	highChars  map[rune]bool
	cachedMold string
	molded     bool
}

// NewBitsetValue creates an empty bitset.
func NewBitsetValue() *BitsetValue {
	return &BitsetValue{highChars: make(map[rune]bool)}
}

// NewBitsetFromString creates a bitset of every character in s.
func NewBitsetFromString(s string) *BitsetValue {
	bs := NewBitsetValue()
	for _, r := range s {
		bs.Set(r)
	}
	return bs
}

// NewBitsetFromRange creates a bitset of the inclusive range [start, end].
func NewBitsetFromRange(start, end rune) *BitsetValue {
	bs := NewBitsetValue()
	for r := start; r <= end; r++ {
		bs.Set(r)
	}
	return bs
}

// Set adds a scalar to the set.
func (b *BitsetValue) Set(r rune) {
	b.molded = false
	if r < 256 {
		b.lowBits[r/64] |= 1 << (r % 64)
	} else {
		b.highChars[r] = true
	}
}

// Test reports membership.
func (b *BitsetValue) Test(r rune) bool {
	if r < 0 {
		return false
	}
	if r < 256 {
		return b.lowBits[r/64]&(1<<(r%64)) != 0
	}
	return b.highChars[r]
}

func (b *BitsetValue) GetType() core.ValueType { return TypeBitset }
func (b *BitsetValue) GetPayload() any         { return b }

func (b *BitsetValue) String() string { return b.Mold() }

func (b *BitsetValue) Mold() string {
	if b.molded {
		return b.cachedMold
	}
	var chars []rune
	for r := rune(0); r < 256; r++ {
		if b.Test(r) {
			chars = append(chars, r)
		}
	}
	for r := range b.highChars {
		if b.highChars[r] {
			chars = append(chars, r)
		}
	}
	sort.Slice(chars, func(i, j int) bool { return chars[i] < chars[j] })

	var sb strings.Builder
	sb.WriteString("make bitset! ")
	sb.WriteString(fmt.Sprintf("%q", string(chars)))
	b.cachedMold = sb.String()
	b.molded = true
	return b.cachedMold
}

func (b *BitsetValue) Form() string { return b.Mold() }

func (b *BitsetValue) Equals(other core.Value) bool {
	ob, ok := other.(*BitsetValue)
	if !ok {
		return false
	}
	if b.lowBits != ob.lowBits {
		return false
	}
	if len(b.highChars) != len(ob.highChars) {
		return false
	}
	for r, set := range b.highChars {
		if set && !ob.highChars[r] {
			return false
		}
	}
	return true
}
