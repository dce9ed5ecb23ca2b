package value

import (
	"strings"

	"github.com/marcin-radoszewski/ren/internal/core"
)

// PathValue is a short sequence of word-like parts (a/b/c). The same
// concrete type backs path!, get-path! and set-path!.
type PathValue struct {
	Parts []core.Value
	typ   core.ValueType
}

func NewPathValue(parts []core.Value) *PathValue {
	return &PathValue{Parts: parts, typ: TypePath}
}

func NewPathValueWithType(parts []core.Value, typ core.ValueType) *PathValue {
	return &PathValue{Parts: parts, typ: typ}
}

func (p *PathValue) GetType() core.ValueType { return p.typ }
func (p *PathValue) GetPayload() any         { return p }

func (p *PathValue) String() string { return p.Mold() }

func (p *PathValue) Mold() string {
	parts := make([]string, len(p.Parts))
	for i, part := range p.Parts {
		parts[i] = part.Mold()
	}
	body := strings.Join(parts, "/")
	switch p.typ {
	case TypeGetPath:
		return ":" + body
	case TypeSetPath:
		return body + ":"
	}
	return body
}

func (p *PathValue) Form() string { return p.Mold() }

func (p *PathValue) Equals(other core.Value) bool {
	op, ok := other.(*PathValue)
	if !ok || len(p.Parts) != len(op.Parts) {
		return false
	}
	for i := range p.Parts {
		if !p.Parts[i].Equals(op.Parts[i]) {
			return false
		}
	}
	return true
}
