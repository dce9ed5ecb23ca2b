// Package value implements the core value cells for the Ren interpreter.
// All data is represented as tagged values behind the core.Value interface.
package value

import "github.com/marcin-radoszewski/ren/internal/core"

// Value type constants define all supported data kinds.
// These align with REBOL's type system with Ren-specific additions
// (GetGroup, Quoted wrapper).
const (
	TypeNone       core.ValueType = iota // Absent value (null role, distinct from blank)
	TypeBlank                            // Placeholder "_" (no value without being absent)
	TypeLogic                            // Boolean true/false
	TypeInteger                          // 64-bit signed integer
	TypeDecimal                          // High-precision decimal
	TypeChar                             // Unicode scalar
	TypeText                             // Character sequence view
	TypeBinary                           // Byte sequence view
	TypeBlock                            // Cell sequence view (deferred evaluation)
	TypeGroup                            // Cell sequence view (immediate evaluation)
	TypeGetGroup                         // :( ... ) — evaluated, result spliced as a rule
	TypeWord                             // Symbol (evaluates to bound value)
	TypeSetWord                          // Assignment symbol (x:)
	TypeGetWord                          // Fetch symbol (:x)
	TypeLitWord                          // Quoted symbol ('x)
	TypeRefinement                       // Refinement symbol (/x or --x at the CLI)
	TypeIssue                            // Issue symbol (#x)
	TypeTag                              // Delimited symbol (<x>)
	TypePath                             // Path expression (a/b/c)
	TypeGetPath                          // :a/b/c
	TypeSetPath                          // a/b/c:
	TypeDatatype                         // Type literal (integer!, text!, ...)
	TypeBitset                           // Character class
	TypeQuoted                           // Quote-level wrapper around any value
	TypeFunction                         // Native function
)

var typeNames = map[core.ValueType]string{
	TypeNone:       "none",
	TypeBlank:      "blank",
	TypeLogic:      "logic",
	TypeInteger:    "integer",
	TypeDecimal:    "decimal",
	TypeChar:       "char",
	TypeText:       "text",
	TypeBinary:     "binary",
	TypeBlock:      "block",
	TypeGroup:      "group",
	TypeGetGroup:   "get-group",
	TypeWord:       "word",
	TypeSetWord:    "set-word",
	TypeGetWord:    "get-word",
	TypeLitWord:    "lit-word",
	TypeRefinement: "refinement",
	TypeIssue:      "issue",
	TypeTag:        "tag",
	TypePath:       "path",
	TypeGetPath:    "get-path",
	TypeSetPath:    "set-path",
	TypeDatatype:   "datatype",
	TypeBitset:     "bitset",
	TypeQuoted:     "quoted",
	TypeFunction:   "function",
}

// TypeToString returns the type name for diagnostics and datatype matching.
func TypeToString(t core.ValueType) string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "unknown"
}

// DatatypeName returns the spelling a datatype literal uses for a type,
// e.g. "integer!" for TypeInteger.
func DatatypeName(t core.ValueType) string {
	return TypeToString(t) + "!"
}

// KnownDatatype reports whether name (e.g. "integer!") is the
// datatype spelling of a real kind.
func KnownDatatype(name string) bool {
	for _, n := range typeNames {
		if n+"!" == name {
			return true
		}
	}
	return false
}

// IsWordType reports whether t is any word variant.
func IsWordType(t core.ValueType) bool {
	switch t {
	case TypeWord, TypeSetWord, TypeGetWord, TypeLitWord, TypeRefinement, TypeIssue:
		return true
	}
	return false
}

// IsSeriesType reports whether t supports positional series operations.
func IsSeriesType(t core.ValueType) bool {
	switch t {
	case TypeText, TypeBinary, TypeBlock, TypeGroup, TypeGetGroup:
		return true
	}
	return false
}

// IsAnyBlockType reports whether t is a cell sequence.
func IsAnyBlockType(t core.ValueType) bool {
	return t == TypeBlock || t == TypeGroup || t == TypeGetGroup
}
