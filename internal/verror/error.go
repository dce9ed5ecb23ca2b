package verror

import (
	"fmt"
	"strings"
)

// Error is a structured interpreter error.
//
//   - Category: error class (0-900)
//   - Code: numeric code (base code is the category)
//   - ID: symbolic identifier for programmatic handling
//   - Args: up to 3 arguments interpolated into the message (%1 %2 %3)
//   - Near: expression window around the error location
//   - Where: call stack, most recent first
type Error struct {
	Category ErrorCategory
	Code     int
	ID       string
	Args     [3]string
	Near     string
	Where    []string
	Message  string
}

// NewError creates an error with the given category, id, and arguments.
// The message is generated from the id's template.
func NewError(category ErrorCategory, id string, args [3]string) *Error {
	return &Error{
		Category: category,
		Code:     int(category),
		ID:       id,
		Args:     args,
		Where:    []string{},
		Message:  formatMessage(id, args),
	}
}

// Error implements the Go error interface.
func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s error (%d): %s", e.Category, e.Code, e.Message))
	if e.Near != "" {
		sb.WriteString(fmt.Sprintf("\nNear: %s", e.Near))
	}
	if len(e.Where) > 0 {
		sb.WriteString(fmt.Sprintf("\nWhere: %s", strings.Join(e.Where, " <- ")))
	}
	return sb.String()
}

// SetNear adds near context (expression window around the error).
func (e *Error) SetNear(near string) *Error {
	e.Near = near
	return e
}

// SetWhere adds call stack context.
func (e *Error) SetWhere(where []string) *Error {
	e.Where = where
	return e
}

// Is matches errors by id, so callers can errors.Is against a sentinel.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && e.ID == t.ID
}

// NewSyntaxError creates a syntax error (loading).
func NewSyntaxError(id string, args [3]string) *Error {
	return NewError(ErrSyntax, id, args)
}

// NewScriptError creates a script error (runtime).
func NewScriptError(id string, args [3]string) *Error {
	return NewError(ErrScript, id, args)
}

// NewMathError creates a math error (arithmetic).
func NewMathError(id string, args [3]string) *Error {
	return NewError(ErrMath, id, args)
}

// NewAccessError creates an access error (read-only data, I/O).
func NewAccessError(id string, args [3]string) *Error {
	return NewError(ErrAccess, id, args)
}

// NewInternalError creates an internal error (interpreter bug).
func NewInternalError(id string, args [3]string) *Error {
	return NewError(ErrInternal, id, args)
}

// NewHaltError creates the halt signal error.
func NewHaltError() *Error {
	return NewError(ErrThrow, ErrIDHalted, [3]string{})
}

// formatMessage generates the human-readable message from the id's
// template with %1, %2, %3 substitution.
func formatMessage(id string, args [3]string) string {
	template, ok := messageTemplates[id]
	if !ok {
		template = "Error: %1 %2 %3"
	}
	msg := template
	msg = strings.ReplaceAll(msg, "%1", args[0])
	msg = strings.ReplaceAll(msg, "%2", args[1])
	msg = strings.ReplaceAll(msg, "%3", args[2])
	return strings.TrimSpace(msg)
}

var messageTemplates = map[string]string{
	// Syntax errors
	ErrIDUnexpectedEOF:      "Unexpected end of input",
	ErrIDUnclosedBlock:      "Unclosed block '[' - missing ']'",
	ErrIDUnclosedGroup:      "Unclosed group '(' - missing ')'",
	ErrIDUnterminatedString: "Unterminated string: %1",
	ErrIDInvalidLiteral:     "Invalid literal: %1",
	ErrIDInvalidCharacter:   "Invalid character: %1",
	ErrIDUnexpectedClosing:  "Unexpected closing delimiter: %1",

	// Script errors
	ErrIDNoValue:          "No value for word: %1",
	ErrIDTypeMismatch:     "Type mismatch for '%1': expected %2, got %3",
	ErrIDInvalidOperation: "Invalid operation: %1",
	ErrIDArgCount:         "Wrong argument count for '%1': expected %2, got %3",
	ErrIDOutOfBounds:      "Index %1 out of bounds (length: %2)",
	ErrIDNotComparable:    "Cannot compare %1 with %2",

	// Parse dialect errors
	ErrIDParseInvalidRule:  "PARSE - invalid rule: %1 %2",
	ErrIDParseUnboundRule:  "PARSE - rule word has no binding: %1",
	ErrIDParseNullRule:     "PARSE - rule word resolves to none: %1",
	ErrIDParseAlteredRule:  "PARSE - rule block was modified during parse: %1",
	ErrIDParseOutOfRange:   "PARSE - position %1 is outside the input %2",
	ErrIDParseIntoType:     "PARSE - into needs a series element, got %1",
	ErrIDParseInvalidInput: "PARSE - input must be text!, binary! or block!, got %1",

	// Math errors
	ErrIDDivByZero: "Division by zero",
	ErrIDOverflow:  "Integer overflow in operation: %1",

	// Access errors
	ErrIDReadOnly:           "Series is read-only: %1",
	ErrIDParseReadOnlyInput: "PARSE - cannot modify read-only input: %1",

	// Control flow
	ErrIDHalted: "Halted by user",

	// Internal errors
	ErrIDAssertionFailed: "Internal assertion failed: %1",
}

// ToExitCode converts an error category to a process exit code.
func ToExitCode(category ErrorCategory) int {
	switch category {
	case ErrSyntax:
		return 2
	case ErrAccess:
		return 3
	case ErrInternal:
		return 70
	default:
		return 1
	}
}
