// Package errors provides structured error types for the Omni language.
//
// OmniError is the unified error type for lexer diagnostics, parser errors,
// and runtime errors, carrying enough position metadata for the CLI driver
// to print source context.
package errors

import (
	"fmt"
	"strings"
)

// ErrorClass categorizes errors for filtering and display.
type ErrorClass string

const (
	ClassLex     ErrorClass = "lex"     // Unexpected characters
	ClassParse   ErrorClass = "parse"   // Parser/syntax errors
	ClassRuntime ErrorClass = "runtime" // Uncaught OmniException
	ClassImport  ErrorClass = "import"  // Module loading
	ClassIO      ErrorClass = "io"      // File operations
)

// OmniError represents any error from lexing, parsing, or evaluation.
type OmniError struct {
	Class   ErrorClass `json:"class"`
	Message string     `json:"message"`
	Line    int        `json:"line"`           // 1-based line (0 if unknown)
	Column  int        `json:"column"`         // 1-based column (0 if unknown)
	File    string     `json:"file,omitempty"` // File path (if known)
}

// New creates an OmniError with a class, message, and line.
func New(class ErrorClass, msg string, line int) *OmniError {
	return &OmniError{Class: class, Message: msg, Line: line}
}

// Newf creates an OmniError with a formatted message.
func Newf(class ErrorClass, line int, format string, args ...any) *OmniError {
	return &OmniError{Class: class, Message: fmt.Sprintf(format, args...), Line: line}
}

// Error implements the error interface.
func (e *OmniError) Error() string {
	return e.String()
}

// String returns the user-visible single-line form of the error.
func (e *OmniError) String() string {
	switch e.Class {
	case ClassParse:
		if e.Line > 0 {
			return fmt.Sprintf("Parse Error: %s at line %d", e.Message, e.Line)
		}
		return fmt.Sprintf("Parse Error: %s", e.Message)
	case ClassRuntime, ClassImport:
		if e.Line > 0 {
			return fmt.Sprintf("Runtime Error at line %d: %s", e.Line, e.Message)
		}
		return fmt.Sprintf("Runtime Error: %s", e.Message)
	case ClassLex:
		return fmt.Sprintf("Unexpected character: %s at line %d", e.Message, e.Line)
	default:
		return fmt.Sprintf("Internal Error: %s", e.Message)
	}
}

// PrettyString returns a multi-line formatted string for display.
func (e *OmniError) PrettyString() string {
	var sb strings.Builder

	switch e.Class {
	case ClassParse:
		sb.WriteString("Parse error")
	case ClassLex:
		sb.WriteString("Lexical error")
	default:
		sb.WriteString("Runtime error")
	}

	if e.File != "" {
		sb.WriteString(" in ")
		sb.WriteString(e.File)
	}
	if e.Line > 0 {
		sb.WriteString(fmt.Sprintf(": line %d", e.Line))
		if e.Column > 0 {
			sb.WriteString(fmt.Sprintf(", column %d", e.Column))
		}
	}
	sb.WriteString("\n  ")
	sb.WriteString(e.Message)

	return sb.String()
}

// WithFile returns a copy of the error with the file path set.
func (e *OmniError) WithFile(file string) *OmniError {
	copy := *e
	copy.File = file
	return &copy
}

// IsParseError returns true if this is a parser error.
func (e *OmniError) IsParseError() bool {
	return e.Class == ClassParse
}
