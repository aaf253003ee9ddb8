package ctrlstyle

import (
	"fmt"
	"strings"
)

// CompletenessError reports token table entries that resolution needs but
// the table does not provide.
type CompletenessError struct {
	Missing  []Key
	Mistyped []Key
}

func (e *CompletenessError) Error() string {
	if e == nil {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "token table incomplete: %d missing, %d mistyped", len(e.Missing), len(e.Mistyped))
	const limit = 5
	for i, k := range e.Missing {
		if i == limit {
			fmt.Fprintf(&b, "; ... %d more", len(e.Missing)-limit)
			break
		}
		fmt.Fprintf(&b, "; missing %s", k)
	}
	for i, k := range e.Mistyped {
		if i == limit {
			fmt.Fprintf(&b, "; ... %d more", len(e.Mistyped)-limit)
			break
		}
		fmt.Fprintf(&b, "; mistyped %s", k)
	}
	return b.String()
}

// ParseError represents a token document that could not be decoded.
type ParseError struct {
	Source  string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(source string, line int, message string, err error) error {
	if message == "" && err != nil {
		message = err.Error()
	}
	return &ParseError{Source: source, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Source, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Source, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ConfigError captures invalid composer configuration.
type ConfigError struct {
	Field   string
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("config error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("config error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ConfigError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
