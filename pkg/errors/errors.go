package errors

import (
	stdErrors "errors"
	"fmt"
)

// ErrMissingProvider is matched by every ProviderError.
var ErrMissingProvider = stdErrors.New("missing provider")

// ErrRouteNotFound is matched by every RouteError.
var ErrRouteNotFound = stdErrors.New("route not found")

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration or data validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ProviderError reports a consumer reading scoped state outside its provider.
type ProviderError struct {
	Provider string
	Consumer string
}

// NewProviderError constructs a ProviderError.
func NewProviderError(provider, consumer string) error {
	return &ProviderError{Provider: provider, Consumer: consumer}
}

func (e *ProviderError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s must be used within a %s", ErrMissingProvider, e.Consumer, e.Provider)
}

// Unwrap allows errors.Is(err, ErrMissingProvider).
func (e *ProviderError) Unwrap() error {
	if e == nil {
		return nil
	}
	return ErrMissingProvider
}

// RouteError indicates a navigation path that matches no screen.
type RouteError struct {
	Path string
}

// NewRouteError constructs a RouteError for path.
func NewRouteError(path string) error {
	return &RouteError{Path: path}
}

func (e *RouteError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %q", ErrRouteNotFound, e.Path)
}

// Unwrap allows errors.Is(err, ErrRouteNotFound).
func (e *RouteError) Unwrap() error {
	if e == nil {
		return nil
	}
	return ErrRouteNotFound
}
