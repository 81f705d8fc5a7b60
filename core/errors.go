package core

import (
	"fmt"

	"github.com/pkg/errors"
)

type simpleError struct {
	message string
}

func (err simpleError) Error() string {
	return err.message
}

// ConfigurationError means the run cannot start: a missing credential or a
// field the tracker deployment does not define.
type ConfigurationError struct {
	simpleError
}

// NewConfigurationError returns the custom defined error of type ConfigurationError.
func NewConfigurationError(msg string) ConfigurationError {
	return ConfigurationError{simpleError{msg}}
}

// NotFoundError means a search that must yield issues came back empty.
type NotFoundError struct {
	what  string
	Query string
}

func (err NotFoundError) Error() string {
	return fmt.Sprintf("%s via query: %s", err.what, err.Query)
}

// NewNotFoundError returns the custom defined error of type NotFoundError.
// what is the human readable lead, e.g. "Feature not found".
func NewNotFoundError(what, query string) NotFoundError {
	return NotFoundError{what: what, Query: query}
}

// IsConfigurationError reports whether err, or anything it wraps, is a ConfigurationError.
func IsConfigurationError(err error) bool {
	var target ConfigurationError
	return errors.As(err, &target)
}

// IsNotFoundError reports whether err, or anything it wraps, is a NotFoundError.
func IsNotFoundError(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}
