// Unified error handling for the extrusion planner
//
// Copyright (C) 2026  mrowdy
//
// This file may be distributed under the terms of the GNU GPLv3 license.

package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode represents the category of error
type ErrorCode string

const (
	// Core planning errors
	ErrInvalidSegment       ErrorCode = "INVALID_SEGMENT"
	ErrInvalidConfiguration ErrorCode = "INVALID_CONFIGURATION"

	// Collaborator errors
	ErrGCodeParse     ErrorCode = "GCODE_PARSE"
	ErrProfileCatalog ErrorCode = "PROFILE_CATALOG"
)

// PlanError is the unified error type for the planner
type PlanError struct {
	// Code is the error category
	Code ErrorCode

	// Message is a human-readable error description
	Message string

	// Err wraps the underlying error
	Err error

	// Context provides additional context
	Context map[string]interface{}
}

// Error implements the error interface
func (e *PlanError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *PlanError) Unwrap() error {
	return e.Err
}

// SetContext adds additional context
func (e *PlanError) SetContext(key string, value interface{}) *PlanError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// New creates a new PlanError
func New(code ErrorCode, message string) *PlanError {
	return &PlanError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, code ErrorCode, message string) *PlanError {
	return &PlanError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// InvalidSegmentError creates an error for a physically meaningless segment
func InvalidSegmentError(reason string) *PlanError {
	return New(ErrInvalidSegment, reason)
}

// InvalidConfigurationError creates an error for out-of-range hotend or
// material parameters
func InvalidConfigurationError(field string, reason string) *PlanError {
	return New(ErrInvalidConfiguration, fmt.Sprintf("%s: %s", field, reason)).
		SetContext("field", field)
}

// GCodeParseError creates an error for G-code parsing failure
func GCodeParseError(line int, text string, reason string) *PlanError {
	return New(ErrGCodeParse, fmt.Sprintf("line %d %q: %s", line, text, reason)).
		SetContext("line", line)
}

// ProfileCatalogError creates an error for a malformed profile catalog
func ProfileCatalogError(name string, reason string) *PlanError {
	return New(ErrProfileCatalog, fmt.Sprintf("profile '%s': %s", name, reason)).
		SetContext("profile", name)
}

// Is checks if error matches the given error code anywhere in its chain
func Is(err error, code ErrorCode) bool {
	var pe *PlanError
	if stderrors.As(err, &pe) {
		return pe.Code == code
	}
	return false
}

// IsInvalidSegment checks if error is a segment validation error
func IsInvalidSegment(err error) bool {
	return Is(err, ErrInvalidSegment)
}

// IsInvalidConfiguration checks if error is a configuration validation error
func IsInvalidConfiguration(err error) bool {
	return Is(err, ErrInvalidConfiguration)
}
