// Package apperr is the error taxonomy shared by the pipeline and the HTTP layer.
package apperr

import (
	"errors"
	"fmt"
)

var (
	ErrValidation  = errors.New("validation failed")
	ErrNotFound    = errors.New("not found")
	ErrOutOfRegion = errors.New("outside allowed jurisdiction")
	ErrConnector   = errors.New("connector failed")
)

// ValidationError client-caused request problem
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// Validation builds a ValidationError
func Validation(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NotFoundError lookup by id failed
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// NotFound builds a NotFoundError
func NotFound(kind, id string) error {
	return &NotFoundError{Kind: kind, ID: id}
}

// JurisdictionError a published write carried an out-of-region record
type JurisdictionError struct {
	Name string
	Lat  float64
	Lng  float64
}

func (e *JurisdictionError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("US-only: store (lat=%v, lng=%v) is outside continental US bounds", e.Lat, e.Lng)
	}
	return fmt.Sprintf("US-only: store %q (lat=%v, lng=%v) is outside continental US bounds", e.Name, e.Lat, e.Lng)
}

func (e *JurisdictionError) Unwrap() error { return ErrOutOfRegion }

// ConnectorError a source connector could not deliver posts
type ConnectorError struct {
	Platform string
	Err      error
}

func (e *ConnectorError) Error() string {
	return fmt.Sprintf("%s connector: %v", e.Platform, e.Err)
}

// Unwrap exposes both the sentinel and the cause (e.g. context.DeadlineExceeded)
func (e *ConnectorError) Unwrap() []error { return []error{ErrConnector, e.Err} }

// Connector wraps err as a ConnectorError for platform
func Connector(platform string, err error) error {
	return &ConnectorError{Platform: platform, Err: err}
}
