package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNodeNotFound means the story node does not exist (or never existed).
	ErrNodeNotFound = errors.New("story node not found")
	// ErrRenderInProgress means another render for the same node holds the
	// in-flight claim.
	ErrRenderInProgress = errors.New("render already in progress for node")
)

// ValidationError is a caller mistake: malformed body, or neither audio nor
// text supplied.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// GenerationError wraps a failure of the language model or video generation
// service: unreachable, errored, or returned an unparseable payload.
type GenerationError struct {
	Service string
	Err     error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("%s generation failed: %v", e.Service, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// StoreError names the persistence stage that failed.
type StoreError struct {
	Stage string
	Err   error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store failure at %s: %v", e.Stage, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// UploadError carries the object store's rejection verbatim.
type UploadError struct {
	StatusCode int
	Body       string
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("upload rejected: %d - %s", e.StatusCode, e.Body)
}
