package officegen

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates an input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrUnknownProblem indicates a workbook problem name with no builder.
var ErrUnknownProblem = errors.New("unknown workbook problem")

// ErrUnknownDeck indicates a deck name with no builder.
var ErrUnknownDeck = errors.New("unknown deck")

// ErrInvalidChunkSize indicates a non-positive pages-per-chunk value.
var ErrInvalidChunkSize = errors.New("pages per chunk must be positive")

// ErrUnsupportedFormat indicates a file extension inspect cannot read.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// GenerationError represents an error while producing or reading one artifact.
type GenerationError struct {
	Artifact  string
	Component string // "cells", "styles", "slides", "shapes", "document", "icon", "chunk"
	Err       error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("error in %q (%s): %v", e.Artifact, e.Component, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// NewGenerationError creates a new GenerationError.
func NewGenerationError(artifact, component string, err error) *GenerationError {
	return &GenerationError{
		Artifact:  artifact,
		Component: component,
		Err:       err,
	}
}
