package sitegen

import (
	"errors"
	"fmt"
)

// ErrMissingSheet indicates a mandatory workbook sheet is absent.
var ErrMissingSheet = errors.New("missing mandatory sheet")

// BuildError represents a fatal error in one stage of a build.
type BuildError struct {
	Stage string // "workbook", "config", "catalog", "covers", "outputs", "report"
	Err   error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("build failed at %s: %v", e.Stage, e.Err)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

// NewBuildError creates a new BuildError.
func NewBuildError(stage string, err error) *BuildError {
	return &BuildError{
		Stage: stage,
		Err:   err,
	}
}
