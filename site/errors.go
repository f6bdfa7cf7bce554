package site

import (
	"github.com/itsatony/go-cuserr"
)

// Error message constants
const (
	// Configuration errors
	ErrMsgNoSourceDir     = "no source directory specified"
	ErrMsgNoOutputDir     = "no output directory specified"
	ErrMsgConfigRead      = "reading config file failed"
	ErrMsgConfigNotNumber = "config value is not a number"
	ErrMsgTemplateRead    = "reading page template failed"
	ErrMsgSourceNotDir    = "source path is not a directory"
	ErrMsgInvalidPattern  = "invalid source pattern"

	// Build errors
	ErrMsgWalkFailed   = "walking source directory failed"
	ErrMsgReadFailed   = "reading source file failed"
	ErrMsgWriteFailed  = "writing output file failed"
	ErrMsgOutputDir    = "creating output directory failed"
	ErrMsgStarterWrite = "creating starter document failed"
)

// Error code constants for categorization
const (
	ErrCodeConfig = "MINIHTML_CONFIG"
	ErrCodeBuild  = "MINIHTML_BUILD"
)

// Metadata keys for cuserr.WithMetadata
const (
	MetaKeyPath    = "path"
	MetaKeyPattern = "pattern"
)

// NewConfigError creates an error for an invalid configuration
func NewConfigError(msg string) error {
	return cuserr.NewValidationError(ErrCodeConfig, msg)
}

// NewPathConfigError creates a configuration error about a path
func NewPathConfigError(cause error, msg string, path string) error {
	var err *cuserr.CustomError
	if cause != nil {
		err = cuserr.WrapStdError(cause, ErrCodeConfig, msg)
	} else {
		err = cuserr.NewValidationError(ErrCodeConfig, msg)
	}
	return err.WithMetadata(MetaKeyPath, path)
}

// NewPatternError creates an error for a malformed source pattern
func NewPatternError(pattern string) error {
	return cuserr.NewValidationError(ErrCodeConfig, ErrMsgInvalidPattern).
		WithMetadata(MetaKeyPattern, pattern)
}

// NewBuildError creates an error for an I/O failure on path while building
func NewBuildError(cause error, msg string, path string) error {
	return cuserr.WrapStdError(cause, ErrCodeBuild, msg).
		WithMetadata(MetaKeyPath, path)
}
