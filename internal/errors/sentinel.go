package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates a usage error: missing or malformed arguments.
	ErrValidation = errors.New("validation error")

	// ErrExists indicates a scaffold target that is already present on disk.
	ErrExists = errors.New("already exists")

	// ErrNotFound indicates a missing project, file, or marker.
	ErrNotFound = errors.New("not found")

	// ErrExternal indicates a failed external process such as the package manager.
	ErrExternal = errors.New("external command failed")
)

var sentinels = []error{ErrValidation, ErrExists, ErrNotFound, ErrExternal}
