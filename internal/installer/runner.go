// Package installer runs the package manager inside a freshly generated
// project.
package installer

import (
	"context"
	"errors"
	"io"
	"os/exec"
)

// RunOpts holds optional parameters for command execution.
type RunOpts struct {
	Dir    string    // working directory
	Stdin  io.Reader // nil means no input
	Stdout io.Writer
	Stderr io.Writer
}

// Result holds the outcome of a command that ran to completion.
type Result struct {
	ExitCode int
}

// Runner runs external commands. Implementations must be safe for stubbing
// in tests.
type Runner interface {
	// Run executes name with args and blocks until it exits.
	// A process that exits non-zero yields a Result with that code and a nil
	// error. The error is reserved for launch failures (binary not found,
	// context canceled, io failure).
	Run(ctx context.Context, name string, args []string, opts RunOpts) (Result, error)
}

// ExecRunner is the production Runner using os/exec.
type ExecRunner struct{}

// NewExecRunner creates a new ExecRunner.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run executes the command, wiring stdio from opts.
func (r *ExecRunner) Run(ctx context.Context, name string, args []string, opts RunOpts) (Result, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = opts.Dir
	cmd.Stdin = opts.Stdin
	cmd.Stdout = opts.Stdout
	cmd.Stderr = opts.Stderr

	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && ctx.Err() == nil {
			return Result{ExitCode: exitErr.ExitCode()}, nil
		}
		return Result{}, err
	}
	return Result{}, nil
}
