package installer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"mvdan.cc/sh/v3/shell"
)

// DefaultCommand is the install command used when none is configured.
const DefaultCommand = "npm install"

// ErrEmptyCommand is returned when the configured command has no words.
var ErrEmptyCommand = errors.New("install command is empty")

// ParseCommand splits a command line into argv using shell word rules.
// Environment references are expanded from the process environment.
func ParseCommand(line string) ([]string, error) {
	argv, err := shell.Fields(line, os.Getenv)
	if err != nil {
		return nil, fmt.Errorf("parsing install command %q: %w", line, err)
	}
	if len(argv) == 0 {
		return nil, ErrEmptyCommand
	}
	return argv, nil
}

// Installer installs the dependencies of a generated project.
type Installer struct {
	runner Runner
	argv   []string
	quiet  bool
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// Option configures an Installer.
type Option func(*Installer)

// WithRunner replaces the command runner.
func WithRunner(r Runner) Option {
	return func(i *Installer) {
		i.runner = r
	}
}

// WithQuiet captures the command output instead of streaming it to the
// terminal. Captured output is attached to the error on failure.
func WithQuiet(quiet bool) Option {
	return func(i *Installer) {
		i.quiet = quiet
	}
}

// WithStdio overrides the streams inherited by the command.
func WithStdio(stdin io.Reader, stdout, stderr io.Writer) Option {
	return func(i *Installer) {
		i.stdin = stdin
		i.stdout = stdout
		i.stderr = stderr
	}
}

// New creates an Installer for the given command line. A blank line means
// DefaultCommand.
func New(command string, opts ...Option) (*Installer, error) {
	if strings.TrimSpace(command) == "" {
		command = DefaultCommand
	}
	argv, err := ParseCommand(command)
	if err != nil {
		return nil, err
	}

	i := &Installer{
		runner: NewExecRunner(),
		argv:   argv,
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i, nil
}

// Command returns the command line that will run.
func (i *Installer) Command() string {
	return strings.Join(i.argv, " ")
}

// Quiet reports whether output is captured.
func (i *Installer) Quiet() bool {
	return i.quiet
}

// Install runs the command in dir and blocks until it exits. There is no
// timeout beyond ctx.
func (i *Installer) Install(ctx context.Context, dir string) error {
	opts := RunOpts{Dir: dir}

	var captured bytes.Buffer
	if i.quiet {
		opts.Stdout = &captured
		opts.Stderr = &captured
	} else {
		opts.Stdin = i.stdin
		opts.Stdout = i.stdout
		opts.Stderr = i.stderr
	}

	res, err := i.runner.Run(ctx, i.argv[0], i.argv[1:], opts)
	if err != nil {
		return fmt.Errorf("running %s: %w", i.Command(), err)
	}
	if res.ExitCode != 0 {
		return &ExitError{
			Command: i.Command(),
			Code:    res.ExitCode,
			Output:  strings.TrimSpace(captured.String()),
		}
	}
	return nil
}

// ExitError reports an install command that exited non-zero.
type ExitError struct {
	Command string
	Code    int
	Output  string // only set in quiet mode
}

func (e *ExitError) Error() string {
	msg := fmt.Sprintf("%s exited with status %d", e.Command, e.Code)
	if e.Output != "" {
		msg += "\n" + e.Output
	}
	return msg
}
