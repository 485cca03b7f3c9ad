package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/fang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/expressmod/cli/internal/errors"
	"github.com/expressmod/cli/internal/output"
	"github.com/expressmod/cli/internal/testutil"
)

type result struct {
	stdout string // cobra OutOrStdout plus output.Print*
	stderr string
	err    error
}

// isolate points HOME and the working directory at fresh temp dirs so no
// user config or project leaks into a test. It returns the working directory.
func isolate(t *testing.T) string {
	t.Helper()

	t.Setenv("HOME", t.TempDir())
	t.Setenv("EXPRESSMOD_CONFIG", "")
	t.Setenv("EXPRESSMOD_INSTALL_COMMAND", "")

	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

// execute runs a fresh root command with args.
func execute(t *testing.T, args ...string) result {
	t.Helper()

	var stdout, stderr bytes.Buffer
	output.SetOutput(&stdout)
	t.Cleanup(func() { output.SetOutput(os.Stdout) })

	root := NewRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(append([]string{"--timestamps=false"}, args...))

	err := root.Execute()
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func requireExitCode(t *testing.T, err error, code int) *oerrors.ExitError {
	t.Helper()
	require.Error(t, err)
	var exitErr *oerrors.ExitError
	require.True(t, errors.As(err, &exitErr), "expected ExitError, got %T", err)
	assert.Equal(t, code, exitErr.Code)
	return exitErr
}

func TestRoot_NoCommand(t *testing.T) {
	isolate(t)

	r := execute(t)

	requireExitCode(t, r.err, oerrors.ExitGeneralError)
	assert.True(t, errors.Is(r.err, oerrors.ErrValidation))
	assert.Contains(t, r.err.Error(), noCommandMessage)
}

func TestRoot_UnknownCommand(t *testing.T) {
	isolate(t)

	r := execute(t, "foo")

	exitErr := requireExitCode(t, r.err, oerrors.ExitGeneralError)
	assert.True(t, exitErr.Printed)
	assert.Contains(t, r.stderr, `Unknown command: foo. Use "create" or "add".`)
	assert.Contains(t, r.stderr, "Usage:")
	assert.Less(t, strings.Index(r.stderr, "Unknown command"), strings.Index(r.stderr, "Usage:"))
}

func TestRoot_Help(t *testing.T) {
	isolate(t)

	r := execute(t, "--help")

	require.NoError(t, r.err)
	assert.Contains(t, r.stdout, "express-mod-cli create my-app")
	assert.Contains(t, r.stdout, "create")
	assert.Contains(t, r.stdout, "add")
}

func TestRoot_Version(t *testing.T) {
	for _, flag := range []string{"--version", "-v"} {
		t.Run(flag, func(t *testing.T) {
			isolate(t)

			r := execute(t, flag)

			require.NoError(t, r.err)
			assert.Contains(t, r.stdout, "version")
		})
	}
}

func TestRoot_HelpShortCircuitsCommands(t *testing.T) {
	dir := isolate(t)

	r := execute(t, "create", "my-app", "--help")

	require.NoError(t, r.err)
	assert.NoDirExists(t, filepath.Join(dir, "my-app"))
}

func TestRoot_InvalidConfigFallsBackToDefaults(t *testing.T) {
	dir := isolate(t)
	cfg := testutil.WriteFile(t, dir, "bad.yaml", "install: [not, a, map\n")

	r := execute(t, "--config", cfg, "create", "my-app", "--skip-install")

	require.NoError(t, r.err)
	assert.DirExists(t, filepath.Join(dir, "my-app"))
}

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "plain error",
			err:  errors.New("boom\n"),
			want: "boom\n",
		},
		{
			name: "already printed",
			err:  &oerrors.ExitError{Code: 1, Err: errors.New("boom"), Printed: true},
			want: "",
		},
		{
			name: "detail error",
			err:  oerrors.NewExitError(oerrors.NewUsageError(noModuleNameMessage, ""), 1),
			want: "Error: invalid usage\n\n  " + noModuleNameMessage + "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			ErrorHandler(&buf, fang.Styles{}, tt.err)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}
