package installer

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRunner struct {
	calls  []stubCall
	result Result
	err    error
	output string
}

type stubCall struct {
	name string
	args []string
	opts RunOpts
}

func (s *stubRunner) Run(_ context.Context, name string, args []string, opts RunOpts) (Result, error) {
	s.calls = append(s.calls, stubCall{name: name, args: args, opts: opts})
	if s.output != "" && opts.Stdout != nil {
		_, _ = io.WriteString(opts.Stdout, s.output)
	}
	return s.result, s.err
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    []string
		wantErr bool
	}{
		{"default", "npm install", []string{"npm", "install"}, false},
		{"flags", "pnpm install --frozen-lockfile", []string{"pnpm", "install", "--frozen-lockfile"}, false},
		{"quoted", `npm install --registry "https://r.example.com/a b"`, []string{"npm", "install", "--registry", "https://r.example.com/a b"}, false},
		{"empty", "   ", nil, true},
		{"unterminated quote", `npm "install`, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCommand(tt.line)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCommand_ExpandsEnv(t *testing.T) {
	t.Setenv("EXPRESSMOD_TEST_PM", "yarn")

	got, err := ParseCommand("$EXPRESSMOD_TEST_PM install")
	require.NoError(t, err)
	assert.Equal(t, []string{"yarn", "install"}, got)
}

func TestNew_EmptyUsesDefault(t *testing.T) {
	inst, err := New("")
	require.NoError(t, err)
	assert.Equal(t, DefaultCommand, inst.Command())
	assert.False(t, inst.Quiet())
}

func TestInstall_InheritsStdio(t *testing.T) {
	runner := &stubRunner{}
	var out, errOut bytes.Buffer
	inst, err := New("npm install", WithRunner(runner), WithStdio(nil, &out, &errOut))
	require.NoError(t, err)

	require.NoError(t, inst.Install(context.Background(), "/tmp/my-app"))

	require.Len(t, runner.calls, 1)
	call := runner.calls[0]
	assert.Equal(t, "npm", call.name)
	assert.Equal(t, []string{"install"}, call.args)
	assert.Equal(t, "/tmp/my-app", call.opts.Dir)
	assert.Same(t, &out, call.opts.Stdout)
	assert.Same(t, &errOut, call.opts.Stderr)
}

func TestInstall_NonZeroExit(t *testing.T) {
	runner := &stubRunner{result: Result{ExitCode: 1}}
	inst, err := New("npm install", WithRunner(runner))
	require.NoError(t, err)

	err = inst.Install(context.Background(), t.TempDir())

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.Code)
	assert.Equal(t, "npm install", exitErr.Command)
}

func TestInstall_QuietCapturesOutput(t *testing.T) {
	runner := &stubRunner{result: Result{ExitCode: 2}, output: "ERR! 404 Not Found\n"}
	var out bytes.Buffer
	inst, err := New("npm install", WithRunner(runner), WithQuiet(true), WithStdio(nil, &out, &out))
	require.NoError(t, err)

	err = inst.Install(context.Background(), t.TempDir())

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, "ERR! 404 Not Found", exitErr.Output)
	assert.Contains(t, err.Error(), "exited with status 2")
	assert.Empty(t, out.String(), "quiet mode must not write to the terminal")
	assert.Nil(t, runner.calls[0].opts.Stdin)
}

func TestInstall_LaunchFailure(t *testing.T) {
	boom := errors.New("executable file not found in $PATH")
	runner := &stubRunner{err: boom}
	inst, err := New("npm install", WithRunner(runner))
	require.NoError(t, err)

	err = inst.Install(context.Background(), t.TempDir())
	assert.ErrorIs(t, err, boom)
}

func TestExecRunner_MissingBinary(t *testing.T) {
	_, err := NewExecRunner().Run(context.Background(), "express-mod-no-such-binary", nil, RunOpts{Dir: t.TempDir()})
	assert.Error(t, err)
}
