package output

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noTTY() bool { return false }

func TestRunWithSpinner_NoTTYRunsDirectly(t *testing.T) {
	called := false
	err := RunWithSpinner(context.Background(), func() error {
		called = true
		return nil
	}, WithTitle("Installing dependencies..."), withTTY(noTTY))

	assert.NoError(t, err)
	assert.True(t, called)
}

func TestRunWithSpinner_PropagatesError(t *testing.T) {
	boom := errors.New("npm install failed")
	err := RunWithSpinner(context.Background(), func() error {
		return boom
	}, withTTY(noTTY))

	assert.ErrorIs(t, err, boom)
}

// spinUntilDone mimics the spinner: it blocks until its context ends.
func spinUntilDone(ctx context.Context) error {
	<-ctx.Done()
	return ctx.Err()
}

func TestRunAlongside_ReturnsActionResult(t *testing.T) {
	boom := errors.New("npm install exited with status 1")

	err := runAlongside(context.Background(), func() error { return boom }, spinUntilDone)
	assert.ErrorIs(t, err, boom)

	err = runAlongside(context.Background(), func() error { return nil }, spinUntilDone)
	assert.NoError(t, err)
}

func TestRunAlongside_WaitsForActionAfterCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	started := make(chan struct{})
	release := make(chan struct{})
	finished := false

	go func() {
		<-started
		cancel()
		close(release)
	}()

	err := runAlongside(ctx, func() error {
		close(started)
		<-release
		finished = true
		return ctx.Err()
	}, spinUntilDone)

	require.ErrorIs(t, err, context.Canceled)
	assert.True(t, finished, "runAlongside returned before the action finished")
}

func TestRunAlongside_SpinnerFailure(t *testing.T) {
	broken := errors.New("open /dev/tty: no such device")
	ran := false

	err := runAlongside(context.Background(), func() error {
		ran = true
		return nil
	}, func(context.Context) error { return broken })

	assert.True(t, ran)
	assert.ErrorIs(t, err, broken)
}
