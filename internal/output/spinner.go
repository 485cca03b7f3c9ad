package output

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh/spinner"
)

// SpinnerOption configures a spinner.
type SpinnerOption func(*spinnerConfig)

type spinnerConfig struct {
	title string
	tty   func() bool
}

// WithTitle sets the spinner title.
func WithTitle(title string) SpinnerOption {
	return func(c *spinnerConfig) {
		c.title = title
	}
}

// withTTY overrides terminal detection.
func withTTY(fn func() bool) SpinnerOption {
	return func(c *spinnerConfig) {
		c.tty = fn
	}
}

// RunWithSpinner executes action while a spinner animates. Without a
// terminal the action runs directly. Returns the action's error if any.
func RunWithSpinner(ctx context.Context, action func() error, opts ...SpinnerOption) error {
	cfg := &spinnerConfig{
		title: "Working...",
		tty:   IsTTY,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if !cfg.tty() {
		return action()
	}

	return runAlongside(ctx, action, func(ctx context.Context) error {
		return spinner.New().
			Title(cfg.title).
			Context(ctx).
			Run()
	})
}

// runAlongside runs action on its own goroutine while spin animates. spin's
// context is cancelled once action returns. It always waits for action.
func runAlongside(ctx context.Context, action func() error, spin func(context.Context) error) error {
	spinCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		err := action()
		cancel()
		done <- err
	}()

	spinErr := spin(spinCtx)
	actionErr := <-done

	if actionErr != nil {
		return actionErr
	}
	if spinErr != nil && !errors.Is(spinErr, context.Canceled) && !errors.Is(spinErr, context.DeadlineExceeded) {
		return fmt.Errorf("spinner error: %w", spinErr)
	}
	return nil
}
