// Package main is the entry point for express-mod-cli.
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"

	"github.com/expressmod/cli/internal/cmd"
	oerrors "github.com/expressmod/cli/internal/errors"
	"github.com/expressmod/cli/internal/version"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	// fang owns --version rendering and error output; ErrorHandler skips
	// errors the command layer already printed.
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(version.Version),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(cmd.ErrorHandler),
	); err != nil {
		os.Exit(oerrors.ExitCodeFromError(err))
	}
}
