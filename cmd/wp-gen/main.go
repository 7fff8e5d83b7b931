// Package main is the entry point for wp-gen.
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"

	"github.com/wpgen/cli/internal/cmd"
	oerrors "github.com/wpgen/cli/internal/errors"
	"github.com/wpgen/cli/internal/version"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	// fang prints the error; only the exit code is left to decide here.
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(version.Get().Short()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(oerrors.ExitCodeFromError(err))
	}
}
