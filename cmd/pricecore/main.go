package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vinetrade/pricecore/internal/app"
	"github.com/vinetrade/pricecore/internal/cli"
)

// main is the entrypoint for the pricecore command.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling.
func run(outW io.Writer, args []string) error {
	inv, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	application, err := app.NewApp(outW, inv.Config)
	if err != nil {
		return err
	}
	ctx := application.Context()

	switch inv.Command {
	case "validate":
		return application.Validate(ctx)
	case "quote":
		return application.Quote(ctx, inv.Caller, inv.Partner, inv.Inputs)
	default:
		return &cli.ExitError{Code: 2, Message: fmt.Sprintf("unknown command %q", inv.Command)}
	}
}
