// Package cli parses command-line arguments into an app configuration and
// an invocation to run.
package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/vinetrade/pricecore/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Invocation is a parsed command line: the app configuration plus the
// command to execute and its arguments.
type Invocation struct {
	Config  *app.Config
	Command string
	// Caller is the id lifecycle operations run as.
	Caller string
	// Partner is the trade partner a quote is priced under; may be empty.
	Partner string
	// Inputs are the key=value variable assignments for the quote command.
	Inputs map[string]string
}

// Parse processes command-line arguments. It returns the invocation, a
// boolean indicating the program should exit cleanly (help was printed),
// or an ExitError for malformed input.
func Parse(args []string, output io.Writer) (*Invocation, bool, error) {
	flagSet := flag.NewFlagSet("pricecore", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
pricecore - wine-case pricing calculator core.

Usage:
  pricecore [options] validate
  pricecore [options] quote var=value [var=value ...]

Commands:
  validate
    Load and validate the catalog manifests, then exit.
  quote
    Price a one-off order from variable assignments, e.g.
    quote caseQuantity=12 bottleFormat=750ml

Options:
`)
		flagSet.PrintDefaults()
	}

	catalogFlag := flagSet.String("catalogs", "catalogs", "Path to a catalog manifest file or directory.")
	versionFlag := flagSet.String("catalog-version", "", "Catalog version to activate. Defaults to the highest version found.")
	callerFlag := flagSet.String("caller", "cli", "Caller id lifecycle operations run as.")
	partnerFlag := flagSet.String("partner", "", "Partner id a quote is priced under.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	if flagSet.NArg() == 0 {
		flagSet.Usage()
		return nil, true, nil
	}
	command := flagSet.Arg(0)
	if command != "validate" && command != "quote" {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unknown command %q", command)}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}
	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	inputs := make(map[string]string)
	for _, arg := range flagSet.Args()[1:] {
		key, val, found := strings.Cut(arg, "=")
		if !found || key == "" {
			return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("malformed assignment %q: want var=value", arg)}
		}
		inputs[key] = val
	}
	if command == "quote" && len(inputs) == 0 {
		return nil, false, &ExitError{Code: 2, Message: "quote requires at least one var=value assignment"}
	}

	cfg, err := app.NewConfig(app.Config{
		CatalogPath:   *catalogFlag,
		ActiveVersion: *versionFlag,
		LogFormat:     logFormat,
		LogLevel:      logLevel,
		// The CLI runs single-user; its caller is an admin so quote and
		// validate can exercise every operation.
		AdminIDs: []string{*callerFlag},
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return &Invocation{
		Config:  cfg,
		Command: command,
		Caller:  *callerFlag,
		Partner: *partnerFlag,
		Inputs:  inputs,
	}, false, nil
}
