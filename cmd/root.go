// =============================================================================
// Stake Converter - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The tool has no
// subcommands and no arguments: running the binary converts the thread CSV
// found in the current working directory.
//
// EXIT CODES:
//   0 - success, including "no thread CSV found"
//   2 - any failure, reported as one tagged line on stderr
//
// =============================================================================

package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// =============================================================================
// CONSTANTS
// =============================================================================

const (
	exitSuccess = 0
	exitFailure = 2

	// diagnosticTag prefixes the error line written to stderr.
	diagnosticTag = "[stake-converter]"
)

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// processStep runs one conversion for the root command.
var processStep = runProcess

// newRootCmd builds the root command for the working directory dir.
func newRootCmd(dir string, logger *slog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stake-converter",
		Short: "Rewrite a thread CSV into an output CSV of fixed stake records",
		Long: `stake-converter looks for thread_2.csv, then thread_1.csv, then any
thread_*.csv in the current directory and writes the matching output_*.csv.
Every data row of the input becomes the line "0,<stake>", where the stake is
read from DefaultStakeAmount in Config.ini (default 10).

A first line holding only a number is treated as a row-count header and is
not converted. When no thread file exists the command does nothing.

` + versionInfo(),

		Args: cobra.NoArgs,

		// Errors are reported once by execute with the diagnostic tag.
		SilenceErrors: true,
		SilenceUsage:  true,

		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},

		RunE: func(cmd *cobra.Command, args []string) error {
			return processStep(dir, logger, cmd.OutOrStdout())
		},
	}

	return cmd
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute runs the command in the current working directory and exits the
// process with the resulting exit code. This is called by main.main().
func Execute() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run resolves the working directory and executes the command in it.
func run(args []string, stdout, stderr io.Writer) int {
	dir, err := os.Getwd()
	if err != nil {
		reportError(stderr, errors.Wrap(err, "failed to resolve working directory"), "")
		return exitFailure
	}
	return execute(dir, args, stdout, stderr)
}

// execute runs the root command for dir and maps the outcome to an exit code.
// Every run gets a run id, attached to log records and to the diagnostic
// line. A panic anywhere below is reported like any other error.
func execute(dir string, args []string, stdout, stderr io.Writer) (code int) {
	runID := uuid.NewString()

	defer func() {
		if r := recover(); r != nil {
			reportError(stderr, errors.Errorf("unexpected failure: %v", r), runID)
			code = exitFailure
		}
	}()

	logger := newLogger(stderr, os.Getenv(logLevelEnv)).With("run_id", runID)

	cmd := newRootCmd(dir, logger)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		reportError(stderr, err, runID)
		return exitFailure
	}

	return exitSuccess
}

// reportError writes the single diagnostic line for a failed run.
func reportError(w io.Writer, err error, runID string) {
	if runID == "" {
		fmt.Fprintf(w, "%s Error: %v\n", diagnosticTag, err)
		return
	}
	fmt.Fprintf(w, "%s Error: %v (run_id=%s)\n", diagnosticTag, err, runID)
}
