// =============================================================================
// Stake Converter - Process Step
// =============================================================================
//
// This file runs one conversion for the root command and prints the
// confirmation line.
//
// OUTPUT:
//   Wrote 3 row(s) to /work/output_3.csv with stake 10
//
// Nothing is printed to stdout when no thread file exists.
//
// =============================================================================

package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/ginjaninja78/stake-converter/internal/converter"
)

// runProcess converts the thread CSV in dir and writes the confirmation to
// stdout.
func runProcess(dir string, logger *slog.Logger, stdout io.Writer) error {
	logger.Debug("conversion started", "dir", dir)

	conv := converter.New(dir, logger)
	result, err := conv.Run()
	if err != nil {
		return err
	}

	if result.Outcome == converter.OutcomeNoInput {
		logger.Info(result.Message(), "dir", dir)
		return nil
	}

	logger.Debug("conversion finished",
		"input", result.InputFile,
		"output", result.OutputFile,
		"rows", result.RowsWritten,
		"header_skipped", result.HeaderSkipped,
	)

	_, err = fmt.Fprintln(stdout, result.Message())
	return err
}
