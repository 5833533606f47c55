// =============================================================================
// Stake Converter - Converter Module
// =============================================================================
//
// This module contains the core conversion logic. It runs the whole pipeline
// for one working directory.
//
// CONVERSION PIPELINE:
//   1. Discover the thread CSV to process (nothing found ends the run)
//   2. Resolve the stake from Config.ini
//   3. Parse the input file into an InputTable
//   4. Build one "0,<stake>" record per data row
//   5. Write the output file, truncating any previous one
//
// A failure while writing may leave a partial output file behind.
//
// =============================================================================

package converter

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"

	"github.com/pkg/errors"

	"github.com/ginjaninja78/stake-converter/internal/config"
	"github.com/ginjaninja78/stake-converter/internal/csvparser"
	"github.com/ginjaninja78/stake-converter/internal/types"
	"github.com/ginjaninja78/stake-converter/pkg/utils"
)

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Outcome tells how a successful run ended.
type Outcome int

const (
	// OutcomeNoInput means no thread CSV was found and nothing was written.
	OutcomeNoInput Outcome = iota

	// OutcomeConverted means an output file was written.
	OutcomeConverted
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNoInput:
		return "no-input"
	case OutcomeConverted:
		return "converted"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Result represents the outcome of a conversion run.
type Result struct {
	// Outcome tells whether a file was converted.
	Outcome Outcome

	// InputFile is the path of the processed thread CSV.
	// Empty for OutcomeNoInput.
	InputFile string

	// OutputFile is the path of the written output CSV.
	// Empty for OutcomeNoInput.
	OutputFile string

	// Stake is the stake written into every record.
	Stake types.Stake

	// RowsWritten is the number of records in the output file.
	RowsWritten int

	// HeaderSkipped reports whether a numeric header line was excluded.
	HeaderSkipped bool
}

// Message returns the human-readable confirmation for the run.
func (r Result) Message() string {
	if r.Outcome == OutcomeNoInput {
		return "No thread CSV file found; nothing to convert"
	}
	return fmt.Sprintf("Wrote %d row(s) to %s with stake %d", r.RowsWritten, r.OutputFile, r.Stake)
}

// =============================================================================
// CONVERTER STRUCTURE
// =============================================================================

// Converter converts the thread CSV of one working directory.
type Converter struct {
	// files resolves input and output paths in the working directory.
	files *utils.FileManager

	// logger receives debug output. It never writes the user-facing lines.
	logger *slog.Logger
}

// New creates a Converter for dir. A nil logger discards log output.
func New(dir string, logger *slog.Logger) *Converter {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Converter{
		files:  utils.NewFileManager(dir),
		logger: logger,
	}
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// Run executes the conversion pipeline.
//
// RETURNS:
//   - A Result describing what was done. A run that finds no input is a
//     success with Outcome OutcomeNoInput.
//   - A *Error when discovery, reading or writing fails.
func (c *Converter) Run() (Result, error) {
	inputPath, err := c.files.DiscoverThreadFile()
	if err != nil {
		return Result{}, newError(KindDiscovery, err)
	}
	if inputPath == "" {
		c.logger.Debug("no thread file found", "dir", c.files.Dir, "pattern", utils.ThreadPattern)
		return Result{Outcome: OutcomeNoInput}, nil
	}
	c.logger.Debug("thread file selected", "input", inputPath)

	stake := config.ResolveStake(c.files.Dir, c.logger)

	table, err := csvparser.Parse(inputPath)
	if err != nil {
		return Result{}, newError(KindRead, err)
	}
	c.logger.Debug("input parsed", "rows", table.RowCount(), "header", table.HasHeader)

	output := BuildOutput(table, stake)
	outputPath := c.files.OutputPath(inputPath)

	if err := WriteOutput(outputPath, output); err != nil {
		return Result{}, newError(KindWrite, err)
	}

	return Result{
		Outcome:       OutcomeConverted,
		InputFile:     inputPath,
		OutputFile:    outputPath,
		Stake:         stake,
		RowsWritten:   output.Len(),
		HeaderSkipped: table.HasHeader,
	}, nil
}

// =============================================================================
// OUTPUT FUNCTIONS
// =============================================================================

// BuildOutput maps every data row of table to a (0, stake) record.
func BuildOutput(table *types.InputTable, stake types.Stake) types.OutputTable {
	records := make([]types.Record, 0, table.RowCount())
	for range table.Rows {
		records = append(records, types.Record{Key: 0, Stake: stake})
	}
	return types.OutputTable{Records: records}
}

// WriteOutput creates or truncates path and writes one line per record.
// The file is flushed and closed before WriteOutput returns.
func WriteOutput(path string, output types.OutputTable) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "failed to create output file")
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "failed to close %s", path)
		}
	}()

	writer := bufio.NewWriter(file)
	for _, record := range output.Records {
		if _, err := writer.WriteString(record.String() + "\n"); err != nil {
			return errors.Wrapf(err, "failed to write %s", path)
		}
	}

	if err := writer.Flush(); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}

	return nil
}
