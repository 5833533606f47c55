// =============================================================================
// Stake Converter - CSV Parser Module
// =============================================================================
//
// This module reads a thread CSV file into an InputTable. The converter only
// needs the number of data rows, so rows are kept as raw lines and are not
// split into fields.
//
// PARSING RULES:
//   - Lines end at "\n", "\r\n" or a bare "\r"
//   - Blank and whitespace-only lines are dropped
//   - If the first remaining line parses as a number it is the header
//     (a row-count indicator) and is excluded from the data rows
//
// =============================================================================

package csvparser

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/ginjaninja78/stake-converter/internal/types"
)

// =============================================================================
// PARSER FUNCTIONS
// =============================================================================

// Parse reads a thread CSV file and returns its InputTable.
//
// PARAMETERS:
//   - filePath: The path to the CSV file.
//
// RETURNS:
//   - A pointer to the InputTable.
//   - An error if the file cannot be opened or read.
func Parse(filePath string) (*types.InputTable, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open file")
	}
	defer file.Close()

	table, err := ParseReader(file)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", filePath)
	}
	table.SourceFile = filePath

	return table, nil
}

// ParseReader builds an InputTable from r. SourceFile is left empty.
func ParseReader(r io.Reader) (*types.InputTable, error) {
	lines, err := readNonBlankLines(r)
	if err != nil {
		return nil, err
	}

	table := &types.InputTable{}
	if len(lines) > 0 && IsNumericHeader(lines[0]) {
		table.Header = lines[0]
		table.HasHeader = true
		lines = lines[1:]
	}
	table.Rows = lines

	return table, nil
}

// readNonBlankLines returns every line of r that holds something other than
// whitespace. A "\r" before "\n" leaves an empty part that is dropped as
// blank. bufio.Reader is used instead of bufio.Scanner so long lines
// are not rejected.
func readNonBlankLines(r io.Reader) ([]string, error) {
	reader := bufio.NewReader(r)
	var lines []string

	for {
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}

		for _, part := range strings.Split(strings.TrimSuffix(line, "\n"), "\r") {
			if !isLineBlank(part) {
				lines = append(lines, part)
			}
		}

		if err == io.EOF {
			return lines, nil
		}
	}
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// IsNumericHeader reports whether line, ignoring surrounding whitespace,
// parses as a floating-point number.
func IsNumericHeader(line string) bool {
	_, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
	return err == nil
}

func isLineBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}
