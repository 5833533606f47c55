// =============================================================================
// Stake Converter - Shared Types
// =============================================================================
//
// This package contains the types shared between the parser, the stake
// resolver and the converter, kept here to avoid import cycles. Types defined
// here are used by:
//   - config
//   - csvparser
//   - converter
//
// =============================================================================

package types

import "strconv"

// =============================================================================
// STAKE
// =============================================================================

// Stake is the integer copied into the second column of every output record.
// A resolved Stake is always strictly positive.
type Stake int

// String renders the stake the way it appears in the output file.
func (s Stake) String() string {
	return strconv.Itoa(int(s))
}

// =============================================================================
// INPUT TABLE
// =============================================================================

// InputTable represents the discovered thread file after blank lines have
// been dropped and the optional numeric header has been separated out.
type InputTable struct {
	// SourceFile is the path of the file the table was read from.
	SourceFile string

	// Header is the first non-blank line when it parsed as a number.
	// It is empty when HasHeader is false.
	Header string

	// HasHeader reports whether the first non-blank line was a numeric header.
	HasHeader bool

	// Rows contains the data rows in file order, header excluded.
	Rows []string
}

// RowCount returns the number of data rows, header excluded.
func (t *InputTable) RowCount() int {
	return len(t.Rows)
}

// =============================================================================
// OUTPUT TABLE
// =============================================================================

// Record is a single output line. Key is always zero.
type Record struct {
	Key   int
	Stake Stake
}

// String renders the record as an output CSV line without the terminator.
func (r Record) String() string {
	return strconv.Itoa(r.Key) + "," + r.Stake.String()
}

// OutputTable is the ordered list of records written to the output file,
// one per InputTable row.
type OutputTable struct {
	Records []Record
}

// Len returns the number of records.
func (t OutputTable) Len() int {
	return len(t.Records)
}
