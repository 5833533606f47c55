// =============================================================================
// Stake Converter - Main Entry Point
// =============================================================================
//
// This is the main entry point for the stake converter CLI. It delegates to
// the cmd package, which owns argument handling and exit codes.
//
// USAGE:
//   stake-converter    - Convert the thread CSV in the current directory
//
// ARCHITECTURE:
//   - cmd/                : Cobra root command and exit code mapping
//   - internal/converter  : Conversion pipeline
//   - internal/config     : Stake resolution from Config.ini
//   - internal/csvparser  : Thread CSV reading
//   - internal/types      : Shared table types
//   - pkg/utils           : File discovery and naming
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/stake-converter/cmd"
)

func main() {
	cmd.Execute()
}
