// =============================================================================
// Stake Converter - Version Information
// =============================================================================
//
// Build metadata shown at the end of the --help text.
//
// =============================================================================

package cmd

import (
	"fmt"
	"runtime"
)

// These variables are set at build time using ldflags.
// Example build command:
//   go build -ldflags "-X 'github.com/ginjaninja78/stake-converter/cmd.Version=1.0.0'"

// Version is the application version.
var Version = "1.0.0"

// BuildDate is the date the application was built.
var BuildDate = "unknown"

// versionInfo returns the version line used in the help text.
func versionInfo() string {
	return fmt.Sprintf("Version %s (built %s, %s)", Version, BuildDate, runtime.Version())
}
