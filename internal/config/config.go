// =============================================================================
// Stake Converter - Configuration Module
// =============================================================================
//
// This module resolves the stake amount from the Config.ini file that sits
// next to the thread CSV files.
//
// CONFIGURATION FILE:
//   Config.ini holds one KEY=VALUE pair per line. Only one key is read:
//
//     DefaultStakeAmount=25
//
// RESOLUTION RULES:
//   - The first line starting with "DefaultStakeAmount=" decides. Later
//     lines with the same key are ignored, even when the first is invalid.
//   - The value must parse as a base-10 integer and be strictly positive.
//   - Anything else (missing file, unreadable file, missing key, bad value)
//     resolves to DefaultStake.
//
// =============================================================================

package config

import (
	"bufio"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/ginjaninja78/stake-converter/internal/types"
)

// =============================================================================
// CONSTANTS
// =============================================================================

const (
	// FileName is the name of the configuration file in the working directory.
	FileName = "Config.ini"

	// StakeKey is the key holding the stake amount.
	StakeKey = "DefaultStakeAmount"

	// DefaultStake is used whenever the configured stake cannot be used.
	DefaultStake types.Stake = 10
)

var (
	// ErrStakeNotInteger is returned by ParseStake for values that are not
	// base-10 integers.
	ErrStakeNotInteger = errors.New("stake is not an integer")

	// ErrStakeNotPositive is returned by ParseStake for zero or negative values.
	ErrStakeNotPositive = errors.New("stake is not positive")

	// ErrStakeKeyMissing is returned by StakeConfig.Stake when the file has
	// no DefaultStakeAmount line.
	ErrStakeKeyMissing = errors.New("stake key not found")
)

// =============================================================================
// STAKE CONFIGURATION STRUCTURE
// =============================================================================

// StakeConfig holds what was found in Config.ini.
type StakeConfig struct {
	// Path is the path of the configuration file that was read.
	Path string

	// Found reports whether a DefaultStakeAmount line was present.
	Found bool

	// Raw is the trimmed value of the first DefaultStakeAmount line.
	Raw string

	// Line is the 1-based line number of that line, zero when not found.
	Line int
}

// Stake validates the raw value and returns the configured stake.
func (c *StakeConfig) Stake() (types.Stake, error) {
	if !c.Found {
		return 0, errors.Wrapf(ErrStakeKeyMissing, "%s", c.Path)
	}
	stake, err := ParseStake(c.Raw)
	if err != nil {
		return 0, errors.Wrapf(err, "%s line %d", c.Path, c.Line)
	}
	return stake, nil
}

// =============================================================================
// CONFIGURATION LOADING FUNCTIONS
// =============================================================================

// LoadStakeConfig reads Config.ini from dir.
//
// PARAMETERS:
//   - dir: The working directory containing Config.ini.
//
// RETURNS:
//   - A pointer to the StakeConfig struct. Found is false when the key is absent.
//   - An error if the file cannot be opened or read.
func LoadStakeConfig(dir string) (*StakeConfig, error) {
	path := filepath.Join(dir, FileName)

	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open config file")
	}
	defer file.Close()

	cfg, err := scanStakeConfig(file)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", path)
	}
	cfg.Path = path

	return cfg, nil
}

// scanStakeConfig looks for the first DefaultStakeAmount line in r.
func scanStakeConfig(r io.Reader) (*StakeConfig, error) {
	prefix := StakeKey + "="
	reader := bufio.NewReader(r)
	cfg := &StakeConfig{}

	for lineNo := 1; ; lineNo++ {
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}

		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, prefix) {
			cfg.Found = true
			cfg.Raw = strings.TrimSpace(strings.TrimPrefix(trimmed, prefix))
			cfg.Line = lineNo
			return cfg, nil
		}

		if err == io.EOF {
			return cfg, nil
		}
	}
}

// ParseStake parses a raw stake value. Surrounding whitespace is ignored.
//
// RETURNS:
//   - The stake if raw is a strictly positive base-10 integer.
//   - ErrStakeNotInteger or ErrStakeNotPositive otherwise.
func ParseStake(raw string) (types.Stake, error) {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, errors.Wrapf(ErrStakeNotInteger, "%q", raw)
	}
	if value <= 0 {
		return 0, errors.Wrapf(ErrStakeNotPositive, "%d", value)
	}
	return types.Stake(value), nil
}

// ResolveStake returns the stake configured in dir/Config.ini, or
// DefaultStake when it cannot be used. It never fails; the reason for a
// fallback is logged at debug level.
func ResolveStake(dir string, logger *slog.Logger) types.Stake {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	cfg, err := LoadStakeConfig(dir)
	if err != nil {
		logger.Debug("using default stake", "stake", DefaultStake, "reason", err)
		return DefaultStake
	}

	stake, err := cfg.Stake()
	if err != nil {
		logger.Debug("using default stake", "stake", DefaultStake, "reason", err)
		return DefaultStake
	}

	logger.Debug("stake resolved", "stake", stake, "path", cfg.Path, "line", cfg.Line)
	return stake
}
