package cmd

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runIn(t *testing.T, dir string, args ...string) (int, string, string) {
	t.Helper()
	t.Setenv(logLevelEnv, "")
	var stdout, stderr bytes.Buffer
	code := execute(dir, args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestExecuteConverts(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "thread_3.csv"), []byte("3\na\nb\nc\n"), 0o644))

	code, stdout, stderr := runIn(t, dir)

	assert.Equal(t, exitSuccess, code)
	assert.Empty(t, stderr)
	assert.Equal(t, 1, strings.Count(stdout, "\n"))
	assert.Contains(t, stdout, filepath.Join(dir, "output_3.csv"))
	assert.Contains(t, stdout, "stake 10")

	data, err := os.ReadFile(filepath.Join(dir, "output_3.csv"))
	require.NoError(t, err)
	assert.Equal(t, "0,10\n0,10\n0,10\n", string(data))
}

func TestExecuteNoInput(t *testing.T) {
	dir := t.TempDir()

	code, stdout, stderr := runIn(t, dir)

	assert.Equal(t, exitSuccess, code)
	assert.Empty(t, stdout)
	assert.Empty(t, stderr)
}

func TestExecuteFailure(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "thread_1.csv"), []byte("a\n"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "output_1.csv"), 0o755))

	code, stdout, stderr := runIn(t, dir)

	assert.Equal(t, exitFailure, code)
	assert.Empty(t, stdout)
	assert.True(t, strings.HasPrefix(stderr, diagnosticTag+" Error: "))
	assert.Equal(t, 1, strings.Count(stderr, "\n"))
	assertRunID(t, stderr)
}

func TestExecuteRecoversPanic(t *testing.T) {
	original := processStep
	t.Cleanup(func() { processStep = original })
	processStep = func(string, *slog.Logger, io.Writer) error {
		panic("boom")
	}

	code, stdout, stderr := runIn(t, t.TempDir())

	assert.Equal(t, exitFailure, code)
	assert.Empty(t, stdout)
	assert.True(t, strings.HasPrefix(stderr, diagnosticTag+" Error: unexpected failure: boom"))
	assert.Equal(t, 1, strings.Count(stderr, "\n"))
	assertRunID(t, stderr)
}

func TestExecuteMissingDirectory(t *testing.T) {
	code, _, stderr := runIn(t, filepath.Join(t.TempDir(), "gone"))

	assert.Equal(t, exitFailure, code)
	assert.Contains(t, stderr, "discovery:")
}

// assertRunID checks that the diagnostic line ends with a valid run id.
func assertRunID(t *testing.T, line string) {
	t.Helper()
	i := strings.LastIndex(line, "(run_id=")
	require.NotEqual(t, -1, i, line)
	id := strings.TrimSuffix(strings.TrimSpace(line[i+len("(run_id="):]), ")")
	_, err := uuid.Parse(id)
	assert.NoError(t, err, id)
}

func TestReportErrorWithoutRunID(t *testing.T) {
	var buf bytes.Buffer
	reportError(&buf, errors.New("no cwd"), "")
	assert.Equal(t, diagnosticTag+" Error: no cwd\n", buf.String())
}

func TestExecuteRejectsArguments(t *testing.T) {
	code, _, stderr := runIn(t, t.TempDir(), "extra")

	assert.Equal(t, exitFailure, code)
	assert.Contains(t, stderr, diagnosticTag)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, slog.LevelInfo, parseLevel(" info "))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelWarn, parseLevel(""))
	assert.Equal(t, slog.LevelWarn, parseLevel("verbose"))
}
