package csvparser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReader(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantHeader bool
		wantRows   []string
	}{
		{
			name:       "numeric header skipped",
			input:      "3\na\nb\nc\n",
			wantHeader: true,
			wantRows:   []string{"a", "b", "c"},
		},
		{
			name:     "text first line is data",
			input:    "abc\ndef\n",
			wantRows: []string{"abc", "def"},
		},
		{
			name:     "blank lines dropped",
			input:    "\n  \nx,1\n\t\ny,2\n\n",
			wantRows: []string{"x,1", "y,2"},
		},
		{
			name:       "header after leading blank lines",
			input:      "\n\n5\nrow\n",
			wantHeader: true,
			wantRows:   []string{"row"},
		},
		{
			name:       "float header",
			input:      "2.0\nr1\nr2",
			wantHeader: true,
			wantRows:   []string{"r1", "r2"},
		},
		{
			name:     "crlf line endings",
			input:    "a\r\nb\r\n",
			wantRows: []string{"a", "b"},
		},
		{
			name:       "bare cr line endings",
			input:      "3\ra\rb\rc",
			wantHeader: true,
			wantRows:   []string{"a", "b", "c"},
		},
		{
			name:     "mixed line endings",
			input:    "a\r\nb\rc\n\r\nd",
			wantRows: []string{"a", "b", "c", "d"},
		},
		{
			name:     "numeric second line is data",
			input:    "name\n7\n",
			wantRows: []string{"name", "7"},
		},
		{
			name:       "header only",
			input:      "0\n",
			wantHeader: true,
		},
		{
			name:  "empty input",
			input: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := ParseReader(strings.NewReader(tt.input))
			require.NoError(t, err)

			assert.Equal(t, tt.wantHeader, table.HasHeader)
			if diff := cmp.Diff(tt.wantRows, table.Rows, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("rows mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, len(tt.wantRows), table.RowCount())
		})
	}
}

func TestIsNumericHeader(t *testing.T) {
	for _, line := range []string{"5", " 5 ", "-3", "1.5", "1e3", "0"} {
		assert.True(t, IsNumericHeader(line), line)
	}
	for _, line := range []string{"abc", "5,6", "3 rows", ""} {
		assert.False(t, IsNumericHeader(line), line)
	}
}

func TestParse(t *testing.T) {
	path := filepath.Join(t.TempDir(), "thread_3.csv")
	require.NoError(t, os.WriteFile(path, []byte("3\na\nb\nc\n"), 0o644))

	table, err := Parse(path)
	require.NoError(t, err)

	assert.Equal(t, path, table.SourceFile)
	assert.Equal(t, "3", table.Header)
	assert.Equal(t, 3, table.RowCount())
}

func TestParseLongLine(t *testing.T) {
	long := strings.Repeat("x", 1<<20)

	table, err := ParseReader(strings.NewReader("a\n" + long + "\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, table.RowCount())
}

func TestParseMissingFile(t *testing.T) {
	_, err := Parse(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}
