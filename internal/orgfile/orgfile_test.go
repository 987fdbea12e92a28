package orgfile

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gerunddev/orgwriter/internal/logger"
	"github.com/gerunddev/orgwriter/org"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendCreatesAndAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "inbox.org")
	a := NewAppender(nil)

	first := org.Entry{Heading: "first", Level: 1}.Format()
	second := org.Entry{Heading: "second", Todo: "TODO", Body: org.Text("details\n"), Level: 1}.Format()

	require.NoError(t, a.Append(path, first))
	require.NoError(t, a.Append(path, second))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "* first\n* TODO second\n details\n", string(data))
}

func TestAppendLogs(t *testing.T) {
	var buf bytes.Buffer
	a := NewAppender(logger.New(&buf))
	path := filepath.Join(t.TempDir(), "inbox.org")

	require.NoError(t, a.Append(path, "* small"))
	assert.Contains(t, buf.String(), "entry appended")
	assert.NotContains(t, buf.String(), "non-atomic")

	buf.Reset()
	big := org.Entry{Heading: "big", Body: org.Text(strings.Repeat("x", AtomicWriteLimit)), Level: 1}.Format()
	require.NoError(t, a.Append(path, big))
	assert.Contains(t, buf.String(), "non-atomic")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(data), "x\n"))
}

func TestPrepare(t *testing.T) {
	assert.Equal(t, "* a\n", Prepare("* a"))
	assert.Equal(t, "* a\n body\n", Prepare("* a\n body\n"))
	assert.Equal(t, "\n", Prepare(""))
}

func TestReadExisting(t *testing.T) {
	dir := t.TempDir()

	content, err := ReadExisting(filepath.Join(dir, "missing.org"))
	require.NoError(t, err)
	assert.Empty(t, content)

	path := filepath.Join(dir, "present.org")
	require.NoError(t, os.WriteFile(path, []byte("* x\n"), 0644))
	content, err = ReadExisting(path)
	require.NoError(t, err)
	assert.Equal(t, "* x\n", content)
}

func TestAppendFailsOnDirectory(t *testing.T) {
	dir := t.TempDir()
	err := NewAppender(nil).Append(dir, "* x")
	assert.Error(t, err)
}

func TestAppendClosesUnterminatedLine(t *testing.T) {
	tests := []struct {
		name     string
		existing string
		expected string
	}{
		{
			name:     "last line without newline",
			existing: "* existing\n some note",
			expected: "* existing\n some note\n* new entry\n",
		},
		{
			name:     "terminated last line",
			existing: "* existing\n",
			expected: "* existing\n* new entry\n",
		},
		{
			name:     "empty file",
			existing: "",
			expected: "* new entry\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "inbox.org")
			require.NoError(t, os.WriteFile(path, []byte(tt.existing), 0644))

			require.NoError(t, NewAppender(nil).Append(path, "* new entry"))

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(data))
			assert.Equal(t, tt.expected, Appended(tt.existing, "* new entry"))
		})
	}
}

func TestAppendedCountsSeparatorInLog(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "inbox.org")
	require.NoError(t, os.WriteFile(path, []byte("* open"), 0644))

	require.NoError(t, NewAppender(logger.New(&buf)).Append(path, "* x"))
	assert.Contains(t, buf.String(), "bytes=5")
}
