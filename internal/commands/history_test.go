package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gerunddev/orgwriter/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orgwriter.log")
	log := strings.Join([]string{
		"2025-11-27 14:10:00 INFO entry appended file=/org/inbox.org bytes=10",
		"2025-11-27 14:10:30 WARN write might be non-atomic file=/org/inbox.org bytes=5000 limit=4096",
		"2025-11-27 14:10:30 INFO entry appended file=/org/inbox.org bytes=5000",
		"2025-11-27 14:11:57 INFO entry appended file=/org/work.org bytes=32",
		"",
	}, "\n")
	require.NoError(t, os.WriteFile(path, []byte(log), 0644))

	h, err := ParseLogFile(path, 100)
	require.NoError(t, err)
	assert.Equal(t, 3, h.Appends)
	assert.Equal(t, 5042, h.Bytes)
	assert.Equal(t, time.Date(2025, 11, 27, 14, 11, 57, 0, time.UTC), h.LastAppend)

	h, err = ParseLogFile(path, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, h.Appends)
	assert.Equal(t, 32, h.Bytes)

	_, err = ParseLogFile(filepath.Join(t.TempDir(), "missing.log"), 10)
	assert.True(t, os.IsNotExist(err))
}

func TestHistoryCommand(t *testing.T) {
	app, _ := newTestApp(t)

	out, err := run(t, app, "", "history")
	require.NoError(t, err)
	assert.Contains(t, out, "No appends recorded yet")

	// route appends through a file logger like main does
	l, cleanup, err := logger.NewFileLogger(app.Config.LogFile)
	require.NoError(t, err)
	app = NewApp(app.Config, l, "test")

	_, err = run(t, app, "", "entry", "logged", "--append")
	require.NoError(t, err)
	cleanup()

	out, err = run(t, app, "", "history")
	require.NoError(t, err)
	assert.Contains(t, out, "entry appended")
	assert.Contains(t, out, "appends")
}
