package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// useConfigPath points ConfigPath at path for the duration of the test
func useConfigPath(t *testing.T, path string) {
	t.Helper()
	originalConfigPath := ConfigPath
	ConfigPath = func() string {
		return path
	}
	t.Cleanup(func() {
		ConfigPath = originalConfigPath
	})
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.NotEmpty(t, cfg.InboxFile)
	assert.NotEmpty(t, cfg.LogFile)
	assert.Equal(t, 1, cfg.DefaultLevel)
	assert.Empty(t, cfg.DefaultTodo)
	assert.False(t, cfg.AssignIDs)
	assert.False(t, cfg.AddCreated)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
	}{
		{
			name:    "valid config",
			config:  DefaultConfig(),
			wantErr: false,
		},
		{
			name: "empty inbox_file",
			config: &Config{
				InboxFile: "",
				LogFile:   "/tmp/test.log",
			},
			wantErr: true,
		},
		{
			name: "empty log_file",
			config: &Config{
				InboxFile: "/tmp/inbox.org",
				LogFile:   "",
			},
			wantErr: true,
		},
		{
			name: "negative level",
			config: &Config{
				InboxFile:    "/tmp/inbox.org",
				LogFile:      "/tmp/test.log",
				DefaultLevel: -1,
			},
			wantErr: true,
		},
		{
			name: "todo with spaces",
			config: &Config{
				InboxFile:   "/tmp/inbox.org",
				LogFile:     "/tmp/test.log",
				DefaultTodo: "NOT DONE",
			},
			wantErr: true,
		},
		{
			name: "level zero with todo",
			config: &Config{
				InboxFile:    "/tmp/inbox.org",
				LogFile:      "/tmp/test.log",
				DefaultLevel: 0,
				DefaultTodo:  "TODO",
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	testConfigPath := filepath.Join(t.TempDir(), "orgwriter", "config.json")
	useConfigPath(t, testConfigPath)

	testCfg := &Config{
		InboxFile:    "/test/org/inbox.org",
		LogFile:      "/tmp/orgwriter-test.log",
		DefaultLevel: 2,
		DefaultTodo:  "NEXT",
		AssignIDs:    true,
		AddCreated:   true,
	}

	require.NoError(t, testCfg.Save())
	_, err := os.Stat(testConfigPath)
	require.NoError(t, err, "config file was not created")

	loadedCfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, testCfg, loadedCfg)
}

func TestLoadPartialConfigKeepsDefaults(t *testing.T) {
	testConfigPath := filepath.Join(t.TempDir(), "config.json")
	useConfigPath(t, testConfigPath)

	require.NoError(t, os.WriteFile(testConfigPath, []byte(`{"default_todo": "TODO"}`), 0644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "TODO", cfg.DefaultTodo)
	assert.Equal(t, 1, cfg.DefaultLevel)
	assert.NotEmpty(t, cfg.InboxFile)
}

func TestLoadInvalidConfig(t *testing.T) {
	testConfigPath := filepath.Join(t.TempDir(), "config.json")
	useConfigPath(t, testConfigPath)

	require.NoError(t, os.WriteFile(testConfigPath, []byte(`{"default_level": -3}`), 0644))
	_, err := Load()
	assert.ErrorContains(t, err, "invalid configuration")

	require.NoError(t, os.WriteFile(testConfigPath, []byte(`not json`), 0644))
	_, err = Load()
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestLoadNonExistentConfig(t *testing.T) {
	useConfigPath(t, filepath.Join(t.TempDir(), "nonexistent.json"))

	cfg, err := Load()
	require.NoError(t, err, "Load() should not error on missing file")

	assert.Equal(t, DefaultConfig(), cfg)
}

func TestExpandPath(t *testing.T) {
	homeDir, _ := os.UserHomeDir()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "tilde expansion",
			input:    "~/test",
			expected: filepath.Join(homeDir, "test"),
		},
		{
			name:     "tilde only",
			input:    "~",
			expected: homeDir,
		},
		{
			name:     "absolute path",
			input:    "/tmp/test",
			expected: "/tmp/test",
		},
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ExpandPath(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestConfigPathsExpanded(t *testing.T) {
	useConfigPath(t, filepath.Join(t.TempDir(), "config.json"))

	testCfg := &Config{
		InboxFile:    "~/org/inbox.org",
		LogFile:      "~/orgwriter.log",
		DefaultLevel: 1,
	}
	require.NoError(t, testCfg.Save())

	loadedCfg, err := Load()
	require.NoError(t, err)

	assert.NotEqual(t, '~', rune(loadedCfg.InboxFile[0]), "InboxFile was not expanded")
	assert.NotEqual(t, '~', rune(loadedCfg.LogFile[0]), "LogFile was not expanded")
}
