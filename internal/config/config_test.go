package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/nilaykumar/must/internal/task"
)

func writeConfig(t *testing.T, path string, values map[string]any) {
	t.Helper()
	data, err := yaml.Marshal(values)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0644))
}

func TestLoadConfig_WithValidFile(t *testing.T) {
	tmpDir := t.TempDir()
	writeConfig(t, filepath.Join(tmpDir, "must.yaml"), map[string]any{
		"data": map[string]any{
			"dir":    "/srv/must",
			"file":   "lists.txt",
			"format": "grouped",
		},
		"tasks": map[string]any{
			"id_policy":   "increment",
			"keep_spaces": true,
			"list":        "work",
		},
	})

	cfg, err := LoadConfig(tmpDir)
	require.NoError(t, err)

	// Data
	assert.Equal(t, "/srv/must", cfg.Data.Dir)
	assert.Equal(t, "lists.txt", cfg.Data.File)
	assert.Equal(t, FormatGrouped, cfg.Data.Format)

	// Tasks
	assert.Equal(t, "increment", cfg.Tasks.IDPolicy)
	assert.True(t, cfg.Tasks.KeepSpaces)
	assert.Equal(t, "work", cfg.Tasks.List)

	assert.Equal(t, task.IDPolicyIncrement, cfg.IDPolicy())
	assert.Equal(t, task.Options{KeepSpaces: true}, cfg.CodecOptions())
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Data.Dir)
	assert.Equal(t, DefaultDataFile, cfg.Data.File)
	assert.Equal(t, FormatFlat, cfg.Data.Format)
	assert.Equal(t, DefaultIDPolicy, cfg.Tasks.IDPolicy)
	assert.False(t, cfg.Tasks.KeepSpaces)
	assert.Equal(t, DefaultList, cfg.Tasks.List)
	assert.Equal(t, task.IDPolicyMax, cfg.IDPolicy())
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	writeConfig(t, filepath.Join(tmpDir, "must.yaml"), map[string]any{
		"tasks": map[string]any{"keep_spaces": true},
	})

	cfg, err := LoadConfig(tmpDir)
	require.NoError(t, err)
	assert.True(t, cfg.Tasks.KeepSpaces)
	assert.Equal(t, DefaultDataFile, cfg.Data.File)
	assert.Equal(t, FormatFlat, cfg.Data.Format)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "must.yaml"), []byte("data: [unterminated"), 0644))

	_, err := LoadConfig(tmpDir)
	assert.Error(t, err)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("MUST_DATA_FORMAT", "grouped")
	t.Setenv("MUST_TASKS_ID_POLICY", "increment")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, FormatGrouped, cfg.Data.Format)
	assert.Equal(t, task.IDPolicyIncrement, cfg.IDPolicy())
}

func TestLoadConfigFromPath(t *testing.T) {
	t.Run("missing file returns defaults", func(t *testing.T) {
		cfg, err := LoadConfigFromPath(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)
		assert.Equal(t, FormatFlat, cfg.Data.Format)
	})

	t.Run("reads explicit file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "custom.yaml")
		writeConfig(t, path, map[string]any{
			"data": map[string]any{"file": "custom.txt"},
		})

		cfg, err := LoadConfigFromPath(path)
		require.NoError(t, err)
		assert.Equal(t, "custom.txt", cfg.Data.File)
	})

	t.Run("rejects unknown format", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		writeConfig(t, path, map[string]any{
			"data": map[string]any{"format": "binary"},
		})

		_, err := LoadConfigFromPath(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "data.format")
	})
}

func TestLoadConfigWithFile_UsesGlobalPath(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	require.NoError(t, os.MkdirAll(filepath.Join(xdg, "must"), 0755))
	writeConfig(t, filepath.Join(xdg, "must", "must.yaml"), map[string]any{
		"tasks": map[string]any{"list": "someday"},
	})

	cfg, err := LoadConfigWithFile("")
	require.NoError(t, err)
	assert.Equal(t, "someday", cfg.Tasks.List)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Data:  DataConfig{File: DefaultDataFile, Format: FormatFlat},
			Tasks: TasksConfig{IDPolicy: DefaultIDPolicy, List: DefaultList},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"valid defaults", func(c *Config) {}, ""},
		{"empty file", func(c *Config) { c.Data.File = "" }, "data.file"},
		{"unknown format", func(c *Config) { c.Data.Format = "json" }, "data.format"},
		{"unknown id policy", func(c *Config) { c.Tasks.IDPolicy = "random" }, "tasks.id_policy"},
		{"grouped without list", func(c *Config) {
			c.Data.Format = FormatGrouped
			c.Tasks.List = " "
		}, "tasks.list"},
		{"list name with equals sign", func(c *Config) { c.Tasks.List = "a=b" }, "tasks.list"},
		{"flat without list is fine", func(c *Config) { c.Tasks.List = "" }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
