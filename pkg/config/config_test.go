package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/notjagan/dexview/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "dexview.toml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestReadFile(t *testing.T) {
	path := writeFile(t, `
[api]
base_url = "http://localhost:8000/api/v2"
timeout = "3s"

[chart]
database = "/var/lib/pokeapi.sqlite3"

[view]
sort = "name"

[discord]
token = "abc"

[log]
level = "debug"
development = true
`)

	cfg, err := Read(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000/api/v2", cfg.API.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.API.Timeout)
	assert.Equal(t, "/var/lib/pokeapi.sqlite3", cfg.Chart.Path)
	assert.Equal(t, model.SortByName, cfg.View.Sort)
	assert.Equal(t, "abc", cfg.Discord.Token)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Development)
	assert.Empty(t, cfg.Telemetry.Endpoint)
}

func TestReadEnvOverridesFile(t *testing.T) {
	path := writeFile(t, `
[view]
sort = "name"
`)
	t.Setenv("DEXVIEW_VIEW_SORT", "number")
	t.Setenv("DEXVIEW_DISCORD_TOKEN", "from-env")
	t.Setenv("DEXVIEW_API_TIMEOUT", "250ms")

	cfg, err := Read(path)
	require.NoError(t, err)

	assert.Equal(t, model.SortByNumber, cfg.View.Sort)
	assert.Equal(t, "from-env", cfg.Discord.Token)
	assert.Equal(t, 250*time.Millisecond, cfg.API.Timeout)
	assert.Equal(t, DefaultBaseURL, cfg.API.BaseURL)
}

func TestReadMissingDefaultFile(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Read(DefaultPath)
	require.NoError(t, err)
	assert.Equal(t, Default(), *cfg)
}

func TestReadMissingExplicitFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestReadRejectsInvalid(t *testing.T) {
	tests := map[string]string{
		"relative url":   "[api]\nbase_url = \"pokeapi.co\"\n",
		"zero timeout":   "[api]\ntimeout = \"0s\"\n",
		"unknown sort":   "[view]\nsort = \"weight\"\n",
		"malformed toml": "[api\n",
	}

	for name, contents := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Read(writeFile(t, contents))
			assert.Error(t, err)
		})
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	cfg.View.Sort = model.SortMode(7)
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}
