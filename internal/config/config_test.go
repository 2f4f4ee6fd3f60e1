package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir moves into a fresh directory so no stray .env is picked up.
func chdir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	testChdir(t, dir)
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t)
	// viper treats empty variables as unset.
	t.Setenv("MODEL_PATH", "")
	t.Setenv("LOGGER_LEVEL", "")
	t.Setenv("LOGGER_FORMAT", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultModelPath, cfg.Model.Path)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "text", cfg.Logger.Format)
}

func TestLoad_EnvOverrides(t *testing.T) {
	chdir(t)
	t.Setenv("MODEL_PATH", "/models/mpg.yaml")
	t.Setenv("LOGGER_LEVEL", "debug")
	t.Setenv("LOGGER_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/models/mpg.yaml", cfg.Model.Path)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "json", cfg.Logger.Format)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := chdir(t)
	t.Setenv("LOGGER_LEVEL", "warn")
	// godotenv only fills variables that are absent, not empty.
	t.Setenv("MODEL_PATH", "")
	os.Unsetenv("MODEL_PATH")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("MODEL_PATH=artifacts/model.json\nLOGGER_LEVEL=trace\n"), 0o600))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "artifacts/model.json", cfg.Model.Path)
	// Variables already in the environment win over .env.
	assert.Equal(t, "warn", cfg.Logger.Level)
}

// testChdir changes the working directory for the duration of the test and
// restores it on cleanup (stand-in for testing.T.Chdir, added in Go 1.24).
func testChdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
