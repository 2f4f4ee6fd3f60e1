package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"mpg-forecast/internal/core/domain"
)

func TestRun_ShippedArtifact(t *testing.T) {
	path, err := filepath.Abs(filepath.Join("..", "..", "reports", "forecastingModel.json"))
	require.NoError(t, err)
	testChdir(t, t.TempDir())
	t.Setenv("MODEL_PATH", path)
	t.Setenv("LOGGER_LEVEL", "error")

	out := &bytes.Buffer{}
	require.NoError(t, run(context.Background(), out))
	require.Equal(t, "Predicted MPG: 30.90\n", out.String())
}

func TestRun_Deterministic(t *testing.T) {
	dir := t.TempDir()
	testChdir(t, dir)
	artifact := `format_version: 1
framework: sklearn
estimator: GradientBoostingRegressor
target: mpg
feature_names: [cylinders, horsepower, weight, car_age, origin_japan, origin_usa]
ensemble:
  init: 23.4
  learning_rate: 0.1
  trees:
    - children_left: [1, -1, -1]
      children_right: [2, -1, -1]
      feature: [2, -2, -2]
      threshold: [2800.5, -2, -2]
      value: [0, 6.3, -4.5]
    - children_left: [1, -1, -1]
      children_right: [2, -1, -1]
      feature: [3, -2, -2]
      threshold: [10, -2, -2]
      value: [0, 3, -2]
`
	path := filepath.Join(dir, "model.yaml")
	require.NoError(t, os.WriteFile(path, []byte(artifact), 0o600))
	t.Setenv("MODEL_PATH", path)
	t.Setenv("LOGGER_LEVEL", "error")

	first := &bytes.Buffer{}
	require.NoError(t, run(context.Background(), first))
	second := &bytes.Buffer{}
	require.NoError(t, run(context.Background(), second))

	// 23.4 + 0.1 * (6.3 - 2)
	require.Equal(t, "Predicted MPG: 23.83\n", first.String())
	require.Equal(t, first.String(), second.String())
}

func TestRun_MissingArtifact(t *testing.T) {
	dir := t.TempDir()
	testChdir(t, dir)
	t.Setenv("MODEL_PATH", filepath.Join(dir, "forecastingModel.json"))
	t.Setenv("LOGGER_LEVEL", "error")

	out := &bytes.Buffer{}
	err := run(context.Background(), out)
	require.ErrorIs(t, err, domain.ErrArtifactNotFound)
	require.Empty(t, out.String())
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
