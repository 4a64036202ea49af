package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrpulse/internal/platform/seed"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })
	err := rootCmd.Execute()
	return out.String(), err
}

func TestCheckFixtures(t *testing.T) {
	t.Setenv("FIXTURES_PATH", "")
	out, err := execute(t, "check-fixtures")
	require.NoError(t, err)
	assert.Contains(t, out, "embedded fixtures: ok")

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("team: [\n"), 0o600))
	_, err = execute(t, "check-fixtures", bad)
	assert.Error(t, err)
}

func TestExportPDI(t *testing.T) {
	t.Setenv("FIXTURES_PATH", "")
	target := filepath.Join(t.TempDir(), "plan.pdf")
	out, err := execute(t, "export-pdi", "--id", "1", "--out", target, "--fixtures", "")
	require.NoError(t, err)
	assert.Contains(t, out, "wrote "+target)

	raw, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF-")))

	_, err = execute(t, "export-pdi", "--id", "99", "--out", target, "--fixtures", "")
	assert.ErrorContains(t, err, "export plan 99")
}

func TestExportPDIReadsFixturesPathAtRunTime(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "plan.pdf")

	missing := filepath.Join(dir, "missing.yaml")
	t.Setenv("FIXTURES_PATH", missing)
	_, err := execute(t, "export-pdi", "--id", "1", "--out", target, "--fixtures", "")
	assert.ErrorContains(t, err, missing)

	good := filepath.Join(dir, "fixtures.yaml")
	require.NoError(t, os.WriteFile(good, seed.Embedded(), 0o600))
	_, err = execute(t, "export-pdi", "--id", "1", "--out", target, "--fixtures", good)
	require.NoError(t, err, "the flag wins over the environment")
	_, err = os.Stat(target)
	assert.NoError(t, err)
}
