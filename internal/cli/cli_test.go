package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/expenses/internal/config"
)

type result struct {
	code           int
	stdout, stderr string
}

func run(t *testing.T, dir string, args ...string) result {
	t.Helper()
	var out, errOut bytes.Buffer
	full := append([]string{"--data-dir", dir}, args...)
	code := Execute(context.Background(), full, &out, &errOut)
	return result{code: code, stdout: out.String(), stderr: errOut.String()}
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"EXPENSES_DATA_DIR", "EXPENSES_BACKEND", "EXPENSES_LOG_FILE", "EXPENSES_LOG_LEVEL"} {
		t.Setenv(k, "")
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(b)
}

func TestAddListRemoveScenario(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	r := run(t, dir, "add", "Coffee", "4.50")
	require.Equal(t, exitOK, r.code, r.stderr)
	assert.Contains(t, r.stdout, "added")

	r = run(t, dir, "add", "Bus 2.00")
	require.Equal(t, exitOK, r.code, r.stderr)
	assert.Equal(t, "Coffee 4.50\nBus 2.00\n", readFile(t, filepath.Join(dir, "expenses.txt")))

	r = run(t, dir, "ls")
	require.Equal(t, exitOK, r.code, r.stderr)
	assert.Contains(t, r.stdout, "Coffee 4.50")
	assert.Contains(t, r.stdout, "Bus 2.00")
	assert.Contains(t, r.stdout, "Total 2")

	r = run(t, dir, "rm", "1")
	require.Equal(t, exitOK, r.code, r.stderr)
	assert.Equal(t, "Bus 2.00\n", readFile(t, filepath.Join(dir, "expenses.txt")))
}

func TestAddBlankIsWarning(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	r := run(t, dir, "add", "   ")
	assert.Equal(t, exitUsage, r.code)
	assert.Contains(t, r.stderr, "Please enter an expense.")
	_, err := os.Stat(filepath.Join(dir, "expenses.txt"))
	assert.True(t, os.IsNotExist(err))
}

func TestRemoveOutOfRangeIsWarning(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	require.Equal(t, exitOK, run(t, dir, "add", "Tea").code)

	r := run(t, dir, "rm", "5")
	assert.Equal(t, exitUsage, r.code)
	assert.Contains(t, r.stderr, "Please select an expense to delete.")
	assert.Equal(t, "Tea\n", readFile(t, filepath.Join(dir, "expenses.txt")))

	r = run(t, dir, "rm", "two")
	assert.Equal(t, exitUsage, r.code)
	assert.Contains(t, r.stderr, "not a number")
}

func TestThemeCommands(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	r := run(t, dir, "theme")
	require.Equal(t, exitOK, r.code, r.stderr)
	assert.Equal(t, "light\n", r.stdout)

	r = run(t, dir, "theme", "toggle")
	require.Equal(t, exitOK, r.code, r.stderr)
	assert.Equal(t, "dark", readFile(t, filepath.Join(dir, "settings.txt")))

	r = run(t, dir, "theme", "set", "light")
	require.Equal(t, exitOK, r.code, r.stderr)
	assert.Equal(t, "light", readFile(t, filepath.Join(dir, "settings.txt")))

	r = run(t, dir, "theme", "set", "sepia")
	assert.Equal(t, exitUsage, r.code)
}

func TestSQLiteBackend(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	r := run(t, dir, "--backend", "sqlite", "add", "Rent 800")
	require.Equal(t, exitOK, r.code, r.stderr)

	r = run(t, dir, "--backend", "sqlite", "ls")
	require.Equal(t, exitOK, r.code, r.stderr)
	assert.Contains(t, r.stdout, "Rent 800")
	_, err := os.Stat(filepath.Join(dir, "expenses.db"))
	assert.NoError(t, err)
}

func TestConfigFileAndLogging(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	logPath := filepath.Join(dir, "logs", "expenses.log")
	cfgPath := filepath.Join(dir, "expenses.yaml")
	body := "data_dir: " + dir + "\nrecord_file: list.txt\nlog_file: " + logPath + "\nlog_level: debug\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(body), 0o644))

	var out, errOut bytes.Buffer
	code := Execute(context.Background(), []string{"--config", cfgPath, "add", "Lunch 9.00"}, &out, &errOut)
	require.Equal(t, exitOK, code, errOut.String())
	assert.Equal(t, "Lunch 9.00\n", readFile(t, filepath.Join(dir, "list.txt")))
	assert.Contains(t, readFile(t, logPath), `"component":"tracker"`)
}

func TestConfigInitWritesLoadableFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "conf", "expenses.yaml")

	r := run(t, dir, "--backend", "SQLite", "config", "init", path)
	require.Equal(t, exitOK, r.code, r.stderr)
	assert.Contains(t, r.stdout, "wrote "+path)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.DataDir)
	assert.Equal(t, config.BackendSQLite, cfg.Backend)

	r = run(t, dir, "--config", path, "add", "Rent 800")
	require.Equal(t, exitOK, r.code, r.stderr)
	_, err = os.Stat(filepath.Join(dir, "expenses.db"))
	assert.NoError(t, err)
}

func TestUnknownBackendIsUsageError(t *testing.T) {
	clearEnv(t)
	r := run(t, t.TempDir(), "--backend", "csv", "ls")
	assert.Equal(t, exitUsage, r.code)
	assert.Contains(t, r.stderr, "unknown backend")
}

func TestUnknownCommand(t *testing.T) {
	clearEnv(t)
	r := run(t, t.TempDir(), "frobnicate")
	assert.Equal(t, exitUsage, r.code)
}

func TestStorageErrorExitCode(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	// A directory in place of the record file cannot be read.
	require.NoError(t, os.Mkdir(filepath.Join(dir, "expenses.txt"), 0o755))
	r := run(t, dir, "ls")
	assert.Equal(t, exitError, r.code)
	assert.Contains(t, r.stderr, "load records")
}

func TestKeysCommand(t *testing.T) {
	clearEnv(t)
	r := run(t, t.TempDir(), "keys")
	require.Equal(t, exitOK, r.code, r.stderr)
	assert.Contains(t, r.stdout, "ctrl+t")
}
