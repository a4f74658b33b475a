package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "Krish Bank System", cfg.Bank.Name)
	assert.Equal(t, "Krish Naharki", cfg.Bank.SupportContact)
	assert.Equal(t, "5050", cfg.Bank.PIN)
	assert.Empty(t, cfg.Bank.PINHash)
	assert.Equal(t, 3, cfg.Bank.MaxAttempts)
	assert.Equal(t, "1000.00", cfg.Bank.InitialBalance.String())
	assert.Equal(t, 4, cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "stderr", cfg.Log.Output)
	assert.Equal(t, "auto", cfg.UI.Color)
}

func TestLoadFromEnvironment(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("BANK_PIN", "1234")
	t.Setenv("BANK_MAX_ATTEMPTS", "5")
	t.Setenv("BANK_INITIAL_BALANCE", "25.5")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("UI_COLOR", "never")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "1234", cfg.Bank.PIN)
	assert.Equal(t, 5, cfg.Bank.MaxAttempts)
	assert.Equal(t, "25.50", cfg.Bank.InitialBalance.String())
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "never", cfg.UI.Color)
}

func TestLoadFromEnvFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.test"), []byte("BANK_NAME=Test Bank\nBANK_MAX_ATTEMPTS=2\n"), 0o600))
	chdir(t, dir)
	t.Cleanup(func() {
		os.Unsetenv("BANK_NAME")         //nolint:errcheck
		os.Unsetenv("BANK_MAX_ATTEMPTS") //nolint:errcheck
	})

	cfg, err := Load(".env.missing", ".env.test")
	require.NoError(t, err)
	assert.Equal(t, "Test Bank", cfg.Bank.Name)
	assert.Equal(t, 2, cfg.Bank.MaxAttempts)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"zero attempts", map[string]string{"BANK_MAX_ATTEMPTS": "0"}},
		{"non-numeric pin", map[string]string{"BANK_PIN": "abcd"}},
		{"no pin and no hash", map[string]string{"BANK_PIN": ""}},
		{"malformed hash", map[string]string{"BANK_PIN_HASH": "5050"}},
		{"bad balance", map[string]string{"BANK_INITIAL_BALANCE": "lots"}},
		{"negative balance", map[string]string{"BANK_INITIAL_BALANCE": "-1"}},
		{"bad log format", map[string]string{"LOG_FORMAT": "xml"}},
		{"bad color mode", map[string]string{"UI_COLOR": "rainbow"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chdir(t, t.TempDir())
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestNegativeBalanceError(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("BANK_INITIAL_BALANCE", "-0.01")
	_, err := Load()
	assert.ErrorIs(t, err, ErrNegativeInitialBalance)
}

func TestPINHashWithoutPIN(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("BANK_PIN", "")
	t.Setenv("BANK_PIN_HASH", "$2a$10$.IIxpSc3OElWXLV2Wj517eUGmZ64IQgBNQ4OcFbanW85CTrgrIDQy")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.Bank.PIN)
}

func TestMaskValue(t *testing.T) {
	assert.Equal(t, "", maskValue(""))
	assert.Equal(t, "****", maskValue("5050"))
	assert.Equal(t, "$2****rDQy", maskValue("$2a$10$abcdrDQy"))
}

func TestFindEnvFileWalksUpToModuleRoot(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "cmd", "cli")
	require.NoError(t, os.MkdirAll(nested, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(root, "go.mod"), []byte("module example.com/teller\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".env"), []byte("BANK_PIN=1234\n"), 0o600))
	chdir(t, nested)

	found, err := findEnvFile("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, ".env"), found)

	_, err = findEnvFile(".env.nowhere")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFindEnvFileStopsAtModuleRoot(t *testing.T) {
	outer := t.TempDir()
	module := filepath.Join(outer, "teller")
	nested := filepath.Join(module, "cmd", "cli")
	require.NoError(t, os.MkdirAll(nested, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(module, "go.mod"), []byte("module example.com/teller\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(outer, ".env"), []byte("BANK_PIN=9999\n"), 0o600))
	chdir(t, nested)

	_, err := findEnvFile(".env")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFindEnvFileOutsideModuleUsesWorkingDir(t *testing.T) {
	outer := t.TempDir()
	nested := filepath.Join(outer, "work")
	require.NoError(t, os.MkdirAll(nested, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(outer, ".env"), []byte("BANK_PIN=9999\n"), 0o600))
	chdir(t, nested)

	_, err := findEnvFile(".env")
	assert.ErrorIs(t, err, os.ErrNotExist)

	require.NoError(t, os.WriteFile(filepath.Join(nested, ".env"), []byte("BANK_PIN=1234\n"), 0o600))
	found, err := findEnvFile(".env")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(nested, ".env"), found)
}

func TestLoadIgnoresEnvFileAboveModuleRoot(t *testing.T) {
	outer := t.TempDir()
	module := filepath.Join(outer, "teller")
	require.NoError(t, os.MkdirAll(module, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(module, "go.mod"), []byte("module example.com/teller\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(outer, ".env"), []byte("BANK_PIN=9999\n"), 0o600))
	chdir(t, module)

	cfg, err := Load(".env")
	require.NoError(t, err)
	assert.Equal(t, "5050", cfg.Bank.PIN)
}

// chdir changes the working directory for the duration of the test,
// mirroring testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(prev)) })
}
