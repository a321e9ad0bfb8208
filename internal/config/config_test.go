package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/shapecalc/internal/config"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newFlags mirrors the persistent flags registered by the CLI.
func newFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("config", "", "")
	fs.StringP("output", "o", config.DefaultOutput, "")
	fs.Int("precision", config.DefaultPrecision, "")
	fs.String("log-mode", config.DefaultLogMode, "")
	fs.String("log-level", config.DefaultLogLevel, "")

	return fs
}

// clearEnv unsets every SHAPECALC_ override for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"OUTPUT", "PRECISION", "LOG_MODE", "LOG_LEVEL"} {
		t.Setenv(config.EnvPrefix+k, "")
		require.NoError(t, os.Unsetenv(config.EnvPrefix+k))
	}
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "shapecalc.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))

	return p
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := config.Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, config.OutputTable, cfg.Output)
	assert.Equal(t, 4, cfg.Precision)
	assert.Equal(t, "dev", cfg.Log.Mode)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Empty(t, cfg.File)
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	p := writeFile(t, "output: json\nprecision: 2\nlog:\n  mode: prod\n  level: info\n")

	cfg, err := config.Load(p, nil)
	require.NoError(t, err)

	assert.Equal(t, config.OutputJSON, cfg.Output)
	assert.Equal(t, 2, cfg.Precision)
	assert.Equal(t, "prod", cfg.Log.Mode)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, p, cfg.File)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	p := writeFile(t, "output: json\nprecision: 2\n")
	t.Setenv("SHAPECALC_PRECISION", "6")
	t.Setenv("SHAPECALC_LOG_LEVEL", "debug")

	cfg, err := config.Load(p, nil)
	require.NoError(t, err)

	assert.Equal(t, config.OutputJSON, cfg.Output)
	assert.Equal(t, 6, cfg.Precision)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("SHAPECALC_OUTPUT", "json")
	fs := newFlags()
	require.NoError(t, fs.Parse([]string{"-o", "plain", "--log-mode", "prod"}))

	cfg, err := config.Load("", fs)
	require.NoError(t, err)

	assert.Equal(t, config.OutputPlain, cfg.Output)
	assert.Equal(t, "prod", cfg.Log.Mode)
	assert.Equal(t, 4, cfg.Precision, "unchanged flags keep lower layers")
}

func TestLoad_Invalid(t *testing.T) {
	clearEnv(t)
	tests := []struct {
		name string
		args []string
	}{
		{"bad output", []string{"-o", "xml"}},
		{"negative precision", []string{"--precision", "-1"}},
		{"precision too large", []string{"--precision", "16"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fs := newFlags()
			require.NoError(t, fs.Parse(tc.args))

			_, err := config.Load("", fs)
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	assert.Error(t, err)
}
