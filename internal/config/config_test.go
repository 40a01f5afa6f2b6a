package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-vecbench/bench"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestLoadDefaults(t *testing.T) {
	v, err := New(newFlags(t))
	require.NoError(t, err)

	cfg, err := Load(v, "")
	require.NoError(t, err)

	assert.Equal(t, bench.DefaultSize, cfg.Size)
	assert.Equal(t, []string{"add", "multiply"}, cfg.Ops)
	assert.Equal(t, 1, cfg.Repeat)
	assert.Equal(t, 0, cfg.Workers)
	assert.Equal(t, "text", cfg.Format)
	assert.Equal(t, "auto", cfg.Color)
	assert.False(t, cfg.Verify)
}

func TestLoadFlags(t *testing.T) {
	v, err := New(newFlags(t,
		"--size", "5",
		"--op", "MUL",
		"--repeat", "3",
		"--workers", "2",
		"--memory-limit", "1048576",
		"--verify",
		"--format", "json",
	))
	require.NoError(t, err)

	cfg, err := Load(v, "")
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Size)
	assert.Equal(t, []string{"mul"}, cfg.Ops)
	assert.Equal(t, 3, cfg.Repeat)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, uint64(1048576), cfg.MemoryLimit)
	assert.True(t, cfg.Verify)
	assert.Equal(t, "json", cfg.Format)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("VECBENCH_SIZE", "1234")
	t.Setenv("VECBENCH_REPEAT", "4")
	t.Setenv("VECBENCH_LOG_LEVEL", "debug")

	v, err := New(newFlags(t))
	require.NoError(t, err)

	cfg, err := Load(v, "")
	require.NoError(t, err)
	assert.Equal(t, 1234, cfg.Size)
	assert.Equal(t, 4, cfg.Repeat)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestFlagOverridesEnv(t *testing.T) {
	t.Setenv("VECBENCH_SIZE", "1234")

	v, err := New(newFlags(t, "--size", "10"))
	require.NoError(t, err)

	cfg, err := Load(v, "")
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Size)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vecbench.yaml")
	require.NoError(t, os.WriteFile(path, []byte("size: 77\nops: [add]\nrepeat: 2\n"), 0o600))

	v, err := New(newFlags(t))
	require.NoError(t, err)

	cfg, err := Load(v, path)
	require.NoError(t, err)
	assert.Equal(t, 77, cfg.Size)
	assert.Equal(t, []string{"add"}, cfg.Ops)
	assert.Equal(t, 2, cfg.Repeat)
}

func TestLoadMissingConfigFile(t *testing.T) {
	v, err := New(newFlags(t))
	require.NoError(t, err)

	_, err = Load(v, filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := map[string][]string{
		"zero size":   {"--size", "0"},
		"bad op":      {"--op", "div"},
		"zero repeat": {"--repeat", "0"},
		"neg workers": {"--workers", "-1"},
		"bad format":  {"--format", "xml"},
		"bad color":   {"--color", "sometimes"},
	}

	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			v, err := New(newFlags(t, args...))
			require.NoError(t, err)

			_, err = Load(v, "")
			require.Error(t, err)
			assert.Contains(t, err.Error(), "config: invalid")
		})
	}
}
