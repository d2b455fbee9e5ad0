package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for name, input := range map[string]*strings.Reader{
		"empty":      strings.NewReader(""),
		"whitespace": strings.NewReader("\n  \n"),
	} {
		t.Run(name, func(t *testing.T) {
			cfg, err := Load(input)
			require.NoError(t, err)
			assert.Equal(t, Default(), cfg)
		})
	}

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.True(t, cfg.UseStdout())
}

func TestLoad_Overrides(t *testing.T) {
	input := `
corpora_dir: /data/corpora
output: results.csv
header: true
families: [zstd, brotli]
compression_only: true
log_level: debug
`
	cfg, err := Load(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, "/data/corpora", cfg.CorporaDir)
	assert.Equal(t, "results.csv", cfg.Output)
	assert.False(t, cfg.UseStdout())
	assert.True(t, cfg.Header)
	assert.Equal(t, []string{"zstd", "brotli"}, cfg.Families)
	assert.True(t, cfg.CompressionOnly)

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	cfg, err := Load(strings.NewReader("header: true\n"))
	require.NoError(t, err)
	assert.True(t, cfg.Header)
	assert.Equal(t, "corpora", cfg.CorporaDir)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "unknown key", input: "corpus_dir: x\n", want: "corpus_dir"},
		{name: "bad yaml", input: "families: [zstd\n", want: "failed to unmarshal config yaml"},
		{name: "bad level", input: "log_level: loud\n", want: `invalid log_level "loud"`},
		{name: "empty dir", input: "corpora_dir: \"\"\n", want: "corpora_dir must not be empty"},
		{name: "empty family", input: "families: [zstd, \"\"]\n", want: "families[1] must not be empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "compbench.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: out.csv\n"), 0o600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "out.csv", cfg.Output)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "missing.yaml")
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := &Config{CorporaDir: " ", LogLevel: "nope"}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "corpora_dir")
	assert.Contains(t, err.Error(), "log_level")
}
