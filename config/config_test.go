package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	data := `
exact:
  - Cargo.toml
glob:
  - "src/**/*.rs"
  - "config.{yml,yaml}"
interval: 0.5
sleep: 10
command: [make, build]
`
	path := filepath.Join(t.TempDir(), "watch.yml")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Cargo.toml"}, cfg.Exact)
	assert.Equal(t, []string{"src/**/*.rs", "config.{yml,yaml}"}, cfg.Glob)
	assert.Equal(t, 0.5, cfg.Interval)
	require.NotNil(t, cfg.Sleep)
	assert.Equal(t, 10.0, *cfg.Sleep)
	assert.Equal(t, []string{"make", "build"}, cfg.Command)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

func TestNormalizeDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.Normalize()
	assert.Equal(t, DefaultInterval, cfg.Interval)
	require.NotNil(t, cfg.Sleep)
	assert.Equal(t, DefaultInterval, *cfg.Sleep)
}

func TestNormalizeSleepFollowsInterval(t *testing.T) {
	cfg := &Config{Interval: 2.5}
	cfg.Normalize()
	require.NotNil(t, cfg.Sleep)
	assert.Equal(t, 2.5, *cfg.Sleep)
}

func TestNormalizeKeepsExplicitSleep(t *testing.T) {
	sleep := 7.0
	cfg := &Config{Interval: 2.5, Sleep: &sleep}
	cfg.Normalize()
	assert.Equal(t, 7.0, *cfg.Sleep)
}

func TestValidate(t *testing.T) {
	negative := -1.0
	tests := []struct {
		name string
		cfg  Config
		err  string
	}{
		{
			name: "ok",
			cfg:  Config{Exact: []string{"a"}, Interval: 0.1, Command: []string{"true"}},
		},
		{
			name: "no command",
			cfg:  Config{Exact: []string{"a"}, Interval: 0.1},
			err:  "no command was given",
		},
		{
			name: "no explorers",
			cfg:  Config{Interval: 0.1, Command: []string{"true"}},
			err:  "empty path discovery list",
		},
		{
			name: "bad interval",
			cfg:  Config{Exact: []string{"a"}, Interval: -0.1, Command: []string{"true"}},
			err:  "interval must be a positive number of seconds",
		},
		{
			name: "bad sleep",
			cfg:  Config{Exact: []string{"a"}, Interval: 0.1, Sleep: &negative, Command: []string{"true"}},
			err:  "sleep must be a positive number of seconds",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.cfg.Validate()
			if test.err == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, test.err)
			}
		})
	}
}
