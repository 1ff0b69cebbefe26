package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFromPath(t *testing.T) {
	testCases := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"run.yaml", FormatYAML, false},
		{"run.YML", FormatYAML, false},
		{"dir/run.toml", FormatTOML, false},
		{"run.json", "", true},
		{"run", "", true},
	}

	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			got, err := FormatFromPath(tc.path)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrUnknownFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParse_yaml(t *testing.T) {
	data := []byte(`
sample_size: 25
seed: 7
trials: 4
workers: 2
max_hops: 6
log_level: debug
`)

	cfg, err := Parse(data, FormatYAML)
	require.NoError(t, err)

	want := Default()
	want.SampleSize = 25
	want.Seed = 7
	want.Trials = 4
	want.Workers = 2
	want.MaxHops = 6
	want.LogLevel = "debug"
	assert.Equal(t, want, cfg)
}

func TestParse_toml(t *testing.T) {
	data := []byte(`
sample_size = 3
label_start = 200
log_format = "json"
`)

	cfg, err := Parse(data, FormatTOML)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.SampleSize)
	assert.Equal(t, 200, cfg.LabelStart)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, Default().Seed, cfg.Seed)
}

func TestParse_empty(t *testing.T) {
	cfg, err := Parse(nil, FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParse_errors(t *testing.T) {
	testCases := []struct {
		desc   string
		data   string
		format Format
	}{
		{"unknown yaml key", "sample_sizes: 3\n", FormatYAML},
		{"unknown toml key", "samples = 3\n", FormatTOML},
		{"malformed yaml", "sample_size: [\n", FormatYAML},
		{"zero sample size", "sample_size: 0\n", FormatYAML},
		{"zero trials", "trials = 0\n", FormatTOML},
		{"negative workers", "workers: -1\n", FormatYAML},
		{"negative max hops", "max_hops: -1\n", FormatYAML},
		{"invalid log level", "log_level: verbose\n", FormatYAML},
		{"invalid log format", "log_format = \"xml\"\n", FormatTOML},
		{"unknown format", "", Format("json")},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			_, err := Parse([]byte(tc.data), tc.format)
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.toml")
	require.NoError(t, os.WriteFile(path, []byte("trials = 5\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Trials)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(filepath.Join(dir, "run.ini"))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}
