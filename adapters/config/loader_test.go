package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/seam/adapters/config"
	"go.trai.ch/seam/domain"
)

// writeSettings writes content as seam.yaml in dir and returns its path.
func writeSettings(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, config.FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoader_LoadFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    config.Settings
		wantErr error
	}{
		{
			name:    "empty file keeps defaults",
			content: "",
			want:    config.DefaultSettings(),
		},
		{
			name: "full settings",
			content: `
cache:
  enabled: false
log:
  level: debug
  json: true
telemetry:
  enabled: true
`,
			want: config.Settings{
				Cache:     config.CacheSettings{Enabled: false},
				Log:       config.LogSettings{Level: "debug", JSON: true},
				Telemetry: config.TelemetrySettings{Enabled: true},
			},
		},
		{
			name: "partial settings keep remaining defaults",
			content: `
log:
  level: warn
`,
			want: config.Settings{
				Cache: config.CacheSettings{Enabled: true},
				Log:   config.LogSettings{Level: "warn"},
			},
		},
		{
			name: "invalid level rejected",
			content: `
log:
  level: loud
`,
			wantErr: domain.ErrInvalidLogLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeSettings(t, t.TempDir(), tt.content)

			got, err := config.NewLoader(nil).LoadFile(path)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoader_Discover(t *testing.T) {
	t.Run("finds file in parent directory", func(t *testing.T) {
		root := t.TempDir()
		path := writeSettings(t, root, "")
		nested := filepath.Join(root, "a", "b")
		require.NoError(t, os.MkdirAll(nested, 0o755))

		got, err := config.NewLoader(nil).Discover(nested)
		require.NoError(t, err)
		assert.Equal(t, path, got)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := config.NewLoader(nil).Discover(t.TempDir())
		require.ErrorIs(t, err, domain.ErrConfigNotFound)
	})
}

func TestLoader_Load_DefaultsWhenAbsent(t *testing.T) {
	got, err := config.NewLoader(nil).Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, config.DefaultSettings(), got)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{in: "debug"},
		{in: "info"},
		{in: ""},
		{in: "warn"},
		{in: "error"},
		{in: "verbose", wantErr: true},
	}

	for _, tt := range tests {
		t.Run("level "+tt.in, func(t *testing.T) {
			_, err := config.ParseLevel(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidLogLevel)
				return
			}
			assert.NoError(t, err)
		})
	}
}
