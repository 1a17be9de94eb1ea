package config

import (
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cerr "github.com/saeidalz13/battleship-board/internal/error"
	mb "github.com/saeidalz13/battleship-board/models/battleship"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, StageDev, cfg.Stage)
	assert.Equal(t, LogFlagsStd, cfg.Log.Flags)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, "127.0.0.1:9191", cfg.Metrics.Addr)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("BATTLESHIP_STAGE", StageProd)
	t.Setenv("BATTLESHIP_METRICS_ENABLED", "true")
	t.Setenv("BATTLESHIP_METRICS_ADDR", "0.0.0.0:9999")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, StageProd, cfg.Stage)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "0.0.0.0:9999", cfg.Metrics.Addr)
}

func TestLoadConfig_File(t *testing.T) {
	path := writeFile(t, "battleship.yaml", `
stage: prod
log:
  prefix: "[game] "
  flags: micro
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, StageProd, cfg.Stage)
	assert.Equal(t, "[game] ", cfg.Log.Prefix)
	assert.Equal(t, LogFlagsMicro, cfg.Log.Flags)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "stage", env: map[string]string{"BATTLESHIP_STAGE": "staging"}},
		{name: "log flags", env: map[string]string{"BATTLESHIP_LOG_FLAGS": "verbose"}},
		{name: "metrics addr", env: map[string]string{"BATTLESHIP_METRICS_ADDR": "nowhere"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			for k, v := range test.env {
				t.Setenv(k, v)
			}

			_, err := LoadConfig("")
			assert.ErrorContains(t, err, "invalid configuration")
		})
	}
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestSetupLogger(t *testing.T) {
	defer func(prefix string, flags int) {
		log.SetPrefix(prefix)
		log.SetFlags(flags)
	}(log.Prefix(), log.Flags())

	cfg := &Config{Log: LogConfig{Prefix: "test ", Flags: LogFlagsNone}}
	cfg.SetupLogger()

	assert.Equal(t, "test ", log.Prefix())
	assert.Equal(t, 0, log.Flags())
}

func TestLoadPlacements(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		content  string
		expected []mb.Placement
	}{
		{
			name: "yaml",
			file: "fleet.yaml",
			content: `
ships:
  - start: {row: 0, column: 0}
    end: {row: 0, column: 3}
  - start: {row: 9, column: 9}
    end: {row: 9, column: 9}
`,
			expected: []mb.Placement{
				mb.NewPlacement(mb.NewCoordinates(0, 0), mb.NewCoordinates(0, 3)),
				mb.NewPlacement(mb.NewCoordinates(9, 9), mb.NewCoordinates(9, 9)),
			},
		},
		{
			name:    "json",
			file:    "fleet.json",
			content: `{"ships": [{"start": {"row": 2, "column": 2}, "end": {"row": 2, "column": 3}}]}`,
			expected: []mb.Placement{
				mb.NewPlacement(mb.NewCoordinates(2, 2), mb.NewCoordinates(2, 3)),
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			placements, err := LoadPlacements(writeFile(t, test.file, test.content))
			require.NoError(t, err)
			assert.Equal(t, test.expected, placements)
		})
	}
}

func TestLoadPlacements_Invalid(t *testing.T) {
	t.Run("out of grid", func(t *testing.T) {
		path := writeFile(t, "fleet.yaml", `
ships:
  - start: {row: 0, column: 0}
    end: {row: 0, column: 10}
`)
		_, err := LoadPlacements(path)
		assert.ErrorContains(t, err, "invalid fleet file")
	})

	t.Run("empty", func(t *testing.T) {
		_, err := LoadPlacements(writeFile(t, "fleet.yaml", "ships: []\n"))
		require.Error(t, err)
		assert.Equal(t, cerr.ErrEmptyPlacements().Error(), err.Error())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadPlacements(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}
