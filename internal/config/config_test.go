package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/trackline/internal/timeline"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, timeline.ViewMonthly, cfg.ViewMode())
	assert.Equal(t, timeline.DefaultConfig(), cfg.TimelineConfig())
	assert.Equal(t, timeline.DefaultConstraints(), cfg.Constraints())
}

func TestLoad_FullFile(t *testing.T) {
	path := writeConfig(t, `
db_path: /tmp/custom.db
view:
  mode: weekly
  snap_to_grid: false
optimizer:
  balancing: false
  max_passes: 5
  target_efficiency: 0.9
resize:
  min_duration_days: 2
  max_duration_days: 90
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/custom.db", cfg.DBPath)
	assert.Equal(t, timeline.ViewWeekly, cfg.ViewMode())

	tc := cfg.TimelineConfig()
	assert.True(t, tc.Compaction)
	assert.False(t, tc.Balancing)
	assert.Equal(t, 5, tc.MaxPasses)
	assert.InDelta(t, 0.9, tc.TargetEfficiency, 1e-9)

	con := cfg.Constraints()
	assert.Equal(t, 2, con.MinDurationDays)
	assert.Equal(t, 90, con.MaxDurationDays)
	assert.False(t, con.SnapToGrid)
}

func TestLoad_RejectsUnknownViewMode(t *testing.T) {
	path := writeConfig(t, "view:\n  mode: hourly\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown view mode "hourly"`)
}

func TestLoad_RejectsNegativePasses(t *testing.T) {
	path := writeConfig(t, "optimizer:\n  max_passes: -1\n")
	_, err := Load(path)
	require.Error(t, err)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "view: [unclosed\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}
