package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPlanLimitsMissingFileYieldsDefaults(t *testing.T) {
	limits, err := LoadPlanLimits(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 14, limits.TrialDays)
	assert.Equal(t, 10, limits.FreeSearchCap)
	assert.Equal(t, 50, limits.FreeCrawlerCap)
}

func TestLoadPlanLimitsParsesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plans.yaml")
	content := "trialDays: 7\nfreeSearchCap: 25\nfreeCrawlerCap: 100\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	limits, err := LoadPlanLimits(path)
	require.NoError(t, err)

	assert.Equal(t, 7, limits.TrialDays)
	assert.Equal(t, 25, limits.FreeSearchCap)
	assert.Equal(t, 100, limits.FreeCrawlerCap)
}

func TestLoadPlanLimitsRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plans.yaml")
	require.NoError(t, os.WriteFile(path, []byte("trialDays: [broken"), 0o644))

	_, err := LoadPlanLimits(path)
	assert.Error(t, err)
}

func TestLoadPlanLimitsClampsNonPositiveValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plans.yaml")
	require.NoError(t, os.WriteFile(path, []byte("trialDays: 0\nfreeSearchCap: -1\n"), 0o644))

	limits, err := LoadPlanLimits(path)
	require.NoError(t, err)

	assert.Equal(t, 14, limits.TrialDays)
	assert.Equal(t, 10, limits.FreeSearchCap)
}
