package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("WORKFLOW_URL", "")
	t.Setenv("REDIS_URL", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.WorkflowOrgID)
	assert.Equal(t, "run1", cfg.WorkflowExeName)
	assert.Equal(t, time.Duration(0), cfg.WorkflowTimeout)
	assert.Equal(t, time.Minute, cfg.RateLimitWindow())
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("WORKFLOW_URL", "http://localhost:9000/workflow-exe")
	t.Setenv("WORKFLOW_TIMEOUT_SECONDS", "30")
	t.Setenv("PAGE_CACHE_SIZE", "-1")
	t.Setenv("ALLOWED_ORIGINS", "https://talentsift.example/, https://admin.talentsift.example")
	t.Setenv("COOKIE_SECURE", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9000/workflow-exe", cfg.WorkflowURL)
	assert.Equal(t, 30*time.Second, cfg.WorkflowTimeout)
	assert.Equal(t, 5000, cfg.PageCacheSize)
	assert.Equal(t, []string{"https://talentsift.example", "https://admin.talentsift.example"}, cfg.AllowedOrigins)
	assert.True(t, cfg.CookieSecure)
}
