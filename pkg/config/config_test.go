package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsNeedASecret(t *testing.T) {
	cfg := Defaults()
	assert.Error(t, cfg.Validate())

	cfg.Session.Secret = "s"
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, 10, cfg.Dashboard.PerPage)
	assert.Equal(t, "dashboard_session", cfg.Session.CookieName)
}

func TestNew_YAMLThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
payment_api:
  base_url: http://payments.internal
  timeout: 5s
session:
  store: memory
  secret: from-yaml
dashboard:
  per_page: 25
`), 0o600))

	t.Setenv("CONFIG_FILE", path)
	t.Setenv("PAYMENT_API_URL", "http://override.internal/")
	t.Setenv("DASHBOARD_PER_PAGE", "not-a-number")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, ,http://b.test")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "http://override.internal", cfg.PaymentAPI.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.PaymentAPI.Timeout)
	assert.Equal(t, "memory", cfg.Session.Store)
	assert.Equal(t, "from-yaml", cfg.Session.Secret)
	assert.Equal(t, 25, cfg.Dashboard.PerPage)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.CORSOrigins)
}

func TestValidate_RejectsUnknownStore(t *testing.T) {
	cfg := Defaults()
	cfg.Session.Secret = "s"
	cfg.Session.Store = "file"
	assert.Error(t, cfg.Validate())

	cfg.Session.Store = "memory"
	cfg.Dashboard.PerPage = 0
	assert.Error(t, cfg.Validate())
}
