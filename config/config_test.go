package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/ralph")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("ADMIN_USERS", "admin:pass, ralph:ralph2025")

	cfg, err := LoadConfig()
	assert.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, map[string]string{
		"admin": "pass",
		"ralph": "ralph2025",
	}, cfg.AdminCredentials)
}

func TestLoadConfigFatalWithoutStore(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("ADMIN_USERS", "admin:pass")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestParseAdminCredentials(t *testing.T) {
	t.Run("Should reject an empty table", func(t *testing.T) {
		_, err := parseAdminCredentials("  ")
		assert.Error(t, err)
	})

	t.Run("Should reject entries without a secret", func(t *testing.T) {
		_, err := parseAdminCredentials("admin")
		assert.Error(t, err)
	})

	t.Run("Should keep colons inside bcrypt-free secrets intact", func(t *testing.T) {
		creds, err := parseAdminCredentials("admin:pa:ss")
		assert.NoError(t, err)
		assert.Equal(t, "pa:ss", creds["admin"])
	})
}
