package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	DBUrl     string
	JWTSecret string
	// AdminCredentials maps admin usernames to their secret. A secret is
	// either a bcrypt hash (recommended, see scripts/genhash.go) or a
	// plaintext password for local development.
	AdminCredentials map[string]string
	ProductName      string
	FrontendURL      string
	StaticDir        string
}

func LoadConfig() (*Config, error) {
	// .env is only present locally; in production everything comes from
	// real environment variables.
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		DBUrl:       getEnv("DATABASE_URL", ""),
		JWTSecret:   getEnv("JWT_SECRET", ""),
		ProductName: getEnv("PRODUCT_NAME", "Ralph Xpert"),
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		StaticDir:   getEnv("STATIC_DIR", "./public"),
	}

	if cfg.DBUrl == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	creds, err := parseAdminCredentials(getEnv("ADMIN_USERS", ""))
	if err != nil {
		return nil, err
	}
	cfg.AdminCredentials = creds

	return cfg, nil
}

// parseAdminCredentials parses the ADMIN_USERS variable, a comma-separated
// list of username:secret pairs. Bcrypt hashes contain no commas or colons
// beyond the separator, so a simple SplitN is enough.
func parseAdminCredentials(raw string) (map[string]string, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, fmt.Errorf("ADMIN_USERS is required (format: user:secret,user:secret)")
	}

	creds := make(map[string]string)
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		parts := strings.SplitN(pair, ":", 2)
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			return nil, fmt.Errorf("ADMIN_USERS entry %q is not user:secret", pair)
		}
		creds[parts[0]] = parts[1]
	}
	if len(creds) == 0 {
		return nil, fmt.Errorf("ADMIN_USERS contains no usable entries")
	}
	return creds, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
