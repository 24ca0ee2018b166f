package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr          string        `yaml:"addr" env:"CMS_ADDR" envDefault:":8080"`
	DataDir       string        `yaml:"data_dir" env:"CMS_DATA_DIR" envDefault:"data"`
	AuditDBPath   string        `yaml:"audit_db_path" env:"CMS_AUDIT_DB_PATH" envDefault:"audit.db"`
	JWTSecret     string        `yaml:"jwt_secret" env:"CMS_JWT_SECRET" envDefault:"supersecretkey"`
	SessionTTL    time.Duration `yaml:"session_ttl" env:"CMS_SESSION_TTL" envDefault:"168h"`
	CookieSecure  bool          `yaml:"cookie_secure" env:"CMS_COOKIE_SECURE" envDefault:"false"`
	APITimeout    time.Duration `yaml:"timeout" env:"CMS_API_TIMEOUT" envDefault:"15s"`
	AllowedOrigin string        `yaml:"allowed_origin" env:"CMS_ALLOWED_ORIGIN" envDefault:"http://localhost:3000"`

	// First-run admin seed. The default password is a deployment hazard;
	// rotate it with scripts/seed_admin.
	AdminEmail    string `yaml:"admin_email" env:"CMS_ADMIN_EMAIL" envDefault:"admin@meridianlaw.example"`
	AdminPassword string `yaml:"admin_password" env:"CMS_ADMIN_PASSWORD" envDefault:"change-me-now"`
	AdminName     string `yaml:"admin_name" env:"CMS_ADMIN_NAME" envDefault:"Site Admin"`
}

// LoadConfig resolves settings from the environment, then overlays the YAML
// file at path when one is given.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		if err := dec.Decode(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}
