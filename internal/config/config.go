package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. IDENTITY_HOST
// or IDENTITY_AUTH_SIGNING_KEY.
const EnvPrefix = "IDENTITY"

// Config holds settings for identityctl and identity-stub.
type Config struct {
	Host     string        // base host the client composes endpoints under
	LogLevel string        // debug | info | warn | error
	Timeout  time.Duration // per-call deadline imposed by the CLI
	Port     string        // stub listen port
	DB       DBConfig
	Auth     AuthConfig
}

// DBConfig contains the stub's user store settings.
type DBConfig struct {
	Path string // SQLite database file path
}

// AuthConfig contains the stub's token settings.
type AuthConfig struct {
	SigningKey string
	TokenTTL   time.Duration
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("host", "http://localhost:8080")
	v.SetDefault("log_level", "info")
	v.SetDefault("timeout", "10s")
	v.SetDefault("port", "8080")
	v.SetDefault("db.path", "identity.db")
	v.SetDefault("auth.signing_key", "")
	v.SetDefault("auth.token_ttl", "1h")
}

// Load reads config.yml from the first of paths that has one, then applies
// IDENTITY_* environment overrides. A missing file is not an error.
func Load(paths ...string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if len(paths) > 0 {
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	cfg := &Config{
		Host:     v.GetString("host"),
		LogLevel: v.GetString("log_level"),
		Timeout:  v.GetDuration("timeout"),
		Port:     v.GetString("port"),
		DB: DBConfig{
			Path: v.GetString("db.path"),
		},
		Auth: AuthConfig{
			SigningKey: v.GetString("auth.signing_key"),
			TokenTTL:   v.GetDuration("auth.token_ttl"),
		},
	}
	if cfg.Timeout <= 0 {
		return nil, fmt.Errorf("timeout must be positive, got %q", v.GetString("timeout"))
	}
	return cfg, nil
}

// String returns a printable form with the signing key masked.
func (c *Config) String() string {
	return fmt.Sprintf("Config{Host: %s, Timeout: %s, Port: %s, DB: %s, Auth: *** (masked) ***}",
		c.Host, c.Timeout, c.Port, c.DB.Path)
}
