package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	HTTP struct {
		Addr string
	}
	DB struct {
		Driver string
		DSN    string
	}
	Auth struct {
		Secret        string
		TokenLifetime time.Duration
	}
}

// Load reads config from environment (BMD_ prefix) and optional bookmarkd.yaml.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("BMD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetConfigName("bookmarkd")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // optional config file

	v.SetDefault("http.addr", ":8080")
	v.SetDefault("auth.token_lifetime", "15m")

	cfg := &Config{}
	cfg.HTTP.Addr = v.GetString("http.addr")
	cfg.DB.Driver = v.GetString("db.driver")
	cfg.DB.DSN = v.GetString("db.dsn")
	cfg.Auth.Secret = v.GetString("auth.secret")

	lifetime, err := time.ParseDuration(v.GetString("auth.token_lifetime"))
	if err != nil {
		return nil, fmt.Errorf("invalid BMD_AUTH_TOKEN_LIFETIME: %w", err)
	}
	cfg.Auth.TokenLifetime = lifetime

	if cfg.DB.Driver == "" {
		return nil, fmt.Errorf("BMD_DB_DRIVER is required (sqlite3, mysql, postgres)")
	}
	if cfg.DB.DSN == "" {
		return nil, fmt.Errorf("BMD_DB_DSN is required")
	}
	if cfg.Auth.Secret == "" {
		return nil, fmt.Errorf("BMD_AUTH_SECRET is required")
	}

	return cfg, nil
}
