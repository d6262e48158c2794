package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/xxxsen/common/logger"
)

type Config struct {
	Port           int              `json:"port"`
	DBPath         string           `json:"db_path"`
	JWTSecret      string           `json:"jwt_secret"`
	JWTTTLHours    int              `json:"jwt_ttl_hours"`
	Production     bool             `json:"production"`
	AllowedOrigins []string         `json:"allowed_origins"`
	RateLimit      RateLimitConfig  `json:"rate_limit"`
	LogConfig      logger.LogConfig `json:"log_config"`
}

type RateLimitConfig struct {
	WindowMinutes int `json:"window_minutes"`
	MaxRequests   int `json:"max_requests"`
}

// devJWTSecret keeps local setups running without a config entry. Load
// refuses it in production mode.
const devJWTSecret = "notely-dev-secret"

func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	var cfg Config
	if err := json.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	applyEnv(&cfg)
	if cfg.Port == 0 {
		cfg.Port = 3001
	}
	if cfg.DBPath == "" {
		cfg.DBPath = "notes.db"
	}
	if cfg.JWTTTLHours == 0 {
		cfg.JWTTTLHours = 24
	}
	if cfg.RateLimit.WindowMinutes == 0 {
		cfg.RateLimit.WindowMinutes = 15
	}
	if cfg.RateLimit.MaxRequests == 0 {
		cfg.RateLimit.MaxRequests = 100
	}
	if cfg.LogConfig.Level == "" {
		cfg.LogConfig.Level = "info"
	}
	if cfg.JWTSecret == "" {
		if cfg.Production {
			return nil, fmt.Errorf("jwt_secret is required in production")
		}
		cfg.JWTSecret = devJWTSecret
	}
	return &cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("NOTELY_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Port = port
		}
	}
	if v := os.Getenv("NOTELY_DB_PATH"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("NOTELY_JWT_SECRET"); v != "" {
		cfg.JWTSecret = v
	}
	if v := os.Getenv("NOTELY_PRODUCTION"); v != "" {
		if production, err := strconv.ParseBool(v); err == nil {
			cfg.Production = production
		}
	}
	if v := os.Getenv("NOTELY_ALLOWED_ORIGINS"); v != "" {
		cfg.AllowedOrigins = strings.Split(v, ",")
	}
}
