package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Engine   EngineConfig
	JWT      JWTConfig
	Admin    AdminConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout        time.Duration
	PoolMaxConns          int32
	PoolMinConns          int32
	PoolMaxConnLifetime   time.Duration
	PoolMaxConnIdleTime   time.Duration
	PoolHealthCheckPeriod time.Duration
}

type EngineConfig struct {
	// ArtifactsDir holds optional JSON artifacts: fitted re-ranker, skill
	// dimension embeddings and table overrides. Empty means defaults only.
	ArtifactsDir string

	// CacheTTL bounds how long full-pipeline responses stay cached.
	CacheTTL time.Duration
}

type JWTConfig struct {
	Secret    string
	ExpiresIn time.Duration
}

type AdminConfig struct {
	Email        string
	PasswordHash string
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
	}

	cfg.Database = DatabaseConfig{
		DBHost:     opt("DB_HOST"),
		DBPort:     opt("DB_PORT"),
		DBName:     opt("DB_NAME"),
		DBUser:     opt("DB_USER"),
		DBPassword: opt("DB_PASSWORD"),
		DBSSLMode:  opt("DB_SSL_MODE"),

		ConnectTimeout:        envDuration("DB_CONNECT_TIMEOUT", 5*time.Second),
		PoolMaxConns:          envInt32("DB_POOL_MAX_CONNS", 10),
		PoolMinConns:          envInt32("DB_POOL_MIN_CONNS", 0),
		PoolMaxConnLifetime:   envDuration("DB_POOL_MAX_CONN_LIFETIME", time.Hour),
		PoolMaxConnIdleTime:   envDuration("DB_POOL_MAX_CONN_IDLE_TIME", 30*time.Minute),
		PoolHealthCheckPeriod: envDuration("DB_POOL_HEALTH_CHECK_PERIOD", time.Minute),
	}

	cfg.Engine = EngineConfig{
		ArtifactsDir: opt("ENGINE_ARTIFACTS_DIR"),
		CacheTTL:     envDuration("ENGINE_CACHE_TTL", 10*time.Minute),
	}

	cfg.JWT = JWTConfig{
		Secret:    opt("JWT_SECRET"),
		ExpiresIn: envDuration("JWT_EXPIRES_IN", 12*time.Hour),
	}

	cfg.Admin = AdminConfig{
		Email:        opt("ADMIN_EMAIL"),
		PasswordHash: opt("ADMIN_PASSWORD_HASH"),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

// envDuration reads seconds from the environment, keeping the default on
// blank or malformed input.
func envDuration(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return def
	}
	return time.Duration(v) * time.Second
}

func envInt32(key string, def int32) int32 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return def
	}
	return int32(v)
}
