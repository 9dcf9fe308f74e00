package config

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string
	DBMaxConns  int

	RedisURL        string
	CatalogCacheTTL int // seconds

	CatalogSeedFile        string
	SeedDemoJobs           bool
	FeedExcludeUnavailable bool

	AuthRequired  bool
	JWTSecret     string
	JWTIssuer     string
	JWTTTLMinutes int

	LogLevel  string
	LogFormat string
}

// Load reads environment variables, optionally from envFile (".env" when
// empty) if present.
func Load(envFile string) Config {
	if envFile == "" {
		envFile = ".env"
	}
	// Missing file is fine: plain environment still applies.
	_ = godotenv.Load(envFile)

	return Config{
		Port:                   getEnv("PORT", "8080"),
		DatabaseURL:            os.Getenv("DATABASE_URL"),
		DBMaxConns:             getEnvInt("DB_MAX_CONNS", 10),
		RedisURL:               os.Getenv("REDIS_URL"),
		CatalogCacheTTL:        getEnvInt("CATALOG_CACHE_TTL_SECONDS", 300),
		CatalogSeedFile:        os.Getenv("CATALOG_SEED_FILE"),
		SeedDemoJobs:           getEnvBool("SEED_DEMO_JOBS", false),
		FeedExcludeUnavailable: getEnvBool("FEED_EXCLUDE_UNAVAILABLE", false),
		AuthRequired:           getEnvBool("AUTH_REQUIRED", false),
		JWTSecret:              getEnv("JWT_SECRET", "dev-secret-change"),
		JWTIssuer:              getEnv("JWT_ISSUER", "fundi"),
		JWTTTLMinutes:          getEnvInt("JWT_TTL_MINUTES", 60),
		LogLevel:               getEnv("LOG_LEVEL", "info"),
		LogFormat:              getEnv("LOG_FORMAT", "text"),
	}
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error
	if n, err := strconv.Atoi(c.Port); err != nil || n <= 0 || n > 65535 {
		errs = append(errs, errors.New("PORT must be a number in 1..65535"))
	}
	if c.DBMaxConns <= 0 {
		errs = append(errs, errors.New("DB_MAX_CONNS must be positive"))
	}
	if c.CatalogCacheTTL <= 0 {
		errs = append(errs, errors.New("CATALOG_CACHE_TTL_SECONDS must be positive"))
	}
	if c.JWTTTLMinutes <= 0 {
		errs = append(errs, errors.New("JWT_TTL_MINUTES must be positive"))
	}
	if c.AuthRequired && strings.TrimSpace(c.JWTSecret) == "" {
		errs = append(errs, errors.New("JWT_SECRET is required when AUTH_REQUIRED is set"))
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		errs = append(errs, errors.New("LOG_FORMAT must be text or json"))
	}
	return errors.Join(errs...)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
