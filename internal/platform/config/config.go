package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Addr        string
	DatabaseURL string
	JWTSecret   string
	FrontendDir string
	Environment string
	CORSOrigins []string

	SeedAdminEmail    string
	SeedAdminPassword string

	RunMigrations bool
	RunSeed       bool

	MaxBodyBytes       int64
	RateLimitPerMinute int
	MetricsEnabled     bool

	// Business defaults applied when an external source is unavailable.
	DefaultBaseSalary float64
	DefaultMobility   float64
	MinimumWage       float64
	FallbackUFValue   float64
	FallbackUTMValue  float64

	IndicadoresURL     string
	IndicadoresRefresh time.Duration
	VacationDebounce   time.Duration
	AccrualInterval    time.Duration

	DocumentDir string
}

func Load() Config {
	return Config{
		Addr:        getEnv("APP_ADDR", ":8080"),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		JWTSecret:   getEnv("JWT_SECRET", ""),
		FrontendDir: getEnv("FRONTEND_DIR", "frontend/dist"),
		Environment: getEnv("APP_ENV", "development"),
		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "http://localhost:5173")),

		SeedAdminEmail:    getEnv("SEED_ADMIN_EMAIL", ""),
		SeedAdminPassword: getEnv("SEED_ADMIN_PASSWORD", ""),

		RunMigrations: getEnvBool("RUN_MIGRATIONS", true),
		RunSeed:       getEnvBool("RUN_SEED", true),

		MaxBodyBytes:       int64(getEnvInt("MAX_BODY_BYTES", 1048576)),
		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 60),
		MetricsEnabled:     getEnvBool("METRICS_ENABLED", true),

		DefaultBaseSalary: getEnvFloat("DEFAULT_BASE_SALARY", 2050000),
		DefaultMobility:   getEnvFloat("DEFAULT_MOBILITY", 40000),
		MinimumWage:       getEnvFloat("MINIMUM_WAGE", 500000),
		FallbackUFValue:   getEnvFloat("FALLBACK_UF_VALUE", 37000),
		FallbackUTMValue:  getEnvFloat("FALLBACK_UTM_VALUE", 65000),

		IndicadoresURL:     getEnv("INDICADORES_URL", "https://mindicador.cl/api"),
		IndicadoresRefresh: getEnvDuration("INDICADORES_REFRESH", time.Hour),
		VacationDebounce:   getEnvDuration("VACATION_DEBOUNCE", 300*time.Millisecond),
		AccrualInterval:    getEnvDuration("ACCRUAL_INTERVAL", 24*time.Hour),

		DocumentDir: getEnv("DOCUMENT_DIR", "storage/finiquitos"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvFloat(key string, fallback float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.DatabaseURL) == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.Environment == "production" {
		if strings.TrimSpace(c.JWTSecret) == "" {
			return fmt.Errorf("JWT_SECRET must be set to a strong value in production")
		}
		if c.RunSeed && strings.TrimSpace(c.SeedAdminPassword) == "" {
			return fmt.Errorf("SEED_ADMIN_PASSWORD must be changed or RUN_SEED disabled in production")
		}
	}
	if c.MaxBodyBytes < 1024 {
		return fmt.Errorf("MAX_BODY_BYTES must be at least 1024")
	}
	if c.RateLimitPerMinute <= 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must be positive")
	}
	if c.DefaultBaseSalary <= 0 || c.MinimumWage <= 0 {
		return fmt.Errorf("business defaults must be positive")
	}
	if c.FallbackUFValue <= 0 {
		return fmt.Errorf("FALLBACK_UF_VALUE must be positive")
	}
	return nil
}
