package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server ServerConfig `yaml:"server"`
	App    AppConfig    `yaml:"app"`
	Seed   SeedConfig   `yaml:"seed"`
	Redis  RedisConfig  `yaml:"redis"`
	Auth   AuthConfig   `yaml:"auth"`
	CORS   CORSConfig   `yaml:"cors"`
	Report ReportConfig `yaml:"report"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
}

type AppConfig struct {
	Environment string `yaml:"environment"`
	LogLevel    string `yaml:"log_level"`
	Version     string `yaml:"version"`
	PublicURL   string `yaml:"public_url"`
}

// SeedConfig controls the in-memory portfolio generated at startup.
// A zero RandomSeed means "seed from the clock".
type SeedConfig struct {
	Companies          int   `yaml:"companies"`
	ProjectsPerCompany int   `yaml:"projects_per_company"`
	RandomSeed         int64 `yaml:"random_seed"`
}

// RedisConfig is optional; an empty Addr keeps sessions and notifications in process.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type AuthConfig struct {
	JWTSecret    string        `yaml:"jwt_secret"`
	TokenTTL     time.Duration `yaml:"token_ttl"`
	DemoUsername string        `yaml:"demo_username"`
	DemoPassword string        `yaml:"demo_password"`
	GitHub       GitHubConfig  `yaml:"github"`
	LoginRate    float64       `yaml:"login_rate"`
	LoginBurst   int           `yaml:"login_burst"`
}

type GitHubConfig struct {
	ClientID     string `yaml:"client_id"`
	ClientSecret string `yaml:"client_secret"`
	RedirectURL  string `yaml:"redirect_url"`
}

type CORSConfig struct {
	AllowOrigins []string `yaml:"allow_origins"`
}

// ReportConfig holds the cron spec (with seconds field) for the portfolio report.
type ReportConfig struct {
	Schedule string `yaml:"schedule"`
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := defaults()

	if path := os.Getenv("DASHBOARD_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, cfg); err != nil {
			return nil, err
		}
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Port: "8080",
		},
		App: AppConfig{
			Environment: "development",
			LogLevel:    "info",
			Version:     "1.0.0",
			PublicURL:   "http://localhost:3000",
		},
		Seed: SeedConfig{
			Companies:          5,
			ProjectsPerCompany: 5,
		},
		Auth: AuthConfig{
			JWTSecret:    "dev-secret-change-me",
			TokenTTL:     24 * time.Hour,
			DemoUsername: "Jonh",
			DemoPassword: "nextauth",
			LoginRate:    1,
			LoginBurst:   5,
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"http://localhost:3000"},
		},
		Report: ReportConfig{
			Schedule: "0 0 * * * *",
		},
	}
}

func applyEnv(cfg *Config) {
	cfg.Server.Port = getEnv("PORT", cfg.Server.Port)

	cfg.App.Environment = getEnv("APP_ENV", cfg.App.Environment)
	cfg.App.LogLevel = getEnv("LOG_LEVEL", cfg.App.LogLevel)
	cfg.App.Version = getEnv("APP_VERSION", cfg.App.Version)
	cfg.App.PublicURL = strings.TrimRight(getEnv("PUBLIC_URL", cfg.App.PublicURL), "/")

	cfg.Seed.Companies = getEnvAsInt("SEED_COMPANIES", cfg.Seed.Companies)
	cfg.Seed.ProjectsPerCompany = getEnvAsInt("SEED_PROJECTS_PER_COMPANY", cfg.Seed.ProjectsPerCompany)
	cfg.Seed.RandomSeed = int64(getEnvAsInt("SEED_RANDOM", int(cfg.Seed.RandomSeed)))

	cfg.Redis.Addr = getEnv("REDIS_ADDR", cfg.Redis.Addr)
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", cfg.Redis.Password)
	cfg.Redis.DB = getEnvAsInt("REDIS_DB", cfg.Redis.DB)

	cfg.Auth.JWTSecret = getEnv("AUTH_JWT_SECRET", cfg.Auth.JWTSecret)
	cfg.Auth.TokenTTL = getEnvAsDuration("AUTH_TOKEN_TTL", cfg.Auth.TokenTTL)
	cfg.Auth.DemoUsername = getEnv("AUTH_DEMO_USERNAME", cfg.Auth.DemoUsername)
	cfg.Auth.DemoPassword = getEnv("AUTH_DEMO_PASSWORD", cfg.Auth.DemoPassword)
	cfg.Auth.GitHub.ClientID = getEnv("GITHUB_ID", cfg.Auth.GitHub.ClientID)
	cfg.Auth.GitHub.ClientSecret = getEnv("GITHUB_SECRET", cfg.Auth.GitHub.ClientSecret)
	cfg.Auth.GitHub.RedirectURL = getEnv("GITHUB_REDIRECT_URL", cfg.Auth.GitHub.RedirectURL)
	cfg.Auth.LoginRate = getEnvAsFloat("AUTH_LOGIN_RATE", cfg.Auth.LoginRate)
	cfg.Auth.LoginBurst = getEnvAsInt("AUTH_LOGIN_BURST", cfg.Auth.LoginBurst)

	if origins := os.Getenv("CORS_ALLOW_ORIGINS"); origins != "" {
		cfg.CORS.AllowOrigins = splitList(origins)
	}

	if schedule, ok := os.LookupEnv("REPORT_SCHEDULE"); ok {
		cfg.Report.Schedule = strings.TrimSpace(schedule)
	}
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Seed.Companies < 0 || c.Seed.ProjectsPerCompany < 0 {
		return fmt.Errorf("seed sizes must not be negative")
	}

	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("AUTH_JWT_SECRET is required")
	}

	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("AUTH_TOKEN_TTL must be positive")
	}

	if c.Auth.GitHub.ClientID != "" && c.Auth.GitHub.ClientSecret == "" {
		return fmt.Errorf("GITHUB_SECRET is required when GITHUB_ID is set")
	}

	return nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid number for %s, using default: %g", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid duration for %s, using default: %s", key, defaultValue)
		return defaultValue
	}

	return value
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
