package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const dotenvFile = ".env"

type Config struct {
	RunAddress    string        `env:"RUN_ADDRESS"`
	DatabaseDSN   string        `env:"DATABASE_URI"`
	MigrationsDir string        `env:"MIGRATIONS_DIR"`
	APIKey        string        `env:"API_KEY"`
	QuoteAPIURL   string        `env:"QUOTE_API_URL"`
	JWTUserSecret string        `env:"JWT_SECRET"`
	RedisAddr     string        `env:"REDIS_ADDR"`
	QuoteCacheTTL time.Duration `env:"QUOTE_CACHE_TTL"`
}

// String скрывает секреты при выводе конфига в лог.
func (c Config) String() string {
	return fmt.Sprintf(
		"{RunAddress:%s MigrationsDir:%s QuoteAPIURL:%s RedisAddr:%s QuoteCacheTTL:%s}",
		c.RunAddress, c.MigrationsDir, c.QuoteAPIURL, c.RedisAddr, c.QuoteCacheTTL,
	)
}

func LoadConfig() (*Config, error) {
	if err := loadDotenv(dotenvFile); err != nil {
		return nil, err
	}

	var flagsConfig, envConfig Config

	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	loadFlags(&flagsConfig)

	conf := mergeConfig(&envConfig, &flagsConfig)
	if err := validate(conf); err != nil {
		return nil, err
	}
	return conf, nil
}

func MustLoadConfig() *Config {
	config, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return config
}

// loadDotenv подгружает переменные из файла, если он есть. Уже выставленные переменные окружения
// не перезаписываются.
func loadDotenv(path string) error {
	if _, statErr := os.Stat(path); statErr != nil {
		return nil //nolint:nilerr
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %s", path, err.Error())
	}
	return nil
}

func loadFlags(flagConfig *Config) {
	flag.StringVar(&flagConfig.RunAddress, "a", "localhost:8080", "Run address in format host:port")
	flag.StringVar(&flagConfig.DatabaseDSN, "d", "", "Database DSN")
	flag.StringVar(&flagConfig.MigrationsDir, "m", "internal/db/migrations", "Database migrations directory")
	flag.StringVar(&flagConfig.APIKey, "k", "", "Quote API key")
	flag.StringVar(&flagConfig.QuoteAPIURL, "q", "https://cloud.iexapis.com", "Quote API base URL")
	flag.StringVar(&flagConfig.JWTUserSecret, "j", "", "Secret for session tokens")
	flag.StringVar(&flagConfig.RedisAddr, "r", "", "Redis address for the quote cache")
	flag.DurationVar(&flagConfig.QuoteCacheTTL, "t", 0, "Quote cache TTL, 0 disables caching")

	flag.Parse()
}

func validate(conf *Config) error {
	if conf.DatabaseDSN == "" {
		return errors.New("database DSN is not set")
	}
	if conf.APIKey == "" {
		return errors.New("API_KEY is not set")
	}
	if conf.JWTUserSecret == "" {
		return errors.New("JWT secret is not set")
	}
	return nil
}

func mergeConfig(envConfig, flagsConfig *Config) *Config {
	ttl := envConfig.QuoteCacheTTL
	if ttl == 0 {
		ttl = flagsConfig.QuoteCacheTTL
	}
	return &Config{
		RunAddress:    defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress),
		DatabaseDSN:   defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN),
		MigrationsDir: defaultIfBlank(envConfig.MigrationsDir, flagsConfig.MigrationsDir),
		APIKey:        defaultIfBlank(envConfig.APIKey, flagsConfig.APIKey),
		QuoteAPIURL:   defaultIfBlank(envConfig.QuoteAPIURL, flagsConfig.QuoteAPIURL),
		JWTUserSecret: defaultIfBlank(envConfig.JWTUserSecret, flagsConfig.JWTUserSecret),
		RedisAddr:     defaultIfBlank(envConfig.RedisAddr, flagsConfig.RedisAddr),
		QuoteCacheTTL: ttl,
	}
}

func defaultIfBlank(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
