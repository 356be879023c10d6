package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	PageSize     int
	CurrencyTag  string `mapstructure:"CURRENCY_LOCALE"`
	IsProduction bool
	LogLevel     string `mapstructure:"LOG_LEVEL"`
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PAGE_SIZE", 20)
	viper.SetDefault("CURRENCY_LOCALE", "pt-BR")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("LOG_LEVEL", "info")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.PageSize = viper.GetInt("PAGE_SIZE")
	if cfg.PageSize <= 0 {
		cfg.PageSize = 20
		log.Printf("Warning: Invalid value for PAGE_SIZE. Defaulting to %d.\n", cfg.PageSize)
	}

	cfg.CurrencyTag = viper.GetString("CURRENCY_LOCALE")
	if cfg.CurrencyTag == "" {
		cfg.CurrencyTag = "pt-BR"
		log.Printf("Warning: CURRENCY_LOCALE not set. Defaulting to %s.\n", cfg.CurrencyTag)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.LogLevel = viper.GetString("LOG_LEVEL")

	return cfg, nil
}
