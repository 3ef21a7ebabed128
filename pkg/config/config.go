package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	// Server
	Port string `mapstructure:"PORT"`
	Env  string `mapstructure:"ENV"`

	// Database (player board store)
	DatabaseURL string `mapstructure:"DATABASE_URL"`

	// Redis (recommendation cache)
	RedisURL            string `mapstructure:"REDIS_URL"`
	CacheEnabled        bool   `mapstructure:"CACHE_ENABLED"`
	CacheExpirationSecs int    `mapstructure:"CACHE_EXPIRATION"`

	// CORS
	CorsOrigins []string `mapstructure:"CORS_ORIGINS"`

	// Rate limiting
	RateLimitRPS   float64 `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst int     `mapstructure:"RATE_LIMIT_BURST"`

	// Value estimator
	ModelPath       string `mapstructure:"MODEL_PATH"`
	RetrainSchedule string `mapstructure:"RETRAIN_SCHEDULE"`

	// Scoring weights. Defaults match the engine's published constants;
	// they are exposed here so leagues can recalibrate without a rebuild.
	ValueWeight    float64 `mapstructure:"VALUE_WEIGHT"`
	NeedWeight     float64 `mapstructure:"NEED_WEIGHT"`
	RiskWeight     float64 `mapstructure:"RISK_WEIGHT"`
	HandcuffWeight float64 `mapstructure:"HANDCUFF_WEIGHT"`
	RoundWeight    float64 `mapstructure:"ROUND_WEIGHT"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("DATABASE_URL", "gridiron.db")
	viper.SetDefault("REDIS_URL", "redis://localhost:6379/0")
	viper.SetDefault("CACHE_ENABLED", false)
	viper.SetDefault("CACHE_EXPIRATION", 300) // seconds
	viper.SetDefault("CORS_ORIGINS", "http://localhost:5173,http://localhost:3000")
	viper.SetDefault("RATE_LIMIT_RPS", 10.0)
	viper.SetDefault("RATE_LIMIT_BURST", 20)
	viper.SetDefault("MODEL_PATH", "models/draft_models.json")
	viper.SetDefault("RETRAIN_SCHEDULE", "") // empty disables scheduled retrains
	viper.SetDefault("VALUE_WEIGHT", 0.4)
	viper.SetDefault("NEED_WEIGHT", 0.4)
	viper.SetDefault("RISK_WEIGHT", 0.1)
	viper.SetDefault("HANDCUFF_WEIGHT", 0.05)
	viper.SetDefault("ROUND_WEIGHT", 0.05)

	// Read from environment
	viper.AutomaticEnv()

	// Read config file if exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Parse CORS origins from comma-separated string
	if corsStr := viper.GetString("CORS_ORIGINS"); corsStr != "" {
		config.CorsOrigins = strings.Split(corsStr, ",")
	}

	return &config, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
