package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Store     StoreConfig     `mapstructure:"store"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Auth      AuthConfig      `mapstructure:"auth"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

type ServerConfig struct {
	Port           int           `mapstructure:"port"`
	ReadTimeout    time.Duration `mapstructure:"read_timeout"`
	WriteTimeout   time.Duration `mapstructure:"write_timeout"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

// DatabaseConfig describes the Postgres connection. When URL is set it is
// used as the DSN verbatim and the discrete fields are ignored.
type DatabaseConfig struct {
	URL      string `mapstructure:"url"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
}

// StoreConfig selects the store adapter once at process start. Mode is
// "postgres", "memory" or "auto"; auto falls back to the seeded in-memory
// store when Postgres is unreachable.
type StoreConfig struct {
	Mode     string        `mapstructure:"mode"`
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

type RedisConfig struct {
	URL string `mapstructure:"url"`
}

// AuthConfig guards mutating routes when a secret is configured.
type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret"`
}

type RateLimitConfig struct {
	RPS   float64 `mapstructure:"rps"`
	Burst int     `mapstructure:"burst"`
}

// Env holds deploy-time overrides applied on top of the config file.
type Env struct {
	Port        int    `envconfig:"PORT"`
	DatabaseURL string `envconfig:"DATABASE_URL"`
	StoreMode   string `envconfig:"STORE_MODE"`
	RedisURL    string `envconfig:"REDIS_URL"`
	JWTSecret   string `envconfig:"JWT_SECRET"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 10*time.Second)
	viper.SetDefault("server.write_timeout", 10*time.Second)
	viper.SetDefault("server.request_timeout", 30*time.Second)
	viper.SetDefault("store.mode", "auto")
	viper.SetDefault("store.cache_ttl", 30*time.Second)
	viper.SetDefault("rate_limit.rps", 50)
	viper.SetDefault("rate_limit.burst", 100)

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	var env Env
	if err := envconfig.Process("agenda", &env); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}
	if env.Port != 0 {
		config.Server.Port = env.Port
	}
	if env.DatabaseURL != "" {
		config.Database.URL = env.DatabaseURL
	}
	if env.StoreMode != "" {
		config.Store.Mode = env.StoreMode
	}
	if env.RedisURL != "" {
		config.Redis.URL = env.RedisURL
	}
	if env.JWTSecret != "" {
		config.Auth.JWTSecret = env.JWTSecret
	}

	return &config, nil
}
