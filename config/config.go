package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopfront/backend/internal/logger"
	"github.com/spf13/viper"
)

// Placeholder credentials used when nothing is configured
const (
	PlaceholderAccessKey    = "YOUR_ACCESS_KEY"
	PlaceholderSecretKey    = "YOUR_SECRET_KEY"
	PlaceholderAssociateTag = "YOUR_ASSOCIATE_TAG"
)

// Config holds all configuration for the application
type Config struct {
	Server ServerConfig
	Amazon AmazonConfig
	Log    LogConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// AmazonConfig holds Product Advertising API configuration
type AmazonConfig struct {
	AccessKey    string        `mapstructure:"access_key"`
	SecretKey    string        `mapstructure:"secret_key"`
	AssociateTag string        `mapstructure:"associate_tag"`
	Country      string        `mapstructure:"country"`
	Throttle     time.Duration `mapstructure:"throttle"` // minimum interval between API calls
	Timeout      time.Duration `mapstructure:"timeout"`
	Host         string        `mapstructure:"host"` // overrides the marketplace host, e.g. for a proxy
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// UsesPlaceholders reports whether any credential still has its placeholder value
func (a AmazonConfig) UsesPlaceholders() bool {
	return a.AccessKey == PlaceholderAccessKey ||
		a.SecretKey == PlaceholderSecretKey ||
		a.AssociateTag == PlaceholderAssociateTag
}

// BaseURL returns the API endpoint override, or "" to use the marketplace host
func (a AmazonConfig) BaseURL() string {
	host := strings.TrimSpace(a.Host)
	if host == "" || strings.Contains(host, "://") {
		return host
	}
	return "https://" + host
}

// Load loads configuration from .env, environment variables and config files
func Load() (*Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/shopfront/")

	v.SetEnvPrefix("SHOPFRONT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Credentials keep the variable names the deployment already uses
	bindings := map[string]string{
		"amazon.access_key":    "AMAZON_ACCESS_KEY",
		"amazon.secret_key":    "AMAZON_SECRET_KEY",
		"amazon.associate_tag": "AMAZON_ASSOCIATE_TAG",
		"amazon.country":       "AMAZON_COUNTRY",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("binding %s: %w", env, err)
		}
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// loadEnvFile reads ./.env into the process environment without overriding
// variables that are already set
func loadEnvFile() error {
	if _, err := os.Stat(".env"); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return godotenv.Load(".env")
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "5000")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:*", "http://127.0.0.1:*"})

	v.SetDefault("amazon.access_key", PlaceholderAccessKey)
	v.SetDefault("amazon.secret_key", PlaceholderSecretKey)
	v.SetDefault("amazon.associate_tag", PlaceholderAssociateTag)
	v.SetDefault("amazon.country", "co.jp")
	v.SetDefault("amazon.throttle", "1s")
	v.SetDefault("amazon.timeout", "30s")
	v.SetDefault("amazon.host", "")

	v.SetDefault("log.level", "info")
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}

	if config.Amazon.AccessKey == "" {
		return fmt.Errorf("Amazon access key is required (set AMAZON_ACCESS_KEY)")
	}
	if config.Amazon.SecretKey == "" {
		return fmt.Errorf("Amazon secret key is required (set AMAZON_SECRET_KEY)")
	}
	if config.Amazon.AssociateTag == "" {
		return fmt.Errorf("Amazon associate tag is required (set AMAZON_ASSOCIATE_TAG)")
	}
	if config.Amazon.Country == "" {
		return fmt.Errorf("Amazon country is required (set AMAZON_COUNTRY)")
	}

	if config.Amazon.Throttle < 0 {
		return fmt.Errorf("amazon throttle must not be negative, got: %s", config.Amazon.Throttle)
	}
	if config.Amazon.Timeout <= 0 {
		return fmt.Errorf("amazon timeout must be positive, got: %s", config.Amazon.Timeout)
	}

	if !logger.ValidLevel(config.Log.Level) {
		return fmt.Errorf("log level must be one of trace, debug, info, warn, error, got: %s", config.Log.Level)
	}

	return nil
}
