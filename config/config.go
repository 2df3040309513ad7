package config

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

type Config struct {
	HTTPPort        string        `envconfig:"HTTP_PORT"          default:":8080"`
	GrpcPort        string        `envconfig:"GRPC_PORT"          default:":50051"` // health checks
	DatabaseURL     string        `envconfig:"DATABASE_URL"       required:"true"`
	LogLevel        string        `envconfig:"LOG_LEVEL"          default:"info"`
	LogFormat       string        `envconfig:"LOG_FORMAT"         default:"json"`
	GinMode         string        `envconfig:"GIN_MODE"           default:"release"`
	SessionTTL      time.Duration `envconfig:"SESSION_TTL"        default:"168h"`
	DBTimeout       time.Duration `envconfig:"DB_CONNECT_TIMEOUT" default:"5s"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT"   default:"10s"`

	AccountDeletionURL     string        `envconfig:"ACCOUNT_DELETION_URL"`
	AccountDeletionToken   string        `envconfig:"ACCOUNT_DELETION_TOKEN"`
	AccountDeletionTimeout time.Duration `envconfig:"ACCOUNT_DELETION_TIMEOUT" default:"10s"`

	// Comma separated; these accounts can read the waitlist.
	AdminEmails []string `envconfig:"ADMIN_EMAILS"`
}

var (
	config Config
	once   sync.Once
)

// LoadConfig reads .env (if present) and the environment once per process.
// A missing DATABASE_URL is fatal.
func LoadConfig(logger *logrus.Logger) *Config {
	once.Do(func() {
		err := godotenv.Load()
		if err != nil && !os.IsNotExist(err) {
			logger.Warnf("Error loading .env file (but continuing): %v", err)
		} else if err == nil {
			logger.Info("Loaded configuration from .env file")
		}

		cfg, err := Load()
		if err != nil {
			logger.Fatalf("Failed to process configuration from environment variables: %v", err)
		}
		config = *cfg

		logger.Infof("Configuration loaded: HTTP Port=%s, GRPC Port=%s, LogLevel=%s", config.HTTPPort, config.GrpcPort, config.LogLevel)
		if len(config.AdminEmails) == 0 {
			logger.Warn("Configuration loaded: ADMIN_EMAILS is not set, waitlist dashboards are closed to everyone")
		}
		if config.AccountDeletionURL == "" {
			logger.Warn("Configuration loaded: ACCOUNT_DELETION_URL is not set, accounts are deleted locally only")
		}
	})
	return &config
}

// Load processes the environment without touching .env or the cached config.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL cannot be empty")
	}
	if cfg.SessionTTL <= 0 {
		return nil, fmt.Errorf("SESSION_TTL must be positive, got %s", cfg.SessionTTL)
	}
	switch cfg.LogFormat {
	case "json", "text":
	default:
		return nil, fmt.Errorf("LOG_FORMAT must be json or text, got %q", cfg.LogFormat)
	}
	return &cfg, nil
}
