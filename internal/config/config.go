package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/facturio/facturio-api/internal/helpers"
)

type Config struct {
	Stage string `mapstructure:"stage"`

	Database struct {
		Host            string        `mapstructure:"host"`
		Port            int           `mapstructure:"port"`
		User            string        `mapstructure:"user"`
		Password        string        `mapstructure:"password"`
		Name            string        `mapstructure:"name"`
		MaxConns        int32         `mapstructure:"max_conns"`
		MinConns        int32         `mapstructure:"min_conns"`
		MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"`
	} `mapstructure:"database"`

	Schedule struct {
		// Daily firing times, local "HH:MM".
		MaintenanceAt string `mapstructure:"maintenance_at"`
		GenerationAt  string `mapstructure:"generation_at"`
	} `mapstructure:"schedule"`

	Admin struct {
		Port int `mapstructure:"port"`
	} `mapstructure:"admin"`

	Resend struct {
		APIKey    string `mapstructure:"api_key"`
		FromEmail string `mapstructure:"from_email"`
		FromName  string `mapstructure:"from_name"`
	} `mapstructure:"resend"`
}

// Load reads configs/config.yaml (optional), environment variables and .env,
// in increasing order of precedence for the DB_* and RESEND_* overrides.
func Load() (*Config, error) {
	// Load .env file if exists (ignore error in production)
	godotenv.Load()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile("configs/config.yaml")
	v.AutomaticEnv()

	// Sensible defaults so the binary works without a config file.
	v.SetDefault("stage", helpers.StageLocal)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.name", "facturio")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.min_conns", 2)
	v.SetDefault("database.max_conn_lifetime", time.Hour)
	v.SetDefault("schedule.maintenance_at", "01:00")
	v.SetDefault("schedule.generation_at", "02:00")
	v.SetDefault("admin.port", 8080)
	v.SetDefault("resend.from_email", "billing@facturio.io")
	v.SetDefault("resend.from_name", "Facturio Billing")

	// Config file is optional.
	v.ReadInConfig()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	if stage := os.Getenv("STAGE"); stage != "" {
		cfg.Stage = stage
	}

	// DB_* environment variables override the file.
	if host := os.Getenv("DB_HOST"); host != "" {
		cfg.Database.Host = host
	}
	if port := os.Getenv("DB_PORT"); port != "" {
		if n, err := strconv.Atoi(port); err == nil && n > 0 {
			cfg.Database.Port = n
		}
	}
	if user := os.Getenv("DB_USER"); user != "" {
		cfg.Database.User = user
	}
	if pass := os.Getenv("DB_PASSWORD"); pass != "" {
		cfg.Database.Password = pass
	}
	if name := os.Getenv("DB_NAME"); name != "" {
		cfg.Database.Name = name
	}

	if key := os.Getenv("RESEND_API_KEY"); key != "" {
		cfg.Resend.APIKey = key
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if !helpers.IsValidStage(c.Stage) {
		return errors.Errorf("invalid stage %q", c.Stage)
	}
	if _, err := time.Parse("15:04", c.Schedule.MaintenanceAt); err != nil {
		return errors.Wrapf(err, "invalid schedule.maintenance_at %q", c.Schedule.MaintenanceAt)
	}
	if _, err := time.Parse("15:04", c.Schedule.GenerationAt); err != nil {
		return errors.Wrapf(err, "invalid schedule.generation_at %q", c.Schedule.GenerationAt)
	}
	return nil
}

// DSN builds the Postgres connection string for pgxpool.
func (c *Config) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
	)
}
