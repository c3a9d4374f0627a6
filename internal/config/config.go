package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"wellbeing-tracker/internal/logger"
	"wellbeing-tracker/internal/utils"
)

const (
	DriverCSV    = "csv"
	DriverSQLite = "sqlite"

	defaultCSVPath    = "mood_log.csv"
	defaultSQLitePath = "wellbeing.db"
)

type Config struct {
	Telegram struct {
		Token  string `yaml:"token"`
		ChatID int64  `yaml:"chat_id"`
	} `yaml:"telegram"`
	Storage struct {
		Driver string `yaml:"driver"`
		Path   string `yaml:"path"`
	} `yaml:"storage"`
	Timezone string `yaml:"timezone"`
	Reminder struct {
		Schedule string `yaml:"schedule"`
	} `yaml:"reminder"`
	Digest struct {
		Schedule string `yaml:"schedule"`
	} `yaml:"digest"`
	Session struct {
		TTL string `yaml:"ttl"`
	} `yaml:"session"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
}

// Load reads .env, then the YAML file at path (when given), then environment
// overrides. Unset fields get defaults.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{}
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.Telegram.Token = getEnv("TG_TOKEN", cfg.Telegram.Token)
	if chatID := os.Getenv("TG_CHAT_ID"); chatID != "" {
		id, err := strconv.ParseInt(chatID, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid TG_CHAT_ID %q: %w", chatID, err)
		}
		cfg.Telegram.ChatID = id
	}
	cfg.Storage.Driver = getEnv("STORAGE_DRIVER", cfg.Storage.Driver)
	cfg.Storage.Path = getEnv("STORAGE_PATH", cfg.Storage.Path)
	cfg.Timezone = getEnv("TIMEZONE", cfg.Timezone)
	cfg.Reminder.Schedule = getEnv("REMINDER_SCHEDULE", cfg.Reminder.Schedule)
	cfg.Digest.Schedule = getEnv("DIGEST_SCHEDULE", cfg.Digest.Schedule)
	cfg.Session.TTL = getEnv("SESSION_TTL", cfg.Session.TTL)
	cfg.Log.Level = getEnv("LOG_LEVEL", cfg.Log.Level)

	cfg.setDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) setDefaults() {
	if c.Storage.Driver == "" {
		c.Storage.Driver = DriverCSV
	}
	if c.Storage.Path == "" {
		c.Storage.Path = defaultCSVPath
		if c.Storage.Driver == DriverSQLite {
			c.Storage.Path = defaultSQLitePath
		}
	}
	if c.Timezone == "" {
		c.Timezone = "Local"
	}
	if c.Reminder.Schedule == "" {
		c.Reminder.Schedule = "0 18 * * *"
	}
	if c.Digest.Schedule == "" {
		c.Digest.Schedule = "0 19 * * 0"
	}
	if c.Session.TTL == "" {
		c.Session.TTL = "12h"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case DriverCSV, DriverSQLite:
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}
	if _, err := c.SessionTTL(); err != nil {
		return err
	}
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	if _, err := utils.LoadLocation(c.Timezone); err != nil {
		return err
	}
	return nil
}

// ValidateBot checks what only the bot command needs.
func (c *Config) ValidateBot() error {
	if c.Telegram.Token == "" {
		return errors.New("TG_TOKEN is not set. Set the environment variable or create a .env file")
	}
	return nil
}

func (c *Config) SessionTTL() (time.Duration, error) {
	ttl, err := time.ParseDuration(c.Session.TTL)
	if err != nil {
		return 0, fmt.Errorf("invalid session ttl %q: %w", c.Session.TTL, err)
	}
	if ttl <= 0 {
		return 0, fmt.Errorf("session ttl must be positive, got %s", ttl)
	}
	return ttl, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
