package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultEnvFile   = "conf.env"
	DefaultLogFile   = "preview.log"
	DefaultLogLevel  = "info"
	DefaultBars      = 60
	DefaultStartDate = "2024-01-01"
	DateLayout       = "2006-01-02"
)

type Config struct {
	LogFile  string
	LogLevel string

	TelegramOutput bool
	TelegramToken  string
	TelegramChatId string

	DatabaseEnabled  bool
	DatabaseHost     string
	DatabasePort     string
	DatabaseName     string
	DatabaseUser     string
	DatabasePassword string

	Bars         int
	Shape        string
	StartDate    time.Time
	CacheEnabled bool
}

// Load reads the env file at path into the process environment and builds a Config from it.
// A missing file is not an error, the environment and defaults are used instead.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultEnvFile
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("error loading %s: %w", path, err)
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment
func FromEnv() (Config, error) {
	cfg := Config{
		LogFile:          getOrDefault("logFile", DefaultLogFile),
		LogLevel:         getOrDefault("logLevel", DefaultLogLevel),
		TelegramToken:    os.Getenv("telegramToken"),
		TelegramChatId:   os.Getenv("telegramChatId"),
		DatabaseHost:     os.Getenv("databaseHost"),
		DatabasePort:     getOrDefault("databasePort", "3306"),
		DatabaseName:     os.Getenv("databaseName"),
		DatabaseUser:     os.Getenv("databaseUser"),
		DatabasePassword: os.Getenv("databasePassword"),
		Shape:            getOrDefault("shape", "line"),
		Bars:             DefaultBars,
		CacheEnabled:     true,
	}

	cfg.TelegramOutput, _ = strconv.ParseBool(os.Getenv("telegramOutput"))
	cfg.DatabaseEnabled, _ = strconv.ParseBool(os.Getenv("enableDatabase"))

	if v := os.Getenv("bars"); v != "" {
		bars, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("bars: %w", err)
		}
		cfg.Bars = bars
	}
	if v := os.Getenv("cacheEnabled"); v != "" {
		cacheEnabled, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("cacheEnabled: %w", err)
		}
		cfg.CacheEnabled = cacheEnabled
	}

	startDate, err := time.Parse(DateLayout, getOrDefault("startDate", DefaultStartDate))
	if err != nil {
		return cfg, fmt.Errorf("startDate: %w", err)
	}
	cfg.StartDate = startDate

	if cfg.TelegramOutput && cfg.TelegramToken == "" {
		return cfg, errors.New("telegramOutput set to true but telegramToken parameter not found")
	}
	if cfg.TelegramOutput && cfg.TelegramChatId == "" {
		return cfg, errors.New("telegramOutput set to true but telegramChatId parameter not found")
	}
	return cfg, nil
}

func getOrDefault(key string, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
