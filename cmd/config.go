package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

const (
	defaultDataDir        = "."
	defaultPendingStore   = "orders.json"
	defaultFulfilledStore = "output_orders.json"
	defaultLogLevel       = "warn"
)

type Config struct {
	DataDir        string
	PendingStore   string
	FulfilledStore string
	LogLevel       log.Lvl
}

// LoadConfig reads envFile into the environment, if it exists, and builds the
// configuration from ORDERS_* variables. Variables already set in the
// environment win over the file.
func LoadConfig(envFile string) (Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", envFile, err)
	}

	level, err := parseLogLevel(getEnv("ORDERS_LOG_LEVEL", defaultLogLevel))
	if err != nil {
		return Config{}, err
	}

	return Config{
		DataDir:        getEnv("ORDERS_DATA_DIR", defaultDataDir),
		PendingStore:   getEnv("ORDERS_PENDING_STORE", defaultPendingStore),
		FulfilledStore: getEnv("ORDERS_FULFILLED_STORE", defaultFulfilledStore),
		LogLevel:       level,
	}, nil
}

func getEnv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func parseLogLevel(raw string) (log.Lvl, error) {
	switch strings.ToLower(raw) {
	case "debug":
		return log.DEBUG, nil
	case "info":
		return log.INFO, nil
	case "warn", "warning":
		return log.WARN, nil
	case "error":
		return log.ERROR, nil
	case "off":
		return log.OFF, nil
	default:
		return 0, fmt.Errorf("ORDERS_LOG_LEVEL: unknown level %q", raw)
	}
}
