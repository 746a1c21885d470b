package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads KEY=VALUE pairs from the given files into the process
// environment. Missing files are skipped; variables already set win.
func LoadDotEnv(paths ...string) error {
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

// ApplyEnv overlays ARKODE_* environment variables onto cfg.
func ApplyEnv(cfg *Config) (*Config, error) {
	overlay := &Config{
		APIURL:        os.Getenv("ARKODE_API_URL"),
		Storage:       os.Getenv("ARKODE_STORAGE"),
		RedisAddr:     os.Getenv("ARKODE_REDIS_ADDR"),
		RedisPassword: os.Getenv("ARKODE_REDIS_PASSWORD"),
		LogLevel:      os.Getenv("ARKODE_LOG_LEVEL"),
		LogFile:       os.Getenv("ARKODE_LOG_FILE"),
		ServerAddr:    os.Getenv("ARKODE_SERVER_ADDR"),
		ServerSecret:  os.Getenv("ARKODE_SERVER_SECRET"),
		WebAddr:       os.Getenv("ARKODE_WEB_ADDR"),
		ListPolicy:    os.Getenv("ARKODE_LIST_POLICY"),
	}

	var err error
	if overlay.MockAPI, err = getEnvAsBool("ARKODE_MOCK_API"); err != nil {
		return nil, err
	}
	if overlay.StableProjectStats, err = getEnvAsBool("ARKODE_STABLE_PROJECT_STATS"); err != nil {
		return nil, err
	}
	if overlay.TimeoutMS, err = getEnvAsInt("ARKODE_TIMEOUT_MS"); err != nil {
		return nil, err
	}
	if overlay.TokenTTLMinutes, err = getEnvAsInt("ARKODE_TOKEN_TTL_MINUTES"); err != nil {
		return nil, err
	}
	if v := os.Getenv("ARKODE_DISABLED_TOOLS"); v != "" {
		overlay.DisabledTools = strings.Split(v, ",")
	}

	return Merge(cfg, overlay), nil
}

func getEnvAsInt(key string) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid integer for %s: %q", key, v)
	}
	return n, nil
}

func getEnvAsBool(key string) (*bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil, fmt.Errorf("invalid boolean for %s: %q", key, v)
	}
	return &b, nil
}
