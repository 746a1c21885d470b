package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// AppName is shown in the CLI banner and the dashboard title.
const AppName = "ARKODE OS"

const (
	StorageSQLite = "sqlite"
	StorageRedis  = "redis"
	StorageMemory = "memory"
)

const (
	// PolicyOptimistic keeps locally created records that a list fetch has not caught up with.
	PolicyOptimistic = "optimistic"
	// PolicyLatest lets the fetched list replace the collection as-is.
	PolicyLatest = "latest"
)

// Config holds application configuration.
type Config struct {
	// APIURL is the base URL of the live backend.
	APIURL string `json:"api_url,omitempty"`

	// MockAPI selects the in-memory mock data source. Nil means "not set here".
	// A persisted mode flag takes precedence over this value.
	MockAPI *bool `json:"mock_api,omitempty"`

	// TimeoutMS bounds every live HTTP request.
	TimeoutMS int `json:"timeout_ms,omitempty"`

	// MockDelays emulates network latency in the mock data source.
	MockDelays MockDelays `json:"mock_delays,omitempty"`

	// MockNoDelay disables all mock latency (useful for scripting).
	MockNoDelay bool `json:"mock_no_delay,omitempty"`

	// StableProjectStats caches mock project stats per id instead of
	// re-randomizing them on every fetch.
	StableProjectStats *bool `json:"stable_project_stats,omitempty"`

	// ListPolicy decides how a list fetch treats records created locally
	// while it was in flight: "optimistic" or "latest".
	ListPolicy string `json:"list_policy,omitempty"`

	// Storage selects the persisted key/value backend: sqlite, redis or memory.
	Storage       string `json:"storage,omitempty"`
	RedisAddr     string `json:"redis_addr,omitempty"`
	RedisPassword string `json:"redis_password,omitempty"`
	RedisDB       int    `json:"redis_db,omitempty"`

	LogLevel string `json:"log_level,omitempty"`
	// LogFile enables a rotating log file in addition to stderr.
	LogFile string `json:"log_file,omitempty"`

	// ServerAddr is the listen address of the local development backend.
	ServerAddr string `json:"server_addr,omitempty"`
	// ServerSecret signs backend tokens. Empty disables bearer checks.
	ServerSecret    string `json:"server_secret,omitempty"`
	TokenTTLMinutes int    `json:"token_ttl_minutes,omitempty"`

	// WebAddr is the listen address of the dashboard UI.
	WebAddr string `json:"web_addr,omitempty"`

	// DisabledTools is a list of MCP tool names to exclude from registration.
	// Unknown tool names are logged as warnings.
	DisabledTools []string `json:"disabled_tools,omitempty"`
}

// MockDelays are per-call latencies in milliseconds.
type MockDelays struct {
	DefaultMS  int `json:"default_ms,omitempty"`
	HealthMS   int `json:"health_ms,omitempty"`
	LoginMS    int `json:"login_ms,omitempty"`
	GenerateMS int `json:"generate_ms,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		APIURL:    "http://localhost:8000",
		MockAPI:   boolPtr(true),
		TimeoutMS: 10000,
		MockDelays: MockDelays{
			DefaultMS:  500,
			HealthMS:   200,
			LoginMS:    800,
			GenerateMS: 1500,
		},
		StableProjectStats: boolPtr(true),
		ListPolicy:         PolicyOptimistic,
		Storage:            StorageSQLite,
		RedisAddr:          "localhost:6379",
		LogLevel:           "info",
		ServerAddr:         "127.0.0.1:8000",
		TokenTTLMinutes:    30,
		WebAddr:            "127.0.0.1:8080",
	}
}

// Timeout returns TimeoutMS as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutMS) * time.Millisecond
}

// TokenTTL returns TokenTTLMinutes as a duration.
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLMinutes) * time.Minute
}

// MockEnabled reports the configured mode, defaulting to mock when unset.
func (c *Config) MockEnabled() bool {
	return c.MockAPI == nil || *c.MockAPI
}

// StatsStable reports whether mock project stats are cached per id.
func (c *Config) StatsStable() bool {
	return c.StableProjectStats == nil || *c.StableProjectStats
}

// Validate rejects values no component can act on.
func (c *Config) Validate() error {
	switch c.Storage {
	case StorageSQLite, StorageRedis, StorageMemory:
	default:
		return fmt.Errorf("unknown storage %q (want sqlite, redis or memory)", c.Storage)
	}
	switch c.ListPolicy {
	case PolicyOptimistic, PolicyLatest:
	default:
		return fmt.Errorf("unknown list_policy %q (want optimistic or latest)", c.ListPolicy)
	}
	switch strings.ToLower(c.LogLevel) {
	case "trace", "debug", "info", "warn", "error", "disabled":
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	if c.APIURL == "" {
		return errors.New("api_url is required")
	}
	if c.TimeoutMS < 0 {
		return fmt.Errorf("timeout_ms must be >= 0, got %d", c.TimeoutMS)
	}
	if c.Storage == StorageRedis && c.RedisAddr == "" {
		return errors.New("redis_addr is required when storage is redis")
	}
	return nil
}

// Load loads configuration from baseDir/config.json.
// Returns default config if the file doesn't exist.
// The baseDir parameter allows tests to use t.TempDir() instead of ~/.arkode.
func Load(baseDir string) (*Config, error) {
	return loadFile(filepath.Join(baseDir, "config.json"))
}

// LoadWithRepo loads configuration from both global (~/.arkode) and repo (.arkode) directories.
// Repo config is found by walking upward from startDir to find the nearest .arkode/config.json.
// Repo config takes precedence for scalar values; arrays are merged (deduplicated).
// Either or both configs may be missing.
func LoadWithRepo(globalDir, startDir string) (*Config, error) {
	global, err := loadFileRaw(filepath.Join(globalDir, "config.json"))
	if err != nil {
		return nil, err
	}

	repo, err := loadFileRaw(FindRepoConfig(startDir))
	if err != nil {
		return nil, err
	}

	return Merge(Merge(DefaultConfig(), global), repo), nil
}

// FindRepoConfig walks upward from startDir to find the nearest .arkode/config.json.
// Returns the path if found, or empty string if not found.
func FindRepoConfig(startDir string) string {
	dir := startDir
	for {
		configPath := filepath.Join(dir, ".arkode", "config.json")
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// loadFileRaw returns a zero-valued config (not defaults) if the file doesn't exist.
func loadFileRaw(configPath string) (*Config, error) {
	if configPath == "" {
		return &Config{}, nil
	}
	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", configPath, err)
	}

	return cfg, nil
}

func loadFile(configPath string) (*Config, error) {
	cfg, err := loadFileRaw(configPath)
	if err != nil {
		return nil, err
	}
	return Merge(DefaultConfig(), cfg), nil
}

// Merge combines base and overlay configs.
// Overlay values take precedence for scalars; arrays are merged and deduplicated.
func Merge(base, overlay *Config) *Config {
	result := &Config{}

	result.APIURL = pickString(overlay.APIURL, base.APIURL)
	result.ListPolicy = pickString(overlay.ListPolicy, base.ListPolicy)
	result.Storage = pickString(overlay.Storage, base.Storage)
	result.RedisAddr = pickString(overlay.RedisAddr, base.RedisAddr)
	result.RedisPassword = pickString(overlay.RedisPassword, base.RedisPassword)
	result.LogLevel = pickString(overlay.LogLevel, base.LogLevel)
	result.LogFile = pickString(overlay.LogFile, base.LogFile)
	result.ServerAddr = pickString(overlay.ServerAddr, base.ServerAddr)
	result.ServerSecret = pickString(overlay.ServerSecret, base.ServerSecret)
	result.WebAddr = pickString(overlay.WebAddr, base.WebAddr)

	result.TimeoutMS = pickInt(overlay.TimeoutMS, base.TimeoutMS)
	result.RedisDB = pickInt(overlay.RedisDB, base.RedisDB)
	result.TokenTTLMinutes = pickInt(overlay.TokenTTLMinutes, base.TokenTTLMinutes)
	result.MockDelays = MockDelays{
		DefaultMS:  pickInt(overlay.MockDelays.DefaultMS, base.MockDelays.DefaultMS),
		HealthMS:   pickInt(overlay.MockDelays.HealthMS, base.MockDelays.HealthMS),
		LoginMS:    pickInt(overlay.MockDelays.LoginMS, base.MockDelays.LoginMS),
		GenerateMS: pickInt(overlay.MockDelays.GenerateMS, base.MockDelays.GenerateMS),
	}

	// Tri-state booleans: overlay wins if set.
	result.MockAPI = pickBool(overlay.MockAPI, base.MockAPI)
	result.StableProjectStats = pickBool(overlay.StableProjectStats, base.StableProjectStats)

	result.MockNoDelay = base.MockNoDelay || overlay.MockNoDelay

	result.DisabledTools = mergeStringSlice(base.DisabledTools, overlay.DisabledTools)

	return result
}

func pickString(overlay, base string) string {
	if overlay != "" {
		return overlay
	}
	return base
}

func pickInt(overlay, base int) int {
	if overlay != 0 {
		return overlay
	}
	return base
}

func pickBool(overlay, base *bool) *bool {
	if overlay != nil {
		v := *overlay
		return &v
	}
	if base != nil {
		v := *base
		return &v
	}
	return nil
}

func boolPtr(b bool) *bool { return &b }

// mergeStringSlice combines two slices, trims whitespace, and removes duplicates.
func mergeStringSlice(a, b []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0, len(a)+len(b))

	for _, list := range [][]string{a, b} {
		for _, s := range list {
			s = strings.TrimSpace(s)
			if s != "" && !seen[s] {
				seen[s] = true
				result = append(result, s)
			}
		}
	}

	if len(result) == 0 {
		return nil
	}
	return result
}
