package source

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/api"
	"github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/config"
	"github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/kv"
	"github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/mock"
)

// Mode selects the backing implementation.
type Mode string

const (
	ModeMock Mode = "mock"
	ModeLive Mode = "live"
)

// ParseMode accepts "mock"/"live" and boolean spellings of the mock flag.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mock", "true", "1", "on":
		return ModeMock, nil
	case "live", "false", "0", "off":
		return ModeLive, nil
	}
	return "", fmt.Errorf("unknown mode %q (want mock or live)", s)
}

// ResolveMode picks the mode at process start: the persisted flag first,
// then config (which already carries the env overlay), defaulting to mock.
func ResolveMode(ctx context.Context, cfg *config.Config, store kv.Store) (Mode, error) {
	if store != nil {
		raw, ok, err := store.Get(ctx, kv.KeyMockMode)
		if err != nil {
			return "", err
		}
		if ok {
			b, err := strconv.ParseBool(raw)
			if err == nil {
				return modeOf(b), nil
			}
		}
	}
	if cfg != nil {
		return modeOf(cfg.MockEnabled()), nil
	}
	return ModeMock, nil
}

// SetMode persists the mode flag and reports whether it changed. The running
// process keeps its current source; the new mode applies on next start.
func SetMode(ctx context.Context, store kv.Store, cfg *config.Config, mode Mode) (bool, error) {
	current, err := ResolveMode(ctx, cfg, store)
	if err != nil {
		return false, err
	}
	if err := store.Set(ctx, kv.KeyMockMode, strconv.FormatBool(mode == ModeMock)); err != nil {
		return false, err
	}
	return current != mode, nil
}

func modeOf(mockEnabled bool) Mode {
	if mockEnabled {
		return ModeMock
	}
	return ModeLive
}

// Deps are the collaborators New needs beyond config.
type Deps struct {
	Store  kv.Store
	Logger zerolog.Logger
}

// New builds the data source for mode. Callers decide the mode; there is no
// hidden global switch.
func New(mode Mode, cfg *config.Config, deps Deps) (DataSource, error) {
	switch mode {
	case ModeMock:
		return mock.New(mock.Options{
			Delays:      mock.DelaysFromConfig(cfg),
			StableStats: cfg.StatsStable(),
		}), nil
	case ModeLive:
		return api.New(api.Options{
			BaseURL: cfg.APIURL,
			Timeout: cfg.Timeout(),
			Tokens:  api.KVTokens{Store: deps.Store},
			Logger:  deps.Logger,
		}), nil
	}
	return nil, fmt.Errorf("unknown mode %q", mode)
}

var (
	_ DataSource = (*mock.Mock)(nil)
	_ DataSource = (*api.Client)(nil)
)
