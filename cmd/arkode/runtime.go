package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/config"
	"github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/kv"
	"github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/logging"
	"github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/ops"
	"github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/source"
	"github.com/GuilhermeCostaProenca/arkode-dev-toolkit/internal/store"
)

// runtime is everything a command needs, built from config per invocation.
type runtime struct {
	cfg     *config.Config
	logger  zerolog.Logger
	persist kv.Store
	mode    source.Mode
	app     *ops.App
	out     io.Writer
	errOut  io.Writer
	json    bool
	closers []io.Closer
}

func (rt *runtime) Close() error {
	var first error
	for i := len(rt.closers) - 1; i >= 0; i-- {
		if err := rt.closers[i].Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// homeDir resolves the global config/data directory.
func homeDir(c *cli.Context) (string, error) {
	if dir := c.String("home"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".arkode"), nil
}

// loadConfig layers defaults, ~/.arkode, the nearest repo .arkode, .env and
// ARKODE_* variables, then the global flags.
func loadConfig(c *cli.Context, baseDir string) (*config.Config, error) {
	if err := config.LoadDotEnv(".env", filepath.Join(baseDir, ".env")); err != nil {
		return nil, err
	}

	cwd, err := os.Getwd()
	if err != nil {
		cwd = baseDir
	}
	cfg, err := config.LoadWithRepo(baseDir, cwd)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if cfg, err = config.ApplyEnv(cfg); err != nil {
		return nil, err
	}

	if s := c.String("storage"); s != "" {
		cfg.Storage = s
	}
	if c.Bool("no-delay") {
		cfg.MockNoDelay = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// openStore opens the persisted key/value backend selected by cfg.Storage.
func openStore(ctx context.Context, cfg *config.Config, baseDir string) (kv.Store, error) {
	switch cfg.Storage {
	case config.StorageMemory:
		return kv.NewMemory(), nil
	case config.StorageRedis:
		return kv.DialRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	default:
		return kv.OpenSQLite(baseDir)
	}
}

// newRuntime bootstraps config, logging, storage, the data source and the
// stores. Notifications print to errOut.
func newRuntime(c *cli.Context, out, errOut io.Writer) (*runtime, error) {
	ctx := c.Context

	baseDir, err := homeDir(c)
	if err != nil {
		return nil, err
	}
	cfg, err := loadConfig(c, baseDir)
	if err != nil {
		return nil, err
	}

	logger, logCloser, err := logging.New(logging.Options{
		Level:   cfg.LogLevel,
		Verbose: c.Bool("verbose"),
		Quiet:   c.Bool("quiet"),
		File:    cfg.LogFile,
		Writer:  errOut,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to set up logging: %w", err)
	}
	rt := &runtime{
		cfg:     cfg,
		logger:  logger,
		out:     out,
		errOut:  errOut,
		json:    c.Bool("json"),
		closers: []io.Closer{logCloser},
	}

	persist, err := openStore(ctx, cfg, baseDir)
	if err != nil {
		_ = rt.Close()
		return nil, fmt.Errorf("failed to open %s storage: %w", cfg.Storage, err)
	}
	rt.persist = persist
	rt.closers = append(rt.closers, persist)

	if rt.mode, err = source.ResolveMode(ctx, cfg, persist); err != nil {
		_ = rt.Close()
		return nil, err
	}
	ds, err := source.New(rt.mode, cfg, source.Deps{Store: persist, Logger: logger})
	if err != nil {
		_ = rt.Close()
		return nil, err
	}

	stores, err := store.Open(ctx, persist)
	if err != nil {
		_ = rt.Close()
		return nil, fmt.Errorf("failed to load state: %w", err)
	}

	app := ops.New(source.WithLogging(ds, logger), stores, &textNotifier{w: errOut}, logger)
	app.Policy = cfg.ListPolicy
	app.Mode = rt.mode
	if cfg.MockNoDelay {
		app.ReplyDelay = 0
	}
	rt.app = app

	logger.Debug().
		Str("mode", string(rt.mode)).
		Str("storage", cfg.Storage).
		Str("policy", cfg.ListPolicy).
		Msg("runtime ready")
	return rt, nil
}

// withApp builds a runtime for the duration of fn.
func withApp(c *cli.Context, out, errOut io.Writer, fn func(context.Context, *runtime) error) error {
	rt, err := newRuntime(c, out, errOut)
	if err != nil {
		return outputError(err)
	}
	defer rt.Close()
	if err := fn(c.Context, rt); err != nil {
		return outputError(err)
	}
	return nil
}
