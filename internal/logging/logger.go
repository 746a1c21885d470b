package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotation settings for the optional log file.
const (
	LogMaxSizeMB  = 10
	LogMaxBackups = 3
	LogMaxAgeDays = 14
)

var globalMu sync.Mutex

// Options controls logger construction.
type Options struct {
	// Level is a zerolog level name. Verbose and Quiet override it.
	Level   string
	Verbose bool
	Quiet   bool
	// File enables a rotating, redacted log file.
	File string
	// Writer replaces the stderr console output (tests).
	Writer io.Writer
}

// New builds a logger and installs it as the zerolog global.
// The returned closer releases the log file, if any.
func New(opts Options) (zerolog.Logger, io.Closer, error) {
	console := opts.Writer
	if console == nil {
		console = selectOutput()
	}
	writers := []io.Writer{NewFilteringWriter(console)}

	var closer io.Closer = nopCloser{}
	if opts.File != "" {
		fw, err := createLogFileWriter(opts.File)
		if err != nil {
			return zerolog.Nop(), nil, err
		}
		writers = append(writers, NewFilteringWriter(fw))
		closer = fw
	}

	var w io.Writer = writers[0]
	if len(writers) > 1 {
		w = zerolog.MultiLevelWriter(writers...)
	}

	logger := zerolog.New(w).
		Level(selectLevel(opts.Level, opts.Verbose, opts.Quiet)).
		Hook(NewSensitiveDataHook()).
		With().Timestamp().Logger()

	setGlobalLogger(logger)
	return logger, closer, nil
}

func setGlobalLogger(l zerolog.Logger) {
	globalMu.Lock()
	defer globalMu.Unlock()
	log.Logger = l
}

// selectLevel maps flags and the configured level to a zerolog level.
func selectLevel(level string, verbose, quiet bool) zerolog.Level {
	switch {
	case verbose:
		return zerolog.DebugLevel
	case quiet:
		return zerolog.WarnLevel
	}
	if level == "" {
		return zerolog.InfoLevel
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}

// selectOutput uses a console writer on a TTY unless NO_COLOR is set,
// and JSON on stderr otherwise.
func selectOutput() io.Writer {
	if term.IsTerminal(int(os.Stderr.Fd())) && os.Getenv("NO_COLOR") == "" {
		return zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.Kitchen,
		}
	}
	return os.Stderr
}

func createLogFileWriter(path string) (*lumberjack.Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    LogMaxSizeMB,
		MaxBackups: LogMaxBackups,
		MaxAge:     LogMaxAgeDays,
		Compress:   true,
	}, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
