package logging

import (
	"io"
	"os"
	"strings"
	"sync"

	"holdem-dealer/internal/config"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	mu     sync.RWMutex
	writer io.Writer = os.Stdout
	closer io.Closer
)

// Init configures the global zerolog logger from cfg. A LOG_FILE that cannot
// be opened falls back to stdout and is reported once the logger is up.
func Init(cfg config.LogConfig) {
	level := zerolog.InfoLevel
	if v := strings.TrimSpace(cfg.Level); v != "" {
		if parsed, err := zerolog.ParseLevel(strings.ToLower(v)); err == nil {
			level = parsed
		}
	}

	var out io.Writer = os.Stdout
	var fileErr error
	if path := strings.TrimSpace(cfg.File); path != "" {
		fw, err := newCappedFile(path, cfg.MaxMB)
		if err != nil {
			fileErr = err
		} else {
			out = io.MultiWriter(os.Stdout, fw)
			setCloser(fw)
		}
	}
	setWriter(out)

	var console io.Writer = out
	if cfg.Pretty {
		console = zerolog.ConsoleWriter{Out: out}
	}

	zerolog.SetGlobalLevel(level)
	logger := zerolog.New(console).With().Timestamp().Logger()
	if cfg.SampleEvery > 1 {
		logger = logger.Sample(&zerolog.BasicSampler{N: uint32(cfg.SampleEvery)})
	}
	log.Logger = logger

	if fileErr != nil {
		log.Warn().Err(fileErr).Str("path", cfg.File).Msg("log file unavailable; logging to stdout only")
	}
}

// Writer is the raw sink behind the global logger, for handlers that format
// their own records.
func Writer() io.Writer {
	mu.RLock()
	defer mu.RUnlock()
	return writer
}

// Close releases the log file, if one was opened.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if closer == nil {
		return nil
	}
	err := closer.Close()
	closer = nil
	return err
}

func setWriter(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	writer = w
}

func setCloser(c io.Closer) {
	mu.Lock()
	defer mu.Unlock()
	if closer != nil {
		_ = closer.Close()
	}
	closer = c
}
