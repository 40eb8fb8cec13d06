package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"atscv/internal/config"
)

// Logger is the process-wide logger. It writes JSON to stdout until Init is called.
var Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// Init configures the global logger from cfg.
// Format "pretty" switches to zerolog's console writer.
func Init(cfg config.LogConfig) zerolog.Logger {
	Logger = New(os.Stdout, cfg)
	log.Logger = Logger
	return Logger
}

// New builds a logger writing to w without touching the global one.
func New(w io.Writer, cfg config.LogConfig) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	if cfg.TimeFormat == "" {
		zerolog.TimeFieldFormat = time.RFC3339
	} else {
		zerolog.TimeFieldFormat = cfg.TimeFormat
	}

	output := w
	if cfg.Format == "pretty" {
		output = zerolog.ConsoleWriter{Out: w, TimeFormat: cfg.TimeFormat}
	}

	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}
