package logging

import (
	"io"
	"os"

	log "github.com/sirupsen/logrus"

	"stackshop/internal/config"
)

// Setup points logrus at the configured log file. The terminal belongs to the UI, so
// nothing is logged to stdout. The returned closer must be called on exit.
func Setup(cfg *config.Config, debug bool) (io.Closer, error) {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	if debug {
		level = log.DebugLevel
	}
	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
	})

	if cfg.LogFile == "" {
		log.SetOutput(io.Discard)
		return nopCloser{}, nil
	}

	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.SetOutput(io.Discard)
		return nopCloser{}, err
	}
	log.SetOutput(logFile)
	return logFile, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
