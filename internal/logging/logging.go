// Package logging provides the diagnostic file logger.
//
// The TUI owns stdout and stderr while it runs, so everything the services
// want to say goes to ~/.ticklog/ticklog.log instead.
package logging

import (
	"io"
	"os"

	"github.com/obeck/ticklog/internal/config"
	"github.com/sirupsen/logrus"
)

// New returns a logger writing to the ticklog log file. If the file cannot
// be opened the logger discards output; logging never breaks the app.
func New() *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	logger.SetOutput(io.Discard)

	path, err := config.LogFile()
	if err != nil {
		return logger
	}
	dir, err := config.HomeDir()
	if err != nil {
		return logger
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return logger
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return logger
	}
	logger.SetOutput(f)
	return logger
}

// Discard returns a logger that drops everything, for tests.
func Discard() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
