package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/obeck/ticklog/internal/config"
	"github.com/obeck/ticklog/internal/domain"
	"github.com/sirupsen/logrus"
)

const (
	logFilePrefix = "task_log_"
	logFileHeader = "Ticket No,Start Date,Timespent,Comment"
	logDateLayout = "2006-01-02"
)

type logbookService struct {
	storageFolder func() (string, error)
	now           func() time.Time
	log           *logrus.Logger
}

// NewLogbookService creates the append-only log writer. The storage folder
// provider is consulted on every append so folder changes take effect
// without a restart.
func NewLogbookService(storageFolder func() (string, error), log *logrus.Logger) LogbookService {
	return &logbookService{
		storageFolder: storageFolder,
		now:           time.Now,
		log:           log,
	}
}

// LogFileName returns the log file name for the given day.
func LogFileName(day time.Time) string {
	return logFilePrefix + day.Format(logDateLayout) + ".csv"
}

func (l *logbookService) Append(ctx context.Context, entry *domain.LogEntry) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	folder, err := l.storageFolder()
	if err != nil {
		return "", fmt.Errorf("resolving storage folder: %w", err)
	}

	// The file is named after the append date, not the session start date:
	// a session spanning midnight lands in the day it ended.
	path := filepath.Join(folder, LogFileName(l.now()))
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving log file path: %w", err)
	}

	writeHeader := !config.FileExists(abs)

	f, err := os.OpenFile(abs, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return "", fmt.Errorf("opening log file %s: %w", abs, err)
	}
	defer f.Close()

	if writeHeader {
		if _, err := fmt.Fprintln(f, logFileHeader); err != nil {
			return "", fmt.Errorf("writing header to %s: %w", abs, err)
		}
	}

	// Fields are quoted but embedded quotes and commas are not escaped.
	// That matches the historical file format; changing it would break
	// consumers of existing logs.
	row := `"` + entry.Ticket + `","` + entry.StartDate + `","` + entry.TimeSpent + `","` + entry.Comment + `"`
	if _, err := fmt.Fprintln(f, row); err != nil {
		return "", fmt.Errorf("appending to %s: %w", abs, err)
	}

	l.log.WithFields(logrus.Fields{
		"file":   abs,
		"ticket": entry.Ticket,
	}).Info("log entry appended")

	return abs, nil
}
