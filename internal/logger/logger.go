package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/abhisek/chapterquiz/internal/config"
)

// New builds a logger from cfg. Output goes to cfg.Log.File when set,
// otherwise to fallback. The returned close func releases the log file.
func New(cfg *config.Config, fallback io.Writer) (*logrus.Logger, func() error, error) {
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("parse log level: %w", err)
	}

	log := logrus.New()
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	closeFn := func() error { return nil }
	if cfg.Log.File == "" {
		log.SetOutput(fallback)
		return log, closeFn, nil
	}

	f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	log.SetFormatter(&logrus.JSONFormatter{})
	return log, f.Close, nil
}
