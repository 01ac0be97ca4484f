package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options mirrors the log_* keys of config.Config.
type Options struct {
	Level      string // logrus level name, "info" when unparsable
	File       string // empty disables the rotating file sink
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// Init configures the standard logrus logger: JSON lines to stdout, plus a
// lumberjack-rotated file when opts.File is set. Hooks (e.g. redislog) are
// added by the caller afterwards.
func Init(opts Options) {
	level, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.JSONFormatter{TimestampFormat: "2006-01-02 15:04:05"})
	logrus.SetOutput(Writer(opts))
}

// Writer builds the output sink described by opts.
func Writer(opts Options) io.Writer {
	writers := []io.Writer{os.Stdout}
	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
			logrus.WithError(err).Warn("cannot create log directory, file sink disabled")
			return os.Stdout
		}
		writers = append(writers, &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
			MaxAge:     opts.MaxAgeDays,
			LocalTime:  true,
			Compress:   true,
		})
	}
	return io.MultiWriter(writers...)
}
