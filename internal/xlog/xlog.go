// Package xlog sets up the global zerolog logger for geomcheck.
package xlog

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"deedles.dev/xgeom/internal/config"
)

// Init configures log.Logger from c. Output goes to a console writer
// on stderr and, if c.LogFile is set, to a size-rotated JSON log file.
// The returned closer releases the log file and must be called before
// exit.
func Init(c config.Config) (io.Closer, error) {
	return initTo(os.Stderr, c)
}

func initTo(console io.Writer, c config.Config) (io.Closer, error) {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	if level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	writers := []io.Writer{zerolog.ConsoleWriter{
		Out:        console,
		TimeFormat: "15:04:05.000",
	}}

	var closer io.Closer = nopCloser{}
	if c.LogFile != "" {
		lj := &lumberjack.Logger{
			Filename:   c.LogFile,
			MaxSize:    c.LogMaxSizeMB,
			MaxBackups: c.LogMaxBackups,
		}
		writers = append(writers, lj)
		closer = lj
	}

	log.Logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(level).
		With().
		Timestamp().
		Logger()

	return closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
