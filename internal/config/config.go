// Package config loads geomcheck's settings from the environment and
// an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds geomcheck's settings.
type Config struct {
	// LogLevel is a zerolog level name, such as "debug" or "warn".
	LogLevel string

	// LogFile, if not empty, is a path that log output is additionally
	// written to, rotated according to LogMaxSizeMB and LogMaxBackups.
	LogFile       string
	LogMaxSizeMB  int
	LogMaxBackups int
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		LogLevel:      "info",
		LogMaxSizeMB:  10,
		LogMaxBackups: 3,
	}
}

// Load reads the given .env files, or ./.env if none are given, and
// then builds a Config from the environment. Missing .env files are
// not an error. Variables already set in the environment take
// precedence over the files.
func Load(files ...string) (Config, error) {
	err := godotenv.Load(files...)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}

	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config from lookup, falling back to Default for
// anything unset.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	c := Default()

	if v, ok := lookup("XGEOM_LOG_LEVEL"); ok && v != "" {
		c.LogLevel = v
	}
	if v, ok := lookup("XGEOM_LOG_FILE"); ok {
		c.LogFile = v
	}

	var err error
	c.LogMaxSizeMB, err = lookupInt(lookup, "XGEOM_LOG_MAX_SIZE_MB", c.LogMaxSizeMB)
	if err != nil {
		return c, err
	}
	c.LogMaxBackups, err = lookupInt(lookup, "XGEOM_LOG_MAX_BACKUPS", c.LogMaxBackups)
	if err != nil {
		return c, err
	}

	return c, nil
}

func lookupInt(lookup func(string) (string, bool), key string, def int) (int, error) {
	v, ok := lookup(key)
	if !ok || v == "" {
		return def, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return def, fmt.Errorf("parse %v: %w", key, err)
	}
	if n < 0 {
		return def, fmt.Errorf("parse %v: negative value %v", key, n)
	}
	return n, nil
}
