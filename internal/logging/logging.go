/*
 * Copyright (C) 2023 by Jason Figge
 */

// Package logging builds the zerolog loggers used by the game binaries.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

const (
	FileName   = "gungame.log"
	MaxLogSize = 10 * 1024 * 1024
)

// Console returns a human readable logger on stderr.
func Console(component string, debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	w := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}
	return zerolog.New(w).Level(level).With().Timestamp().Str("component", component).Logger()
}

// File returns a JSON logger writing to dir/gungame.log. Full screen
// frontends own the terminal, so nothing may reach stdout or stderr. When
// debug is off the logger discards everything and the returned closer is
// nil. A log file above MaxLogSize is rotated aside with a timestamp
// before it is reopened.
func File(dir, component string, debug bool) (zerolog.Logger, io.Closer, error) {
	if !debug {
		return zerolog.New(io.Discard).Level(zerolog.Disabled), nil, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("create log dir: %w", err)
	}
	path := filepath.Join(dir, FileName)
	if err := rotate(path, time.Now()); err != nil {
		return zerolog.Nop(), nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
	}
	log := zerolog.New(f).Level(zerolog.DebugLevel).With().Timestamp().Str("component", component).Logger()
	return log, f, nil
}

func rotate(path string, now time.Time) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("stat log file: %w", err)
	}
	if info.Size() <= MaxLogSize {
		return nil
	}
	rotated := filepath.Join(filepath.Dir(path), fmt.Sprintf("gungame-%s.log", now.Format("20060102-150405")))
	if err := os.Rename(path, rotated); err != nil {
		return fmt.Errorf("rotate log file: %w", err)
	}
	return nil
}
