/*
 * Copyright (C) 2023 by Jason Figge
 */

package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

func TestFileDisabledByDefault(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	log, closer, err := File(dir, "test", false)
	if err != nil {
		t.Fatalf("File: %v", err)
	}
	if closer != nil {
		t.Error("expected nil closer when debug is off")
	}
	if log.GetLevel() != zerolog.Disabled {
		t.Errorf("level = %v, want disabled", log.GetLevel())
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Error("log directory created while debug is off")
	}
}

func TestFileEnabledWithDebug(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	log, closer, err := File(dir, "test", true)
	if err != nil {
		t.Fatalf("File: %v", err)
	}
	log.Info().Msg("test log message")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("log file is empty")
	}
}

func TestFileRotation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, make([]byte, MaxLogSize+1), 0o644); err != nil {
		t.Fatalf("write large log: %v", err)
	}

	_, closer, err := File(dir, "test", true)
	if err != nil {
		t.Fatalf("File: %v", err)
	}
	defer closer.Close()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	rotated := false
	for _, e := range entries {
		if e.Name() != FileName && filepath.Ext(e.Name()) == ".log" {
			rotated = true
		}
	}
	if !rotated {
		t.Error("expected a rotated log file")
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat new log: %v", err)
	}
	if info.Size() > MaxLogSize {
		t.Errorf("new log file has %d bytes", info.Size())
	}
}
