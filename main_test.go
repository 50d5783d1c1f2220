package main

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

type stubSession struct{ ran bool }

func (s *stubSession) Run() { s.ran = true }

func TestRunStartFailureClosesLog(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "inventory.log")
	var stderr bytes.Buffer
	var captured *slog.Logger
	start := func(_ string, _ int, logger *slog.Logger) (runner, error) {
		captured = logger
		return nil, errors.New("no terminal")
	}

	if code := run([]string{"-log", logPath}, &stderr, start); code != 1 {
		t.Fatalf("run = %d; want 1", code)
	}
	if !strings.Contains(stderr.String(), "no terminal") {
		t.Errorf("stderr %q should carry the start error", stderr.String())
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "start session") {
		t.Errorf("log %q should record the failed start", data)
	}

	// The handler writes straight to the file, so a write after run
	// returns fails only if the file was closed.
	rec := slog.NewRecord(time.Now(), slog.LevelInfo, "late", 0)
	if err := captured.Handler().Handle(context.Background(), rec); !errors.Is(err, os.ErrClosed) {
		t.Fatalf("write after run = %v; want os.ErrClosed", err)
	}
}

func TestRunPassesFlagsAndRuns(t *testing.T) {
	sess := &stubSession{}
	var gotName string
	var gotCap int
	start := func(name string, capacity int, _ *slog.Logger) (runner, error) {
		gotName, gotCap = name, capacity
		return sess, nil
	}

	if code := run([]string{"-name", "Ada", "-capacity", "4"}, &bytes.Buffer{}, start); code != 0 {
		t.Fatalf("run = %d; want 0", code)
	}
	if gotName != "Ada" || gotCap != 4 {
		t.Errorf("start(%q, %d); want (Ada, 4)", gotName, gotCap)
	}
	if !sess.ran {
		t.Error("session was not run")
	}
}

func TestRunRejectsBadFlags(t *testing.T) {
	start := func(string, int, *slog.Logger) (runner, error) {
		t.Fatal("start must not be called")
		return nil, nil
	}
	var stderr bytes.Buffer
	if code := run([]string{"-capacity", "lots"}, &stderr, start); code != 2 {
		t.Fatalf("run = %d; want 2", code)
	}
	if stderr.Len() == 0 {
		t.Error("usage should be printed on stderr")
	}
}

func TestRunUnwritableLog(t *testing.T) {
	start := func(string, int, *slog.Logger) (runner, error) {
		t.Fatal("start must not be called")
		return nil, nil
	}
	logPath := filepath.Join(t.TempDir(), "missing", "inventory.log")
	if code := run([]string{"-log", logPath}, &bytes.Buffer{}, start); code != 1 {
		t.Fatalf("run = %d; want 1", code)
	}
}
