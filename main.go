package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"emoji-inventory/internal/component"
	"emoji-inventory/internal/game"
)

// runner is a started session.
type runner interface {
	Run()
}

// startFunc opens a session on the terminal.
type startFunc func(name string, capacity int, logger *slog.Logger) (runner, error)

func startLocal(name string, capacity int, logger *slog.Logger) (runner, error) {
	return game.New(name, capacity, logger)
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr, startLocal))
}

// run parses args, plays one session and returns the process exit code.
// Returning instead of exiting lets deferred cleanup close the log file.
func run(args []string, stderr io.Writer, start startFunc) int {
	fs := flag.NewFlagSet("emoji-inventory", flag.ContinueOnError)
	fs.SetOutput(stderr)
	name := fs.String("name", "Wanderer", "Player name shown on the panel")
	capacity := fs.Int("capacity", component.DefaultCapacity, "Inventory capacity")
	logPath := fs.String("log", "", "Write debug logs to this file (the terminal is busy with the UI)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	logger := slog.New(slog.DiscardHandler)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintf(stderr, "error: open log: %v\n", err)
			return 1
		}
		defer f.Close()
		logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	s, err := start(*name, *capacity, logger)
	if err != nil {
		logger.Error("start session", "error", err)
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	s.Run()
	return 0
}
