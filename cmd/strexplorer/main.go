package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/strkit/strkit/cmd/strexplorer/logger"
)

const version = "0.1.0"

func main() {
	args := os.Args[1:]
	debugMode := false

	filteredArgs := make([]string, 0, len(args))
	for _, arg := range args {
		if arg == "--debug" || arg == "-d" {
			debugMode = true
		} else {
			filteredArgs = append(filteredArgs, arg)
		}
	}

	if err := logger.Init(logger.Options{
		Enabled: debugMode,
		Level:   slog.LevelDebug,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to init logging: %v\n", err)
	}

	if len(filteredArgs) < 1 {
		printUsage()
		os.Exit(1)
	}

	switch filteredArgs[0] {
	case "--help", "-h":
		printUsage()
		os.Exit(0)
	case "--version", "-v":
		fmt.Printf("strexplorer %s\n", version)
		os.Exit(0)
	}

	path := filteredArgs[0]
	logger.Info("starting strexplorer", "path", path, "debug", debugMode)

	if _, err := os.Stat(path); err != nil {
		logger.Error("file not found", "path", path, "error", err)
		fmt.Fprintf(os.Stderr, "Error: file not found: %s\n", path)
		os.Exit(1)
	}

	m, err := newModel(path)
	if err != nil {
		logger.Error("failed to load file", "path", path, "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("program error", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`strexplorer - interactive hex explorer for byte-string containers

Usage:
  strexplorer [flags] <file>

Flags:
  -d, --debug     write debug logs to ~/.strexplorer/logs
  -h, --help      show this help
  -v, --version   show version

Keys:
  up/down/pgup/pgdn  scroll    g/G  top/bottom    :  go to offset
  c  compact         f  freeze      q  quit`)
}
