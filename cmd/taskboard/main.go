// Package main provides the entry point for the taskboard TUI.
//
// taskboard is a terminal kanban board: boards hold ordered columns, columns
// hold task cards, and cards hold subtask checklists. Boards are saved to a
// local JSON file or a Redis key after every change.
//
// Usage:
//
//	taskboard [command] [arguments]
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/taskboard/internal/app"
	"github.com/riordanpawley/taskboard/internal/boards"
	"github.com/riordanpawley/taskboard/internal/cli"
	"github.com/riordanpawley/taskboard/internal/config"
	"github.com/riordanpawley/taskboard/internal/services/uistate"
	"github.com/riordanpawley/taskboard/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := newLogger(cfg.Log)
	defer closeLog()

	if err := run(cfg, logger, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closeLog()
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger, args []string) error {
	if len(args) > 0 && (args[0] == "help" || args[0] == "-h" || args[0] == "--help") {
		cli.PrintUsage(os.Stdout)
		return nil
	}
	if len(args) > 0 && args[0] == "config" {
		return runConfig(args[1:])
	}

	deps, err := cli.NewDependencies(cfg, logger)
	if err != nil {
		return err
	}
	defer deps.Close()

	ctx := context.Background()
	if len(args) == 0 {
		return runTUI(cfg, logger, deps.Backend)
	}

	switch args[0] {
	case "list":
		return cli.ListCommand(ctx, deps, os.Stdout)
	case "export":
		return cli.ExportCommand(ctx, deps, os.Stdout)
	case "import":
		if len(args) < 2 {
			return fmt.Errorf("import requires a file path")
		}
		return cli.ImportCommand(ctx, deps, args[1])
	case "reset":
		return cli.ResetCommand(ctx, deps)
	default:
		cli.PrintUsage(os.Stderr)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func runConfig(args []string) error {
	if len(args) == 0 || args[0] != "init" {
		cli.PrintUsage(os.Stderr)
		return fmt.Errorf("unknown config command")
	}
	force := len(args) > 1 && args[1] == "--force"

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}
	return cli.ConfigInitCommand(cwd, force, os.Stdout)
}

func runTUI(cfg *config.Config, logger *slog.Logger, backend storage.Backend) error {
	ui := uistate.NewService(uistate.RealClock(), cfg.Loading.MinDuration(), logger)
	defer ui.Close()

	store := boards.NewStore(boards.Options{
		Persister: storage.NewAdapter(backend, logger),
		Fallback:  storage.DefaultData(),
		Notifier:  ui,
		Logger:    logger,
	})
	defer store.Close()

	program := tea.NewProgram(
		app.New(store, ui, cfg, logger),
		tea.WithAltScreen(),
	)
	unsubscribe := app.Subscribe(program, store, ui)
	defer unsubscribe()

	logger.Info("starting taskboard", "backend", backend.Name())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// newLogger writes to <dir>/taskboard.log since the TUI owns stdout. It
// falls back to the default logger when the file cannot be opened.
func newLogger(cfg config.LogConfig) (*slog.Logger, func()) {
	if err := os.MkdirAll(cfg.Dir, 0755); err != nil {
		return slog.Default(), func() {}
	}
	f, err := os.OpenFile(filepath.Join(cfg.Dir, "taskboard.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return slog.Default(), func() {}
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	return logger, func() { f.Close() }
}
