// Package cli implements the non-interactive taskboard commands.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/riordanpawley/taskboard/internal/config"
	"github.com/riordanpawley/taskboard/internal/domain"
	"github.com/riordanpawley/taskboard/internal/storage"
)

// ErrInvalidDocument is returned by ImportCommand for a document whose task
// statuses do not match their columns
var ErrInvalidDocument = errors.New("invalid boards document")

// Dependencies holds all the services needed for CLI commands
type Dependencies struct {
	Config  *config.Config
	Backend storage.Backend
	Logger  *slog.Logger
}

// NewDependencies opens the configured storage backend
func NewDependencies(cfg *config.Config, logger *slog.Logger) (*Dependencies, error) {
	if logger == nil {
		logger = slog.Default()
	}

	backend, err := storage.Open(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	return &Dependencies{
		Config:  cfg,
		Backend: backend,
		Logger:  logger,
	}, nil
}

// Close releases the storage backend
func (d *Dependencies) Close() error {
	return d.Backend.Close()
}

// ListCommand prints a summary of every saved board
func ListCommand(ctx context.Context, deps *Dependencies, w io.Writer) error {
	data, err := deps.Backend.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load boards: %w", err)
	}
	if data == nil || len(data.Boards) == 0 {
		fmt.Fprintf(w, "No saved boards in %s storage (the default boards are used on start)\n", deps.Backend.Name())
		return nil
	}

	fmt.Fprintf(w, "Boards (%d):\n\n", len(data.Boards))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tBOARD\tCOLUMNS\tTASKS\tSUBTASKS")
	fmt.Fprintln(tw, "-\t-----\t-------\t-----\t--------")

	for i, b := range data.Boards {
		done, total := 0, 0
		for _, c := range b.Columns {
			for _, t := range c.Tasks {
				done += t.CompletedSubtasks()
				total += len(t.Subtasks)
			}
		}
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%d/%d\n", i, b.Name, len(b.Columns), b.TaskCount(), done, total)
	}

	return tw.Flush()
}

// ExportCommand writes the saved boards document, or the default boards
// when nothing is saved
func ExportCommand(ctx context.Context, deps *Dependencies, w io.Writer) error {
	data, err := deps.Backend.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load boards: %w", err)
	}
	if data == nil {
		defaults := storage.DefaultData()
		data = &defaults
	}

	raw, err := storage.Encode(*data)
	if err != nil {
		return err
	}
	if _, err := w.Write(append(raw, '\n')); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	return nil
}

// ImportCommand replaces the saved boards with the document at path
func ImportCommand(ctx context.Context, deps *Dependencies, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	data, err := storage.Decode(raw)
	if err != nil {
		return fmt.Errorf("failed to import %s: %w", path, err)
	}
	if v := domain.CheckStatuses(data.Boards); len(v) > 0 {
		first := v[0]
		return fmt.Errorf("%w: board %d column %q task %d has status %q", ErrInvalidDocument, first.Board, first.Column, first.Task, first.Status)
	}

	if err := deps.Backend.Save(ctx, *data); err != nil {
		return fmt.Errorf("failed to save boards: %w", err)
	}
	deps.Logger.Info("boards imported", "path", path, "boards", len(data.Boards), "backend", deps.Backend.Name())
	return nil
}

// ResetCommand overwrites the saved boards with the default boards
func ResetCommand(ctx context.Context, deps *Dependencies) error {
	if err := deps.Backend.Save(ctx, storage.DefaultData()); err != nil {
		return fmt.Errorf("failed to reset boards: %w", err)
	}
	deps.Logger.Info("boards reset to defaults", "backend", deps.Backend.Name())
	return nil
}

// ConfigInitCommand writes the default configuration to .taskboard.json in
// dir. An existing file is left untouched unless force is set.
func ConfigInitCommand(dir string, force bool, w io.Writer) error {
	path := filepath.Join(dir, config.ConfigFileName)
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	if err := config.SaveConfig(config.DefaultConfig(), path); err != nil {
		return err
	}
	fmt.Fprintf(w, "Wrote default configuration to %s\n", path)
	return nil
}

// PrintUsage prints CLI usage information
func PrintUsage(w io.Writer) {
	usage := `Usage: taskboard [command] [arguments]

Commands:
  (no command)         Start the taskboard TUI
  list                 List saved boards
  export               Print the boards document as JSON
  import <file>        Replace the saved boards with a JSON document
  reset                Restore the default boards
  config init [--force]
                       Write the default .taskboard.json to the current directory
  help                 Show this help message

Configuration is read from .taskboard.json or taskboard.toml in the
current directory.
`
	fmt.Fprint(w, usage)
}
