// Package storage persists the boards document to durable local storage.
package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"github.com/riordanpawley/taskboard/internal/config"
	"github.com/riordanpawley/taskboard/internal/domain"
)

// Backend reads and writes the raw boards document. Load returns nil, nil
// when nothing has been stored yet.
type Backend interface {
	Name() string
	Load(ctx context.Context) (*domain.BoardsData, error)
	Save(ctx context.Context, data domain.BoardsData) error
	Close() error
}

// Adapter is the persistence boundary used by the boards store. Load never
// fails: missing or malformed documents resolve to nil.
type Adapter struct {
	backend Backend
	logger  *slog.Logger
}

// NewAdapter wraps a backend
func NewAdapter(backend Backend, logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Adapter{backend: backend, logger: logger}
}

// Load returns the last saved document, or nil if none exists or it cannot
// be read
func (a *Adapter) Load(ctx context.Context) *domain.BoardsData {
	data, err := a.backend.Load(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrMalformed) {
			a.logger.Warn("ignoring malformed boards document", "backend", a.backend.Name(), "error", err)
		} else {
			a.logger.Error("failed to read boards document", "backend", a.backend.Name(), "error", err)
		}
		return nil
	}
	return data
}

// Save writes the document
func (a *Adapter) Save(ctx context.Context, data domain.BoardsData) error {
	return a.backend.Save(ctx, data)
}

// Close releases the backend
func (a *Adapter) Close() error {
	return a.backend.Close()
}

// Open creates the backend selected by cfg
func Open(cfg config.StorageConfig) (Backend, error) {
	switch cfg.Backend {
	case config.BackendFile, "":
		return NewFileBackend(cfg.Path), nil
	case config.BackendRedis:
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		return NewRedisBackend(client, cfg.RedisKey), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
