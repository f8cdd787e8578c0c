// Package storage provides blob storage for documents the service reads at
// request time, such as the product catalog. A filesystem backend serves
// single-node deployments and an S3 backend serves shared deployments.
package storage

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"

	"github.com/JaimeStill/load-planner/pkg/lifecycle"
)

// System defines blob storage operations.
type System interface {
	// Store saves data at key, overwriting any existing value.
	Store(ctx context.Context, key string, data []byte) error

	// Retrieve returns the data stored at key, or ErrNotFound.
	Retrieve(ctx context.Context, key string) ([]byte, error)

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Validate reports whether key exists and is readable.
	Validate(ctx context.Context, key string) (bool, error)

	// Start registers lifecycle hooks with the coordinator.
	Start(lc *lifecycle.Coordinator) error
}

// New creates the System selected by cfg.Backend.
func New(ctx context.Context, cfg *Config, logger *slog.Logger) (System, error) {
	switch cfg.Backend {
	case BackendFilesystem:
		return NewFilesystem(cfg, logger)
	case BackendS3:
		return NewS3(ctx, &cfg.S3, logger)
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.Backend)
	}
}

// cleanKey normalizes a slash-separated key and rejects empty, absolute
// and traversing keys.
func cleanKey(key string) (string, error) {
	if key == "" {
		return "", ErrInvalidKey
	}
	cleaned := path.Clean(strings.ReplaceAll(key, "\\", "/"))
	if cleaned == "." || strings.HasPrefix(cleaned, "/") || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", ErrInvalidKey
	}
	return cleaned, nil
}
