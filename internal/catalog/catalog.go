// Package catalog manages the product catalog: the set of products awaiting
// loading, held as a single JSON document in blob storage.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/JaimeStill/load-planner/internal/packing"
	"github.com/JaimeStill/load-planner/pkg/storage"
)

type store struct {
	storage storage.System
	logger  *slog.Logger
	key     string
	maxSize int64
}

// New creates a catalog backed by blob storage. cfg must be finalized.
func New(storage storage.System, cfg *Config, logger *slog.Logger) System {
	return &store{
		storage: storage,
		logger:  logger.With("system", "catalog"),
		key:     cfg.Key,
		maxSize: cfg.MaxSizeBytes(),
	}
}

func (s *store) Handler() *Handler {
	return NewHandler(s, s.logger, s.maxSize)
}

func (s *store) List(ctx context.Context) ([]packing.Product, error) {
	data, err := s.storage.Retrieve(ctx, s.key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrCatalogNotFound
		}
		return nil, fmt.Errorf("retrieve catalog: %w", err)
	}

	products, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (s *store) Replace(ctx context.Context, data []byte) ([]packing.Product, error) {
	if int64(len(data)) > s.maxSize {
		return nil, ErrCatalogTooLarge
	}

	products, err := Parse(data)
	if err != nil {
		return nil, err
	}

	normalized, err := json.MarshalIndent(products, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode catalog: %w", err)
	}

	if err := s.storage.Store(ctx, s.key, normalized); err != nil {
		return nil, fmt.Errorf("store catalog: %w", err)
	}

	s.logger.Info("catalog replaced", "key", s.key, "products", len(products))
	return products, nil
}

// Parse decodes a catalog document: a JSON array of products. Every product
// is validated and product ids must be unique.
func Parse(data []byte) ([]packing.Product, error) {
	var products []packing.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	if products == nil {
		products = []packing.Product{}
	}

	seen := make(map[packing.ProductID]struct{}, len(products))
	for i, p := range products {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("%w: product %d: %v", ErrInvalidCatalog, i, err)
		}
		if _, ok := seen[p.ProductID]; ok {
			return nil, fmt.Errorf("%w: duplicate product_id %s", ErrInvalidCatalog, p.ProductID)
		}
		seen[p.ProductID] = struct{}{}
	}
	return products, nil
}
