package catalog

import (
	"context"

	"github.com/JaimeStill/load-planner/internal/packing"
)

// System defines product catalog operations.
type System interface {
	Handler() *Handler
	List(ctx context.Context) ([]packing.Product, error)
	Replace(ctx context.Context, data []byte) ([]packing.Product, error)
}
