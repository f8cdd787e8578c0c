package plans

import (
	"context"

	"github.com/JaimeStill/load-planner/pkg/pagination"
	"github.com/google/uuid"
)

// System defines load plan operations.
// Implementations read the catalog, run the packer and persist the result.
type System interface {
	Handler() *Handler
	List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Plan], error)
	Find(ctx context.Context, id uuid.UUID) (*Plan, error)
	Create(ctx context.Context, cmd CreateCommand) (*Plan, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
