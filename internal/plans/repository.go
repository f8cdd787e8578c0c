package plans

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/JaimeStill/load-planner/internal/catalog"
	"github.com/JaimeStill/load-planner/internal/packing"
	"github.com/JaimeStill/load-planner/pkg/pagination"
	"github.com/JaimeStill/load-planner/pkg/query"
	"github.com/JaimeStill/load-planner/pkg/repository"
	"github.com/google/uuid"
)

type repo struct {
	db         *sql.DB
	catalog    catalog.System
	packer     *packing.Packer
	metrics    *Metrics
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a plan repository that packs the current catalog and persists
// results in PostgreSQL. metrics may be nil.
func New(
	db *sql.DB,
	catalog catalog.System,
	packer *packing.Packer,
	metrics *Metrics,
	logger *slog.Logger,
	pagination pagination.Config,
) System {
	return &repo{
		db:         db,
		catalog:    catalog,
		packer:     packer,
		metrics:    metrics,
		logger:     logger.With("system", "plans"),
		pagination: pagination,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

func (r *repo) List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Plan], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Label")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderBy(page.Sort...)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count plans: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	plans, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanPlan)
	if err != nil {
		return nil, fmt.Errorf("query plans: %w", err)
	}

	result := pagination.NewPageResult(plans, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Plan, error) {
	q, args := query.
		NewBuilder(projection, defaultSort).
		BuildSingle("Id", id)

	plan, err := repository.QueryOne(ctx, r.db, q, args, scanPlan)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &plan, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Plan, error) {
	if err := cmd.Vehicle.Validate(); err != nil {
		return nil, err
	}

	products, err := r.catalog.List(ctx)
	if err != nil {
		return nil, err
	}

	plan, err := Compute(r.packer, cmd, products)
	if err != nil {
		return nil, err
	}

	placements, err := json.Marshal(plan.Placements)
	if err != nil {
		return nil, fmt.Errorf("encode placements: %w", err)
	}
	unplaced, err := json.Marshal(plan.Unplaced)
	if err != nil {
		return nil, fmt.Errorf("encode unplaced: %w", err)
	}
	summary, err := json.Marshal(plan.Summary)
	if err != nil {
		return nil, fmt.Errorf("encode summary: %w", err)
	}

	q := `INSERT INTO plans(id, label, vehicle_length, vehicle_breadth, vehicle_height, placements, unplaced, summary, utilization)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at`

	created, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Plan, error) {
		p := *plan
		err := tx.QueryRowContext(ctx, q,
			p.ID, p.Label, p.Vehicle.Length, p.Vehicle.Breadth, p.Vehicle.Height,
			placements, unplaced, summary, p.Summary.Utilization,
		).Scan(&p.CreatedAt)
		return p, err
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.metrics.observe(&created)
	r.logger.Info("plan created",
		"id", created.ID,
		"packed", created.Summary.PackedCount,
		"unplaced", created.Summary.UnplacedCount,
		"utilization", created.Summary.Utilization,
	)
	return &created, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := `DELETE FROM plans WHERE id = $1`
	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		return struct{}{}, repository.ExecExpectOne(ctx, tx, q, id)
	})

	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("plan deleted", "id", id)
	return nil
}

// Compute packs products into the command's vehicle and returns an unsaved
// plan with a fresh id.
func Compute(packer *packing.Packer, cmd CreateCommand, products []packing.Product) (*Plan, error) {
	result, err := packer.Pack(cmd.Vehicle, products)
	if err != nil {
		return nil, err
	}

	return &Plan{
		ID:         uuid.New(),
		Label:      strings.TrimSpace(cmd.Label),
		Vehicle:    cmd.Vehicle,
		Placements: result.Placements,
		Unplaced:   result.Unplaced,
		Summary:    result.Summary,
	}, nil
}
