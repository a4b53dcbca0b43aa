package history

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/google/uuid"

	"github.com/kpdinfo/kpdinfo/pkg/pagination"
)

// DefaultRetainLimit matches the cap the front-end applies to its
// client-side history.
const DefaultRetainLimit = 100

// System defines the public contract for history operations.
type System interface {
	Handler() *Handler

	Record(ctx context.Context, entry Entry) (*Entry, error)
	List(ctx context.Context, page pagination.PageRequest) (*pagination.PageResult[Entry], error)
	Find(ctx context.Context, id uuid.UUID) (*Entry, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type system struct {
	repo       *repo
	logger     *slog.Logger
	pagination pagination.Config
}

// NewSystem creates the history system over the given database connection.
func NewSystem(db *sql.DB, retain int, pageCfg pagination.Config, logger *slog.Logger) System {
	if retain <= 0 {
		retain = DefaultRetainLimit
	}

	return &system{
		repo:       &repo{db: db, retain: retain},
		logger:     logger.With("system", "history"),
		pagination: pageCfg,
	}
}

func (s *system) Handler() *Handler {
	return NewHandler(s, s.logger, s.pagination)
}

func (s *system) Record(ctx context.Context, entry Entry) (*Entry, error) {
	return s.repo.insert(ctx, entry)
}

func (s *system) List(ctx context.Context, page pagination.PageRequest) (*pagination.PageResult[Entry], error) {
	return s.repo.list(ctx, page)
}

func (s *system) Find(ctx context.Context, id uuid.UUID) (*Entry, error) {
	return s.repo.find(ctx, id)
}

func (s *system) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.delete(ctx, id)
}
