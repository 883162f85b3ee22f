package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/vytor/chessrank/internal/logger"
	"github.com/vytor/chessrank/internal/models"
	"github.com/vytor/chessrank/internal/repository"
	"github.com/vytor/chessrank/internal/view"
)

type sessionRepository struct {
	db *sql.DB
}

// NewSessionRepository creates a SessionRepository backed by sqlite.
func NewSessionRepository(db *sql.DB) repository.SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Upsert(ctx context.Context, id string) (*models.Session, error) {
	log := logger.FromContext(ctx).WithPrefix("session_repo")
	log.Debug("upserting session: id=%s", id)

	query, args, err := sqlBuilder.Insert("sessions").
		Columns("id", "sort_key", "pinned_player").
		Values(id, string(view.SortByFinalStanding), "").
		Suffix("ON CONFLICT(id) DO NOTHING").
		ToSql()
	if err != nil {
		return nil, err
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Error("failed to upsert session: %v", err)
		return nil, err
	}
	return r.Get(ctx, id)
}

func (r *sessionRepository) Get(ctx context.Context, id string) (*models.Session, error) {
	log := logger.FromContext(ctx).WithPrefix("session_repo")

	query, args, err := sqlBuilder.Select("id", "sort_key", "pinned_player", "has_upload").
		From("sessions").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var s models.Session
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&s.ID, &s.SortKey, &s.PinnedPlayer, &s.HasUpload)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("session not found: id=%s", id)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get session: %v", err)
		return nil, err
	}
	return &s, nil
}

func (r *sessionRepository) MarkUploaded(ctx context.Context, id string, uploaded bool) error {
	log := logger.FromContext(ctx).WithPrefix("session_repo")
	log.Debug("marking session upload state: id=%s, uploaded=%v", id, uploaded)

	query, args, err := sqlBuilder.Update("sessions").
		Set("has_upload", uploaded).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Error("failed to mark session upload state: %v", err)
		return err
	}
	return nil
}

func (r *sessionRepository) SaveSelections(ctx context.Context, id, sortKey, pinnedPlayer string) error {
	log := logger.FromContext(ctx).WithPrefix("session_repo")
	log.Debug("saving selections: id=%s, sort_key=%s, pinned=%s", id, sortKey, pinnedPlayer)

	query, args, err := sqlBuilder.Update("sessions").
		Set("sort_key", sortKey).
		Set("pinned_player", pinnedPlayer).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Error("failed to save selections: %v", err)
		return err
	}
	return nil
}

func (r *sessionRepository) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx).WithPrefix("session_repo")
	log.Debug("deleting session: id=%s", id)

	query, args, err := sqlBuilder.Delete("sessions").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Error("failed to delete session: %v", err)
		return err
	}
	return nil
}
