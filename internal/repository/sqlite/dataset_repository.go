package sqlite

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/vytor/chessrank/internal/logger"
	"github.com/vytor/chessrank/internal/models"
	"github.com/vytor/chessrank/internal/repository"
)

// insertBatchSize caps rows per INSERT so the bind-variable count
// (11 per row) stays well under SQLite's variable limit.
const insertBatchSize = 200

type datasetRepository struct {
	db *sql.DB
}

// NewDatasetRepository creates a DatasetRepository backed by sqlite.
func NewDatasetRepository(db *sql.DB) repository.DatasetRepository {
	return &datasetRepository{db: db}
}

func (r *datasetRepository) ReplaceRows(ctx context.Context, sessionID string, rows []models.Row) error {
	log := logger.FromContext(ctx).WithPrefix("dataset_repo")
	log.Debug("replacing dataset: session_id=%s, rows=%d", sessionID, len(rows))

	return tx(ctx, r.db, func(t *sql.Tx) error {
		if _, err := t.ExecContext(ctx, `DELETE FROM dataset_rows WHERE session_id = ?`, sessionID); err != nil {
			return err
		}

		for start := 0; start < len(rows); start += insertBatchSize {
			end := min(start+insertBatchSize, len(rows))

			insert := sqlBuilder.Insert("dataset_rows").Columns(
				"session_id", "position", "player", "final_standing", "win_rate",
				"wins", "losses", "games", "mu_rating", "model", "prompt",
			)
			for i, row := range rows[start:end] {
				insert = insert.Values(
					sessionID, start+i, row.Player, row.FinalStanding, row.WinRate,
					row.Wins, row.Losses, row.Games, row.MuRating, row.Model, row.Prompt,
				)
			}
			query, args, err := insert.ToSql()
			if err != nil {
				return err
			}
			if _, err := t.ExecContext(ctx, query, args...); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *datasetRepository) ListRows(ctx context.Context, sessionID string) ([]models.Row, error) {
	log := logger.FromContext(ctx).WithPrefix("dataset_repo")

	query, args, err := sqlBuilder.Select(
		"player", "final_standing", "win_rate", "wins", "losses",
		"games", "mu_rating", "model", "prompt",
	).From("dataset_rows").
		Where(squirrel.Eq{"session_id": sessionID}).
		OrderBy("position ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	sqlRows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to list dataset rows: %v", err)
		return nil, err
	}
	defer sqlRows.Close()

	var rows []models.Row
	for sqlRows.Next() {
		var row models.Row
		if err := sqlRows.Scan(
			&row.Player, &row.FinalStanding, &row.WinRate, &row.Wins,
			&row.Losses, &row.Games, &row.MuRating, &row.Model, &row.Prompt,
		); err != nil {
			log.Error("failed to scan dataset row: %v", err)
			return nil, err
		}
		rows = append(rows, row)
	}
	log.Debug("found %d dataset rows for session %s", len(rows), sessionID)
	return rows, sqlRows.Err()
}

func (r *datasetRepository) DeleteRows(ctx context.Context, sessionID string) error {
	log := logger.FromContext(ctx).WithPrefix("dataset_repo")
	log.Debug("deleting dataset rows: session_id=%s", sessionID)

	if _, err := r.db.ExecContext(ctx, `DELETE FROM dataset_rows WHERE session_id = ?`, sessionID); err != nil {
		log.Error("failed to delete dataset rows: %v", err)
		return err
	}
	return nil
}
