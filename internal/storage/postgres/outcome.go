package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"coverage_migrator/internal/domain"
)

// OutcomeStore persists the per-record terminal state of a migration
// run. One row per (board, news object); re-running a board overwrites
// the previous outcome.
type OutcomeStore struct {
	db *sqlx.DB
}

func NewOutcomeStore(db *sqlx.DB) *OutcomeStore {
	return &OutcomeStore{db: db}
}

func (s *OutcomeStore) Upsert(ctx context.Context, entry *domain.JournalEntry) error {
	query := `
		INSERT INTO sync_outcomes (
			board_uuid, news_object_uuid, outcome, coverage_id, error, synced_at
		) VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (board_uuid, news_object_uuid) DO UPDATE SET
			outcome = EXCLUDED.outcome,
			coverage_id = EXCLUDED.coverage_id,
			error = EXCLUDED.error,
			synced_at = EXCLUDED.synced_at`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		entry.BoardUUID,
		entry.NewsObjectUUID,
		entry.Outcome,
		entry.CoverageID,
		entry.Error,
		entry.SyncedAt,
	)
	return err
}

func (s *OutcomeStore) Get(ctx context.Context, boardUUID, newsObjectUUID string) (*domain.JournalEntry, error) {
	var entry domain.JournalEntry
	query := `
		SELECT id, board_uuid, news_object_uuid, outcome, coverage_id, error, synced_at
		FROM sync_outcomes
		WHERE board_uuid = $1 AND news_object_uuid = $2`

	if err := s.db.GetContext(ctx, &entry, query, boardUUID, newsObjectUUID); err != nil {
		return nil, err
	}
	return &entry, nil
}

// CountByOutcome returns how many records of a board ended in each
// terminal state.
func (s *OutcomeStore) CountByOutcome(ctx context.Context, boardUUID string) (map[domain.SyncOutcome]int, error) {
	query := `
		SELECT outcome, COUNT(*) AS total
		FROM sync_outcomes
		WHERE board_uuid = $1
		GROUP BY outcome`

	rows, err := s.db.QueryContext(ctx, query, boardUUID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[domain.SyncOutcome]int)
	for rows.Next() {
		var outcome domain.SyncOutcome
		var total int
		if err := rows.Scan(&outcome, &total); err != nil {
			return nil, err
		}
		result[outcome] = total
	}

	return result, rows.Err()
}
