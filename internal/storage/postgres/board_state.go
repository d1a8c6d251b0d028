package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"coverage_migrator/internal/domain"
)

type BoardStateStore struct {
	db *sqlx.DB
}

func NewBoardStateStore(db *sqlx.DB) *BoardStateStore {
	return &BoardStateStore{db: db}
}

func (s *BoardStateStore) Get(ctx context.Context, boardUUID string) (*domain.BoardState, error) {
	var state domain.BoardState
	query := `
		SELECT id, board_uuid, last_offset, total_synced, last_synced_at
		FROM board_state
		WHERE board_uuid = $1`

	err := s.db.GetContext(ctx, &state, query, boardUUID)
	if errors.Is(err, sql.ErrNoRows) {
		// Boards never synced before start from zero.
		return &domain.BoardState{
			BoardUUID:    boardUUID,
			LastSyncedAt: time.Time{},
		}, nil
	}
	if err != nil {
		return nil, err
	}
	return &state, nil
}

func (s *BoardStateStore) Update(ctx context.Context, state *domain.BoardState) error {
	query := `
		INSERT INTO board_state (board_uuid, last_offset, total_synced, last_synced_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (board_uuid) DO UPDATE SET
			last_offset = EXCLUDED.last_offset,
			total_synced = EXCLUDED.total_synced,
			last_synced_at = EXCLUDED.last_synced_at`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		state.BoardUUID,
		state.LastOffset,
		state.TotalSynced,
		state.LastSyncedAt,
	)
	return err
}
