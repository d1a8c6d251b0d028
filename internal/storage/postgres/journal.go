// Package postgres implements the optional sync journal: a local audit
// trail of per-record outcomes plus the resume position per board. The
// migration itself is driven entirely by the destination API; the
// journal only observes it.
package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"coverage_migrator/internal/domain"
)

// Journal composes the outcome and board-state stores behind the
// orchestrator's Journal interface.
type Journal struct {
	outcomes *OutcomeStore
	boards   *BoardStateStore
	tx       *TransactionManager
}

func NewJournal(db *sqlx.DB) *Journal {
	return &Journal{
		outcomes: NewOutcomeStore(db),
		boards:   NewBoardStateStore(db),
		tx:       NewTransactionManager(db),
	}
}

// RecordOutcome writes the outcome row and bumps the board totals in one
// transaction so a crash between the two cannot skew the counts.
func (j *Journal) RecordOutcome(ctx context.Context, entry *domain.JournalEntry) error {
	return j.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := j.outcomes.Upsert(txCtx, entry); err != nil {
			return err
		}

		if entry.Outcome != domain.OutcomeSynced && entry.Outcome != domain.OutcomeReconciled {
			return nil
		}

		state, err := j.boards.Get(ctx, entry.BoardUUID)
		if err != nil {
			return err
		}
		state.TotalSynced++
		state.LastSyncedAt = entry.SyncedAt
		return j.boards.Update(txCtx, state)
	})
}

func (j *Journal) BoardState(ctx context.Context, boardUUID string) (*domain.BoardState, error) {
	return j.boards.Get(ctx, boardUUID)
}

func (j *Journal) UpdateBoardState(ctx context.Context, state *domain.BoardState) error {
	// Preserve the totals maintained by RecordOutcome; the orchestrator
	// only owns the offset here.
	current, err := j.boards.Get(ctx, state.BoardUUID)
	if err != nil {
		return err
	}
	current.LastOffset = state.LastOffset
	current.LastSyncedAt = state.LastSyncedAt
	return j.boards.Update(ctx, current)
}

// Outcomes exposes the outcome store for reporting.
func (j *Journal) Outcomes() *OutcomeStore {
	return j.outcomes
}
