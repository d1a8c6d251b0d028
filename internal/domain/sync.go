package domain

import "time"

// SyncOutcome is the terminal state of one record's sync attempt.
type SyncOutcome string

const (
	OutcomeSynced      SyncOutcome = "synced"
	OutcomeReconciled  SyncOutcome = "reconciled"
	OutcomeSkipped     SyncOutcome = "skipped"
	OutcomeUnsupported SyncOutcome = "unsupported"
	OutcomeFailed      SyncOutcome = "failed"
)

// SyncStats holds statistics about a board migration run.
type SyncStats struct {
	BoardUUID   string
	Fetched     int
	Synced      int
	Reconciled  int
	Skipped     int
	Unsupported int
	Errors      int
	Duration    time.Duration
}

// JournalEntry is one row of the optional sync journal: what happened to
// one news object during one migration run.
type JournalEntry struct {
	ID             int64       `db:"id"`
	BoardUUID      string      `db:"board_uuid"`
	NewsObjectUUID string      `db:"news_object_uuid"`
	Outcome        SyncOutcome `db:"outcome"`
	CoverageID     *int64      `db:"coverage_id"`
	Error          *string     `db:"error"`
	SyncedAt       time.Time   `db:"synced_at"`
}

// BoardState tracks the resume position and totals for one board.
type BoardState struct {
	ID           int64     `db:"id"`
	BoardUUID    string    `db:"board_uuid"`
	LastOffset   int       `db:"last_offset"`
	TotalSynced  int64     `db:"total_synced"`
	LastSyncedAt time.Time `db:"last_synced_at"`
}

// CoverageEvent is published for every record that reaches a terminal
// state, when event publishing is enabled.
type CoverageEvent struct {
	Outcome        SyncOutcome `json:"outcome"`
	BoardUUID      string      `json:"board_uuid"`
	NewsObjectUUID string      `json:"news_object_uuid"`
	CoverageID     *int64      `json:"coverage_id,omitempty"`
	Timestamp      time.Time   `json:"timestamp"`
}
