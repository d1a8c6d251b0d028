package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"coverage_migrator/internal/config"
	"coverage_migrator/internal/destination/prezly"
	"coverage_migrator/internal/domain"
	"coverage_migrator/internal/retry"
)

// thumbnailDefectMessage is a known destination-side defect signature:
// the coverage record was created but a post-create side effect failed.
const thumbnailDefectMessage = "Undefined property: stdClass::$uuid"

const legacySearchLimit = 25

// SyncService migrates one board into one newsroom. Records are
// processed strictly sequentially; two in-flight syncs racing to create
// a record for the same reconciliation target caused duplicate writes in
// an earlier concurrent variant of this design.
type SyncService struct {
	source      Source
	destination Destination
	mapper      Mapper
	journal     Journal
	publisher   Publisher
	logger      *slog.Logger
	config      config.SyncConfig
}

func NewSyncService(
	source Source,
	destination Destination,
	mapper Mapper,
	journal Journal,
	publisher Publisher,
	logger *slog.Logger,
	cfg config.SyncConfig,
) *SyncService {
	return &SyncService{
		source:      source,
		destination: destination,
		mapper:      mapper,
		journal:     journal,
		publisher:   publisher,
		logger:      logger,
		config:      cfg,
	}
}

// Sync walks the board listing from the given offset and reconciles
// every news object into the newsroom. A negative offset resumes from
// the journal's recorded position when a journal is configured.
func (s *SyncService) Sync(ctx context.Context, boardUUID string, newsroomID int64, offset int) (*domain.SyncStats, error) {
	startTime := time.Now()

	if offset < 0 {
		offset = s.resumeOffset(ctx, boardUUID)
	}

	s.logger.Info("starting board migration",
		"board", boardUUID,
		"newsroom", newsroomID,
		"offset", offset,
	)

	stats := &domain.SyncStats{BoardUUID: boardUUID}

	err := s.source.ForEachNewsObjectPage(ctx, boardUUID, offset, func(ctx context.Context, page *domain.NewsObjectPage) error {
		for i := range page.Objects {
			if err := s.syncNewsObject(ctx, boardUUID, newsroomID, page.Objects[i].UUID, stats); err != nil {
				return err
			}
			stats.Fetched++
		}

		s.updateBoardState(ctx, boardUUID, offset+stats.Fetched, stats)
		return nil
	})

	stats.Duration = time.Since(startTime)

	s.logger.Info("board migration finished",
		"board", boardUUID,
		"fetched", stats.Fetched,
		"synced", stats.Synced,
		"reconciled", stats.Reconciled,
		"skipped", stats.Skipped,
		"unsupported", stats.Unsupported,
		"errors", stats.Errors,
		"duration", stats.Duration,
	)

	if err != nil {
		return stats, fmt.Errorf("sync board %s: %w", boardUUID, err)
	}
	return stats, nil
}

// syncNewsObject runs one record through the state machine:
// fetched -> mapped -> {dropped | existing-skip | reconciled-create |
// plain-create} -> done. A returned error aborts the whole batch.
func (s *SyncService) syncNewsObject(ctx context.Context, boardUUID string, newsroomID int64, uuid string, stats *domain.SyncStats) error {
	var object *domain.NewsObject
	var raw []byte

	err := retry.Do(ctx, s.logger, s.config.DetailRetries, func(ctx context.Context) error {
		var err error
		object, raw, err = s.source.NewsObjectDetail(ctx, uuid)
		return err
	})
	if err != nil {
		return fmt.Errorf("fetch news object %s: %w", uuid, err)
	}

	// Embedded newlines in titles break the destination's headline
	// rendering.
	object.Title = strings.NewReplacer("\n", "", "\r", "").Replace(object.Title)

	existing, err := retry.DoValue(ctx, s.logger, s.config.LookupRetries, func(ctx context.Context) (*domain.Coverage, error) {
		return s.destination.GetCoverageByExternalReferenceID(ctx, uuid)
	})
	if err != nil {
		return fmt.Errorf("look up coverage for %s: %w", uuid, err)
	}

	if existing != nil {
		s.logger.Info("news object already synced",
			"news_object", uuid,
			"title", object.Title,
			"coverage", existing.ID,
		)
		s.recordOutcome(ctx, boardUUID, uuid, domain.OutcomeSkipped, &existing.ID, nil)
		stats.Skipped++
		return nil
	}

	coverage, err := s.mapper.Map(ctx, object, raw)
	if err != nil {
		s.logger.Error("mapping failed",
			"news_object", uuid,
			"title", object.Title,
			"error", err,
		)
		s.recordOutcome(ctx, boardUUID, uuid, domain.OutcomeFailed, nil, err)
		stats.Errors++
		return nil
	}

	if coverage == nil {
		s.logger.Info("news object not supported",
			"news_object", uuid,
			"medium_type_group", object.MediumTypeGroup,
			"medium_type", object.MediumType,
			"title", object.Title,
		)
		s.recordOutcome(ctx, boardUUID, uuid, domain.OutcomeUnsupported, nil, nil)
		stats.Unsupported++
		return nil
	}

	coverage.Newsroom = newsroomID

	legacy := s.findLegacyCoverage(ctx, object, coverage)
	if legacy != nil {
		s.logger.Info("found legacy coverage for news object",
			"news_object", uuid,
			"legacy_coverage", legacy.ID,
			"legacy_deleted", legacy.IsDeleted,
		)
		carryForward(coverage, legacy)
	}

	s.logger.Info("syncing news object", "news_object", uuid, "title", object.Title)

	created, err := retry.DoValue(ctx, s.logger, s.config.CreateRetries, func(ctx context.Context) (*domain.Coverage, error) {
		return s.destination.CreateCoverage(ctx, coverage)
	})
	if err != nil {
		if classified := s.classifyCreateError(ctx, err, uuid, coverage); classified != nil {
			return classified
		}
		s.recordOutcome(ctx, boardUUID, uuid, domain.OutcomeFailed, nil, err)
		stats.Errors++
		return nil
	}

	outcome := domain.OutcomeSynced
	if legacy != nil {
		if err := s.supersedeLegacy(ctx, legacy, created); err != nil {
			return err
		}
		outcome = domain.OutcomeReconciled
		stats.Reconciled++
	} else {
		stats.Synced++
	}

	s.logger.Info("news object synced",
		"news_object", uuid,
		"coverage", created.ID,
		"outcome", outcome,
	)
	s.recordOutcome(ctx, boardUUID, uuid, outcome, &created.ID, nil)

	return nil
}

// findLegacyCoverage looks for a shadow record: coverage created by an
// earlier, less careful run without the external reference id, matching
// this record by the per-category heuristic. Search failures degrade to
// no match since reconciliation is best-effort.
func (s *SyncService) findLegacyCoverage(ctx context.Context, object *domain.NewsObject, coverage *domain.CoverageCreateRequest) *domain.Coverage {
	filter := searchFilterFor(object.MediumTypeGroup, coverage)
	if filter == nil {
		return nil
	}

	candidates, err := retry.DoValue(ctx, s.logger, s.config.LookupRetries, func(ctx context.Context) ([]domain.Coverage, error) {
		return s.destination.SearchCoverage(ctx, filter, true, legacySearchLimit)
	})
	if err != nil {
		s.logger.Warn("legacy coverage search failed",
			"news_object", object.UUID,
			"error", err,
		)
		return nil
	}

	match := policyFor(object.MediumTypeGroup)
	for i := range candidates {
		if candidates[i].ExternalReferenceID != "" {
			continue
		}
		if match(&candidates[i], coverage) {
			return &candidates[i]
		}
	}

	return nil
}

// carryForward copies the ownership and categorization fields of a
// matched legacy record onto the new payload, overriding the freshly
// mapped values.
func carryForward(coverage *domain.CoverageCreateRequest, legacy *domain.Coverage) {
	coverage.Author = legacy.Author
	coverage.Organisation = legacy.Organisation
	coverage.Newsroom = legacy.Newsroom
	coverage.Story = legacy.Story
	coverage.NoteContent = legacy.NoteContent
	if legacy.PublishedAt != "" {
		coverage.PublishedAt = legacy.PublishedAt
	}
}

// supersedeLegacy finishes a reconciled create: the legacy record is
// soft-deleted in favor of the new one, or, when the legacy record was
// already deleted, the new record inherits that deletion.
func (s *SyncService) supersedeLegacy(ctx context.Context, legacy, created *domain.Coverage) error {
	target := legacy.ID
	if legacy.IsDeleted {
		target = created.ID
	}

	err := retry.Do(ctx, s.logger, s.config.CreateRetries, func(ctx context.Context) error {
		return s.destination.DeleteCoverage(ctx, target)
	})
	if err != nil {
		return fmt.Errorf("supersede legacy coverage %d: %w", legacy.ID, err)
	}

	return nil
}

// classifyCreateError sorts a failed create into the error taxonomy. A
// non-nil return aborts the batch; nil means the failure was swallowed
// and the record is done-with-warning.
func (s *SyncService) classifyCreateError(ctx context.Context, err error, uuid string, coverage *domain.CoverageCreateRequest) error {
	apiErr, ok := prezly.AsAPIError(err)
	if !ok {
		if ctx.Err() != nil {
			return err
		}
		// Network-level failure with no status: one bad record never
		// halts the whole migration.
		s.logger.Warn("timeout trying to create coverage record",
			"news_object", uuid,
			"error", err,
		)
		return nil
	}

	switch {
	case apiErr.Status == http.StatusConflict:
		// State ambiguity from a partial prior write; needs an operator.
		s.logger.Error("conflict creating coverage",
			"news_object", uuid,
			"payload", string(apiErr.Payload),
		)
		return err

	case apiErr.Status == http.StatusUnprocessableEntity:
		s.logger.Error("coverage rejected by destination",
			"news_object", uuid,
			"payload", string(apiErr.Payload),
			"request", coverage,
		)
		return nil

	case apiErr.Status == http.StatusInternalServerError && apiErr.Message == thumbnailDefectMessage:
		s.logger.Warn("coverage was created, but the server may have failed to create a thumbnail",
			"news_object", uuid,
		)
		return nil

	default:
		s.logger.Error("coverage create failed",
			"news_object", uuid,
			"status", apiErr.Status,
			"payload", string(apiErr.Payload),
		)
		return nil
	}
}

func (s *SyncService) resumeOffset(ctx context.Context, boardUUID string) int {
	if s.journal == nil {
		return 0
	}

	state, err := s.journal.BoardState(ctx, boardUUID)
	if err != nil {
		s.logger.Warn("failed to read board state, starting from zero", "error", err)
		return 0
	}

	return state.LastOffset
}

func (s *SyncService) updateBoardState(ctx context.Context, boardUUID string, lastOffset int, stats *domain.SyncStats) {
	if s.journal == nil {
		return
	}

	err := s.journal.UpdateBoardState(ctx, &domain.BoardState{
		BoardUUID:    boardUUID,
		LastOffset:   lastOffset,
		TotalSynced:  int64(stats.Synced + stats.Reconciled),
		LastSyncedAt: time.Now().UTC(),
	})
	if err != nil {
		s.logger.Warn("failed to update board state", "board", boardUUID, "error", err)
	}
}

// recordOutcome persists and publishes a record's terminal state.
// Journaling and publishing are observers of the sync, never reasons to
// abort it.
func (s *SyncService) recordOutcome(ctx context.Context, boardUUID, uuid string, outcome domain.SyncOutcome, coverageID *int64, cause error) {
	if s.journal != nil {
		entry := &domain.JournalEntry{
			BoardUUID:      boardUUID,
			NewsObjectUUID: uuid,
			Outcome:        outcome,
			CoverageID:     coverageID,
			SyncedAt:       time.Now().UTC(),
		}
		if cause != nil {
			message := cause.Error()
			entry.Error = &message
		}
		if err := s.journal.RecordOutcome(ctx, entry); err != nil {
			s.logger.Warn("failed to journal outcome", "news_object", uuid, "error", err)
		}
	}

	if s.publisher != nil {
		event := &domain.CoverageEvent{
			Outcome:        outcome,
			BoardUUID:      boardUUID,
			NewsObjectUUID: uuid,
			CoverageID:     coverageID,
			Timestamp:      time.Now().UTC(),
		}
		if err := s.publisher.Publish(ctx, event); err != nil {
			s.logger.Warn("failed to publish outcome", "news_object", uuid, "error", err)
		}
	}
}
