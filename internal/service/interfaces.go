package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"coverage_migrator/internal/domain"
)

type Source interface {
	ForEachNewsObjectPage(ctx context.Context, boardUUID string, offset int, cb func(ctx context.Context, page *domain.NewsObjectPage) error) error
	NewsObjectDetail(ctx context.Context, uuid string) (*domain.NewsObject, []byte, error)
}

type Destination interface {
	GetCoverageByExternalReferenceID(ctx context.Context, id string) (*domain.Coverage, error)
	SearchCoverage(ctx context.Context, filter map[string]any, includeDeleted bool, limit int) ([]domain.Coverage, error)
	CreateCoverage(ctx context.Context, req *domain.CoverageCreateRequest) (*domain.Coverage, error)
	DeleteCoverage(ctx context.Context, id int64) error
}

type Mapper interface {
	Map(ctx context.Context, object *domain.NewsObject, raw []byte) (*domain.CoverageCreateRequest, error)
}

type Journal interface {
	RecordOutcome(ctx context.Context, entry *domain.JournalEntry) error
	BoardState(ctx context.Context, boardUUID string) (*domain.BoardState, error)
	UpdateBoardState(ctx context.Context, state *domain.BoardState) error
}

type Publisher interface {
	Publish(ctx context.Context, event *domain.CoverageEvent) error
	Close() error
}
