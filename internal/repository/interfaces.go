package repository

import (
	"context"
	"time"

	"github.com/cardinalkit/surveybuilder/internal/domain"
)

// DraftSummary describes the stored snapshot without decoding its payload.
type DraftSummary struct {
	Title     string
	Name      string
	Version   string
	ItemCount int
	Encoding  string
	UpdatedAt time.Time
}

// DraftRepo is the single-slot store for the in-progress draft.
// Save overwrites any previous snapshot; there is no history.
type DraftRepo interface {
	Load(ctx context.Context) (*domain.Draft, error)
	Save(ctx context.Context, d *domain.Draft) error
	Clear(ctx context.Context) error
	Summary(ctx context.Context) (*DraftSummary, error)
}
