package service

import (
	"context"

	"github.com/cardinalkit/surveybuilder/internal/domain"
	"github.com/cardinalkit/surveybuilder/internal/repository"
)

// DraftService is the local draft store as seen by the session.
type DraftService interface {
	// Load returns the stored snapshot, or ErrNoDraft.
	Load(ctx context.Context) (*domain.Draft, error)
	Save(ctx context.Context, d *domain.Draft) error
	Clear(ctx context.Context) error
	Summary(ctx context.Context) (*repository.DraftSummary, error)
}

// ImportResult is the outcome of mapping an uploaded questionnaire.
type ImportResult struct {
	Draft     *domain.Draft
	Source    string
	MIMEType  string
	ItemCount int
	Warnings  []string
}

// ImportService turns an uploaded questionnaire file into a draft. It never
// touches the active session; the caller decides what to replace.
type ImportService interface {
	ImportFile(ctx context.Context, path string) (*ImportResult, error)
	ImportBytes(ctx context.Context, source string, data []byte) (*ImportResult, error)
}

// ExportService writes the stored draft out as a questionnaire.
type ExportService interface {
	ExportFile(ctx context.Context, path string) (*domain.Draft, error)
}
