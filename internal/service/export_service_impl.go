package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cardinalkit/surveybuilder/internal/domain"
	"github.com/cardinalkit/surveybuilder/internal/fhir"
)

type exportService struct {
	drafts   DraftService
	observer UseCaseObserver
}

func NewExportService(drafts DraftService, observers ...UseCaseObserver) ExportService {
	return &exportService{drafts: drafts, observer: useCaseObserverOrNoop(observers)}
}

func (s *exportService) ExportFile(ctx context.Context, path string) (d *domain.Draft, err error) {
	fields := map[string]any{"path": path}
	defer observe(ctx, s.observer, "draft.export", time.Now().UTC(), fields, &err)

	d, err = s.drafts.Load(ctx)
	if err != nil {
		return nil, err
	}

	data, err := fhir.Marshal(fhir.FromDraft(d))
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating export directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, fmt.Errorf("writing export file: %w", err)
	}
	fields["item_count"] = len(d.Items)
	return d, nil
}
