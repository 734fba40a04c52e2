package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cardinalkit/surveybuilder/internal/domain"
	"github.com/cardinalkit/surveybuilder/internal/repository"
)

type draftService struct {
	drafts   repository.DraftRepo
	observer UseCaseObserver
}

func NewDraftService(drafts repository.DraftRepo, observers ...UseCaseObserver) DraftService {
	return &draftService{
		drafts:   drafts,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *draftService) Load(ctx context.Context) (d *domain.Draft, err error) {
	fields := map[string]any{}
	defer observe(ctx, s.observer, "draft.load", time.Now().UTC(), fields, &err)

	d, err = s.drafts.Load(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			fields["found"] = false
			return nil, ErrNoDraft
		}
		return nil, fmt.Errorf("loading draft: %w", err)
	}
	fields["found"] = true
	fields["item_count"] = len(d.Items)
	return d, nil
}

func (s *draftService) Save(ctx context.Context, d *domain.Draft) (err error) {
	fields := map[string]any{}
	defer observe(ctx, s.observer, "draft.save", time.Now().UTC(), fields, &err)

	if d == nil {
		return fmt.Errorf("%w: nil draft", ErrSaveFailure)
	}
	fields["item_count"] = len(d.Items)
	if err := s.drafts.Save(ctx, d); err != nil {
		return fmt.Errorf("%w: %w", ErrSaveFailure, err)
	}
	return nil
}

func (s *draftService) Clear(ctx context.Context) (err error) {
	defer observe(ctx, s.observer, "draft.clear", time.Now().UTC(), nil, &err)

	if err := s.drafts.Clear(ctx); err != nil {
		return fmt.Errorf("clearing draft: %w", err)
	}
	return nil
}

func (s *draftService) Summary(ctx context.Context) (*repository.DraftSummary, error) {
	sum, err := s.drafts.Summary(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoDraft
		}
		return nil, fmt.Errorf("reading draft summary: %w", err)
	}
	return sum, nil
}
