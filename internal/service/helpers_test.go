package service

import (
	"context"
	"sync"
	"testing"

	"github.com/cardinalkit/surveybuilder/internal/repository"
	"github.com/cardinalkit/surveybuilder/internal/testutil"
)

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func (o *recordingObserver) last() UseCaseEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.events[len(o.events)-1]
}

func newTestDraftService(t *testing.T, observers ...UseCaseObserver) DraftService {
	t.Helper()
	return NewDraftService(repository.NewSQLiteDraftRepo(testutil.NewTestDB(t), true), observers...)
}
