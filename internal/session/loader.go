package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/cardinalkit/surveybuilder/internal/domain"
	"github.com/cardinalkit/surveybuilder/internal/repository"
	"github.com/cardinalkit/surveybuilder/internal/service"
)

// Loader fetches the stored snapshot once per session. It never fails:
// a missing, unreadable or slow store yields a nil snapshot.
type Loader struct {
	store   Store
	timeout time.Duration
	logger  *slog.Logger

	once   sync.Once
	result *domain.Draft
}

// NewLoader creates a loader. A zero timeout disables the deadline.
func NewLoader(store Store, timeout time.Duration, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{store: store, timeout: timeout, logger: logger}
}

// Load returns the stored snapshot or nil. Only the first call reaches the
// store; later calls return the first result.
func (l *Loader) Load(ctx context.Context) *domain.Draft {
	l.once.Do(func() {
		l.result = l.load(ctx)
	})
	return l.result.Clone()
}

type loadResult struct {
	draft *domain.Draft
	err   error
}

func (l *Loader) load(ctx context.Context) *domain.Draft {
	if l.store == nil {
		return nil
	}
	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	// The store may ignore ctx, so the deadline is enforced here as well.
	ch := make(chan loadResult, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- loadResult{err: fmt.Errorf("draft load panicked: %v", r)}
			}
		}()
		d, err := l.store.Load(ctx)
		ch <- loadResult{draft: d, err: err}
	}()

	var res loadResult
	select {
	case res = <-ch:
	case <-ctx.Done():
		res.err = ctx.Err()
	}

	switch {
	case res.err == nil:
		return res.draft
	case errors.Is(res.err, service.ErrNoDraft), errors.Is(res.err, repository.ErrNotFound):
		l.logger.DebugContext(ctx, "no stored draft")
	default:
		l.logger.WarnContext(ctx, "stored draft unreadable, starting fresh", "error", res.err)
	}
	return nil
}
