// Package session owns the active draft of an editing session and the
// startup restore workflow around it.
package session

import (
	"context"
	"log/slog"
	"sync"

	"github.com/cardinalkit/surveybuilder/internal/domain"
)

// Store is the local draft store consumed by the session.
type Store interface {
	Load(ctx context.Context) (*domain.Draft, error)
	Save(ctx context.Context, d *domain.Draft) error
	Clear(ctx context.Context) error
}

// Action mutates the active draft.
type Action interface {
	Apply(d *domain.Draft)
}

// ResetAction replaces the whole draft. A nil Draft resets to the empty
// default.
type ResetAction struct {
	Draft *domain.Draft
}

func (a ResetAction) Apply(d *domain.Draft) {
	next := a.Draft.Clone()
	if next == nil {
		next = domain.NewDraft()
	}
	next.Normalize()
	*d = *next
}

// UpdateMetadataAction sets a single metadata field.
type UpdateMetadataAction struct {
	Field domain.MetadataField
	Value string
}

func (a UpdateMetadataAction) Apply(d *domain.Draft) {
	m := &d.Metadata
	switch a.Field {
	case domain.MetaTitle:
		m.Title = a.Value
	case domain.MetaName:
		m.Name = a.Value
	case domain.MetaVersion:
		m.Version = a.Value
	case domain.MetaURL:
		m.URL = a.Value
	case domain.MetaStatus:
		m.Status = a.Value
	case domain.MetaPublisher:
		m.Publisher = a.Value
	case domain.MetaDescription:
		m.Description = a.Value
	case domain.MetaLanguage:
		m.Language = a.Value
	}
}

// Session holds the active draft. It is passed explicitly to every
// component that reads or changes the document. The store mirrors the
// draft after each dispatch but is never the authority while editing.
type Session struct {
	mu    sync.Mutex
	draft *domain.Draft
	rev   uint64

	// saveMu serializes store writes; savedRev is the newest revision
	// written or purged.
	saveMu   sync.Mutex
	savedRev uint64

	store  Store
	logger *slog.Logger
}

// New creates a session holding an empty draft.
func New(store Store, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		draft:  domain.NewDraft(),
		store:  store,
		logger: logger,
	}
}

// Draft returns a copy of the active draft.
func (s *Session) Draft() *domain.Draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft.Clone()
}

// Dispatch applies the actions in order and then saves the result.
// Save failures are logged and otherwise ignored.
func (s *Session) Dispatch(ctx context.Context, actions ...Action) {
	s.Apply(actions...)(ctx)
}

// Apply applies the actions in order and returns a function that saves
// the result. The save may run later on another goroutine; it is skipped
// when a newer revision has already been written or purged.
func (s *Session) Apply(actions ...Action) func(ctx context.Context) {
	s.mu.Lock()
	for _, a := range actions {
		a.Apply(s.draft)
	}
	s.rev++
	rev := s.rev
	snapshot := s.draft.Clone()
	s.mu.Unlock()

	return func(ctx context.Context) {
		s.persist(ctx, rev, snapshot)
	}
}

// Reset replaces the active draft. A nil draft resets to the empty default.
func (s *Session) Reset(ctx context.Context, d *domain.Draft) {
	s.Dispatch(ctx, ResetAction{Draft: d})
}

func (s *Session) persist(ctx context.Context, rev uint64, d *domain.Draft) {
	if s.store == nil {
		return
	}
	s.saveMu.Lock()
	defer s.saveMu.Unlock()
	if rev <= s.savedRev {
		s.logger.DebugContext(ctx, "stale draft save skipped", "rev", rev, "saved_rev", s.savedRev)
		return
	}
	s.savedRev = rev
	if err := s.store.Save(ctx, d); err != nil {
		s.logger.WarnContext(ctx, "draft save failed", "error", err, "item_count", len(d.Items))
	}
}

// Purge removes the stored snapshot without touching the active draft.
func (s *Session) Purge(ctx context.Context) {
	if s.store == nil {
		return
	}
	s.mu.Lock()
	rev := s.rev
	s.mu.Unlock()

	s.saveMu.Lock()
	defer s.saveMu.Unlock()
	s.savedRev = max(s.savedRev, rev)
	if err := s.store.Clear(ctx); err != nil {
		s.logger.WarnContext(ctx, "draft clear failed", "error", err)
	}
}

// resetInMemory replaces the active draft without saving it.
func (s *Session) resetInMemory(d *domain.Draft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ResetAction{Draft: d}.Apply(s.draft)
	s.rev++
}
