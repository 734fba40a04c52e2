package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cardinalkit/surveybuilder/internal/domain"
	"github.com/cardinalkit/surveybuilder/internal/repository"
	"github.com/cardinalkit/surveybuilder/internal/service"
	"github.com/cardinalkit/surveybuilder/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type blockingStore struct {
	testutil.MemoryStore
	release chan struct{}
}

func (b *blockingStore) Load(ctx context.Context) (*domain.Draft, error) {
	<-b.release
	return nil, nil
}

type panickingStore struct {
	testutil.MemoryStore
}

func (p *panickingStore) Load(context.Context) (*domain.Draft, error) {
	panic("boom")
}

func TestLoader_ReturnsStoredSnapshot(t *testing.T) {
	snap := testutil.NewTestDraft(testutil.WithItems(2))
	store := &testutil.MemoryStore{Snapshot: snap}

	got := NewLoader(store, time.Second, discardLogger()).Load(context.Background())
	require.NotNil(t, got)
	assert.Equal(t, snap, got)
}

func TestLoader_LoadsExactlyOnce(t *testing.T) {
	store := &testutil.MemoryStore{Snapshot: testutil.NewTestDraft(testutil.WithItems(1))}
	l := NewLoader(store, 0, discardLogger())

	first := l.Load(context.Background())
	store.Snapshot = nil
	second := l.Load(context.Background())

	assert.Equal(t, 1, store.Loads)
	assert.Equal(t, first, second)
}

func TestLoader_FailuresMeanNoDraft(t *testing.T) {
	cases := map[string]error{
		"service no draft": service.ErrNoDraft,
		"repo not found":   repository.ErrNotFound,
		"corrupt":          errors.New("unmarshaling draft: unexpected EOF"),
	}
	for name, loadErr := range cases {
		t.Run(name, func(t *testing.T) {
			store := &testutil.MemoryStore{LoadErr: loadErr}
			assert.Nil(t, NewLoader(store, 0, discardLogger()).Load(context.Background()))
		})
	}
}

func TestLoader_TimeoutMeansNoDraft(t *testing.T) {
	store := &blockingStore{release: make(chan struct{})}
	defer close(store.release)

	start := time.Now()
	got := NewLoader(store, 20*time.Millisecond, discardLogger()).Load(context.Background())
	assert.Nil(t, got)
	assert.Less(t, time.Since(start), time.Second)
}

func TestLoader_PanicMeansNoDraft(t *testing.T) {
	assert.Nil(t, NewLoader(&panickingStore{}, 0, discardLogger()).Load(context.Background()))
}

func TestLoader_NilStore(t *testing.T) {
	assert.Nil(t, NewLoader(nil, 0, discardLogger()).Load(context.Background()))
}
