package session

import (
	"context"
	"testing"

	"github.com/cardinalkit/surveybuilder/internal/domain"
	"github.com/cardinalkit/surveybuilder/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestArbiter(t *testing.T, store *testutil.MemoryStore, purge bool) (*Arbiter, *Session) {
	t.Helper()
	s := New(store, discardLogger())
	return NewArbiter(s, purge), s
}

func TestShouldPrompt(t *testing.T) {
	assert.False(t, ShouldPrompt(nil))
	assert.False(t, ShouldPrompt(domain.NewDraft()))
	assert.False(t, ShouldPrompt(testutil.NewTestDraft(testutil.WithMetadata("T", "N", "1"))),
		"metadata alone is not an in-progress survey")
	assert.True(t, ShouldPrompt(testutil.NewTestDraft(testutil.WithItems(1))))
}

func TestArbiter_EmptySnapshotsNeverPrompt(t *testing.T) {
	for _, snap := range []*domain.Draft{nil, domain.NewDraft(), {Metadata: domain.Metadata{Title: "x"}}} {
		a, _ := newTestArbiter(t, &testutil.MemoryStore{}, true)
		assert.False(t, a.Evaluate(snap))
		assert.Equal(t, domain.DecisionNone, a.Decision())
		_, ok := a.Prompt()
		assert.False(t, ok)
	}
}

func TestArbiter_PromptsExactlyOnce(t *testing.T) {
	a, _ := newTestArbiter(t, &testutil.MemoryStore{}, true)
	snap := testutil.NewTestDraft(testutil.WithItems(2))

	assert.True(t, a.Evaluate(snap))
	assert.Equal(t, domain.DecisionPending, a.Decision())
	assert.False(t, a.Evaluate(snap), "second evaluation is a no-op")
	assert.True(t, a.Pending())
}

func TestArbiter_PromptSummaryRendersMissingFieldsEmpty(t *testing.T) {
	a, _ := newTestArbiter(t, &testutil.MemoryStore{}, true)
	snap := testutil.NewTestDraft(testutil.WithItems(3))
	snap.Metadata.Title = "Only title"
	require.True(t, a.Evaluate(snap))

	p, ok := a.Prompt()
	require.True(t, ok)
	assert.Equal(t, RestorePrompt{Title: "Only title", ItemCount: 3}, p)
}

func TestArbiter_AcceptYieldsSnapshot(t *testing.T) {
	store := &testutil.MemoryStore{}
	a, s := newTestArbiter(t, store, true)
	snap := testutil.NewTestDraft(testutil.WithMetadata("T", "N", "1"), testutil.WithItems(2))
	require.True(t, a.Evaluate(snap))

	snap.Metadata.Title = "mutated after evaluate"

	require.True(t, a.Accept(context.Background()))
	want := testutil.NewTestDraft(testutil.WithMetadata("T", "N", "1"), testutil.WithItems(2))
	assert.Equal(t, want, s.Draft())
	assert.Equal(t, domain.DecisionAccepted, a.Decision())
	assert.Equal(t, 0, store.Saves)
}

func TestArbiter_DeclineYieldsEmptyDraftAndPurges(t *testing.T) {
	snap := testutil.NewTestDraft(testutil.WithItems(5))
	store := &testutil.MemoryStore{Snapshot: snap}
	a, s := newTestArbiter(t, store, true)
	s.Reset(context.Background(), snap)
	require.True(t, a.Evaluate(snap))

	require.True(t, a.Decline(context.Background()))
	assert.Equal(t, domain.NewDraft(), s.Draft())
	assert.Equal(t, domain.DecisionDeclined, a.Decision())
	assert.Equal(t, 1, store.Clears)
	assert.Nil(t, store.Stored())
}

func TestArbiter_DeclineWithoutPurgeKeepsSnapshot(t *testing.T) {
	snap := testutil.NewTestDraft(testutil.WithItems(1))
	store := &testutil.MemoryStore{Snapshot: snap}
	a, s := newTestArbiter(t, store, false)
	require.True(t, a.Evaluate(snap))

	require.True(t, a.Decline(context.Background()))
	assert.Equal(t, domain.NewDraft(), s.Draft())
	assert.Equal(t, 0, store.Clears)
	assert.Equal(t, snap, store.Stored())
}

func TestArbiter_ResolutionIsIdempotent(t *testing.T) {
	ctx := context.Background()
	a, s := newTestArbiter(t, &testutil.MemoryStore{}, true)
	snap := testutil.NewTestDraft(testutil.WithItems(1))
	require.True(t, a.Evaluate(snap))
	require.True(t, a.Accept(ctx))

	assert.False(t, a.Accept(ctx))
	assert.False(t, a.Decline(ctx))
	assert.False(t, a.Evaluate(snap))
	assert.Equal(t, snap, s.Draft(), "decline after accept must not reset")
	assert.Equal(t, domain.DecisionAccepted, a.Decision())
}

func TestArbiter_AcceptWithoutPromptIsNoop(t *testing.T) {
	a, s := newTestArbiter(t, &testutil.MemoryStore{}, true)
	assert.False(t, a.Accept(context.Background()))
	assert.False(t, a.Decline(context.Background()))
	assert.Equal(t, domain.NewDraft(), s.Draft())
}
