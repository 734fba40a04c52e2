package repository

import (
	"context"
	"testing"
	"time"

	"github.com/cardinalkit/surveybuilder/internal/domain"
	"github.com/cardinalkit/surveybuilder/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraftRepo_Load_EmptyStoreIsNotFound(t *testing.T) {
	repo := NewSQLiteDraftRepo(testutil.NewTestDB(t), true)

	_, err := repo.Load(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.Summary(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDraftRepo_SaveLoadRoundTrip(t *testing.T) {
	for _, compress := range []bool{true, false} {
		repo := NewSQLiteDraftRepo(testutil.NewTestDB(t), compress)
		ctx := context.Background()

		d := testutil.NewTestDraft(testutil.WithMetadata("T", "N", "1"), testutil.WithItems(3))
		require.NoError(t, repo.Save(ctx, d))

		got, err := repo.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, d, got, "compress=%v", compress)
	}
}

func TestDraftRepo_SaveOverwritesSingleSlot(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteDraftRepo(database, true)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, testutil.NewTestDraft(testutil.WithItems(1))))
	second := testutil.NewTestDraft(testutil.WithMetadata("Second", "", ""), testutil.WithItems(2))
	require.NoError(t, repo.Save(ctx, second))

	var n int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM draft_snapshot`).Scan(&n))
	assert.Equal(t, 1, n)

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, second, got)
}

func TestDraftRepo_ReadsEitherEncoding(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	d := testutil.NewTestDraft(testutil.WithItems(2))

	require.NoError(t, NewSQLiteDraftRepo(database, false).Save(ctx, d))
	got, err := NewSQLiteDraftRepo(database, true).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, d, got)
}

func TestDraftRepo_Clear(t *testing.T) {
	repo := NewSQLiteDraftRepo(testutil.NewTestDB(t), true)
	ctx := context.Background()

	require.NoError(t, repo.Clear(ctx), "clearing an empty slot is not an error")
	require.NoError(t, repo.Save(ctx, testutil.NewTestDraft(testutil.WithItems(1))))
	require.NoError(t, repo.Clear(ctx))

	_, err := repo.Load(ctx)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDraftRepo_Summary(t *testing.T) {
	repo := NewSQLiteDraftRepo(testutil.NewTestDB(t), true)
	ctx := context.Background()

	before := time.Now().UTC().Add(-time.Second)
	require.NoError(t, repo.Save(ctx, testutil.NewTestDraft(testutil.WithMetadata("T", "N", "1"), testutil.WithItems(4))))

	s, err := repo.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, "T", s.Title)
	assert.Equal(t, "N", s.Name)
	assert.Equal(t, "1", s.Version)
	assert.Equal(t, 4, s.ItemCount)
	assert.Equal(t, EncodingZstdJSON, s.Encoding)
	assert.True(t, s.UpdatedAt.After(before))
}

func TestDraftRepo_Load_CorruptPayload(t *testing.T) {
	database := testutil.NewTestDB(t)
	_, err := database.Exec(`INSERT INTO draft_snapshot (id, encoding, payload, updated_at) VALUES ('current', 'zstd+json', x'DEADBEEF', '2025-01-01T00:00:00Z')`)
	require.NoError(t, err)

	_, err = NewSQLiteDraftRepo(database, true).Load(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestDraftRepo_Load_NormalizesNilCollections(t *testing.T) {
	database := testutil.NewTestDB(t)
	_, err := database.Exec(`INSERT INTO draft_snapshot (id, encoding, payload, updated_at) VALUES ('current', 'json', '{"qMetadata":{"title":"Old"}}', '2025-01-01T00:00:00Z')`)
	require.NoError(t, err)

	got, err := NewSQLiteDraftRepo(database, true).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Old", got.Metadata.Title)
	assert.Equal(t, map[string]domain.Item{}, got.Items)
	assert.Equal(t, []domain.OrderItem{}, got.Order)
}

func TestDraftRepo_Save_NilDraft(t *testing.T) {
	repo := NewSQLiteDraftRepo(testutil.NewTestDB(t), true)
	assert.Error(t, repo.Save(context.Background(), nil))
}
