package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/cardinalkit/surveybuilder/internal/db"
	"github.com/cardinalkit/surveybuilder/internal/domain"
)

const currentSlot = "current"

// SQLiteDraftRepo implements DraftRepo using a SQLite database.
type SQLiteDraftRepo struct {
	db       db.DBTX
	compress bool
}

// NewSQLiteDraftRepo creates a new SQLiteDraftRepo. When compress is true,
// snapshots are written zstd-compressed; either encoding is readable.
func NewSQLiteDraftRepo(conn db.DBTX, compress bool) *SQLiteDraftRepo {
	return &SQLiteDraftRepo{db: conn, compress: compress}
}

func (r *SQLiteDraftRepo) Load(ctx context.Context) (*domain.Draft, error) {
	var (
		encoding string
		payload  []byte
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT encoding, payload FROM draft_snapshot WHERE id = ?`, currentSlot,
	).Scan(&encoding, &payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("draft snapshot: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning draft snapshot: %w", err)
	}

	d, err := decodeDraft(payload, encoding)
	if err != nil {
		return nil, fmt.Errorf("decoding draft snapshot: %w", err)
	}
	return d, nil
}

func (r *SQLiteDraftRepo) Save(ctx context.Context, d *domain.Draft) error {
	if d == nil {
		return fmt.Errorf("saving draft: nil draft")
	}
	payload, encoding, err := encodeDraft(d, r.compress)
	if err != nil {
		return err
	}

	query := `INSERT OR REPLACE INTO draft_snapshot
		(id, encoding, payload, title, name, version, item_count, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		currentSlot,
		encoding,
		payload,
		d.Metadata.Title,
		d.Metadata.Name,
		d.Metadata.Version,
		len(d.Items),
		nowUTC(),
	)
	if err != nil {
		return fmt.Errorf("upserting draft snapshot: %w", err)
	}
	return nil
}

func (r *SQLiteDraftRepo) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM draft_snapshot WHERE id = ?`, currentSlot); err != nil {
		return fmt.Errorf("clearing draft snapshot: %w", err)
	}
	return nil
}

func (r *SQLiteDraftRepo) Summary(ctx context.Context) (*DraftSummary, error) {
	var (
		s       DraftSummary
		updated sql.NullString
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT title, name, version, item_count, encoding, updated_at FROM draft_snapshot WHERE id = ?`, currentSlot,
	).Scan(&s.Title, &s.Name, &s.Version, &s.ItemCount, &s.Encoding, &updated)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("draft snapshot: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning draft summary: %w", err)
	}
	if t := parseNullableTime(updated, time.RFC3339Nano); t != nil {
		s.UpdatedAt = *t
	}
	return &s, nil
}
