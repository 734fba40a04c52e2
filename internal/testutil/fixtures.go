package testutil

import (
	"fmt"

	"github.com/cardinalkit/surveybuilder/internal/domain"
)

// DraftOption customizes a draft built by NewTestDraft.
type DraftOption func(*domain.Draft)

func WithMetadata(title, name, version string) DraftOption {
	return func(d *domain.Draft) {
		d.Metadata.Title = title
		d.Metadata.Name = name
		d.Metadata.Version = version
	}
}

func WithURL(u string) DraftOption {
	return func(d *domain.Draft) {
		d.Metadata.URL = u
	}
}

// WithItem appends a top-level item to the order tree.
func WithItem(linkID string, typ domain.ItemType, text string) DraftOption {
	return func(d *domain.Draft) {
		d.Items[linkID] = domain.Item{LinkID: linkID, Type: typ, Text: text}
		d.Order = append(d.Order, domain.OrderItem{LinkID: linkID, Items: []domain.OrderItem{}})
	}
}

// WithItems appends n string questions named q1..qn.
func WithItems(n int) DraftOption {
	return func(d *domain.Draft) {
		for i := 1; i <= n; i++ {
			id := fmt.Sprintf("q%d", i)
			WithItem(id, domain.ItemString, "Question "+id)(d)
		}
	}
}

// NewTestDraft returns an empty draft with the given options applied.
func NewTestDraft(opts ...DraftOption) *domain.Draft {
	d := domain.NewDraft()
	for _, opt := range opts {
		opt(d)
	}
	return d
}
