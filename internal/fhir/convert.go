package fhir

import (
	"strconv"

	"github.com/cardinalkit/surveybuilder/internal/domain"
	"github.com/google/uuid"
)

// ToDraft maps a questionnaire into a complete draft. The result replaces
// the active draft wholesale. Items without a linkId get a generated one;
// a repeated linkId keeps its first occurrence.
func ToDraft(q *Questionnaire) *domain.Draft {
	d := domain.NewDraft()

	d.Metadata = domain.Metadata{
		ID:          q.ID,
		Title:       q.Title,
		Name:        q.Name,
		Version:     q.Version,
		URL:         q.URL,
		Status:      domain.CoalesceStr(q.Status, d.Metadata.Status),
		Publisher:   q.Publisher,
		Description: q.Description,
		Date:        q.Date,
		Language:    domain.CoalesceStr(q.Language, d.Metadata.Language),
	}

	d.Order = convertItems(q.Item, d.Items)
	return d
}

func convertItems(items []Item, into map[string]domain.Item) []domain.OrderItem {
	order := make([]domain.OrderItem, 0, len(items))
	for _, it := range items {
		linkID := it.LinkID
		if linkID == "" {
			linkID = uuid.New().String()
		}
		if _, dup := into[linkID]; dup {
			continue
		}

		into[linkID] = domain.Item{
			LinkID:        linkID,
			Text:          it.Text,
			Prefix:        it.Prefix,
			Type:          domain.ItemType(domain.CoalesceStr(it.Type, string(domain.ItemString))),
			Required:      domain.BoolFromPtrWithDefault(false, it.Required),
			Repeats:       domain.BoolFromPtrWithDefault(false, it.Repeats),
			ReadOnly:      domain.BoolFromPtrWithDefault(false, it.ReadOnly),
			MaxLength:     it.MaxLength,
			AnswerOptions: convertAnswerOptions(it.AnswerOption),
		}
		order = append(order, domain.OrderItem{
			LinkID: linkID,
			Items:  convertItems(it.Item, into),
		})
	}
	return order
}

func convertAnswerOptions(opts []AnswerOption) []domain.AnswerOption {
	if len(opts) == 0 {
		return nil
	}
	out := make([]domain.AnswerOption, 0, len(opts))
	for _, o := range opts {
		switch {
		case o.ValueCoding != nil:
			out = append(out, domain.AnswerOption{
				Kind:    domain.AnswerCoding,
				System:  o.ValueCoding.System,
				Code:    o.ValueCoding.Code,
				Display: o.ValueCoding.Display,
			})
		case o.ValueString != nil:
			out = append(out, domain.AnswerOption{Kind: domain.AnswerString, Code: *o.ValueString, Display: *o.ValueString})
		case o.ValueInteger != nil:
			v := strconv.Itoa(*o.ValueInteger)
			out = append(out, domain.AnswerOption{Kind: domain.AnswerInteger, Code: v, Display: v})
		}
	}
	return out
}
