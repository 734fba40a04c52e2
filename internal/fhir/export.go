package fhir

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/cardinalkit/surveybuilder/internal/domain"
)

// FromDraft rebuilds a questionnaire from a draft, following its order tree.
// Items that are not reachable from the order tree are not exported.
func FromDraft(d *domain.Draft) *Questionnaire {
	m := d.Metadata
	return &Questionnaire{
		ResourceType: ResourceTypeQuestionnaire,
		ID:           m.ID,
		URL:          m.URL,
		Name:         m.Name,
		Title:        m.Title,
		Version:      m.Version,
		Status:       m.Status,
		Publisher:    m.Publisher,
		Description:  m.Description,
		Date:         m.Date,
		Language:     m.Language,
		Item:         exportItems(d.Order, d.Items),
	}
}

func exportItems(order []domain.OrderItem, items map[string]domain.Item) []Item {
	var out []Item
	for _, o := range order {
		it, ok := items[o.LinkID]
		if !ok {
			continue
		}
		out = append(out, Item{
			LinkID:       it.LinkID,
			Prefix:       it.Prefix,
			Text:         it.Text,
			Type:         string(it.Type),
			Required:     optionalBool(it.Required),
			Repeats:      optionalBool(it.Repeats),
			ReadOnly:     optionalBool(it.ReadOnly),
			MaxLength:    it.MaxLength,
			AnswerOption: exportAnswerOptions(it.AnswerOptions),
			Item:         exportItems(o.Items, items),
		})
	}
	return out
}

func exportAnswerOptions(opts []domain.AnswerOption) []AnswerOption {
	if len(opts) == 0 {
		return nil
	}
	out := make([]AnswerOption, len(opts))
	for i, o := range opts {
		out[i] = exportAnswerOption(o)
	}
	return out
}

// exportAnswerOption writes o back as the value[x] it was imported as. An
// integer option whose code no longer parses falls back to a coding.
func exportAnswerOption(o domain.AnswerOption) AnswerOption {
	switch o.Kind {
	case domain.AnswerString:
		v := o.Code
		return AnswerOption{ValueString: &v}
	case domain.AnswerInteger:
		if n, err := strconv.Atoi(o.Code); err == nil {
			return AnswerOption{ValueInteger: &n}
		}
	}
	return AnswerOption{ValueCoding: &Coding{System: o.System, Code: o.Code, Display: o.Display}}
}

func optionalBool(b bool) *bool {
	if !b {
		return nil
	}
	return &b
}

// Marshal renders a questionnaire as indented JSON.
func Marshal(q *Questionnaire) ([]byte, error) {
	data, err := json.MarshalIndent(q, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling questionnaire: %w", err)
	}
	return append(data, '\n'), nil
}
