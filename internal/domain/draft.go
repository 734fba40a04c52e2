package domain

// Metadata holds the questionnaire-level attributes of a draft. Every field
// is optional until the user assigns it.
type Metadata struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title,omitempty"`
	Name        string `json:"name,omitempty"`
	Version     string `json:"version,omitempty"`
	URL         string `json:"url,omitempty"`
	Status      string `json:"status,omitempty"`
	Publisher   string `json:"publisher,omitempty"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date,omitempty"`
	Language    string `json:"language,omitempty"`
}

// Field returns the value of a named metadata field.
func (m Metadata) Field(f MetadataField) string {
	switch f {
	case MetaTitle:
		return m.Title
	case MetaName:
		return m.Name
	case MetaVersion:
		return m.Version
	case MetaURL:
		return m.URL
	case MetaStatus:
		return m.Status
	case MetaPublisher:
		return m.Publisher
	case MetaDescription:
		return m.Description
	case MetaLanguage:
		return m.Language
	}
	return ""
}

// AnswerOption is one selectable answer of a choice item. Kind records the
// value[x] the option was imported as; an empty Kind is a coding.
type AnswerOption struct {
	Kind    AnswerKind `json:"kind,omitempty"`
	System  string     `json:"system,omitempty"`
	Code    string     `json:"code,omitempty"`
	Display string     `json:"display,omitempty"`
}

// Item is a single question definition, keyed by LinkID in Draft.Items.
type Item struct {
	LinkID        string         `json:"linkId"`
	Text          string         `json:"text,omitempty"`
	Prefix        string         `json:"prefix,omitempty"`
	Type          ItemType       `json:"type"`
	Required      bool           `json:"required,omitempty"`
	Repeats       bool           `json:"repeats,omitempty"`
	ReadOnly      bool           `json:"readOnly,omitempty"`
	MaxLength     *int           `json:"maxLength,omitempty"`
	AnswerOptions []AnswerOption `json:"answerOption,omitempty"`
}

// OrderItem positions an item in the question tree. Children are nested
// under their group.
type OrderItem struct {
	LinkID string      `json:"linkId"`
	Items  []OrderItem `json:"items"`
}

// Draft is the in-progress questionnaire held by an editing session.
type Draft struct {
	Metadata Metadata        `json:"qMetadata"`
	Items    map[string]Item `json:"qItems"`
	Order    []OrderItem     `json:"qOrder"`
}

// NewDraft returns the empty draft a fresh session starts from.
func NewDraft() *Draft {
	return &Draft{
		Metadata: Metadata{
			Status:   "draft",
			Language: "en-US",
		},
		Items: map[string]Item{},
		Order: []OrderItem{},
	}
}

// InProgress reports whether the draft holds at least one item. Drafts with
// only metadata are treated as noise rather than real work.
func (d *Draft) InProgress() bool {
	return d != nil && len(d.Items) > 0
}

// Normalize replaces nil collections with empty ones so that decoded drafts
// compare equal to freshly built ones.
func (d *Draft) Normalize() {
	if d.Items == nil {
		d.Items = map[string]Item{}
	}
	if d.Order == nil {
		d.Order = []OrderItem{}
	}
	normalizeOrder(d.Order)
}

func normalizeOrder(order []OrderItem) {
	for i := range order {
		if order[i].Items == nil {
			order[i].Items = []OrderItem{}
		}
		normalizeOrder(order[i].Items)
	}
}

// Clone returns a deep copy of the draft.
func (d *Draft) Clone() *Draft {
	if d == nil {
		return nil
	}
	out := &Draft{
		Metadata: d.Metadata,
		Items:    make(map[string]Item, len(d.Items)),
		Order:    cloneOrder(d.Order),
	}
	for id, it := range d.Items {
		out.Items[id] = it.clone()
	}
	if out.Order == nil {
		out.Order = []OrderItem{}
	}
	return out
}

func (it Item) clone() Item {
	if it.MaxLength != nil {
		v := *it.MaxLength
		it.MaxLength = &v
	}
	if it.AnswerOptions != nil {
		opts := make([]AnswerOption, len(it.AnswerOptions))
		copy(opts, it.AnswerOptions)
		it.AnswerOptions = opts
	}
	return it
}

func cloneOrder(order []OrderItem) []OrderItem {
	if order == nil {
		return nil
	}
	out := make([]OrderItem, len(order))
	for i, o := range order {
		out[i] = OrderItem{LinkID: o.LinkID, Items: cloneOrder(o.Items)}
	}
	return out
}

// Walk visits the order tree depth first, calling fn with each item and its
// nesting depth. Order entries whose item is missing from Items are skipped.
func (d *Draft) Walk(fn func(item Item, depth int)) {
	var walk func(order []OrderItem, depth int)
	walk = func(order []OrderItem, depth int) {
		for _, o := range order {
			it, ok := d.Items[o.LinkID]
			if !ok {
				continue
			}
			fn(it, depth)
			walk(o.Items, depth+1)
		}
	}
	walk(d.Order, 0)
}
