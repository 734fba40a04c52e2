package fhir

// ResourceTypeQuestionnaire is the only resourceType the builder produces.
const ResourceTypeQuestionnaire = "Questionnaire"

// Questionnaire is the subset of the FHIR R4 Questionnaire resource that
// the builder reads and writes.
type Questionnaire struct {
	ResourceType string `json:"resourceType,omitempty"`
	ID           string `json:"id,omitempty"`
	URL          string `json:"url,omitempty"`
	Name         string `json:"name,omitempty"`
	Title        string `json:"title,omitempty"`
	Version      string `json:"version,omitempty"`
	Status       string `json:"status,omitempty"`
	Publisher    string `json:"publisher,omitempty"`
	Description  string `json:"description,omitempty"`
	Date         string `json:"date,omitempty"`
	Language     string `json:"language,omitempty"`
	Item         []Item `json:"item,omitempty"`
}

// Item is a questionnaire item. Groups nest their children in Item.
type Item struct {
	LinkID       string         `json:"linkId"`
	Prefix       string         `json:"prefix,omitempty"`
	Text         string         `json:"text,omitempty"`
	Type         string         `json:"type"`
	Required     *bool          `json:"required,omitempty"`
	Repeats      *bool          `json:"repeats,omitempty"`
	ReadOnly     *bool          `json:"readOnly,omitempty"`
	MaxLength    *int           `json:"maxLength,omitempty"`
	AnswerOption []AnswerOption `json:"answerOption,omitempty"`
	Item         []Item         `json:"item,omitempty"`
}

// AnswerOption is one permitted answer. Only one value[x] is set.
type AnswerOption struct {
	ValueCoding  *Coding `json:"valueCoding,omitempty"`
	ValueString  *string `json:"valueString,omitempty"`
	ValueInteger *int    `json:"valueInteger,omitempty"`
}

// Coding is a FHIR coded value.
type Coding struct {
	System  string `json:"system,omitempty"`
	Code    string `json:"code,omitempty"`
	Display string `json:"display,omitempty"`
}
