package domain

// ItemType is the FHIR questionnaire item type.
type ItemType string

const (
	ItemGroup      ItemType = "group"
	ItemDisplay    ItemType = "display"
	ItemBoolean    ItemType = "boolean"
	ItemDecimal    ItemType = "decimal"
	ItemInteger    ItemType = "integer"
	ItemDate       ItemType = "date"
	ItemDateTime   ItemType = "dateTime"
	ItemTime       ItemType = "time"
	ItemString     ItemType = "string"
	ItemText       ItemType = "text"
	ItemURL        ItemType = "url"
	ItemChoice     ItemType = "choice"
	ItemOpenChoice ItemType = "open-choice"
	ItemAttachment ItemType = "attachment"
	ItemReference  ItemType = "reference"
	ItemQuantity   ItemType = "quantity"
)

var knownItemTypes = map[ItemType]bool{
	ItemGroup: true, ItemDisplay: true, ItemBoolean: true, ItemDecimal: true,
	ItemInteger: true, ItemDate: true, ItemDateTime: true, ItemTime: true,
	ItemString: true, ItemText: true, ItemURL: true, ItemChoice: true,
	ItemOpenChoice: true, ItemAttachment: true, ItemReference: true, ItemQuantity: true,
}

// Known reports whether t is one of the FHIR R4 item types.
func (t ItemType) Known() bool {
	return knownItemTypes[t]
}

// AnswerKind is the FHIR value type of an answer option.
type AnswerKind string

const (
	AnswerCoding  AnswerKind = "coding"
	AnswerString  AnswerKind = "string"
	AnswerInteger AnswerKind = "integer"
)

// MetadataField names an editable questionnaire metadata attribute.
type MetadataField string

const (
	MetaTitle       MetadataField = "title"
	MetaName        MetadataField = "name"
	MetaVersion     MetadataField = "version"
	MetaURL         MetadataField = "url"
	MetaStatus      MetadataField = "status"
	MetaPublisher   MetadataField = "publisher"
	MetaDescription MetadataField = "description"
	MetaLanguage    MetadataField = "language"
)

// RestoreDecision is the ephemeral outcome of offering a stored draft back
// to the user.
type RestoreDecision string

const (
	DecisionNone     RestoreDecision = "none"
	DecisionPending  RestoreDecision = "pending"
	DecisionAccepted RestoreDecision = "accepted"
	DecisionDeclined RestoreDecision = "declined"
)
