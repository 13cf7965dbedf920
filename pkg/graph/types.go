package graph

// EntityType is the category assigned to a named entity by the recognizer.
type EntityType string

const (
	EntityTypePerson       EntityType = "PERSON"
	EntityTypeOrganization EntityType = "ORG"
	EntityTypeGPE          EntityType = "GPE"
	EntityTypeLocation     EntityType = "LOC"
	EntityTypeFacility     EntityType = "FAC"
	EntityTypeDate         EntityType = "DATE"
	EntityTypeEvent        EntityType = "EVENT"
	EntityTypeWorkOfArt    EntityType = "WORK_OF_ART"
	EntityTypeProduct      EntityType = "PRODUCT"
	EntityTypeLanguage     EntityType = "LANGUAGE"
	EntityTypeMoney        EntityType = "MONEY"
)

// schemaTerms maps entity types to schema.org class names. Types missing
// from this table are unmapped and must not reach the output namespace.
var schemaTerms = map[EntityType]string{
	EntityTypePerson:       "Person",
	EntityTypeOrganization: "Organization",
	EntityTypeGPE:          "Place",
	EntityTypeLocation:     "Place",
	EntityTypeFacility:     "Place",
	EntityTypeDate:         "Date",
	EntityTypeEvent:        "Event",
	EntityTypeWorkOfArt:    "CreativeWork",
	EntityTypeProduct:      "Product",
	EntityTypeLanguage:     "Language",
	EntityTypeMoney:        "MonetaryAmount",
}

// SchemaTerm returns the schema.org class name for an entity type.
// The second return value is false for unmapped types.
func SchemaTerm(t EntityType) (string, bool) {
	term, ok := schemaTerms[t]
	return term, ok
}

// Entity is a named entity observed in a document.
type Entity struct {
	Text string     `json:"text"`
	Type EntityType `json:"type"`
}

// Relation is a semantic relation observed in a document. Name holds the
// surface or canonical relation name; Domain and Range are type names from
// the relation vocabulary and default to "Unknown" when unspecified.
type Relation struct {
	Name        string `json:"relation"`
	Description string `json:"description"`
	Domain      string `json:"domain"`
	Range       string `json:"range"`
}

// RelationDetails is the value side of a relation vocabulary entry, as it
// appears in the custom-relations JSON configuration.
type RelationDetails struct {
	Description string `json:"description"`
	Domain      string `json:"domain"`
	Range       string `json:"range"`
}

// UnknownType is the fallback domain/range for vocabulary entries that do
// not declare one.
const UnknownType = "Unknown"
