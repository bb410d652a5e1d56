package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FieldType is the closed set of question types a form can carry.
// Airtable field types are mapped into this set once, at authoring time.
type FieldType string

const (
	TypeShortText    FieldType = "short_text"
	TypeLongText     FieldType = "long_text"
	TypeSingleSelect FieldType = "single_select"
	TypeMultiSelect  FieldType = "multi_select"
	TypeAttachment   FieldType = "attachment"
)

// SupportedFieldTypes is the single source of truth for the type set,
// shared by the authoring boundary and the submission validator.
var SupportedFieldTypes = []FieldType{
	TypeShortText,
	TypeLongText,
	TypeSingleSelect,
	TypeMultiSelect,
	TypeAttachment,
}

// IsSupportedFieldType reports whether t belongs to the closed type set.
func IsSupportedFieldType(t FieldType) bool {
	for _, s := range SupportedFieldTypes {
		if s == t {
			return true
		}
	}
	return false
}

// Operator names a condition comparison. The evaluator treats any value
// outside this set as vacuously satisfied (fail-open), so an unknown
// operator can never hide a field.
type Operator string

const (
	OpEquals    Operator = "equals"
	OpNotEquals Operator = "notEquals"
	OpContains  Operator = "contains"
)

// Combinator aggregates a rule's conditions. Anything other than AND is
// evaluated with OR semantics.
type Combinator string

const (
	CombinatorAnd Combinator = "AND"
	CombinatorOr  Combinator = "OR"
)

// Condition compares a sibling field's answer against a fixed value.
// TargetFieldID is always the sibling's internal field id, never the
// Airtable field id.
type Condition struct {
	TargetFieldID string   `bson:"targetFieldId" json:"targetFieldId"`
	Operator      Operator `bson:"operator" json:"operator"`
	Value         any      `bson:"value" json:"value"`
}

// VisibilityRule controls whether a field is shown for a given answer set.
// A nil rule or an empty condition list means "always visible".
type VisibilityRule struct {
	Combinator Combinator  `bson:"combinator" json:"combinator"`
	Conditions []Condition `bson:"conditions" json:"conditions"`
}

// FieldOption is one selectable value of a select-type field. Value is the
// Airtable choice id (the machine value submissions must carry), Label the
// display name.
type FieldOption struct {
	Value string `bson:"value" json:"value"`
	Label string `bson:"label" json:"label"`
}

// FieldDefinition is one question in a form. ID is assigned once at
// authoring time and is the canonical key for answers and visibility
// lookups; SourceFieldID routes values back to Airtable and is used
// nowhere else.
type FieldDefinition struct {
	ID             string          `bson:"id" json:"id"`
	Label          string          `bson:"label" json:"label"`
	Type           FieldType       `bson:"type" json:"type"`
	Required       bool            `bson:"required" json:"required"`
	Options        []FieldOption   `bson:"options,omitempty" json:"options,omitempty"`
	SourceFieldID  string          `bson:"sourceFieldId" json:"sourceFieldId"`
	VisibilityRule *VisibilityRule `bson:"visibilityRule,omitempty" json:"visibilityRule,omitempty"`
}

// HasOptionValue reports whether v is one of the field's option values.
func (f FieldDefinition) HasOptionValue(v string) bool {
	for _, o := range f.Options {
		if o.Value == v {
			return true
		}
	}
	return false
}

// Form is a published form bound to one Airtable table. Field order is
// display order and the order submissions are validated in.
type Form struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Owner     primitive.ObjectID `bson:"owner" json:"owner"`
	Title     string             `bson:"title" json:"title"`
	BaseID    string             `bson:"baseId" json:"baseId"`
	TableID   string             `bson:"tableId" json:"tableId"`
	Fields    []FieldDefinition  `bson:"fields" json:"fields"`
	CreatedAt time.Time          `bson:"createdAt,omitempty" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt,omitempty" json:"updatedAt"`
}

// FieldByID returns the field with the given internal id, if any.
func (f *Form) FieldByID(id string) (FieldDefinition, bool) {
	for _, field := range f.Fields {
		if field.ID == id {
			return field, true
		}
	}
	return FieldDefinition{}, false
}

// --- Authoring DTOs ---

// SelectedField is one field the owner picked from the Airtable table.
// Type carries the raw Airtable type identifier; it is mapped into the
// supported set when the form is created.
type SelectedField struct {
	SourceFieldID  string          `json:"sourceFieldId" validate:"required"`
	Name           string          `json:"name"`
	Label          string          `json:"label"`
	Type           string          `json:"type" validate:"required"`
	Required       bool            `json:"required"`
	Options        []FieldOption   `json:"options"`
	VisibilityRule *VisibilityRule `json:"visibilityRule"`
}

// CreateFormRequest is the authoring request body.
type CreateFormRequest struct {
	Title   string          `json:"title" validate:"required"`
	BaseID  string          `json:"baseId" validate:"required"`
	TableID string          `json:"tableId" validate:"required"`
	Fields  []SelectedField `json:"fields" validate:"required,min=1,dive"`
}

// UpdateFormRequest edits a form's title and/or field list.
type UpdateFormRequest struct {
	Title  *string           `json:"title"`
	Fields []FieldDefinition `json:"fields"`
}

// FormSummary is the list-view projection of a form.
type FormSummary struct {
	ID        primitive.ObjectID `bson:"_id" json:"id"`
	Title     string             `bson:"title" json:"title"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
