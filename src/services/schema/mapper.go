package schema

import "github.com/Atuba426/Airtable-assignment/src/models"

// MapFieldType translates an Airtable field type identifier into the
// supported question type set. Total: anything unrecognized maps to
// short_text. Runs once at form creation; the result is frozen into the
// field definition and never recomputed.
func MapFieldType(sourceType string) models.FieldType {
	switch sourceType {
	case "multilineText":
		return models.TypeLongText
	case "singleSelect":
		return models.TypeSingleSelect
	case "multipleSelects":
		return models.TypeMultiSelect
	case "multipleAttachments":
		return models.TypeAttachment
	default:
		return models.TypeShortText
	}
}
