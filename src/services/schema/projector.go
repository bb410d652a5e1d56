package schema

import "github.com/Atuba426/Airtable-assignment/src/models"

// ProjectSchema builds the client-facing schema of a form. Visibility
// rules are exposed as data so a renderer can optimistically show and
// hide fields while the user types; the projection is advisory only and
// the submission validator remains the source of truth.
func ProjectSchema(form *models.Form) models.FormSchema {
	fields := make([]models.SchemaField, 0, len(form.Fields))
	for _, f := range form.Fields {
		fields = append(fields, models.SchemaField{
			ID:        f.ID,
			Label:     f.Label,
			Type:      f.Type,
			Required:  f.Required,
			Options:   f.Options,
			VisibleIf: f.VisibilityRule,
		})
	}

	return models.FormSchema{
		ID:     form.ID.Hex(),
		Title:  form.Title,
		Fields: fields,
	}
}
