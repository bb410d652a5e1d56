package submission

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Atuba426/Airtable-assignment/src/models"
)

func TestSourceFields(t *testing.T) {
	form := &models.Form{
		Fields: []models.FieldDefinition{
			{ID: "q_name", SourceFieldID: "fldName", Type: models.TypeShortText},
			{ID: "q_color", SourceFieldID: "fldColor", Type: models.TypeSingleSelect},
			{ID: "q_notes", SourceFieldID: "fldNotes", Type: models.TypeLongText},
		},
	}

	t.Run("TranslatesInternalIDsToAirtableFieldIDs", func(t *testing.T) {
		fields := SourceFields(form, map[string]any{
			"q_name":  "Ada",
			"q_color": "selRed",
		})
		assert.Equal(t, map[string]any{
			"fldName":  "Ada",
			"fldColor": "selRed",
		}, fields)
	})

	t.Run("SkipsUnansweredFields", func(t *testing.T) {
		fields := SourceFields(form, map[string]any{"q_notes": "hi"})
		assert.Equal(t, map[string]any{"fldNotes": "hi"}, fields)
	})

	t.Run("IgnoresKeysThatAreNotFormFields", func(t *testing.T) {
		fields := SourceFields(form, map[string]any{"bogus": "x"})
		assert.Empty(t, fields)
	})
}
