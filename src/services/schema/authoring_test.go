package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Atuba426/Airtable-assignment/src/models"
)

func TestValidateFields(t *testing.T) {
	valid := []models.FieldDefinition{
		{ID: "q_1", Label: "One", Type: models.TypeShortText},
		{ID: "q_2", Label: "Two", Type: models.TypeSingleSelect, VisibilityRule: &models.VisibilityRule{
			Combinator: models.CombinatorAnd,
			Conditions: []models.Condition{{TargetFieldID: "q_1", Operator: models.OpEquals, Value: "yes"}},
		}},
	}

	t.Run("AcceptsValidFields", func(t *testing.T) {
		assert.NoError(t, ValidateFields(valid))
	})

	t.Run("RejectsEmptyID", func(t *testing.T) {
		fields := []models.FieldDefinition{{Label: "NoID", Type: models.TypeShortText}}
		assert.Error(t, ValidateFields(fields))
	})

	t.Run("RejectsDuplicateIDs", func(t *testing.T) {
		fields := []models.FieldDefinition{
			{ID: "q_1", Label: "One", Type: models.TypeShortText},
			{ID: "q_1", Label: "Other", Type: models.TypeShortText},
		}
		err := ValidateFields(fields)
		assert.ErrorContains(t, err, "duplicate field id")
	})

	t.Run("RejectsUnsupportedType", func(t *testing.T) {
		fields := []models.FieldDefinition{{ID: "q_1", Label: "One", Type: "barcode"}}
		err := ValidateFields(fields)
		assert.ErrorContains(t, err, "unsupported field type")
	})

	t.Run("RejectsSelfReferencingRule", func(t *testing.T) {
		fields := []models.FieldDefinition{
			{ID: "q_1", Label: "One", Type: models.TypeShortText, VisibilityRule: &models.VisibilityRule{
				Combinator: models.CombinatorAnd,
				Conditions: []models.Condition{{TargetFieldID: "q_1", Operator: models.OpEquals, Value: "x"}},
			}},
		}
		err := ValidateFields(fields)
		assert.ErrorContains(t, err, "references its own field")
	})

	t.Run("RejectsConditionWithoutTarget", func(t *testing.T) {
		fields := []models.FieldDefinition{
			{ID: "q_1", Label: "One", Type: models.TypeShortText, VisibilityRule: &models.VisibilityRule{
				Combinator: models.CombinatorOr,
				Conditions: []models.Condition{{Operator: models.OpEquals, Value: "x"}},
			}},
		}
		assert.Error(t, ValidateFields(fields))
	})

	t.Run("AcceptsUnknownOperator", func(t *testing.T) {
		// Unknown operators fall back to "always satisfied" when the
		// rule is evaluated; authoring does not reject them.
		fields := []models.FieldDefinition{
			{ID: "q_1", Label: "One", Type: models.TypeShortText},
			{ID: "q_2", Label: "Two", Type: models.TypeShortText, VisibilityRule: &models.VisibilityRule{
				Combinator: models.CombinatorAnd,
				Conditions: []models.Condition{{TargetFieldID: "q_1", Operator: "greaterThan", Value: 3}},
			}},
		}
		assert.NoError(t, ValidateFields(fields))
	})
}
