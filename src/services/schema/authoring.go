package schema

import (
	"fmt"

	"github.com/Atuba426/Airtable-assignment/src/models"
)

// ValidateFields enforces the authoring-time invariants of a field list:
// non-empty unique ids, supported types, and visibility rules that name a
// target field other than their own. Unknown operators are accepted here
// on purpose; they fall back to "always satisfied" at evaluation time.
func ValidateFields(fields []models.FieldDefinition) error {
	seen := make(map[string]struct{}, len(fields))

	for _, field := range fields {
		if field.ID == "" {
			return fmt.Errorf("field %q has no id", field.Label)
		}
		if _, dup := seen[field.ID]; dup {
			return fmt.Errorf("duplicate field id %q", field.ID)
		}
		seen[field.ID] = struct{}{}

		if !models.IsSupportedFieldType(field.Type) {
			return fmt.Errorf("unsupported field type %q for %s", field.Type, field.Label)
		}

		if field.VisibilityRule == nil {
			continue
		}
		for _, cond := range field.VisibilityRule.Conditions {
			if cond.TargetFieldID == "" {
				return fmt.Errorf("field %q has a condition without a target field", field.Label)
			}
			if cond.TargetFieldID == field.ID {
				return fmt.Errorf("field %q visibility rule references its own field", field.Label)
			}
		}
	}

	return nil
}
