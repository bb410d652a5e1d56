package schema

import (
	"fmt"
	"strings"

	"github.com/Atuba426/Airtable-assignment/src/models"
)

// ValidateSubmission checks a candidate answer set against the fields
// that are visible for that same answer set. Visibility is recomputed
// here from the submitted answers, never taken from the client. Every
// violation is collected; there is no fail-fast on the first error.
func ValidateSubmission(form *models.Form, answers map[string]any) models.ValidationResult {
	errs := []string{}

	for _, field := range VisibleFields(form.Fields, answers) {
		value, exists := answers[field.ID]
		present := exists && value != nil && value != ""

		if field.Required && !present {
			errs = append(errs, fmt.Sprintf("%s is required", field.Label))
		}
		if !present {
			continue
		}

		switch field.Type {
		case models.TypeSingleSelect:
			s, ok := value.(string)
			if !ok || !field.HasOptionValue(s) {
				errs = append(errs, fmt.Sprintf("Invalid option for %s", field.Label))
			}

		case models.TypeMultiSelect:
			seq, ok := value.([]any)
			if !ok {
				errs = append(errs, fmt.Sprintf("%s must be a list of options", field.Label))
				continue
			}
			var invalid []string
			for _, item := range seq {
				s, ok := item.(string)
				if !ok || !field.HasOptionValue(s) {
					invalid = append(invalid, stringify(item))
				}
			}
			if len(invalid) > 0 {
				errs = append(errs, fmt.Sprintf("Invalid multi-select options for %s: %s",
					field.Label, strings.Join(invalid, ", ")))
			}
		}
	}

	return models.ValidationResult{Accepted: len(errs) == 0, Errors: errs}
}

// VisibleAnswers restricts answers to the fields visible for that answer
// set. Hidden-field answers were never validated, so they are dropped
// before the submission is persisted.
func VisibleAnswers(form *models.Form, answers map[string]any) map[string]any {
	kept := make(map[string]any)
	for _, field := range VisibleFields(form.Fields, answers) {
		if value, ok := answers[field.ID]; ok {
			kept[field.ID] = value
		}
	}
	return kept
}
