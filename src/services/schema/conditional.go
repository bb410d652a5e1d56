package schema

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/Atuba426/Airtable-assignment/src/models"
)

// EvaluateCondition evaluates one visibility condition against a partial
// answer set. Answers are keyed by internal field id; a missing key reads
// as nil. Unknown operators are vacuously satisfied so a malformed or
// future rule can never hide a field (fail-open, deliberate).
func EvaluateCondition(cond models.Condition, answers map[string]any) bool {
	value := answers[cond.TargetFieldID]

	switch cond.Operator {
	case models.OpEquals:
		return equalValues(value, cond.Value)

	case models.OpNotEquals:
		// Strict negation of equals on the same lookup: a missing answer
		// is notEquals any defined value, and two absent values are equal.
		return !equalValues(value, cond.Value)

	case models.OpContains:
		if seq, ok := value.([]any); ok {
			for _, item := range seq {
				if equalValues(item, cond.Value) {
					return true
				}
			}
			return false
		}
		return strings.Contains(stringify(value), stringify(cond.Value))

	default:
		return true
	}
}

// IsVisible reports whether a field with the given rule is shown for the
// answer set. A nil rule or empty condition list is always visible.
func IsVisible(rule *models.VisibilityRule, answers map[string]any) bool {
	if rule == nil || len(rule.Conditions) == 0 {
		return true
	}

	if rule.Combinator == models.CombinatorAnd {
		for _, cond := range rule.Conditions {
			if !EvaluateCondition(cond, answers) {
				return false
			}
		}
		return true
	}

	// OR, and any other combinator value.
	for _, cond := range rule.Conditions {
		if EvaluateCondition(cond, answers) {
			return true
		}
	}
	return false
}

// VisibleFields filters fields to those visible for the answer set,
// preserving field order. Pure; called fresh on every validation pass
// because visibility depends on the submitted answers themselves.
func VisibleFields(fields []models.FieldDefinition, answers map[string]any) []models.FieldDefinition {
	visible := make([]models.FieldDefinition, 0, len(fields))
	for _, field := range fields {
		if IsVisible(field.VisibilityRule, answers) {
			visible = append(visible, field)
		}
	}
	return visible
}

// equalValues is strict equality without coercion, except that whole
// numbers stored in BSON (int32/int64) must still match the float64 the
// JSON decoder produces for the same literal.
func equalValues(a, b any) bool {
	if an, aok := asFloat(a); aok {
		bn, bok := asFloat(b)
		return bok && an == bn
	}
	return reflect.DeepEqual(a, b)
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

// stringify renders a value for the substring form of contains. Absent
// answers coerce to the empty string.
func stringify(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	default:
		return fmt.Sprintf("%v", v)
	}
}
