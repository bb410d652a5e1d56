package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Atuba426/Airtable-assignment/src/models"
)

func cond(target string, op models.Operator, value any) models.Condition {
	return models.Condition{TargetFieldID: target, Operator: op, Value: value}
}

func TestEvaluateCondition(t *testing.T) {
	t.Run("EqualsMatchesSameValue", func(t *testing.T) {
		answers := map[string]any{"q_a": "yes"}
		assert.True(t, EvaluateCondition(cond("q_a", models.OpEquals, "yes"), answers))
		assert.False(t, EvaluateCondition(cond("q_a", models.OpEquals, "no"), answers))
	})

	t.Run("EqualsDoesNotCoerceTypes", func(t *testing.T) {
		answers := map[string]any{"q_a": "5"}
		assert.False(t, EvaluateCondition(cond("q_a", models.OpEquals, float64(5)), answers))
	})

	t.Run("EqualsMatchesNumbersAcrossIntegerWidths", func(t *testing.T) {
		// A rule value round-tripped through BSON can come back as int32
		// while the submitted answer is a JSON float64.
		answers := map[string]any{"q_a": float64(5)}
		assert.True(t, EvaluateCondition(cond("q_a", models.OpEquals, int32(5)), answers))
		assert.True(t, EvaluateCondition(cond("q_a", models.OpEquals, int64(5)), answers))
	})

	t.Run("TwoAbsentValuesAreEqual", func(t *testing.T) {
		assert.True(t, EvaluateCondition(cond("q_x", models.OpEquals, nil), map[string]any{}))
		assert.False(t, EvaluateCondition(cond("q_x", models.OpNotEquals, nil), map[string]any{}))
	})

	t.Run("MissingAnswerIsNotEqualToDefinedValue", func(t *testing.T) {
		assert.False(t, EvaluateCondition(cond("q_x", models.OpEquals, "yes"), map[string]any{}))
		assert.True(t, EvaluateCondition(cond("q_x", models.OpNotEquals, "yes"), map[string]any{}))
	})

	t.Run("NotEqualsIsExactComplementOfEquals", func(t *testing.T) {
		answerSets := []map[string]any{
			{},
			{"q_a": "yes"},
			{"q_a": ""},
			{"q_a": nil},
			{"q_a": []any{"a", "b"}},
			{"q_a": float64(3)},
		}
		values := []any{nil, "", "yes", float64(3), []any{"a"}}

		for _, answers := range answerSets {
			for _, value := range values {
				eq := EvaluateCondition(cond("q_a", models.OpEquals, value), answers)
				ne := EvaluateCondition(cond("q_a", models.OpNotEquals, value), answers)
				assert.Equal(t, !eq, ne, "answers=%v value=%v", answers, value)
			}
		}
	})

	t.Run("ContainsOnSequenceIsMembership", func(t *testing.T) {
		answers := map[string]any{"q_a": []any{"a", "b"}}
		assert.True(t, EvaluateCondition(cond("q_a", models.OpContains, "b"), answers))
		assert.False(t, EvaluateCondition(cond("q_a", models.OpContains, "c"), answers))
	})

	t.Run("ContainsOnScalarIsSubstring", func(t *testing.T) {
		answers := map[string]any{"q_a": "banana"}
		assert.True(t, EvaluateCondition(cond("q_a", models.OpContains, "an"), answers))
		assert.False(t, EvaluateCondition(cond("q_a", models.OpContains, "xy"), answers))
	})

	t.Run("ContainsOnAbsentAnswerIsFalse", func(t *testing.T) {
		assert.False(t, EvaluateCondition(cond("q_a", models.OpContains, "an"), map[string]any{}))
	})

	t.Run("ContainsWithEmptyValueMatchesAnything", func(t *testing.T) {
		// "" is a substring of everything, including the empty coercion
		// of an absent answer. Mirrors the substring semantics exactly.
		assert.True(t, EvaluateCondition(cond("q_a", models.OpContains, ""), map[string]any{}))
	})

	t.Run("UnknownOperatorFailsOpen", func(t *testing.T) {
		answers := map[string]any{"q_a": "no"}
		assert.True(t, EvaluateCondition(cond("q_a", "greaterThan", "yes"), answers))
		assert.True(t, EvaluateCondition(cond("q_a", "greaterThan", "yes"), map[string]any{}))
		assert.True(t, EvaluateCondition(cond("q_a", "", nil), map[string]any{}))
	})
}

func TestIsVisible(t *testing.T) {
	condTrue := cond("q_a", models.OpEquals, "yes")
	condFalse := cond("q_a", models.OpEquals, "no")
	answers := map[string]any{"q_a": "yes"}

	t.Run("NilRuleIsVisible", func(t *testing.T) {
		assert.True(t, IsVisible(nil, map[string]any{}))
	})

	t.Run("EmptyConditionListIsVisible", func(t *testing.T) {
		assert.True(t, IsVisible(&models.VisibilityRule{Combinator: models.CombinatorAnd}, map[string]any{}))
		assert.True(t, IsVisible(&models.VisibilityRule{Combinator: models.CombinatorOr}, map[string]any{}))
	})

	t.Run("AndNeedsEveryCondition", func(t *testing.T) {
		rule := &models.VisibilityRule{
			Combinator: models.CombinatorAnd,
			Conditions: []models.Condition{condTrue, condFalse},
		}
		assert.False(t, IsVisible(rule, answers))
	})

	t.Run("OrNeedsAnyCondition", func(t *testing.T) {
		rule := &models.VisibilityRule{
			Combinator: models.CombinatorOr,
			Conditions: []models.Condition{condTrue, condFalse},
		}
		assert.True(t, IsVisible(rule, answers))
	})

	t.Run("UnknownCombinatorBehavesLikeOr", func(t *testing.T) {
		rule := &models.VisibilityRule{
			Combinator: "XOR",
			Conditions: []models.Condition{condTrue, condFalse},
		}
		assert.True(t, IsVisible(rule, answers))
	})
}

func TestVisibleFields(t *testing.T) {
	fields := []models.FieldDefinition{
		{ID: "q_1", Label: "Always", Type: models.TypeShortText},
		{ID: "q_2", Label: "WhenYes", Type: models.TypeShortText, VisibilityRule: &models.VisibilityRule{
			Combinator: models.CombinatorAnd,
			Conditions: []models.Condition{cond("q_1", models.OpEquals, "yes")},
		}},
		{ID: "q_3", Label: "AlsoAlways", Type: models.TypeLongText},
	}

	t.Run("RulelessFieldsAlwaysVisible", func(t *testing.T) {
		visible := VisibleFields(fields, map[string]any{})
		ids := []string{}
		for _, f := range visible {
			ids = append(ids, f.ID)
		}
		assert.Equal(t, []string{"q_1", "q_3"}, ids)
	})

	t.Run("OrderPreserved", func(t *testing.T) {
		visible := VisibleFields(fields, map[string]any{"q_1": "yes"})
		ids := []string{}
		for _, f := range visible {
			ids = append(ids, f.ID)
		}
		assert.Equal(t, []string{"q_1", "q_2", "q_3"}, ids)
	})
}
