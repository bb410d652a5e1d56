package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Submission is one accepted, validated answer set for a form. Answers are
// keyed by the internal field id; hidden-field answers are dropped before
// the document is written. AirtableRecordID stays nil until the write-back
// to Airtable succeeds.
type Submission struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	FormID            primitive.ObjectID `bson:"formId" json:"formId"`
	Answers           map[string]any     `bson:"answers" json:"answers"`
	AirtableRecordID  *string            `bson:"airtableRecordId" json:"airtableRecordId"`
	DeletedInAirtable bool               `bson:"deletedInAirtable" json:"deletedInAirtable"`
	CreatedAt         time.Time          `bson:"createdAt,omitempty" json:"createdAt"`
	UpdatedAt         time.Time          `bson:"updatedAt,omitempty" json:"updatedAt"`
}

// ValidationResult is the outcome of checking a candidate answer set
// against a form. Errors is the full, ordered list of violations; it is
// never truncated to the first failure.
type ValidationResult struct {
	Accepted bool     `json:"accepted"`
	Errors   []string `json:"errors"`
}

// WebhookEvent is the inbound Airtable change notification payload.
type WebhookEvent struct {
	Type   string         `json:"type" validate:"required"`
	Record *WebhookRecord `json:"record" validate:"required"`
}

// WebhookRecord identifies the upstream record a webhook event refers to.
type WebhookRecord struct {
	ID     string         `json:"id" validate:"required"`
	Fields map[string]any `json:"fields"`
}

const (
	WebhookRecordUpdated = "record.updated"
	WebhookRecordDeleted = "record.deleted"
)
