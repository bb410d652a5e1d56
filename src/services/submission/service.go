package submission

import (
	"context"
	"errors"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Atuba426/Airtable-assignment/src/database"
	"github.com/Atuba426/Airtable-assignment/src/models"
	"github.com/Atuba426/Airtable-assignment/src/services/forms"
	"github.com/Atuba426/Airtable-assignment/src/services/schema"
)

var ErrSubmissionNotFound = errors.New("submission not found")

// Submit runs the whole pipeline for one submission attempt: validate
// against the currently visible fields, drop hidden-field answers,
// attempt the Airtable write-back, and persist the submission with the
// write-back's outcome. A failed write-back never fails the submission;
// the record id stays nil and a retry task is queued.
func Submit(ctx context.Context, formID primitive.ObjectID, answers map[string]any) (*models.Submission, models.ValidationResult, error) {
	form, err := forms.GetFormByID(ctx, formID)
	if err != nil {
		return nil, models.ValidationResult{}, err
	}

	result := schema.ValidateSubmission(form, answers)
	if !result.Accepted {
		return nil, result, nil
	}

	kept := schema.VisibleAnswers(form, answers)

	var recordID *string
	rec, wbErr := Writeback(ctx, form, kept)
	if wbErr != nil {
		log.Printf("[submission] write-back failed for form %s: %v", form.ID.Hex(), wbErr)
	} else {
		recordID = &rec
	}

	now := time.Now()
	sub := &models.Submission{
		FormID:           form.ID,
		Answers:          kept,
		AirtableRecordID: recordID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	res, err := database.SubmissionCollection.InsertOne(ctx, sub)
	if err != nil {
		return nil, result, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		sub.ID = oid
	}

	if wbErr != nil {
		enqueueWriteback(sub.ID)
	}

	return sub, result, nil
}

// GetByFormID lists a form's submissions, newest first.
func GetByFormID(ctx context.Context, formID primitive.ObjectID) ([]models.Submission, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := database.SubmissionCollection.Find(ctx, bson.M{"formId": formID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	subs := []models.Submission{}
	if err := cursor.All(ctx, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

// ApplyWebhook reflects an upstream record change onto the stored
// submission: an update overwrites the answers verbatim, a delete sets
// the deletion flag. No visibility or validation logic runs here.
// Returns false when no submission matches the record id.
func ApplyWebhook(ctx context.Context, event *models.WebhookEvent) (bool, error) {
	filter := bson.M{"airtableRecordId": event.Record.ID}

	var update bson.M
	switch event.Type {
	case models.WebhookRecordUpdated:
		update = bson.M{"$set": bson.M{"answers": event.Record.Fields, "updatedAt": time.Now()}}
	case models.WebhookRecordDeleted:
		update = bson.M{"$set": bson.M{"deletedInAirtable": true, "updatedAt": time.Now()}}
	default:
		return false, nil
	}

	res, err := database.SubmissionCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

// getByID loads one submission document.
func getByID(ctx context.Context, id primitive.ObjectID) (*models.Submission, error) {
	var sub models.Submission
	err := database.SubmissionCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&sub)
	if err == mongo.ErrNoDocuments {
		return nil, ErrSubmissionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}
