package submission

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Atuba426/Airtable-assignment/src/database"
	"github.com/Atuba426/Airtable-assignment/src/models"
	"github.com/Atuba426/Airtable-assignment/src/services/airtable"
	"github.com/Atuba426/Airtable-assignment/src/services/auth"
	"github.com/Atuba426/Airtable-assignment/src/services/forms"
)

// TaskTypeWriteback is the Asynq task retrying failed Airtable writes.
const TaskTypeWriteback = "airtable:writeback"

// WritebackPayload identifies the submission a retry task works on.
type WritebackPayload struct {
	SubmissionID string `json:"submission_id"`
}

// NewWritebackTask builds the retry task for a submission.
func NewWritebackTask(submissionID string) (*asynq.Task, error) {
	payload, err := json.Marshal(WritebackPayload{SubmissionID: submissionID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskTypeWriteback, payload), nil
}

// SourceFields translates an answer set from internal field ids to
// Airtable field ids. This is the only place the source-field id is used;
// visibility and validation key answers by the internal id throughout.
func SourceFields(form *models.Form, answers map[string]any) map[string]any {
	fields := make(map[string]any)
	for _, field := range form.Fields {
		if value, ok := answers[field.ID]; ok {
			fields[field.SourceFieldID] = value
		}
	}
	return fields
}

// Writeback creates the upstream Airtable record for a validated answer
// set using the form owner's access token.
func Writeback(ctx context.Context, form *models.Form, answers map[string]any) (string, error) {
	owner, err := auth.FindUserByObjectID(ctx, form.Owner)
	if err != nil {
		return "", fmt.Errorf("load form owner: %w", err)
	}
	if owner.AccessToken == "" {
		return "", airtable.ErrUnauthorized
	}

	client := airtable.NewClient(owner.AccessToken)
	return client.CreateRecord(ctx, form.BaseID, form.TableID, SourceFields(form, answers))
}

// CompleteWriteback retries the Airtable write for a persisted submission
// and stamps the record id on success. A submission or form that has
// disappeared ends the retry chain quietly; transient upstream failures
// propagate so Asynq reschedules.
func CompleteWriteback(ctx context.Context, submissionID primitive.ObjectID) error {
	sub, err := getByID(ctx, submissionID)
	if err != nil {
		if errors.Is(err, ErrSubmissionNotFound) {
			log.Printf("[writeback] submission %s gone, dropping task", submissionID.Hex())
			return nil
		}
		return err
	}
	if sub.AirtableRecordID != nil {
		return nil
	}

	form, err := forms.GetFormByID(ctx, sub.FormID)
	if err != nil {
		if errors.Is(err, forms.ErrFormNotFound) {
			log.Printf("[writeback] form %s gone, dropping task", sub.FormID.Hex())
			return nil
		}
		return err
	}

	recordID, err := Writeback(ctx, form, sub.Answers)
	if err != nil {
		return err
	}

	_, err = database.SubmissionCollection.UpdateOne(ctx,
		bson.M{"_id": sub.ID},
		bson.M{"$set": bson.M{"airtableRecordId": recordID, "updatedAt": time.Now()}},
	)
	return err
}

// enqueueWriteback queues a retry; skipped silently when Asynq is not up
// (the submission is already safe in Mongo either way).
func enqueueWriteback(submissionID primitive.ObjectID) {
	if database.AsynqClient == nil {
		return
	}
	task, err := NewWritebackTask(submissionID.Hex())
	if err != nil {
		log.Printf("[writeback] build task: %v", err)
		return
	}
	if _, err := database.AsynqClient.Enqueue(task, asynq.MaxRetry(10), asynq.ProcessIn(30*time.Second)); err != nil {
		log.Printf("[writeback] enqueue: %v", err)
	}
}
