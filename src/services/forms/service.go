package forms

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Atuba426/Airtable-assignment/src/database"
	"github.com/Atuba426/Airtable-assignment/src/models"
	"github.com/Atuba426/Airtable-assignment/src/services/schema"
)

var (
	ErrFormNotFound = errors.New("form not found")
	ErrNotOwner     = errors.New("form belongs to another user")
)

// fieldID derives the stable internal id of a field from the Airtable
// field it was built from. Deterministic, so visibility rules can be
// authored against sibling fields before the form document exists.
func fieldID(sourceFieldID string) string {
	return "q_" + sourceFieldID
}

// CreateForm builds a form from the owner's field selection. Airtable
// field types are mapped into the supported set here, once; the mapped
// type is frozen into the field definition.
func CreateForm(ctx context.Context, owner primitive.ObjectID, req *models.CreateFormRequest) (*models.Form, error) {
	fields := make([]models.FieldDefinition, 0, len(req.Fields))
	for _, sel := range req.Fields {
		fieldType := models.FieldType(sel.Type)
		if !models.IsSupportedFieldType(fieldType) {
			fieldType = schema.MapFieldType(sel.Type)
		}

		label := sel.Label
		if label == "" {
			label = sel.Name
		}

		var opts []models.FieldOption
		if fieldType == models.TypeSingleSelect || fieldType == models.TypeMultiSelect {
			opts = sel.Options
		}

		fields = append(fields, models.FieldDefinition{
			ID:             fieldID(sel.SourceFieldID),
			Label:          label,
			Type:           fieldType,
			Required:       sel.Required,
			Options:        opts,
			SourceFieldID:  sel.SourceFieldID,
			VisibilityRule: sel.VisibilityRule,
		})
	}

	if err := schema.ValidateFields(fields); err != nil {
		return nil, err
	}

	now := time.Now()
	form := &models.Form{
		Owner:     owner,
		Title:     req.Title,
		BaseID:    req.BaseID,
		TableID:   req.TableID,
		Fields:    fields,
		CreatedAt: now,
		UpdatedAt: now,
	}

	result, err := database.FormCollection.InsertOne(ctx, form)
	if err != nil {
		return nil, err
	}
	form.ID = result.InsertedID.(primitive.ObjectID)

	return form, nil
}

// GetForms lists the owner's forms, newest first.
func GetForms(ctx context.Context, owner primitive.ObjectID) ([]models.FormSummary, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetProjection(bson.M{"_id": 1, "title": 1, "createdAt": 1, "updatedAt": 1})

	cursor, err := database.FormCollection.Find(ctx, bson.M{"owner": owner}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	summaries := []models.FormSummary{}
	if err := cursor.All(ctx, &summaries); err != nil {
		return nil, err
	}
	return summaries, nil
}

// GetFormByID loads a form document.
func GetFormByID(ctx context.Context, id primitive.ObjectID) (*models.Form, error) {
	var form models.Form
	err := database.FormCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&form)
	if err == mongo.ErrNoDocuments {
		return nil, ErrFormNotFound
	}
	if err != nil {
		return nil, err
	}
	return &form, nil
}

// GetOwnedForm loads a form and checks it belongs to the caller.
func GetOwnedForm(ctx context.Context, id, owner primitive.ObjectID) (*models.Form, error) {
	form, err := GetFormByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if form.Owner != owner {
		return nil, ErrNotOwner
	}
	return form, nil
}

// UpdateForm edits a form's title and/or fields. Field types are
// immutable once created: an edited field keeps the type it was mapped
// to at authoring time, whatever the request says.
func UpdateForm(ctx context.Context, id, owner primitive.ObjectID, req *models.UpdateFormRequest) (*models.Form, error) {
	form, err := GetOwnedForm(ctx, id, owner)
	if err != nil {
		return nil, err
	}

	set := bson.M{"updatedAt": time.Now()}
	if req.Title != nil {
		set["title"] = *req.Title
	}
	if req.Fields != nil {
		fields := make([]models.FieldDefinition, len(req.Fields))
		copy(fields, req.Fields)
		for i := range fields {
			if existing, ok := form.FieldByID(fields[i].ID); ok {
				fields[i].Type = existing.Type
			}
		}
		if err := schema.ValidateFields(fields); err != nil {
			return nil, err
		}
		set["fields"] = fields
	}

	if err := database.FormCollection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(form); err != nil {
		return nil, err
	}

	return form, nil
}

// DeleteForm removes a form and all of its submissions. Submissions of a
// deleted form are unreachable and never validated again, so they go too.
func DeleteForm(ctx context.Context, id, owner primitive.ObjectID) error {
	if _, err := GetOwnedForm(ctx, id, owner); err != nil {
		return err
	}

	if _, err := database.FormCollection.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return err
	}
	_, err := database.SubmissionCollection.DeleteMany(ctx, bson.M{"formId": id})
	return err
}
