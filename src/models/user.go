package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is an Airtable-authenticated form owner. Identity comes entirely
// from the Airtable OAuth flow; there are no local credentials.
type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	AirtableUserID string             `bson:"airtableUserId" json:"airtableUserId"`
	Email          string             `bson:"email,omitempty" json:"email,omitempty"`
	Name           string             `bson:"name,omitempty" json:"name,omitempty"`
	AccessToken    string             `bson:"accessToken" json:"-"`
	RefreshToken   string             `bson:"refreshToken,omitempty" json:"-"`
	TokenExpiresAt time.Time          `bson:"tokenExpiresAt,omitempty" json:"-"`
	LoginAt        time.Time          `bson:"loginAt,omitempty" json:"loginAt"`
	CreatedAt      time.Time          `bson:"createdAt,omitempty" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt,omitempty" json:"updatedAt"`
}
