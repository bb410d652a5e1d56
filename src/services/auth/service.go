package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/oauth2"

	"github.com/Atuba426/Airtable-assignment/src/database"
	"github.com/Atuba426/Airtable-assignment/src/models"
	"github.com/Atuba426/Airtable-assignment/src/services/airtable"
	"github.com/Atuba426/Airtable-assignment/src/utils"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrInvalidState = errors.New("invalid or expired OAuth state")
)

// stateTTL bounds the login round trip; the parked PKCE verifier expires
// with the state key.
const stateTTL = 10 * time.Minute

func stateKey(state string) string {
	return "oauth:state:" + state
}

// StartLogin creates a state token and PKCE verifier, parks the verifier
// in Redis under the state, and returns the Airtable consent URL.
func StartLogin(ctx context.Context) (string, error) {
	cfg := airtable.OAuthConfig()

	state := uuid.NewString()
	verifier := oauth2.GenerateVerifier()

	if err := database.RedisClient.Set(ctx, stateKey(state), verifier, stateTTL).Err(); err != nil {
		return "", fmt.Errorf("park oauth state: %w", err)
	}

	return cfg.AuthCodeURL(state, oauth2.S256ChallengeOption(verifier)), nil
}

// CompleteLogin verifies the state, exchanges the authorization code with
// the parked PKCE verifier, resolves the Airtable identity, upserts the
// user, and returns a signed bearer token for the session.
func CompleteLogin(ctx context.Context, state, code string) (*models.User, string, error) {
	verifier, err := database.RedisClient.GetDel(ctx, stateKey(state)).Result()
	if err == redis.Nil {
		return nil, "", ErrInvalidState
	}
	if err != nil {
		return nil, "", fmt.Errorf("load oauth state: %w", err)
	}

	token, err := airtable.OAuthConfig().Exchange(ctx, code, oauth2.VerifierOption(verifier))
	if err != nil {
		return nil, "", fmt.Errorf("token exchange failed: %w", err)
	}

	who, err := airtable.NewClient(token.AccessToken).Whoami(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("whoami failed: %w", err)
	}

	now := time.Now()
	filter := bson.M{"airtableUserId": who.ID}
	update := bson.M{
		"$set": bson.M{
			"airtableUserId": who.ID,
			"email":          who.Email,
			"name":           who.Name,
			"accessToken":    token.AccessToken,
			"refreshToken":   token.RefreshToken,
			"tokenExpiresAt": token.Expiry,
			"loginAt":        now,
			"updatedAt":      now,
		},
		"$setOnInsert": bson.M{"createdAt": now},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var user models.User
	if err := database.UserCollection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&user); err != nil {
		return nil, "", fmt.Errorf("upsert user: %w", err)
	}

	jwtStr, err := utils.GenerateJWT(user.ID.Hex(), user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("sign token: %w", err)
	}

	return &user, jwtStr, nil
}

// FindUserByID loads a user by hex object id.
func FindUserByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrUserNotFound
	}
	return FindUserByObjectID(ctx, oid)
}

// FindUserByObjectID loads a user document.
func FindUserByObjectID(ctx context.Context, oid primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := database.UserCollection.FindOne(ctx, bson.M{"_id": oid}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
