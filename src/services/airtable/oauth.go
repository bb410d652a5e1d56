package airtable

import (
	"os"

	"golang.org/x/oauth2"
)

// Endpoint is Airtable's OAuth2 endpoint pair. The token endpoint wants
// client credentials in the Authorization header.
var Endpoint = oauth2.Endpoint{
	AuthURL:   "https://airtable.com/oauth2/v1/authorize",
	TokenURL:  "https://airtable.com/oauth2/v1/token",
	AuthStyle: oauth2.AuthStyleInHeader,
}

// OAuthScopes are the grants the form service needs: read schemas to
// build forms, read/write records for submissions and write-back.
var OAuthScopes = []string{
	"schema.bases:read",
	"data.records:read",
	"data.records:write",
}

// OAuthConfig returns the Airtable OAuth2 configuration from env.
func OAuthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     os.Getenv("AIRTABLE_CLIENT_ID"),
		ClientSecret: os.Getenv("AIRTABLE_CLIENT_SECRET"),
		RedirectURL:  RedirectURI(),
		Scopes:       OAuthScopes,
		Endpoint:     Endpoint,
	}
}

// RedirectURI is where Airtable sends the user back after consent.
func RedirectURI() string {
	if uri := os.Getenv("AIRTABLE_REDIRECT_URI"); uri != "" {
		return uri
	}
	return "http://localhost:5000/api/auth/airtable/callback"
}
