package oauth

import (
	"context"

	"golang.org/x/oauth2"
)

// Name holds the structured parts of a user's name.
type Name struct {
	First string `json:"first"`
	Last  string `json:"last"`
}

// Profile represents the normalized user profile retrieved from a provider.
// Organization fields hold the text form of whatever the provider sent and
// are empty when it sent nothing. Raw and JSON carry the provider's response for callers that need
// provider-specific detail.
type Profile struct {
	Provider           string         `json:"provider"`
	Username           string         `json:"username"`
	DisplayName        string         `json:"displayName"`
	Name               Name           `json:"name"`
	Email              string         `json:"email"`
	Organization       string         `json:"organization,omitempty"`
	OrganizationType   string         `json:"organizationType,omitempty"`
	OrganizationTypeID string         `json:"organizationTypeId,omitempty"`
	Raw                []byte         `json:"-"`
	JSON               map[string]any `json:"-"`
}

// Provider abstracts provider-specific OAuth operations.
type Provider interface {
	// Name returns the provider identifier (e.g., "dd").
	Name() string

	// AuthCodeURL generates the authorization URL for the OAuth flow.
	AuthCodeURL(state string, opts ...oauth2.AuthCodeOption) string

	// Exchange trades an authorization code for tokens.
	Exchange(ctx context.Context, code, redirectURI string) (*oauth2.Token, error)

	// FetchProfile retrieves the user profile using the access token.
	// It returns either a complete profile or an error, never both.
	FetchProfile(ctx context.Context, accessToken string) (*Profile, error)
}
