package oauth

import "errors"

var (
	// ErrMissingClientID is returned when the OAuth client ID is not provided.
	ErrMissingClientID = errors.New("oauth: missing client ID")

	// ErrMissingClientSecret is returned when the OAuth client secret is not provided.
	ErrMissingClientSecret = errors.New("oauth: missing client secret")

	// ErrFetchFailed is returned when fetching data from the OAuth provider fails.
	ErrFetchFailed = errors.New("oauth: failed to fetch from provider")

	// ErrRequestFailed is returned when the OAuth provider returns a non-2xx status.
	ErrRequestFailed = errors.New("oauth: request returned non-OK status")

	// ErrProfileFetch is returned when the authenticated user profile request fails.
	// It always wraps the underlying transport error.
	ErrProfileFetch = errors.New("oauth: failed to fetch user profile")

	// ErrProfileParse is returned when the user profile response is not valid JSON
	// or lacks a field required to build the profile.
	ErrProfileParse = errors.New("oauth: failed to parse user profile")

	// ErrMissingField is returned when a required profile field is absent.
	ErrMissingField = errors.New("oauth: missing required profile field")

	// ErrMissingCode is returned when authentication is attempted without an authorization code.
	ErrMissingCode = errors.New("oauth: missing authorization code")

	// ErrExchangeFailed is returned when the authorization code exchange fails.
	ErrExchangeFailed = errors.New("oauth: code exchange failed")

	// ErrMissingVerify is returned when a strategy is created without a verify callback.
	ErrMissingVerify = errors.New("oauth: missing verify callback")

	// ErrNotAuthenticated is returned by a verify callback to reject the credentials.
	ErrNotAuthenticated = errors.New("oauth: not authenticated")
)
