package oauth

import (
	"context"
	"errors"
)

// VerifyFunc resolves an application user from the provider credentials and profile.
// Return ErrNotAuthenticated to reject the credentials.
type VerifyFunc[U any] func(ctx context.Context, accessToken, refreshToken string, profile *Profile) (U, error)

// Strategy drives the authorization code flow for a single provider and hands
// the resulting profile to an application verify callback.
type Strategy[U any] struct {
	provider Provider
	verify   VerifyFunc[U]
}

// NewStrategy creates a Strategy for the provider.
// Returns ErrMissingVerify if verify is nil.
func NewStrategy[U any](provider Provider, verify VerifyFunc[U]) (*Strategy[U], error) {
	if verify == nil {
		return nil, ErrMissingVerify
	}
	return &Strategy[U]{provider: provider, verify: verify}, nil
}

// Name returns the provider identifier used to route callback requests.
func (s *Strategy[U]) Name() string {
	return s.provider.Name()
}

// AuthCodeURL generates the authorization URL the user is redirected to.
func (s *Strategy[U]) AuthCodeURL(state string) string {
	return s.provider.AuthCodeURL(state)
}

// Authenticate exchanges the authorization code, fetches the profile and
// passes both to the verify callback.
func (s *Strategy[U]) Authenticate(ctx context.Context, code string) (U, error) {
	var zero U
	if code == "" {
		return zero, ErrMissingCode
	}

	token, err := s.provider.Exchange(ctx, code, "")
	if err != nil {
		return zero, errors.Join(ErrExchangeFailed, err)
	}

	profile, err := s.provider.FetchProfile(ctx, token.AccessToken)
	if err != nil {
		return zero, err
	}

	return s.verify(ctx, token.AccessToken, token.RefreshToken, profile)
}
