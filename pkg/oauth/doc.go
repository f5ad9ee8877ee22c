// Package oauth provides the Default Dynamics OAuth2 provider adapter.
//
// The OAuth2 authorization code exchange is delegated to golang.org/x/oauth2.
// This package fixes the provider endpoints, performs the single profile request
// that follows the token exchange and maps the provider response into a
// normalized Profile.
//
// # Usage
//
//	provider, err := oauth.NewDDProvider(oauth.DDConfig{
//		ClientID:     os.Getenv("DD_OAUTH_CLIENT_ID"),
//		ClientSecret: os.Getenv("DD_OAUTH_CLIENT_SECRET"),
//		RedirectURL:  "https://example.com/auth/dd/callback",
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	url := provider.AuthCodeURL("random-state-string")
//
//	token, err := provider.Exchange(ctx, code, "")
//	if err != nil {
//		// handle error
//	}
//
//	profile, err := provider.FetchProfile(ctx, token.AccessToken)
//	if err != nil {
//		// handle error
//	}
//
// Strategy wraps a provider with an application verify callback:
//
//	strategy, err := oauth.NewStrategy(provider, func(ctx context.Context, accessToken, refreshToken string, p *oauth.Profile) (*User, error) {
//		return users.FindOrCreate(ctx, p.Username, p.Email)
//	})
//
//	user, err := strategy.Authenticate(ctx, r.URL.Query().Get("code"))
//
// # Access Token Parameter
//
// Default Dynamics expects the access token in a query parameter named "token"
// rather than "access_token". The provider configures its Client accordingly.
//
// # Testing
//
// Use WithHTTPClient to route requests to a test server, or WithClient to
// inject a stub Client:
//
//	provider, err := oauth.NewDDProvider(cfg, oauth.WithClient(stub))
//
// # Error Handling
//
//   - ErrMissingClientID, ErrMissingClientSecret: invalid configuration
//   - ErrProfileFetch: the profile request failed; wraps ErrFetchFailed
//     or ErrRequestFailed with a *StatusError
//   - ErrProfileParse: the profile body is not valid JSON or lacks a
//     required field (ErrMissingField)
//   - ErrExchangeFailed, ErrMissingCode: Strategy failures
//   - ErrNotAuthenticated: returned by verify callbacks to reject a user
//
// Use errors.Is and errors.As for checking:
//
//	var statusErr *oauth.StatusError
//	if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusUnauthorized {
//		// token rejected by provider
//	}
package oauth
