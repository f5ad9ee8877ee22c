package oauth

import "net/http"

// Option configures an OAuth provider.
type Option func(*options)

type options struct {
	httpClient *http.Client
	client     Client
}

// WithHTTPClient sets a custom HTTP client for OAuth requests.
// This is useful for testing with httptest servers or injecting
// custom transports (e.g., logging, tracing).
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// WithClient replaces the OAuth2 client used by the provider.
// WithHTTPClient is ignored when a client is set.
func WithClient(client Client) Option {
	return func(o *options) {
		o.client = client
	}
}
