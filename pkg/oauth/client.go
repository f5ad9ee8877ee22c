package oauth

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"golang.org/x/oauth2"
)

// DefaultAccessTokenName is the query parameter used to pass the access token
// on authenticated GET requests, unless overridden with WithAccessTokenName.
const DefaultAccessTokenName = "access_token"

// Client is the OAuth2 capability set a provider adapter relies on:
// building authorization URLs, exchanging codes and issuing authenticated GETs.
type Client interface {
	AuthCodeURL(state string, opts ...oauth2.AuthCodeOption) string
	Exchange(ctx context.Context, code string, opts ...oauth2.AuthCodeOption) (*oauth2.Token, error)
	Get(ctx context.Context, rawURL, accessToken string) ([]byte, error)
}

// StatusError carries a non-2xx response returned by the provider.
type StatusError struct {
	Body       []byte
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status: status=%d", e.StatusCode)
}

// ClientOption configures an OAuth2Client.
type ClientOption func(*OAuth2Client)

// WithAccessTokenName sets the query parameter name used to send the access token.
func WithAccessTokenName(name string) ClientOption {
	return func(c *OAuth2Client) {
		if name != "" {
			c.accessTokenName = name
		}
	}
}

// WithClientHTTPClient sets the HTTP client used for all requests.
func WithClientHTTPClient(client *http.Client) ClientOption {
	return func(c *OAuth2Client) {
		c.httpClient = client
	}
}

// OAuth2Client implements Client on top of golang.org/x/oauth2.
type OAuth2Client struct {
	config          *oauth2.Config
	httpClient      *http.Client
	accessTokenName string
}

// NewClient creates a Client for the given OAuth2 configuration.
func NewClient(cfg *oauth2.Config, opts ...ClientOption) *OAuth2Client {
	c := &OAuth2Client{
		config:          cfg,
		accessTokenName: DefaultAccessTokenName,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// AccessTokenName returns the query parameter name used to send the access token.
func (c *OAuth2Client) AccessTokenName() string {
	return c.accessTokenName
}

// AuthCodeURL generates the authorization URL.
func (c *OAuth2Client) AuthCodeURL(state string, opts ...oauth2.AuthCodeOption) string {
	return c.config.AuthCodeURL(state, opts...)
}

// Exchange trades an authorization code for tokens.
func (c *OAuth2Client) Exchange(ctx context.Context, code string, opts ...oauth2.AuthCodeOption) (*oauth2.Token, error) {
	return c.config.Exchange(c.contextWithHTTPClient(ctx), code, opts...)
}

// Get issues a GET request to rawURL with the access token added as a query parameter
// and returns the response body. Any non-2xx status is reported as ErrRequestFailed
// joined with a *StatusError.
func (c *OAuth2Client) Get(ctx context.Context, rawURL, accessToken string) ([]byte, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, errors.Join(ErrFetchFailed, fmt.Errorf("parse url: %w", err))
	}
	q := u.Query()
	q.Set(c.accessTokenName, accessToken)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, errors.Join(ErrFetchFailed, fmt.Errorf("build request: %w", err))
	}

	resp, err := c.client().Do(req)
	if err != nil {
		return nil, errors.Join(ErrFetchFailed, fmt.Errorf("get: %w", err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Join(ErrFetchFailed, fmt.Errorf("read body: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.Join(ErrRequestFailed, &StatusError{StatusCode: resp.StatusCode, Body: body})
	}

	return body, nil
}

func (c *OAuth2Client) client() *http.Client {
	if c.httpClient != nil {
		return c.httpClient
	}
	return http.DefaultClient
}

func (c *OAuth2Client) contextWithHTTPClient(ctx context.Context) context.Context {
	if c.httpClient != nil {
		return context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	}
	return ctx
}
