package oauth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// DDProviderName is the identifier for the Default Dynamics OAuth provider.
	DDProviderName = "dd"

	// DDAccessTokenName is the query parameter Default Dynamics expects the
	// access token under, instead of the standard access_token.
	DDAccessTokenName = "token"

	// DDDefaultScopeSeparator joins scopes in the authorization request.
	DDDefaultScopeSeparator = ","

	ddHostURL    = "http://defaultdynamics.com"
	ddAuthURL    = ddHostURL + "/Authorize.asp"
	ddTokenURL   = ddHostURL + "/CLServicesDev/oAuth2.ashx/token"
	ddProfileURL = ddHostURL + "/CLServicesDev/Mobileapp.ashx?action=GetCurrentUserInfo"
)

// DDEndpoint returns the fixed Default Dynamics OAuth 2.0 endpoint.
func DDEndpoint() oauth2.Endpoint {
	return ddEndpoint
}

var ddEndpoint = oauth2.Endpoint{
	AuthURL:   ddAuthURL,
	TokenURL:  ddTokenURL,
	AuthStyle: oauth2.AuthStyleInParams,
}

// DDProvider implements Provider for Default Dynamics OAuth.
// It holds only immutable configuration and is safe for concurrent use.
type DDProvider struct {
	client         Client
	scopes         []string
	scopeSeparator string
}

// NewDDProvider creates a new Default Dynamics OAuth provider.
// Returns an error if ClientID or ClientSecret is empty.
func NewDDProvider(cfg DDConfig, opts ...Option) (*DDProvider, error) {
	if cfg.ClientID == "" {
		return nil, ErrMissingClientID
	}
	if cfg.ClientSecret == "" {
		return nil, ErrMissingClientSecret
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	sep := cfg.ScopeSeparator
	if sep == "" {
		sep = DDDefaultScopeSeparator
	}

	client := o.client
	if client == nil {
		// Scopes are sent as a single pre-joined parameter, see AuthCodeURL.
		client = NewClient(
			&oauth2.Config{
				ClientID:     cfg.ClientID,
				ClientSecret: cfg.ClientSecret,
				RedirectURL:  cfg.RedirectURL,
				Endpoint:     ddEndpoint,
			},
			WithAccessTokenName(DDAccessTokenName),
			WithClientHTTPClient(o.httpClient),
		)
	}

	return &DDProvider{
		client:         client,
		scopes:         append([]string(nil), cfg.Scopes...),
		scopeSeparator: sep,
	}, nil
}

// Name returns the provider identifier.
func (p *DDProvider) Name() string {
	return DDProviderName
}

// AuthCodeURL generates the authorization URL.
func (p *DDProvider) AuthCodeURL(state string, opts ...oauth2.AuthCodeOption) string {
	if len(p.scopes) > 0 {
		scope := oauth2.SetAuthURLParam("scope", strings.Join(p.scopes, p.scopeSeparator))
		opts = append([]oauth2.AuthCodeOption{scope}, opts...)
	}
	return p.client.AuthCodeURL(state, opts...)
}

// Exchange trades an authorization code for tokens.
// A non-empty redirectURI overrides the configured one.
func (p *DDProvider) Exchange(ctx context.Context, code, redirectURI string) (*oauth2.Token, error) {
	var opts []oauth2.AuthCodeOption
	if redirectURI != "" {
		opts = append(opts, oauth2.SetAuthURLParam("redirect_uri", redirectURI))
	}
	return p.client.Exchange(ctx, code, opts...)
}

// FetchProfile retrieves the current user's profile from Default Dynamics.
// Transport failures match ErrProfileFetch; malformed or incomplete
// responses match ErrProfileParse.
func (p *DDProvider) FetchProfile(ctx context.Context, accessToken string) (*Profile, error) {
	body, err := p.client.Get(ctx, ddProfileURL, accessToken)
	if err != nil {
		return nil, errors.Join(ErrProfileFetch, err)
	}

	profile, err := parseDDProfile(body)
	if err != nil {
		return nil, errors.Join(ErrProfileParse, err)
	}

	return profile, nil
}

// ddUser is the GetCurrentUserInfo response. Only userId and email must be
// strings; the remaining fields accept any JSON value.
type ddUser struct {
	UserID             *string `json:"userId"`
	Email              *string `json:"email"`
	FirstName          ddText  `json:"firstName"`
	LastName           ddText  `json:"lastName"`
	Organization       ddText  `json:"organization"`
	OrganizationType   ddText  `json:"organizationType"`
	OrganizationTypeID ddText  `json:"organizationTypeId"`
}

// ddText holds the text form of any JSON value: strings unquoted, null as
// empty, everything else as compact JSON.
type ddText string

func (t *ddText) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*t = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*t = ddText(s)
		return nil
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, b); err != nil {
		return err
	}
	*t = ddText(buf.String())
	return nil
}

func (u *ddUser) validate() error {
	if u.UserID == nil {
		return fmt.Errorf("%w: userId", ErrMissingField)
	}
	if u.Email == nil {
		return fmt.Errorf("%w: email", ErrMissingField)
	}
	return nil
}

func parseDDProfile(body []byte) (*Profile, error) {
	var user ddUser
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, fmt.Errorf("decode user: %w", err)
	}
	if err := user.validate(); err != nil {
		return nil, err
	}

	var raw map[string]any
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode raw: %w", err)
	}

	first, last := string(user.FirstName), string(user.LastName)
	lower := cases.Lower(language.Und)

	return &Profile{
		Provider:           DDProviderName,
		Username:           lower.String(*user.UserID),
		DisplayName:        first + " " + last,
		Name:               Name{First: first, Last: last},
		Email:              lower.String(*user.Email),
		Organization:       string(user.Organization),
		OrganizationType:   string(user.OrganizationType),
		OrganizationTypeID: string(user.OrganizationTypeID),
		Raw:                body,
		JSON:               raw,
	}, nil
}
