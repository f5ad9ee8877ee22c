package oauth

// DDConfig holds Default Dynamics OAuth configuration.
// The authorization and token endpoints are fixed by the provider and
// cannot be configured.
type DDConfig struct {
	ClientID       string   `env:"DD_OAUTH_CLIENT_ID,required"`
	ClientSecret   string   `env:"DD_OAUTH_CLIENT_SECRET,required"`
	RedirectURL    string   `env:"DD_OAUTH_REDIRECT_URL" envDefault:""`
	Scopes         []string `env:"DD_OAUTH_SCOPES" envSeparator:","`
	ScopeSeparator string   `env:"DD_OAUTH_SCOPE_SEPARATOR" envDefault:","`
}
