package oauth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"github.com/defaultdynamics/ddauth/pkg/oauth"
)

var _ oauth.Client = (*oauth.OAuth2Client)(nil)

func TestOAuth2Client_Get(t *testing.T) {
	t.Parallel()

	echo := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/created":
			w.WriteHeader(http.StatusCreated)
		case "/error":
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte("oops"))
			return
		}
		_, _ = w.Write([]byte(r.URL.RawQuery))
	})

	t.Run("default token name", func(t *testing.T) {
		t.Parallel()
		ts := httptest.NewServer(echo)
		defer ts.Close()

		c := oauth.NewClient(&oauth2.Config{}, oauth.WithClientHTTPClient(ts.Client()))
		require.Equal(t, oauth.DefaultAccessTokenName, c.AccessTokenName())

		body, err := c.Get(context.Background(), ts.URL+"/me", "abc")
		require.NoError(t, err)
		require.Equal(t, "access_token=abc", string(body))
	})

	t.Run("custom token name keeps existing query", func(t *testing.T) {
		t.Parallel()
		ts := httptest.NewServer(echo)
		defer ts.Close()

		c := oauth.NewClient(
			&oauth2.Config{},
			oauth.WithClientHTTPClient(ts.Client()),
			oauth.WithAccessTokenName("token"),
		)
		require.Equal(t, "token", c.AccessTokenName())

		body, err := c.Get(context.Background(), ts.URL+"/me?action=GetCurrentUserInfo", "abc")
		require.NoError(t, err)
		require.Equal(t, "action=GetCurrentUserInfo&token=abc", string(body))
	})

	t.Run("empty token name ignored", func(t *testing.T) {
		t.Parallel()
		c := oauth.NewClient(&oauth2.Config{}, oauth.WithAccessTokenName(""))
		require.Equal(t, oauth.DefaultAccessTokenName, c.AccessTokenName())
	})

	t.Run("2xx accepted", func(t *testing.T) {
		t.Parallel()
		ts := httptest.NewServer(echo)
		defer ts.Close()

		c := oauth.NewClient(&oauth2.Config{}, oauth.WithClientHTTPClient(ts.Client()))
		_, err := c.Get(context.Background(), ts.URL+"/created", "abc")
		require.NoError(t, err)
	})

	t.Run("non-2xx rejected", func(t *testing.T) {
		t.Parallel()
		ts := httptest.NewServer(echo)
		defer ts.Close()

		c := oauth.NewClient(&oauth2.Config{}, oauth.WithClientHTTPClient(ts.Client()))
		body, err := c.Get(context.Background(), ts.URL+"/error", "abc")
		require.ErrorIs(t, err, oauth.ErrRequestFailed)
		require.Nil(t, body)

		var statusErr *oauth.StatusError
		require.ErrorAs(t, err, &statusErr)
		require.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
		require.Equal(t, "oops", string(statusErr.Body))
		require.Contains(t, statusErr.Error(), "status=500")
	})

	t.Run("invalid url", func(t *testing.T) {
		t.Parallel()
		c := oauth.NewClient(&oauth2.Config{})
		_, err := c.Get(context.Background(), "://bad", "abc")
		require.ErrorIs(t, err, oauth.ErrFetchFailed)
	})
}

func TestOAuth2Client_AuthCodeURL(t *testing.T) {
	t.Parallel()

	c := oauth.NewClient(&oauth2.Config{
		ClientID: "test-id",
		Endpoint: oauth.DDEndpoint(),
	})
	u := c.AuthCodeURL("xyz")
	require.Contains(t, u, "http://defaultdynamics.com/Authorize.asp?")
	require.Contains(t, u, "state=xyz")
	require.Contains(t, u, "client_id=test-id")
}
