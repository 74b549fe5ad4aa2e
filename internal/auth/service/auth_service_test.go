package service_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/GoSim-25-26J-441/project-dashboard/internal/auth/domain"
	"github.com/GoSim-25-26J-441/project-dashboard/internal/auth/repository"
	"github.com/GoSim-25-26J-441/project-dashboard/internal/auth/service"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

var secret = []byte("test-secret")

type clock struct{ now time.Time }

func (c *clock) Now() time.Time { return c.now }

func newAuthService(t *testing.T, gh *oauth2.Config, apiURL string) (*service.AuthService, *clock) {
	t.Helper()

	clk := &clock{now: time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC)}
	store := repository.NewMemorySessionStore(clk.Now)
	svc := service.NewAuthService(store, service.Options{
		Secret:       secret,
		TokenTTL:     time.Hour,
		DemoUsername: "Jonh",
		DemoPassword: "nextauth",
		GitHub:       gh,
		GitHubAPIURL: apiURL,
		Now:          clk.Now,
	}, nil)
	return svc, clk
}

func TestLoginWithCredentials(t *testing.T) {
	svc, _ := newAuthService(t, nil, "")
	ctx := context.Background()

	token, sess, err := svc.LoginWithCredentials(ctx, "Jonh", "nextauth")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "33", sess.User.ID)
	assert.Equal(t, "Jonh", sess.User.Name)
	assert.Equal(t, domain.RoleAdmin, sess.User.Role)
	assert.Equal(t, domain.ProviderCredentials, sess.User.Provider)

	got, err := svc.Authenticate(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, got.ID)

	claims := &service.Claims{}
	_, _, err = jwt.NewParser().ParseUnverified(token, claims)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, sess.ID, claims.ID)
}

func TestLoginWithCredentials_Rejected(t *testing.T) {
	svc, _ := newAuthService(t, nil, "")

	for _, tc := range []struct{ user, pass string }{
		{"Jonh", "wrong"},
		{"john", "nextauth"},
		{"", ""},
	} {
		_, _, err := svc.LoginWithCredentials(context.Background(), tc.user, tc.pass)
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials, "%s/%s", tc.user, tc.pass)
	}
}

func TestAuthenticate_Failures(t *testing.T) {
	svc, clk := newAuthService(t, nil, "")
	ctx := context.Background()

	token, sess, err := svc.LoginWithCredentials(ctx, "Jonh", "nextauth")
	require.NoError(t, err)

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "not-a-token")
		assert.ErrorIs(t, err, domain.ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		claims := service.Claims{Role: "admin", RegisteredClaims: jwt.RegisteredClaims{
			ID: sess.ID, Issuer: "project-dashboard", ExpiresAt: jwt.NewNumericDate(clk.now.Add(time.Hour)),
		}}
		forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other"))
		require.NoError(t, err)

		_, err = svc.Authenticate(ctx, forged)
		assert.ErrorIs(t, err, domain.ErrInvalidToken)
	})

	t.Run("unsigned", func(t *testing.T) {
		claims := service.Claims{Role: "admin", RegisteredClaims: jwt.RegisteredClaims{
			ID: sess.ID, Issuer: "project-dashboard", ExpiresAt: jwt.NewNumericDate(clk.now.Add(time.Hour)),
		}}
		unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = svc.Authenticate(ctx, unsigned)
		assert.ErrorIs(t, err, domain.ErrInvalidToken)
	})

	t.Run("logged out", func(t *testing.T) {
		token2, sess2, err := svc.LoginWithCredentials(ctx, "Jonh", "nextauth")
		require.NoError(t, err)
		require.NoError(t, svc.Logout(ctx, sess2.ID))

		_, err = svc.Authenticate(ctx, token2)
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	})

	t.Run("expired", func(t *testing.T) {
		clk.now = clk.now.Add(2 * time.Hour)
		_, err := svc.Authenticate(ctx, token)
		assert.ErrorIs(t, err, domain.ErrInvalidToken)
	})
}

func fakeGitHub(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/login/oauth/access_token", func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		if r.Form.Get("code") != "good-code" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"bad_verification_code"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"gh-token","token_type":"bearer"}`))
	})
	mux.HandleFunc("/user", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer gh-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id": 583231, "login": "octocat", "name": "", "email": "octo@example.com",
			"avatar_url": "https://avatars.example.com/octocat",
		})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestGitHubFlow(t *testing.T) {
	srv := fakeGitHub(t)
	gh := &oauth2.Config{
		ClientID:     "client",
		ClientSecret: "secret",
		RedirectURL:  "http://localhost:8080/api/v1/auth/github/callback",
		Endpoint: oauth2.Endpoint{
			AuthURL:   srv.URL + "/login/oauth/authorize",
			TokenURL:  srv.URL + "/login/oauth/access_token",
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}
	svc, _ := newAuthService(t, gh, srv.URL)
	ctx := context.Background()

	require.True(t, svc.GitHubEnabled())

	authURL, err := svc.GitHubAuthURL(ctx)
	require.NoError(t, err)
	u, err := url.Parse(authURL)
	require.NoError(t, err)
	state := u.Query().Get("state")
	require.NotEmpty(t, state)
	assert.Equal(t, "client", u.Query().Get("client_id"))

	t.Run("unknown state", func(t *testing.T) {
		_, _, err := svc.GitHubCallback(ctx, "good-code", "forged")
		assert.ErrorIs(t, err, domain.ErrInvalidState)
	})

	token, sess, err := svc.GitHubCallback(ctx, "good-code", state)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "583231", sess.User.ID)
	assert.Equal(t, "octocat", sess.User.Name)
	assert.Equal(t, "octo@example.com", sess.User.Email)
	assert.Equal(t, domain.RoleAdmin, sess.User.Role)
	assert.Equal(t, domain.ProviderGitHub, sess.User.Provider)

	t.Run("state is single use", func(t *testing.T) {
		_, _, err := svc.GitHubCallback(ctx, "good-code", state)
		assert.ErrorIs(t, err, domain.ErrInvalidState)
	})

	t.Run("bad code", func(t *testing.T) {
		authURL, err := svc.GitHubAuthURL(ctx)
		require.NoError(t, err)
		u, _ := url.Parse(authURL)

		_, _, err = svc.GitHubCallback(ctx, "bad-code", u.Query().Get("state"))
		assert.Error(t, err)
	})
}

func TestGitHubDisabled(t *testing.T) {
	svc, _ := newAuthService(t, nil, "")
	assert.False(t, svc.GitHubEnabled())

	_, err := svc.GitHubAuthURL(context.Background())
	assert.ErrorIs(t, err, domain.ErrProviderDisabled)

	_, _, err = svc.GitHubCallback(context.Background(), "c", "s")
	assert.ErrorIs(t, err, domain.ErrProviderDisabled)
}

func TestGitHubConfig(t *testing.T) {
	assert.Nil(t, service.GitHubConfig("", "x", ""))

	cfg := service.GitHubConfig("id", "secret", "http://localhost/cb")
	require.NotNil(t, cfg)
	assert.Equal(t, "https://github.com/login/oauth/authorize", cfg.Endpoint.AuthURL)
}
