package service

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/GoSim-25-26J-441/project-dashboard/internal/auth/domain"
	"github.com/GoSim-25-26J-441/project-dashboard/internal/auth/repository"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"
)

const (
	// DemoUserID is the fixed id of the credentials account.
	DemoUserID = "33"

	stateTTL         = 10 * time.Minute
	defaultGitHubAPI = "https://api.github.com"
	issuer           = "project-dashboard"
)

// Claims is the JWT payload. Role is always admin.
type Claims struct {
	Name     string          `json:"name"`
	Email    string          `json:"email,omitempty"`
	Picture  string          `json:"picture,omitempty"`
	Role     string          `json:"role"`
	Provider domain.Provider `json:"provider"`
	jwt.RegisteredClaims
}

// Options configures the AuthService.
type Options struct {
	Secret       []byte
	TokenTTL     time.Duration
	DemoUsername string
	DemoPassword string

	// GitHub is nil when the provider is disabled.
	GitHub       *oauth2.Config
	GitHubAPIURL string
	HTTPClient   *http.Client

	Now func() time.Time
}

// GitHubConfig builds the oauth2 config for GitHub, or nil without a client id.
func GitHubConfig(clientID, clientSecret, redirectURL string) *oauth2.Config {
	if clientID == "" {
		return nil
	}
	return &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURL,
		Endpoint:     github.Endpoint,
		Scopes:       []string{"read:user", "user:email"},
	}
}

type AuthService struct {
	store  repository.SessionStore
	opts   Options
	logger *zap.Logger
}

func NewAuthService(store repository.SessionStore, opts Options, logger *zap.Logger) *AuthService {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.GitHubAPIURL == "" {
		opts.GitHubAPIURL = defaultGitHubAPI
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: 10 * time.Second}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{store: store, opts: opts, logger: logger}
}

// LoginWithCredentials checks the demo account and opens a session
func (s *AuthService) LoginWithCredentials(ctx context.Context, username, password string) (string, *domain.Session, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.opts.DemoUsername)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.opts.DemoPassword)) == 1
	if !userOK || !passOK {
		s.logger.Info("credentials login rejected", zap.String("username", username))
		return "", nil, domain.ErrInvalidCredentials
	}

	return s.issue(ctx, domain.User{
		ID:       DemoUserID,
		Name:     s.opts.DemoUsername,
		Provider: domain.ProviderCredentials,
	})
}

func (s *AuthService) GitHubEnabled() bool {
	return s.opts.GitHub != nil
}

// GitHubAuthURL starts the OAuth flow and returns the consent page URL
func (s *AuthService) GitHubAuthURL(ctx context.Context) (string, error) {
	if !s.GitHubEnabled() {
		return "", domain.ErrProviderDisabled
	}

	state := uuid.NewString()
	if err := s.store.SaveState(ctx, state, stateTTL); err != nil {
		return "", err
	}
	return s.opts.GitHub.AuthCodeURL(state), nil
}

type githubUser struct {
	ID        int64  `json:"id"`
	Login     string `json:"login"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url"`
}

// GitHubCallback finishes the OAuth flow and opens a session
func (s *AuthService) GitHubCallback(ctx context.Context, code, state string) (string, *domain.Session, error) {
	if !s.GitHubEnabled() {
		return "", nil, domain.ErrProviderDisabled
	}
	if err := s.store.ConsumeState(ctx, state); err != nil {
		return "", nil, err
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, s.opts.HTTPClient)
	tok, err := s.opts.GitHub.Exchange(ctx, code)
	if err != nil {
		return "", nil, fmt.Errorf("exchange github code: %w", err)
	}

	gh, err := s.fetchGitHubUser(ctx, tok)
	if err != nil {
		return "", nil, err
	}

	name := gh.Name
	if name == "" {
		name = gh.Login
	}
	return s.issue(ctx, domain.User{
		ID:       strconv.FormatInt(gh.ID, 10),
		Name:     name,
		Email:    gh.Email,
		Image:    gh.AvatarURL,
		Provider: domain.ProviderGitHub,
	})
}

func (s *AuthService) fetchGitHubUser(ctx context.Context, tok *oauth2.Token) (*githubUser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, strings.TrimRight(s.opts.GitHubAPIURL, "/")+"/user", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := s.opts.GitHub.Client(ctx, tok).Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch github user: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch github user: unexpected status %d", resp.StatusCode)
	}

	var u githubUser
	if err := json.NewDecoder(resp.Body).Decode(&u); err != nil {
		return nil, fmt.Errorf("decode github user: %w", err)
	}
	if u.ID == 0 {
		return nil, errors.New("github user has no id")
	}
	return &u, nil
}

// Authenticate validates a bearer token and returns its live session
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.Session, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return s.opts.Secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.opts.Now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}

	sess, err := s.store.Get(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	return sess, nil
}

// Logout revokes a session
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if err := s.store.Delete(ctx, sessionID); err != nil {
		return err
	}
	s.logger.Info("session closed", zap.String("session_id", sessionID))
	return nil
}

func (s *AuthService) issue(ctx context.Context, user domain.User) (string, *domain.Session, error) {
	user.Role = domain.RoleAdmin

	now := s.opts.Now().UTC().Truncate(time.Second)
	sess := &domain.Session{
		ID:        uuid.NewString(),
		User:      user,
		IssuedAt:  now,
		ExpiresAt: now.Add(s.opts.TokenTTL),
	}

	claims := Claims{
		Name:     user.Name,
		Email:    user.Email,
		Picture:  user.Image,
		Role:     user.Role,
		Provider: user.Provider,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sess.ID,
			Subject:   user.ID,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(sess.IssuedAt),
			ExpiresAt: jwt.NewNumericDate(sess.ExpiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.opts.Secret)
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}

	if err := s.store.Save(ctx, sess); err != nil {
		return "", nil, err
	}

	s.logger.Info("session opened",
		zap.String("session_id", sess.ID),
		zap.String("user_id", user.ID),
		zap.String("provider", string(user.Provider)),
	)
	return signed, sess, nil
}
