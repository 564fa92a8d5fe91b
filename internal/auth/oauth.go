package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/facebook"
	"golang.org/x/oauth2/google"

	"fedventura-backend/internal/shared/server/middleware"
	"fedventura-backend/internal/shared/telemetry"
)

const (
	ProviderGoogle   = "google"
	ProviderFacebook = "facebook"

	googleUserInfoURL   = "https://www.googleapis.com/oauth2/v2/userinfo"
	facebookUserInfoURL = "https://graph.facebook.com/me?fields=id,name,email"
)

// Provider is one OAuth identity provider.
type Provider struct {
	Name        string
	Config      *oauth2.Config
	UserInfoURL string
}

func (p Provider) configured() bool {
	return p.Config != nil && p.Config.ClientID != "" && p.Config.ClientSecret != "" && p.Config.RedirectURL != ""
}

func GoogleProvider(clientID, clientSecret, redirectURL string) Provider {
	return Provider{
		Name: ProviderGoogle,
		Config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
			},
			Endpoint: google.Endpoint,
		},
		UserInfoURL: googleUserInfoURL,
	}
}

func FacebookProvider(clientID, clientSecret, redirectURL string) Provider {
	return Provider{
		Name: ProviderFacebook,
		Config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       []string{"email", "public_profile"},
			Endpoint:     facebook.Endpoint,
		},
		UserInfoURL: facebookUserInfoURL,
	}
}

// OAuthService handles provider redirects and callbacks for the page flow.
type OAuthService struct {
	Accounts     *Service
	SecureCookie bool
	providers    map[string]Provider
	stateTTL     time.Duration
	states       *stateStore
}

func NewOAuthService(accounts *Service, secureCookie bool, providers ...Provider) *OAuthService {
	byName := make(map[string]Provider, len(providers))
	for _, p := range providers {
		byName[p.Name] = p
	}
	return &OAuthService{
		Accounts:     accounts,
		SecureCookie: secureCookie,
		providers:    byName,
		stateTTL:     5 * time.Minute,
		states:       newStateStore(time.Now),
	}
}

// RegisterRoutes attaches provider start and callback routes.
func (s *OAuthService) RegisterRoutes(r gin.IRoutes) {
	r.GET("/auth/:provider/start", s.start)
	r.GET("/auth/:provider/callback", s.callback)
}

func (s *OAuthService) start(c *gin.Context) {
	provider, ok := s.providers[c.Param("provider")]
	if !ok {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}
	if !provider.configured() {
		s.fail(c, provider.Name, "oauth_unavailable", nil)
		return
	}

	state := uuid.NewString()
	s.states.put(state, provider.Name, s.stateTTL)
	c.Redirect(http.StatusFound, provider.Config.AuthCodeURL(state))
}

func (s *OAuthService) callback(c *gin.Context) {
	provider, ok := s.providers[c.Param("provider")]
	if !ok {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}
	if denied := c.Query("error"); denied != "" {
		s.fail(c, provider.Name, "oauth_denied", fmt.Errorf("provider error %q", denied))
		return
	}
	state := c.Query("state")
	code := c.Query("code")
	if state == "" || code == "" {
		s.fail(c, provider.Name, "oauth_invalid", fmt.Errorf("missing state or code"))
		return
	}
	if !s.states.consume(state, provider.Name) {
		s.fail(c, provider.Name, "oauth_invalid", fmt.Errorf("invalid or expired state"))
		return
	}

	ctx := c.Request.Context()
	token, err := provider.Config.Exchange(ctx, code)
	if err != nil {
		s.fail(c, provider.Name, "oauth_failed", err)
		return
	}
	identity, err := fetchIdentity(ctx, provider, token)
	if err != nil {
		s.fail(c, provider.Name, "oauth_failed", err)
		return
	}
	session, err := s.Accounts.SignInIdentity(ctx, identity)
	if err != nil {
		s.fail(c, provider.Name, "oauth_failed", err)
		return
	}

	SetSessionCookie(c, session.Token, s.Accounts.Signer.TTL(), s.SecureCookie)
	c.Redirect(http.StatusFound, middleware.DashboardPath)
}

func (s *OAuthService) fail(c *gin.Context, provider, code string, err error) {
	fields := map[string]any{
		"provider":   provider,
		"code":       code,
		"request_id": c.GetString("requestId"),
	}
	if err != nil {
		fields["error"] = err.Error()
	}
	telemetry.Warn("auth.oauth_failed", fields)
	c.Redirect(http.StatusFound, middleware.SignInPath+"?"+url.Values{"error": {code}}.Encode())
}

type providerUserInfo struct {
	Sub   string `json:"sub"`
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func fetchIdentity(ctx context.Context, provider Provider, token *oauth2.Token) (Identity, error) {
	client := provider.Config.Client(ctx, token)
	resp, err := client.Get(provider.UserInfoURL)
	if err != nil {
		return Identity{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Identity{}, fmt.Errorf("userinfo status %d", resp.StatusCode)
	}

	var info providerUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return Identity{}, err
	}
	// Google's v2 endpoint reports "id"; OpenID responses use "sub".
	if info.Sub == "" {
		info.Sub = info.ID
	}
	if info.Sub == "" {
		return Identity{}, fmt.Errorf("userinfo missing subject")
	}
	return Identity{Provider: provider.Name, Subject: info.Sub, Email: info.Email, Name: info.Name}, nil
}

type pendingState struct {
	provider string
	expires  time.Time
}

type stateStore struct {
	items map[string]pendingState
	mu    sync.Mutex
	now   func() time.Time
}

func newStateStore(now func() time.Time) *stateStore {
	return &stateStore{items: make(map[string]pendingState), now: now}
}

func (s *stateStore) put(state, provider string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	for k, v := range s.items {
		if now.After(v.expires) {
			delete(s.items, k)
		}
	}
	s.items[state] = pendingState{provider: provider, expires: now.Add(ttl)}
}

func (s *stateStore) consume(state, provider string) bool {
	s.mu.Lock()
	item, ok := s.items[state]
	if ok {
		delete(s.items, state)
	}
	s.mu.Unlock()
	if !ok || item.provider != provider {
		return false
	}
	return !s.now().After(item.expires)
}
