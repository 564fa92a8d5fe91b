package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"fedventura-backend/internal/shared/auth"
	"fedventura-backend/internal/shared/server/respond"
)

// SessionCookie holds the signed session token.
const SessionCookie = "fv_session"

const (
	userIDKey    = "userId"
	userEmailKey = "userEmail"
	userNameKey  = "userName"
	isGuestKey   = "isGuest"
)

// TokenVerifier validates session tokens.
type TokenVerifier interface {
	Verify(token string) (auth.Claims, error)
}

// Session resolves the caller's identity from the session cookie or a bearer
// token. Anonymous requests continue with isGuest=true; a malformed or
// invalid bearer token is rejected.
func Session(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusNoContent)
			c.Abort()
			return
		}
		c.Set(isGuestKey, true)

		if header := strings.TrimSpace(c.GetHeader("Authorization")); header != "" {
			token, ok := strings.CutPrefix(header, "Bearer ")
			token = strings.TrimSpace(token)
			if !ok || token == "" {
				respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
				return
			}
			claims, err := verifier.Verify(token)
			if err != nil {
				respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
				return
			}
			setIdentity(c, claims)
			c.Next()
			return
		}

		if cookie, err := c.Cookie(SessionCookie); err == nil && cookie != "" {
			if claims, err := verifier.Verify(cookie); err == nil {
				setIdentity(c, claims)
			}
		}
		c.Next()
	}
}

// RequireUser rejects anonymous API calls.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IsAuthenticated(c) {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "login required", nil)
			return
		}
		c.Next()
	}
}

func setIdentity(c *gin.Context, claims auth.Claims) {
	c.Set(userIDKey, claims.UserID())
	if claims.Email != "" {
		c.Set(userEmailKey, claims.Email)
	}
	if claims.Name != "" {
		c.Set(userNameKey, claims.Name)
	}
	c.Set(isGuestKey, false)
}

// IsAuthenticated reports whether Session resolved a user.
func IsAuthenticated(c *gin.Context) bool {
	return UserIDFromContext(c) != ""
}

// UserIDFromContext fetches the user ID set by the auth middleware.
func UserIDFromContext(c *gin.Context) string {
	return contextString(c, userIDKey)
}

// UserEmailFromContext fetches the user email set by the auth middleware.
func UserEmailFromContext(c *gin.Context) string {
	return contextString(c, userEmailKey)
}

// UserNameFromContext fetches the user name set by the auth middleware.
func UserNameFromContext(c *gin.Context) string {
	return contextString(c, userNameKey)
}

func contextString(c *gin.Context, key string) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(key)
	if s, ok := val.(string); ok {
		return s
	}
	return ""
}
