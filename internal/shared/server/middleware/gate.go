package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	SignInPath    = "/signin"
	DashboardPath = "/dashboard"
)

var (
	protectedPrefixes = []string{"/dashboard", "/profile", "/business-ideas"}
	authOnlyPaths     = []string{"/signin", "/signup"}
)

// GateTarget decides where a page request for path should be sent. It
// returns "" when the request may proceed.
func GateTarget(path string, authenticated bool) string {
	if !authenticated {
		for _, prefix := range protectedPrefixes {
			if strings.HasPrefix(path, prefix) {
				return SignInPath
			}
		}
		return ""
	}
	for _, p := range authOnlyPaths {
		if path == p {
			return DashboardPath
		}
	}
	return ""
}

// Gate redirects page requests according to GateTarget. The query string is
// kept on the redirect. Must run after Session.
func Gate() gin.HandlerFunc {
	return func(c *gin.Context) {
		target := GateTarget(c.Request.URL.Path, IsAuthenticated(c))
		if target == "" {
			c.Next()
			return
		}
		u := *c.Request.URL
		u.Path = target
		c.Redirect(http.StatusFound, u.RequestURI())
		c.Abort()
	}
}
