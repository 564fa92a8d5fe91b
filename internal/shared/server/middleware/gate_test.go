package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestGateTarget(t *testing.T) {
	cases := []struct {
		path   string
		authed bool
		want   string
	}{
		{"/dashboard", false, "/signin"},
		{"/profile", false, "/signin"},
		{"/business-ideas", false, "/signin"},
		{"/dashboard/anything", false, "/signin"},
		{"/resources", false, ""},
		{"/", false, ""},
		{"/signin", false, ""},
		{"/signup", false, ""},
		{"/signin", true, "/dashboard"},
		{"/signup", true, "/dashboard"},
		{"/signin/extra", true, ""},
		{"/dashboard", true, ""},
		{"/resources", true, ""},
	}
	for _, tc := range cases {
		if got := GateTarget(tc.path, tc.authed); got != tc.want {
			t.Fatalf("GateTarget(%q, %v) = %q, want %q", tc.path, tc.authed, got, tc.want)
		}
	}
}

func TestGateRedirectsAndKeepsQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	signer := testSigner(t)
	router := gin.New()
	router.Use(Session(signer), Gate())
	router.GET("/business-ideas", func(c *gin.Context) { c.String(http.StatusOK, "ideas") })
	router.GET("/signin", func(c *gin.Context) { c.String(http.StatusOK, "signin") })

	req := httptest.NewRequest(http.MethodGet, "/business-ideas?idea=1", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", resp.Code)
	}
	if loc := resp.Header().Get("Location"); loc != "/signin?idea=1" {
		t.Fatalf("unexpected location %q", loc)
	}

	token, _ := signer.Sign("user-1", "", "")
	req = httptest.NewRequest(http.MethodGet, "/signin", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusFound || resp.Header().Get("Location") != "/dashboard" {
		t.Fatalf("expected redirect to /dashboard, got %d %q", resp.Code, resp.Header().Get("Location"))
	}

	req = httptest.NewRequest(http.MethodGet, "/business-ideas", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
}
