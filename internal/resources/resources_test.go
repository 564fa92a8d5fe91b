package resources

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(rs []Resource) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.ID
	}
	return out
}

func TestCatalogShape(t *testing.T) {
	assert.Len(t, All(), 19)
	assert.Len(t, Categories(), 8)
	for _, r := range All() {
		assert.True(t, ValidCategory(r.Category), r.ID)
		assert.NotEmpty(t, r.Link, r.ID)
	}
}

func TestFeaturedTakesFirstThree(t *testing.T) {
	assert.Equal(t, []string{"1", "4", "7"}, ids(Featured()))
}

func TestFilterByCategory(t *testing.T) {
	assert.Equal(t, []string{"1", "2", "3"}, ids(Filter(Query{Category: CategoryFunding})))
	assert.Len(t, Filter(Query{Category: CategoryAll}), 19)
	assert.Len(t, Filter(Query{}), 19)
}

func TestFilterSearchIsCaseInsensitive(t *testing.T) {
	assert.Equal(t, []string{"4", "9", "12", "14", "15"}, ids(Filter(Query{Search: "GLOBAL"})))
	assert.Equal(t, []string{"2"}, ids(Filter(Query{Search: "microloan"})))
	assert.Empty(t, Filter(Query{Category: CategoryLegal, Search: "accelerator"}))
}

func TestFilterLocalSortsNearbyFirst(t *testing.T) {
	got := Filter(Query{Category: CategoryLocal, UserLocation: "Local, NY"})
	assert.Equal(t, []string{"11", "10"}, ids(got))

	got = Filter(Query{Category: CategoryLocal, UserLocation: "Austin, TX"})
	assert.Equal(t, []string{"10", "11"}, ids(got))

	got = Filter(Query{Category: CategoryNetworking, UserLocation: "Various, CA"})
	assert.Equal(t, []string{"4", "5", "6"}, ids(got))
}

func TestFilterReturnsCopies(t *testing.T) {
	got := Filter(Query{Category: CategoryFunding})
	got[0].Tags[0] = "mutated"
	assert.Equal(t, "loan", All()[0].Tags[0])
}

type stubLocations struct {
	loc string
	err error
}

func (s stubLocations) LocationFor(ctx context.Context, userID string) (string, error) {
	return s.loc, s.err
}

func serve(t *testing.T, h *Handler, userID, target string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if userID != "" {
			c.Set("userId", userID)
		}
		c.Next()
	})
	h.RegisterRoutes(r.Group("/api/v1"))
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, target, nil))
	return resp
}

type listBody struct {
	Featured     []Resource `json:"featured"`
	Resources    []Resource `json:"resources"`
	UserLocation string     `json:"userLocation"`
}

func TestHandlerUsesSavedLocation(t *testing.T) {
	h := NewHandler(stubLocations{loc: "Local, NY"})
	resp := serve(t, h, "user-1", "/api/v1/resources?category=local")
	require.Equal(t, http.StatusOK, resp.Code)

	var body listBody
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "Local, NY", body.UserLocation)
	assert.Equal(t, []string{"11", "10"}, ids(body.Resources))
	assert.Len(t, body.Featured, 3)
}

func TestHandlerQueryLocationWins(t *testing.T) {
	h := NewHandler(stubLocations{loc: "Local, NY"})
	resp := serve(t, h, "user-1", "/api/v1/resources?category=local&location=Austin")
	require.Equal(t, http.StatusOK, resp.Code)
	var body listBody
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "Austin", body.UserLocation)
}

func TestHandlerAnonymousAndLookupErrors(t *testing.T) {
	h := NewHandler(stubLocations{err: errors.New("boom")})
	resp := serve(t, h, "user-1", "/api/v1/resources?q=legal")
	require.Equal(t, http.StatusOK, resp.Code)
	var body listBody
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Empty(t, body.UserLocation)
	assert.Equal(t, []string{"18", "19"}, ids(body.Resources))

	resp = serve(t, NewHandler(nil), "", "/api/v1/resources")
	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestHandlerRejectsUnknownCategory(t *testing.T) {
	resp := serve(t, NewHandler(nil), "", "/api/v1/resources?category=space")
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}
