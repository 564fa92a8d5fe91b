package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveGenerationCountsByState(t *testing.T) {
	before := testutil.ToFloat64(generationsTotal.WithLabelValues("courses", "fallback", "no_json"))
	ObserveGeneration("courses", "fallback", "no_json", 150*time.Millisecond)
	after := testutil.ToFloat64(generationsTotal.WithLabelValues("courses", "fallback", "no_json"))
	if after-before != 1 {
		t.Fatalf("expected counter to advance by 1, got %v", after-before)
	}
}

func TestObserveCacheLookup(t *testing.T) {
	hits := testutil.ToFloat64(cacheLookups.WithLabelValues("hit"))
	misses := testutil.ToFloat64(cacheLookups.WithLabelValues("miss"))
	ObserveCacheLookup(true)
	ObserveCacheLookup(false)
	ObserveCacheLookup(false)
	if got := testutil.ToFloat64(cacheLookups.WithLabelValues("hit")) - hits; got != 1 {
		t.Fatalf("expected 1 hit, got %v", got)
	}
	if got := testutil.ToFloat64(cacheLookups.WithLabelValues("miss")) - misses; got != 2 {
		t.Fatalf("expected 2 misses, got %v", got)
	}
}

func TestHandlerRendersPrometheusText(t *testing.T) {
	gin.SetMode(gin.TestMode)
	IncPersistenceFailure("save_recommendations")
	ObserveRequest(http.MethodGet, "", http.StatusOK, time.Millisecond)

	r := gin.New()
	r.GET("/metrics", Handler())
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	body := resp.Body.String()
	for _, want := range []string{"persistence_failures_total", `route="unmatched"`} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected %q in metrics output", want)
		}
	}
}
