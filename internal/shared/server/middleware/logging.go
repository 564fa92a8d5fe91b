package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fedventura-backend/internal/advisor"
	"fedventura-backend/internal/shared/metrics"
	"fedventura-backend/internal/shared/telemetry"
	"fedventura-backend/internal/shared/tracing"
)

// AdvisorStateKey is set by handlers to the final state of a generation.
const (
	AdvisorStateKey     = "advisorState"
	advisorDisplayedKey = "advisorDisplayed"
)

// MarkDisplayed moves sub to displayed after its result has been written and
// records the generation result for the request log.
func MarkDisplayed(c *gin.Context, sub *advisor.Submission) {
	if sub == nil {
		return
	}
	if err := sub.Transition(advisor.StateDisplayed); err != nil {
		telemetry.Warn("advisor.display_failed", map[string]any{
			"error":      err,
			"request_id": RequestIDFromContext(c),
		})
	} else {
		c.Set(advisorDisplayedKey, true)
	}
	c.Set(AdvisorStateKey, string(sub.Result()))
}

// Logging emits a structured log and request metrics per request.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()

		metrics.ObserveRequest(c.Request.Method, c.FullPath(), status, latency)

		fields := map[string]any{
			"request_id":  RequestIDFromContext(c),
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"route":       c.FullPath(),
			"status":      status,
			"duration_ms": float64(latency.Microseconds()) / 1000.0,
			"user_id":     UserIDFromContext(c),
			"is_guest":    c.GetBool(isGuestKey),
			"client_ip":   c.ClientIP(),
			"user_agent":  c.Request.UserAgent(),
		}
		if state := c.GetString(AdvisorStateKey); state != "" {
			fields["advisor_state"] = state
			fields["advisor_displayed"] = c.GetBool(advisorDisplayedKey)
		}
		if traceID := tracing.TraceID(c.Request.Context()); traceID != "" {
			fields["trace_id"] = traceID
		}
		telemetry.Info("request.complete", fields)
	}
}
