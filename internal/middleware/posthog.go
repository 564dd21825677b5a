package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// EventSink is the analytics client used by PosthogMiddleware.
type EventSink interface {
	IsInitialized() bool
	Enqueue(distinctID string, event string, properties map[string]any)
}

// pathsToSkip contains paths that should not be tracked by PostHog
var pathsToSkip = map[string]bool{
	"/health": true,
}

// PosthogMiddleware records one event per successful authenticated API call.
// "/api/v1/loans/:loanID/repayments" becomes "api_v1_loans_loanID_repayments".
func PosthogMiddleware(sink EventSink) gin.HandlerFunc {
	return func(c *gin.Context) {
		if sink == nil || !sink.IsInitialized() || pathsToSkip[c.Request.URL.Path] || strings.HasPrefix(c.Request.URL.Path, "/swagger") {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		userID, exists := GetUserIDFromContext(c)
		if !exists {
			return
		}

		eventName := routeEventName(c.FullPath())
		if eventName == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"status_code": c.Writer.Status(),
		}
		if len(c.Params) > 0 {
			params := make(map[string]string, len(c.Params))
			for _, param := range c.Params {
				params[param.Key] = param.Value
			}
			props["params"] = params
		}

		sink.Enqueue(userID, eventName, props)
	}
}

func routeEventName(fullPath string) string {
	name := strings.TrimPrefix(fullPath, "/")
	name = strings.ReplaceAll(name, ":", "")
	return strings.ReplaceAll(name, "/", "_")
}
