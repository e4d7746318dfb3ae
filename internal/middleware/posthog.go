package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/cashclaim/internal/utils"
	"github.com/gin-gonic/gin"
)

// pathsToSkip contains paths that should not be tracked by PostHog
var pathsToSkip = map[string]bool{
	"/health": true,
}

// routeEvent names the business event behind a route and the :id it refers to.
type routeEvent struct {
	event   string
	feature string
	idProp  string
}

// routeEvents covers the state-changing routes. Reads fall back to a path-derived name.
var routeEvents = map[string]routeEvent{
	"POST /api/v1/entries":                    {"ledger_entry_recorded", "ledger", ""},
	"DELETE /api/v1/entries/:id":              {"ledger_entry_deleted", "ledger", "entry_id"},
	"POST /api/v1/transfers":                  {"funds_transferred", "transfers", ""},
	"POST /api/v1/moves":                      {"funds_moved", "transfers", ""},
	"POST /api/v1/projects":                   {"project_created", "projects", ""},
	"POST /api/v1/reimbursements":             {"claim_submitted", "reimbursements", ""},
	"POST /api/v1/reimbursements/:id/approve": {"claim_approved", "reimbursements", "claim_id"},
	"POST /api/v1/reimbursements/:id/reject":  {"claim_rejected", "reimbursements", "claim_id"},
	"POST /api/v1/reimbursements/:id/pay":     {"claim_paid", "reimbursements", "claim_id"},
	"DELETE /api/v1/users/:id":                {"user_deleted", "users", "user_id"},
	"PUT /api/v1/users/:id/access-code":       {"access_code_reset", "users", "user_id"},
}

// PosthogMiddleware creates a Gin middleware handler that tracks successful API calls with PostHog.
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if posthogClient == nil || !posthogClient.IsInitialized() || pathsToSkip[c.Request.URL.Path] {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		// Set by AuthMiddleware; anonymous calls are not tracked.
		principal, exists := GetPrincipalFromContext(c)
		if !exists || principal.UserName == "" {
			return
		}

		eventName, props := describeEvent(c.Request.Method, c.FullPath(), c.Params)
		if eventName == "" {
			return
		}
		props["status_code"] = c.Writer.Status()
		props["is_admin"] = principal.IsAdmin

		posthogClient.Enqueue(principal.UserName, eventName, props)
	}
}

// describeEvent maps a matched route onto an event name and its properties.
func describeEvent(method, fullPath string, params gin.Params) (string, map[string]any) {
	props := map[string]any{"method": method, "route": fullPath}

	if ev, ok := routeEvents[method+" "+fullPath]; ok {
		props["feature"] = ev.feature
		if ev.idProp != "" {
			props[ev.idProp] = params.ByName("id")
		}
		return ev.event, props
	}

	// "/api/v1/reimbursements/stats" -> "api_v1_reimbursements_stats_viewed"
	name := strings.ReplaceAll(strings.TrimPrefix(fullPath, "/"), "/", "_")
	if name == "" {
		return "", nil
	}
	return name + "_viewed", props
}
