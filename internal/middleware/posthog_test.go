package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/cashclaim/internal/core/domain"
	"github.com/SscSPs/cashclaim/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/posthog/posthog-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingClient keeps every captured event. Methods it does not override panic.
type recordingClient struct {
	posthog.Client
	captured []posthog.Capture
}

func (r *recordingClient) Enqueue(msg posthog.Message) error {
	if capture, ok := msg.(posthog.Capture); ok {
		r.captured = append(r.captured, capture)
	}
	return nil
}

func TestDescribeEvent(t *testing.T) {
	params := gin.Params{{Key: "id", Value: "42"}}

	name, props := describeEvent(http.MethodPost, "/api/v1/reimbursements/:id/approve", params)
	assert.Equal(t, "claim_approved", name)
	assert.Equal(t, "reimbursements", props["feature"])
	assert.Equal(t, "42", props["claim_id"])

	name, props = describeEvent(http.MethodPost, "/api/v1/transfers", nil)
	assert.Equal(t, "funds_transferred", name)
	assert.Equal(t, "transfers", props["feature"])

	name, props = describeEvent(http.MethodGet, "/api/v1/reimbursements/stats", nil)
	assert.Equal(t, "api_v1_reimbursements_stats_viewed", name)
	assert.Equal(t, "/api/v1/reimbursements/stats", props["route"])
	assert.NotContains(t, props, "feature")

	name, _ = describeEvent(http.MethodGet, "", nil)
	assert.Empty(t, name)
}

func TestPosthogMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	client := &recordingClient{}
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if c.GetHeader("X-User") != "" {
			c.Set(string(principalKey), domain.Principal{UserName: c.GetHeader("X-User"), IsAdmin: true})
		}
	})
	r.Use(PosthogMiddleware(utils.NewPosthogClientWrapper(client, nil)))
	r.POST("/api/v1/reimbursements/:id/pay", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.POST("/api/v1/transfers", func(c *gin.Context) { c.Status(http.StatusUnprocessableEntity) })

	send := func(path, user string) {
		req := httptest.NewRequest(http.MethodPost, path, nil)
		req.Header.Set("X-User", user)
		r.ServeHTTP(httptest.NewRecorder(), req)
	}
	send("/api/v1/reimbursements/9/pay", "Admin")
	send("/api/v1/reimbursements/9/pay", "")
	send("/api/v1/transfers", "Admin")

	require.Len(t, client.captured, 1, "anonymous and failed calls are not tracked")
	got := client.captured[0]
	assert.Equal(t, "Admin", got.DistinctId)
	assert.Equal(t, "claim_paid", got.Event)
	assert.Equal(t, "9", got.Properties["claim_id"])
	assert.Equal(t, http.StatusNoContent, got.Properties["status_code"])
	assert.Equal(t, true, got.Properties["is_admin"])
}

func TestPosthogMiddleware_Disabled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(PosthogMiddleware(nil))
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
