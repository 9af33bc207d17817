//go:build unit || e2e

package httptest

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"venuebook/internal/handler/middleware"
)

// Actor carries the identity headers the API layer resolves callers from.
type Actor struct {
	UserID         string
	TenantID       string
	OrganizationID string
}

// executes an HTTP request with optional actor identity headers
func PerformRequest(t *testing.T, router *gin.Engine, method, path string, body any, actor *Actor) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody *bytes.Buffer
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err, "Failed to encode request body to JSON")
		reqBody = bytes.NewBuffer(jsonBody)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if actor != nil {
		req.Header.Set(middleware.HeaderActorID, actor.UserID)
		req.Header.Set(middleware.HeaderTenantID, actor.TenantID)
		if actor.OrganizationID != "" {
			req.Header.Set(middleware.HeaderOrganizationID, actor.OrganizationID)
		}
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// decodes JSON response body into target struct
func DecodeResponseBody(t *testing.T, body *bytes.Buffer, target any) error {
	t.Helper()

	err := json.NewDecoder(body).Decode(target)
	require.NoError(t, err, "Failed to decode response body")

	return err
}
