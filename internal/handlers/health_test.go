package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck_WithoutBackends(t *testing.T) {
	env := setupTestEnv(t)

	w := env.do(t, http.MethodGet, "/v1/health", nil, "")
	require.Equal(t, http.StatusServiceUnavailable, w.Code)

	var resp HealthResponse
	decode(t, w, &resp)
	assert.Equal(t, "unhealthy", resp.Status)
	assert.Equal(t, "unavailable", resp.Services["mongodb"])
	assert.Equal(t, "unavailable", resp.Services["redis"])
	assert.False(t, resp.Timestamp.IsZero())
}
