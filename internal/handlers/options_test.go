package handlers

import (
	"net/http"
	"testing"

	"github.com/aabb-jequie/app-inscricao/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOptions(t *testing.T) {
	env := setupTestEnv(t)

	w := env.do(t, http.MethodGet, "/v1/options", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "public, max-age=3600", w.Header().Get("Cache-Control"))

	var got catalog.Catalog
	decode(t, w, &got)
	want := catalog.Default()
	assert.Equal(t, want.Neighborhoods, got.Neighborhoods)
	assert.Equal(t, want.DueDays, got.DueDays)
	assert.Contains(t, got.UFs, "BA")
}
