package handlers

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/aabb-jequie/app-inscricao/internal/fixtures"
	"github.com/aabb-jequie/app-inscricao/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const appID = "0b8e2a4c-2f0e-4c44-9a53-3c1d9f6f1a10"

func seedApplication(t *testing.T, env *testEnv) {
	t.Helper()
	require.NoError(t, env.store.Insert(context.Background(), fixtures.MariaRecord(appID)))
}

func TestAdmin_RequiresAdminToken(t *testing.T) {
	env := setupTestEnv(t)
	seedApplication(t, env)

	w := env.do(t, http.MethodGet, "/v1/admin/applications", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.do(t, http.MethodGet, "/v1/admin/applications", nil, adminToken(t, "member"))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = env.do(t, http.MethodDelete, "/v1/admin/applications/"+appID, nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, 1, env.store.Len())
}

func TestAdmin_ListApplications(t *testing.T) {
	env := setupTestEnv(t)
	seedApplication(t, env)
	older := fixtures.MariaRecord("older")
	older.CreatedAt = fixtures.Now.AddDate(0, -1, 0)
	require.NoError(t, env.store.Insert(context.Background(), older))
	token := adminToken(t, "admin")

	w := env.do(t, http.MethodGet, "/v1/admin/applications", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	var all ApplicationListResponse
	decode(t, w, &all)
	assert.Equal(t, 2, all.Total)
	assert.Equal(t, appID, all.Data[0].ID)

	w = env.do(t, http.MethodGet, "/v1/admin/applications?start=2025-01-15&end=2025-01-15", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	var day ApplicationListResponse
	decode(t, w, &day)
	require.Equal(t, 1, day.Total)
	assert.Equal(t, appID, day.Data[0].ID)

	w = env.do(t, http.MethodGet, "/v1/admin/applications?start=2025-02-01&end=2025-01-01", nil, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = env.do(t, http.MethodGet, "/v1/admin/applications?start=15/01/2025", nil, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdmin_ListEmpty(t *testing.T) {
	env := setupTestEnv(t)

	w := env.do(t, http.MethodGet, "/v1/admin/applications", nil, adminToken(t, "admin"))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data":[],"total":0}`, w.Body.String())
}

func TestAdmin_GetApplication(t *testing.T) {
	env := setupTestEnv(t)
	seedApplication(t, env)
	token := adminToken(t, "admin")

	w := env.do(t, http.MethodGet, "/v1/admin/applications/"+appID, nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	var rec models.ApplicationRecord
	decode(t, w, &rec)
	assert.Equal(t, "Maria Silva Santos", rec.FullName)
	assert.Equal(t, "123.456.789-00", rec.CPF)

	w = env.do(t, http.MethodGet, "/v1/admin/applications/missing", nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdmin_UpdateApplication(t *testing.T) {
	env := setupTestEnv(t)
	seedApplication(t, env)
	token := adminToken(t, "admin")
	path := "/v1/admin/applications/" + appID

	w := env.do(t, http.MethodPatch, path, `{"full_name":"Maria Silva Souza","due_date":"20"}`, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var rec models.ApplicationRecord
	decode(t, w, &rec)
	assert.Equal(t, "Maria Silva Souza", rec.FullName)
	assert.Equal(t, "20", rec.Payment.DueDate)
	require.NotNil(t, rec.UpdatedAt)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantCode   string
	}{
		{name: "unknown field", body: `{"id":"other"}`, wantStatus: http.StatusBadRequest, wantCode: CodeInvalidJSON},
		{name: "raw card data", body: `{"cardNumber":"4111111111111111"}`, wantStatus: http.StatusBadRequest, wantCode: CodeInvalidJSON},
		{name: "empty", body: `{}`, wantStatus: http.StatusBadRequest, wantCode: CodeInvalidParameter},
		{name: "breaks the schema", body: `{"email":"maria"}`, wantStatus: http.StatusBadRequest, wantCode: CodeValidation},
		{name: "malformed", body: `{"full_name":`, wantStatus: http.StatusBadRequest, wantCode: CodeInvalidJSON},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(t, http.MethodPatch, path, tt.body, token)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantCode)
		})
	}

	stored, err := env.store.Get(context.Background(), appID)
	require.NoError(t, err)
	assert.Equal(t, "maria@email.com", stored.Email)

	w = env.do(t, http.MethodPatch, "/v1/admin/applications/missing", `{"full_name":"Ana Paula"}`, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdmin_DeleteApplication(t *testing.T) {
	env := setupTestEnv(t)
	seedApplication(t, env)
	token := adminToken(t, "admin")

	w := env.do(t, http.MethodDelete, "/v1/admin/applications/"+appID, nil, token)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, 0, env.store.Len())

	w = env.do(t, http.MethodDelete, "/v1/admin/applications/"+appID, nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdmin_Receipt(t *testing.T) {
	env := setupTestEnv(t)
	seedApplication(t, env)
	token := adminToken(t, "admin")
	path := "/v1/admin/applications/" + appID + "/receipt"

	w := env.do(t, http.MethodGet, path, nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="recibo-12345678900.pdf"`, w.Header().Get("Content-Disposition"))
	assert.True(t, strings.HasPrefix(w.Body.String(), "%PDF"))

	w = env.do(t, http.MethodGet, path+"?format=html&layout=single", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, `inline; filename="recibo-12345678900.html"`, w.Header().Get("Content-Disposition"))
	assert.Contains(t, w.Body.String(), "Maria Silva Santos")

	w = env.do(t, http.MethodGet, path+"?format=docx", nil, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = env.do(t, http.MethodGet, path+"?layout=triple", nil, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, http.MethodGet, "/v1/admin/applications/missing/receipt", nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdmin_MalformedToken(t *testing.T) {
	env := setupTestEnv(t)
	w := env.do(t, http.MethodGet, "/v1/admin/applications", nil, "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
