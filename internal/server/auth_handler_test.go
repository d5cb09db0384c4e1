package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/types"
)

func newTestAuthHandler() *AuthHandler {
	return NewAuthHandler(newTestUserService(newFakeUserStore()), newTestJWTService("test-secret"))
}

func postJSON(t *testing.T, handler http.HandlerFunc, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	encoded, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(encoded))
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestSignupIssuesToken(t *testing.T) {
	h := newTestAuthHandler()

	rec := postJSON(t, h.Signup, "/auth/signup", types.SignupRequest{
		Name: "Jane", Email: "jane@example.com", Password: "correct horse",
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp types.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.User)
	assert.Equal(t, "jane@example.com", resp.User.Email)

	claims, err := h.jwtService.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.GetUserID())
}

func TestSignupRejectsShortPassword(t *testing.T) {
	h := newTestAuthHandler()

	rec := postJSON(t, h.Signup, "/auth/signup", types.SignupRequest{
		Name: "Jane", Email: "jane@example.com", Password: "short",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginFlow(t *testing.T) {
	h := newTestAuthHandler()

	rec := postJSON(t, h.Signup, "/auth/signup", types.SignupRequest{
		Name: "Jane", Email: "jane@example.com", Password: "correct horse",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = postJSON(t, h.Login, "/auth/login", types.LoginRequest{
		Email: "jane@example.com", Password: "correct horse",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = postJSON(t, h.Login, "/auth/login", types.LoginRequest{
		Email: "jane@example.com", Password: "wrong horse",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
