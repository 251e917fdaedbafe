package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/report-explorer/internal/config"
	"github.com/jonathan/report-explorer/internal/db"
	"github.com/jonathan/report-explorer/internal/types"
)

func testJWTService(t *testing.T) *JWTService {
	t.Helper()
	return NewJWTService(&config.JWTConfig{
		Secret:          "0123456789abcdef0123456789abcdef",
		ExpirationHours: 24,
	})
}

func newTestAuthHandler(t *testing.T, fake *fakeDB) *AuthHandler {
	t.Helper()
	return NewAuthHandler(NewUserService(fake, testPasswordConfig()), testJWTService(t))
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

func TestAuthHandler_Register_Success(t *testing.T) {
	handler := newTestAuthHandler(t, newFakeDB("alice@example.com"))

	w := postJSON(t, handler.Register, "/auth/register", registerRequest())

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var resp types.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp.Session.Username)
	assert.NotEmpty(t, resp.Token)
}

func TestAuthHandler_Register_InvalidBody(t *testing.T) {
	handler := newTestAuthHandler(t, newFakeDB())

	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader([]byte("{not json")))
	w := httptest.NewRecorder()
	handler.Register(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid request body")
}

func TestAuthHandler_Register_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(req *types.RegisterRequest)
	}{
		{"missing username", func(r *types.RegisterRequest) { r.Username = "" }},
		{"short password", func(r *types.RegisterRequest) { r.Password = "short"; r.ConfirmPassword = "short" }},
		{"password mismatch", func(r *types.RegisterRequest) { r.ConfirmPassword = "different123" }},
		{"invalid email", func(r *types.RegisterRequest) { r.Email = "not-an-email" }},
		{"missing mobile", func(r *types.RegisterRequest) { r.MobileNo = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newTestAuthHandler(t, newFakeDB("alice@example.com"))
			req := registerRequest()
			tt.mutate(req)

			w := postJSON(t, handler.Register, "/auth/register", req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "validation error")
		})
	}
}

func TestAuthHandler_Register_NotAllowed(t *testing.T) {
	handler := newTestAuthHandler(t, newFakeDB("other@example.com"))

	w := postJSON(t, handler.Register, "/auth/register", registerRequest())

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "registration not allowed")
}

func TestAuthHandler_Register_Duplicate(t *testing.T) {
	fake := newFakeDB("alice@example.com")
	fake.users["alice"] = &db.User{Username: "alice"}
	handler := newTestAuthHandler(t, fake)

	w := postJSON(t, handler.Register, "/auth/register", registerRequest())

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "username already exists")
}

func TestAuthHandler_Login_Success(t *testing.T) {
	pwcfg := testPasswordConfig()
	hash, err := pwcfg.HashPassword("password123")
	require.NoError(t, err)

	fake := newFakeDB()
	fake.users["alice"] = &db.User{Username: "alice", PasswordHash: hash}
	handler := newTestAuthHandler(t, fake)

	w := postJSON(t, handler.Login, "/auth/login", types.LoginRequest{
		Username: "alice",
		Password: "password123",
	})

	require.Equal(t, http.StatusOK, w.Code)
	var resp types.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp.Session.Username)
	assert.NotEmpty(t, resp.Token)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	handler := newTestAuthHandler(t, newFakeDB())

	w := postJSON(t, handler.Login, "/auth/login", types.LoginRequest{
		Username: "alice",
		Password: "wrong-password",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid username or password")
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	handler := newTestAuthHandler(t, newFakeDB())

	w := postJSON(t, handler.Login, "/auth/login", types.LoginRequest{Username: "alice"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "validation error")
}
