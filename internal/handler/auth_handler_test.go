package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"go-job-tracker/internal/model"
	"go-job-tracker/internal/service"
)

type stubUserStore struct {
	users map[string]model.User
}

func (s *stubUserStore) FindByEmail(_ context.Context, email string) (model.User, error) {
	user, ok := s.users[email]
	if !ok {
		return model.User{}, model.ErrUserNotFound
	}
	return user, nil
}

func (s *stubUserStore) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := s.users[email]
	return ok, nil
}

func (s *stubUserStore) Create(_ context.Context, u model.User) error {
	s.users[u.Email] = u
	return nil
}

func newAuthHandler(t *testing.T, store *stubUserStore) (*AuthHandler, *service.TokenService) {
	t.Helper()
	tokens := service.NewTokenService(strings.Repeat("k", 64), time.Hour)
	return NewAuthHandler(service.NewAuthService(store, tokens)), tokens
}

func postJSON(t *testing.T, handlerFunc http.HandlerFunc, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handlerFunc(rec, req)
	return rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) model.APIResponse {
	t.Helper()

	var response model.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	return response
}

func TestAuthHandler_SignIn(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	store := &stubUserStore{users: map[string]model.User{
		"jane@example.com": {
			ID:           "u-1",
			Email:        "jane@example.com",
			PasswordHash: string(hash),
			Roles:        []model.Role{model.RoleUser},
		},
	}}
	handler, tokens := newAuthHandler(t, store)

	t.Run("returns a bearer token for valid credentials", func(t *testing.T) {
		rec := postJSON(t, handler.SignIn, "/api/auth/signin", map[string]string{
			"email":    "jane@example.com",
			"password": "secret123",
		})

		require.Equal(t, http.StatusOK, rec.Code)

		response := decodeResponse(t, rec)
		require.True(t, response.Success)

		data, ok := response.Data.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "Bearer", data["tokenType"])

		accessToken, _ := data["accessToken"].(string)
		assert.True(t, tokens.Validate(accessToken))
	})

	t.Run("rejects wrong password with 401", func(t *testing.T) {
		rec := postJSON(t, handler.SignIn, "/api/auth/signin", map[string]string{
			"email":    "jane@example.com",
			"password": "wrong",
		})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		response := decodeResponse(t, rec)
		assert.False(t, response.Success)
		assert.Equal(t, "Invalid credentials", response.Error.Message)
	})

	t.Run("rejects malformed body with 400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/signin", strings.NewReader("{not json"))
		rec := httptest.NewRecorder()
		handler.SignIn(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejects invalid email with 400", func(t *testing.T) {
		rec := postJSON(t, handler.SignIn, "/api/auth/signin", map[string]string{
			"email":    "not-an-email",
			"password": "secret123",
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAuthHandler_SignUp(t *testing.T) {
	t.Run("registers a new user and returns the acknowledgment", func(t *testing.T) {
		store := &stubUserStore{users: map[string]model.User{}}
		handler, _ := newAuthHandler(t, store)

		rec := postJSON(t, handler.SignUp, "/api/auth/signup", map[string]string{
			"email":    "new@example.com",
			"password": "secret123",
			"name":     "New User",
		})

		require.Equal(t, http.StatusOK, rec.Code)

		response := decodeResponse(t, rec)
		assert.Equal(t, "User registered successfully", response.Data)

		_, created := store.users["new@example.com"]
		assert.True(t, created)
	})

	t.Run("rejects duplicate email with 400", func(t *testing.T) {
		store := &stubUserStore{users: map[string]model.User{
			"jane@example.com": {ID: "u-1", Email: "jane@example.com"},
		}}
		handler, _ := newAuthHandler(t, store)

		rec := postJSON(t, handler.SignUp, "/api/auth/signup", map[string]string{
			"email":    "jane@example.com",
			"password": "secret123",
			"name":     "Impostor",
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		response := decodeResponse(t, rec)
		assert.Equal(t, "Email is already in use", response.Error.Message)
	})

	t.Run("rejects short password with 400", func(t *testing.T) {
		store := &stubUserStore{users: map[string]model.User{}}
		handler, _ := newAuthHandler(t, store)

		rec := postJSON(t, handler.SignUp, "/api/auth/signup", map[string]string{
			"email":    "new@example.com",
			"password": "tiny",
			"name":     "New User",
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
