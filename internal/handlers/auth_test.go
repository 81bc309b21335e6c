package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskforge-dev/taskforge/internal/auth"
	"github.com/taskforge-dev/taskforge/internal/models"
)

func TestRegister(t *testing.T) {
	r, database := newTestRouter(t, true)

	token := registerUser(t, r, "alice", "a@x.com", "pw")

	userID, err := auth.NewTokenManager(testSecret, time.Hour).Verify(token)
	require.NoError(t, err)

	var user models.User
	require.NoError(t, database.First(&user, userID).Error)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "a@x.com", user.Email)
	assert.NotEqual(t, "pw", user.PasswordHash)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	r, database := newTestRouter(t, true)

	registerUser(t, r, "alice", "a@x.com", "pw")

	w := doRequest(t, r, http.MethodPost, "/register", "", map[string]string{
		"username": "alice2",
		"email":    "a@x.com",
		"password": "pw2",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Email already registered", decodeBody(t, w)["message"])

	var count int64
	require.NoError(t, database.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestLogin(t *testing.T) {
	r, _ := newTestRouter(t, true)

	registerUser(t, r, "alice", "a@x.com", "pw")

	w := doRequest(t, r, http.MethodPost, "/login", "", map[string]string{
		"username": "alice",
		"password": "pw",
	})
	require.Equal(t, http.StatusOK, w.Code)

	token, ok := decodeBody(t, w)["token"].(string)
	require.True(t, ok)

	userID, err := auth.NewTokenManager(testSecret, time.Hour).Verify(token)
	require.NoError(t, err)
	assert.NotZero(t, userID)
}

func TestLogin_WrongPasswordIndistinguishableFromUnknownUser(t *testing.T) {
	r, _ := newTestRouter(t, true)

	registerUser(t, r, "alice", "a@x.com", "pw")

	wrongPassword := doRequest(t, r, http.MethodPost, "/login", "", map[string]string{
		"username": "alice",
		"password": "nope",
	})
	unknownUser := doRequest(t, r, http.MethodPost, "/login", "", map[string]string{
		"username": "mallory",
		"password": "nope",
	})

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownUser.Code)
	assert.Equal(t, wrongPassword.Body.String(), unknownUser.Body.String())
}

func TestMe(t *testing.T) {
	r, _ := newTestRouter(t, true)

	token := registerUser(t, r, "alice", "a@x.com", "pw")

	w := doRequest(t, r, http.MethodGet, "/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	user, ok := decodeBody(t, w)["user"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "alice", user["username"])
	assert.Equal(t, "a@x.com", user["email"])
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	r, _ := newTestRouter(t, true)

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Basic abc123"},
		{"garbage token", "Bearer not.a.jwt"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/all", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}

			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestAuthMiddleware_TokenForDeletedUser(t *testing.T) {
	r, database := newTestRouter(t, true)

	token := registerUser(t, r, "alice", "a@x.com", "pw")
	require.NoError(t, database.Unscoped().Where("username = ?", "alice").Delete(&models.User{}).Error)

	w := doRequest(t, r, http.MethodGet, "/all", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
