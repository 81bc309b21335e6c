package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"github.com/taskforge-dev/taskforge/db"
	"github.com/taskforge-dev/taskforge/internal/config"
	"github.com/taskforge-dev/taskforge/internal/router"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

func newTestRouter(t *testing.T, enforceOwnership bool) (*gin.Engine, *gorm.DB) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	// A named in-memory database, so every test gets its own instance that
	// survives across pooled connections.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))

	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(database))

	cfg := &config.Config{
		Port:             "0",
		JWTSecret:        testSecret,
		TokenTTL:         time.Hour,
		EnforceOwnership: enforceOwnership,
		AllowedOrigins:   []string{"http://localhost:3000"},
	}

	return router.New(cfg, database), database
}

func doRequest(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader

	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	return body
}

func registerUser(t *testing.T, r *gin.Engine, username, email, password string) string {
	t.Helper()

	w := doRequest(t, r, http.MethodPost, "/register", "", gin.H{
		"username": username,
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	token, ok := decodeBody(t, w)["token"].(string)
	require.True(t, ok, "register response should carry a token")

	return token
}

func createProject(t *testing.T, r *gin.Engine, token string, fields gin.H) map[string]interface{} {
	t.Helper()

	w := doRequest(t, r, http.MethodPost, "/new", token, fields)
	require.Equal(t, http.StatusCreated, w.Code)

	project, ok := decodeBody(t, w)["project"].(map[string]interface{})
	require.True(t, ok, "create response should carry the project")

	return project
}

func projectID(project map[string]interface{}) string {
	return fmt.Sprintf("%.0f", project["id"].(float64))
}

func decodeList(data []byte, dest *[]map[string]interface{}) error {
	return json.Unmarshal(data, dest)
}
