package integration

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	creds := map[string]string{"username": "alice", "password": "s3cret"}

	// register
	resp := postJSON(t, app, "/api/auth/register", "", creds)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var registered struct {
		ID       string `json:"id"`
		Username string `json:"username"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&registered))
	resp.Body.Close()
	assert.Equal(t, "alice", registered.Username)
	assert.NotEmpty(t, registered.ID)

	// the stored hash is not the raw password
	var hash string
	require.NoError(t, app.DB.QueryRow("SELECT password_hash FROM users WHERE username = $1", "alice").Scan(&hash))
	assert.NotEqual(t, "s3cret", hash)

	// duplicate username
	resp = postJSON(t, app, "/api/auth/register", "", creds)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	// login returns a usable token
	resp = postJSON(t, app, "/api/auth/login", "", creds)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var login struct {
		Token    string `json:"token"`
		Username string `json:"username"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&login))
	resp.Body.Close()
	assert.Equal(t, "alice", login.Username)
	require.NotEmpty(t, login.Token)

	resp = postJSON(t, app, "/api/polls", login.Token, map[string]any{
		"question": "Logged in?", "options": []string{"Yes", "No"},
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()
}

func TestLoginFailures(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	resp := postJSON(t, app, "/api/auth/register", "", map[string]string{
		"username": "bob", "password": "pw123",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	t.Run("wrong password", func(t *testing.T) {
		resp := postJSON(t, app, "/api/auth/login", "", map[string]string{
			"username": "bob", "password": "wrong",
		})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("unknown user", func(t *testing.T) {
		resp := postJSON(t, app, "/api/auth/login", "", map[string]string{
			"username": "nobody", "password": "pw123",
		})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("missing fields", func(t *testing.T) {
		resp := postJSON(t, app, "/api/auth/login", "", map[string]string{"username": "bob"})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		resp.Body.Close()
	})
}
