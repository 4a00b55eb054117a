package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daryakozlova/postboard/internal/testutil"
)

func TestAuthEndpoints(t *testing.T) {
	db := testutil.StartPostgres(t)
	r := newTestRouter(db)

	t.Run("register issues a token", func(t *testing.T) {
		token := register(t, r, "newcomer")
		assert.NotEmpty(t, token)
	})

	t.Run("duplicate username is rejected", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/register", "", gin.H{
			"username": "newcomer",
			"email":    "other@example.com",
			"password": "secret123",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("login with the right password succeeds", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/login", "", gin.H{
			"email":    "newcomer@example.com",
			"password": "secret123",
		})
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Token string `json:"token"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Token)
	})

	t.Run("login with a wrong password fails", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/login", "", gin.H{
			"email":    "newcomer@example.com",
			"password": "wrong-password",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("me returns the authenticated user", func(t *testing.T) {
		token := register(t, r, "someone")

		w := doJSON(t, r, http.MethodGet, "/me", token, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Username string `json:"username"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "someone", resp.Username)
	})

	t.Run("me without a token fails", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/me", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
