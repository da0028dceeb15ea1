package server

import (
	"net/http"
	"testing"

	"oneiro/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestGetCredits_LazyGrant(t *testing.T) {
	srv, app, db := setupTestServer(t, nil, nil)
	_, bearer := signupTestUser(t, srv, db, "ada")

	// signupTestUser bypasses the signup handler, so no ledger exists yet.
	status, payload := doJSON(t, app, http.MethodGet, "/api/credits", bearer, nil)
	requireStatus(t, status, http.StatusOK, payload)
	assert.EqualValues(t, models.DefaultCreditAmount, payload["credits"])
}

func TestSettings_LazyDefaults(t *testing.T) {
	srv, app, db := setupTestServer(t, nil, nil)
	_, bearer := signupTestUser(t, srv, db, "ada")

	status, payload := doJSON(t, app, http.MethodGet, "/api/settings", bearer, nil)
	requireStatus(t, status, http.StatusOK, payload)

	settings := payload["settings"].(map[string]any)
	assert.Equal(t, models.DefaultLanguage, settings["language"])
	assert.Equal(t, models.DefaultTheme, settings["theme"])
}

func TestUpdateSettings_Partial(t *testing.T) {
	srv, app, db := setupTestServer(t, nil, nil)
	_, bearer := signupTestUser(t, srv, db, "ada")

	status, payload := doJSON(t, app, http.MethodPut, "/api/settings", bearer, map[string]any{
		"theme": "dark",
	})
	requireStatus(t, status, http.StatusOK, payload)

	settings := payload["settings"].(map[string]any)
	assert.Equal(t, "dark", settings["theme"])
	// Omitted fields keep their current values.
	assert.Equal(t, models.DefaultLanguage, settings["language"])
}

func TestUpdateSettings_EmptyBodyRejected(t *testing.T) {
	srv, app, db := setupTestServer(t, nil, nil)
	_, bearer := signupTestUser(t, srv, db, "ada")

	status, payload := doJSON(t, app, http.MethodPut, "/api/settings", bearer, map[string]any{})
	requireStatus(t, status, http.StatusBadRequest, payload)
}
