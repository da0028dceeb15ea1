package server

import (
	"errors"
	"net/http"
	"testing"

	"oneiro/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDream_FullEnrichment(t *testing.T) {
	srv, app, db := setupTestServer(t, nil, nil)
	_, bearer := signupTestUser(t, srv, db, "dreamer")

	status, payload := doJSON(t, app, http.MethodPost, "/api/dreams", bearer, map[string]any{
		"title":          "Flying",
		"description":    "Gliding between rooftops",
		"isPublic":       true,
		"interpretDream": true,
		"generateImage":  true,
		"imageType":      "watercolor",
	})
	requireStatus(t, status, http.StatusCreated, payload)

	assert.EqualValues(t, 2, payload["creditsUsed"])
	assert.Equal(t, true, payload["interpretation"])
	assert.Equal(t, true, payload["imageGenerated"])

	dream, ok := payload["dream"].(map[string]any)
	require.True(t, ok)
	assert.NotEmpty(t, dream["token"])
	assert.Equal(t, "an interpretation", dream["interpretation"])
	assert.Equal(t, "https://img.example/d.png", dream["imageUrl"])

	// The full grant was consumed.
	status, payload = doJSON(t, app, http.MethodGet, "/api/credits", bearer, nil)
	requireStatus(t, status, http.StatusOK, payload)
	assert.EqualValues(t, 0, payload["credits"])
}

func TestCreateDream_InsufficientCredits(t *testing.T) {
	srv, app, db := setupTestServer(t, nil, nil)
	user, bearer := signupTestUser(t, srv, db, "dreamer")

	// Drain the balance.
	require.NoError(t, db.Create(&models.Credit{UserID: user.ID, Amount: 1}).Error)

	status, payload := doJSON(t, app, http.MethodPost, "/api/dreams", bearer, map[string]any{
		"title":          "Falling",
		"description":    "Down and down",
		"interpretDream": true,
		"generateImage":  true,
	})
	requireStatus(t, status, http.StatusForbidden, payload)

	// No dream row was written.
	var count int64
	db.Model(&models.Dream{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestCreateDream_ImageFailureDegrades(t *testing.T) {
	illustrator := &stubIllustrator{fn: func(string, string) (string, error) {
		return "", errors.New("provider down")
	}}
	srv, app, db := setupTestServer(t, nil, illustrator)
	_, bearer := signupTestUser(t, srv, db, "dreamer")

	status, payload := doJSON(t, app, http.MethodPost, "/api/dreams", bearer, map[string]any{
		"title":          "Storm",
		"description":    "Thunder everywhere",
		"interpretDream": true,
		"generateImage":  true,
	})
	requireStatus(t, status, http.StatusCreated, payload)

	assert.EqualValues(t, 1, payload["creditsUsed"])
	assert.Equal(t, true, payload["interpretation"])
	assert.Equal(t, false, payload["imageGenerated"])

	status, payload = doJSON(t, app, http.MethodGet, "/api/credits", bearer, nil)
	requireStatus(t, status, http.StatusOK, payload)
	assert.EqualValues(t, 1, payload["credits"])
}

func TestCreateDream_RequiresAuth(t *testing.T) {
	_, app, _ := setupTestServer(t, nil, nil)

	status, payload := doJSON(t, app, http.MethodPost, "/api/dreams", "", map[string]any{
		"title":       "Nope",
		"description": "No auth",
	})
	requireStatus(t, status, http.StatusUnauthorized, payload)
}

func TestDreamTokenRoundTrip(t *testing.T) {
	srv, app, db := setupTestServer(t, nil, nil)
	_, bearer := signupTestUser(t, srv, db, "dreamer")

	status, payload := doJSON(t, app, http.MethodPost, "/api/dreams", bearer, map[string]any{
		"title":       "Ocean",
		"description": "Endless blue",
	})
	requireStatus(t, status, http.StatusCreated, payload)
	token := payload["dream"].(map[string]any)["token"].(string)

	status, payload = doJSON(t, app, http.MethodGet, "/api/dreams/"+token, bearer, nil)
	requireStatus(t, status, http.StatusOK, payload)
	assert.Equal(t, "Ocean", payload["dream"].(map[string]any)["title"])
}

func TestGetDream_MalformedToken(t *testing.T) {
	srv, app, db := setupTestServer(t, nil, nil)
	_, bearer := signupTestUser(t, srv, db, "dreamer")

	status, payload := doJSON(t, app, http.MethodGet, "/api/dreams/not-a-token", bearer, nil)
	requireStatus(t, status, http.StatusBadRequest, payload)
}

func TestGetDream_OtherUsersDreamHidden(t *testing.T) {
	srv, app, db := setupTestServer(t, nil, nil)
	_, ownerBearer := signupTestUser(t, srv, db, "owner")
	_, strangerBearer := signupTestUser(t, srv, db, "stranger")

	status, payload := doJSON(t, app, http.MethodPost, "/api/dreams", ownerBearer, map[string]any{
		"title":       "Secret",
		"description": "Private matter",
	})
	requireStatus(t, status, http.StatusCreated, payload)
	token := payload["dream"].(map[string]any)["token"].(string)

	// A valid token does not bypass ownership scoping.
	status, payload = doJSON(t, app, http.MethodGet, "/api/dreams/"+token, strangerBearer, nil)
	requireStatus(t, status, http.StatusNotFound, payload)
}

func TestUpdateAndDeleteDream(t *testing.T) {
	srv, app, db := setupTestServer(t, nil, nil)
	_, bearer := signupTestUser(t, srv, db, "dreamer")

	status, payload := doJSON(t, app, http.MethodPost, "/api/dreams", bearer, map[string]any{
		"title":       "Draft",
		"description": "To be shared",
	})
	requireStatus(t, status, http.StatusCreated, payload)
	token := payload["dream"].(map[string]any)["token"].(string)

	status, payload = doJSON(t, app, http.MethodPut, "/api/dreams/"+token, bearer, map[string]any{
		"isPublic": true,
		"title":    "Published",
	})
	requireStatus(t, status, http.StatusOK, payload)
	dream := payload["dream"].(map[string]any)
	assert.Equal(t, true, dream["isPublic"])
	assert.Equal(t, "Published", dream["title"])

	status, payload = doJSON(t, app, http.MethodDelete, "/api/dreams/"+token, bearer, nil)
	requireStatus(t, status, http.StatusOK, payload)

	status, payload = doJSON(t, app, http.MethodGet, "/api/dreams/"+token, bearer, nil)
	requireStatus(t, status, http.StatusNotFound, payload)
}

func TestGetMyDreams_Shape(t *testing.T) {
	srv, app, db := setupTestServer(t, nil, nil)
	_, bearer := signupTestUser(t, srv, db, "dreamer")

	for _, title := range []string{"One", "Two", "Three"} {
		status, payload := doJSON(t, app, http.MethodPost, "/api/dreams", bearer, map[string]any{
			"title":       title,
			"description": "d",
		})
		requireStatus(t, status, http.StatusCreated, payload)
	}

	status, payload := doJSON(t, app, http.MethodGet, "/api/dreams?page=1&limit=2", bearer, nil)
	requireStatus(t, status, http.StatusOK, payload)

	assert.EqualValues(t, 2, payload["totalPages"])
	assert.EqualValues(t, 1, payload["currentPage"])

	dreams, ok := payload["dreams"].([]any)
	require.True(t, ok)
	assert.Len(t, dreams, 2)

	// Every listed dream carries its shareable token.
	for _, d := range dreams {
		assert.NotEmpty(t, d.(map[string]any)["token"])
	}
}

func TestGetPublicDreams_NoAuthNeeded(t *testing.T) {
	srv, app, db := setupTestServer(t, nil, nil)
	_, bearer := signupTestUser(t, srv, db, "dreamer")

	status, payload := doJSON(t, app, http.MethodPost, "/api/dreams", bearer, map[string]any{
		"title":       "Shared",
		"description": "d",
		"isPublic":    true,
	})
	requireStatus(t, status, http.StatusCreated, payload)
	status, payload = doJSON(t, app, http.MethodPost, "/api/dreams", bearer, map[string]any{
		"title":       "Hidden",
		"description": "d",
	})
	requireStatus(t, status, http.StatusCreated, payload)

	status, payload = doJSON(t, app, http.MethodGet, "/api/feed", "", nil)
	requireStatus(t, status, http.StatusOK, payload)

	dreams := payload["dreams"].([]any)
	require.Len(t, dreams, 1)
	assert.Equal(t, "Shared", dreams[0].(map[string]any)["title"])
}
