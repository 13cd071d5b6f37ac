// File: internal/handlers/user_handler_test.go
package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProfile(t *testing.T) {
	router := newTestRouter(t)
	token := registerUser(t, router, "Rahim", "rahim@example.com")

	rec := doJSON(t, router, http.MethodGet, "/api/user/profile", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "Rahim", body["name"])
	assert.Equal(t, "rahim@example.com", body["email"])
	assert.Equal(t, "en", body["preferredLanguage"])
	assert.NotContains(t, body, "password")
	assert.NotContains(t, body, "location")
}

func TestUpdateProfile(t *testing.T) {
	router := newTestRouter(t)
	token := registerUser(t, router, "Rahim", "rahim@example.com")

	rec := doJSON(t, router, http.MethodPut, "/api/user/profile", token, map[string]string{
		"name":              "Karim",
		"preferredLanguage": "bn",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	body := decodeBody(t, rec)
	assert.Equal(t, "Karim", body["name"])
	assert.Equal(t, "bn", body["preferredLanguage"])
	// Email is not part of the update surface.
	assert.Equal(t, "rahim@example.com", body["email"])

	rec = doJSON(t, router, http.MethodGet, "/api/user/profile", token, nil)
	assert.Equal(t, "Karim", decodeBody(t, rec)["name"])
}

func TestLocationLifecycleOverHTTP(t *testing.T) {
	router := newTestRouter(t)
	token := registerUser(t, router, "Rahim", "rahim@example.com")

	// No location yet.
	rec := doJSON(t, router, http.MethodGet, "/api/user/location", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Set one.
	rec = doJSON(t, router, http.MethodPost, "/api/user/location", token, map[string]interface{}{
		"latitude":  23.8103,
		"longitude": 90.4125,
		"address":   "Dhaka",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	body := decodeBody(t, rec)
	assert.Equal(t, "Location updated successfully", body["message"])
	loc, ok := body["location"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, 23.8103, loc["latitude"])
	assert.Equal(t, "Dhaka", loc["address"])

	// The profile now carries it too.
	rec = doJSON(t, router, http.MethodGet, "/api/user/profile", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, decodeBody(t, rec), "location")

	// Read it back.
	rec = doJSON(t, router, http.MethodGet, "/api/user/location", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 90.4125, decodeBody(t, rec)["longitude"])

	// Delete it, twice; the second delete is still a 200.
	rec = doJSON(t, router, http.MethodDelete, "/api/user/location", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Location deleted successfully", decodeBody(t, rec)["message"])

	assert.Equal(t, http.StatusNotFound,
		doJSON(t, router, http.MethodGet, "/api/user/location", token, nil).Code)
	assert.Equal(t, http.StatusOK,
		doJSON(t, router, http.MethodDelete, "/api/user/location", token, nil).Code)
}

func TestSetLocationDefaultsAddressOverHTTP(t *testing.T) {
	router := newTestRouter(t)
	token := registerUser(t, router, "Rahim", "rahim@example.com")

	rec := doJSON(t, router, http.MethodPost, "/api/user/location", token, map[string]interface{}{
		"latitude":  23.8103,
		"longitude": 90.4125,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	loc, ok := decodeBody(t, rec)["location"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "23.8103, 90.4125", loc["address"])
}

func TestSetLocationValidation(t *testing.T) {
	router := newTestRouter(t)
	token := registerUser(t, router, "Rahim", "rahim@example.com")

	rec := doJSON(t, router, http.MethodPost, "/api/user/location", token, map[string]interface{}{
		"latitude": 23.8103,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/user/location", token, map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLocationsAreIsolatedBetweenUsers(t *testing.T) {
	router := newTestRouter(t)
	first := registerUser(t, router, "Rahim", "rahim@example.com")
	second := registerUser(t, router, "Karim", "karim@example.com")

	rec := doJSON(t, router, http.MethodPost, "/api/user/location", first, map[string]interface{}{
		"latitude":  23.8103,
		"longitude": 90.4125,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, http.StatusNotFound,
		doJSON(t, router, http.MethodGet, "/api/user/location", second, nil).Code)
}
