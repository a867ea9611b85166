package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedIdempotent(t *testing.T) {
	r := setupTest(t)

	w := doJSON(r, http.MethodPost, "/seed", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Levels seeded successfully!", decodeBody(t, w)["message"])

	w = doJSON(r, http.MethodPost, "/seed", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Data already seeded", decodeBody(t, w)["message"])
}

func TestGetLevelsOrdered(t *testing.T) {
	r := setupTest(t)
	doJSON(r, http.MethodPost, "/seed", "", nil)

	w := doJSON(r, http.MethodGet, "/levels", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var levels []struct {
		LevelNumber int    `json:"level_number"`
		Title       string `json:"title"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &levels))
	require.NotEmpty(t, levels)
	for i := 1; i < len(levels); i++ {
		assert.LessOrEqual(t, levels[i-1].LevelNumber, levels[i].LevelNumber)
	}
}

func TestGetLevelsEmptyBeforeSeed(t *testing.T) {
	r := setupTest(t)

	w := doJSON(r, http.MethodGet, "/levels", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var levels []json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &levels))
	assert.Empty(t, levels)
}
