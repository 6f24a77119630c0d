package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"blogserver/db"
	"blogserver/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupListUnpaginated(t *testing.T) {
	router := setupTest(t)

	w := doRequest(t, router, http.MethodGet, "/groups", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String(), "empty catalogue is a bare array")

	groups := []models.Group{
		{Title: "Go", Slug: "go", Description: "All things Go"},
		{Title: "Databases", Slug: "databases", Description: "Storage talk"},
	}
	for i := range groups {
		require.NoError(t, db.Instance.Create(&groups[i]).Error)
	}

	w = doRequest(t, router, http.MethodGet, "/groups", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	list := decodeJSONList(t, w)
	require.Len(t, list, 2)
	first := list[0].(map[string]interface{})
	assert.Equal(t, "Go", first["title"])
	assert.Equal(t, "go", first["slug"])
	assert.Equal(t, "All things Go", first["description"])
}

func TestGroupRetrieve(t *testing.T) {
	router := setupTest(t)
	group := models.Group{Title: "Go", Slug: "go"}
	require.NoError(t, db.Instance.Create(&group).Error)

	w := doRequest(t, router, http.MethodGet, fmt.Sprintf("/groups/%d", group.ID), "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, group.ID, decodeJSON(t, w)["id"])

	w = doRequest(t, router, http.MethodGet, "/groups/999", "", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Group not found.", decodeJSON(t, w)["detail"])
}
