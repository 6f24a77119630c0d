package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentParentPostNotFound(t *testing.T) {
	router := setupTest(t)
	token := accessTokenFor(t, createTestUser(t, "alice"))

	// Every comment operation 404s when the parent post does not exist,
	// whatever the comment id says
	tests := []struct {
		method string
		path   string
		body   string
		token  string
	}{
		{http.MethodGet, "/posts/999/comments", "", ""},
		{http.MethodPost, "/posts/999/comments", `{"text":"hi"}`, token},
		{http.MethodGet, "/posts/999/comments/1", "", ""},
		{http.MethodPut, "/posts/999/comments/1", `{"text":"hi"}`, token},
		{http.MethodPatch, "/posts/999/comments/1", `{"text":"hi"}`, token},
		{http.MethodDelete, "/posts/999/comments/1", "", token},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := doRequest(t, router, tt.method, tt.path, tt.token, tt.body)
			require.Equal(t, http.StatusNotFound, w.Code)
			assert.Equal(t, "Post not found.", decodeJSON(t, w)["detail"])
		})
	}
}

func TestCommentCreateAndList(t *testing.T) {
	router := setupTest(t)
	aliceToken := accessTokenFor(t, createTestUser(t, "alice"))
	bobToken := accessTokenFor(t, createTestUser(t, "bob"))
	postID := mustCreatePost(t, router, aliceToken, `{"text":"a post"}`)
	path := fmt.Sprintf("/posts/%d/comments", postID)

	w := doRequest(t, router, http.MethodPost, path, bobToken, `{"text":"nice one"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeJSON(t, w)
	assert.Equal(t, "bob", created["author"], "author comes from the token")
	assert.EqualValues(t, postID, created["post"], "post comes from the path")
	assert.Equal(t, "nice one", created["text"])
	assert.NotEmpty(t, created["created"])

	w = doRequest(t, router, http.MethodPost, path, aliceToken, `{"text":"thanks"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	// Anonymous list, bare array in insert order
	w = doRequest(t, router, http.MethodGet, path, "", "")
	require.Equal(t, http.StatusOK, w.Code)
	list := decodeJSONList(t, w)
	require.Len(t, list, 2)
	assert.Equal(t, "nice one", list[0].(map[string]interface{})["text"])
	assert.Equal(t, "thanks", list[1].(map[string]interface{})["text"])
}

func TestCommentCreateValidation(t *testing.T) {
	router := setupTest(t)
	token := accessTokenFor(t, createTestUser(t, "alice"))
	postID := mustCreatePost(t, router, token, `{"text":"a post"}`)
	path := fmt.Sprintf("/posts/%d/comments", postID)

	w := doRequest(t, router, http.MethodPost, path, "", `{"text":"anon"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(t, router, http.MethodPost, path, token, `{"text":""}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeJSON(t, w), "text")
}

func TestCommentRetrieveScopedToParent(t *testing.T) {
	router := setupTest(t)
	token := accessTokenFor(t, createTestUser(t, "alice"))
	post1 := mustCreatePost(t, router, token, `{"text":"post one"}`)
	post2 := mustCreatePost(t, router, token, `{"text":"post two"}`)

	w := doRequest(t, router, http.MethodPost, fmt.Sprintf("/posts/%d/comments", post1), token, `{"text":"on post one"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	commentID := uint64(decodeJSON(t, w)["id"].(float64))

	w = doRequest(t, router, http.MethodGet, fmt.Sprintf("/posts/%d/comments/%d", post1, commentID), "", "")
	assert.Equal(t, http.StatusOK, w.Code)

	// The same comment is invisible under another post's path
	w = doRequest(t, router, http.MethodGet, fmt.Sprintf("/posts/%d/comments/%d", post2, commentID), "", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Comment not found.", decodeJSON(t, w)["detail"])
}

func TestCommentOwnership(t *testing.T) {
	router := setupTest(t)
	aliceToken := accessTokenFor(t, createTestUser(t, "alice"))
	bobToken := accessTokenFor(t, createTestUser(t, "bob"))
	postID := mustCreatePost(t, router, aliceToken, `{"text":"a post"}`)

	w := doRequest(t, router, http.MethodPost, fmt.Sprintf("/posts/%d/comments", postID), bobToken, `{"text":"bob's comment"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	commentPath := fmt.Sprintf("/posts/%d/comments/%d", postID, uint64(decodeJSON(t, w)["id"].(float64)))

	// The post's author still cannot touch someone else's comment
	w = doRequest(t, router, http.MethodPatch, commentPath, aliceToken, `{"text":"edited"}`)
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = doRequest(t, router, http.MethodDelete, commentPath, aliceToken, "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doRequest(t, router, http.MethodPatch, commentPath, bobToken, `{"text":"edited"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "edited", decodeJSON(t, w)["text"])

	w = doRequest(t, router, http.MethodDelete, commentPath, bobToken, "")
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestCommentFullUpdateRequiresText(t *testing.T) {
	router := setupTest(t)
	token := accessTokenFor(t, createTestUser(t, "alice"))
	postID := mustCreatePost(t, router, token, `{"text":"a post"}`)
	w := doRequest(t, router, http.MethodPost, fmt.Sprintf("/posts/%d/comments", postID), token, `{"text":"hello"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	commentPath := fmt.Sprintf("/posts/%d/comments/%d", postID, uint64(decodeJSON(t, w)["id"].(float64)))

	w = doRequest(t, router, http.MethodPut, commentPath, token, `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// PATCH with no fields is a no-op, not an error
	w = doRequest(t, router, http.MethodPatch, commentPath, token, `{}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "hello", decodeJSON(t, w)["text"])
}
