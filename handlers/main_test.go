package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"blogserver/auth"
	"blogserver/config"
	"blogserver/db"
	"blogserver/models"
	"blogserver/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// setupTest gives every test its own in-memory database and a router
// with the same wiring as main.go.
func setupTest(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.MYSQL_DSN = ""
	config.SQLITE_FILE = fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"))
	config.PAGE_SIZE = 10
	config.S3_BUCKET = ""
	config.MEDIA_DIR = t.TempDir()
	db.Init()
	models.Init()
	storage.Init()

	router := gin.New()
	authRouter := &auth.Router{Base: router}
	router.POST("/jwt/create", TokenCreate)
	router.POST("/jwt/refresh", TokenRefresh)
	router.POST("/jwt/verify", TokenVerify)
	router.GET("/posts", PostList)
	authRouter.POST("/posts", PostCreate)
	router.GET("/posts/:post_id", PostRetrieve)
	authRouter.PUT("/posts/:post_id", PostUpdate)
	authRouter.PATCH("/posts/:post_id", PostPartialUpdate)
	authRouter.DELETE("/posts/:post_id", PostDelete)
	router.GET("/posts/:post_id/comments", CommentList)
	authRouter.POST("/posts/:post_id/comments", CommentCreate)
	router.GET("/posts/:post_id/comments/:id", CommentRetrieve)
	authRouter.PUT("/posts/:post_id/comments/:id", CommentUpdate)
	authRouter.PATCH("/posts/:post_id/comments/:id", CommentPartialUpdate)
	authRouter.DELETE("/posts/:post_id/comments/:id", CommentDelete)
	router.GET("/groups", GroupList)
	router.GET("/groups/:id", GroupRetrieve)
	authRouter.GET("/follow", FollowList)
	authRouter.POST("/follow", FollowCreate)
	authRouter.POST("/media", MediaUpload)
	router.GET("/media/*path", MediaFetch)
	return router
}

func createTestUser(t *testing.T, username string) models.User {
	t.Helper()
	user, err := models.UserCreate(username, username, "test-password")
	require.NoError(t, err)
	return user
}

func accessTokenFor(t *testing.T, user models.User) string {
	t.Helper()
	token, err := auth.NewAccessToken(user.ID)
	require.NoError(t, err)
	return token
}

// doRequest performs a JSON request; an empty token means anonymous.
func doRequest(t *testing.T, router *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	result := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	return result
}

func decodeJSONList(t *testing.T, w *httptest.ResponseRecorder) []interface{} {
	t.Helper()
	result := []interface{}{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	return result
}

func mustCreatePost(t *testing.T, router *gin.Engine, token, body string) uint64 {
	t.Helper()
	w := doRequest(t, router, http.MethodPost, "/posts", token, body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return uint64(decodeJSON(t, w)["id"].(float64))
}
