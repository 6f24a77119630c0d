package handlers

import (
	"net/http"
	"strconv"
	"time"

	"blogserver/db"
	"blogserver/models"

	"github.com/gin-gonic/gin"
)

type DetailResponse struct {
	Detail string `json:"detail"`
}

var (
	// Predefined errors
	PostNotFoundResponse        = DetailResponse{"Post not found."}
	CommentNotFoundResponse     = DetailResponse{"Comment not found."}
	GroupNotFoundResponse       = DetailResponse{"Group not found."}
	PostModifyDeniedResponse    = DetailResponse{"You cannot modify someone else's post."}
	PostDeleteDeniedResponse    = DetailResponse{"You cannot delete someone else's post."}
	CommentModifyDeniedResponse = DetailResponse{"You cannot modify someone else's comment."}
	CommentDeleteDeniedResponse = DetailResponse{"You cannot delete someone else's comment."}
	NotAuthenticatedResponse    = DetailResponse{"Authentication credentials were not provided."}
)

// fieldError is the wire shape for single-field validation failures
func fieldError(field, message string) gin.H {
	return gin.H{field: []string{message}}
}

func formatTimestamp(unix int64) string {
	return time.Unix(unix, 0).UTC().Format(time.RFC3339)
}

// loadPost resolves the post referenced in the URL path. Writes the 404
// response and returns false when it does not exist.
func loadPost(c *gin.Context) (post models.Post, ok bool) {
	id, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, PostNotFoundResponse)
		return post, false
	}
	if db.Instance.Preload("Author").First(&post, id).Error != nil {
		c.JSON(http.StatusNotFound, PostNotFoundResponse)
		return post, false
	}
	return post, true
}
