package handlers

import (
	"net/http"
	"strconv"

	"blogserver/auth"
	"blogserver/db"
	"blogserver/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type CommentInfo struct {
	ID      uint64 `json:"id"`
	Author  string `json:"author"`
	Post    uint64 `json:"post"`
	Text    string `json:"text"`
	Created string `json:"created"`
}

type CommentRequest struct {
	Text string `json:"text"`
}

func commentInfo(comment *models.Comment) CommentInfo {
	return CommentInfo{
		ID:      comment.ID,
		Author:  comment.Author.Username,
		Post:    comment.PostID,
		Text:    comment.Text,
		Created: formatTimestamp(comment.CreatedAt),
	}
}

// loadComment resolves the comment in the URL path, scoped to its parent
// post. The parent must already be resolved - a comment is never visible
// outside its own post's URL space.
func loadComment(c *gin.Context, post *models.Post) (comment models.Comment, ok bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, CommentNotFoundResponse)
		return comment, false
	}
	if db.Instance.Preload("Author").Where("post_id = ?", post.ID).First(&comment, id).Error != nil {
		c.JSON(http.StatusNotFound, CommentNotFoundResponse)
		return comment, false
	}
	return comment, true
}

// CommentList returns all comments of a post in insert order, as a bare
// array. Open to anonymous callers; 404 when the parent post is missing.
func CommentList(c *gin.Context) {
	post, ok := loadPost(c)
	if !ok {
		return
	}
	var comments []models.Comment
	err := db.Instance.Preload("Author").
		Where("post_id = ?", post.ID).
		Order("id").
		Find(&comments).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "DB error 1"})
		return
	}
	results := []CommentInfo{}
	for i := range comments {
		results = append(results, commentInfo(&comments[i]))
	}
	c.JSON(http.StatusOK, results)
}

// CommentCreate attaches a comment to the post in the URL path. Author
// and post always come from the identity and the path, whatever the
// client sends.
func CommentCreate(c *gin.Context, user *models.User) {
	post, ok := loadPost(c)
	if !ok {
		return
	}
	r := CommentRequest{}
	if err := c.ShouldBindWith(&r, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	if r.Text == "" {
		c.JSON(http.StatusBadRequest, fieldError("text", "This field may not be blank."))
		return
	}
	comment := models.Comment{
		AuthorID: user.ID,
		PostID:   post.ID,
		Text:     r.Text,
	}
	if result := db.Instance.Create(&comment); result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": result.Error.Error()})
		return
	}
	comment.Author = *user
	c.JSON(http.StatusCreated, commentInfo(&comment))
}

func CommentRetrieve(c *gin.Context) {
	post, ok := loadPost(c)
	if !ok {
		return
	}
	comment, ok := loadComment(c, &post)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, commentInfo(&comment))
}

func CommentUpdate(c *gin.Context, user *models.User) {
	commentWrite(c, user, false)
}

func CommentPartialUpdate(c *gin.Context, user *models.User) {
	commentWrite(c, user, true)
}

// commentWrite covers PUT and PATCH: with only one mutable field the two
// differ just in whether text may be omitted.
func commentWrite(c *gin.Context, user *models.User, partial bool) {
	post, ok := loadPost(c)
	if !ok {
		return
	}
	comment, ok := loadComment(c, &post)
	if !ok {
		return
	}
	switch auth.Authorize(auth.ActionWrite, comment.AuthorID, user) {
	case auth.DenyUnauthorized:
		c.JSON(http.StatusUnauthorized, NotAuthenticatedResponse)
		return
	case auth.DenyForbidden:
		c.JSON(http.StatusForbidden, CommentModifyDeniedResponse)
		return
	}
	r := struct {
		Text *string `json:"text"`
	}{}
	if err := c.ShouldBindWith(&r, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	if r.Text == nil {
		if !partial {
			c.JSON(http.StatusBadRequest, fieldError("text", "This field is required."))
			return
		}
		c.JSON(http.StatusOK, commentInfo(&comment))
		return
	}
	if *r.Text == "" {
		c.JSON(http.StatusBadRequest, fieldError("text", "This field may not be blank."))
		return
	}
	comment.Text = *r.Text
	if err := db.Instance.Model(&comment).Update("text", comment.Text).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, commentInfo(&comment))
}

func CommentDelete(c *gin.Context, user *models.User) {
	post, ok := loadPost(c)
	if !ok {
		return
	}
	comment, ok := loadComment(c, &post)
	if !ok {
		return
	}
	switch auth.Authorize(auth.ActionWrite, comment.AuthorID, user) {
	case auth.DenyUnauthorized:
		c.JSON(http.StatusUnauthorized, NotAuthenticatedResponse)
		return
	case auth.DenyForbidden:
		c.JSON(http.StatusForbidden, CommentDeleteDeniedResponse)
		return
	}
	if err := db.Instance.Delete(&comment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
